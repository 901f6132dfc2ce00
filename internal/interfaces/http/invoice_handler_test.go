package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineinfosolutions/crm-api/internal/application/billing"
	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
	apphttp "github.com/shineinfosolutions/crm-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repository
// ──────────────────────────────────────────────────────────────────────────────

type memInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	maxSeq   int64
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[id]; !ok {
		return false, nil
	}
	delete(r.invoices, id)
	return true, nil
}

func (r *memInvoiceRepo) MaxInvoiceSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxSeq, nil
}

// buildInvoiceApp mounts the invoice handler without auth, which is covered
// separately by the middleware tests.
func buildInvoiceApp(repo *memInvoiceRepo) *fiber.App {
	uc := billing.NewInvoiceUseCase(repo, nil)
	h := apphttp.NewInvoiceHandler(uc, nil)

	app := fiber.New()
	invoices := app.Group("/api/invoices")
	invoices.Get("/next-invoice-number", h.NextNumber)
	invoices.Get("/all", h.List)
	invoices.Post("/create", h.Create)
	invoices.Put("/update/:id", h.Update)
	invoices.Delete("/delete/:id", h.Delete)
	invoices.Get("/mono/:id", h.GetByID)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Handlers
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceHandler_CreateRecomputesAmounts(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	// Stale totals in the payload must be ignored and recomputed.
	payload := map[string]any{
		"customerName": "Acme Traders",
		"invoiceDate":  "2024-03-01",
		"productDetails": []map[string]any{
			{"description": "Widget", "quantity": 2, "price": "100", "discountPercentage": 10, "amount": "999.99"},
		},
		"amountDetails": map[string]any{
			"gstPercentage": 9, "discountOnTotal": 5, "totalAmount": "123.45",
		},
	}

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/create", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["id"], "server must assign the id")
	assert.Equal(t, "INV-001", data["invoiceNumber"], "first invoice gets the first sequential number")

	amounts := data["amountDetails"].(map[string]any)
	assert.Equal(t, "191.2", amounts["totalAmount"], "total must come from the recomputation, not the payload")

	items := data["productDetails"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "180", first["amount"])
}

func TestInvoiceHandler_GetMissingReturns404(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/mono/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestInvoiceHandler_UpdateMissingReturns404(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	resp := doJSON(t, app, http.MethodPut, "/api/invoices/update/no-such-id", map[string]any{
		"customerName": "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvoiceHandler_NextInvoiceNumber(t *testing.T) {
	repo := newMemInvoiceRepo()
	repo.maxSeq = 41
	app := buildInvoiceApp(repo)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/next-invoice-number", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The new-invoice form reads this key at the top level, with no
	// {success, data} envelope around it.
	body := decodeBody(t, resp)
	assert.Equal(t, "INV-042", body["nextInvoiceNumber"])
	assert.NotContains(t, body, "data")
}

func TestInvoiceHandler_DeleteThenGone(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/create", map[string]any{
		"customerName": "Ephemeral Pvt Ltd",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id := created["data"].(map[string]any)["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/delete/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/mono/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Deleting again is a 404, not an error swallow.
	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/delete/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestInvoiceHandler_ListReturnsCreationOrder(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	for _, name := range []string{"First Co", "Second Co"} {
		resp := doJSON(t, app, http.MethodPost, "/api/invoices/create", map[string]any{
			"customerName": name,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/all", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Creation order on the wire; the list screen reverses client-side.
	body := decodeBody(t, resp)
	list := body["data"].([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "First Co", list[0].(map[string]any)["customerName"])
	assert.Equal(t, "Second Co", list[1].(map[string]any)["customerName"])
}

func TestInvoiceHandler_GarbageNumericFieldsParseAsZero(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/create", map[string]any{
		"customerName": "Messy Input Co",
		"productDetails": []map[string]any{
			{"description": "Thing", "quantity": "abc", "price": nil, "discountPercentage": ""},
		},
		"amountDetails": map[string]any{"gstPercentage": "not-a-number"},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode,
		"unparsable numeric fields degrade to zero instead of failing the request")

	body := decodeBody(t, resp)
	amounts := body["data"].(map[string]any)["amountDetails"].(map[string]any)
	assert.Equal(t, "0", amounts["totalAmount"])
}
