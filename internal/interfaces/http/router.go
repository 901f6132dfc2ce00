package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shineinfosolutions/crm-api/internal/application/auth"
	"github.com/shineinfosolutions/crm-api/internal/application/billing"
	"github.com/shineinfosolutions/crm-api/internal/application/notify"
)

// RouterDeps wires the use cases into the router.
type RouterDeps struct {
	InvoiceUC *billing.InvoiceUseCase
	PDFUC     *billing.PDFUseCase
	NotifyUC  *notify.UseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registers the API routes. Paths match what the browser CRM calls.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices (protected). Static segments register before :id routes so
	// "next-invoice-number" is never captured as an id.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/next-invoice-number", invoiceHandler.NextNumber)
	invoices.Get("/all", invoiceHandler.List)
	invoices.Post("/create", invoiceHandler.Create)
	invoices.Put("/update/:id", invoiceHandler.Update)
	invoices.Delete("/delete/:id", invoiceHandler.Delete)
	invoices.Get("/mono/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Push registration (protected)
	push := protected.Group("/push")
	pushHandler := NewPushHandler(deps.NotifyUC)
	push.Post("/register", pushHandler.Register)
}
