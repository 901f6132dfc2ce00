package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/shineinfosolutions/crm-api/internal/application/dto"
	"github.com/shineinfosolutions/crm-api/internal/application/notify"
	"github.com/shineinfosolutions/crm-api/internal/domain"
)

// PushHandler serves device-token registration for push notifications
// (protected).
type PushHandler struct {
	uc *notify.UseCase
}

// NewPushHandler builds the handler.
func NewPushHandler(uc *notify.UseCase) *PushHandler {
	return &PushHandler{uc: uc}
}

// Register stores or refreshes one device token. Re-registering the same
// token is a no-op refresh, so browsers can call this on every page load.
// POST /api/push/register
func (h *PushHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.uc.RegisterDevice(c.Context(), in.Token); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DataResponse{Success: true, Data: fiber.Map{"registered": true}})
}
