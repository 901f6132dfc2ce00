// Package notify owns push-notification registration and fan-out. There is
// exactly one notification client per process, created at startup with
// explicit configuration and injected here.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/shineinfosolutions/crm-api/internal/domain"
	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
	"github.com/shineinfosolutions/crm-api/internal/domain/repository"
	"github.com/shineinfosolutions/crm-api/pkg/logger"
)

// UseCase registers device tokens and notifies all registered devices about
// invoice events. A nil sender disables delivery while registration keeps
// accepting tokens.
type UseCase struct {
	tokens repository.DeviceTokenRepository
	sender MessageSender
	log    *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(tokens repository.DeviceTokenRepository, sender MessageSender, log *logger.Logger) *UseCase {
	return &UseCase{tokens: tokens, sender: sender, log: log}
}

// RegisterDevice stores an FCM token. Registering the same token again only
// refreshes its last-seen timestamp.
func (uc *UseCase) RegisterDevice(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.tokens.Upsert(ctx, &entity.DeviceToken{
		Token:      token,
		CreatedAt:  now,
		LastSeenAt: now,
	})
}

// InvoiceCreated pushes a notification about a freshly created invoice to
// every registered device. Failures are logged and never propagate: a dead
// push must not fail the invoice write. Tokens FCM reports as unregistered
// are pruned.
func (uc *UseCase) InvoiceCreated(ctx context.Context, inv *entity.Invoice) {
	if uc.sender == nil {
		return
	}
	msg := Message{
		Title: "New invoice " + inv.InvoiceNumber,
		Body:  "Invoice for " + inv.CustomerName + ", total INR " + inv.AmountDetails.TotalAmount.StringFixed(2),
	}

	tokens, err := uc.tokens.ListTokens(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("list device tokens")
		return
	}

	for _, token := range tokens {
		err := uc.sender.Send(ctx, token, msg)
		switch {
		case err == nil:
		case errors.Is(err, ErrUnregistered):
			if delErr := uc.tokens.Delete(ctx, token); delErr != nil {
				uc.log.Warn().Err(delErr).Msg("prune stale device token")
			}
		default:
			uc.log.Warn().Err(err).Str("invoice", inv.InvoiceNumber).Msg("push send failed")
		}
	}
}
