package repository

import (
	"context"

	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
)

// DeviceTokenRepository is the persistence port for FCM device tokens.
type DeviceTokenRepository interface {
	// Upsert stores the token, refreshing LastSeenAt when it already exists.
	Upsert(ctx context.Context, token *entity.DeviceToken) error
	ListTokens(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, token string) error
}
