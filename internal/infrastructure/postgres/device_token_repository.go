package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
	"github.com/shineinfosolutions/crm-api/internal/domain/repository"
)

var _ repository.DeviceTokenRepository = (*DeviceTokenRepo)(nil)

// DeviceTokenRepo implements DeviceTokenRepository on PostgreSQL.
type DeviceTokenRepo struct {
	pool *pgxpool.Pool
}

// NewDeviceTokenRepository builds the adapter.
func NewDeviceTokenRepository(pool *pgxpool.Pool) *DeviceTokenRepo {
	return &DeviceTokenRepo{pool: pool}
}

// Upsert stores the token, refreshing last_seen_at on conflict.
func (r *DeviceTokenRepo) Upsert(ctx context.Context, t *entity.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (token, created_at, last_seen_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET last_seen_at = EXCLUDED.last_seen_at`
	_, err := r.pool.Exec(ctx, query, t.Token, t.CreatedAt, t.LastSeenAt)
	if err != nil {
		return fmt.Errorf("upsert device token: %w", err)
	}
	return nil
}

// ListTokens returns every registered token.
func (r *DeviceTokenRepo) ListTokens(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT token FROM device_tokens ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

// Delete removes one token.
func (r *DeviceTokenRepo) Delete(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM device_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete device token: %w", err)
	}
	return nil
}
