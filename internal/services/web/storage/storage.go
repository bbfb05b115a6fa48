package storage

import (
	"context"
	"time"

	"github.com/merpara/site/internal/services/web/cart"
)

// CartRecord stores one session cart with its freshness metadata.
type CartRecord struct {
	SessionID string
	State     cart.State
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the record has lapsed at now.
func (r CartRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// CartStore persists session carts.
//
// GetCart returns expired records as-is; callers decide whether to honor them.
type CartStore interface {
	Close() error
	GetCart(ctx context.Context, sessionID string) (CartRecord, bool, error)
	PutCart(ctx context.Context, record CartRecord) error
	DeleteCart(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
