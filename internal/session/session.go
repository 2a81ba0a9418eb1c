package session

import (
	"context"
	"time"
)

// TTL of a verified-phone session. Within this window a returning customer
// skips SMS re-verification.
const TTL = 24 * time.Hour

// Session records that a phone number recently passed SMS verification.
// It is a convenience only, never an authorization mechanism.
type Session struct {
	Phone      string    `json:"phone"`
	VerifiedAt time.Time `json:"verified_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Store keeps verified-phone sessions keyed by phone digits.
type Store interface {
	// Get returns the active session for a phone, or nil when there is none
	// or it has expired.
	Get(ctx context.Context, phone string) (*Session, error)

	Set(ctx context.Context, phone string) error

	Clear(ctx context.Context, phone string) error
}
