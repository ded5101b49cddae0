package repository

import (
	"context"
	"time"
)

// SessionStore keeps issued session tokens (hashed) so they can be revoked
// on logout. Keys expire together with the JWT.
type SessionStore interface {
	Save(ctx context.Context, tokenHash string, userID int, ttl time.Duration) error
	GetUserID(ctx context.Context, tokenHash string) (int, error)
	Delete(ctx context.Context, tokenHash string) error
}
