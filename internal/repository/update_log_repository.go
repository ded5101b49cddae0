package repository

import (
	"context"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
)

// UpdateLogRepository is the append-only audit trail of accepted profile
// edits. Records are never updated or deleted.
type UpdateLogRepository interface {
	Append(ctx context.Context, record *domain.ProfileUpdate) error
	// CountDistinctDays returns the number of distinct UTC calendar days on
	// which the user has at least one record. This, not the raw record count,
	// is what the update quota is measured against.
	CountDistinctDays(ctx context.Context, userID int) (int, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.ProfileUpdate, error)
}
