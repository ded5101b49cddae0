package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

type updateLogRepository struct {
	db *sqlx.DB
}

func NewUpdateLogRepository(db *sqlx.DB) repository.UpdateLogRepository {
	return &updateLogRepository{db: db}
}

func (r *updateLogRepository) Append(ctx context.Context, record *domain.ProfileUpdate) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	query := `
		INSERT INTO profile_updates (id, user_id, category, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		record.ID, record.UserID, record.Category,
		[]byte(record.OldValue), []byte(record.NewValue),
	).Scan(&record.CreatedAt)
}

// CountDistinctDays truncates record timestamps to UTC calendar days so that
// any number of edits on one day counts once toward the quota.
func (r *updateLogRepository) CountDistinctDays(ctx context.Context, userID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT (created_at AT TIME ZONE 'UTC')::date)
		FROM profile_updates
		WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *updateLogRepository) ListByUser(ctx context.Context, userID int) ([]*domain.ProfileUpdate, error) {
	var records []*domain.ProfileUpdate
	query := `
		SELECT * FROM profile_updates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &records, query, userID)
	return records, err
}
