package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

type relativeRepository struct {
	db *sqlx.DB
}

func NewRelativeRepository(db *sqlx.DB) repository.RelativeRepository {
	return &relativeRepository{db: db}
}

func (r *relativeRepository) Create(ctx context.Context, relative *domain.Relative) error {
	query := `
		INSERT INTO relatives (user_id, full_name, relation, birth_date, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		relative.UserID, relative.FullName, relative.Relation,
		relative.BirthDate, relative.Note,
	).Scan(&relative.ID, &relative.CreatedAt, &relative.UpdatedAt)
}

func (r *relativeRepository) GetByID(ctx context.Context, id, userID int) (*domain.Relative, error) {
	var relative domain.Relative
	query := `SELECT * FROM relatives WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &relative, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRelativeNotFound
		}
		return nil, err
	}
	return &relative, nil
}

func (r *relativeRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Relative, error) {
	var relatives []*domain.Relative
	query := `SELECT * FROM relatives WHERE user_id = $1 ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &relatives, query, userID)
	return relatives, err
}

func (r *relativeRepository) Update(ctx context.Context, relative *domain.Relative) error {
	query := `
		UPDATE relatives
		SET full_name = $1, relation = $2, birth_date = $3, note = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		relative.FullName, relative.Relation, relative.BirthDate, relative.Note,
		relative.ID, relative.UserID,
	).Scan(&relative.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRelativeNotFound
	}
	return err
}

func (r *relativeRepository) Delete(ctx context.Context, id, userID int) error {
	query := `DELETE FROM relatives WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRelativeNotFound
	}
	return nil
}
