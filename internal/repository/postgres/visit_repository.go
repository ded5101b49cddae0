package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

type visitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *domain.Visit) error {
	query := `
		INSERT INTO visits (user_id, country, city, year, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		visit.UserID, visit.Country, visit.City, visit.Year, visit.Note,
	).Scan(&visit.ID, &visit.CreatedAt, &visit.UpdatedAt)
}

func (r *visitRepository) GetByID(ctx context.Context, id, userID int) (*domain.Visit, error) {
	var visit domain.Visit
	query := `SELECT * FROM visits WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &visit, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Visit, error) {
	var visits []*domain.Visit
	query := `SELECT * FROM visits WHERE user_id = $1 ORDER BY year DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &visits, query, userID)
	return visits, err
}

func (r *visitRepository) Update(ctx context.Context, visit *domain.Visit) error {
	query := `
		UPDATE visits
		SET country = $1, city = $2, year = $3, note = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		visit.Country, visit.City, visit.Year, visit.Note, visit.ID, visit.UserID,
	).Scan(&visit.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrVisitNotFound
	}
	return err
}

func (r *visitRepository) Delete(ctx context.Context, id, userID int) error {
	query := `DELETE FROM visits WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrVisitNotFound
	}
	return nil
}
