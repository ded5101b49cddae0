package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

type reflectionRepository struct {
	db *sqlx.DB
}

func NewReflectionRepository(db *sqlx.DB) repository.ReflectionRepository {
	return &reflectionRepository{db: db}
}

func (r *reflectionRepository) Create(ctx context.Context, reflection *domain.Reflection) error {
	query := `
		INSERT INTO reflections (user_id, content, mood, reflected_on)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		reflection.UserID, reflection.Content, reflection.Mood, reflection.ReflectedOn,
	).Scan(&reflection.ID, &reflection.CreatedAt, &reflection.UpdatedAt)
}

func (r *reflectionRepository) GetByID(ctx context.Context, id, userID int) (*domain.Reflection, error) {
	var reflection domain.Reflection
	query := `SELECT * FROM reflections WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &reflection, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReflectionNotFound
		}
		return nil, err
	}
	return &reflection, nil
}

func (r *reflectionRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Reflection, error) {
	var reflections []*domain.Reflection
	query := `SELECT * FROM reflections WHERE user_id = $1 ORDER BY reflected_on DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &reflections, query, userID)
	return reflections, err
}

func (r *reflectionRepository) ListRecent(ctx context.Context, userID, limit int) ([]*domain.Reflection, error) {
	var reflections []*domain.Reflection
	query := `
		SELECT * FROM reflections
		WHERE user_id = $1
		ORDER BY reflected_on DESC, created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &reflections, query, userID, limit)
	return reflections, err
}

func (r *reflectionRepository) Update(ctx context.Context, reflection *domain.Reflection) error {
	query := `
		UPDATE reflections
		SET content = $1, mood = $2, reflected_on = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		reflection.Content, reflection.Mood, reflection.ReflectedOn,
		reflection.ID, reflection.UserID,
	).Scan(&reflection.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrReflectionNotFound
	}
	return err
}

func (r *reflectionRepository) Delete(ctx context.Context, id, userID int) error {
	query := `DELETE FROM reflections WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReflectionNotFound
	}
	return nil
}
