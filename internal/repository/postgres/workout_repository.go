package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
)

type workoutRepository struct {
	db *sqlx.DB
}

func NewWorkoutRepository(db *sqlx.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	query := `
		INSERT INTO workouts (user_id, activity, duration_minutes, performed_on, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		workout.UserID, workout.Activity, workout.DurationMinutes,
		workout.PerformedOn, workout.Note,
	).Scan(&workout.ID, &workout.CreatedAt, &workout.UpdatedAt)
}

func (r *workoutRepository) GetByID(ctx context.Context, id, userID int) (*domain.Workout, error) {
	var workout domain.Workout
	query := `SELECT * FROM workouts WHERE id = $1 AND user_id = $2`
	err := r.db.GetContext(ctx, &workout, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	query := `SELECT * FROM workouts WHERE user_id = $1 ORDER BY performed_on DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &workouts, query, userID)
	return workouts, err
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	query := `
		UPDATE workouts
		SET activity = $1, duration_minutes = $2, performed_on = $3, note = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		workout.Activity, workout.DurationMinutes, workout.PerformedOn, workout.Note,
		workout.ID, workout.UserID,
	).Scan(&workout.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrWorkoutNotFound
	}
	return err
}

func (r *workoutRepository) Delete(ctx context.Context, id, userID int) error {
	query := `DELETE FROM workouts WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}
