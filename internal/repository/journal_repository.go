package repository

import (
	"context"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
)

// Journal repositories are ownership-scoped: reads and writes match on both
// record id and user id, so one user can never touch another's entries.

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) error
	GetByID(ctx context.Context, id, userID int) (*domain.Visit, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Visit, error)
	Update(ctx context.Context, visit *domain.Visit) error
	Delete(ctx context.Context, id, userID int) error
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id, userID int) (*domain.Book, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id, userID int) error
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id, userID int) (*domain.Workout, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, userID int) error
}

type ReflectionRepository interface {
	Create(ctx context.Context, reflection *domain.Reflection) error
	GetByID(ctx context.Context, id, userID int) (*domain.Reflection, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Reflection, error)
	ListRecent(ctx context.Context, userID, limit int) ([]*domain.Reflection, error)
	Update(ctx context.Context, reflection *domain.Reflection) error
	Delete(ctx context.Context, id, userID int) error
}

type RelativeRepository interface {
	Create(ctx context.Context, relative *domain.Relative) error
	GetByID(ctx context.Context, id, userID int) (*domain.Relative, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Relative, error)
	Update(ctx context.Context, relative *domain.Relative) error
	Delete(ctx context.Context, id, userID int) error
}
