package repository

import (
	"context"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateProfileFields writes the canonical profile metadata (name, birth
	// date, profession). This is the primary write the update governor gates.
	UpdateProfileFields(ctx context.Context, user *domain.User) error
	SetOnboardingComplete(ctx context.Context, userID int) error
}
