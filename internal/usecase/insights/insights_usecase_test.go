package insights

import (
	"context"
	"testing"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfileFields(ctx context.Context, user *domain.User) error {
	return nil
}

func (f *fakeUserRepo) SetOnboardingComplete(ctx context.Context, userID int) error { return nil }

type fakeReflectionRepo struct {
	reflections []*domain.Reflection
}

func (f *fakeReflectionRepo) Create(ctx context.Context, reflection *domain.Reflection) error {
	return nil
}

func (f *fakeReflectionRepo) GetByID(ctx context.Context, id, userID int) (*domain.Reflection, error) {
	return nil, domain.ErrReflectionNotFound
}

func (f *fakeReflectionRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Reflection, error) {
	return f.reflections, nil
}

func (f *fakeReflectionRepo) ListRecent(ctx context.Context, userID, limit int) ([]*domain.Reflection, error) {
	if len(f.reflections) > limit {
		return f.reflections[:limit], nil
	}
	return f.reflections, nil
}

func (f *fakeReflectionRepo) Update(ctx context.Context, reflection *domain.Reflection) error {
	return nil
}

func (f *fakeReflectionRepo) Delete(ctx context.Context, id, userID int) error { return nil }

func TestGenerateWithoutClientReturnsFallback(t *testing.T) {
	users := &fakeUserRepo{user: &domain.User{ID: 1, FullName: "Ada Lovelace"}}
	uc := NewInsightsUseCase(users, &fakeReflectionRepo{}, nil)

	resp, err := uc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, resp.Insight, "Ada Lovelace")
	assert.Empty(t, resp.Prompts)
}

func TestGenerateUnknownUser(t *testing.T) {
	uc := NewInsightsUseCase(&fakeUserRepo{}, &fakeReflectionRepo{}, nil)

	_, err := uc.Generate(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
