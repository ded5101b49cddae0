package auth

import (
	"context"
	"testing"
	"time"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateProfileFields(ctx context.Context, user *domain.User) error {
	return nil
}

func (f *fakeUserRepo) SetOnboardingComplete(ctx context.Context, userID int) error {
	return nil
}

type fakeSessionStore struct {
	sessions map[string]int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]int)}
}

func (f *fakeSessionStore) Save(ctx context.Context, tokenHash string, userID int, ttl time.Duration) error {
	f.sessions[tokenHash] = userID
	return nil
}

func (f *fakeSessionStore) GetUserID(ctx context.Context, tokenHash string) (int, error) {
	userID, ok := f.sessions[tokenHash]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeSessionStore) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	return NewAuthUseCase(users, sessions, testSecret, 7), users, sessions
}

func registerReq() *RegisterRequest {
	birthDate := "1990-05-10"
	profession := "engineer"
	return &RegisterRequest{
		Email:      "ada@example.com",
		Password:   "correct-horse",
		FullName:   "Ada Lovelace",
		BirthDate:  &birthDate,
		Profession: &profession,
	}
}

func TestRegisterAndVerify(t *testing.T) {
	uc, _, _ := newAuthFixture()

	resp, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.True(t, resp.User.IsOnboardingComplete)
	assert.NotEqual(t, "correct-horse", resp.User.PasswordHash)

	userID, err := uc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestRegisterWithoutMetadata(t *testing.T) {
	uc, _, _ := newAuthFixture()

	resp, err := uc.Register(context.Background(), &RegisterRequest{
		Email:    "new@example.com",
		Password: "correct-horse",
		FullName: "New User",
	})
	require.NoError(t, err)
	assert.False(t, resp.User.IsOnboardingComplete)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterFutureBirthDate(t *testing.T) {
	uc, _, _ := newAuthFixture()

	req := registerReq()
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	req.BirthDate = &future

	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), "ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.False(t, resp.IsNewUser)

	userID, err := uc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	uc, _, _ := newAuthFixture()
	resp, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), resp.Token))

	_, err = uc.VerifyToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestVerifyTamperedToken(t *testing.T) {
	uc, _, _ := newAuthFixture()
	resp, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.VerifyToken(context.Background(), resp.Token+"x")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
