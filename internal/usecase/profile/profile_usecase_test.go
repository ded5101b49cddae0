package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users       map[int]*domain.User
	updateErr   error
	updateCalls int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfileFields(ctx context.Context, user *domain.User) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.FullName = user.FullName
	stored.BirthDate = user.BirthDate
	stored.Profession = user.Profession
	return nil
}

func (f *fakeUserRepo) SetOnboardingComplete(ctx context.Context, userID int) error {
	user, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.IsOnboardingComplete = true
	return nil
}

type fakeUpdateLog struct {
	records   []*domain.ProfileUpdate
	countErr  error
	appendErr error
}

func (f *fakeUpdateLog) Append(ctx context.Context, record *domain.ProfileUpdate) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeUpdateLog) CountDistinctDays(ctx context.Context, userID int) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	days := make(map[string]struct{})
	for _, record := range f.records {
		if record.UserID == userID {
			days[record.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
		}
	}
	return len(days), nil
}

func (f *fakeUpdateLog) ListByUser(ctx context.Context, userID int) ([]*domain.ProfileUpdate, error) {
	var out []*domain.ProfileUpdate
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

func newFixture() (*ProfileUseCase, *fakeUserRepo, *fakeUpdateLog) {
	birthDate := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	profession := domain.ProfessionEngineer
	users := &fakeUserRepo{users: map[int]*domain.User{
		1: {
			ID:                   1,
			Email:                "ada@example.com",
			FullName:             "Ada Lovelace",
			BirthDate:            &birthDate,
			Profession:           &profession,
			IsOnboardingComplete: true,
		},
	}}
	log := &fakeUpdateLog{}
	return NewProfileUseCase(users, log, zap.NewNop()), users, log
}

func recordOn(userID int, day time.Time) *domain.ProfileUpdate {
	return &domain.ProfileUpdate{
		UserID:    userID,
		Category:  domain.UpdateCategoryName,
		CreatedAt: day,
	}
}

func strPtr(s string) *string { return &s }

func TestGetUpdateQuotaFresh(t *testing.T) {
	uc, _, _ := newFixture()

	quota, err := uc.GetUpdateQuota(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, quota.UpdateCount)
	assert.True(t, quota.CanUpdate)
	assert.Equal(t, 3, quota.Limit)
}

func TestGetUpdateQuotaIdempotent(t *testing.T) {
	uc, _, log := newFixture()
	log.records = append(log.records, recordOn(1, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)))

	first, err := uc.GetUpdateQuota(context.Background(), 1)
	require.NoError(t, err)
	second, err := uc.GetUpdateQuota(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSameDayUpdatesCountOnce(t *testing.T) {
	uc, _, log := newFixture()
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	log.records = append(log.records,
		recordOn(1, day.Add(9*time.Hour)),
		recordOn(1, day.Add(21*time.Hour)),
	)

	quota, err := uc.GetUpdateQuota(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, quota.UpdateCount)
	assert.True(t, quota.CanUpdate)
}

func TestQuotaBoundary(t *testing.T) {
	uc, _, log := newFixture()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	log.records = append(log.records,
		recordOn(1, base),
		recordOn(1, base.AddDate(0, 0, 1)),
	)
	assert.True(t, uc.CanUpdate(context.Background(), 1))

	log.records = append(log.records, recordOn(1, base.AddDate(0, 0, 2)))
	assert.False(t, uc.CanUpdate(context.Background(), 1))
}

func TestUpdateProfileRejectedAtCap(t *testing.T) {
	uc, users, log := newFixture()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		log.records = append(log.records, recordOn(1, base.AddDate(0, 0, i)))
	}

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		FullName: strPtr("Ada King"),
	})
	assert.ErrorIs(t, err, domain.ErrUpdateLimitReached)
	assert.Equal(t, 0, users.updateCalls)
	assert.Len(t, log.records, 3)
}

func TestUpdateProfileFailClosedOnCountError(t *testing.T) {
	uc, users, log := newFixture()
	log.countErr = errors.New("network down")

	assert.False(t, uc.CanUpdate(context.Background(), 1))

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		FullName: strPtr("Ada King"),
	})
	assert.ErrorIs(t, err, domain.ErrQuotaCheckFailed)
	assert.Equal(t, 0, users.updateCalls)
}

func TestUpdateProfileAuditAppendIsAdvisory(t *testing.T) {
	uc, users, log := newFixture()
	log.appendErr = errors.New("log store unavailable")

	resp, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		FullName: strPtr("Ada King"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada King", resp.FullName)
	assert.Equal(t, "Ada King", users.users[1].FullName)
}

func TestUpdateProfilePrimaryWriteFailure(t *testing.T) {
	uc, users, log := newFixture()
	users.updateErr = errors.New("write failed")

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		FullName: strPtr("Ada King"),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUpdateLimitReached)
	assert.Empty(t, log.records)
}

func TestUpdateProfileAppendsAuditRecord(t *testing.T) {
	uc, _, log := newFixture()

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		FullName: strPtr("Ada King"),
	})
	require.NoError(t, err)
	require.Len(t, log.records, 1)

	record := log.records[0]
	assert.Equal(t, domain.UpdateCategoryName, record.Category)

	var oldSnapshot map[string]string
	require.NoError(t, json.Unmarshal(record.OldValue, &oldSnapshot))
	assert.Equal(t, "Ada Lovelace", oldSnapshot["full_name"])

	var newSnapshot map[string]string
	require.NoError(t, json.Unmarshal(record.NewValue, &newSnapshot))
	assert.Equal(t, "Ada King", newSnapshot["full_name"])
}

func TestUpdateProfileFirstProfessionEdit(t *testing.T) {
	uc, users, log := newFixture()
	users.users[1].Profession = nil

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		Profession: strPtr("writer"),
	})
	require.NoError(t, err)

	// There is no prior profession to snapshot, so the old value is absent
	// but the record itself must still land and count toward the quota.
	require.Len(t, log.records, 1)
	record := log.records[0]
	assert.Equal(t, domain.UpdateCategoryProfession, record.Category)
	assert.Nil(t, record.OldValue)

	var newSnapshot map[string]string
	require.NoError(t, json.Unmarshal(record.NewValue, &newSnapshot))
	assert.Equal(t, "writer", newSnapshot["profession"])

	quota, err := uc.GetUpdateQuota(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, quota.UpdateCount)
}

func TestUpdateProfileMultiFieldCategory(t *testing.T) {
	uc, _, log := newFixture()

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		FullName:   strPtr("Ada King"),
		Profession: strPtr("writer"),
	})
	require.NoError(t, err)
	require.Len(t, log.records, 1)
	assert.Equal(t, domain.UpdateCategoryFullProfile, log.records[0].Category)
}

func TestUpdateProfileFutureBirthDate(t *testing.T) {
	uc, users, _ := newFixture()
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		BirthDate: &future,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
	assert.Equal(t, 0, users.updateCalls)
}

func TestUpdateProfileNoChanges(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetMyProfileIncludesLifeStats(t *testing.T) {
	uc, _, _ := newFixture()

	resp, err := uc.GetMyProfile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp.LifeStats)
	assert.GreaterOrEqual(t, resp.LifeStats.DaysRemaining, 0)
	assert.LessOrEqual(t, resp.LifeStats.LifePercentage, 100.0)
}

func TestGetLifeStatsWithoutBirthDate(t *testing.T) {
	uc, users, _ := newFixture()
	users.users[1].BirthDate = nil

	_, err := uc.GetLifeStats(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
}

func TestCompleteOnboarding(t *testing.T) {
	uc, users, log := newFixture()
	users.users[2] = &domain.User{ID: 2, Email: "new@example.com", FullName: "New User"}

	resp, err := uc.CompleteOnboarding(context.Background(), 2, &OnboardingRequest{
		BirthDate:  "1985-02-02",
		Profession: "artist",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsOnboardingComplete)
	assert.Equal(t, "1985-02-02", resp.BirthDate)

	// Onboarding never consumes the edit quota.
	assert.Empty(t, log.records)

	_, err = uc.CompleteOnboarding(context.Background(), 2, &OnboardingRequest{
		BirthDate:  "1985-02-02",
		Profession: "artist",
	})
	assert.ErrorIs(t, err, domain.ErrOnboardingAlreadyComplete)
}
