package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/lifestats"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	userRepo  repository.UserRepository
	updateLog repository.UpdateLogRepository
	logger    *zap.Logger
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	updateLog repository.UpdateLogRepository,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:  userRepo,
		updateLog: updateLog,
		logger:    logger,
	}
}

// UpdateProfileRequest represents a governed profile edit
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Profession *string `json:"profession" binding:"omitempty,oneof=engineer doctor teacher artist athlete scientist writer musician chef other"`
}

// OnboardingRequest fills the profile for accounts registered without
// metadata. It does not consume the update quota.
type OnboardingRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,min=2,max=100"`
	BirthDate  string  `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Profession string  `json:"profession" binding:"required,oneof=engineer doctor teacher artist athlete scientist writer musician chef other"`
}

// ProfileResponse is the profile projection with derived life statistics.
// LifeStats is omitted when the birth date is missing; stats are never
// rendered from an invalid date.
type ProfileResponse struct {
	ID                   int                `json:"id"`
	Email                string             `json:"email"`
	FullName             string             `json:"full_name"`
	BirthDate            string             `json:"birth_date,omitempty"`
	Profession           *domain.Profession `json:"profession"`
	IsOnboardingComplete bool               `json:"is_onboarding_complete"`
	LifeStats            *lifestats.Stats   `json:"life_stats,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// UpdateQuotaResponse reports where the user stands against the lifetime
// profile-edit cap.
type UpdateQuotaResponse struct {
	UpdateCount int  `json:"update_count"`
	Limit       int  `json:"limit"`
	CanUpdate   bool `json:"can_update"`
}

// GetMyProfile returns the current user's profile with derived life stats.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(user), nil
}

// GetLifeStats recomputes life statistics from the stored birth date.
func (uc *ProfileUseCase) GetLifeStats(ctx context.Context, userID int) (*lifestats.Stats, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.BirthDate == nil {
		return nil, domain.ErrInvalidBirthDate
	}
	stats, err := lifestats.ComputeNow(*user.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidBirthDate
	}
	return &stats, nil
}

// GetUpdateQuota returns the distinct-day update count and whether another
// edit is allowed. Count-retrieval errors propagate so the caller treats the
// quota as unavailable (deny), never as open.
func (uc *ProfileUseCase) GetUpdateQuota(ctx context.Context, userID int) (*UpdateQuotaResponse, error) {
	count, err := uc.updateLog.CountDistinctDays(ctx, userID)
	if err != nil {
		return nil, domain.ErrQuotaCheckFailed
	}
	return &UpdateQuotaResponse{
		UpdateCount: count,
		Limit:       domain.MaxProfileUpdateDays,
		CanUpdate:   count < domain.MaxProfileUpdateDays,
	}, nil
}

// CanUpdate is the fail-closed quota check: any failure to retrieve the
// count denies the edit.
func (uc *ProfileUseCase) CanUpdate(ctx context.Context, userID int) bool {
	count, err := uc.updateLog.CountDistinctDays(ctx, userID)
	if err != nil {
		uc.logger.Warn("quota check failed, denying profile update",
			zap.Int("user_id", userID), zap.Error(err))
		return false
	}
	return count < domain.MaxProfileUpdateDays
}

// UpdateProfile performs one governed profile edit:
// re-check the quota, write the canonical profile, then append the audit
// record. The audit append is advisory: its failure never fails the update.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Quota is re-checked immediately before the write to close the race
	// between the client's last check and this save.
	count, err := uc.updateLog.CountDistinctDays(ctx, userID)
	if err != nil {
		uc.logger.Warn("quota check failed, denying profile update",
			zap.Int("user_id", userID), zap.Error(err))
		return nil, domain.ErrQuotaCheckFailed
	}
	if count >= domain.MaxProfileUpdateDays {
		return nil, domain.ErrUpdateLimitReached
	}

	oldValues := make(map[string]interface{})
	newValues := make(map[string]interface{})

	if req.FullName != nil && *req.FullName != user.FullName {
		oldValues["full_name"] = user.FullName
		newValues["full_name"] = *req.FullName
		user.FullName = *req.FullName
	}
	if req.BirthDate != nil && *req.BirthDate != user.BirthDateString() {
		birthDate, err := domain.ParseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		oldValues["birth_date"] = user.BirthDateString()
		newValues["birth_date"] = *req.BirthDate
		user.BirthDate = &birthDate
	}
	if req.Profession != nil {
		profession := domain.Profession(*req.Profession)
		if !profession.IsValid() {
			return nil, domain.ErrInvalidProfession
		}
		if user.Profession == nil || *user.Profession != profession {
			if user.Profession != nil {
				oldValues["profession"] = *user.Profession
			}
			newValues["profession"] = profession
			user.Profession = &profession
		}
	}

	if len(newValues) == 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.userRepo.UpdateProfileFields(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	record := &domain.ProfileUpdate{
		UserID:   userID,
		Category: categoryFor(newValues),
		OldValue: marshalSnapshot(oldValues),
		NewValue: marshalSnapshot(newValues),
	}
	if err := uc.updateLog.Append(ctx, record); err != nil {
		// Advisory log: the canonical write already succeeded, so the edit
		// stands. Operators see the gap; the user does not.
		uc.logger.Error("failed to append profile update audit record",
			zap.Int("user_id", userID), zap.Error(err))
	}

	return uc.toResponse(user), nil
}

// CompleteOnboarding sets the initial profile metadata. Creation of the
// profile is not an edit: it is neither quota-gated nor audit-logged.
func (uc *ProfileUseCase) CompleteOnboarding(ctx context.Context, userID int, req *OnboardingRequest) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsOnboardingComplete {
		return nil, domain.ErrOnboardingAlreadyComplete
	}

	birthDate, err := domain.ParseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	profession := domain.Profession(req.Profession)
	if !profession.IsValid() {
		return nil, domain.ErrInvalidProfession
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	user.BirthDate = &birthDate
	user.Profession = &profession

	if err := uc.userRepo.UpdateProfileFields(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	if err := uc.userRepo.SetOnboardingComplete(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark onboarding complete: %w", err)
	}
	user.IsOnboardingComplete = true

	return uc.toResponse(user), nil
}

// GetUpdateHistory returns the append-only audit trail, newest first.
func (uc *ProfileUseCase) GetUpdateHistory(ctx context.Context, userID int) ([]*domain.ProfileUpdate, error) {
	return uc.updateLog.ListByUser(ctx, userID)
}

func (uc *ProfileUseCase) toResponse(user *domain.User) *ProfileResponse {
	resp := &ProfileResponse{
		ID:                   user.ID,
		Email:                user.Email,
		FullName:             user.FullName,
		BirthDate:            user.BirthDateString(),
		Profession:           user.Profession,
		IsOnboardingComplete: user.IsOnboardingComplete,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
	if user.BirthDate != nil {
		if stats, err := lifestats.ComputeNow(*user.BirthDate); err == nil {
			resp.LifeStats = &stats
		}
	}
	return resp
}

func categoryFor(newValues map[string]interface{}) domain.UpdateCategory {
	if len(newValues) > 1 {
		return domain.UpdateCategoryFullProfile
	}
	if _, ok := newValues["full_name"]; ok {
		return domain.UpdateCategoryName
	}
	if _, ok := newValues["birth_date"]; ok {
		return domain.UpdateCategoryBirthDate
	}
	return domain.UpdateCategoryProfession
}

func marshalSnapshot(values map[string]interface{}) json.RawMessage {
	if len(values) == 0 {
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return data
}
