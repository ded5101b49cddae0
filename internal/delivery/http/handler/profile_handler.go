package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile with derived life statistics
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	resp, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID.(int))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Update profile fields; limited to 3 distinct days of edits per lifetime
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} profile.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	resp, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID.(int), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUpdateLimitReached):
			// Expected business rejection, distinct from transient failures.
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "you have used all 3 of your lifetime profile updates",
			})
		case errors.Is(err, domain.ErrQuotaCheckFailed):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "could not verify your update quota, please try again",
			})
		case errors.Is(err, domain.ErrInvalidBirthDate):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "birth date must be a valid date not in the future",
			})
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "no profile changes provided",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update profile",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteOnboarding handles POST /profile/complete-onboarding
// @Summary Complete onboarding
// @Description Fill the initial profile; does not consume the update quota
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.OnboardingRequest true "Onboarding data"
// @Success 200 {object} profile.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/complete-onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req profile.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	resp, err := h.profileUseCase.CompleteOnboarding(c.Request.Context(), userID.(int), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOnboardingAlreadyComplete):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "onboarding already completed",
			})
		case errors.Is(err, domain.ErrInvalidBirthDate):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "birth date must be a valid date not in the future",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to complete onboarding",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLifeStats handles GET /profile/life-stats
// @Summary Get life statistics
// @Description Recompute age, days lived, days remaining and life percentage
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} lifestats.Stats
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/life-stats [get]
func (h *ProfileHandler) GetLifeStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	stats, err := h.profileUseCase.GetLifeStats(c.Request.Context(), userID.(int))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBirthDate) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "life statistics need a valid birth date on the profile",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to compute life statistics",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUpdateQuota handles GET /profile/update-quota
// @Summary Get profile update quota
// @Description Distinct-day update count and whether another edit is allowed
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} profile.UpdateQuotaResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /profile/update-quota [get]
func (h *ProfileHandler) GetUpdateQuota(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	quota, err := h.profileUseCase.GetUpdateQuota(c.Request.Context(), userID.(int))
	if err != nil {
		// Fail closed: an unavailable quota must read as "cannot update".
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "could not retrieve update quota, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, quota)
}

// GetUpdateHistory handles GET /profile/update-history
// @Summary Get profile update history
// @Description Append-only audit trail of accepted profile edits
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.ProfileUpdate
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/update-history [get]
func (h *ProfileHandler) GetUpdateHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	records, err := h.profileUseCase.GetUpdateHistory(c.Request.Context(), userID.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get update history",
		})
		return
	}

	c.JSON(http.StatusOK, records)
}
