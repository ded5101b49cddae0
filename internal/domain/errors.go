package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidInput       = errors.New("invalid input")

	// ErrUpdateLimitReached is the expected business rejection once a user has
	// accepted profile edits on MaxProfileUpdateDays distinct days.
	ErrUpdateLimitReached = errors.New("profile update limit reached")

	// ErrQuotaCheckFailed means the update-day count could not be retrieved.
	// The governor is fail-closed: this denies the save, but callers surface
	// it as a retryable failure, not as the limit being reached.
	ErrQuotaCheckFailed = errors.New("profile update quota check failed")

	ErrInvalidBirthDate          = errors.New("invalid birth date")
	ErrInvalidProfession         = errors.New("invalid profession")
	ErrOnboardingAlreadyComplete = errors.New("onboarding already complete")

	ErrVisitNotFound      = errors.New("visit not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrReflectionNotFound = errors.New("reflection not found")
	ErrRelativeNotFound   = errors.New("relative not found")
)
