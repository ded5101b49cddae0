package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxProfileUpdateDays is the lifetime cap on distinct calendar days with at
// least one accepted profile edit. Multiple edits on the same UTC day count
// once.
const MaxProfileUpdateDays = 3

// UpdateCategory describes which profile fields an accepted edit touched.
type UpdateCategory string

const (
	UpdateCategoryName        UpdateCategory = "name"
	UpdateCategoryBirthDate   UpdateCategory = "birth_date"
	UpdateCategoryProfession  UpdateCategory = "profession"
	UpdateCategoryFullProfile UpdateCategory = "full_profile"
)

// ProfileUpdate is one append-only audit record of an accepted profile edit.
// Records are never mutated or deleted.
type ProfileUpdate struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    int             `json:"user_id" db:"user_id"`
	Category  UpdateCategory  `json:"category" db:"category"`
	OldValue  json.RawMessage `json:"old_value,omitempty" db:"old_value"`
	NewValue  json.RawMessage `json:"new_value,omitempty" db:"new_value"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
