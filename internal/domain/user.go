package domain

import "time"

// Profession is the visual theme selection picked during onboarding.
type Profession string

const (
	ProfessionEngineer  Profession = "engineer"
	ProfessionDoctor    Profession = "doctor"
	ProfessionTeacher   Profession = "teacher"
	ProfessionArtist    Profession = "artist"
	ProfessionAthlete   Profession = "athlete"
	ProfessionScientist Profession = "scientist"
	ProfessionWriter    Profession = "writer"
	ProfessionMusician  Profession = "musician"
	ProfessionChef      Profession = "chef"
	ProfessionOther     Profession = "other"
)

func (p Profession) IsValid() bool {
	switch p {
	case ProfessionEngineer, ProfessionDoctor, ProfessionTeacher,
		ProfessionArtist, ProfessionAthlete, ProfessionScientist,
		ProfessionWriter, ProfessionMusician, ProfessionChef, ProfessionOther:
		return true
	}
	return false
}

type User struct {
	ID                   int         `json:"id" db:"id"`
	Email                string      `json:"email" db:"email"`
	PasswordHash         string      `json:"-" db:"password_hash"`
	FullName             string      `json:"full_name" db:"full_name"`
	BirthDate            *time.Time  `json:"-" db:"birth_date"`
	Profession           *Profession `json:"profession" db:"profession"`
	IsOnboardingComplete bool        `json:"is_onboarding_complete" db:"is_onboarding_complete"`
	CreatedAt            time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at" db:"updated_at"`
}

// BirthDateString formats the birth date as a calendar date, empty when unset.
func (u *User) BirthDateString() string {
	if u.BirthDate == nil {
		return ""
	}
	return u.BirthDate.Format("2006-01-02")
}

// ParseBirthDate parses an ISO calendar date and rejects dates in the future.
func ParseBirthDate(value string) (time.Time, error) {
	birthDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidBirthDate
	}
	if birthDate.After(time.Now().UTC()) {
		return time.Time{}, ErrInvalidBirthDate
	}
	return birthDate, nil
}
