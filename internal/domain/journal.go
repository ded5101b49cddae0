package domain

import "time"

// Visit is one travel entry shown on the world map.
type Visit struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Country   string    `json:"country" db:"country"`
	City      *string   `json:"city" db:"city"`
	Year      int       `json:"year" db:"year"`
	Note      *string   `json:"note" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Book struct {
	ID         int        `json:"id" db:"id"`
	UserID     int        `json:"user_id" db:"user_id"`
	Title      string     `json:"title" db:"title"`
	Author     *string    `json:"author" db:"author"`
	Rating     *int       `json:"rating" db:"rating"`
	FinishedOn *time.Time `json:"finished_on" db:"finished_on"`
	Note       *string    `json:"note" db:"note"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

type Workout struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	Activity        string    `json:"activity" db:"activity"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	PerformedOn     time.Time `json:"performed_on" db:"performed_on"`
	Note            *string   `json:"note" db:"note"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type Reflection struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Content     string    `json:"content" db:"content"`
	Mood        *string   `json:"mood" db:"mood"`
	ReflectedOn time.Time `json:"reflected_on" db:"reflected_on"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Relative struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	FullName  string     `json:"full_name" db:"full_name"`
	Relation  string     `json:"relation" db:"relation"`
	BirthDate *time.Time `json:"birth_date" db:"birth_date"`
	Note      *string    `json:"note" db:"note"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
