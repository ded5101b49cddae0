// Package lifestats derives life-statistics figures from a birth date.
// All calendar arithmetic is done on UTC calendar days.
package lifestats

import (
	"errors"
	"time"
)

// LifeExpectancyYears is the fixed assumed lifespan used as the denominator
// for the life percentage. Not user-specific.
const LifeExpectancyYears = 80

// TotalExpectedDays = LifeExpectancyYears * 365.25.
const TotalExpectedDays = int(LifeExpectancyYears * 365.25)

var (
	ErrMissingBirthDate = errors.New("birth date is missing")
	ErrFutureBirthDate  = errors.New("birth date is in the future")
)

// Stats holds the derived figures. Never persisted; recomputed on every read.
type Stats struct {
	Age            int     `json:"age"`
	DaysLived      int     `json:"days_lived"`
	DaysRemaining  int     `json:"days_remaining"`
	LifePercentage float64 `json:"life_percentage"`
}

// Compute derives Stats from birthDate evaluated at now.
//
// Age is calendar-aware whole years: the year difference, minus one if the
// birthday has not yet occurred in the current year. Days lived counts whole
// UTC days from the birth date (inclusive) up to but excluding the evaluation
// day, so the value grows by exactly one per day.
func Compute(birthDate, now time.Time) (Stats, error) {
	if birthDate.IsZero() {
		return Stats{}, ErrMissingBirthDate
	}

	birth := truncateToUTCDay(birthDate)
	today := truncateToUTCDay(now)

	if birth.After(today) {
		return Stats{}, ErrFutureBirthDate
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}

	daysLived := int(today.Sub(birth).Hours() / 24)

	daysRemaining := TotalExpectedDays - daysLived
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	percentage := 100 * float64(daysLived) / float64(TotalExpectedDays)
	if percentage > 100 {
		percentage = 100
	}

	return Stats{
		Age:            age,
		DaysLived:      daysLived,
		DaysRemaining:  daysRemaining,
		LifePercentage: percentage,
	}, nil
}

// ComputeNow evaluates Compute against the current wall clock.
func ComputeNow(birthDate time.Time) (Stats, error) {
	return Compute(birthDate, time.Now())
}

func truncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
