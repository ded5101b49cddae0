package lifestats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		age   int
	}{
		{"exact birthday", date(2000, 1, 1), date(2025, 1, 1), 25},
		{"day before birthday", date(2000, 6, 15), date(2025, 6, 14), 24},
		{"day after birthday", date(2000, 6, 15), date(2025, 6, 16), 25},
		{"born on leap day, non-leap Feb 28", date(2000, 2, 29), date(2025, 2, 28), 24},
		{"born on leap day, non-leap Mar 1", date(2000, 2, 29), date(2025, 3, 1), 25},
		{"born today", date(2025, 5, 5), date(2025, 5, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := Compute(tt.birth, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.age, stats.Age)
		})
	}
}

func TestComputeDaysLived(t *testing.T) {
	stats, err := Compute(date(2000, 1, 1), date(2000, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DaysLived)

	stats, err = Compute(date(2000, 1, 1), date(2000, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DaysLived)

	// 2000 was a leap year: 366 days to the next Jan 1.
	stats, err = Compute(date(2000, 1, 1), date(2001, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 366, stats.DaysLived)
}

func TestComputeDaysLivedMonotonic(t *testing.T) {
	birth := date(1990, 7, 20)
	prev := -1
	for day := 0; day < 400; day++ {
		stats, err := Compute(birth, date(2020, 1, 1).AddDate(0, 0, day))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.DaysLived, prev)
		prev = stats.DaysLived
	}
}

func TestComputeBounds(t *testing.T) {
	births := []time.Time{
		date(2025, 8, 30),
		date(2000, 1, 1),
		date(1950, 12, 31),
		date(1920, 3, 14), // older than the life expectancy constant
	}
	now := date(2025, 8, 31)

	for _, birth := range births {
		stats, err := Compute(birth, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.DaysRemaining, 0)
		assert.GreaterOrEqual(t, stats.LifePercentage, 0.0)
		assert.LessOrEqual(t, stats.LifePercentage, 100.0)
	}
}

func TestComputePastLifeExpectancy(t *testing.T) {
	stats, err := Compute(date(1920, 1, 1), date(2025, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DaysRemaining)
	assert.Equal(t, 100.0, stats.LifePercentage)
}

func TestComputeFutureBirthDate(t *testing.T) {
	_, err := Compute(date(2030, 1, 1), date(2025, 1, 1))
	assert.ErrorIs(t, err, ErrFutureBirthDate)
}

func TestComputeMissingBirthDate(t *testing.T) {
	_, err := Compute(time.Time{}, date(2025, 1, 1))
	assert.ErrorIs(t, err, ErrMissingBirthDate)
}

func TestComputeUsesUTCCalendarDay(t *testing.T) {
	// 23:30 UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 1, 1, 23, 30, 0, 0, loc)

	stats, err := Compute(date(2000, 1, 1), now)
	require.NoError(t, err)
	assert.Equal(t, 25, stats.Age)

	ref, err := Compute(date(2000, 1, 1), date(2025, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, ref.DaysLived, stats.DaysLived)
}

func TestTotalExpectedDaysConstant(t *testing.T) {
	assert.Equal(t, 29220, TotalExpectedDays)
}
