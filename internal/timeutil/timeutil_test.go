package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberhub/barberhub-api/internal/models"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(monday.Year(), monday.Month(), monday.Day(), hour, min, 0, 0, time.UTC)
}

func TestParseHM(t *testing.T) {
	got, ok := ParseHM("09:30", monday)
	require.True(t, ok)
	assert.Equal(t, at(9, 30), got)

	_, ok = ParseHM("25:00", monday)
	assert.False(t, ok)

	_, ok = ParseHM("nine", monday)
	assert.False(t, ok)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"touching endpoints", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}
}

func TestWithinAvailability(t *testing.T) {
	av := &models.Availability{
		Schedule: models.WeekSchedule{
			"Monday": {
				{Start: "09:00", End: "18:00", Breaks: []models.BreakWindow{{Start: "12:00", End: "13:00"}}},
			},
		},
	}

	assert.True(t, WithinAvailability(av, at(9, 0), at(10, 0)))
	assert.True(t, WithinAvailability(av, at(17, 0), at(18, 0)))

	// Outside the block.
	assert.False(t, WithinAvailability(av, at(8, 0), at(9, 0)))
	assert.False(t, WithinAvailability(av, at(17, 30), at(18, 30)))

	// Crossing the lunch break.
	assert.False(t, WithinAvailability(av, at(11, 30), at(12, 30)))

	// Day without any blocks.
	tuesday := monday.AddDate(0, 0, 1)
	assert.False(t, WithinAvailability(av, tuesday.Add(10*time.Hour), tuesday.Add(11*time.Hour)))

	assert.False(t, WithinAvailability(nil, at(9, 0), at(10, 0)))
}

func TestWithinAvailabilitySpecialDates(t *testing.T) {
	av := &models.Availability{
		Schedule: models.WeekSchedule{
			"Monday": {{Start: "09:00", End: "18:00"}},
		},
		SpecialDates: []models.SpecialDate{
			{Date: monday, IsAvailable: false},
		},
	}

	// Closure wins over the weekly schedule.
	assert.False(t, WithinAvailability(av, at(10, 0), at(11, 0)))

	// A special opening replaces the day's blocks entirely.
	av.SpecialDates = []models.SpecialDate{
		{Date: monday, IsAvailable: true, StartTime: "14:00", EndTime: "16:00"},
	}
	assert.True(t, WithinAvailability(av, at(14, 0), at(15, 0)))
	assert.False(t, WithinAvailability(av, at(10, 0), at(11, 0)))
}

func TestValidBlock(t *testing.T) {
	assert.True(t, ValidBlock(models.WorkBlock{Start: "09:00", End: "18:00"}))
	assert.True(t, ValidBlock(models.WorkBlock{
		Start: "09:00", End: "18:00",
		Breaks: []models.BreakWindow{{Start: "12:00", End: "13:00"}},
	}))

	assert.False(t, ValidBlock(models.WorkBlock{Start: "18:00", End: "09:00"}))
	assert.False(t, ValidBlock(models.WorkBlock{Start: "bad", End: "18:00"}))
	assert.False(t, ValidBlock(models.WorkBlock{
		Start: "09:00", End: "18:00",
		Breaks: []models.BreakWindow{{Start: "08:00", End: "10:00"}},
	}))
	assert.False(t, ValidBlock(models.WorkBlock{
		Start: "09:00", End: "18:00",
		Breaks: []models.BreakWindow{{Start: "13:00", End: "12:00"}},
	}))
}
