package timeutil

import (
	"time"

	"github.com/barberhub/barberhub-api/internal/models"
)

// ParseHM parses a "HH:MM" wall-clock time onto the given date.
func ParseHM(hm string, day time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WithinAvailability reports whether [start, end) falls inside one of the
// barber's declared work blocks, outside its breaks. Special dates take
// precedence over the weekly schedule: a closure rejects the whole day, a
// special opening replaces the day's blocks.
func WithinAvailability(av *models.Availability, start, end time.Time) bool {
	if av == nil {
		return false
	}

	for _, sd := range av.SpecialDates {
		if !sameDay(sd.Date, start) {
			continue
		}
		if !sd.IsAvailable {
			return false
		}
		blockStart, ok1 := ParseHM(sd.StartTime, start)
		blockEnd, ok2 := ParseHM(sd.EndTime, start)
		if !ok1 || !ok2 {
			return false
		}
		return !start.Before(blockStart) && !end.After(blockEnd)
	}

	blocks := av.Schedule[start.Weekday().String()]
	for _, b := range blocks {
		blockStart, ok1 := ParseHM(b.Start, start)
		blockEnd, ok2 := ParseHM(b.End, start)
		if !ok1 || !ok2 {
			continue
		}
		if start.Before(blockStart) || end.After(blockEnd) {
			continue
		}
		if intersectsBreak(b.Breaks, start, end) {
			continue
		}
		return true
	}
	return false
}

func intersectsBreak(breaks []models.BreakWindow, start, end time.Time) bool {
	for _, br := range breaks {
		brStart, ok1 := ParseHM(br.Start, start)
		brEnd, ok2 := ParseHM(br.End, start)
		if !ok1 || !ok2 {
			continue
		}
		if Overlaps(start, end, brStart, brEnd) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ValidBlock checks a "HH:MM" work block: parseable bounds, start before
// end, breaks contained in the block.
func ValidBlock(b models.WorkBlock) bool {
	day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	start, ok1 := ParseHM(b.Start, day)
	end, ok2 := ParseHM(b.End, day)
	if !ok1 || !ok2 || !start.Before(end) {
		return false
	}
	for _, br := range b.Breaks {
		brStart, ok1 := ParseHM(br.Start, day)
		brEnd, ok2 := ParseHM(br.End, day)
		if !ok1 || !ok2 || !brStart.Before(brEnd) {
			return false
		}
		if brStart.Before(start) || brEnd.After(end) {
			return false
		}
	}
	return true
}
