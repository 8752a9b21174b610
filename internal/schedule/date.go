package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FirstOn returns the first date on or after start that falls on d, at
// midnight in start's location. It never moves backward.
func FirstOn(start time.Time, d Day) (time.Time, error) {
	if !d.Valid() {
		return time.Time{}, fmt.Errorf("%w: day %q", ErrMalformedInput, string(d))
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{d.RRule()},
		Dtstart:   truncateToDay(start),
		Count:     1,
	})
	if err != nil {
		return time.Time{}, err
	}

	dates := r.All()
	if len(dates) == 0 {
		return time.Time{}, fmt.Errorf("no %s on or after %s", d, start.Format("2006-01-02"))
	}
	return dates[0], nil
}

// At combines the calendar date of day with the clock time t in loc.
func At(day time.Time, t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// Occurrences expands a weekly meeting into concrete dates between from and
// until (inclusive), sorted ascending. Repeated days are expanded once.
func Occurrences(days DaySet, from, until time.Time) ([]time.Time, error) {
	unique := days.Unique()
	if len(unique) == 0 {
		return nil, nil
	}

	byday := make([]rrule.Weekday, len(unique))
	for i, d := range unique {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: day %q", ErrMalformedInput, string(d))
		}
		byday[i] = d.RRule()
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byday,
		Dtstart:   truncateToDay(from),
		Until:     until,
	})
	if err != nil {
		return nil, err
	}
	return r.All(), nil
}
