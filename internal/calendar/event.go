package calendar

import (
	"time"

	"github.com/Flyrell/coursecal/internal/schedule"
)

// Event is a calendar entry to export: either Recurring or Single.
type Event interface {
	isEvent()
	// Title returns the event summary.
	Title() string
}

// Recurring is a weekly class meeting bounded by a quarter.
type Recurring struct {
	Summary      string
	Description  string
	Location     string
	Time         schedule.MeetingTimeRange
	Days         schedule.DaySet
	Until        time.Time // recurrence end, rendered in UTC
	QuarterStart time.Time // first instruction day; only the date is used
}

// Single is a one-off dated event such as a final exam. A zero End means
// DefaultDuration after Start.
type Single struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// DefaultDuration applies to single events with no known end.
const DefaultDuration = 2 * time.Hour

func (Recurring) isEvent() {}
func (Single) isEvent()    {}

func (r Recurring) Title() string { return r.Summary }
func (s Single) Title() string    { return s.Summary }

// EndOrDefault returns End, or Start plus DefaultDuration when End is unset.
func (s Single) EndOrDefault() time.Time {
	if s.End.IsZero() {
		return s.Start.Add(DefaultDuration)
	}
	return s.End
}
