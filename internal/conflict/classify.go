package conflict

import "github.com/Flyrell/coursecal/internal/schedule"

// Status is the availability of a course relative to the committed schedule.
type Status int

const (
	Available Status = iota
	InSchedule
	Conflict
	Full
)

func (s Status) String() string {
	switch s {
	case InSchedule:
		return "in schedule"
	case Conflict:
		return "conflict"
	case Full:
		return "full"
	default:
		return "available"
	}
}

// Options toggles the individual checks of Classify.
type Options struct {
	ShowConflicts    bool
	ShowSeats        bool
	ShowTimeWarnings bool
	// EarlyCutoff flags meetings starting strictly before it.
	EarlyCutoff schedule.TimeOfDay
	// LateCutoff flags meetings ending strictly after it.
	LateCutoff schedule.TimeOfDay
}

// DefaultOptions enables every check with 09:00 and 19:00 cutoffs.
func DefaultOptions() Options {
	return Options{
		ShowConflicts:    true,
		ShowSeats:        true,
		ShowTimeWarnings: true,
		EarlyCutoff:      schedule.TimeOfDay{Hour: 9},
		LateCutoff:       schedule.TimeOfDay{Hour: 19},
	}
}

// Annotation is the derived status of one course.
type Annotation struct {
	Course       string
	Status       Status
	ConflictWith string
	EarlyMorning bool
	LateNight    bool
}

// Classify derives the status and time-of-day flags of course against the
// committed schedule. Status precedence is in-schedule, conflict, full,
// then available.
func Classify(course schedule.Course, committed []schedule.Entry, opts Options) Annotation {
	a := Annotation{Course: course.Code, Status: Available}

	switch {
	case inSchedule(course, committed):
		a.Status = InSchedule
	case opts.ShowConflicts:
		if name, ok := FindCourseConflict(course, committed); ok {
			a.Status = Conflict
			a.ConflictWith = name
		}
	}

	if a.Status == Available && opts.ShowSeats && course.Seats.Full() {
		a.Status = Full
	}

	if opts.ShowTimeWarnings {
		for _, m := range course.Meetings {
			if m.Time.Start.Before(opts.EarlyCutoff) {
				a.EarlyMorning = true
			}
			if opts.LateCutoff.Before(m.Time.End) {
				a.LateNight = true
			}
		}
	}

	return a
}

// ClassifyAll classifies each course in order.
func ClassifyAll(courses []schedule.Course, committed []schedule.Entry, opts Options) []Annotation {
	out := make([]Annotation, 0, len(courses))
	for _, c := range courses {
		out = append(out, Classify(c, committed, opts))
	}
	return out
}

func inSchedule(course schedule.Course, committed []schedule.Entry) bool {
	for _, e := range committed {
		if e.CourseName == course.Code {
			return true
		}
	}
	return false
}
