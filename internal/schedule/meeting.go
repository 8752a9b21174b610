package schedule

import "time"

// Meeting is one weekly time slot of a course (a lecture, discussion or lab).
type Meeting struct {
	Type      string
	Time      MeetingTimeRange
	Days      DaySet
	Location  string
	CourseRef string
}

// Entry is one committed course with its meetings in page order.
type Entry struct {
	CourseName string
	Meetings   []Meeting
}

// SeatInfo is the parsed seat availability of a course. Known is false when
// the page did not say.
type SeatInfo struct {
	Known    bool
	Open     int
	Capacity int
	Waitlist int
}

// Full reports whether the course is known to have no open seats.
func (s SeatInfo) Full() bool {
	return s.Known && s.Open <= 0
}

// Course is a scraped course with its parsed meetings.
type Course struct {
	Code       string // short code, e.g. "ECS 32A"
	Name       string // course title
	Title      string // raw title text as scraped
	Registered bool
	Meetings   []Meeting
	FinalExam  *time.Time
	Seats      SeatInfo
	Instructor string
}

// Entry projects the course onto a schedule entry keyed by its short code.
func (c Course) Entry() Entry {
	return Entry{CourseName: c.Code, Meetings: c.Meetings}
}

// Entries projects courses onto schedule entries, preserving order.
func Entries(courses []Course) []Entry {
	out := make([]Entry, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Entry())
	}
	return out
}
