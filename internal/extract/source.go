package extract

// CourseText is the raw text of one course as read from the registration
// page, before any parsing.
type CourseText struct {
	Title      string
	Registered bool
	Meetings   []MeetingText
	FinalExam  string
	Seats      string
	Instructor string
}

// MeetingTextSource yields the courses of one page snapshot. Implementations
// own all document-tree access.
type MeetingTextSource interface {
	Courses() ([]CourseText, error)
}

// StaticSource is a MeetingTextSource over courses already in memory.
type StaticSource []CourseText

// Courses returns the static course list.
func (s StaticSource) Courses() ([]CourseText, error) {
	return s, nil
}
