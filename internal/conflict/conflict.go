package conflict

import "github.com/Flyrell/coursecal/internal/schedule"

// Overlaps reports whether two ranges share at least one minute. Boundaries
// are inclusive, so a class ending at 10:00 overlaps one starting at 10:00.
func Overlaps(a, b schedule.MeetingTimeRange) bool {
	return a.Start.Minutes() <= b.End.Minutes() && a.End.Minutes() >= b.Start.Minutes()
}

// FindConflict returns the name of the first committed course that shares a
// day and an overlapping time with candidate. Entries, their meetings and
// the candidate's days are scanned in order and the first hit wins. A
// candidate with no days is treated as TBA and never conflicts.
func FindConflict(candidate schedule.Meeting, committed []schedule.Entry) (string, bool) {
	if len(candidate.Days) == 0 {
		return "", false
	}

	for _, entry := range committed {
		for _, m := range entry.Meetings {
			for _, d := range candidate.Days {
				if m.Days.Contains(d) && Overlaps(candidate.Time, m.Time) {
					return entry.CourseName, true
				}
			}
		}
	}

	return "", false
}

// FindCourseConflict checks each meeting of course against committed,
// ignoring the committed entry for the course itself.
func FindCourseConflict(course schedule.Course, committed []schedule.Entry) (string, bool) {
	others := make([]schedule.Entry, 0, len(committed))
	for _, e := range committed {
		if e.CourseName != course.Code {
			others = append(others, e)
		}
	}

	for _, m := range course.Meetings {
		if name, ok := FindConflict(m, others); ok {
			return name, true
		}
	}
	return "", false
}
