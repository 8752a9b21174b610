package schedule

import (
	"fmt"
	"strings"
)

var dayNames = map[Day]string{
	MO: "Monday",
	TU: "Tuesday",
	WE: "Wednesday",
	TH: "Thursday",
	FR: "Friday",
}

// FormatDays returns a human-readable description of a day set, e.g.
// "every weekday", "every Monday" or "Mon, Wed, Fri".
func FormatDays(days DaySet) string {
	unique := days.Unique()
	if isWeekdays(unique) {
		return "every weekday"
	}
	if len(unique) == 1 {
		return "every " + dayNames[unique[0]]
	}
	names := make([]string, len(unique))
	for i, d := range unique {
		names[i] = dayNames[d][:3]
	}
	return strings.Join(names, ", ")
}

// FormatMeeting returns a full human-readable line for a meeting:
// "Lecture  9:00 AM - 9:50 AM, Mon, Wed, Fri @ Wellman 2".
func FormatMeeting(m Meeting) string {
	result := fmt.Sprintf("%s  %s, %s", m.Type, FormatRange(m.Time), FormatDays(m.Days))
	if m.Location != "" {
		result += " @ " + m.Location
	}
	return strings.TrimSpace(result)
}

func isWeekdays(days DaySet) bool {
	if len(days) != 5 {
		return false
	}
	for _, d := range []Day{MO, TU, WE, TH, FR} {
		if !days.Contains(d) {
			return false
		}
	}
	return true
}
