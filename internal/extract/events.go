package extract

import (
	"strings"

	"github.com/Flyrell/coursecal/internal/calendar"
	"github.com/Flyrell/coursecal/internal/quarter"
	"github.com/Flyrell/coursecal/internal/schedule"
)

// FinalExamLocation is used for exams, whose rooms are not listed.
const FinalExamLocation = "TBA"

// Events turns courses into calendar events bounded by window: one
// recurring event per meeting, plus a single event per listed final exam.
// Page order is preserved.
func Events(courses []schedule.Course, window quarter.Window) []calendar.Event {
	var events []calendar.Event

	for _, c := range courses {
		for _, m := range c.Meetings {
			events = append(events, calendar.Recurring{
				Summary:      strings.TrimSpace(c.Code + " " + m.Type),
				Description:  c.Name,
				Location:     m.Location,
				Time:         m.Time,
				Days:         m.Days,
				Until:        window.Until(),
				QuarterStart: window.InstructionStart,
			})
		}

		if c.FinalExam != nil {
			events = append(events, calendar.Single{
				Summary:     c.Code + " Final Exam",
				Description: "Final Exam for " + c.Name,
				Location:    FinalExamLocation,
				Start:       *c.FinalExam,
			})
		}
	}

	return events
}
