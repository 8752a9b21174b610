package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDays(t *testing.T) {
	tests := []struct {
		name string
		days DaySet
		want string
	}{
		{name: "weekdays", days: DaySet{MO, TU, WE, TH, FR}, want: "every weekday"},
		{name: "single", days: DaySet{TH}, want: "every Thursday"},
		{name: "monday", days: DaySet{MO}, want: "every Monday"},
		{name: "several", days: DaySet{MO, WE, FR}, want: "Mon, Wed, Fri"},
		{name: "repeated", days: DaySet{TU, TU}, want: "every Tuesday"},
		{name: "empty", days: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDays(tt.days))
		})
	}
}

func TestFormatMeeting(t *testing.T) {
	m := Meeting{
		Type:     "Lecture",
		Time:     MeetingTimeRange{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 9, Minute: 50}},
		Days:     DaySet{MO, WE, FR},
		Location: "Wellman 2",
	}
	assert.Equal(t, "Lecture  9:00 AM - 9:50 AM, Mon, Wed, Fri @ Wellman 2", FormatMeeting(m))

	m.Location = ""
	m.Days = DaySet{TH}
	m.Time = MeetingTimeRange{Start: TimeOfDay{Hour: 15, Minute: 10}, End: TimeOfDay{Hour: 18}}
	assert.Equal(t, "Lecture  3:10 PM - 6:00 PM, every Thursday", FormatMeeting(m))
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   TimeOfDay
		want string
	}{
		{in: TimeOfDay{}, want: "12:00 AM"},
		{in: TimeOfDay{Hour: 9, Minute: 5}, want: "9:05 AM"},
		{in: TimeOfDay{Hour: 12, Minute: 30}, want: "12:30 PM"},
		{in: TimeOfDay{Hour: 13, Minute: 15}, want: "1:15 PM"},
		{in: TimeOfDay{Hour: 23, Minute: 5}, want: "11:05 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.in))
		})
	}
}
