package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		// 12-hour
		{name: "midnight", input: "12:00 AM", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "noon", input: "12:00 PM", want: TimeOfDay{Hour: 12, Minute: 0}},
		{name: "1:15 PM", input: "1:15 PM", want: TimeOfDay{Hour: 13, Minute: 15}},
		{name: "9:30am", input: "9:30am", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "12:30 am", input: "12:30 am", want: TimeOfDay{Hour: 0, Minute: 30}},
		{name: "11:59 PM", input: "11:59 PM", want: TimeOfDay{Hour: 23, Minute: 59}},
		{name: "padded", input: "  10:00 AM ", want: TimeOfDay{Hour: 10, Minute: 0}},

		// 24-hour
		{name: "14:00", input: "14:00", want: TimeOfDay{Hour: 14, Minute: 0}},
		{name: "09:30", input: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "00:00", input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},

		// Errors
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "TBA", wantErr: true},
		{name: "hour 13 pm", input: "13:00 PM", wantErr: true},
		{name: "hour 0 am", input: "0:30 AM", wantErr: true},
		{name: "hour 24", input: "24:00", wantErr: true},
		{name: "minute 60", input: "9:60 AM", wantErr: true},
		{name: "no minutes", input: "9 AM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClockTimeRoundTrip(t *testing.T) {
	for h := 1; h <= 12; h++ {
		for _, m := range []int{0, 5, 30, 59} {
			for _, period := range []string{"AM", "PM"} {
				input := FormatClock(TimeOfDay{Hour: h % 12, Minute: m})
				if period == "PM" {
					input = FormatClock(TimeOfDay{Hour: h%12 + 12, Minute: m})
				}

				first, err := ParseClockTime(input)
				require.NoError(t, err, input)

				second, err := ParseClockTime(first.String())
				require.NoError(t, err, first.String())

				assert.Equal(t, first, second, input)
				assert.Equal(t, first.String(), second.String(), input)
			}
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MeetingTimeRange
		wantErr bool
	}{
		{
			name:  "morning",
			input: "9:00 AM - 9:50 AM",
			want:  MeetingTimeRange{Start: TimeOfDay{9, 0}, End: TimeOfDay{9, 50}},
		},
		{
			name:  "crosses noon",
			input: "11:00 AM - 12:50 PM",
			want:  MeetingTimeRange{Start: TimeOfDay{11, 0}, End: TimeOfDay{12, 50}},
		},
		{
			name:  "no spaces lowercase",
			input: "1:10pm-2:00pm",
			want:  MeetingTimeRange{Start: TimeOfDay{13, 10}, End: TimeOfDay{14, 0}},
		},
		{
			name:  "en dash",
			input: "6:10 PM – 9:00 PM",
			want:  MeetingTimeRange{Start: TimeOfDay{18, 10}, End: TimeOfDay{21, 0}},
		},
		{
			name:  "surrounding text",
			input: "Time: 3:10 PM - 4:00 PM (PST)",
			want:  MeetingTimeRange{Start: TimeOfDay{15, 10}, End: TimeOfDay{16, 0}},
		},
		{
			name:  "inverted passes through",
			input: "4:00 PM - 3:00 PM",
			want:  MeetingTimeRange{Start: TimeOfDay{16, 0}, End: TimeOfDay{15, 0}},
		},

		{name: "TBA", input: "TBA", wantErr: true},
		{name: "single time", input: "9:00 AM", wantErr: true},
		{name: "missing period", input: "9:00 - 9:50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeetingTimeRangeInverted(t *testing.T) {
	assert.False(t, MeetingTimeRange{Start: TimeOfDay{9, 0}, End: TimeOfDay{10, 0}}.Inverted())
	assert.False(t, MeetingTimeRange{Start: TimeOfDay{9, 0}, End: TimeOfDay{9, 0}}.Inverted())
	assert.True(t, MeetingTimeRange{Start: TimeOfDay{16, 0}, End: TimeOfDay{15, 0}}.Inverted())
}

func TestTimeOfDayBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeOfDay
		want bool
	}{
		{"earlier hour", TimeOfDay{8, 0}, TimeOfDay{9, 0}, true},
		{"later hour", TimeOfDay{10, 0}, TimeOfDay{9, 0}, false},
		{"same hour earlier minute", TimeOfDay{9, 0}, TimeOfDay{9, 30}, true},
		{"equal", TimeOfDay{9, 0}, TimeOfDay{9, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:00", TimeOfDay{Hour: 9, Minute: 0}.String())
	assert.Equal(t, "17:30", TimeOfDay{Hour: 17, Minute: 30}.String())
	assert.Equal(t, "00:00", TimeOfDay{Hour: 0, Minute: 0}.String())
}
