package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 9:30 AM, 9:30pm
	clockAMPM = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	// 14:00, 09:30
	clock24h = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	// 9:00 AM - 9:50 AM, anywhere in the text
	clockRange = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(am|pm)\s*[-–]\s*(\d{1,2}:\d{2})\s*(am|pm)`)
)

// TimeOfDay represents a clock time without a date component.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String returns TimeOfDay in "HH:MM" format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// MeetingTimeRange is the clock-time span of one meeting within a day.
// Start is not guaranteed to precede End; scraped data is kept as-is.
type MeetingTimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Inverted reports whether the range ends before it starts.
func (r MeetingTimeRange) Inverted() bool {
	return r.End.Before(r.Start)
}

// String returns the range as "HH:MM-HH:MM".
func (r MeetingTimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// ParseClockTime parses "H:MM AM/PM" or 24-hour "H:MM" into a TimeOfDay.
func ParseClockTime(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if m := clockAMPM.FindStringSubmatch(s); m != nil {
		return parseHourMinuteAMPM(m[1], m[2], m[3])
	}

	if m := clock24h.FindStringSubmatch(s); m != nil {
		return parseHourMinute24(m[1], m[2])
	}

	return TimeOfDay{}, fmt.Errorf("%w: unrecognized time %q", ErrMalformedInput, s)
}

// ParseRange parses "H:MM AM/PM - H:MM AM/PM". Text around the range is ignored.
// The order of start and end is not validated.
func ParseRange(s string) (MeetingTimeRange, error) {
	m := clockRange.FindStringSubmatch(s)
	if m == nil {
		return MeetingTimeRange{}, fmt.Errorf("%w: no time range in %q", ErrMalformedInput, strings.TrimSpace(s))
	}

	start, err := parseHourMinuteAMPM(hourOf(m[1]), minuteOf(m[1]), strings.ToLower(m[2]))
	if err != nil {
		return MeetingTimeRange{}, err
	}
	end, err := parseHourMinuteAMPM(hourOf(m[3]), minuteOf(m[3]), strings.ToLower(m[4]))
	if err != nil {
		return MeetingTimeRange{}, err
	}

	return MeetingTimeRange{Start: start, End: end}, nil
}

// FormatClock renders t as "9:00 AM".
func FormatClock(t TimeOfDay) string {
	suffix := "AM"
	display := t.Hour
	if t.Hour == 0 {
		display = 12
	} else if t.Hour == 12 {
		suffix = "PM"
	} else if t.Hour > 12 {
		display = t.Hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute, suffix)
}

// FormatRange renders r as "9:00 AM - 9:50 AM".
func FormatRange(r MeetingTimeRange) string {
	return fmt.Sprintf("%s - %s", FormatClock(r.Start), FormatClock(r.End))
}

func hourOf(hhmm string) string {
	return hhmm[:strings.IndexByte(hhmm, ':')]
}

func minuteOf(hhmm string) string {
	return hhmm[strings.IndexByte(hhmm, ':')+1:]
}

func parseHourMinuteAMPM(hourStr, minStr, ampm string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range for 12-hour format", ErrMalformedInput, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrMalformedInput, minute)
	}

	if ampm == "am" {
		if hour == 12 {
			hour = 0
		}
	} else {
		if hour != 12 {
			hour += 12
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func parseHourMinute24(hourStr, minStr string) (TimeOfDay, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrMalformedInput, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrMalformedInput, minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
