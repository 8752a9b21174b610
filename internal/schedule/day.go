package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Day is a weekday token. Only Monday through Friday are modelled.
type Day string

const (
	MO Day = "MO"
	TU Day = "TU"
	WE Day = "WE"
	TH Day = "TH"
	FR Day = "FR"
)

var letterDays = map[rune]Day{
	'M': MO,
	'T': TU,
	'W': WE,
	'R': TH,
	'F': FR,
}

var dayLetters = map[Day]string{
	MO: "M",
	TU: "T",
	WE: "W",
	TH: "R",
	FR: "F",
}

var dayWeekdays = map[Day]time.Weekday{
	MO: time.Monday,
	TU: time.Tuesday,
	WE: time.Wednesday,
	TH: time.Thursday,
	FR: time.Friday,
}

var dayRRule = map[Day]rrule.Weekday{
	MO: rrule.MO,
	TU: rrule.TU,
	WE: rrule.WE,
	TH: rrule.TH,
	FR: rrule.FR,
}

// Letter returns the single-letter registrar code (R for Thursday).
func (d Day) Letter() string {
	return dayLetters[d]
}

// Weekday returns the matching time.Weekday.
func (d Day) Weekday() time.Weekday {
	return dayWeekdays[d]
}

// RRule returns the matching rrule weekday.
func (d Day) RRule() rrule.Weekday {
	return dayRRule[d]
}

// Valid reports whether d is one of the five modelled tokens.
func (d Day) Valid() bool {
	_, ok := dayLetters[d]
	return ok
}

// DaySet is an ordered list of days. Duplicates are preserved as decoded.
type DaySet []Day

// Contains reports whether d appears in the set.
func (s DaySet) Contains(d Day) bool {
	for _, x := range s {
		if x == d {
			return true
		}
	}
	return false
}

// Unique returns a copy with repeated days removed, keeping first appearance.
func (s DaySet) Unique() DaySet {
	seen := make(map[Day]bool, len(s))
	out := make(DaySet, 0, len(s))
	for _, d := range s {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// String returns the letter form, e.g. "MWF".
func (s DaySet) String() string {
	var b strings.Builder
	for _, d := range s {
		b.WriteString(d.Letter())
	}
	return b.String()
}

// Decode converts a letter sequence such as "MWF" into day tokens, one per
// letter. Letters outside M, T, W, R, F are dropped.
func Decode(letters string) DaySet {
	days := make(DaySet, 0, len(letters))
	for _, r := range letters {
		if d, ok := letterDays[r]; ok {
			days = append(days, d)
		}
	}
	return days
}

var verboseDays = map[string]string{
	"monday":    "M",
	"mon":       "M",
	"mo":        "M",
	"tuesday":   "T",
	"tues":      "T",
	"tue":       "T",
	"tu":        "T",
	"wednesday": "W",
	"wed":       "W",
	"we":        "W",
	"thursday":  "R",
	"thurs":     "R",
	"thur":      "R",
	"thu":       "R",
	"th":        "R",
	"friday":    "F",
	"fri":       "F",
	"fr":        "F",
}

var (
	nonLetters = regexp.MustCompile(`[^A-Za-z]+`)
	letterCode = regexp.MustCompile(`^[MTWRF]+$`)
)

// NormalizeVerboseDays maps day names ("Monday", "Tue", "Thurs") to the
// letter alphabet. Day names win over letter codes, so "FR" is Friday.
// Other tokens already in letter form pass through; anything unrecognized
// is dropped.
func NormalizeVerboseDays(text string) string {
	var b strings.Builder
	for _, tok := range nonLetters.Split(text, -1) {
		if tok == "" {
			continue
		}
		if l, ok := verboseDays[strings.ToLower(tok)]; ok {
			b.WriteString(l)
			continue
		}
		if letterCode.MatchString(tok) {
			b.WriteString(tok)
		}
	}
	return b.String()
}

// ParseDays decodes either a letter code or verbose day names.
func ParseDays(text string) DaySet {
	text = strings.TrimSpace(text)
	if letterCode.MatchString(text) {
		return Decode(text)
	}
	return Decode(NormalizeVerboseDays(text))
}
