package extract

import (
	"regexp"
	"strings"
)

var (
	timeFragment = regexp.MustCompile(`\d+:\d+`)
	dayFragment  = regexp.MustCompile(`^[MTWRF]+$`)
)

// Fragment is one sibling text node of a meeting block. SmallTitle is set
// when the node carries the registrar's small-title styling.
type Fragment struct {
	Text       string
	SmallTitle bool
}

// MeetingText holds the four classified strings of one meeting block.
type MeetingText struct {
	Type     string
	Time     string
	Days     string
	Location string
}

// Classify assigns each fragment a role using the registrar page layout:
// a small-title fragment is the type, a fragment with H:MM is the time, a
// bare letter code is the days, and the last otherwise unclaimed fragment is
// the location.
func Classify(fragments []Fragment) MeetingText {
	var mt MeetingText
	for i, f := range fragments {
		text := strings.TrimSpace(f.Text)
		switch {
		case f.SmallTitle:
			mt.Type = text
		case timeFragment.MatchString(text):
			mt.Time = text
		case dayFragment.MatchString(text):
			mt.Days = text
		case i == len(fragments)-1:
			mt.Location = text
		}
	}
	return mt
}
