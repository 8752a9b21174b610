package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Flyrell/coursecal/internal/hashutil"
	"github.com/Flyrell/coursecal/internal/schedule"
	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

// FileName is the name the exported calendar is offered under.
const FileName = "ucdavis-schedule.ics"

// DefaultProductID identifies the generator in the PRODID property.
const DefaultProductID = "-//UC Davis Schedule//EN"

const (
	localLayout = "20060102T150405"
	utcLayout   = "20060102T150405Z"
)

// Mode selects how DTSTART and DTEND are written.
type Mode int

const (
	// ModeLocal writes wall-clock times qualified with a TZID parameter and
	// leaves daylight-saving handling to the calendar client.
	ModeLocal Mode = iota
	// ModeUTC converts to UTC through the timezone database. Weekly
	// recurrences then keep a fixed UTC time across DST changes.
	ModeUTC
)

// ParseMode maps "local" or "utc" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local", "tzid":
		return ModeLocal, nil
	case "utc":
		return ModeUTC, nil
	}
	return ModeLocal, fmt.Errorf("unknown timestamp mode %q (supported: local, utc)", s)
}

func (m Mode) String() string {
	if m == ModeUTC {
		return "utc"
	}
	return "local"
}

// ErrNoDays is returned for a recurring event with an empty day set.
var ErrNoDays = errors.New("recurring event has no days")

// Builder renders events as an iCalendar document.
type Builder struct {
	ProductID string
	Timezone  string
	Mode      Mode
	// Stamp is written as DTSTAMP. When zero, a value derived from each
	// event is used so that output depends only on input.
	Stamp time.Time
}

// NewBuilder returns a Builder for campus-local, TZID-qualified output.
func NewBuilder() *Builder {
	return &Builder{
		ProductID: DefaultProductID,
		Timezone:  schedule.DefaultTimezone,
		Mode:      ModeLocal,
	}
}

// Build renders events into a VCALENDAR document with CRLF line endings.
// Each recurring event becomes one VEVENT per distinct day; each single
// event becomes one VEVENT. Any error aborts the whole document.
func (b *Builder) Build(events []Event) (string, error) {
	loc, err := schedule.LoadLocation(b.timezone())
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetProductId(b.productID())
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	for _, ev := range events {
		switch e := ev.(type) {
		case Recurring:
			if err := b.addRecurring(cal, e, loc); err != nil {
				return "", err
			}
		case Single:
			b.addSingle(cal, e, loc)
		default:
			return "", fmt.Errorf("unsupported event type %T", ev)
		}
	}

	return crlf(cal.Serialize()), nil
}

func (b *Builder) addRecurring(cal *ics.Calendar, e Recurring, loc *time.Location) error {
	days := e.Days.Unique()
	if len(days) == 0 {
		return fmt.Errorf("%w: %q", ErrNoDays, e.Summary)
	}

	quarterStart := time.Date(e.QuarterStart.Year(), e.QuarterStart.Month(), e.QuarterStart.Day(), 0, 0, 0, 0, loc)

	for _, d := range days {
		first, err := schedule.FirstOn(quarterStart, d)
		if err != nil {
			return fmt.Errorf("event %q: %w", e.Summary, err)
		}

		rule := rrule.ROption{
			Freq:      rrule.WEEKLY,
			Until:     e.Until.UTC(),
			Byweekday: []rrule.Weekday{d.RRule()},
		}

		ev := cal.AddEvent(hashutil.EventUID(e.Summary, e.Description, e.Location, string(d), e.Time.String()))
		ev.SetDtStampTime(b.stamp(quarterStart))
		ev.SetSummary(e.Summary)
		ev.SetDescription(e.Description)
		ev.AddRrule(rule.RRuleString())
		b.setTime(ev, ics.ComponentPropertyDtStart, schedule.At(first, e.Time.Start, loc))
		b.setTime(ev, ics.ComponentPropertyDtEnd, schedule.At(first, e.Time.End, loc))
		ev.SetLocation(e.Location)
	}

	return nil
}

func (b *Builder) addSingle(cal *ics.Calendar, e Single, loc *time.Location) {
	start := e.Start.In(loc)
	end := e.EndOrDefault().In(loc)

	ev := cal.AddEvent(hashutil.EventUID(e.Summary, e.Description, e.Location, start.Format(localLayout)))
	ev.SetDtStampTime(b.stamp(start))
	ev.SetSummary(e.Summary)
	ev.SetDescription(e.Description)
	b.setTime(ev, ics.ComponentPropertyDtStart, start)
	b.setTime(ev, ics.ComponentPropertyDtEnd, end)
	ev.SetLocation(e.Location)
}

func (b *Builder) setTime(ev *ics.VEvent, prop ics.ComponentProperty, t time.Time) {
	if b.Mode == ModeUTC {
		ev.SetProperty(prop, t.UTC().Format(utcLayout))
		return
	}
	ev.SetProperty(prop, t.Format(localLayout), &ics.KeyValues{
		Key:   string(ics.ParameterTzid),
		Value: []string{b.timezone()},
	})
}

func (b *Builder) stamp(fallback time.Time) time.Time {
	if !b.Stamp.IsZero() {
		return b.Stamp.UTC()
	}
	return fallback.UTC()
}

func (b *Builder) timezone() string {
	if b.Timezone == "" {
		return schedule.DefaultTimezone
	}
	return b.Timezone
}

func (b *Builder) productID() string {
	if b.ProductID == "" {
		return DefaultProductID
	}
	return b.ProductID
}

// crlf forces CRLF line endings regardless of the serializer's choice.
func crlf(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
