package quarter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Flyrell/coursecal/internal/schedule"
)

const dateLayout = "2006-01-02"

// Window is an academic term's instruction period.
type Window struct {
	Label            string
	InstructionStart time.Time
	InstructionEnd   time.Time
}

// campus is where the instruction end date is observed. Classes ending in
// the evening there are already the next day in UTC.
var campus = mustLocation(schedule.DefaultTimezone)

func mustLocation(name string) *time.Location {
	loc, err := schedule.LoadLocation(name)
	if err != nil {
		panic("quarter: " + err.Error())
	}
	return loc
}

// Until returns the recurrence bound: the last second of the instruction
// end date on campus, in UTC.
func (w Window) Until() time.Time {
	y, m, d := w.InstructionEnd.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, campus).UTC()
}

// Entry is one row of the term table. A label matches when it contains both
// the Season and the Year literals.
type Entry struct {
	Season string `json:"season"`
	Year   string `json:"year"`
	Start  string `json:"start"` // "YYYY-MM-DD"
	End    string `json:"end"`   // "YYYY-MM-DD"
}

// Label returns "<Season> Quarter <Year>".
func (e Entry) Label() string {
	return fmt.Sprintf("%s Quarter %s", e.Season, e.Year)
}

// Window parses the entry's dates.
func (e Entry) Window() (Window, error) {
	start, err := time.Parse(dateLayout, e.Start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid start date %q for %s: %w", e.Start, e.Label(), err)
	}
	end, err := time.Parse(dateLayout, e.End)
	if err != nil {
		return Window{}, fmt.Errorf("invalid end date %q for %s: %w", e.End, e.Label(), err)
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("%s ends (%s) before it starts (%s)", e.Label(), e.End, e.Start)
	}
	return Window{Label: e.Label(), InstructionStart: start, InstructionEnd: end}, nil
}

// DefaultEntries returns the built-in term table. Terms past the last row
// must be added through a table file.
func DefaultEntries() []Entry {
	return []Entry{
		{Season: "Fall", Year: "2024", Start: "2024-09-25", End: "2024-12-06"},
		{Season: "Winter", Year: "2025", Start: "2025-01-06", End: "2025-03-14"},
		{Season: "Spring", Year: "2025", Start: "2025-03-31", End: "2025-06-06"},
		{Season: "Fall", Year: "2025", Start: "2025-09-24", End: "2025-12-05"},
		{Season: "Winter", Year: "2026", Start: "2026-01-05", End: "2026-03-13"},
		{Season: "Spring", Year: "2026", Start: "2026-03-30", End: "2026-06-05"},
		{Season: "Fall", Year: "2026", Start: "2026-09-23", End: "2026-12-04"},
	}
}

// defaultFallback is used when a label is absent or matches nothing.
var defaultFallback = Entry{Season: "Spring", Year: "2025", Start: "2025-03-31", End: "2025-06-06"}

// Calendar resolves term labels against an ordered table.
type Calendar struct {
	entries  []Window
	seasons  []Entry
	fallback Window
}

// New builds a Calendar from entries (first match wins) and a fallback.
func New(entries []Entry, fallback Entry) (*Calendar, error) {
	fb, err := fallback.Window()
	if err != nil {
		return nil, err
	}
	return newCalendar(entries, fb)
}

func newCalendar(entries []Entry, fallback Window) (*Calendar, error) {
	c := &Calendar{fallback: fallback}
	for _, e := range entries {
		w, err := e.Window()
		if err != nil {
			return nil, err
		}
		c.entries = append(c.entries, w)
		c.seasons = append(c.seasons, e)
	}
	return c, nil
}

// Default returns the Calendar with the built-in table and Spring 2025
// fallback.
func Default() *Calendar {
	c, err := New(DefaultEntries(), defaultFallback)
	if err != nil {
		panic("quarter: invalid built-in table: " + err.Error())
	}
	return c
}

// Resolve maps a term label such as "Fall Quarter 2025" to its window.
// Matching is case-sensitive substring matching on the season and year.
func (c *Calendar) Resolve(label string) Window {
	if w, ok := c.Lookup(label); ok {
		return w
	}
	return c.fallback
}

// Lookup is Resolve without the fallback: ok is false when no row matches.
func (c *Calendar) Lookup(label string) (Window, bool) {
	if label == "" {
		return Window{}, false
	}
	for i, e := range c.seasons {
		if strings.Contains(label, e.Season) && strings.Contains(label, e.Year) {
			return c.entries[i], true
		}
	}
	return Window{}, false
}

// Fallback returns the window used for absent or unknown labels.
func (c *Calendar) Fallback() Window {
	return c.fallback
}

// Entries returns the table rows in match order.
func (c *Calendar) Entries() []Entry {
	out := make([]Entry, len(c.seasons))
	copy(out, c.seasons)
	return out
}

// Load reads extra table rows from a JSON file and places them ahead of the
// built-in rows. A missing file leaves the Calendar unchanged.
func (c *Calendar) Load(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	var extra []Entry
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("invalid quarter table %s: %w", path, err)
	}

	return newCalendar(append(extra, c.seasons...), c.fallback)
}

var termLabel = regexp.MustCompile(`(Fall|Winter|Spring|Summer)(?:\s+Session\s+[12])?\s+Quarter\s+(\d{4})`)

// DetectLabel finds a term label like "Winter Quarter 2025" in page text.
// It returns "" when none is present.
func DetectLabel(text string) string {
	m := termLabel.FindString(text)
	return strings.Join(strings.Fields(m), " ")
}
