package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Flyrell/coursecal/internal/calendar"
	"github.com/Flyrell/coursecal/internal/conflict"
	"github.com/Flyrell/coursecal/internal/extract"
	"github.com/Flyrell/coursecal/internal/schedule"
)

// Prefs are the user's feature toggles and export settings.
type Prefs struct {
	ShowConflicts      bool   `json:"showConflicts"`
	ShowSeats          bool   `json:"showSeats"`
	ShowRatings        bool   `json:"showRatings"`
	ShowTimeWarnings   bool   `json:"showTimeWarnings"`
	RegisteredOnly     bool   `json:"registeredOnly"`
	EarlyMorning       string `json:"earlyMorning"` // "HH:MM"
	LateNight          string `json:"lateNight"`    // "HH:MM"
	DefaultMeetingType string `json:"defaultMeetingType"`
	Debug              bool   `json:"debug"`
	Timezone           string `json:"timezone"`
	TimestampMode      string `json:"timestampMode"` // "local" or "utc"
}

// Defaults returns the factory preferences.
func Defaults() Prefs {
	return Prefs{
		ShowConflicts:      true,
		ShowSeats:          true,
		ShowRatings:        true,
		ShowTimeWarnings:   true,
		RegisteredOnly:     true,
		EarlyMorning:       "09:00",
		LateNight:          "19:00",
		DefaultMeetingType: extract.DefaultMeetingType,
		Timezone:           schedule.DefaultTimezone,
		TimestampMode:      calendar.ModeLocal.String(),
	}
}

// Dir returns the global coursecal config directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".coursecal")
}

// Path returns the path to prefs.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "prefs.json")
}

// Read reads the preferences file. Missing keys, or a missing file, take
// their default values.
func Read(homeDir string) (*Prefs, error) {
	p := Defaults()

	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &p, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid preferences %s: %w", Path(homeDir), err)
	}
	return &p, nil
}

// Write writes the preferences file, creating the directory if needed.
func Write(homeDir string, p *Prefs) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// Reset restores factory preferences on disk.
func Reset(homeDir string) error {
	p := Defaults()
	return Write(homeDir, &p)
}

// ConflictOptions converts the toggles and cutoffs for conflict.Classify.
func (p *Prefs) ConflictOptions() (conflict.Options, error) {
	early, err := schedule.ParseClockTime(p.EarlyMorning)
	if err != nil {
		return conflict.Options{}, fmt.Errorf("earlyMorning: %w", err)
	}
	late, err := schedule.ParseClockTime(p.LateNight)
	if err != nil {
		return conflict.Options{}, fmt.Errorf("lateNight: %w", err)
	}
	return conflict.Options{
		ShowConflicts:    p.ShowConflicts,
		ShowSeats:        p.ShowSeats,
		ShowTimeWarnings: p.ShowTimeWarnings,
		EarlyCutoff:      early,
		LateCutoff:       late,
	}, nil
}

// Mode returns the parsed calendar timestamp mode.
func (p *Prefs) Mode() (calendar.Mode, error) {
	return calendar.ParseMode(p.TimestampMode)
}

type field struct {
	get func(*Prefs) string
	set func(*Prefs, string) error
}

func boolField(ptr func(*Prefs) *bool) field {
	return field{
		get: func(p *Prefs) string { return strconv.FormatBool(*ptr(p)) },
		set: func(p *Prefs, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*ptr(p) = b
			return nil
		},
	}
}

func clockField(ptr func(*Prefs) *string) field {
	return field{
		get: func(p *Prefs) string { return *ptr(p) },
		set: func(p *Prefs, v string) error {
			t, err := schedule.ParseClockTime(v)
			if err != nil {
				return err
			}
			*ptr(p) = t.String()
			return nil
		},
	}
}

var fields = map[string]field{
	"showConflicts":    boolField(func(p *Prefs) *bool { return &p.ShowConflicts }),
	"showSeats":        boolField(func(p *Prefs) *bool { return &p.ShowSeats }),
	"showRatings":      boolField(func(p *Prefs) *bool { return &p.ShowRatings }),
	"showTimeWarnings": boolField(func(p *Prefs) *bool { return &p.ShowTimeWarnings }),
	"registeredOnly":   boolField(func(p *Prefs) *bool { return &p.RegisteredOnly }),
	"debug":            boolField(func(p *Prefs) *bool { return &p.Debug }),
	"earlyMorning":     clockField(func(p *Prefs) *string { return &p.EarlyMorning }),
	"lateNight":        clockField(func(p *Prefs) *string { return &p.LateNight }),
	"defaultMeetingType": {
		get: func(p *Prefs) string { return p.DefaultMeetingType },
		set: func(p *Prefs, v string) error {
			p.DefaultMeetingType = v
			return nil
		},
	},
	"timezone": {
		get: func(p *Prefs) string { return p.Timezone },
		set: func(p *Prefs, v string) error {
			if _, err := schedule.LoadLocation(v); err != nil {
				return err
			}
			p.Timezone = v
			return nil
		},
	},
	"timestampMode": {
		get: func(p *Prefs) string { return p.TimestampMode },
		set: func(p *Prefs, v string) error {
			m, err := calendar.ParseMode(v)
			if err != nil {
				return err
			}
			p.TimestampMode = m.String()
			return nil
		},
	},
}

// ErrUnknownKey is returned by Get and Set for keys not in Keys.
var ErrUnknownKey = errors.New("unknown preference")

// Keys returns every preference key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key as text.
func (p *Prefs) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return f.get(p), nil
}

// Set parses and stores value under key.
func (p *Prefs) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	if err := f.set(p, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}
