package schedule

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is the campus timezone used for class and exam times.
const DefaultTimezone = "America/Los_Angeles"

// LoadLocation loads an IANA timezone, falling back to the embedded
// database when the host has none.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
