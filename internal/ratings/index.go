package ratings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Flyrell/coursecal/internal/stringutil"
)

// Professor is one rating record.
type Professor struct {
	LegacyID              int     `json:"legacyId"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	AvgRating             float64 `json:"avgRating"`
	AvgDifficulty         float64 `json:"avgDifficulty"`
	WouldTakeAgainPercent float64 `json:"wouldTakeAgainPercent"`
}

// FullName returns "First Last".
func (p Professor) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Index holds the professor records and the instructor-name mapping.
type Index struct {
	byID     map[int]Professor
	ordered  []Professor
	mappings map[string]int
}

// NewIndex builds an Index. Mapping keys are instructor names as they
// appear on registration pages; values are legacy IDs.
func NewIndex(professors []Professor, mappings map[string]int) *Index {
	ix := &Index{
		byID:     make(map[int]Professor, len(professors)),
		mappings: make(map[string]int, len(mappings)),
	}
	for _, p := range professors {
		if _, dup := ix.byID[p.LegacyID]; dup {
			continue
		}
		ix.byID[p.LegacyID] = p
		ix.ordered = append(ix.ordered, p)
	}
	for name, id := range mappings {
		ix.mappings[strings.TrimSpace(name)] = id
	}
	return ix
}

// Len returns the number of professor records.
func (ix *Index) Len() int {
	return len(ix.ordered)
}

// ByID returns the professor with the given legacy ID.
func (ix *Index) ByID(id int) (Professor, bool) {
	p, ok := ix.byID[id]
	return p, ok
}

// Professors returns the records in load order.
func (ix *Index) Professors() []Professor {
	out := make([]Professor, len(ix.ordered))
	copy(out, ix.ordered)
	return out
}

func (ix *Index) mapped(name string) (Professor, bool) {
	id, ok := ix.mappings[name]
	if !ok {
		return Professor{}, false
	}
	return ix.ByID(id)
}

// ParseProfessors decodes a JSON array of professor records.
func ParseProfessors(data []byte) ([]Professor, error) {
	var out []Professor
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid professor data: %w", err)
	}
	return out, nil
}

// ParseMappings decodes a JSON array of single-key objects such as
// [{"Jane Smith": 12345}] into one map. Later keys win.
func ParseMappings(data []byte) (map[string]int, error) {
	var rows []map[string]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("invalid name mappings: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		for name, id := range row {
			out[name] = id
		}
	}
	return out, nil
}

// normalizedKey is the fuzzy lookup key of a name.
func normalizedKey(name string) string {
	return stringutil.NormalizeName(name)
}
