package ratings

import (
	"strings"

	"github.com/Flyrell/coursecal/internal/stringutil"
)

// Tier is the confidence of a match. Higher is more confident.
type Tier int

const (
	NoMatch Tier = iota
	FuzzyMatch
	EmailMatch
	ExactMatch
)

func (t Tier) String() string {
	switch t {
	case ExactMatch:
		return "exact"
	case EmailMatch:
		return "email"
	case FuzzyMatch:
		return "fuzzy"
	default:
		return "none"
	}
}

// Match is the outcome of a lookup.
type Match struct {
	Professor Professor
	Tier      Tier
}

// Found reports whether a professor was matched.
func (m Match) Found() bool {
	return m.Tier != NoMatch
}

// Matcher is one name-matching strategy.
type Matcher interface {
	Tier() Tier
	Match(ix *Index, instructor string) (Professor, bool)
}

// DefaultMatchers returns the strategies in the order they are tried.
func DefaultMatchers() []Matcher {
	return []Matcher{ExactMatcher{}, EmailMatcher{}, FuzzyMatcher{}}
}

// Lookup tries each matcher in turn and returns the first hit. With no
// matchers given, DefaultMatchers is used. Matching is heuristic and may
// miss; it never guesses between several candidates.
func (ix *Index) Lookup(instructor string, matchers ...Matcher) Match {
	instructor = strings.TrimSpace(instructor)
	if instructor == "" || ix == nil {
		return Match{}
	}
	if len(matchers) == 0 {
		matchers = DefaultMatchers()
	}
	for _, m := range matchers {
		if p, ok := m.Match(ix, instructor); ok {
			return Match{Professor: p, Tier: m.Tier()}
		}
	}
	return Match{}
}

// ExactMatcher matches the mapping table, then "First Last" or
// "Last, First" literally.
type ExactMatcher struct{}

func (ExactMatcher) Tier() Tier { return ExactMatch }

func (ExactMatcher) Match(ix *Index, instructor string) (Professor, bool) {
	if p, ok := ix.mapped(instructor); ok {
		return p, true
	}
	return unique(ix, func(p Professor) bool {
		return instructor == p.FullName() || instructor == p.LastName+", "+p.FirstName
	})
}

// EmailMatcher matches an address such as "jsmith@ucdavis.edu" by its local
// part against first-initial-plus-last, first.last or last.
type EmailMatcher struct{}

func (EmailMatcher) Tier() Tier { return EmailMatch }

func (EmailMatcher) Match(ix *Index, instructor string) (Professor, bool) {
	at := strings.IndexByte(instructor, '@')
	if at <= 0 {
		return Professor{}, false
	}
	local := strings.ToLower(instructor[:at])

	if p, ok := ix.mapped(local); ok {
		return p, true
	}
	return unique(ix, func(p Professor) bool {
		first := compact(p.FirstName)
		last := compact(p.LastName)
		if first == "" || last == "" {
			return false
		}
		return local == first[:1]+last || local == first+"."+last || local == last
	})
}

// FuzzyMatcher compares accent-folded, punctuation-free names. Every word of
// the last name must appear, plus the first name or its initial.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Tier() Tier { return FuzzyMatch }

func (FuzzyMatcher) Match(ix *Index, instructor string) (Professor, bool) {
	words := make(map[string]bool)
	for _, w := range strings.Fields(normalizedKey(instructor)) {
		words[w] = true
	}
	if len(words) == 0 {
		return Professor{}, false
	}

	return unique(ix, func(p Professor) bool {
		last := strings.Fields(normalizedKey(p.LastName))
		if len(last) == 0 {
			return false
		}
		for _, w := range last {
			if !words[w] {
				return false
			}
		}
		first := normalizedKey(p.FirstName)
		if first == "" {
			return false
		}
		return words[first] || words[first[:1]]
	})
}

// unique returns the single professor satisfying pred, or false when none
// or several do.
func unique(ix *Index, pred func(Professor) bool) (Professor, bool) {
	var found Professor
	n := 0
	for _, p := range ix.ordered {
		if pred(p) {
			found = p
			n++
			if n > 1 {
				return Professor{}, false
			}
		}
	}
	return found, n == 1
}

// compact lowercases s and drops everything but letters and digits.
func compact(s string) string {
	return strings.ReplaceAll(stringutil.NormalizeName(s), " ", "")
}
