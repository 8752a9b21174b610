package hashutil

import (
	"strings"

	"github.com/google/uuid"
)

// namespace scopes calendar UIDs so they never collide with other name-based
// UUIDs derived from the same text.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/Flyrell/coursecal"))

// UIDDomain is appended to every calendar component UID.
const UIDDomain = "coursecal"

// GenerateIDFromSeed creates a deterministic name-based UUID from a seed string.
func GenerateIDFromSeed(seed string) string {
	return uuid.NewSHA1(namespace, []byte(seed)).String()
}

// EventUID builds a stable calendar UID from the given parts. The same
// parts always produce the same UID, so re-exporting an unchanged schedule
// updates events in place instead of duplicating them.
func EventUID(parts ...string) string {
	return GenerateIDFromSeed(strings.Join(parts, "\x00")) + "@" + UIDDomain
}
