package entity

import (
	"strings"

	"github.com/google/uuid"
)

// StableID derives a name-based UUID from the entity's logical key.
// Artifact rows get the same id on every run, which keeps the PARSED
// tree and the upserts byte-for-byte reproducible.
func StableID(parts ...string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(parts, "|")))
}
