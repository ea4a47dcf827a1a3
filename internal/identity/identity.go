// Package identity assigns the stable logical key for canonical items.
// Everything here is pure: the same inputs always yield the same item_id,
// across runs and process restarts. That purity is what makes merges and
// upserts idempotent, so no function in this package may read clocks,
// randomness, or I/O.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
	"github.com/daehong-lab/gonggo-pipeline/internal/normalize"
)

// HashIDLen is the truncation length (hex chars) for composite-hash ids.
const HashIDLen = 16

// Resolve maps a record to its item_id.
//
// Priority 1: platform-native posting key -> "<platform>:<native_id>".
// Priority 2: sha256(platform|addr_std|key_title|apply_start_or_empty),
// truncated to HashIDLen.
//
// addrStd is the standardized address when geocoding succeeded, else the
// normalized raw address. Once an item_id has been persisted it is never
// recomputed, so later addr_std refinements do not move identity.
func Resolve(rec entity.RawRecord, fields entity.NormalizedFields, addrStd string) string {
	if native := rec.Extras.NativeKey(); native != "" {
		return string(rec.Platform) + ":" + native
	}
	return CompositeHash(rec.Platform, addrStd, fields.Title, fields.ApplyStart)
}

// CompositeHash computes the fallback hash id for records without a
// platform-native key.
func CompositeHash(platform constants.Platform, addrStd, title string, applyStart *time.Time) string {
	start := ""
	if applyStart != nil {
		start = applyStart.Format("2006-01-02")
	}
	payload := strings.Join([]string{
		string(platform),
		addrStd,
		normalize.KeyTitle(title),
		start,
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])[:HashIDLen]
}

// IsNative reports whether id carries a platform-native key rather than
// a composite hash.
func IsNative(id string) bool {
	return strings.Contains(id, ":")
}
