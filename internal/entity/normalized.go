package entity

import (
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
)

// NormalizedFields is the per-record projection onto the common schema.
// Recomputed idempotently from the RawRecord on every run; never
// hand-edited. A failed field keeps its raw string next to a nil value.
type NormalizedFields struct {
	Title      string `json:"title"`
	AddressRaw string `json:"address_raw"`

	DepositKRW *int64 `json:"deposit_krw,omitempty"`
	DepositRaw string `json:"deposit_raw,omitempty"`
	RentKRW    *int64 `json:"rent_krw,omitempty"`
	RentRaw    string `json:"rent_raw,omitempty"`

	AreaM2   *float64 `json:"area_m2,omitempty"`
	AreaRaw  string   `json:"area_raw,omitempty"`
	AreaUnit string   `json:"area_unit,omitempty"` // "㎡" or "평", unit of origin

	ApplyStart *time.Time `json:"apply_start,omitempty"`
	ApplyEnd   *time.Time `json:"apply_end,omitempty"`

	Category constants.Category `json:"category"`

	// Unparsable inputs preserved for audit, keyed by field name.
	RawLeftovers map[string]string `json:"raw_leftovers,omitempty"`
}

// CanonicalItem is the deduplicated real-world listing. ItemID is stable
// across re-runs; fields refresh from the freshest contributing record.
type CanonicalItem struct {
	ItemID     string             `json:"item_id"`
	Platform   constants.Platform `json:"platform"`
	Title      string             `json:"title"`
	AddrRaw    string             `json:"addr_raw,omitempty"`
	AddrStd    string             `json:"addr_std"`
	Lat        *float64           `json:"lat,omitempty"`
	Lng        *float64           `json:"lng,omitempty"`
	Category   constants.Category `json:"category"`
	Status     string             `json:"status,omitempty"`
	DepositKRW *int64             `json:"deposit_krw,omitempty"`
	RentKRW    *int64             `json:"rent_krw,omitempty"`
	AreaM2     *float64           `json:"area_m2,omitempty"`
	ApplyStart *time.Time         `json:"apply_start,omitempty"`
	ApplyEnd   *time.Time         `json:"apply_end,omitempty"`
	ListURL    string             `json:"list_url,omitempty"`
	DetailURL  string             `json:"detail_url,omitempty"`

	// Unparsable inputs from the representative record, kept for audit.
	RawLeftovers map[string]string `json:"raw_leftovers,omitempty"`

	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}
