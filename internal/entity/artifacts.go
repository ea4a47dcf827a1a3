package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daehong-lab/gonggo-pipeline/constants"
)

// Unit is a priced sub-offer (a specific room/plan) within a CanonicalItem.
type Unit struct {
	ID         uuid.UUID `json:"id"`
	ItemID     string    `json:"item_id"`
	UnitType   string    `json:"unit_type"`
	DepositKRW *int64    `json:"deposit_krw,omitempty"`
	RentKRW    *int64    `json:"rent_krw,omitempty"`
	AreaM2     *float64  `json:"area_m2,omitempty"`
	Supply     *int      `json:"supply,omitempty"` // offered household count
}

// Attachment is a document-level artifact following its parent item.
// Attachments are never deduplicated on their own.
type Attachment struct {
	ID          uuid.UUID              `json:"id"`
	ItemID      string                 `json:"item_id"`
	RecordID    string                 `json:"record_id"`
	SourcePath  string                 `json:"source_path"`
	FileExt     string                 `json:"file_ext"`
	ContentHash []byte                 `json:"content_hash"`
	Role        constants.ArtifactRole `json:"role"`
	TextPath    *string                `json:"text_path,omitempty"`
	IsOCR       bool                   `json:"is_ocr"`
}

// Image is a photo or floorplan artifact.
type Image struct {
	ID       uuid.UUID              `json:"id"`
	ItemID   string                 `json:"item_id"`
	RecordID string                 `json:"record_id"`
	Path     string                 `json:"path"`
	Role     constants.ArtifactRole `json:"role"`
}

// TableRaw is an extracted table file (unit tables, schedules) kept
// verbatim next to its parent item.
type TableRaw struct {
	ID       uuid.UUID `json:"id"`
	ItemID   string    `json:"item_id"`
	RecordID string    `json:"record_id"`
	Path     string    `json:"path"`
	Format   string    `json:"format"` // json | csv | xlsx
}

// SourceMapEntry is one row of the provenance ledger. Every RawRecord
// appears in exactly one entry; the set for an item_id never shrinks.
type SourceMapEntry struct {
	ItemID    string             `json:"item_id"`
	RecordID  string             `json:"record_id"`
	Platform  constants.Platform `json:"platform"`
	CrawledAt time.Time          `json:"crawled_at"`
}
