package entity

import (
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
)

// RawRecord is one row of a platform's RAW manifest plus the resolved
// artifact paths for that record. Owned by the crawler collaborator;
// immutable once written.
type RawRecord struct {
	RecordID         string             `json:"record_id"`
	Platform         constants.Platform `json:"platform"`
	Title            string             `json:"title"`
	Address          string             `json:"address"`
	ListURL          string             `json:"list_url"`
	DetailURL        string             `json:"detail_url"`
	DetailDescriptor string             `json:"detail_descriptor"`
	HTMLPath         string             `json:"html_path"`
	ImagePaths       []string           `json:"image_paths"`
	AttachmentPaths  []string           `json:"attachment_paths"`
	TablePaths       []string           `json:"table_paths"`
	Extras           PlatformExtras     `json:"extras"`
	CrawledAt        time.Time          `json:"crawled_at"`
}

// PlatformExtras is the typed projection of a platform's extras_json bag.
// Known keys get fields; everything else lands in Rest so nothing is lost.
type PlatformExtras struct {
	Platform constants.Platform `json:"platform"`

	// Platform-native posting identifiers (at most one is set).
	PanID         string `json:"pan_id,omitempty"`          // lh
	HouseManageNo string `json:"house_manage_no,omitempty"` // applyhome
	PblancID      string `json:"pblanc_id,omitempty"`       // myhome

	CategoryLabel string `json:"category_label,omitempty"`
	SigunguCode   string `json:"sigungu_code,omitempty"`
	Dong          string `json:"dong,omitempty"`
	NoticeStatus  string `json:"notice_status,omitempty"`

	// Escape hatch for keys the pipeline does not model yet.
	Rest map[string]string `json:"rest,omitempty"`
}

// NativeKey returns the platform-native posting identifier, if any.
func (e PlatformExtras) NativeKey() string {
	switch {
	case e.PanID != "":
		return e.PanID
	case e.HouseManageNo != "":
		return e.HouseManageNo
	case e.PblancID != "":
		return e.PblancID
	default:
		return ""
	}
}
