package pipeline

import (
	"sort"
	"sync"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/dedup"
	"github.com/daehong-lab/gonggo-pipeline/internal/rawio"
)

// maxExamples caps the representative samples kept per failure class.
const maxExamples = 20

// Counts is the per-stage tally block of report.json.
type Counts struct {
	RecordsRead          uint32 `json:"records_read"`
	RowsRejected         uint32 `json:"rows_rejected"`
	ParsedOK             uint32 `json:"parsed_ok"`
	NormalizationFailed  uint32 `json:"normalization_failed"`
	GeocodeFailed        uint32 `json:"geocode_failed"`
	GeocodeDegraded      uint32 `json:"geocode_degraded"`
	AttachmentsSeen      uint32 `json:"attachments_seen"`
	ExtractionFailed     uint32 `json:"extraction_failed"`
	OCRFallbackUsed      uint32 `json:"ocr_fallback_used"`
	MergedClusters       uint32 `json:"merged_clusters"`
	NearDuplicatesMerged uint32 `json:"near_duplicates_merged"`
	IdentityCollisions   uint32 `json:"identity_collisions"`
	ItemsUpserted        uint32 `json:"items_upserted"`
	UnitsUpserted        uint32 `json:"units_upserted"`
}

// Example is one representative failure kept for the report.
type Example struct {
	Kind     string `json:"kind"`
	RecordID string `json:"record_id,omitempty"`
	Subject  string `json:"subject"` // field, path or item_id
	Detail   string `json:"detail"`
}

// Reassignment mirrors the merge engine's audit rows in the report.
type Reassignment struct {
	RecordID    string  `json:"record_id"`
	FromID      string  `json:"from_id"`
	ToID        string  `json:"to_id"`
	TitleSim    float64 `json:"title_sim"`
	DateGapDays float64 `json:"date_gap_days"`
}

// Report aggregates the quality outcome of one batch run. Safe for
// concurrent use; the extraction pool reports from worker goroutines.
type Report struct {
	mu sync.Mutex

	Date        string    `json:"date"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	ElapsedSecs float64   `json:"elapsed_secs"`

	Counts        Counts         `json:"counts"`
	Examples      []Example      `json:"examples,omitempty"`
	Reassignments []Reassignment `json:"reassignments,omitempty"`

	// Batch-fatal marker; exit code follows this, nothing else.
	ProvenanceViolation string `json:"provenance_violation,omitempty"`
}

func NewReport(date string) *Report {
	return &Report{Date: date, StartedAt: time.Now().UTC()}
}

func (r *Report) addExample(e Example) {
	if len(r.Examples) < maxExamples {
		r.Examples = append(r.Examples, e)
	}
}

func (r *Report) ReadOutcome(stats rawio.DirStats, rowErrs []rawio.RowError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.RecordsRead += stats.Rows
	r.Counts.RowsRejected += stats.Failed
	for _, re := range rowErrs {
		r.addExample(Example{Kind: "manifest_row", RecordID: re.RecordID, Subject: string(re.Platform), Detail: re.Err})
	}
}

func (r *Report) UpsertFailed(itemID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addExample(Example{Kind: "upsert", Subject: itemID, Detail: err.Error()})
}

// ParsedOK counts a record whose every field normalized cleanly.
// Records with degraded fields land in normalization_failed instead.
func (r *Report) ParsedOK() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.ParsedOK++
}

func (r *Report) NormalizationFailed(recordID string, errs []*common.NormalizationError) {
	if len(errs) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.NormalizationFailed++
	for _, nerr := range errs {
		r.addExample(Example{Kind: "normalization", RecordID: recordID, Subject: nerr.Field, Detail: nerr.Error()})
	}
}

func (r *Report) GeocodeFailed(recordID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.GeocodeFailed++
	r.addExample(Example{Kind: "geocode", RecordID: recordID, Subject: "address", Detail: err.Error()})
}

func (r *Report) GeocodeDegraded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.GeocodeDegraded++
}

func (r *Report) AttachmentSeen() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.AttachmentsSeen++
}

func (r *Report) ExtractionFailed(recordID, path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.ExtractionFailed++
	r.addExample(Example{Kind: "extraction", RecordID: recordID, Subject: path, Detail: err.Error()})
}

func (r *Report) OCRFallback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.OCRFallbackUsed++
}

func (r *Report) MergeOutcome(out dedup.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.MergedClusters = uint32(len(out.Clusters))
	r.Counts.NearDuplicatesMerged = uint32(len(out.Reassignments))
	r.Counts.IdentityCollisions = uint32(len(out.Collisions))
	for _, re := range out.Reassignments {
		r.Reassignments = append(r.Reassignments, Reassignment{
			RecordID:    re.RecordID,
			FromID:      re.FromID,
			ToID:        re.ToID,
			TitleSim:    re.Score.Title,
			DateGapDays: re.Score.DateGapDays,
		})
	}
	for _, c := range out.Collisions {
		r.addExample(Example{Kind: "identity_collision", Subject: c.ItemID, Detail: c.Error()})
	}
}

func (r *Report) ItemUpserted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.ItemsUpserted++
}

func (r *Report) UnitsUpserted(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts.UnitsUpserted += uint32(n)
}

func (r *Report) SetProvenanceViolation(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ProvenanceViolation = err.Error()
}

// Finish stamps the end time and orders the sample lists so the report
// is byte-stable for a given input.
func (r *Report) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FinishedAt = time.Now().UTC()
	r.ElapsedSecs = r.FinishedAt.Sub(r.StartedAt).Seconds()
	sort.Slice(r.Examples, func(i, j int) bool {
		if r.Examples[i].Kind != r.Examples[j].Kind {
			return r.Examples[i].Kind < r.Examples[j].Kind
		}
		if r.Examples[i].RecordID != r.Examples[j].RecordID {
			return r.Examples[i].RecordID < r.Examples[j].RecordID
		}
		return r.Examples[i].Subject < r.Examples[j].Subject
	})
	sort.Slice(r.Reassignments, func(i, j int) bool {
		return r.Reassignments[i].RecordID < r.Reassignments[j].RecordID
	})
}
