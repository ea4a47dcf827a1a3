package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

// ParsedWriter owns the PARSED output tree for one crawl date:
//
//	<out>/<date>/items.csv
//	<out>/<date>/id_map.csv
//	<out>/<date>/attachments_text/<attachment_id>.txt
//	<out>/<date>/report.json
//
// Files are written whole and rows are sorted, so re-running the batch
// on the same input reproduces the tree byte for byte.
type ParsedWriter struct {
	dir    string
	logger *slog.Logger
}

func NewParsedWriter(outRoot, date string, logger *slog.Logger) (*ParsedWriter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dir := filepath.Join(outRoot, date)
	if err := os.MkdirAll(filepath.Join(dir, "attachments_text"), 0o755); err != nil {
		return nil, err
	}
	return &ParsedWriter{dir: dir, logger: logger}, nil
}

var itemsHeader = []string{
	"item_id", "platform", "title", "addr_std", "lat", "lng",
	"category", "status", "deposit_krw", "rent_krw", "area_m2",
	"apply_start", "apply_end", "list_url", "detail_url",
	"first_seen_at", "last_seen_at",
}

func (w *ParsedWriter) WriteItems(items []entity.CanonicalItem) error {
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })

	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, itemsHeader)
	for i := range items {
		it := &items[i]
		rows = append(rows, []string{
			it.ItemID,
			string(it.Platform),
			it.Title,
			it.AddrStd,
			formatFloat(it.Lat),
			formatFloat(it.Lng),
			string(it.Category),
			it.Status,
			formatInt(it.DepositKRW),
			formatInt(it.RentKRW),
			formatFloat(it.AreaM2),
			formatDate(it.ApplyStart),
			formatDate(it.ApplyEnd),
			it.ListURL,
			it.DetailURL,
			it.FirstSeenAt.UTC().Format("2006-01-02T15:04:05Z"),
			it.LastSeenAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return w.writeCSV("items.csv", rows)
}

func (w *ParsedWriter) WriteIDMap(entries []entity.SourceMapEntry) error {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ItemID != entries[j].ItemID {
			return entries[i].ItemID < entries[j].ItemID
		}
		return entries[i].RecordID < entries[j].RecordID
	})

	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"item_id", "record_id", "platform", "crawled_at"})
	for _, e := range entries {
		rows = append(rows, []string{
			e.ItemID, e.RecordID, string(e.Platform),
			e.CrawledAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return w.writeCSV("id_map.csv", rows)
}

// WriteAttachmentText stores extracted text and returns the relative
// path recorded on the attachment row.
func (w *ParsedWriter) WriteAttachmentText(attachmentID, text string) (string, error) {
	rel := filepath.Join("attachments_text", attachmentID+".txt")
	if err := os.WriteFile(filepath.Join(w.dir, rel), []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write attachment text: %w", err)
	}
	return rel, nil
}

func (w *ParsedWriter) WriteReport(r *Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.dir, "report.json"), append(b, '\n'), 0o644)
}

func (w *ParsedWriter) writeCSV(name string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return err
	}
	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		_ = f.Close()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return err
	}
	w.logger.Debug("wrote output", "file", name, "rows", len(rows)-1)
	return f.Close()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
