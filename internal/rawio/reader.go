package rawio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

// RowError is one manifest row the reader could not turn into a
// RawRecord. The batch keeps going; the row lands in the report.
type RowError struct {
	Platform constants.Platform
	Line     int
	RecordID string
	Err      string
}

// DirStats aggregates one platform directory read.
type DirStats struct {
	Rows      uint32
	Parsed    uint32
	Failed    uint32
	Platforms uint32
}

func (s *DirStats) add(o DirStats) {
	s.Rows += o.Rows
	s.Parsed += o.Parsed
	s.Failed += o.Failed
	s.Platforms += o.Platforms
}

// Reader streams RAW manifests for one crawl date. Manifests are owned
// by the crawler collaborators; the reader never writes under the RAW
// tree.
type Reader struct {
	decoder *ExtrasDecoder
	logger  *slog.Logger
}

func NewReader(logger *slog.Logger) (*Reader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dec, err := NewExtrasDecoder()
	if err != nil {
		return nil, err
	}
	return &Reader{decoder: dec, logger: logger}, nil
}

// ReadDate reads every known platform directory under root/<date>.
// Platform directories that do not exist are skipped silently: not every
// platform crawls every day.
func (r *Reader) ReadDate(root, date string) ([]entity.RawRecord, []RowError, DirStats, error) {
	base := filepath.Join(root, date)
	if _, err := os.Stat(base); err != nil {
		return nil, nil, DirStats{}, fmt.Errorf("raw tree for %s: %w", date, err)
	}

	platforms := make([]string, 0, len(constants.KnownPlatforms))
	for p := range constants.KnownPlatforms {
		platforms = append(platforms, string(p))
	}
	sort.Strings(platforms)

	var records []entity.RawRecord
	var rowErrs []RowError
	var stats DirStats

	for _, code := range platforms {
		p := constants.Platform(code)
		dir := filepath.Join(base, code)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		recs, errs, st, err := r.ReadPlatformDir(dir, p)
		if err != nil {
			return records, rowErrs, stats, fmt.Errorf("platform %s: %w", p, err)
		}
		records = append(records, recs...)
		rowErrs = append(rowErrs, errs...)
		stats.add(st)
		stats.Platforms++
	}
	return records, rowErrs, stats, nil
}

// ReadPlatformDir streams one platform's raw.csv and resolves the
// artifact paths for each row. A malformed row is captured as a
// RowError; only a missing or unreadable manifest fails the call.
func (r *Reader) ReadPlatformDir(dir string, platform constants.Platform) ([]entity.RawRecord, []RowError, DirStats, error) {
	f, err := os.Open(filepath.Join(dir, "raw.csv"))
	if err != nil {
		return nil, nil, DirStats{}, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, DirStats{}, fmt.Errorf("manifest header: %w", err)
	}
	cols, err := indexHeader(header)
	if err != nil {
		return nil, nil, DirStats{}, err
	}

	var records []entity.RawRecord
	var rowErrs []RowError
	var stats DirStats

	line := 1
	for {
		row, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.Rows++
			stats.Failed++
			rowErrs = append(rowErrs, RowError{Platform: platform, Line: line, Err: err.Error()})
			continue
		}
		stats.Rows++

		rec, perr := r.parseRow(dir, platform, cols, row)
		if perr != nil {
			stats.Failed++
			rowErrs = append(rowErrs, RowError{Platform: platform, Line: line, RecordID: rec.RecordID, Err: perr.Error()})
			r.logger.Warn("rawio.row_failed", "platform", platform, "line", line, "error", perr)
			continue
		}
		records = append(records, rec)
		stats.Parsed++
	}
	return records, rowErrs, stats, nil
}

// columns maps manifest header names to indices. title/house_name are
// aliases; some platforms ship one, some the other.
type columns struct {
	recordID, platform, title, address          int
	listURL, detailURL, detailDescriptor        int
	imagePaths, htmlPath, extrasJSON, crawledAt int
}

func indexHeader(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(names ...string) int {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i
			}
		}
		return -1
	}
	c := columns{
		recordID:         get("record_id"),
		platform:         get("platform"),
		title:            get("title", "house_name"),
		address:          get("address"),
		listURL:          get("list_url"),
		detailURL:        get("detail_url"),
		detailDescriptor: get("detail_descriptor"),
		imagePaths:       get("image_paths"),
		htmlPath:         get("html_path"),
		extrasJSON:       get("extras_json"),
		crawledAt:        get("crawled_at"),
	}
	for name, i := range map[string]int{"record_id": c.recordID, "title/house_name": c.title, "crawled_at": c.crawledAt} {
		if i < 0 {
			return c, fmt.Errorf("manifest missing required column %s", name)
		}
	}
	return c, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (r *Reader) parseRow(dir string, platform constants.Platform, c columns, row []string) (entity.RawRecord, error) {
	rec := entity.RawRecord{
		RecordID:         field(row, c.recordID),
		Platform:         platform,
		Title:            field(row, c.title),
		Address:          field(row, c.address),
		ListURL:          field(row, c.listURL),
		DetailURL:        field(row, c.detailURL),
		DetailDescriptor: field(row, c.detailDescriptor),
	}
	if rec.RecordID == "" {
		return rec, errors.New("empty record_id")
	}
	if p := field(row, c.platform); p != "" && constants.Platform(p) != platform {
		return rec, fmt.Errorf("row platform %q does not match directory %q", p, platform)
	}
	if rec.Title == "" {
		return rec, errors.New("empty title")
	}

	ts, err := parseCrawledAt(field(row, c.crawledAt))
	if err != nil {
		return rec, err
	}
	rec.CrawledAt = ts

	extras, err := r.decoder.Decode(platform, field(row, c.extrasJSON))
	if err != nil {
		return rec, err
	}
	rec.Extras = extras

	if h := field(row, c.htmlPath); h != "" {
		rec.HTMLPath = resolve(dir, h)
	}
	if rec.Address == "" && rec.HTMLPath != "" {
		rec.Address = addressFromHTML(rec.HTMLPath)
	}
	for _, p := range splitPaths(field(row, c.imagePaths)) {
		rec.ImagePaths = append(rec.ImagePaths, resolve(dir, p))
	}
	rec.AttachmentPaths = listAttachments(dir, rec.RecordID)
	rec.TablePaths = listTables(dir, rec.RecordID)
	return rec, nil
}

var crawledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseCrawledAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty crawled_at")
	}
	for _, layout := range crawledAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable crawled_at %q", s)
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolve keeps absolute manifest paths as-is and anchors relative ones
// at the platform directory.
func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// listAttachments walks attachments/<rid>/ collecting supported files.
// A missing directory just means the record had no attachments.
func listAttachments(dir, recordID string) []string {
	root := filepath.Join(dir, "attachments", recordID)
	var out []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if constants.AllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			out = append(out, path)
		}
		return nil
	})
	sort.Strings(out)
	return out
}

func listTables(dir, recordID string) []string {
	matches, _ := filepath.Glob(filepath.Join(dir, "tables", recordID+"_*"))
	sort.Strings(matches)
	return matches
}
