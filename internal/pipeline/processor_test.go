package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/dedup"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
	"github.com/daehong-lab/gonggo-pipeline/internal/extract"
	"github.com/daehong-lab/gonggo-pipeline/internal/geocode"
	"github.com/daehong-lab/gonggo-pipeline/internal/normalize"
	"github.com/daehong-lab/gonggo-pipeline/internal/rawio"
	"github.com/daehong-lab/gonggo-pipeline/internal/repository"
)

// ---- fakes -----------------------------------------------------------------

type fakeResolver struct{}

func (fakeResolver) Resolve(_ context.Context, raw string) (geocode.Resolution, error) {
	std := geocode.NormalizeAddress(raw)
	if std == "" {
		return geocode.Resolution{Degraded: true}, &common.GeocodeError{Address: raw}
	}
	lat, lng := 37.5, 127.0
	return geocode.Resolution{AddrStd: std, Lat: &lat, Lng: &lng}, nil
}

type fakeChain struct{}

func (fakeChain) Extract(_ context.Context, path string) (extract.Result, error) {
	if strings.Contains(path, "scan") {
		return extract.Result{Text: "OCR 본문", Pages: 1, Method: constants.MethodOCR}, nil
	}
	if strings.Contains(path, "broken") {
		return extract.Result{}, &common.ExtractionError{Path: path, Step: "chain", Reason: "all extractors failed"}
	}
	if strings.HasSuffix(path, ".zip") {
		return extract.Result{}, &common.ExtractionError{Path: path, Step: "chain", Reason: "unsupported extension"}
	}
	return extract.Result{Text: "모집공고 본문", Pages: 2, Method: constants.MethodNativeText}, nil
}

type fakeItems struct {
	mu   sync.Mutex
	rows map[string]entity.CanonicalItem
}

func (f *fakeItems) Upsert(_ context.Context, it *entity.CanonicalItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows == nil {
		f.rows = map[string]entity.CanonicalItem{}
	}
	f.rows[it.ItemID] = *it
	return nil
}

func (f *fakeItems) Get(_ context.Context, _ string) (*ent.Item, error) {
	return nil, nil
}

func (f *fakeItems) ListByPlatform(_ context.Context, _ string) ([]*ent.Item, error) {
	return nil, nil
}

type fakeArtifacts struct {
	mu          sync.Mutex
	attachments map[string]entity.Attachment
	images      int
	tables      int
	units       int
}

func (f *fakeArtifacts) UpsertUnits(_ context.Context, units []entity.Unit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.units += len(units)
	return nil
}

func (f *fakeArtifacts) UpsertAttachment(_ context.Context, a *entity.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attachments == nil {
		f.attachments = map[string]entity.Attachment{}
	}
	f.attachments[a.ID.String()] = *a
	return nil
}

func (f *fakeArtifacts) UpsertImage(_ context.Context, _ *entity.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images++
	return nil
}

func (f *fakeArtifacts) UpsertTable(_ context.Context, _ *entity.TableRaw) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables++
	return nil
}

func (f *fakeArtifacts) CountAttachments(_ context.Context, _ string) (int, error) {
	return len(f.attachments), nil
}

// fakeSources enforces the append-only rule the way the real repository
// does.
type fakeSources struct {
	mu       sync.Mutex
	assigned map[string]string // record_id -> item_id
	crawled  map[string]time.Time
}

func (f *fakeSources) Append(_ context.Context, entries []entity.SourceMapEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assigned == nil {
		f.assigned = map[string]string{}
		f.crawled = map[string]time.Time{}
	}
	for _, e := range entries {
		if prev, ok := f.assigned[e.RecordID]; ok && prev != e.ItemID {
			return &common.ProvenanceViolation{ItemID: e.ItemID, RecordID: e.RecordID, Op: "remap"}
		}
		f.assigned[e.RecordID] = e.ItemID
		f.crawled[e.RecordID] = e.CrawledAt
	}
	return nil
}

func (f *fakeSources) Priors(_ context.Context) (dedup.Prior, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prior := dedup.Prior{
		AssignedItem:  map[string]string{},
		SourceCount:   map[string]int{},
		EarliestCrawl: map[string]time.Time{},
	}
	for rid, iid := range f.assigned {
		prior.AssignedItem[rid] = iid
		prior.SourceCount[iid]++
		if t, ok := prior.EarliestCrawl[iid]; !ok || f.crawled[rid].Before(t) {
			prior.EarliestCrawl[iid] = f.crawled[rid]
		}
	}
	return prior, nil
}

// ---- fixture ---------------------------------------------------------------

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func appendRaw(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

// buildRawTree lays out one date with an lh record (native key, one
// attachment, one unit table) and an sh record that is a near-duplicate
// of the lh one.
func buildRawTree(t *testing.T, root, date string) {
	t.Helper()
	lh := filepath.Join(root, date, "lh")
	writeRaw(t, filepath.Join(lh, "raw.csv"),
		`record_id,title,address,image_paths,extras_json,crawled_at
lh-1,행복주택 강남 입주자 모집공고,서울시 강남구 역삼동 123,images/lh-1/평면도.png,"{""panId"":""20000569"",""category"":""행복주택"",""deposit"":""1천만원"",""apply_start"":""2025.06.10""}",2025-06-01T09:00:00Z
`)
	writeRaw(t, filepath.Join(lh, "attachments", "lh-1", "공고문.pdf"), "pdf-bytes")
	writeRaw(t, filepath.Join(lh, "attachments", "lh-1", "scan.pdf"), "scan-bytes")
	writeRaw(t, filepath.Join(lh, "tables", "lh-1_units.csv"), "주택형,임대보증금\n26A,1천만원\n")

	sh := filepath.Join(root, date, "sh")
	writeRaw(t, filepath.Join(sh, "raw.csv"),
		`record_id,title,address,extras_json,crawled_at
sh-9,[공고] 행복주택 강남 입주자 모집공고,서울특별시 강남구 역삼동 123,"{""apply_start"":""2025.06.10""}",2025-06-03T09:00:00Z
`)
}

func testProcessor(t *testing.T, rawRoot, outRoot string, sources repository.SourceMapRepository) (*Processor, *fakeItems, *fakeArtifacts) {
	t.Helper()
	cfg := &common.Config{
		Batch: common.BatchConfig{RawRoot: rawRoot, OutRoot: outRoot, Workers: 4},
		Dedup: common.DedupConfig{TitleThreshold: 0.90, DateWindowDays: 7},
	}
	reader, err := rawio.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	items := &fakeItems{}
	artifacts := &fakeArtifacts{}
	proc := NewProcessor(
		cfg, nil, reader,
		normalize.NewNormalizer(nil),
		fakeResolver{},
		fakeChain{},
		dedup.NewEngine(cfg.Dedup.TitleThreshold, cfg.Dedup.DateWindowDays, nil),
		items, artifacts, sources,
	)
	return proc, items, artifacts
}

// ---- tests -----------------------------------------------------------------

func TestRunMergesAcrossPlatforms(t *testing.T) {
	rawRoot, outRoot := t.TempDir(), t.TempDir()
	buildRawTree(t, rawRoot, "2025-06-03")
	sources := &fakeSources{}

	proc, items, artifacts := testProcessor(t, rawRoot, outRoot, sources)
	report, err := proc.Run(context.Background(), "2025-06-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The sh record has no native key and matches the lh record on
	// title, district and date, so both land on the native id.
	it, ok := items.rows["lh:20000569"]
	if !ok {
		t.Fatalf("items = %v, want lh:20000569", items.rows)
	}
	if len(items.rows) != 1 {
		t.Errorf("items = %d, want the two records merged", len(items.rows))
	}
	// freshest member (sh-9) supplies the fields
	if it.Platform != constants.PlatformSH {
		t.Errorf("representative platform = %q", it.Platform)
	}
	if !it.FirstSeenAt.Equal(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("first_seen_at = %v, want the earliest member's crawl", it.FirstSeenAt)
	}

	if sources.assigned["lh-1"] != "lh:20000569" || sources.assigned["sh-9"] != "lh:20000569" {
		t.Errorf("source map = %v", sources.assigned)
	}

	if report.Counts.NearDuplicatesMerged != 1 {
		t.Errorf("near dup merges = %d", report.Counts.NearDuplicatesMerged)
	}
	if report.Counts.OCRFallbackUsed != 1 {
		t.Errorf("ocr fallbacks = %d (scan.pdf)", report.Counts.OCRFallbackUsed)
	}
	if artifacts.units != 1 || artifacts.tables != 1 || artifacts.images != 1 {
		t.Errorf("artifacts = %+v", artifacts)
	}
	if len(artifacts.attachments) != 2 {
		t.Errorf("attachments = %d", len(artifacts.attachments))
	}
	for _, a := range artifacts.attachments {
		if a.TextPath == nil {
			t.Errorf("attachment %s has no text", a.SourcePath)
			continue
		}
		if _, err := os.Stat(filepath.Join(outRoot, "2025-06-03", *a.TextPath)); err != nil {
			t.Errorf("text file missing: %v", err)
		}
	}
}

func TestRunOutputsAreDeterministic(t *testing.T) {
	rawRoot := t.TempDir()
	buildRawTree(t, rawRoot, "2025-06-03")

	read := func(outRoot string) (string, string) {
		proc, _, _ := testProcessor(t, rawRoot, outRoot, &fakeSources{})
		if _, err := proc.Run(context.Background(), "2025-06-03"); err != nil {
			t.Fatal(err)
		}
		items, err := os.ReadFile(filepath.Join(outRoot, "2025-06-03", "items.csv"))
		if err != nil {
			t.Fatal(err)
		}
		idMap, err := os.ReadFile(filepath.Join(outRoot, "2025-06-03", "id_map.csv"))
		if err != nil {
			t.Fatal(err)
		}
		return string(items), string(idMap)
	}

	items1, idMap1 := read(t.TempDir())
	items2, idMap2 := read(t.TempDir())
	if items1 != items2 {
		t.Error("items.csv differs between identical runs")
	}
	if idMap1 != idMap2 {
		t.Error("id_map.csv differs between identical runs")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	rawRoot, outRoot := t.TempDir(), t.TempDir()
	buildRawTree(t, rawRoot, "2025-06-03")
	sources := &fakeSources{}

	proc, items, _ := testProcessor(t, rawRoot, outRoot, sources)
	if _, err := proc.Run(context.Background(), "2025-06-03"); err != nil {
		t.Fatal(err)
	}
	first := map[string]string{}
	for k, v := range sources.assigned {
		first[k] = v
	}

	// Second run over the same input: same assignments, no violation.
	proc2, items2, _ := testProcessor(t, rawRoot, outRoot, sources)
	if _, err := proc2.Run(context.Background(), "2025-06-03"); err != nil {
		t.Fatalf("re-run must be a no-op, got %v", err)
	}
	for k, v := range sources.assigned {
		if first[k] != v {
			t.Errorf("record %s remapped %s -> %s", k, first[k], v)
		}
	}
	if len(items.rows) != len(items2.rows) {
		t.Errorf("item count changed across runs")
	}
}

func TestRunSupersetInputGrowsOnly(t *testing.T) {
	rawRoot, outRoot := t.TempDir(), t.TempDir()
	buildRawTree(t, rawRoot, "2025-06-03")
	sources := &fakeSources{}

	proc, items, _ := testProcessor(t, rawRoot, outRoot, sources)
	if _, err := proc.Run(context.Background(), "2025-06-03"); err != nil {
		t.Fatal(err)
	}
	first := map[string]string{}
	for k, v := range sources.assigned {
		first[k] = v
	}

	// The next crawl repeats every prior record and adds one more.
	appendRaw(t, filepath.Join(rawRoot, "2025-06-03", "lh", "raw.csv"),
		`lh-2,국민임대 부천 입주자 모집공고,경기도 부천시 중동 77,,"{""panId"":""20000777""}",2025-06-04T09:00:00Z
`)

	proc2, items2, _ := testProcessor(t, rawRoot, outRoot, sources)
	if _, err := proc2.Run(context.Background(), "2025-06-03"); err != nil {
		t.Fatalf("superset re-run must succeed: %v", err)
	}

	// Prior assignments are frozen; only the new record is added.
	for k, v := range first {
		if sources.assigned[k] != v {
			t.Errorf("record %s remapped %s -> %s", k, v, sources.assigned[k])
		}
	}
	if got := sources.assigned["lh-2"]; got != "lh:20000777" {
		t.Errorf("new record assigned %q", got)
	}
	if len(sources.assigned) != len(first)+1 {
		t.Errorf("source map grew by %d, want 1", len(sources.assigned)-len(first))
	}
	if len(items2.rows) != len(items.rows)+1 {
		t.Errorf("items = %d, want one more than the first run's %d", len(items2.rows), len(items.rows))
	}
}

func TestRunProvenanceViolationIsBatchFatal(t *testing.T) {
	rawRoot, outRoot := t.TempDir(), t.TempDir()
	buildRawTree(t, rawRoot, "2025-06-03")

	// A ledger that already maps lh-1 elsewhere but reports no priors:
	// the engine cannot see the assignment, the append guard must.
	sources := &fakeSources{
		assigned: map[string]string{"lh-1": "lh:999"},
		crawled:  map[string]time.Time{"lh-1": time.Now()},
	}
	brokenPriors := &noPriorSources{inner: sources}

	proc, _, _ := testProcessor(t, rawRoot, outRoot, brokenPriors)
	report, err := proc.Run(context.Background(), "2025-06-03")

	var pv *common.ProvenanceViolation
	if !errors.As(err, &pv) {
		t.Fatalf("want ProvenanceViolation, got %v", err)
	}
	if report.ProvenanceViolation == "" {
		t.Error("violation must be recorded in the report")
	}
	// report.json still written for the operator
	if _, err := os.Stat(filepath.Join(outRoot, "2025-06-03", "report.json")); err != nil {
		t.Errorf("report.json missing: %v", err)
	}
}

type noPriorSources struct{ inner *fakeSources }

func (n *noPriorSources) Append(ctx context.Context, entries []entity.SourceMapEntry) error {
	return n.inner.Append(ctx, entries)
}

func (n *noPriorSources) Priors(context.Context) (dedup.Prior, error) {
	return dedup.Prior{
		AssignedItem:  map[string]string{},
		SourceCount:   map[string]int{},
		EarliestCrawl: map[string]time.Time{},
	}, nil
}

func TestRunRecordFailureIsolation(t *testing.T) {
	rawRoot, outRoot := t.TempDir(), t.TempDir()
	lh := filepath.Join(rawRoot, "2025-07-01", "lh")
	writeRaw(t, filepath.Join(lh, "raw.csv"),
		`record_id,title,address,extras_json,crawled_at
ok-1,국민임대 모집,경기도 성남시 분당구 정자동 1,"{""panId"":""1"",""deposit"":""정보없음""}",2025-07-01T00:00:00Z
ok-2,청년주택 모집,서울시 마포구 합정동 2,"{""panId"":""2""}",2025-07-01T00:00:00Z
`)
	writeRaw(t, filepath.Join(lh, "attachments", "ok-2", "broken.pdf"), "x")
	writeRaw(t, filepath.Join(lh, "attachments", "ok-2", "도면모음.zip"), "zip")

	proc, items, artifacts := testProcessor(t, rawRoot, outRoot, &fakeSources{})
	report, err := proc.Run(context.Background(), "2025-07-01")
	if err != nil {
		t.Fatalf("degraded records must not fail the batch: %v", err)
	}
	if len(items.rows) != 2 {
		t.Errorf("items = %d, want both records kept", len(items.rows))
	}
	// only ok-2 normalized cleanly
	if report.Counts.ParsedOK != 1 {
		t.Errorf("parsed ok = %d", report.Counts.ParsedOK)
	}
	if report.Counts.NormalizationFailed != 1 {
		t.Errorf("normalization failures = %d", report.Counts.NormalizationFailed)
	}
	if report.Counts.ExtractionFailed != 2 {
		t.Errorf("extraction failures = %d (broken.pdf and the archive)", report.Counts.ExtractionFailed)
	}
	// the archive is still registered, just without text
	var zipSeen bool
	for _, a := range artifacts.attachments {
		if a.FileExt == "zip" {
			zipSeen = true
			if a.TextPath != nil || a.IsOCR {
				t.Errorf("archive must be text-less: %+v", a)
			}
		}
	}
	if !zipSeen {
		t.Error("archive attachment was not registered")
	}
	// the failed attachment keeps its raw deposit string
	it := items.rows["lh:1"]
	if it.DepositKRW != nil || it.RawLeftovers["deposit"] != "정보없음" {
		t.Errorf("degraded field = %+v", it)
	}
}

func TestItemsCSVShape(t *testing.T) {
	rawRoot, outRoot := t.TempDir(), t.TempDir()
	buildRawTree(t, rawRoot, "2025-06-03")

	proc, _, _ := testProcessor(t, rawRoot, outRoot, &fakeSources{})
	if _, err := proc.Run(context.Background(), "2025-06-03"); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(outRoot, "2025-06-03", "items.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + one merged item", len(rows))
	}
	if rows[0][0] != "item_id" || rows[1][0] != "lh:20000569" {
		t.Errorf("rows = %v", rows)
	}
}
