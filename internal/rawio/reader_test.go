package rawio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// buildPlatformDir lays out one platform directory the way the crawlers do.
func buildPlatformDir(t *testing.T, root, date, platform, manifest string) string {
	t.Helper()
	dir := filepath.Join(root, date, platform)
	writeFile(t, filepath.Join(dir, "raw.csv"), manifest)
	return dir
}

const lhManifest = `record_id,platform,title,address,list_url,detail_url,detail_descriptor,image_paths,html_path,extras_json,crawled_at
lh-1,lh,행복주택 입주자 모집,서울시 강남구 역삼동 123,https://lh.kr/list,https://lh.kr/d/1,pan:20000569,images/lh-1/a.jpg;images/lh-1/b.png,html/lh-1.html,"{""panId"":""20000569"",""category"":""행복주택""}",2025-06-01T09:30:00Z
lh-2,lh,국민임대 모집공고,경기도 성남시 분당구,https://lh.kr/list,https://lh.kr/d/2,,,html/lh-2.html,{},2025-06-01 10:00:00
`

func TestReadPlatformDir(t *testing.T) {
	root := t.TempDir()
	dir := buildPlatformDir(t, root, "2025-06-01", "lh", lhManifest)
	writeFile(t, filepath.Join(dir, "attachments", "lh-1", "공고문.pdf"), "pdf")
	writeFile(t, filepath.Join(dir, "attachments", "lh-1", "평면도.hwp"), "hwp")
	writeFile(t, filepath.Join(dir, "attachments", "lh-1", "첨부.zip"), "zip")
	writeFile(t, filepath.Join(dir, "attachments", "lh-1", "ignore.tmp"), "x")
	writeFile(t, filepath.Join(dir, "tables", "lh-1_units.csv"), "type,deposit\nA,100만원\n")

	r, err := NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	recs, rowErrs, stats, err := r.ReadPlatformDir(dir, constants.PlatformLH)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("row errors: %+v", rowErrs)
	}
	if stats.Parsed != 2 || stats.Rows != 2 {
		t.Fatalf("stats = %+v, want 2 parsed rows", stats)
	}

	rec := recs[0]
	if rec.RecordID != "lh-1" || rec.Platform != constants.PlatformLH {
		t.Errorf("record = %+v", rec)
	}
	if rec.Extras.PanID != "20000569" {
		t.Errorf("panId = %q, want lifted from extras_json", rec.Extras.PanID)
	}
	if rec.Extras.CategoryLabel != "행복주택" {
		t.Errorf("category = %q", rec.Extras.CategoryLabel)
	}
	if got := rec.CrawledAt; !got.Equal(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("crawled_at = %v", got)
	}
	if len(rec.ImagePaths) != 2 {
		t.Errorf("image paths = %v, want 2 resolved", rec.ImagePaths)
	}
	if !strings.HasPrefix(rec.ImagePaths[0], dir) {
		t.Errorf("image path not anchored at platform dir: %q", rec.ImagePaths[0])
	}
	// .tmp filtered; pdf, hwp and the archive kept sorted
	if len(rec.AttachmentPaths) != 3 {
		t.Errorf("attachments = %v, want pdf+hwp+zip", rec.AttachmentPaths)
	}
	if len(rec.TablePaths) != 1 {
		t.Errorf("tables = %v", rec.TablePaths)
	}

	// second row: space-separated timestamp, no artifacts
	if recs[1].RecordID != "lh-2" || len(recs[1].AttachmentPaths) != 0 {
		t.Errorf("second record = %+v", recs[1])
	}
}

func TestReadPlatformDirAddressFromSnapshot(t *testing.T) {
	manifest := `record_id,title,address,html_path,extras_json,crawled_at
lh-7,매입임대 모집,,html/lh-7.html,{},2025-06-01T00:00:00Z
lh-8,전세임대 모집,,,{},2025-06-01T00:00:00Z
`
	root := t.TempDir()
	dir := buildPlatformDir(t, root, "2025-06-01", "lh", manifest)
	writeFile(t, filepath.Join(dir, "html", "lh-7.html"),
		`<html><body><h1>매입임대 모집</h1><p>소재지</p><p>서울시 관악구 신림동 1544-3 일대</p></body></html>`)

	r, _ := NewReader(nil)
	recs, rowErrs, _, err := r.ReadPlatformDir(dir, constants.PlatformLH)
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("err = %v, rowErrs = %+v", err, rowErrs)
	}
	if got := recs[0].Address; got != "서울시 관악구 신림동 1544-3 일대" {
		t.Errorf("address = %q, want the snapshot line", got)
	}
	// no snapshot, no address: the record still flows, degraded
	if recs[1].Address != "" {
		t.Errorf("address = %q, want empty", recs[1].Address)
	}
}

func TestReadPlatformDirRowFailuresAreIsolated(t *testing.T) {
	manifest := `record_id,title,crawled_at,extras_json
ok-1,제목,2025-06-01T00:00:00Z,{}
,제목없는행,2025-06-01T00:00:00Z,{}
ok-2,다른 제목,bad-timestamp,{}
ok-3,정상,2025-06-01T00:00:00Z,"{""panId"":123}"
ok-4,마지막,2025-06-01T00:00:00Z,{}
`
	root := t.TempDir()
	dir := buildPlatformDir(t, root, "2025-06-01", "sh", manifest)

	r, err := NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	recs, rowErrs, stats, err := r.ReadPlatformDir(dir, constants.PlatformSH)
	if err != nil {
		t.Fatalf("bad rows must not fail the manifest: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("parsed = %d, want ok-1 and ok-4 only", len(recs))
	}
	if stats.Failed != 3 || len(rowErrs) != 3 {
		t.Errorf("stats = %+v, errors = %+v", stats, rowErrs)
	}
	for _, re := range rowErrs {
		if re.Err == "" || re.Line < 2 {
			t.Errorf("row error missing context: %+v", re)
		}
	}
}

func TestReadPlatformDirMissingRequiredColumn(t *testing.T) {
	root := t.TempDir()
	dir := buildPlatformDir(t, root, "2025-06-01", "gh", "record_id,address\nx,y\n")

	r, _ := NewReader(nil)
	if _, _, _, err := r.ReadPlatformDir(dir, constants.PlatformGH); err == nil {
		t.Fatal("manifest without a title column must fail")
	}
}

func TestReadDateSkipsAbsentPlatforms(t *testing.T) {
	root := t.TempDir()
	buildPlatformDir(t, root, "2025-06-01", "lh", lhManifest)
	buildPlatformDir(t, root, "2025-06-01", "sh",
		"record_id,title,crawled_at,extras_json\nsh-9,청년매입임대,2025-06-03T00:00:00Z,{}\n")

	r, _ := NewReader(nil)
	recs, _, stats, err := r.ReadDate(root, "2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Platforms != 2 {
		t.Errorf("platforms = %d, want 2 (absent dirs skipped)", stats.Platforms)
	}
	if len(recs) != 3 {
		t.Errorf("records = %d", len(recs))
	}
	// deterministic order: platforms alphabetical, rows in manifest order
	if recs[0].Platform != constants.PlatformLH || recs[2].Platform != constants.PlatformSH {
		t.Errorf("order = %v, %v, %v", recs[0].RecordID, recs[1].RecordID, recs[2].RecordID)
	}
}

func TestReadDateMissingTree(t *testing.T) {
	r, _ := NewReader(nil)
	if _, _, _, err := r.ReadDate(t.TempDir(), "2025-01-01"); err == nil {
		t.Fatal("missing date tree must fail the batch up front")
	}
}
