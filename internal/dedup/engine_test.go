package dedup

import (
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
	"github.com/daehong-lab/gonggo-pipeline/internal/identity"
)

func member(platform constants.Platform, recordID, title, addr string, crawled time.Time, nativeKey string) Member {
	rec := entity.RawRecord{
		RecordID:  recordID,
		Platform:  platform,
		Title:     title,
		Address:   addr,
		CrawledAt: crawled,
		Extras:    entity.PlatformExtras{Platform: platform, PanID: nativeKey},
	}
	fields := entity.NormalizedFields{Title: title}
	return Member{
		Record:  rec,
		Fields:  fields,
		ItemID:  identity.Resolve(rec, fields, addr),
		AddrStd: addr,
	}
}

func emptyPrior() Prior {
	return Prior{
		AssignedItem:  map[string]string{},
		SourceCount:   map[string]int{},
		EarliestCrawl: map[string]time.Time{},
	}
}

// The cross-platform scenario: an lh record with a native key and an sh
// record with the same title and district, posted 2 days apart, must end
// up in the same CanonicalItem with two source_map rows.
func TestMergeCrossPlatform(t *testing.T) {
	day1 := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	lh := member(constants.PlatformLH, "lh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동 101", day1, "20000569")
	sh := member(constants.PlatformSH, "sh-9", "행복주택 모집공고", "서울특별시 강남구 자곡동 55", day1.Add(48*time.Hour), "")

	e := NewEngine(0.90, 7, nil)
	out := e.Merge([]Member{lh, sh}, emptyPrior())

	if len(out.Clusters) != 1 {
		t.Fatalf("clusters = %d, want 1", len(out.Clusters))
	}
	c := out.Clusters[0]
	if c.ItemID != "lh:20000569" {
		t.Errorf("merged into %q, want the native-key bucket", c.ItemID)
	}
	if len(out.SourceMap) != 2 {
		t.Fatalf("source_map rows = %d, want 2", len(out.SourceMap))
	}
	for _, row := range out.SourceMap {
		if row.ItemID != "lh:20000569" {
			t.Errorf("source_map row on %q", row.ItemID)
		}
	}
	if len(out.Reassignments) != 1 || out.Reassignments[0].RecordID != "sh-9" {
		t.Errorf("reassignments = %+v", out.Reassignments)
	}
	if c.Representative.Record.RecordID != "sh-9" {
		t.Errorf("representative = %q, freshest member must win fields", c.Representative.Record.RecordID)
	}
}

func TestMergeKeepsDistinctListingsApart(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	a := member(constants.PlatformSH, "sh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "")
	b := member(constants.PlatformSH, "sh-2", "국민임대 입주자 모집", "서울특별시 강남구 자곡동", day, "")

	e := NewEngine(0.90, 7, nil)
	out := e.Merge([]Member{a, b}, emptyPrior())

	if len(out.Clusters) != 2 {
		t.Fatalf("clusters = %d, want 2 (different titles must not merge)", len(out.Clusters))
	}
	if len(out.Reassignments) != 0 {
		t.Errorf("unexpected reassignments: %+v", out.Reassignments)
	}
}

func TestMergeRespectsDateWindow(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	a := member(constants.PlatformSH, "sh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "")
	b := member(constants.PlatformGH, "gh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day.Add(30*24*time.Hour), "")

	e := NewEngine(0.90, 7, nil)
	out := e.Merge([]Member{a, b}, emptyPrior())

	if len(out.Clusters) != 2 {
		t.Fatalf("clusters = %d, want 2 (30 days apart exceeds the window)", len(out.Clusters))
	}
}

// A record whose identity was persisted by a prior run keeps that
// item_id even when this run's near-duplicate pass would move it.
func TestMergeAppendOnlyPolicy(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	lh := member(constants.PlatformLH, "lh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "20000569")
	sh := member(constants.PlatformSH, "sh-9", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "")

	prior := emptyPrior()
	prior.AssignedItem["sh-9"] = sh.ItemID // persisted under its hash id
	prior.SourceCount[sh.ItemID] = 1

	e := NewEngine(0.90, 7, nil)
	out := e.Merge([]Member{lh, sh}, prior)

	if len(out.Clusters) != 2 {
		t.Fatalf("clusters = %d, want 2 (persisted identity is frozen)", len(out.Clusters))
	}
	for _, row := range out.SourceMap {
		if row.RecordID == "sh-9" && row.ItemID != sh.ItemID {
			t.Errorf("sh-9 moved to %q; previously assigned item_id must not be rewritten", row.ItemID)
		}
	}
}

func TestMergeTieBreakPrefersLargestCluster(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	big := member(constants.PlatformLH, "lh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "100")
	small := member(constants.PlatformLH, "lh-2", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "200")
	stray := member(constants.PlatformSH, "sh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day.Add(24*time.Hour), "")

	prior := emptyPrior()
	prior.SourceCount["lh:100"] = 5
	prior.SourceCount["lh:200"] = 1

	e := NewEngine(0.90, 7, nil)
	out := e.Merge([]Member{big, small, stray}, prior)

	var strayID string
	for _, row := range out.SourceMap {
		if row.RecordID == "sh-1" {
			strayID = row.ItemID
		}
	}
	if strayID != "lh:100" {
		t.Errorf("stray merged into %q, want lh:100 (largest known cluster)", strayID)
	}
}

func TestMergeEvictsHashCollisions(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	a := member(constants.PlatformSH, "sh-1", "행복주택 모집공고", "서울특별시 강남구 자곡동", day, "")
	b := member(constants.PlatformSH, "sh-2", "행복주택 모집공고", "부산광역시 해운대구 우동", day.Add(time.Hour), "")
	b.ItemID = a.ItemID // forced hash collision with an incompatible address

	e := NewEngine(0.90, 7, nil)
	out := e.Merge([]Member{a, b}, emptyPrior())

	if len(out.Collisions) != 1 {
		t.Fatalf("collisions = %d, want 1", len(out.Collisions))
	}
	if got := out.Collisions[0].RecordIDs; len(got) != 1 || got[0] != "sh-2" {
		t.Errorf("evicted = %v, want the later record sh-2", got)
	}
	// The collided record is excluded from auto-merge entirely.
	for _, row := range out.SourceMap {
		if row.RecordID == "sh-2" {
			t.Error("evicted record must not get a source_map row")
		}
	}
}

func TestMergeDeterministicOrder(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	ms := []Member{
		member(constants.PlatformSH, "sh-3", "전세임대 공고 3", "서울특별시 서초구 방배동", day, ""),
		member(constants.PlatformSH, "sh-1", "전세임대 공고 1", "서울특별시 강남구 자곡동", day, ""),
		member(constants.PlatformSH, "sh-2", "전세임대 공고 2", "서울특별시 송파구 문정동", day, ""),
	}
	e := NewEngine(0.90, 7, nil)
	a := e.Merge(ms, emptyPrior())
	b := e.Merge([]Member{ms[2], ms[0], ms[1]}, emptyPrior())

	if len(a.Clusters) != len(b.Clusters) {
		t.Fatal("cluster counts differ")
	}
	for i := range a.Clusters {
		if a.Clusters[i].ItemID != b.Clusters[i].ItemID {
			t.Errorf("cluster order differs at %d: %q vs %q", i, a.Clusters[i].ItemID, b.Clusters[i].ItemID)
		}
	}
	for i := range a.SourceMap {
		if a.SourceMap[i] != b.SourceMap[i] {
			t.Errorf("source_map order differs at %d", i)
		}
	}
}
