package normalize

import (
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

func sampleRecord() entity.RawRecord {
	return entity.RawRecord{
		RecordID: "lh-0001",
		Platform: constants.PlatformLH,
		Title:    "  행복주택   모집공고 ",
		Address:  "서울특별시 강남구 자곡동 101",
		Extras: entity.PlatformExtras{
			Platform: constants.PlatformLH,
			PanID:    "20000569",
			Rest: map[string]string{
				"deposit":      "1천5백만원",
				"rent":         "50만원",
				"area":         "28.49㎡",
				"apply_period": "2025.01.03 ~ 2025.01.17",
			},
		},
		CrawledAt: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil)
	out, errs := n.Normalize(sampleRecord())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if out.Title != "행복주택 모집공고" {
		t.Errorf("Title = %q", out.Title)
	}
	if out.DepositKRW == nil || *out.DepositKRW != 15_000_000 {
		t.Errorf("DepositKRW = %v", out.DepositKRW)
	}
	if out.RentKRW == nil || *out.RentKRW != 500_000 {
		t.Errorf("RentKRW = %v", out.RentKRW)
	}
	if out.AreaM2 == nil || *out.AreaM2 != 28.49 {
		t.Errorf("AreaM2 = %v", out.AreaM2)
	}
	if out.AreaUnit != "㎡" {
		t.Errorf("AreaUnit = %q", out.AreaUnit)
	}
	if out.ApplyStart == nil || out.ApplyEnd == nil {
		t.Fatalf("apply window missing: %v ~ %v", out.ApplyStart, out.ApplyEnd)
	}
	if out.Category != constants.HappyHouse {
		t.Errorf("Category = %q", out.Category)
	}
}

func TestNormalizeDegradesPerField(t *testing.T) {
	rec := sampleRecord()
	rec.Extras.Rest["deposit"] = "보증금 문의"
	rec.Extras.Rest["apply_period"] = "상시모집"

	n := NewNormalizer(nil)
	out, errs := n.Normalize(rec)

	if out.DepositKRW != nil {
		t.Error("failed deposit must stay nil")
	}
	if out.DepositRaw != "보증금 문의" {
		t.Errorf("DepositRaw = %q, raw string must survive", out.DepositRaw)
	}
	if out.RentKRW == nil {
		t.Error("rent must still parse when deposit fails")
	}
	if out.ApplyStart != nil {
		t.Error("unparsable period must stay nil")
	}
	if out.RawLeftovers["apply_period_start"] != "상시모집" {
		t.Errorf("RawLeftovers = %v, raw date must be preserved", out.RawLeftovers)
	}
	if len(errs) != 2 {
		t.Errorf("want 2 field errors, got %d: %v", len(errs), errs)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := NewNormalizer(nil)
	a, _ := n.Normalize(sampleRecord())
	b, _ := n.Normalize(sampleRecord())
	if *a.DepositKRW != *b.DepositKRW || a.Title != b.Title || !a.ApplyStart.Equal(*b.ApplyStart) {
		t.Error("Normalize must be deterministic")
	}
}
