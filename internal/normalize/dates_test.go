package normalize

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2025-01-03",
		"2025.01.03",
		"2025.01.03.",
		"2025/1/3",
		"2025년 1월 3일",
		"2025년1월3일",
	} {
		got, nerr := ParseDate("apply_start", in)
		if nerr != nil {
			t.Errorf("ParseDate(%q): unexpected error: %v", in, nerr)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateFailure(t *testing.T) {
	for _, in := range []string{"", "상시모집", "2025-13-01", "2025-02-30"} {
		if _, nerr := ParseDate("apply_start", in); nerr == nil {
			t.Errorf("ParseDate(%q): expected error", in)
		}
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, errs := ParseDateRange("apply_period", "2025.01.03 ~ 2025.01.17")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if start == nil || !start.Equal(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if end == nil || !end.Equal(time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestParseDateRangePartial(t *testing.T) {
	start, end, errs := ParseDateRange("apply_period", "2025.01.03 ~ 추후공지")
	if start == nil {
		t.Error("start should parse")
	}
	if end != nil {
		t.Error("end should be nil")
	}
	if len(errs) != 1 {
		t.Errorf("want 1 error for the unparsable end, got %d", len(errs))
	}
}

func TestParseDateRangeSingle(t *testing.T) {
	start, end, errs := ParseDateRange("apply_period", "2025-01-03")
	if start == nil || end != nil || len(errs) != 0 {
		t.Errorf("single date: start=%v end=%v errs=%v", start, end, errs)
	}
}
