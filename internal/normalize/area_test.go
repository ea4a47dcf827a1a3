package normalize

import (
	"math"
	"testing"
)

func TestParseArea(t *testing.T) {
	cases := []struct {
		in       string
		want     float64
		wantUnit string
	}{
		{"28.49m²", 28.49, "㎡"},
		{"28.49m2", 28.49, "㎡"},
		{"28.49㎡", 28.49, "㎡"},
		{"10평", 33.058, "평"},
		{"1,024.5㎡", 1024.5, "㎡"},
		{"전용 59.99㎡", 59.99, "㎡"},
	}
	for _, tc := range cases {
		got, unit, nerr := ParseArea("area", tc.in)
		if nerr != nil {
			t.Errorf("ParseArea(%q): unexpected error: %v", tc.in, nerr)
			continue
		}
		if math.Abs(got-tc.want) > 0.001 {
			t.Errorf("ParseArea(%q) = %v, want %v (±0.001)", tc.in, got, tc.want)
		}
		if unit != tc.wantUnit {
			t.Errorf("ParseArea(%q) unit = %q, want %q", tc.in, unit, tc.wantUnit)
		}
	}
}

func TestParseAreaFailure(t *testing.T) {
	for _, in := range []string{"", "넓음", "㎡"} {
		if _, _, nerr := ParseArea("area", in); nerr == nil {
			t.Errorf("ParseArea(%q): expected error", in)
		}
	}
}
