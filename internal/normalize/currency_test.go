package normalize

import "testing"

func TestParseKRW(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"50만원", 500_000},
		{"1천5백만원", 15_000_000},
		{"1,500만원", 15_000_000},
		{"3억5천만원", 350_000_000},
		{"2억원", 200_000_000},
		{"억원", 100_000_000},
		{"120000원", 120_000},
		{"120,000원", 120_000},
		{"7천원", 7_000},
		{"3백5십만원", 3_500_000},
		{"0원", 0},
		{" 30만원 ", 300_000},
	}
	for _, tc := range cases {
		got, nerr := ParseKRW("deposit", tc.in)
		if nerr != nil {
			t.Errorf("ParseKRW(%q): unexpected error: %v", tc.in, nerr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKRW(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseKRWFailure(t *testing.T) {
	for _, in := range []string{"", "문의", "삼십만원", "1.2.3만원x"} {
		if _, nerr := ParseKRW("rent", in); nerr == nil {
			t.Errorf("ParseKRW(%q): expected error", in)
		}
	}
}

func TestParseKRWKeepsRaw(t *testing.T) {
	_, nerr := ParseKRW("deposit", "문의")
	if nerr == nil {
		t.Fatal("expected error")
	}
	if nerr.Raw != "문의" {
		t.Errorf("Raw = %q, want original string", nerr.Raw)
	}
	if nerr.Field != "deposit" {
		t.Errorf("Field = %q, want deposit", nerr.Field)
	}
}
