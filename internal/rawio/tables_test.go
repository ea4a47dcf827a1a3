package rawio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestUnitTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lh-1_units.csv")
	csv := "주택형,임대보증금,월임대료,전용면적,세대수\n" +
		"26A,1천5백만원,50만원,26.85㎡,120세대\n" +
		"36B,2천만원,60만원,36.44,80\n" +
		",,,,\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	units, err := UnitTable(path, "lh:20000569")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("units = %d, want blank row skipped", len(units))
	}

	u := units[0]
	if u.UnitType != "26A" || u.ItemID != "lh:20000569" {
		t.Errorf("unit = %+v", u)
	}
	if u.DepositKRW == nil || *u.DepositKRW != 15_000_000 {
		t.Errorf("deposit = %v, want 15,000,000", u.DepositKRW)
	}
	if u.RentKRW == nil || *u.RentKRW != 500_000 {
		t.Errorf("rent = %v", u.RentKRW)
	}
	if u.AreaM2 == nil || math.Abs(*u.AreaM2-26.85) > 0.001 {
		t.Errorf("area = %v", u.AreaM2)
	}
	if u.Supply == nil || *u.Supply != 120 {
		t.Errorf("supply = %v", u.Supply)
	}

	// bare numbers: area in m² by convention, count without 세대 suffix
	if units[1].AreaM2 == nil || math.Abs(*units[1].AreaM2-36.44) > 0.001 {
		t.Errorf("bare area = %v", units[1].AreaM2)
	}
	if units[1].Supply == nil || *units[1].Supply != 80 {
		t.Errorf("bare supply = %v", units[1].Supply)
	}
}

func TestUnitTableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sh-9_units.json")
	body := `[
		{"Type": "청년형", "Deposit": "100만원", "Area": "16.2㎡"},
		{"note": "no unit fields at all"}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	units, err := UnitTable(path, "sh:abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("units = %d, want row without unit fields skipped", len(units))
	}
	if units[0].UnitType != "청년형" || units[0].DepositKRW == nil || *units[0].DepositKRW != 1_000_000 {
		t.Errorf("unit = %+v", units[0])
	}
}

func TestUnitTableUnsupportedFormat(t *testing.T) {
	if _, err := UnitTable("x.parquet", "id"); err == nil {
		t.Fatal("unsupported format must be rejected")
	}
}

func TestTableFormat(t *testing.T) {
	for path, want := range map[string]string{
		"a/b/lh-1_units.csv": "csv",
		"lh-1_sched.json":    "json",
		"t.XLSX":             "xlsx",
		"t.html":             "",
	} {
		if got := TableFormat(path); got != want {
			t.Errorf("TableFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
