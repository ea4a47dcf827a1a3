package rawio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
	"github.com/daehong-lab/gonggo-pipeline/internal/normalize"
)

// UnitTable parses a crawled unit table (tables/<rid>_*.json|csv|xlsx)
// into Unit rows. Crawlers dump these tables as-is from notice pages, so
// column names vary; known aliases are matched case-insensitively and
// rows that fail to parse are skipped rather than failing the file.
func UnitTable(path, itemID string) ([]entity.Unit, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "json":
		return unitsFromJSON(path, itemID)
	case "csv":
		return unitsFromCSV(path, itemID)
	case "xlsx":
		return unitsFromXLSX(path, itemID)
	default:
		return nil, fmt.Errorf("unsupported table format %q", ext)
	}
}

// TableFormat returns the storage format label for a table path, or ""
// when the file is not a table the pipeline understands.
func TableFormat(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "json", "csv", "xlsx":
		return ext
	default:
		return ""
	}
}

func unitsFromJSON(path, itemID string) ([]entity.Unit, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("unit table %s: %w", filepath.Base(path), err)
	}
	var units []entity.Unit
	for _, m := range rows {
		row := map[string]string{}
		for k, v := range m {
			if name := canonicalUnitColumn(k); name != "" {
				row[name] = strings.TrimSpace(stringify(v))
			}
		}
		if u, ok := unitFromRow(row, itemID); ok {
			units = append(units, u)
		}
	}
	return units, nil
}

func unitsFromCSV(path, itemID string) ([]entity.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unit table %s: %w", filepath.Base(path), err)
	}
	return unitsFromGrid(all, itemID), nil
}

func unitsFromXLSX(path, itemID string) ([]entity.Unit, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unit table %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	var units []entity.Unit
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		units = append(units, unitsFromGrid(rows, itemID)...)
	}
	return units, nil
}

func unitsFromGrid(grid [][]string, itemID string) []entity.Unit {
	if len(grid) < 2 {
		return nil
	}
	cols := map[string]int{}
	for i, h := range grid[0] {
		cols[canonicalUnitColumn(h)] = i
	}
	var units []entity.Unit
	for _, raw := range grid[1:] {
		row := map[string]string{}
		for name, i := range cols {
			if name != "" && i < len(raw) {
				row[name] = strings.TrimSpace(raw[i])
			}
		}
		if u, ok := unitFromRow(row, itemID); ok {
			units = append(units, u)
		}
	}
	return units
}

// canonicalUnitColumn folds the header aliases the platforms use onto
// the canonical names.
func canonicalUnitColumn(h string) string {
	switch strings.ToLower(strings.TrimSpace(h)) {
	case "unit_type", "type", "형별", "주택형", "타입":
		return "unit_type"
	case "deposit", "보증금", "임대보증금":
		return "deposit"
	case "rent", "임대료", "월임대료", "월세":
		return "rent"
	case "area", "면적", "전용면적", "공급면적":
		return "area"
	case "supply", "세대수", "공급세대수", "모집호수":
		return "supply"
	default:
		return ""
	}
}

func unitFromRow(row map[string]string, itemID string) (entity.Unit, bool) {
	u := entity.Unit{ID: entity.StableID("unit", itemID, row["unit_type"]), ItemID: itemID, UnitType: row["unit_type"]}

	filled := u.UnitType != ""
	if s := row["deposit"]; s != "" {
		if v, nerr := normalize.ParseKRW("deposit", s); nerr == nil {
			u.DepositKRW = &v
			filled = true
		}
	}
	if s := row["rent"]; s != "" {
		if v, nerr := normalize.ParseKRW("rent", s); nerr == nil {
			u.RentKRW = &v
			filled = true
		}
	}
	if s := row["area"]; s != "" {
		if v, ok := parseAreaM2(s); ok {
			u.AreaM2 = &v
			filled = true
		}
	}
	if s := row["supply"]; s != "" {
		if n, err := parseCount(s); err == nil {
			u.Supply = &n
			filled = true
		}
	}
	return u, filled
}

// parseAreaM2 accepts both unit-suffixed values and the bare numbers
// common in unit tables, which are in m² by convention.
func parseAreaM2(s string) (float64, bool) {
	if v, _, nerr := normalize.ParseArea("area", s); nerr == nil {
		return v, true
	}
	var v float64
	if _, err := fmt.Sscanf(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), "%g", &v); err == nil && v > 0 {
		return v, true
	}
	return 0, false
}

func parseCount(s string) (int, error) {
	s = strings.TrimSuffix(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), "세대")
	s = strings.TrimSuffix(s, "호")
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}
