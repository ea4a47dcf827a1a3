package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/repository"
)

// Service is a small façade over the item repository that produces the
// optional XLSX companion to report.json: one Items sheet with the
// canonical rows, one Summary sheet with the batch tallies the caller
// passes in.
type Service struct {
	items  repository.ItemRepository
	logger *slog.Logger
}

func NewService(items repository.ItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{items: items, logger: logger}
}

// BuildBatchWorkbook returns the workbook bytes for one crawl date.
// summary is rendered verbatim as name/value rows.
func (s *Service) BuildBatchWorkbook(ctx context.Context, date string, summary [][]string) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const itemsSheet = "Items"
	if index, _ := f.GetSheetIndex(itemsSheet); index == -1 {
		if _, err := f.NewSheet(itemsSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(itemsSheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Item ID", "Platform", "Title", "Address", "Category",
		"Deposit (KRW)", "Rent (KRW)", "Area (m2)",
		"Apply Start", "Apply End", "Last Seen",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}

	row := 2
	total := 0
	for _, platform := range constants.PlatformCodes {
		items, err := s.items.ListByPlatform(ctx, platform)
		if err != nil {
			return nil, fmt.Errorf("list items for %s: %w", platform, err)
		}
		for _, it := range items {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(itemsSheet, cell, v)
			}
			write(1, it.ID)
			write(2, it.Platform)
			write(3, it.Title)
			write(4, it.AddrStd)
			write(5, it.Category)
			if it.DepositKrw != nil {
				write(6, *it.DepositKrw)
			}
			if it.RentKrw != nil {
				write(7, *it.RentKrw)
			}
			if it.AreaM2 != nil {
				write(8, *it.AreaM2)
			}
			if it.ApplyStart != nil {
				write(9, it.ApplyStart.Format("2006-01-02"))
			}
			if it.ApplyEnd != nil {
				write(10, it.ApplyEnd.Format("2006-01-02"))
			}
			write(11, it.LastSeenAt.Format("2006-01-02"))
			row++
			total++
		}
	}

	_ = f.SetColWidth(itemsSheet, "A", "A", 22)
	_ = f.SetColWidth(itemsSheet, "C", "C", 48)
	_ = f.SetColWidth(itemsSheet, "D", "D", 40)
	_ = f.SetColWidth(itemsSheet, "F", "H", 14)

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(summarySheet, "A1", "Batch date")
	_ = f.SetCellValue(summarySheet, "B1", date)
	for i, kv := range summary {
		for j, v := range kv {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(summarySheet, cell, v)
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"date", date,
		"rows", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
