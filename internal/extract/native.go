package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// NativeText reads text that is already in the file: the PDF text layer,
// XLSX cell contents, or a plain text file.
type NativeText struct {
	cfg    Config
	runner Runner
}

func (n *NativeText) Name() string { return "native-text" }

func (n *NativeText) Supports(format constants.FileFormat) bool {
	switch format {
	case constants.PDF, constants.TXT, constants.OFFICE:
		return true
	default:
		return false
	}
}

func (n *NativeText) Extract(ctx context.Context, path string) (Result, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		return n.pdfText(ctx, path)
	case constants.TXT:
		b, err := os.ReadFile(path)
		if err != nil {
			return Result{}, &common.ExtractionError{Path: path, Step: n.Name(), Reason: "read", Cause: err}
		}
		return Result{Text: string(b), Pages: 1, Method: constants.MethodNativeText}, nil
	case constants.OFFICE:
		if ext == "xlsx" {
			return n.xlsxText(path)
		}
		return Result{}, &common.ExtractionError{Path: path, Step: n.Name(), Reason: "no native reader for ." + ext}
	default:
		return Result{}, &common.ExtractionError{Path: path, Step: n.Name(), Reason: "unsupported format"}
	}
}

func (n *NativeText) pdfText(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := n.runner.Run(ctx, n.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{}, &common.ExtractionError{Path: path, Step: n.Name(), Reason: string(errb), Cause: err}
	}
	text := string(out)
	// pdftotext separates pages with form feeds.
	pages := 1 + strings.Count(text, "\f")
	return Result{Text: text, Pages: pages, Method: constants.MethodNativeText}, nil
}

func (n *NativeText) xlsxText(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, &common.ExtractionError{Path: path, Step: n.Name(), Reason: "open xlsx", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	sheets := f.GetSheetList()
	for i, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return Result{}, &common.ExtractionError{Path: path, Step: n.Name(), Reason: fmt.Sprintf("read sheet %q", sheet), Cause: err}
		}
		if i > 0 {
			b.WriteString("\n\f\n")
		}
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteByte('\n')
		}
	}
	return Result{Text: b.String(), Pages: len(sheets), Method: constants.MethodNativeText}, nil
}
