package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// OCRText is the last chain step: rasterize pages and run tesseract.
// Non-PDF documents are converted first (cached, shared with the
// convert step); images go straight to tesseract.
type OCRText struct {
	cfg    Config
	runner Runner
	conv   *converter
}

func (o *OCRText) Name() string { return "ocr" }

func (o *OCRText) Supports(format constants.FileFormat) bool {
	switch format {
	case constants.PDF, constants.IMAGE, constants.HWP, constants.OFFICE:
		return true
	default:
		return false
	}
}

func (o *OCRText) Extract(ctx context.Context, path string) (Result, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))

	if format == constants.IMAGE {
		txt, err := o.tesseract(ctx, path)
		if err != nil {
			return Result{}, &common.ExtractionError{Path: path, Step: o.Name(), Reason: "tesseract", Cause: err}
		}
		return Result{Text: txt, Pages: 1, Method: constants.MethodOCR}, nil
	}

	pdf := path
	if format != constants.PDF {
		converted, cleanup, err := o.conv.toPDF(ctx, path)
		if err != nil {
			return Result{}, &common.ExtractionError{Path: path, Step: o.Name(), Reason: "convert to pdf", Cause: err}
		}
		if cleanup != nil {
			defer cleanup()
		}
		pdf = converted
	}
	return o.pdfOCR(ctx, path, pdf)
}

func (o *OCRText) pdfOCR(ctx context.Context, origPath, pdf string) (Result, error) {
	tmpDir, err := os.MkdirTemp("", "gp-ocr-*")
	if err != nil {
		return Result{}, &common.ExtractionError{Path: origPath, Step: o.Name(), Reason: "mkdtemp", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := o.runner.Run(ctx, o.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", o.cfg.DPI), "-png", pdf, prefix)
	if err != nil {
		return Result{}, &common.ExtractionError{Path: origPath, Step: o.Name(), Reason: string(errb), Cause: err}
	}

	// pdftoppm names pages prefix-1.png, prefix-2.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if o.cfg.MaxPages > 0 && len(matches) > o.cfg.MaxPages {
		matches = matches[:o.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{}, &common.ExtractionError{Path: origPath, Step: o.Name(), Reason: "pdftoppm produced no images"}
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := o.tesseract(ctx, img)
		if err != nil {
			// One bad page does not sink the document.
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}
	return Result{Text: b.String(), Pages: len(matches), Method: constants.MethodOCR}, nil
}

func (o *OCRText) tesseract(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := o.runner.Run(ctx, o.cfg.Tesseract, path, "stdout", "-l", o.cfg.TesseractLang)
	if err != nil {
		return "", fmt.Errorf("tesseract: %s: %w", string(errb), err)
	}
	return string(out), nil
}
