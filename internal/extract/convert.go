package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// converter turns HWP/HWPX and Office files into PDF with soffice.
// Converted PDFs are cached under ArtifactCacheDir keyed by the source
// file's content hash, so the convert step and a later OCR fallback pay
// for one conversion between them.
type converter struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func (c *converter) toPDF(ctx context.Context, path string) (string, func(), error) {
	hashHex, err := fileHashHex(path)
	if err != nil {
		return "", nil, err
	}

	cached := filepath.Join(c.cfg.ArtifactCacheDir, hashHex+".pdf")
	if st, err := os.Stat(cached); err == nil && !st.IsDir() {
		c.logger.Debug("using cached conversion", "cache", cached)
		return cached, nil, nil
	}
	if err := os.MkdirAll(c.cfg.ArtifactCacheDir, 0o755); err != nil {
		return "", nil, err
	}

	tmpDir, err := os.MkdirTemp("", "gp-conv-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			c.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}

	// soffice --headless --convert-to pdf --outdir <tmp> <file>
	_, errb, err := c.runner.Run(ctx, c.cfg.Soffice, "--headless", "--convert-to", "pdf", "--outdir", tmpDir, path)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("soffice: %s: %w", string(errb), err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	produced := filepath.Join(tmpDir, base+".pdf")
	if _, err := os.Stat(produced); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("soffice produced no pdf for %s", path)
	}

	if err := copyFile(produced, cached); err != nil {
		// Cache write failure is not fatal; use the temp artifact.
		c.logger.Warn("conversion cache write failed", "cache", cached, "error", err)
		return produced, cleanup, nil
	}
	cleanup()
	return cached, nil, nil
}

// ConvertToPDF is the second chain step: convert, then read the PDF
// text layer.
type ConvertToPDF struct {
	conv   *converter
	native *NativeText
}

func (c *ConvertToPDF) Name() string { return "convert-pdf" }

func (c *ConvertToPDF) Supports(format constants.FileFormat) bool {
	return format == constants.HWP || format == constants.OFFICE
}

func (c *ConvertToPDF) Extract(ctx context.Context, path string) (Result, error) {
	pdf, cleanup, err := c.conv.toPDF(ctx, path)
	if err != nil {
		return Result{}, &common.ExtractionError{Path: path, Step: c.Name(), Reason: "convert to pdf", Cause: err}
	}
	if cleanup != nil {
		defer cleanup()
	}
	res, err := c.native.pdfText(ctx, pdf)
	if err != nil {
		return Result{}, &common.ExtractionError{Path: path, Step: c.Name(), Reason: "text from converted pdf", Cause: err}
	}
	res.Method = constants.MethodConverted
	return res, nil
}

func fileHashHex(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
