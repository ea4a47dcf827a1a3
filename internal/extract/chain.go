package extract

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// Chain runs the fallback extractors in order until one yields adequate
// text. A fully failed chain returns an ExtractionError and an empty
// Result; it never panics and never aborts the surrounding batch.
type Chain struct {
	cfg        Config
	logger     *slog.Logger
	extractors []Extractor
}

// NewChain builds the default chain: native text, convert-to-PDF, OCR.
func NewChain(cfg Config, logger *slog.Logger) *Chain {
	return newChain(cfg, execRunner{}, logger)
}

func newChain(cfg Config, r Runner, logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	conv := &converter{cfg: cfg, runner: r, logger: logger}
	native := &NativeText{cfg: cfg, runner: r}
	return &Chain{
		cfg:    cfg,
		logger: logger,
		extractors: []Extractor{
			native,
			&ConvertToPDF{conv: conv, native: native},
			&OCRText{cfg: cfg, runner: r, conv: conv},
		},
	}
}

// Extract runs the chain for one attachment.
func (c *Chain) Extract(ctx context.Context, path string) (Result, error) {
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return Result{}, &common.ExtractionError{Path: path, Step: "chain", Reason: "unsupported extension"}
	}

	var steps []StepOutcome
	var best Result

	for _, ex := range c.extractors {
		if !ex.Supports(format) {
			continue
		}
		start := time.Now()
		res, err := ex.Extract(ctx, path)
		elapsed := time.Since(start)

		if err != nil {
			steps = append(steps, StepOutcome{Step: ex.Name(), OK: false, Elapsed: elapsed, Detail: err.Error()})
			c.logger.Warn("extract.step_failed", "path", path, "step", ex.Name(), "error", err)
			continue
		}

		res.Text = CleanText(res.Text)
		steps = append(steps, StepOutcome{Step: ex.Name(), OK: true, Elapsed: elapsed})

		if c.adequate(res) {
			res.Steps = steps
			c.logger.Debug("extract.ok",
				"path", path,
				"method", res.Method,
				"pages", res.Pages,
				"chars", utf8.RuneCountInString(res.Text),
			)
			return res, nil
		}
		c.logger.Debug("extract.near_empty", "path", path, "step", ex.Name(), "chars", utf8.RuneCountInString(res.Text))
		if utf8.RuneCountInString(res.Text) > utf8.RuneCountInString(best.Text) {
			best = res
		}
	}

	if best.Text != "" {
		// Nothing met the per-page heuristic; some text beats none.
		best.Steps = steps
		return best, nil
	}
	return Result{Steps: steps}, &common.ExtractionError{Path: path, Step: "chain", Reason: "all extractors failed or yielded no text"}
}

// adequate applies the near-empty heuristic.
func (c *Chain) adequate(res Result) bool {
	pages := res.Pages
	if pages < 1 {
		pages = 1
	}
	return utf8.RuneCountInString(res.Text) >= c.cfg.MinCharsPerPage*pages
}
