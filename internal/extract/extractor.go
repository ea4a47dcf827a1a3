// Package extract converts listing attachments (PDF, HWP, Office
// formats, scans) to plain text through an ordered tool fallback chain.
package extract

import (
	"context"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
)

// Result is one extraction outcome.
type Result struct {
	Text   string
	Pages  int
	Method constants.ExtractionMethod
	Steps  []StepOutcome
}

// IsOCR reports whether the text came from the OCR fallback.
func (r Result) IsOCR() bool { return r.Method == constants.MethodOCR }

// StepOutcome records one chain step for the quality report.
type StepOutcome struct {
	Step    string
	OK      bool
	Elapsed time.Duration
	Detail  string
}

// Extractor is one step of the fallback chain. Adding a format or tool
// means adding an implementation, not branching existing code.
type Extractor interface {
	Name() string
	Supports(format constants.FileFormat) bool
	Extract(ctx context.Context, path string) (Result, error)
}

// Config carries tool locations and heuristics for the built-in chain.
type Config struct {
	Pdftotext string // binary name or absolute path; empty -> "pdftotext"
	Pdftoppm  string // empty -> "pdftoppm"
	Tesseract string // empty -> "tesseract"
	Soffice   string // empty -> "soffice"

	TesseractLang string // default "kor+eng"
	DPI           int    // rasterization DPI for scanned pages, default 300
	MaxPages      int    // 0 = no limit

	// MinCharsPerPage is the near-empty heuristic: a step yielding fewer
	// extracted characters per page falls through to the next step.
	MinCharsPerPage int

	ArtifactCacheDir string
}

func (c Config) withDefaults() Config {
	if c.Pdftotext == "" {
		c.Pdftotext = "pdftotext"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.Soffice == "" {
		c.Soffice = "soffice"
	}
	if c.TesseractLang == "" {
		c.TesseractLang = "kor+eng"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.MinCharsPerPage <= 0 {
		c.MinCharsPerPage = 64
	}
	if c.ArtifactCacheDir == "" {
		c.ArtifactCacheDir = "./tmp"
	}
	return c
}
