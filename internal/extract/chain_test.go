package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// stubRunner scripts the external tools per command name.
type stubRunner struct {
	pdftotext func(args []string) (string, error)
	tesseract func(args []string) (string, error)
	pdftoppm  func(args []string) error // writes page images itself
	soffice   func(args []string) error // writes the converted pdf itself
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch {
	case strings.Contains(name, "pdftotext"):
		if s.pdftotext == nil {
			return nil, nil, errors.New("pdftotext not scripted")
		}
		out, err := s.pdftotext(args)
		return []byte(out), nil, err
	case strings.Contains(name, "tesseract"):
		if s.tesseract == nil {
			return nil, nil, errors.New("tesseract not scripted")
		}
		out, err := s.tesseract(args)
		return []byte(out), nil, err
	case strings.Contains(name, "pdftoppm"):
		if s.pdftoppm == nil {
			return nil, nil, errors.New("pdftoppm not scripted")
		}
		return nil, nil, s.pdftoppm(args)
	case strings.Contains(name, "soffice"):
		if s.soffice == nil {
			return nil, nil, errors.New("soffice not scripted")
		}
		return nil, nil, s.soffice(args)
	}
	return nil, nil, errors.New("unexpected command: " + name)
}

func testChain(t *testing.T, r Runner) *Chain {
	t.Helper()
	return newChain(Config{MinCharsPerPage: 10, ArtifactCacheDir: t.TempDir()}, r, nil)
}

var longText = strings.Repeat("입주자 모집공고 본문입니다. ", 20)

func TestChainNativePDF(t *testing.T) {
	r := &stubRunner{
		pdftotext: func([]string) (string, error) { return longText, nil },
	}
	res, err := testChain(t, r).Extract(context.Background(), "notice.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != constants.MethodNativeText {
		t.Errorf("method = %q, want native-text", res.Method)
	}
	if res.IsOCR() {
		t.Error("native-text PDF must have is_ocr = false")
	}
	if res.Text == "" {
		t.Error("text must be non-empty")
	}
}

func TestChainScannedPDFFallsToOCR(t *testing.T) {
	r := &stubRunner{
		// Scanned PDF: text layer present but effectively empty.
		pdftotext: func([]string) (string, error) { return "\f\f", nil },
		pdftoppm: func(args []string) error {
			prefix := args[len(args)-1]
			return os.WriteFile(prefix+"-1.png", []byte("png"), 0o644)
		},
		tesseract: func([]string) (string, error) { return longText, nil },
	}
	res, err := testChain(t, r).Extract(context.Background(), "scanned.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsOCR() {
		t.Errorf("method = %q, scanned PDF must end at OCR", res.Method)
	}
	if res.Text == "" {
		t.Error("OCR text must be non-empty")
	}
	if len(res.Steps) < 2 {
		t.Errorf("steps = %+v, want the near-empty native attempt recorded too", res.Steps)
	}
}

func TestChainHWPConverts(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "공고문.hwp")
	if err := os.WriteFile(src, []byte("hwp-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &stubRunner{
		soffice: func(args []string) error {
			outdir := args[len(args)-2]
			return os.WriteFile(filepath.Join(outdir, "공고문.pdf"), []byte("%PDF"), 0o644)
		},
		pdftotext: func([]string) (string, error) { return longText, nil },
	}
	res, err := testChain(t, r).Extract(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != constants.MethodConverted {
		t.Errorf("method = %q, want converted", res.Method)
	}
}

func TestChainFullFailureIsStructured(t *testing.T) {
	boom := errors.New("tool missing")
	r := &stubRunner{
		pdftotext: func([]string) (string, error) { return "", boom },
		pdftoppm:  func([]string) error { return boom },
	}
	res, err := testChain(t, r).Extract(context.Background(), "broken.pdf")

	var xerr *common.ExtractionError
	if !errors.As(err, &xerr) {
		t.Fatalf("want ExtractionError, got %v", err)
	}
	if res.Text != "" || res.Method != constants.MethodNone {
		t.Errorf("failed chain must yield empty result, got %+v", res)
	}
	if len(res.Steps) == 0 {
		t.Error("failed steps must still be recorded for the report")
	}
}

func TestChainUnsupportedExtension(t *testing.T) {
	_, err := testChain(t, &stubRunner{}).Extract(context.Background(), "archive.zip")
	if err == nil {
		t.Fatal("zip must be rejected as unsupported")
	}
}

func TestCleanText(t *testing.T) {
	in := "줄1  끝 \r\n\r\n\r\n\r\n────────\n줄2\t\t탭"
	got := CleanText(in)
	if strings.Contains(got, "\r") || strings.Contains(got, "\t") {
		t.Errorf("CRLF/tabs must be normalized: %q", got)
	}
	if strings.Contains(got, "────") {
		t.Errorf("box noise must be dropped: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank runs must collapse: %q", got)
	}
}
