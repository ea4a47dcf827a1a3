package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daehong-lab/gonggo-pipeline/gen/ent"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/dedup"
	"github.com/daehong-lab/gonggo-pipeline/internal/export"
	"github.com/daehong-lab/gonggo-pipeline/internal/extract"
	"github.com/daehong-lab/gonggo-pipeline/internal/geocode"
	"github.com/daehong-lab/gonggo-pipeline/internal/normalize"
	"github.com/daehong-lab/gonggo-pipeline/internal/pipeline"
	"github.com/daehong-lab/gonggo-pipeline/internal/rawio"
	repo "github.com/daehong-lab/gonggo-pipeline/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		date    = flag.String("date", "", "crawl date YYYY-MM-DD (required)")
		rawRoot = flag.String("raw-root", "", "RAW tree root (overrides RAW_ROOT)")
		outRoot = flag.String("out-root", "", "PARSED tree root (overrides OUT_ROOT)")
		workers = flag.Int("workers", 0, "extraction pool size (overrides EXTRACT_WORKERS)")
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database")
		xlsx    = flag.Bool("xlsx", false, "also write report.xlsx next to report.json")
	)
	flag.Parse()

	if *date == "" {
		printError("Error: --date is required\n")
		os.Exit(1)
	}
	if _, err := time.Parse("2006-01-02", *date); err != nil {
		printError("Error: invalid --date, use YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig(logger)
	if *rawRoot != "" {
		cfg.Batch.RawRoot = *rawRoot
	}
	if *outRoot != "" {
		cfg.Batch.OutRoot = *outRoot
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Open the sink: Postgres by default, in-memory SQLite for local runs.
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repo.OpenInMem(ctx, logger)
	} else {
		if cfg.Database.DSN == "" {
			logger.Error("DB_URL is required unless --inmem is set")
			os.Exit(1)
		}
		entc, pool, err = repo.Open(ctx, cfg.Database, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)
	if pool != nil {
		if err := repo.HealthCheck(ctx, pool); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
	}

	reader, err := rawio.NewReader(logger)
	if err != nil {
		logger.Error("failed to build manifest reader", "error", err)
		os.Exit(1)
	}

	resolver := geocode.NewResolver(
		geocode.NewHTTPClient(cfg.Geocode.BaseURL, cfg.Geocode.APIKey, cfg.Geocode.Timeout, logger),
		geocode.NewCache(),
		cfg.Geocode.MaxAttempts,
		cfg.Geocode.BackoffBase,
		logger,
	)

	chain := extract.NewChain(extract.Config{
		Pdftotext:        cfg.Extract.Pdftotext,
		Pdftoppm:         cfg.Extract.Pdftoppm,
		Tesseract:        cfg.Extract.Tesseract,
		Soffice:          cfg.Extract.Soffice,
		TesseractLang:    cfg.Extract.TesseractLang,
		DPI:              cfg.Extract.DPI,
		MaxPages:         cfg.Extract.MaxPages,
		MinCharsPerPage:  cfg.Extract.MinCharsPerPage,
		ArtifactCacheDir: cfg.Extract.ArtifactCacheDir,
	}, logger)

	itemsRepo := repo.NewItemRepository(entc, logger)
	artifactsRepo := repo.NewArtifactRepository(entc, logger)
	sourcesRepo := repo.NewSourceMapRepository(entc, pool, logger)

	processor := pipeline.NewProcessor(
		cfg, logger, reader,
		normalize.NewNormalizer(logger),
		resolver,
		chain,
		dedup.NewEngine(cfg.Dedup.TitleThreshold, cfg.Dedup.DateWindowDays, logger),
		itemsRepo, artifactsRepo, sourcesRepo,
	)

	report, err := processor.Run(ctx, *date)
	if err != nil {
		var pv *common.ProvenanceViolation
		if errors.As(err, &pv) {
			logger.Error("provenance violation, aborting", "error", pv)
			os.Exit(2)
		}
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	if *xlsx {
		svc := export.NewService(itemsRepo, logger)
		book, err := svc.BuildBatchWorkbook(ctx, *date, summaryRows(report))
		if err != nil {
			logger.Error("failed to build workbook", "error", err)
		} else if err := os.WriteFile(
			filepath.Join(cfg.Batch.OutRoot, *date, "report.xlsx"), book, 0o644); err != nil {
			logger.Error("failed to write workbook", "error", err)
		}
	}

	fmt.Printf("Batch complete for %s\n", *date)
	fmt.Printf("- Records read: %d (rejected: %d)\n", report.Counts.RecordsRead, report.Counts.RowsRejected)
	fmt.Printf("- Items: %d across %d clusters\n", report.Counts.ItemsUpserted, report.Counts.MergedClusters)
	fmt.Printf("- Near-duplicates merged: %d\n", report.Counts.NearDuplicatesMerged)
	fmt.Printf("- OCR fallbacks: %d, extraction failures: %d\n", report.Counts.OCRFallbackUsed, report.Counts.ExtractionFailed)
}

func summaryRows(r *pipeline.Report) [][]string {
	c := r.Counts
	u := func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
	return [][]string{
		{"Records read", u(c.RecordsRead)},
		{"Rows rejected", u(c.RowsRejected)},
		{"Parsed OK", u(c.ParsedOK)},
		{"Normalization failed", u(c.NormalizationFailed)},
		{"Geocode failed", u(c.GeocodeFailed)},
		{"Geocode degraded", u(c.GeocodeDegraded)},
		{"Attachments seen", u(c.AttachmentsSeen)},
		{"Extraction failed", u(c.ExtractionFailed)},
		{"OCR fallback used", u(c.OCRFallbackUsed)},
		{"Merged clusters", u(c.MergedClusters)},
		{"Near-duplicates merged", u(c.NearDuplicatesMerged)},
		{"Identity collisions", u(c.IdentityCollisions)},
		{"Items upserted", u(c.ItemsUpserted)},
		{"Units upserted", u(c.UnitsUpserted)},
	}
}
