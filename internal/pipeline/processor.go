package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/async"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/dedup"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
	"github.com/daehong-lab/gonggo-pipeline/internal/geocode"
	"github.com/daehong-lab/gonggo-pipeline/internal/identity"
	"github.com/daehong-lab/gonggo-pipeline/internal/normalize"
	"github.com/daehong-lab/gonggo-pipeline/internal/rawio"
	"github.com/daehong-lab/gonggo-pipeline/internal/repository"
)

// AddressResolver is the geocoding surface the processor needs;
// *geocode.Resolver satisfies it, tests stub it.
type AddressResolver interface {
	Resolve(ctx context.Context, rawAddress string) (geocode.Resolution, error)
}

// Processor coordinates one batch run: read RAW, normalize, geocode,
// assign identity, merge, extract attachment text, upsert, emit the
// PARSED tree. A record failure degrades that record; only a
// ProvenanceViolation fails the run.
type Processor struct {
	cfg        *common.Config
	logger     *slog.Logger
	reader     *rawio.Reader
	normalizer *normalize.Normalizer
	resolver   AddressResolver
	chain      async.TextExtractor
	engine     *dedup.Engine
	items      repository.ItemRepository
	artifacts  repository.ArtifactRepository
	sources    repository.SourceMapRepository
}

func NewProcessor(
	cfg *common.Config,
	logger *slog.Logger,
	reader *rawio.Reader,
	normalizer *normalize.Normalizer,
	resolver AddressResolver,
	chain async.TextExtractor,
	engine *dedup.Engine,
	items repository.ItemRepository,
	artifacts repository.ArtifactRepository,
	sources repository.SourceMapRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:        cfg,
		logger:     logger,
		reader:     reader,
		normalizer: normalizer,
		resolver:   resolver,
		chain:      chain,
		engine:     engine,
		items:      items,
		artifacts:  artifacts,
		sources:    sources,
	}
}

// Run executes the batch for one crawl date. The returned report is
// always usable, also when err is non-nil.
func (p *Processor) Run(ctx context.Context, date string) (*Report, error) {
	report := NewReport(date)
	start := time.Now()

	if p.cfg.Batch.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Batch.BatchTimeout)
		defer cancel()
	}

	writer, err := NewParsedWriter(p.cfg.Batch.OutRoot, date, p.logger)
	if err != nil {
		return report, err
	}

	records, rowErrs, stats, err := p.reader.ReadDate(p.cfg.Batch.RawRoot, date)
	if err != nil {
		return report, err
	}
	report.ReadOutcome(stats, rowErrs)
	p.logger.Info("batch.read", "date", date, "platforms", stats.Platforms, "records", len(records), "rejected", stats.Failed)

	members := p.prepareMembers(ctx, records, report)

	prior, err := p.sources.Priors(ctx)
	if err != nil {
		return report, err
	}
	outcome := p.engine.Merge(members, prior)
	report.MergeOutcome(outcome)

	items := p.upsertClusters(ctx, outcome.Clusters, prior, report)
	p.extractAttachments(ctx, outcome.Clusters, writer, report)

	// Provenance last: every surviving record maps to its final item.
	if err := p.sources.Append(ctx, outcome.SourceMap); err != nil {
		var pv *common.ProvenanceViolation
		if errors.As(err, &pv) {
			report.SetProvenanceViolation(pv)
			report.Finish()
			_ = writer.WriteReport(report)
			return report, pv
		}
		return report, err
	}

	if err := writer.WriteItems(items); err != nil {
		return report, err
	}
	if err := writer.WriteIDMap(outcome.SourceMap); err != nil {
		return report, err
	}
	report.Finish()
	if err := writer.WriteReport(report); err != nil {
		return report, err
	}

	p.logger.Info("batch.done",
		"date", date,
		"items", len(items),
		"clusters", report.Counts.MergedClusters,
		"elapsed", time.Since(start).String(),
	)
	return report, nil
}

// prepareMembers runs the pure per-record stages in parallel:
// normalization, geocoding (cached) and identity assignment.
func (p *Processor) prepareMembers(ctx context.Context, records []entity.RawRecord, report *Report) []dedup.Member {
	members := make([]dedup.Member, len(records))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Batch.Workers)
	for i := range records {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			rec := records[i]
			fields, nerrs := p.normalizer.Normalize(rec)
			if len(nerrs) == 0 {
				report.ParsedOK()
			} else {
				report.NormalizationFailed(rec.RecordID, nerrs)
			}

			res, gerr := p.resolver.Resolve(ctx, rec.Address)
			if gerr != nil {
				report.GeocodeFailed(rec.RecordID, gerr)
			} else if res.Degraded {
				report.GeocodeDegraded()
			}
			addrStd := res.AddrStd
			if addrStd == "" {
				addrStd = geocode.NormalizeAddress(rec.Address)
			}

			members[i] = dedup.Member{
				Record:  rec,
				Fields:  fields,
				ItemID:  identity.Resolve(rec, fields, addrStd),
				AddrStd: addrStd,
				Lat:     res.Lat,
				Lng:     res.Lng,
			}
		}(i)
	}
	wg.Wait()
	return members
}

// upsertClusters writes canonical items plus the per-member units,
// images and raw tables. Clusters are independent, so they run in
// parallel; everything within one item_id stays on one goroutine.
func (p *Processor) upsertClusters(ctx context.Context, clusters []dedup.Cluster, prior dedup.Prior, report *Report) []entity.CanonicalItem {
	items := make([]entity.CanonicalItem, len(clusters))

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Batch.Workers)
	for i := range clusters {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			c := clusters[i]
			item := buildItem(c, prior)
			items[i] = item

			if err := p.items.Upsert(ctx, &item); err != nil {
				report.UpsertFailed(item.ItemID, err)
				return
			}
			report.ItemUpserted()
			p.upsertClusterArtifacts(ctx, c, report)
		}(i)
	}
	wg.Wait()
	return items
}

func (p *Processor) upsertClusterArtifacts(ctx context.Context, c dedup.Cluster, report *Report) {
	for _, m := range c.Members {
		for _, imgPath := range m.Record.ImagePaths {
			img := entity.Image{
				ID:       entity.StableID("image", c.ItemID, imgPath),
				ItemID:   c.ItemID,
				RecordID: m.Record.RecordID,
				Path:     imgPath,
				Role:     guessImageRole(imgPath),
			}
			if err := p.artifacts.UpsertImage(ctx, &img); err != nil {
				report.UpsertFailed(c.ItemID, err)
			}
		}

		for _, tblPath := range m.Record.TablePaths {
			format := rawio.TableFormat(tblPath)
			if format == "" {
				continue
			}
			tbl := entity.TableRaw{
				ID:       entity.StableID("table", c.ItemID, tblPath),
				ItemID:   c.ItemID,
				RecordID: m.Record.RecordID,
				Path:     tblPath,
				Format:   format,
			}
			if err := p.artifacts.UpsertTable(ctx, &tbl); err != nil {
				report.UpsertFailed(c.ItemID, err)
				continue
			}
			units, err := rawio.UnitTable(tblPath, c.ItemID)
			if err != nil {
				p.logger.Warn("unit table unreadable", "path", tblPath, "error", err)
				continue
			}
			if len(units) == 0 {
				continue
			}
			if err := p.artifacts.UpsertUnits(ctx, units); err != nil {
				report.UpsertFailed(c.ItemID, err)
				continue
			}
			report.UnitsUpserted(len(units))
		}
	}
}

// extractAttachments fans every surviving member's attachments through
// the worker pool, stores the text files, and registers attachment rows.
func (p *Processor) extractAttachments(ctx context.Context, clusters []dedup.Cluster, writer *ParsedWriter, report *Report) {
	pool := async.NewExtractPool(p.chain, p.logger,
		async.WithWorkers(p.cfg.Batch.Workers),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range pool.Results() {
			p.registerAttachment(ctx, res, writer, report)
		}
	}()

	for _, c := range clusters {
		for _, m := range c.Members {
			for _, path := range m.Record.AttachmentPaths {
				report.AttachmentSeen()
				_ = pool.Enqueue(ctx, async.Job{
					RecordID:    m.Record.RecordID,
					ItemID:      c.ItemID,
					Path:        path,
					SubmittedAt: time.Now(),
				})
			}
		}
	}
	pool.Shutdown(ctx)
	<-done
}

func (p *Processor) registerAttachment(ctx context.Context, res async.Result, writer *ParsedWriter, report *Report) {
	job := res.Job

	hash, err := hashFile(job.Path)
	if err != nil {
		report.ExtractionFailed(job.RecordID, job.Path, err)
		return
	}

	att := entity.Attachment{
		ID:          entity.StableID("attachment", job.ItemID, hex.EncodeToString(hash)),
		ItemID:      job.ItemID,
		RecordID:    job.RecordID,
		SourcePath:  job.Path,
		FileExt:     constants.NormalizeExt(filepath.Ext(job.Path)),
		ContentHash: hash,
		Role:        constants.RoleDocument,
	}

	switch {
	case res.Err != nil:
		// Full-chain failure: register the attachment text-less.
		report.ExtractionFailed(job.RecordID, job.Path, res.Err)
	default:
		rel, werr := writer.WriteAttachmentText(att.ID.String(), res.Res.Text)
		if werr != nil {
			report.ExtractionFailed(job.RecordID, job.Path, werr)
			break
		}
		att.TextPath = &rel
		att.IsOCR = res.Res.IsOCR()
		if att.IsOCR {
			report.OCRFallback()
		}
	}

	if err := p.artifacts.UpsertAttachment(ctx, &att); err != nil {
		report.UpsertFailed(job.ItemID, err)
	}
}

// buildItem projects a cluster onto the canonical item. Field values
// come from the freshest member; first_seen respects earlier runs.
func buildItem(c dedup.Cluster, prior dedup.Prior) entity.CanonicalItem {
	rep := c.Representative

	firstSeen := c.Members[0].Record.CrawledAt
	for _, m := range c.Members {
		if m.Record.CrawledAt.Before(firstSeen) {
			firstSeen = m.Record.CrawledAt
		}
	}
	if t, ok := prior.EarliestCrawl[c.ItemID]; ok && t.Before(firstSeen) {
		firstSeen = t
	}

	return entity.CanonicalItem{
		ItemID:       c.ItemID,
		Platform:     rep.Record.Platform,
		Title:        rep.Fields.Title,
		AddrRaw:      rep.Record.Address,
		AddrStd:      rep.AddrStd,
		Lat:          rep.Lat,
		Lng:          rep.Lng,
		Category:     rep.Fields.Category,
		Status:       rep.Record.Extras.NoticeStatus,
		DepositKRW:   rep.Fields.DepositKRW,
		RentKRW:      rep.Fields.RentKRW,
		AreaM2:       rep.Fields.AreaM2,
		ApplyStart:   rep.Fields.ApplyStart,
		ApplyEnd:     rep.Fields.ApplyEnd,
		ListURL:      rep.Record.ListURL,
		DetailURL:    rep.Record.DetailURL,
		RawLeftovers: rep.Fields.RawLeftovers,
		FirstSeenAt:  firstSeen,
		LastSeenAt:   rep.Record.CrawledAt,
	}
}

func guessImageRole(path string) constants.ArtifactRole {
	base := strings.ToLower(filepath.Base(path))
	for _, hint := range []string{"평면", "도면", "floorplan", "plan"} {
		if strings.Contains(base, hint) {
			return constants.RoleFloorplan
		}
	}
	return constants.RolePhoto
}

func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
