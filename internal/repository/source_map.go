package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daehong-lab/gonggo-pipeline/gen/ent"
	"github.com/daehong-lab/gonggo-pipeline/gen/ent/sourcemap"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/dedup"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

// SourceMapRepository is the provenance ledger. Rows are append-only: a
// record already mapped to one item can never be remapped, and nothing
// here deletes. A write that would break either rule surfaces as a
// ProvenanceViolation, which aborts the batch.
type SourceMapRepository interface {
	Append(ctx context.Context, entries []entity.SourceMapEntry) error
	Priors(ctx context.Context) (dedup.Prior, error)
}

type sourceMapRepo struct {
	client *ent.Client
	pool   *pgxpool.Pool // nil outside Postgres mode
	logger *slog.Logger
}

func NewSourceMapRepository(client *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) SourceMapRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sourceMapRepo{client: client, pool: pool, logger: logger}
}

func (r *sourceMapRepo) Append(ctx context.Context, entries []entity.SourceMapEntry) error {
	for i := range entries {
		e := &entries[i]
		var err error
		if r.pool != nil {
			err = r.appendPgx(ctx, e)
		} else {
			err = r.appendEnt(ctx, e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// appendPgx inserts through the pool so the guard and the insert are one
// round trip: insert-if-absent, then compare the surviving mapping.
func (r *sourceMapRepo) appendPgx(ctx context.Context, e *entity.SourceMapEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO source_map (id, item_id, record_id, platform, crawled_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4)
		 ON CONFLICT (record_id) DO NOTHING`,
		e.ItemID, e.RecordID, string(e.Platform), e.CrawledAt)
	if err != nil {
		r.logger.Error("failed to append source_map row", "record_id", e.RecordID, "error", err)
		return err
	}

	var existing string
	if err := r.pool.QueryRow(ctx,
		`SELECT item_id FROM source_map WHERE record_id = $1`,
		e.RecordID).Scan(&existing); err != nil {
		return err
	}
	if existing != e.ItemID {
		return &common.ProvenanceViolation{ItemID: e.ItemID, RecordID: e.RecordID, Op: "remap record to " + e.ItemID + " from " + existing}
	}
	return nil
}

func (r *sourceMapRepo) appendEnt(ctx context.Context, e *entity.SourceMapEntry) error {
	existing, err := r.client.SourceMap.Query().
		Where(sourcemap.RecordID(e.RecordID)).
		Only(ctx)
	switch {
	case err == nil:
		if existing.ItemID != e.ItemID {
			return &common.ProvenanceViolation{ItemID: e.ItemID, RecordID: e.RecordID, Op: "remap record to " + e.ItemID + " from " + existing.ItemID}
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.SourceMap.Create().
			SetItemID(e.ItemID).
			SetRecordID(e.RecordID).
			SetPlatform(string(e.Platform)).
			SetCrawledAt(e.CrawledAt).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to append source_map row", "record_id", e.RecordID, "error", err)
		}
		return err
	default:
		return err
	}
}

// Priors loads the persisted merge state the engine must respect.
func (r *sourceMapRepo) Priors(ctx context.Context) (dedup.Prior, error) {
	prior := dedup.Prior{
		AssignedItem:  map[string]string{},
		SourceCount:   map[string]int{},
		EarliestCrawl: map[string]time.Time{},
	}
	rows, err := r.client.SourceMap.Query().All(ctx)
	if err != nil {
		return prior, err
	}
	for _, row := range rows {
		prior.AssignedItem[row.RecordID] = row.ItemID
		prior.SourceCount[row.ItemID]++
		if earliest, ok := prior.EarliestCrawl[row.ItemID]; !ok || row.CrawledAt.Before(earliest) {
			prior.EarliestCrawl[row.ItemID] = row.CrawledAt
		}
	}
	return prior, nil
}
