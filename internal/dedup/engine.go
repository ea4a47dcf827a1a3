package dedup

import (
	"log/slog"
	"sort"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
	"github.com/daehong-lab/gonggo-pipeline/internal/geocode"
	"github.com/daehong-lab/gonggo-pipeline/internal/identity"
)

// Member is one (RawRecord, NormalizedFields, item_id) triple entering
// the merge.
type Member struct {
	Record  entity.RawRecord
	Fields  entity.NormalizedFields
	ItemID  string
	AddrStd string
	Lat     *float64
	Lng     *float64
}

// Cluster is one canonical merge group. Representative is the freshest
// member: field values come from it, identity never does.
type Cluster struct {
	ItemID         string
	Members        []Member
	Representative Member
}

// Reassignment records a near-duplicate absorption. The original
// hash-derived item_id is kept here for audit; it is never applied
// retroactively to rows persisted by a prior run.
type Reassignment struct {
	RecordID string
	FromID   string
	ToID     string
	Score    Score
}

// Prior is the persisted state from earlier runs that constrains this
// one: previously assigned identities are frozen, and existing cluster
// sizes drive the absorption tie-break.
type Prior struct {
	AssignedItem  map[string]string    // record_id -> persisted item_id
	SourceCount   map[string]int       // item_id -> source_map rows
	EarliestCrawl map[string]time.Time // item_id -> earliest contribution
}

// Outcome is everything the writer needs from one merge pass.
type Outcome struct {
	Clusters      []Cluster
	SourceMap     []entity.SourceMapEntry
	Reassignments []Reassignment
	Collisions    []*common.IdentityCollisionError
}

// Engine partitions a run's records into canonical merge groups.
type Engine struct {
	titleThreshold float64
	dateWindowDays int
	logger         *slog.Logger
}

func NewEngine(titleThreshold float64, dateWindowDays int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if titleThreshold <= 0 {
		titleThreshold = 0.90
	}
	if dateWindowDays <= 0 {
		dateWindowDays = 7
	}
	return &Engine{
		titleThreshold: titleThreshold,
		dateWindowDays: dateWindowDays,
		logger:         logger,
	}
}

// Merge groups members by item_id, runs the near-duplicate pass for
// hash-derived buckets, and emits clusters plus one SourceMap row per
// surviving member. Deterministic: same input, same output order.
func (e *Engine) Merge(members []Member, prior Prior) Outcome {
	var out Outcome

	// Identities persisted by earlier runs are frozen (append-only
	// merge policy).
	for i := range members {
		if id, ok := prior.AssignedItem[members[i].Record.RecordID]; ok && id != "" {
			members[i].ItemID = id
		}
	}

	buckets := map[string][]Member{}
	for _, m := range members {
		buckets[m.ItemID] = append(buckets[m.ItemID], m)
	}

	out.Collisions = e.evictCollisions(buckets)
	out.Reassignments = e.absorbNearDuplicates(buckets, prior)

	ids := make([]string, 0, len(buckets))
	for id, ms := range buckets {
		if len(ms) == 0 {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ms := buckets[id]
		sortMembers(ms)
		cluster := Cluster{
			ItemID:         id,
			Members:        ms,
			Representative: freshest(ms),
		}
		out.Clusters = append(out.Clusters, cluster)
		for _, m := range ms {
			out.SourceMap = append(out.SourceMap, entity.SourceMapEntry{
				ItemID:    id,
				RecordID:  m.Record.RecordID,
				Platform:  m.Record.Platform,
				CrawledAt: m.Record.CrawledAt,
			})
		}
	}
	return out
}

// evictCollisions removes records that share a hash-derived item_id with
// an incompatible address. Record-fatal only: the earliest member keeps
// the bucket, later offenders are excluded from auto-merge and reported.
func (e *Engine) evictCollisions(buckets map[string][]Member) []*common.IdentityCollisionError {
	var collisions []*common.IdentityCollisionError

	ids := sortedKeys(buckets)
	for _, id := range ids {
		ms := buckets[id]
		if identity.IsNative(id) || len(ms) < 2 {
			continue
		}
		sortMembers(ms)
		anchor := ms[0]
		kept := ms[:1]
		var evicted []string
		for _, m := range ms[1:] {
			if geocode.SameDistrict(anchor.AddrStd, m.AddrStd) {
				kept = append(kept, m)
				continue
			}
			evicted = append(evicted, m.Record.RecordID)
		}
		if len(evicted) > 0 {
			collisions = append(collisions, &common.IdentityCollisionError{
				ItemID:    id,
				RecordIDs: evicted,
				Reason:    "same composite hash, incompatible addresses",
			})
			e.logger.Error("dedup.identity_collision", "item_id", id, "evicted", evicted)
			buckets[id] = kept
		}
	}
	return collisions
}

// absorbNearDuplicates merges hash-derived buckets into compatible
// clusters on other ids. A bucket anchored by a previously persisted
// assignment never moves.
func (e *Engine) absorbNearDuplicates(buckets map[string][]Member, prior Prior) []Reassignment {
	var reassignments []Reassignment

	ids := sortedKeys(buckets)
	for _, id := range ids {
		ms := buckets[id]
		if identity.IsNative(id) || len(ms) == 0 || e.anchored(ms, prior) {
			continue
		}

		target, score, ok := e.chooseTarget(id, ms, buckets, prior)
		if !ok {
			continue
		}

		for _, m := range ms {
			m.ItemID = target
			buckets[target] = append(buckets[target], m)
			reassignments = append(reassignments, Reassignment{
				RecordID: m.Record.RecordID,
				FromID:   id,
				ToID:     target,
				Score:    score,
			})
			e.logger.Info("dedup.absorbed",
				"record_id", m.Record.RecordID,
				"from", id,
				"to", target,
				"title_sim", score.Title,
				"date_gap_days", score.DateGapDays,
			)
		}
		buckets[id] = nil
	}
	return reassignments
}

// chooseTarget picks the cluster that absorbs bucket id, if any.
// Preference among qualifying targets: largest known cluster (persisted
// source_map rows plus this run's members), then earliest seen, then
// lexicographic id for determinism.
func (e *Engine) chooseTarget(id string, ms []Member, buckets map[string][]Member, prior Prior) (string, Score, bool) {
	probe := freshest(ms)

	type candidate struct {
		id       string
		size     int
		earliest time.Time
		score    Score
	}
	var candidates []candidate

	for _, other := range sortedKeys(buckets) {
		if other == id || len(buckets[other]) == 0 {
			continue
		}
		s := ScorePair(probe, freshest(buckets[other]))
		if !e.nearDuplicate(s) {
			continue
		}
		candidates = append(candidates, candidate{
			id:       other,
			size:     prior.SourceCount[other] + len(buckets[other]),
			earliest: earliestSeen(other, buckets[other], prior),
			score:    s,
		})
	}
	if len(candidates) == 0 {
		return "", Score{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].size != candidates[j].size {
			return candidates[i].size > candidates[j].size
		}
		if !candidates[i].earliest.Equal(candidates[j].earliest) {
			return candidates[i].earliest.Before(candidates[j].earliest)
		}
		return candidates[i].id < candidates[j].id
	})
	return candidates[0].id, candidates[0].score, true
}

func (e *Engine) anchored(ms []Member, prior Prior) bool {
	for _, m := range ms {
		if _, ok := prior.AssignedItem[m.Record.RecordID]; ok {
			return true
		}
	}
	return false
}

func earliestSeen(id string, ms []Member, prior Prior) time.Time {
	earliest, ok := prior.EarliestCrawl[id]
	for _, m := range ms {
		if !ok || m.Record.CrawledAt.Before(earliest) {
			earliest = m.Record.CrawledAt
			ok = true
		}
	}
	return earliest
}

// freshest returns the most recently crawled member: field values follow
// freshness, identity never does.
func freshest(ms []Member) Member {
	best := ms[0]
	for _, m := range ms[1:] {
		if m.Record.CrawledAt.After(best.Record.CrawledAt) {
			best = m
		}
	}
	return best
}

func sortMembers(ms []Member) {
	sort.Slice(ms, func(i, j int) bool {
		if !ms[i].Record.CrawledAt.Equal(ms[j].Record.CrawledAt) {
			return ms[i].Record.CrawledAt.Before(ms[j].Record.CrawledAt)
		}
		return ms[i].Record.RecordID < ms[j].Record.RecordID
	})
}

func sortedKeys(buckets map[string][]Member) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
