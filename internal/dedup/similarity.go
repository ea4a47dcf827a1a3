package dedup

import (
	"math"

	"github.com/agext/levenshtein"

	"github.com/daehong-lab/gonggo-pipeline/internal/geocode"
	"github.com/daehong-lab/gonggo-pipeline/internal/normalize"
)

// Score holds the components of the near-duplicate decision for one pair.
// Computing it has no side effects, which keeps every merge auditable:
// log the score, and the decision is reproducible.
type Score struct {
	Title        float64
	SameDistrict bool
	DateGapDays  float64
}

// ScorePair scores two members. Titles are compared on their key form
// (whitespace/punctuation variance stripped); the date gap prefers the
// announced apply_start dates and falls back to crawl timestamps.
func ScorePair(a, b Member) Score {
	return Score{
		Title:        levenshtein.Similarity(normalize.KeyTitle(a.Fields.Title), normalize.KeyTitle(b.Fields.Title), nil),
		SameDistrict: geocode.SameDistrict(a.AddrStd, b.AddrStd),
		DateGapDays:  dateGapDays(a, b),
	}
}

func dateGapDays(a, b Member) float64 {
	ta, tb := a.Record.CrawledAt, b.Record.CrawledAt
	if a.Fields.ApplyStart != nil && b.Fields.ApplyStart != nil {
		ta, tb = *a.Fields.ApplyStart, *b.Fields.ApplyStart
	}
	return math.Abs(ta.Sub(tb).Hours()) / 24
}

// nearDuplicate applies the configured thresholds to a pair score.
func (e *Engine) nearDuplicate(s Score) bool {
	return s.Title >= e.titleThreshold &&
		s.SameDistrict &&
		s.DateGapDays <= float64(e.dateWindowDays)
}
