package normalize

import (
	"log/slog"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

// Manifest extras keys the normalizer understands. Crawlers agree on
// these names regardless of platform.
const (
	extrasDeposit     = "deposit"
	extrasRent        = "rent"
	extrasArea        = "area"
	extrasApplyPeriod = "apply_period"
	extrasApplyStart  = "apply_start"
	extrasApplyEnd    = "apply_end"
)

// Normalizer projects RawRecords onto the common schema. Pure: no I/O,
// deterministic and total. Every failure degrades a single field and is
// returned for the quality report instead of aborting the record.
type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize computes NormalizedFields for one record. The returned slice
// holds the field-level failures (possibly empty); the fields value is
// always usable.
func (n *Normalizer) Normalize(rec entity.RawRecord) (entity.NormalizedFields, []*common.NormalizationError) {
	var errs []*common.NormalizationError
	out := entity.NormalizedFields{
		Title:        CleanTitle(rec.Title),
		AddressRaw:   rec.Address,
		RawLeftovers: map[string]string{},
	}

	keep := func(field, raw string, nerr *common.NormalizationError) {
		errs = append(errs, nerr)
		out.RawLeftovers[field] = raw
	}

	if raw, ok := rec.Extras.Rest[extrasDeposit]; ok && raw != "" {
		if v, nerr := ParseKRW("deposit", raw); nerr != nil {
			keep("deposit", raw, nerr)
		} else {
			out.DepositKRW = &v
		}
		out.DepositRaw = raw
	}

	if raw, ok := rec.Extras.Rest[extrasRent]; ok && raw != "" {
		if v, nerr := ParseKRW("rent", raw); nerr != nil {
			keep("rent", raw, nerr)
		} else {
			out.RentKRW = &v
		}
		out.RentRaw = raw
	}

	if raw, ok := rec.Extras.Rest[extrasArea]; ok && raw != "" {
		if v, unit, nerr := ParseArea("area", raw); nerr != nil {
			keep("area", raw, nerr)
		} else {
			out.AreaM2 = &v
			out.AreaUnit = unit
		}
		out.AreaRaw = raw
	}

	n.normalizeDates(rec, &out, &errs)

	if cat, ok := constants.Canonicalize(rec.Extras.CategoryLabel); ok {
		out.Category = cat
	} else if cat, ok := constants.Canonicalize(rec.Title); ok {
		out.Category = cat
	} else {
		out.Category = constants.Other
	}

	if len(out.RawLeftovers) == 0 {
		out.RawLeftovers = nil
	}
	return out, errs
}

func (n *Normalizer) normalizeDates(rec entity.RawRecord, out *entity.NormalizedFields, errs *[]*common.NormalizationError) {
	rest := rec.Extras.Rest

	if raw, ok := rest[extrasApplyPeriod]; ok && raw != "" {
		start, end, rangeErrs := ParseDateRange("apply_period", raw)
		out.ApplyStart = start
		out.ApplyEnd = end
		for _, nerr := range rangeErrs {
			*errs = append(*errs, nerr)
			if out.RawLeftovers == nil {
				out.RawLeftovers = map[string]string{}
			}
			out.RawLeftovers[nerr.Field] = raw
		}
		return
	}

	if raw, ok := rest[extrasApplyStart]; ok && raw != "" {
		if t, nerr := ParseDate("apply_start", raw); nerr != nil {
			*errs = append(*errs, nerr)
			out.RawLeftovers["apply_start"] = raw
		} else {
			out.ApplyStart = &t
		}
	}
	if raw, ok := rest[extrasApplyEnd]; ok && raw != "" {
		if t, nerr := ParseDate("apply_end", raw); nerr != nil {
			*errs = append(*errs, nerr)
			out.RawLeftovers["apply_end"] = raw
		} else {
			out.ApplyEnd = &t
		}
	}
}
