package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// Accepted date shapes: 2025-01-03, 2025.01.03, 2025/1/3, 2025년 1월 3일,
// each optionally with a trailing dot. Ranges are "~"-separated.
var reDate = regexp.MustCompile(`(\d{4})[.\-/년]\s*(\d{1,2})[.\-/월]\s*(\d{1,2})일?\.?`)

// ParseDate normalizes a single date string to a UTC midnight time.
func ParseDate(field, s string) (time.Time, *common.NormalizationError) {
	raw := s
	m := reDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, &common.NormalizationError{Field: field, Reason: "unrecognized date", Raw: raw}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, &common.NormalizationError{
			Field:  field,
			Reason: fmt.Sprintf("out of range: %04d-%02d-%02d", year, month, day),
			Raw:    raw,
		}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date silently rolls over e.g. Feb 30; reject that.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, &common.NormalizationError{Field: field, Reason: "impossible date", Raw: raw}
	}
	return t, nil
}

// ParseDateRange splits a "~"-separated range into start and end. A bare
// single date yields start only. Either side may fail independently.
func ParseDateRange(field, s string) (start, end *time.Time, errs []*common.NormalizationError) {
	parts := strings.SplitN(s, "~", 2)

	if t, nerr := ParseDate(field+"_start", parts[0]); nerr != nil {
		errs = append(errs, nerr)
	} else {
		start = &t
	}

	if len(parts) == 2 {
		if t, nerr := ParseDate(field+"_end", parts[1]); nerr != nil {
			errs = append(errs, nerr)
		} else {
			end = &t
		}
	}
	return start, end, errs
}
