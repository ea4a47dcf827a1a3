package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// PyeongToM2 is the legal conversion factor for 평.
const PyeongToM2 = 3.3058

var reArea = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*(㎡|m²|m2|평)`)

// ParseArea converts an area string to m². The unit of origin is returned
// alongside the converted value for audit.
func ParseArea(field, s string) (valueM2 float64, unit string, nerr *common.NormalizationError) {
	raw := s
	m := reArea.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, "", &common.NormalizationError{Field: field, Reason: "unrecognized area", Raw: raw}
	}
	num := strings.ReplaceAll(m[1], ",", "")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", &common.NormalizationError{Field: field, Reason: "bad number: " + num, Raw: raw}
	}
	switch m[2] {
	case "평":
		return v * PyeongToM2, "평", nil
	default:
		return v, "㎡", nil
	}
}
