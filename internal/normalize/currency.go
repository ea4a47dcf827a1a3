package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// Korean amount strings mix positional digits with unit characters:
// "1천5백만원" = (1*1000 + 5*100) * 10,000. Section units (억, 만) close a
// group; sub-units (천, 백, 십) scale the digit run before them.

var reAmountToken = regexp.MustCompile(`\d+(?:\.\d+)?|억|만|천|백|십`)

const (
	unitEok   = 100_000_000
	unitMan   = 10_000
	unitCheon = 1_000
	unitBaek  = 100
	unitSip   = 10
)

// ParseKRW converts a Korean currency string to 원. Returns a
// NormalizationError on failure; the caller keeps the raw string.
func ParseKRW(field, s string) (int64, *common.NormalizationError) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(s, "원")
	if s == "" {
		return 0, &common.NormalizationError{Field: field, Reason: "empty amount", Raw: raw}
	}

	tokens := reAmountToken.FindAllString(s, -1)
	if strings.Join(tokens, "") != s {
		return 0, &common.NormalizationError{Field: field, Reason: "unrecognized amount", Raw: raw}
	}

	var total, group, pending float64
	havePending := false
	take := func(def float64) float64 {
		if havePending {
			havePending = false
			v := pending
			pending = 0
			return v
		}
		return def
	}

	for _, tok := range tokens {
		switch tok {
		case "억":
			base := group + take(0)
			if base == 0 {
				base = 1
			}
			total += base * unitEok
			group = 0
		case "만":
			base := group + take(0)
			if base == 0 {
				base = 1
			}
			total += base * unitMan
			group = 0
		case "천":
			group += take(1) * unitCheon
		case "백":
			group += take(1) * unitBaek
		case "십":
			group += take(1) * unitSip
		default:
			n, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, &common.NormalizationError{Field: field, Reason: "bad number: " + tok, Raw: raw}
			}
			if havePending {
				group += pending
			}
			pending = n
			havePending = true
		}
	}
	total += group + take(0)

	if total < 0 {
		return 0, &common.NormalizationError{Field: field, Reason: "negative amount", Raw: raw}
	}
	return int64(total + 0.5), nil
}
