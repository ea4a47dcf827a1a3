package geocode

import (
	"regexp"
	"strings"
)

var (
	reAddrSpace  = regexp.MustCompile(`\s+`)
	reAddrParen  = regexp.MustCompile(`\([^)]*\)`)
	cityLongForm = strings.NewReplacer(
		"서울시", "서울특별시",
		"부산시", "부산광역시",
		"대구시", "대구광역시",
		"인천시", "인천광역시",
		"광주시", "광주광역시",
		"대전시", "대전광역시",
		"울산시", "울산광역시",
		"세종시", "세종특별자치시",
	)
)

// NormalizeAddress canonicalizes a free-text address for use as the
// geocode cache key and the hash-id input: parenthesized annotations
// dropped, city short forms expanded, whitespace collapsed.
func NormalizeAddress(s string) string {
	s = reAddrParen.ReplaceAllString(s, " ")
	s = cityLongForm.Replace(s)
	s = reAddrSpace.ReplaceAllString(strings.TrimSpace(s), " ")
	return s
}

// SameDistrict reports whether two normalized addresses agree on their
// leading administrative tokens (시/도, 시군구, and 읍면동 when both
// carry one). This is the "address match" predicate of the
// near-duplicate pass; it deliberately ignores lot numbers.
func SameDistrict(a, b string) bool {
	ta := strings.Fields(NormalizeAddress(a))
	tb := strings.Fields(NormalizeAddress(b))
	n := 3
	if len(ta) < n || len(tb) < n {
		n = min(len(ta), len(tb))
	}
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}
