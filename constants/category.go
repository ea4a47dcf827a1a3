package constants

import (
	"strings"
)

// Category is the canonical listing category stored on items.
type Category string

const (
	HappyHouse     Category = "HappyHouse"     // 행복주택
	NationalRental Category = "NationalRental" // 국민임대
	PublicRental   Category = "PublicRental"   // 공공임대
	JeonseRental   Category = "JeonseRental"   // 전세임대
	PurchaseRental Category = "PurchaseRental" // 매입임대
	YouthHousing   Category = "YouthHousing"   // 청년주택
	Newlywed       Category = "Newlywed"       // 신혼희망타운
	PublicSale     Category = "PublicSale"     // 공공분양
	Officetel      Category = "Officetel"      // 오피스텔
	Commercial     Category = "Commercial"     // 상가/업무시설
	Other          Category = "Other"
)

var allCategories = []Category{
	HappyHouse,
	NationalRental,
	PublicRental,
	JeonseRental,
	PurchaseRental,
	YouthHousing,
	Newlywed,
	PublicSale,
	Officetel,
	Commercial,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// categoryHints maps substrings seen in titles and platform category
// labels to canonical categories. Korean labels are matched compacted.
var categoryHints = []struct {
	needle string
	cat    Category
}{
	{"행복주택", HappyHouse},
	{"국민임대", NationalRental},
	{"공공임대", PublicRental},
	{"전세임대", JeonseRental},
	{"매입임대", PurchaseRental},
	{"청년주택", YouthHousing},
	{"청년매입", YouthHousing},
	{"역세권청년", YouthHousing},
	{"신혼희망", Newlywed},
	{"신혼부부", Newlywed},
	{"공공분양", PublicSale},
	{"오피스텔", Officetel},
	{"상가", Commercial},
	{"업무시설", Commercial},
}

// Canonicalize maps a platform-reported category label or a title to the
// canonical category. Returns (Other, false) when no hint matches.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	compact := strings.ReplaceAll(normalized, " ", "")
	for _, h := range categoryHints {
		if strings.Contains(compact, h.needle) {
			return h.cat, true
		}
	}

	return Other, false
}
