package constants

// Platform is the canonical code for a crawled listing source.
type Platform string

// Stable values (store these exact strings in DB and in item_id prefixes).
const (
	PlatformLH        Platform = "lh"        // LH 청약센터
	PlatformSH        Platform = "sh"        // SH 서울주택도시공사
	PlatformGH        Platform = "gh"        // GH 경기주택도시공사
	PlatformApplyHome Platform = "applyhome" // 청약홈
	PlatformMyHome    Platform = "myhome"    // 마이홈포털
	PlatformRTMS      Platform = "rtms"      // 국토부 실거래가
	PlatformLandPrice Platform = "landprice" // 공시지가
)

// KnownPlatforms lists every platform the reader accepts.
var KnownPlatforms = map[Platform]struct{}{
	PlatformLH:        {},
	PlatformSH:        {},
	PlatformGH:        {},
	PlatformApplyHome: {},
	PlatformMyHome:    {},
	PlatformRTMS:      {},
	PlatformLandPrice: {},
}

// PlatformCodes lists the stable codes for schema-level validation.
var PlatformCodes = []string{
	string(PlatformLH),
	string(PlatformSH),
	string(PlatformGH),
	string(PlatformApplyHome),
	string(PlatformMyHome),
	string(PlatformRTMS),
	string(PlatformLandPrice),
}

// IsKnownPlatform reports whether code is a platform this pipeline understands.
func IsKnownPlatform(code string) bool {
	_, ok := KnownPlatforms[Platform(code)]
	return ok
}
