package rawio

import (
	"os"
	"regexp"
	"strings"
)

// Crawlers snapshot each listing's detail page under html/. When a
// manifest row ships no address the snapshot usually still carries one,
// so the reader falls back to the first plausible Korean address line.
var (
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	htmlAddrPattern = regexp.MustCompile(`(서울특별시|서울시|서울|부산|대구|인천|광주|대전|울산|세종|경기도|경기|강원|충북|충남|전북|전남|경북|경남|제주)[^<>\n,"']{4,80}`)
)

func addressFromHTML(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	text := htmlTagPattern.ReplaceAllString(string(b), "\n")
	return strings.TrimSpace(htmlAddrPattern.FindString(text))
}
