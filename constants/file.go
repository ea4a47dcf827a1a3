package constants

import "strings"

// FileFormat buckets attachment extensions by the extraction strategy
// that handles them.
type FileFormat string

const (
	PDF    FileFormat = "PDF"    // native text layer, OCR fallback
	HWP    FileFormat = "HWP"    // convert to PDF first
	OFFICE FileFormat = "OFFICE" // docx/xlsx/pptx and legacy doc/xls/ppt
	IMAGE  FileFormat = "IMAGE"  // straight to OCR
	TXT    FileFormat = "TXT"    // read as-is
)

// AllowedExtensions holds the attachment extensions the extractor accepts.
// Keys are lowercased without the leading dot.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"hwp":  {},
	"hwpx": {},
	"doc":  {},
	"docx": {},
	"xls":  {},
	"xlsx": {},
	"ppt":  {},
	"pptx": {},
	"txt":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	// Archives are registered like any attachment; no extractor opens
	// them, so they end up text-less with a report entry.
	"zip": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the extraction bucket for an extension, or ""
// for unsupported extensions.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "hwp", "hwpx":
		return HWP
	case "doc", "docx", "xls", "xlsx", "ppt", "pptx":
		return OFFICE
	case "jpg", "jpeg", "png":
		return IMAGE
	case "txt":
		return TXT
	default:
		return ""
	}
}

// AllowedExt reports whether ext (normalized) is ingestible.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
