package constants

import "strings"

// AllowedExtensions holds the default screenshot extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"webp": {},
}

// MaxImageMB caps the size of a screenshot attached to a vision call.
const MaxImageMB = 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
