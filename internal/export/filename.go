package export

import (
	"path/filepath"
	"regexp"
	"strings"

	"trameview/internal/domain"
)

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "capture"
	}
	return s
}

// BuildFilename returns the export file name for a source capture path.
// Format: {sanitized source stem}_trames.{ext}
func BuildFilename(source string, format domain.ExportFormat) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	ext, ok := domain.ExportExtensions[format]
	if !ok {
		ext = string(format)
	}
	return SanitizeFilename(stem) + "_trames." + ext
}
