package service

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const uploadPrefix = "uploads"

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename reduces an original filename to a storage-safe form:
// path separators stripped, spaces and other unsafe characters collapsed
// to a single dash.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeKeyChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "file"
	}
	return base
}

// UploadKey builds the bucket-relative key for an uploaded source file.
// The millisecond timestamp prefix is what keeps concurrent uploads of
// identically named files apart.
func UploadKey(originalName string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s", uploadPrefix, now.UnixMilli(), SanitizeFilename(originalName))
}
