package svp

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// Candidate title keys, in priority order.
var titleKeys = []string{"name", "projectName", "title"}

// projectTitle looks for a display title in the largest raw payload by rune
// count. The largest payload is not necessarily the authoritative one, so
// this is a separate tolerant lookup; any failure falls back to the file's
// base name.
func projectTitle(blobs []string, path string, logger *slog.Logger) string {
	largest := ""
	largestLen := 0
	for _, b := range blobs {
		if n := utf8.RuneCountInString(b); n > largestLen {
			largest = b
			largestLen = n
		}
	}

	if gjson.Valid(largest) {
		for _, key := range titleKeys {
			if v := gjson.Get(largest, key); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
	}

	logger.Debug("no title found in payloads, falling back to file name", "path", path)
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
