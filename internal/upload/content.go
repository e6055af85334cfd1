package upload

import (
	"bytes"
	"unicode/utf8"
)

// PlaceholderContent stands in for files that cannot be read as text.
const PlaceholderContent = "Sample content"

// ExtractText returns data as document text when it is non-empty UTF-8.
// Anything else (empty files, images, PDFs, UTF-16 text) gets PlaceholderContent.
// NUL bytes count as binary: JSONB snapshots cannot hold \u0000.
func ExtractText(data []byte) string {
	if len(data) == 0 || !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return PlaceholderContent
	}
	return string(data)
}
