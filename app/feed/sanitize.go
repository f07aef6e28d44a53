package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var stripPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from feed-supplied text, decodes any HTML
// entities, normalizes to NFC and caps the length so oversized show notes do
// not bloat the database.
func sanitizeText(s string) string {
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = norm.NFC.String(s)
	s = strings.TrimSpace(s)
	if len(s) > 2048 {
		// Drop any partial rune left at the cut point.
		s = strings.ToValidUTF8(s[:2048], "")
	}

	return s
}
