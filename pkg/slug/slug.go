// Package slug derives URL-safe identifiers from product and blog titles.
package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Make converts a title into a lowercase, hyphen-separated slug:
// "Premium E-Book Bundle!" → "premium-e-book-bundle".
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// WithTimestamp disambiguates a colliding slug by suffixing the current
// Unix timestamp: "premium-e-book-bundle-1700000000".
func WithTimestamp(s string) string {
	return fmt.Sprintf("%s-%d", s, time.Now().Unix())
}
