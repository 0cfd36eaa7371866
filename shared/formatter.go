package shared

import (
	"fmt"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"net/url"
	"strings"
	"unicode"
)

const MaxExcerptLen = 256

func GetHostName(accountUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(accountUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse account URL '%s': %v", accountUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

// SanitizeNote removes everything from an account's bio HTML that we don't
// want to keep around in the DB: scripts, event handlers, trackers.
func SanitizeNote(htm string) string {
	p := bluemonday.UGCPolicy()
	return p.Sanitize(htm)
}

// StripHtml reduces an HTML fragment to its plain text.
func StripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
