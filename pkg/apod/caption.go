package apod

import (
	"regexp"
	"strings"
)

const (
	// CaptionStart opens the caption block; its line is part of the caption
	CaptionStart = "Explanation:"
	// CaptionEnd closes the caption block; its line is not
	CaptionEnd = "Tomorrow's picture:"
)

var tagPattern = regexp.MustCompile(`<(.*?)>`)

// ExtractCaption collects the lines from the first line containing
// CaptionStart up to, but not including, the first line containing
// CaptionEnd, then strips tags. A line holding both markers ends the scan
// before it is collected.
func ExtractCaption(body string) string {
	var b strings.Builder
	inside := false
	for _, line := range Lines(body) {
		if strings.Contains(line, CaptionStart) {
			inside = true
		}
		if strings.Contains(line, CaptionEnd) {
			break
		}
		if inside {
			b.WriteString(line)
		}
	}
	return StripTags(b.String())
}

// StripTags removes every <...> run. Tags spanning a line break are kept.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
