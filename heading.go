package docboost

import (
	"regexp"
	"strings"
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+(.+?)\s*#*\s*$`)
)

// FirstHeading returns the text of the first Markdown heading (H1-H6)
// outside fenced code blocks, or an empty string if there is none.
func FirstHeading(markdown string) string {
	m := headingRe.FindStringSubmatch(fencedCodeRe.ReplaceAllString(markdown, ""))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
