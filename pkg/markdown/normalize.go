package markdown

import (
	"regexp"
	"strings"
)

// blankRunPattern matches runs of three or more newlines, i.e. two or
// more consecutive blank lines.
var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// normalize canonicalizes line endings, collapses runs of blank lines
// down to one and trims surrounding whitespace. Substitution can leave
// stacked blank lines behind, most visibly where a response marker
// rendered to nothing.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
