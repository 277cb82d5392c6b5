package pipeline

import (
	"regexp"
	"strings"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines splits raw Markdown into lines the way a line reader does:
// \n, \r\n and \r all terminate a line, and a terminator at the very end
// does not start another, empty, line. Empty content has no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = NormalizeLineEndings(content)
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
