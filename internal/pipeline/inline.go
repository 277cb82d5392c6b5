package pipeline

import (
	"regexp"
	"strings"
)

// Inline span patterns. All are non-greedy so adjacent spans on one line
// are matched separately.
var (
	linkPattern   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	imagePattern  = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
)

// RewriteInline converts inline Markdown spans to HTML tags. Passes run in
// a fixed order (links, images, bold, italic), each over the previous
// pass's output. Text is never HTML-escaped.
func RewriteInline(text string) string {
	text = rewriteLinks(text)
	text = rewriteImages(text)
	text = rewriteBold(text)
	return rewriteItalic(text)
}

// rewriteLinks replaces [label](target) with an anchor. A match whose
// opening bracket follows '!' is an image and is left for rewriteImages;
// RE2 has no lookbehind, so the check is done on match offsets.
func rewriteLinks(text string) string {
	matches := linkPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*16)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && text[start-1] == '!' {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(`<a href="`)
		b.WriteString(text[m[4]:m[5]])
		b.WriteString(`">`)
		b.WriteString(text[m[2]:m[3]])
		b.WriteString(`</a>`)
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// rewriteImages replaces ![alt](target) with an img tag.
func rewriteImages(text string) string {
	return imagePattern.ReplaceAllString(text, `<img src="${2}" alt="${1}">`)
}

// rewriteBold replaces **text** with <b>. Must run before rewriteItalic,
// whose delimiter is a prefix of bold's.
func rewriteBold(text string) string {
	return boldPattern.ReplaceAllString(text, `<b>${1}</b>`)
}

// rewriteItalic replaces *text* with <i>.
func rewriteItalic(text string) string {
	return italicPattern.ReplaceAllString(text, `<i>${1}</i>`)
}
