package pipeline

import (
	"html"
	"strings"
)

// DefaultTitle is the <title> of every generated document unless overridden.
const DefaultTitle = "Markdown to HTML"

// Fixed document frame. The head is split so a stylesheet can be placed
// before </head>.
const (
	documentHead = "<!DOCTYPE html>\n" +
		"<html>\n" +
		"<head>\n" +
		"<meta charset=\"UTF-8\">\n"
	documentOpenBody = "</head>\n" +
		"<body>\n"
	documentTail = "</body>\n" +
		"</html>\n"
)

// DocumentOptions customizes the document frame around the body.
type DocumentOptions struct {
	Title string // empty = DefaultTitle
	CSS   string // emitted in a <style> element when non-empty
}

// WrapDocument places body content inside the fixed HTML5 frame.
func WrapDocument(body string, opts DocumentOptions) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.Grow(len(documentHead) + len(documentOpenBody) + len(documentTail) + len(body) + len(opts.CSS) + 64)
	b.WriteString(documentHead)
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n")
	if css := strings.TrimSpace(opts.CSS); css != "" {
		b.WriteString("<style>\n")
		b.WriteString(css)
		b.WriteString("\n</style>\n")
	}
	b.WriteString(documentOpenBody)
	b.WriteString(body)
	b.WriteString(documentTail)
	return b.String()
}
