// Package md2html converts Markdown documents to standalone HTML pages.
//
// # Quick Start
//
// Create a converter and convert either raw Markdown or a file:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(md2html.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0644)
//
// ConvertFile reads a source file and writes the destination atomically:
//
//	_, err = conv.ConvertFile("notes.md", "notes.html")
//
// # Conversion Model
//
// Conversion is a single pass over the source lines. Each line is classified
// by the first matching marker, in this order:
//
//  1. ordered list item ("1. text")
//  2. unordered list item ("* text")
//  3. blockquote ("> text")
//  4. heading ("# text" through "###### text")
//  5. code fence ("```" with an optional language tag)
//  6. anything else is a paragraph
//
// Consecutive items of the same kind share one <ol>, <ul> or <blockquote>.
// Lines between fences are copied verbatim inside <pre><code>. Links,
// images, bold and italic spans are rewritten in that order on every other
// line. Wrappers still open at the end of the document are closed.
//
// This is deliberately not CommonMark: there are no nested lists, tables or
// reference links, and no HTML escaping of content. Do not feed untrusted
// Markdown to a browser without sanitizing the result.
//
// # Configuration
//
// Use functional options to customize the page frame. None of them change
// how Markdown lines are converted:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithTitle("Release Notes"),
//	    md2html.WithStyle("default"),
//	    md2html.WithHighlighting("monokai"),
//	)
package md2html
