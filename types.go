package md2html

import (
	"github.com/alnah/go-md2html/internal/pipeline"
)

// DefaultTitle is the <title> of generated documents unless WithTitle is used.
const DefaultTitle = pipeline.DefaultTitle

// MaxTitleLength bounds the WithTitle value.
const MaxTitleLength = 200

// Input is the source of one conversion.
type Input struct {
	// Lines is the document as an ordered sequence of lines without
	// terminators. When nil, Markdown is split into lines instead.
	Lines []string

	// Markdown is raw source text. Lines end at \n, \r\n or \r; a final
	// terminator does not add an empty line.
	Markdown string
}

// lines returns the document lines for the input.
func (in Input) lines() []string {
	if in.Lines != nil {
		return in.Lines
	}
	return pipeline.SplitLines(in.Markdown)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML  []byte // complete HTML document
	Stats Stats
}

// Stats summarizes what the converter found in the document.
type Stats struct {
	Lines           int // source lines, fences included
	Headings        int
	ListItems       int
	BlockquoteLines int
	Paragraphs      int
	CodeBlocks      int
	CodeLines       int
	Highlighted     int // code blocks rendered by the highlighter
}

// converterConfig holds option values before they are resolved.
type converterConfig struct {
	title          string
	styleInput     string // name, path, or CSS content
	resolvedStyle  string
	highlight      bool
	highlightStyle string
}

// Option configures a Converter.
type Option func(*Converter)

// WithTitle sets the document <title>. The text is HTML-escaped.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithStyle adds a stylesheet to the document head. The value may be an
// embedded style name ("default", "minimal"), a path to a CSS file, or CSS
// content. An empty value means no stylesheet.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks that
// carry a language tag known to chroma, using the named chroma style
// (empty = "github"). Untagged fences and unknown languages are still
// copied verbatim.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}
