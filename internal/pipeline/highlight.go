package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrHighlightStyleNotFound indicates an unknown chroma style name.
var ErrHighlightStyleNotFound = errors.New("highlight style not found")

// CodeHighlighter renders a fenced code block for a language tag.
type CodeHighlighter interface {
	// Supports reports whether lang can be highlighted.
	Supports(lang string) bool
	// Highlight returns a complete <pre> element for code.
	Highlight(lang, code string) (string, error)
	// CSS returns the stylesheet the highlighted markup relies on.
	CSS() (string, error)
}

// ChromaHighlighter highlights code with chroma using CSS classes, so the
// markup stays small and the colors live in one stylesheet.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// An empty name selects DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHighlightStyleNotFound, styleName)
	}
	return &ChromaHighlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// HighlightStyles lists the available chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether chroma has a lexer for lang.
func (h *ChromaHighlighter) Supports(lang string) bool {
	return lexers.Get(lang) != nil
}

// Highlight tokenises code with the lexer for lang and formats it as HTML.
func (h *ChromaHighlighter) Highlight(lang, code string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising: %w", err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting: %w", err)
	}
	return b.String(), nil
}

// CSS returns the class-based stylesheet for the configured style.
func (h *ChromaHighlighter) CSS() (string, error) {
	var b strings.Builder
	if err := h.formatter.WriteCSS(&b, h.style); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return b.String(), nil
}
