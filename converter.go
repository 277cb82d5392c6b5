package md2html

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var _ pipeline.CodeHighlighter = (*pipeline.ChromaHighlighter)(nil)

// outputPerm is the mode of files written by ConvertFile.
const outputPerm os.FileMode = 0o644

// Converter turns Markdown lines into a standalone HTML document.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	renderer *pipeline.BodyRenderer
	css      string // style plus highlighter CSS
}

// NewConverter creates a Converter. Without options it produces the plain
// page: default title, no stylesheet, fenced code copied verbatim.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		renderer: &pipeline.BodyRenderer{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := validateTitle(c.cfg.title); err != nil {
		return nil, err
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	c.css = c.cfg.resolvedStyle

	if c.cfg.highlight {
		h, err := pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return nil, convertInternalError(err)
		}
		css, err := h.CSS()
		if err != nil {
			return nil, fmt.Errorf("generating highlight CSS: %w", err)
		}
		c.renderer.Highlighter = h
		c.css = joinCSS(c.css, css)
	}

	return c, nil
}

// Convert renders one document. Every line is consumed; there is no
// failure mode for malformed Markdown.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	body, err := c.renderer.Render(input.lines())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}

	doc := pipeline.WrapDocument(body.String(), pipeline.DocumentOptions{
		Title: c.cfg.title,
		CSS:   c.css,
	})

	return &ConvertResult{
		HTML:  []byte(doc),
		Stats: Stats(body.Stats),
	}, nil
}

// ConvertFile reads src, converts it and writes the document to dst.
// The destination is replaced atomically; its directory must exist.
// Read failures wrap ErrReadMarkdown, write failures wrap ErrWriteHTML.
func (c *Converter) ConvertFile(src, dst string) (*ConvertResult, error) {
	if src == "" {
		return nil, ErrEmptySourcePath
	}
	if dst == "" {
		return nil, ErrEmptyDestinationPath
	}

	content, err := fileutil.ReadText(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	result, err := c.Convert(Input{Lines: pipeline.SplitLines(content)})
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(dst, result.HTML, outputPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return result, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := fileutil.ReadText(input)
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = content
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := loadEmbeddedStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidTitle, MaxTitleLength)
	}
	if strings.ContainsAny(title, "\n\r") {
		return fmt.Errorf("%w: must be a single line", ErrInvalidTitle)
	}
	return nil
}

// joinCSS concatenates non-empty stylesheets, base first.
func joinCSS(base, extra string) string {
	base = strings.TrimRight(base, "\n")
	switch {
	case base == "":
		return extra
	case extra == "":
		return base
	default:
		return base + "\n" + extra
	}
}
