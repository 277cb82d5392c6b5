package pipeline

import (
	"fmt"
	"strings"
)

// BlockState tracks which block-level wrappers are open while lines are
// consumed. At most one of the three container flags is set, and none of
// them is set while InCodeBlock is true.
type BlockState struct {
	InOrderedList   bool
	InUnorderedList bool
	InBlockquote    bool
	InCodeBlock     bool
}

// Closed reports whether no wrapper is open.
func (s BlockState) Closed() bool {
	return !s.InOrderedList && !s.InUnorderedList && !s.InBlockquote && !s.InCodeBlock
}

// Stats counts what a render pass produced.
type Stats struct {
	Lines           int
	Headings        int
	ListItems       int
	BlockquoteLines int
	Paragraphs      int
	CodeBlocks      int
	CodeLines       int
	Highlighted     int
}

// Body is the rendered content placed between <body> and </body>.
type Body struct {
	Fragments []string // in emission order, each terminated by a newline
	Stats     Stats
}

// String concatenates the fragments.
func (b *Body) String() string {
	return strings.Join(b.Fragments, "")
}

// BodyRenderer converts a sequence of source lines into HTML body content.
// The zero value renders fenced code verbatim.
type BodyRenderer struct {
	// Highlighter, when set, renders fenced code whose fence carries a
	// supported language tag. Other fences are emitted verbatim.
	Highlighter CodeHighlighter
}

// Render classifies every line in order and emits the matching HTML.
// Wrappers still open after the last line are closed in a fixed order:
// ordered list, unordered list, blockquote, code block.
func (r *BodyRenderer) Render(lines []string) (*Body, error) {
	m := &blockMachine{highlighter: r.Highlighter}
	m.body.Fragments = make([]string, 0, len(lines)+4)

	for _, line := range lines {
		if err := m.step(line); err != nil {
			return nil, err
		}
	}
	if err := m.finish(); err != nil {
		return nil, err
	}
	return &m.body, nil
}

// blockMachine is the per-render state: flags, output, and any code block
// held back for highlighting.
type blockMachine struct {
	state       BlockState
	body        Body
	highlighter CodeHighlighter

	codeLang  string
	codeLines []string
	buffering bool
}

func (m *blockMachine) emit(fragment string) {
	m.body.Fragments = append(m.body.Fragments, fragment+"\n")
}

func (m *blockMachine) step(raw string) error {
	m.body.Stats.Lines++
	line := Classify(raw)

	if m.state.InCodeBlock {
		if line.Kind == KindCodeFence {
			return m.closeCode()
		}
		m.codeLine(raw)
		return nil
	}

	switch line.Kind {
	case KindOrderedItem:
		m.openContainer(KindOrderedItem)
		m.emit("<li>" + RewriteInline(line.Text) + "</li>")
		m.body.Stats.ListItems++
	case KindUnorderedItem:
		m.openContainer(KindUnorderedItem)
		m.emit("<li>" + RewriteInline(line.Text) + "</li>")
		m.body.Stats.ListItems++
	case KindBlockquote:
		m.openContainer(KindBlockquote)
		m.emit(RewriteInline(line.Text) + "<br>")
		m.body.Stats.BlockquoteLines++
	case KindHeading:
		m.closeContainers()
		m.emit(fmt.Sprintf("<h%d>%s</h%d>", line.Level, RewriteInline(line.Text), line.Level))
		m.body.Stats.Headings++
	case KindCodeFence:
		m.closeContainers()
		m.openCode(line.Lang)
	default:
		m.closeContainers()
		m.emit("<p>" + RewriteInline(line.Text) + "</p>")
		m.body.Stats.Paragraphs++
	}
	return nil
}

// openContainer switches to the list or blockquote wrapper for kind,
// closing a different open container first. An already-open wrapper of
// the same kind is left as is.
func (m *blockMachine) openContainer(kind LineKind) {
	switch kind {
	case KindOrderedItem:
		if m.state.InOrderedList {
			return
		}
		m.closeContainers()
		m.emit("<ol>")
		m.state.InOrderedList = true
	case KindUnorderedItem:
		if m.state.InUnorderedList {
			return
		}
		m.closeContainers()
		m.emit("<ul>")
		m.state.InUnorderedList = true
	case KindBlockquote:
		if m.state.InBlockquote {
			return
		}
		m.closeContainers()
		m.emit("<blockquote>")
		m.state.InBlockquote = true
	}
}

func (m *blockMachine) closeContainers() {
	if m.state.InOrderedList {
		m.emit("</ol>")
		m.state.InOrderedList = false
	}
	if m.state.InUnorderedList {
		m.emit("</ul>")
		m.state.InUnorderedList = false
	}
	if m.state.InBlockquote {
		m.emit("</blockquote>")
		m.state.InBlockquote = false
	}
}

func (m *blockMachine) openCode(lang string) {
	m.state.InCodeBlock = true
	m.body.Stats.CodeBlocks++
	if lang != "" && m.highlighter != nil && m.highlighter.Supports(lang) {
		m.buffering = true
		m.codeLang = lang
		m.codeLines = m.codeLines[:0]
		return
	}
	m.emit("<pre><code>")
}

func (m *blockMachine) codeLine(raw string) {
	m.body.Stats.CodeLines++
	if m.buffering {
		m.codeLines = append(m.codeLines, raw)
		return
	}
	m.emit(raw)
}

func (m *blockMachine) closeCode() error {
	m.state.InCodeBlock = false
	if !m.buffering {
		m.emit("</code></pre>")
		return nil
	}

	m.buffering = false
	code := strings.Join(m.codeLines, "\n")
	if len(m.codeLines) > 0 {
		code += "\n"
	}
	out, err := m.highlighter.Highlight(m.codeLang, code)
	if err != nil {
		return fmt.Errorf("highlighting %s code block: %w", m.codeLang, err)
	}
	m.emit(strings.TrimRight(out, "\n"))
	m.body.Stats.Highlighted++
	return nil
}

// finish is the terminal transition: every open wrapper is closed.
func (m *blockMachine) finish() error {
	m.closeContainers()
	if m.state.InCodeBlock {
		return m.closeCode()
	}
	return nil
}
