package pipeline

// Notes:
// - Render is tested on the exact fragment sequence; the document frame is
//   covered in document_test.go.
// - Highlighting is driven through a stub here; chroma output itself is
//   checked in highlight_test.go.

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func render(t *testing.T, r *BodyRenderer, lines ...string) *Body {
	t.Helper()
	body, err := r.Render(lines)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return body
}

// frags builds the expected fragment slice from bare strings.
func frags(lines ...string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

// ---------------------------------------------------------------------------
// TestBodyRenderer_Render - Block transitions
// ---------------------------------------------------------------------------

func TestBodyRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "empty document",
			lines: nil,
			want:  []string{},
		},
		{
			name:  "plain line becomes paragraph",
			lines: []string{"hello *world*"},
			want:  frags("<p>hello <i>world</i></p>"),
		},
		{
			name:  "blank line becomes empty paragraph",
			lines: []string{""},
			want:  frags("<p></p>"),
		},
		{
			name:  "heading with inline span",
			lines: []string{"## A **bold** title"},
			want:  frags("<h2>A <b>bold</b> title</h2>"),
		},
		{
			name:  "consecutive ordered items share one list",
			lines: []string{"1. a", "2. b"},
			want:  frags("<ol>", "<li>a</li>", "<li>b</li>", "</ol>"),
		},
		{
			name:  "ordered list closed by blank line",
			lines: []string{"1. a", "", "text"},
			want:  frags("<ol>", "<li>a</li>", "</ol>", "<p></p>", "<p>text</p>"),
		},
		{
			name:  "unordered list closed by plain line",
			lines: []string{"* a", "* b", "after"},
			want:  frags("<ul>", "<li>a</li>", "<li>b</li>", "</ul>", "<p>after</p>"),
		},
		{
			name:  "switching list kinds closes the previous list",
			lines: []string{"1. a", "* b"},
			want:  frags("<ol>", "<li>a</li>", "</ol>", "<ul>", "<li>b</li>", "</ul>"),
		},
		{
			name:  "list to blockquote",
			lines: []string{"* a", "> q"},
			want:  frags("<ul>", "<li>a</li>", "</ul>", "<blockquote>", "q<br>", "</blockquote>"),
		},
		{
			name:  "blockquote lines share one wrapper",
			lines: []string{"> one", "> *two*"},
			want:  frags("<blockquote>", "one<br>", "<i>two</i><br>", "</blockquote>"),
		},
		{
			name:  "heading breaks list context",
			lines: []string{"1. a", "# H"},
			want:  frags("<ol>", "<li>a</li>", "</ol>", "<h1>H</h1>"),
		},
		{
			name:  "list reopened after heading",
			lines: []string{"* a", "# H", "* b"},
			want:  frags("<ul>", "<li>a</li>", "</ul>", "<h1>H</h1>", "<ul>", "<li>b</li>", "</ul>"),
		},
		{
			name:  "code block emitted verbatim",
			lines: []string{"```", "**not bold** <tag> & [x](y)", "```"},
			want:  frags("<pre><code>", "**not bold** <tag> & [x](y)", "</code></pre>"),
		},
		{
			name:  "block markers inside code are content",
			lines: []string{"```go", "# not heading", "* not item", "1. not item", "> not quote", "```"},
			want: frags("<pre><code>", "# not heading", "* not item", "1. not item", "> not quote",
				"</code></pre>"),
		},
		{
			name:  "unterminated fence is force-closed",
			lines: []string{"```", "code"},
			want:  frags("<pre><code>", "code", "</code></pre>"),
		},
		{
			name:  "fence closes open list",
			lines: []string{"* a", "```", "x", "```"},
			want:  frags("<ul>", "<li>a</li>", "</ul>", "<pre><code>", "x", "</code></pre>"),
		},
		{
			name:  "empty code block",
			lines: []string{"```", "```"},
			want:  frags("<pre><code>", "</code></pre>"),
		},
		{
			name:  "three-line document",
			lines: []string{"# Title", "plain text", "* item"},
			want:  frags("<h1>Title</h1>", "<p>plain text</p>", "<ul>", "<li>item</li>", "</ul>"),
		},
		{
			name:  "seven hashes is a paragraph",
			lines: []string{"####### x"},
			want:  frags("<p>####### x</p>"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &BodyRenderer{}
			body := render(t, r, tt.lines...)
			if !reflect.DeepEqual(body.Fragments, tt.want) {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.lines, body.Fragments, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBodyRenderer_Render_HeadingLevels - Every level renders its own tag
// ---------------------------------------------------------------------------

func TestBodyRenderer_Render_HeadingLevels(t *testing.T) {
	t.Parallel()

	r := &BodyRenderer{}
	for level := 1; level <= 6; level++ {
		line := strings.Repeat("#", level) + " Title"
		body := render(t, r, line)
		want := "<h" + string(rune('0'+level)) + ">Title</h" + string(rune('0'+level)) + ">\n"
		if got := body.String(); got != want {
			t.Errorf("Render(%q) = %q, want %q", line, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBodyRenderer_Render_Stats - Counters per kind
// ---------------------------------------------------------------------------

func TestBodyRenderer_Render_Stats(t *testing.T) {
	t.Parallel()

	r := &BodyRenderer{}
	body := render(t, r,
		"# T",
		"para",
		"1. a",
		"2. b",
		"> q",
		"```",
		"c1",
		"c2",
		"```",
	)

	want := Stats{
		Lines:           9,
		Headings:        1,
		ListItems:       2,
		BlockquoteLines: 1,
		Paragraphs:      1,
		CodeBlocks:      1,
		CodeLines:       2,
	}
	if body.Stats != want {
		t.Errorf("Stats = %+v, want %+v", body.Stats, want)
	}
}

// ---------------------------------------------------------------------------
// TestBodyRenderer_Render_StateClosed - Terminal transition resets flags
// ---------------------------------------------------------------------------

func TestBodyRenderer_Render_StateClosed(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"1. a"},
		{"* a"},
		{"> a"},
		{"```"},
		{"* a", "```", "x"},
	}

	for _, lines := range inputs {
		m := &blockMachine{}
		for _, l := range lines {
			if err := m.step(l); err != nil {
				t.Fatalf("step(%q) unexpected error: %v", l, err)
			}
		}
		if m.state.Closed() {
			t.Errorf("state after %q should have an open wrapper", lines)
		}
		if err := m.finish(); err != nil {
			t.Fatalf("finish() unexpected error: %v", err)
		}
		if !m.state.Closed() {
			t.Errorf("state after finish for %q = %+v, want all closed", lines, m.state)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBodyRenderer_Render_ForceCloseOrder - EOF closes in fixed order
// ---------------------------------------------------------------------------

func TestBodyRenderer_Render_ForceCloseOrder(t *testing.T) {
	t.Parallel()

	m := &blockMachine{}
	m.state = BlockState{InOrderedList: true, InCodeBlock: true}
	if err := m.finish(); err != nil {
		t.Fatalf("finish() unexpected error: %v", err)
	}

	want := frags("</ol>", "</code></pre>")
	if !reflect.DeepEqual(m.body.Fragments, want) {
		t.Errorf("finish() fragments = %q, want %q", m.body.Fragments, want)
	}
}

// ---------------------------------------------------------------------------
// TestBodyRenderer_Render_Highlighter - Tagged fences go through highlighter
// ---------------------------------------------------------------------------

type stubHighlighter struct {
	langs map[string]bool
	calls []string
	err   error
}

func (s *stubHighlighter) Supports(lang string) bool { return s.langs[lang] }

func (s *stubHighlighter) Highlight(lang, code string) (string, error) {
	s.calls = append(s.calls, lang+":"+code)
	if s.err != nil {
		return "", s.err
	}
	return "<pre class=\"hl\">" + strings.ToUpper(code) + "</pre>\n", nil
}

func (s *stubHighlighter) CSS() (string, error) { return ".hl{}", nil }

func TestBodyRenderer_Render_Highlighter(t *testing.T) {
	t.Parallel()

	t.Run("supported language is highlighted", func(t *testing.T) {
		t.Parallel()

		hl := &stubHighlighter{langs: map[string]bool{"go": true}}
		r := &BodyRenderer{Highlighter: hl}
		body := render(t, r, "```go", "a", "b", "```", "after")

		want := frags("<pre class=\"hl\">A\nB\n</pre>", "<p>after</p>")
		if !reflect.DeepEqual(body.Fragments, want) {
			t.Errorf("fragments = %q, want %q", body.Fragments, want)
		}
		if body.Stats.Highlighted != 1 {
			t.Errorf("Stats.Highlighted = %d, want 1", body.Stats.Highlighted)
		}
	})

	t.Run("unsupported language stays verbatim", func(t *testing.T) {
		t.Parallel()

		hl := &stubHighlighter{langs: map[string]bool{}}
		r := &BodyRenderer{Highlighter: hl}
		body := render(t, r, "```cobol", "x", "```")

		want := frags("<pre><code>", "x", "</code></pre>")
		if !reflect.DeepEqual(body.Fragments, want) {
			t.Errorf("fragments = %q, want %q", body.Fragments, want)
		}
		if len(hl.calls) != 0 {
			t.Errorf("Highlight called %d times, want 0", len(hl.calls))
		}
	})

	t.Run("untagged fence stays verbatim", func(t *testing.T) {
		t.Parallel()

		hl := &stubHighlighter{langs: map[string]bool{"": true}}
		r := &BodyRenderer{Highlighter: hl}
		body := render(t, r, "```", "x", "```")

		if len(hl.calls) != 0 {
			t.Errorf("Highlight called for untagged fence")
		}
		if body.Fragments[0] != "<pre><code>\n" {
			t.Errorf("first fragment = %q, want <pre><code>", body.Fragments[0])
		}
	})

	t.Run("unterminated highlighted fence is flushed", func(t *testing.T) {
		t.Parallel()

		hl := &stubHighlighter{langs: map[string]bool{"go": true}}
		r := &BodyRenderer{Highlighter: hl}
		body := render(t, r, "```go", "x")

		want := frags("<pre class=\"hl\">X\n</pre>")
		if !reflect.DeepEqual(body.Fragments, want) {
			t.Errorf("fragments = %q, want %q", body.Fragments, want)
		}
	})

	t.Run("highlighter error is returned", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		hl := &stubHighlighter{langs: map[string]bool{"go": true}, err: errBoom}
		r := &BodyRenderer{Highlighter: hl}
		_, err := r.Render([]string{"```go", "x", "```"})
		if !errors.Is(err, errBoom) {
			t.Errorf("Render() error = %v, want %v", err, errBoom)
		}
	})
}
