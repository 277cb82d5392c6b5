package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled block patterns, tried in declaration order by Classify.
var (
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	unorderedItemPattern = regexp.MustCompile(`^\*\s+(.*)$`)
	blockquotePattern    = regexp.MustCompile(`^>\s+(.*)$`)
	headingPattern       = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	codeFencePattern     = regexp.MustCompile("^```(.*)$")
)

// LineKind identifies the block-level role of a single source line.
type LineKind int

// Line kinds, in classification priority order.
const (
	KindPlain LineKind = iota
	KindOrderedItem
	KindUnorderedItem
	KindBlockquote
	KindHeading
	KindCodeFence
)

var kindNames = [...]string{
	KindPlain:         "plain",
	KindOrderedItem:   "ordered-item",
	KindUnorderedItem: "unordered-item",
	KindBlockquote:    "blockquote",
	KindHeading:       "heading",
	KindCodeFence:     "code-fence",
}

// String returns a short lowercase name for the kind.
func (k LineKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Line is the classification of one source line.
type Line struct {
	Kind  LineKind
	Text  string // payload after the block marker; whole line for KindPlain
	Level int    // heading level 1-6, zero otherwise
	Lang  string // language tag after a fence, may be empty
}

// Classify maps a raw line to exactly one LineKind. The first matching
// pattern wins; anything unmatched is plain text. Classify never fails.
func Classify(line string) Line {
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindOrderedItem, Text: m[1]}
	}
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindUnorderedItem, Text: m[1]}
	}
	if m := blockquotePattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindBlockquote, Text: m[1]}
	}
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindHeading, Level: len(m[1]), Text: m[2]}
	}
	if m := codeFencePattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: KindCodeFence, Lang: strings.TrimSpace(m[1])}
	}
	return Line{Kind: KindPlain, Text: line}
}
