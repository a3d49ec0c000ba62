package lineparse

import (
	"regexp"
	"strings"

	"github.com/yaklabco/textright/pkg/source"
)

// Line grammar. Every pattern is anchored to the whole line and its groups
// are adjacent, so the captured spans tile the line.
//
//nolint:gochecknoglobals // Compiled once; regexp.Regexp is safe for concurrent use.
var (
	headingPattern       = regexp.MustCompile(`^(#+)([ \t]*)(.*)$`)
	stylePattern         = regexp.MustCompile(`^(---)([ \t]*)(.*)([ \t]*)(---)$`)
	quotePattern         = regexp.MustCompile(`^( ?)(>)( ?)(.*)$`)
	unorderedItemPattern = regexp.MustCompile(`^( ?)([-*+])( )(.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^( ?)([0-9]+|#)(\.)( )(.*)$`)
	rawStartPattern      = regexp.MustCompile(`(?i)^(<)([a-z+]*)(.*?)([ \t]*)(>)$`)
	rawEndPattern        = regexp.MustCompile(`(?i)^(</)([a-z-]+)([ \t]*)(>)([ \t]*)$`)
)

// Classify assigns a kind to one line and updates state for the next line.
// It never fails: a line matching no rule is Text.
func Classify(span source.Span, state *State, opts Options) Line {
	text := span.Text()

	switch state.Mode {
	case ModeParagraph:
		if !opts.DisallowSimpleParagraphs && strings.HasPrefix(text, " ") {
			if item := matchListStart(span, state); item != nil {
				return item
			}
		}
		return continueParagraph(span, state)

	case ModeRaw:
		return continueRaw(span, state)

	case ModeList:
		if line := continueList(span, state); line != nil {
			return line
		}
		// The list has ended; read the line afresh.
		state.Mode = ModeNone

	case ModeNone:
	}

	return classifyFresh(span, state)
}

// ClassifyAll classifies spans in order with a fresh State.
func ClassifyAll(spans []source.Span, opts Options) []Line {
	state := NewState()
	lines := make([]Line, len(spans))
	for idx, span := range spans {
		lines[idx] = Classify(span, state, opts)
	}
	return lines
}

// IsBlank reports whether text holds only spaces and tabs.
func IsBlank(text string) bool {
	return isWhitespace(text)
}

func isWhitespace(text string) bool {
	for idx := range len(text) {
		if text[idx] != ' ' && text[idx] != '\t' {
			return false
		}
	}
	return true
}

func classifyFresh(span source.Span, state *State) Line {
	text := span.Text()

	if groups := match(headingPattern, span); groups != nil {
		state.LastLineBlank = false
		return &Heading{Src: span, Hashes: groups[0], Space: groups[1], Content: groups[2]}
	}

	if groups := match(stylePattern, span); groups != nil {
		state.LastLineBlank = false
		return &Style{
			Src:           span,
			Open:          groups[0],
			LeadingSpace:  groups[1],
			Content:       groups[2],
			TrailingSpace: groups[3],
			Close:         groups[4],
		}
	}

	if groups := match(quotePattern, span); groups != nil {
		state.LastLineBlank = false
		return &Quote{Src: span, Indent: groups[0], Marker: groups[1], Space: groups[2], Content: groups[3]}
	}

	if item := matchListStart(span, state); item != nil {
		return item
	}

	if groups := match(rawStartPattern, span); groups != nil {
		state.LastLineBlank = false
		state.Mode = ModeRaw
		state.OpenRawTag = groups[1].Text()
		return &RawTagStart{
			Src:        span,
			Open:       groups[0],
			Name:       groups[1],
			Attributes: groups[2],
			Space:      groups[3],
			Close:      groups[4],
		}
	}

	if isWhitespace(text) {
		state.LastLineBlank = true
		return &Blank{Src: span}
	}

	state.LastLineBlank = false
	state.Mode = ModeParagraph
	return &Text{Src: span}
}

// matchListStart recognizes the first line of a list item and opens list mode.
// Ordered items are only recognized on lines starting with a space.
func matchListStart(span source.Span, state *State) Line {
	if groups := match(unorderedItemPattern, span); groups != nil {
		openList(state, groups[0], groups[2])
		return &UnorderedListItem{
			Src:     span,
			Indent:  groups[0],
			Bullet:  groups[1],
			Space:   groups[2],
			Content: groups[3],
		}
	}

	if !strings.HasPrefix(span.Text(), " ") {
		return nil
	}

	if groups := match(orderedItemPattern, span); groups != nil {
		openList(state, groups[0], groups[3])
		return &OrderedListItem{
			Src:     span,
			Indent:  groups[0],
			Number:  groups[1],
			Period:  groups[2],
			Space:   groups[3],
			Content: groups[4],
		}
	}

	return nil
}

func openList(state *State, indent, space source.Span) {
	state.LastLineBlank = false
	state.ListIndent = indent.Len() + space.Len()
	state.Mode = ModeList
}

func continueParagraph(span source.Span, state *State) Line {
	if isWhitespace(span.Text()) {
		state.Mode = ModeNone
		state.LastLineBlank = true
		return &Blank{Src: span}
	}

	state.Mode = ModeParagraph
	state.LastLineBlank = false
	return &Text{Src: span}
}

// continueList returns nil when the line does not belong to the open item.
// It leaves the mode alone in that case.
func continueList(span source.Span, state *State) Line {
	text := span.Text()

	if isWhitespace(text) {
		if state.LastLineBlank {
			return nil
		}
		state.LastLineBlank = true
		return &Blank{Src: span}
	}

	width := state.ListIndent + 1
	if len(text) <= width || !isWhitespace(text[:width]) {
		return nil
	}

	state.LastLineBlank = false
	return &ListItemContinuation{
		Src:     span,
		Indent:  span.Slice(0, width),
		Content: span.From(width),
	}
}

func continueRaw(span source.Span, state *State) Line {
	groups := match(rawEndPattern, span)
	if groups == nil {
		return &RawContinuation{Src: span}
	}

	state.Mode = ModeNone
	state.OpenRawTag = ""
	return &RawTagEnd{
		Src:      span,
		Open:     groups[0],
		Name:     groups[1],
		Space:    groups[2],
		Close:    groups[3],
		Trailing: groups[4],
	}
}

// match runs pattern against the span and returns one span per capture group,
// or nil when the pattern does not match.
func match(pattern *regexp.Regexp, span source.Span) []source.Span {
	loc := pattern.FindStringSubmatchIndex(span.Text())
	if loc == nil {
		return nil
	}

	groups := make([]source.Span, pattern.NumSubexp())
	prevEnd := 0
	for idx := range groups {
		start, end := loc[2*idx+2], loc[2*idx+3]
		if start < 0 {
			start, end = prevEnd, prevEnd
		}
		groups[idx] = span.Slice(start, end)
		prevEnd = end
	}

	return groups
}
