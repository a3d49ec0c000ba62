// Package source holds the immutable input model shared by every parsing
// stage: numbered source lines and spans over them.
package source

import "strings"

// Line is one input line without its terminating newline.
type Line struct {
	// Index is the 0-based position of the line in its document.
	Index int

	// Text is the raw line content.
	Text string
}

// Len returns the length of the line in bytes.
func (l *Line) Len() int {
	return len(l.Text)
}

// Whole returns a span covering the entire line.
func (l *Line) Whole() Span {
	return Span{line: l, start: 0, end: len(l.Text)}
}

// Split breaks content into lines. Both LF and CRLF endings are accepted.
// A trailing newline does not start an extra empty line, and empty content
// yields no lines.
func Split(content []byte) []Line {
	if len(content) == 0 {
		return []Line{}
	}

	text := string(content)
	text = strings.TrimSuffix(text, "\n")

	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for idx, part := range parts {
		lines[idx] = Line{
			Index: idx,
			Text:  strings.TrimSuffix(part, "\r"),
		}
	}

	return lines
}

// FromStrings builds lines from already split text.
func FromStrings(texts ...string) []Line {
	lines := make([]Line, len(texts))
	for idx, text := range texts {
		lines[idx] = Line{Index: idx, Text: text}
	}
	return lines
}

// Spans returns a whole-line span for every line in lines.
// The spans point into the given slice, which must not be modified afterwards.
func Spans(lines []Line) []Span {
	spans := make([]Span, len(lines))
	for idx := range lines {
		spans[idx] = lines[idx].Whole()
	}
	return spans
}
