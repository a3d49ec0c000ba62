package source

import "fmt"

// Span is an immutable reference to the byte range [Start, End) of a Line.
//
// Offsets are always absolute within the underlying Line: slicing a span
// composes offsets instead of stacking references, so nested parses never copy
// text. The zero Span is empty and refers to no line.
type Span struct {
	line  *Line
	start int
	end   int
}

// NewSpan returns the span [start, end) of line.
// It panics if the range falls outside the line.
func NewSpan(line *Line, start, end int) Span {
	if line == nil {
		panic("source: nil line")
	}
	if start < 0 || start > end || end > len(line.Text) {
		panic(fmt.Sprintf("source: span [%d:%d] out of range for line of length %d", start, end, len(line.Text)))
	}
	return Span{line: line, start: start, end: end}
}

// Line returns the underlying line, or nil for the zero span.
func (s Span) Line() *Line {
	return s.line
}

// LineIndex returns the index of the underlying line, or -1 for the zero span.
func (s Span) LineIndex() int {
	if s.line == nil {
		return -1
	}
	return s.line.Index
}

// Start returns the absolute start offset within the line.
func (s Span) Start() int {
	return s.start
}

// End returns the absolute end offset within the line.
func (s Span) End() int {
	return s.end
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.end - s.start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.start == s.end
}

// Text returns the covered text. The result shares storage with the line,
// so repeated calls return the identical string without allocating.
func (s Span) Text() string {
	if s.line == nil {
		return ""
	}
	return s.line.Text[s.start:s.end]
}

// Slice returns the sub-span [start, end) relative to s.
// It panics if the range falls outside s.
func (s Span) Slice(start, end int) Span {
	if start < 0 || start > end || end > s.Len() {
		panic(fmt.Sprintf("source: slice [%d:%d] out of range for span of length %d", start, end, s.Len()))
	}
	return Span{line: s.line, start: s.start + start, end: s.start + end}
}

// From returns the sub-span starting at start and running to the end of s.
func (s Span) From(start int) Span {
	return s.Slice(start, s.Len())
}

// String implements fmt.Stringer for debugging output.
func (s Span) String() string {
	return fmt.Sprintf("%d[%d:%d]%q", s.LineIndex(), s.start, s.end, s.Text())
}
