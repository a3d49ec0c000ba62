package lineparse

//go:generate stringer -type=Mode -trimprefix=Mode

// Mode is the continuation context that decides how the next line is read.
type Mode uint8

// Continuation modes.
const (
	// ModeNone means no multi-line construct is open.
	ModeNone Mode = iota

	// ModeParagraph means the previous line was paragraph text.
	ModeParagraph

	// ModeList means a list item is open and may take continuation lines.
	ModeList

	// ModeRaw means a raw block is open until its end tag.
	ModeRaw
)

// State is the mutable context threaded through successive Classify calls.
// A State belongs to exactly one pass over one line sequence; nested passes
// use their own.
type State struct {
	Mode Mode

	// LastLineBlank reports whether the previous line was blank.
	LastLineBlank bool

	// OpenRawTag is the tag name of the open raw block, if any.
	OpenRawTag string

	// ListIndent is the open list item's leading indent plus the space after
	// its marker. Continuation lines start with ListIndent+1 whitespace bytes.
	ListIndent int
}

// NewState returns the state for the start of a line sequence.
func NewState() *State {
	return &State{
		Mode:          ModeNone,
		LastLineBlank: true,
	}
}

// Options controls classification.
type Options struct {
	// DisallowSimpleParagraphs stops an indented list marker from
	// interrupting a paragraph; the line continues the paragraph instead.
	DisallowSimpleParagraphs bool
}
