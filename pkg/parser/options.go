package parser

// DefaultMaxDepth is the nesting depth used when Options.MaxDepth is not set.
const DefaultMaxDepth = 64

// Options configures a Parser.
type Options struct {
	// DisallowSimpleParagraphs stops an indented list marker from
	// interrupting a paragraph.
	DisallowSimpleParagraphs bool

	// MaxDepth bounds how deeply list items and quotes may nest.
	// Zero or a negative value selects DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the default parser options.
func DefaultOptions() Options {
	return Options{
		DisallowSimpleParagraphs: false,
		MaxDepth:                 DefaultMaxDepth,
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
