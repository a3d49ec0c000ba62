package analysis

import "time"

// Report contains pre-computed views of a parse run.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Failures lists the files that could not be read or parsed.
	Failures []FailureEntry `json:"failures,omitempty" yaml:"failures,omitempty"`

	// ByFile holds per-file statistics.
	ByFile []FileAnalysis `json:"byFile,omitempty" yaml:"byFile,omitempty"`

	// ByKind groups node counts by node kind.
	ByKind []KindAnalysis `json:"byKind,omitempty" yaml:"byKind,omitempty"`

	// RawBlocks lists every raw block in document order.
	RawBlocks []RawEntry `json:"rawBlocks,omitempty" yaml:"rawBlocks,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary" yaml:"summary"`

	// Version is the report format version.
	Version string `json:"version" yaml:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// FailureEntry describes a file that failed.
type FailureEntry struct {
	FilePath string `json:"filePath" yaml:"filePath"`
	Message  string `json:"message" yaml:"message"`
}

// RawEntry describes one raw block.
type RawEntry struct {
	FilePath string `json:"filePath" yaml:"filePath"`
	Name     string `json:"name" yaml:"name"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// StartLine is 1-based.
	StartLine int  `json:"startLine" yaml:"startLine"`
	Lines     int  `json:"lines" yaml:"lines"`
	Closed    bool `json:"closed" yaml:"closed"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files       int `json:"filesDiscovered" yaml:"filesDiscovered"`
	FilesParsed int `json:"filesParsed" yaml:"filesParsed"`
	FilesFailed int `json:"filesFailed" yaml:"filesFailed"`
	Lines       int `json:"lines" yaml:"lines"`
	Nodes       int `json:"nodes" yaml:"nodes"`
	MaxDepth    int `json:"maxDepth" yaml:"maxDepth"`
	RawBlocks   int `json:"rawBlocks" yaml:"rawBlocks"`
	UnclosedRaw int `json:"unclosedRaw" yaml:"unclosedRaw"`
	TaggedNodes int `json:"taggedNodes" yaml:"taggedNodes"`
}

// HasFailures returns true if any file failed.
func (t Totals) HasFailures() bool {
	return t.FilesFailed > 0
}

// HasUnclosedRaw returns true if any raw block ran to the end of its input.
func (t Totals) HasUnclosedRaw() bool {
	return t.UnclosedRaw > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path  string `json:"path" yaml:"path"`
	Lines int    `json:"lines" yaml:"lines"`
	Nodes int    `json:"nodes" yaml:"nodes"`

	// MaxDepth is the deepest nesting level; top-level nodes are at 0.
	MaxDepth    int      `json:"maxDepth" yaml:"maxDepth"`
	Headings    int      `json:"headings" yaml:"headings"`
	RawBlocks   int      `json:"rawBlocks" yaml:"rawBlocks"`
	UnclosedRaw int      `json:"unclosedRaw" yaml:"unclosedRaw"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// KindAnalysis contains aggregated data for a single node kind.
type KindAnalysis struct {
	Kind  string   `json:"kind" yaml:"kind"`
	Count int      `json:"count" yaml:"count"`
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`
}
