package runner

import "github.com/yaklabco/textright/pkg/doctree"

// FileOutcome is the result of parsing one file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// Document is the parsed tree. It is nil when Error is set.
	Document *doctree.Document

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files parsed successfully.
	FilesParsed int

	// FilesErrored is the number of files that failed.
	FilesErrored int

	// LinesTotal is the number of source lines across parsed files.
	LinesTotal int

	// NodesTotal is the number of nodes at every depth across parsed files.
	NodesTotal int

	// NodesByKind maps node kind names to counts.
	NodesByKind map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, sorted by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file failed to parse.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		NodesByKind: make(map[string]int),
	}
}

// accumulate adds an outcome to the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil || outcome.Document == nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++
	r.Stats.LinesTotal += outcome.Document.LineCount()

	//nolint:errcheck,revive // the callback never fails
	doctree.Walk(outcome.Document.Nodes, func(n doctree.Node, _ int) error {
		r.Stats.NodesTotal++
		r.Stats.NodesByKind[n.Kind().String()]++
		return nil
	})
}
