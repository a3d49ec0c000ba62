package reporter

import (
	"github.com/yaklabco/textright/pkg/analysis"
	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/runner"
)

// OutputVersion is the version of the JSON and YAML document schema.
const OutputVersion = "1.0.0"

// DocumentOutput is the top-level structure of the JSON and YAML formats.
type DocumentOutput struct {
	Version string      `json:"version" yaml:"version"`
	Files   []FileView  `json:"files" yaml:"files"`
	Summary SummaryView `json:"summary" yaml:"summary"`
}

// FileView is one parsed file.
type FileView struct {
	Path  string     `json:"path" yaml:"path"`
	Lines int        `json:"lines" yaml:"lines"`
	Nodes []NodeView `json:"nodes" yaml:"nodes"`
	Error string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// NodeView is the serialized form of a doctree.Node.
// Line numbers are 1-based and inclusive.
type NodeView struct {
	Kind      string   `json:"kind" yaml:"kind"`
	StartLine int      `json:"startLine" yaml:"startLine"`
	EndLine   int      `json:"endLine" yaml:"endLine"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Heading
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Heading, Paragraph
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// OrderedList, UnorderedList
	InitialValue string `json:"initialValue,omitempty" yaml:"initialValue,omitempty"`
	ListType     string `json:"listType,omitempty" yaml:"listType,omitempty"`

	// Raw
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Attributes []AttributeView `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Closed     *bool           `json:"closed,omitempty" yaml:"closed,omitempty"`
	Form       string          `json:"form,omitempty" yaml:"form,omitempty"`
	Lines      []string        `json:"lines,omitempty" yaml:"lines,omitempty"`
	Children   []NodeView      `json:"children,omitempty" yaml:"children,omitempty"`
}

// AttributeView is one raw start-tag attribute.
type AttributeView struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// SummaryView contains aggregate statistics.
type SummaryView struct {
	FilesDiscovered int            `json:"filesDiscovered" yaml:"filesDiscovered"`
	FilesParsed     int            `json:"filesParsed" yaml:"filesParsed"`
	FilesErrored    int            `json:"filesErrored" yaml:"filesErrored"`
	Lines           int            `json:"lines" yaml:"lines"`
	Nodes           int            `json:"nodes" yaml:"nodes"`
	ByKind          map[string]int `json:"byKind" yaml:"byKind"`
}

// BuildOutput converts a runner result into its serializable form.
// Paths are made relative to workingDir when it is set.
func BuildOutput(result *runner.Result, workingDir string) *DocumentOutput {
	output := &DocumentOutput{
		Version: OutputVersion,
		Files:   make([]FileView, 0),
		Summary: SummaryView{ByKind: make(map[string]int)},
	}

	if result == nil {
		return output
	}

	output.Files = make([]FileView, 0, len(result.Files))
	for _, file := range result.Files {
		view := FileView{
			Path:  analysis.RelativePath(file.Path, workingDir),
			Nodes: make([]NodeView, 0),
		}
		switch {
		case file.Error != nil:
			view.Error = file.Error.Error()
		case file.Document != nil:
			view.Lines = file.Document.LineCount()
			view.Nodes = NodeViews(file.Document.Nodes)
		}
		output.Files = append(output.Files, view)
	}

	stats := result.Stats
	output.Summary.FilesDiscovered = stats.FilesDiscovered
	output.Summary.FilesParsed = stats.FilesParsed
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.Lines = stats.LinesTotal
	output.Summary.Nodes = stats.NodesTotal
	for kind, count := range stats.NodesByKind {
		output.Summary.ByKind[kind] = count
	}

	return output
}

// NodeViews converts nodes and their descendants.
func NodeViews(nodes []doctree.Node) []NodeView {
	if len(nodes) == 0 {
		return nil
	}
	views := make([]NodeView, 0, len(nodes))
	for _, node := range nodes {
		views = append(views, nodeView(node))
	}
	return views
}

func nodeView(node doctree.Node) NodeView {
	meta := node.Meta()
	view := NodeView{
		Kind:      node.Kind().String(),
		StartLine: meta.Range.Start + 1,
		EndLine:   max(meta.Range.End, meta.Range.Start+1),
		Tags:      meta.Tags,
		Children:  NodeViews(meta.Children),
	}

	switch typed := node.(type) {
	case *doctree.Heading:
		view.Level = typed.Level
		view.Content = typed.Content.Text()
	case *doctree.Paragraph:
		view.Content = typed.Content.Text()
	case *doctree.OrderedList:
		view.InitialValue = typed.InitialValue
		view.ListType = string(typed.Type)
	case *doctree.UnorderedList:
		view.InitialValue = typed.InitialValue
		view.ListType = string(typed.Type)
	case *doctree.Raw:
		closed := typed.Closed
		view.Name = typed.Name
		view.Closed = &closed
		view.Lines = typed.Lines
		if typed.Form != doctree.RawElement {
			view.Form = typed.Form.String()
		}
		for _, attr := range typed.Attributes {
			view.Attributes = append(view.Attributes, AttributeView{Key: attr.Key, Value: attr.Value})
		}
	case *doctree.Quote, *doctree.Empty:
	}

	return view
}
