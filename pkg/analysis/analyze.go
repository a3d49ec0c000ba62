// Package analysis computes statistics over parsed documents.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/textright/pkg/doctree"
	"github.com/yaklabco/textright/pkg/langdetect"
	"github.com/yaklabco/textright/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// RelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func RelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	kindMap   map[doctree.Kind]*KindAnalysis
	kindFiles map[doctree.Kind]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[doctree.Kind]*KindAnalysis),
		kindFiles: make(map[doctree.Kind]map[string]bool),
	}
}

func (ctx *analysisContext) getOrCreateKindAnalysis(kind doctree.Kind) *KindAnalysis {
	if _, ok := ctx.kindMap[kind]; !ok {
		ctx.kindMap[kind] = &KindAnalysis{Kind: kind.String()}
		ctx.kindFiles[kind] = make(map[string]bool)
	}
	return ctx.kindMap[kind]
}

// buildByKind constructs the ByKind slice from accumulated data.
func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass over every tree to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()
	report.Totals.Files = len(result.Files)

	for _, file := range result.Files {
		displayPath := RelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil || file.Document == nil {
			report.Totals.FilesFailed++
			if opts.IncludeFailures {
				report.Failures = append(report.Failures, failureEntry(displayPath, file.Error))
			}
			continue
		}

		report.Totals.FilesParsed++
		fa := ctx.analyzeDocument(report, displayPath, file.Document, opts)
		report.Totals.Lines += fa.Lines
		report.Totals.Nodes += fa.Nodes
		report.Totals.MaxDepth = max(report.Totals.MaxDepth, fa.MaxDepth)
		report.Totals.RawBlocks += fa.RawBlocks
		report.Totals.UnclosedRaw += fa.UnclosedRaw

		if opts.IncludeByFile {
			report.ByFile = append(report.ByFile, fa)
		}
	}

	if opts.IncludeByFile {
		sortFileAnalysis(report.ByFile, opts.SortBy, opts.SortDesc)
	}
	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}

	return report
}

func failureEntry(path string, err error) FailureEntry {
	entry := FailureEntry{FilePath: path, Message: "no document produced"}
	if err != nil {
		entry.Message = err.Error()
	}
	return entry
}

// analyzeDocument walks one tree, updating ctx and report, and returns the
// per-file statistics.
func (ctx *analysisContext) analyzeDocument(
	report *Report,
	path string,
	doc *doctree.Document,
	opts Options,
) FileAnalysis {
	fa := FileAnalysis{
		Path:  path,
		Lines: doc.LineCount(),
	}
	tags := make(map[string]bool)

	//nolint:errcheck,revive // the callback never fails
	doctree.Walk(doc.Nodes, func(node doctree.Node, depth int) error {
		fa.Nodes++
		fa.MaxDepth = max(fa.MaxDepth, depth)

		kind := node.Kind()
		ka := ctx.getOrCreateKindAnalysis(kind)
		ka.Count++
		ctx.kindFiles[kind][path] = true

		if meta := node.Meta(); len(meta.Tags) > 0 {
			report.Totals.TaggedNodes++
			for _, tag := range meta.Tags {
				tags[tag] = true
			}
		}

		switch typed := node.(type) {
		case *doctree.Heading:
			fa.Headings++
		case *doctree.Raw:
			fa.RawBlocks++
			if !typed.Closed {
				fa.UnclosedRaw++
			}
			if opts.IncludeRaw {
				report.RawBlocks = append(report.RawBlocks, rawEntry(path, typed, opts))
			}
		}
		return nil
	})

	for tag := range tags {
		fa.Tags = append(fa.Tags, tag)
	}
	slices.Sort(fa.Tags)

	return fa
}

func rawEntry(path string, raw *doctree.Raw, opts Options) RawEntry {
	entry := RawEntry{
		FilePath:  path,
		Name:      raw.Name,
		StartLine: raw.Range.Start + 1,
		Lines:     len(raw.Lines),
		Closed:    raw.Closed,
	}
	if opts.DetectLanguages {
		entry.Language = langdetect.ForRaw(raw)
	}
	return entry
}

func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(kinds, func(left, right KindAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Kind, right.Kind)
		case SortByDepth, SortByCount:
			// Kinds have no depth of their own
			result := cmp.Compare(left.Count, right.Count)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Kind, right.Kind)
			}
			return result
		default:
			return cmp.Compare(left.Kind, right.Kind)
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortByDepth:
			// Deepest first, regardless of desc
			result := cmp.Compare(right.MaxDepth, left.MaxDepth)
			if result == 0 {
				result = cmp.Compare(right.Nodes, left.Nodes)
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		case SortByCount:
			result := cmp.Compare(left.Nodes, right.Nodes)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		default:
			return cmp.Compare(left.Path, right.Path)
		}
	})
}
