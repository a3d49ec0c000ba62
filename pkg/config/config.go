// Package config defines core configuration types for textright.
// These types are pure data structures; loading and merging live in the CLI.
package config

import (
	"github.com/yaklabco/textright/pkg/parser"
	"github.com/yaklabco/textright/pkg/runner"
)

// OutputFormat specifies the output format for parse results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatHTML    OutputFormat = "html"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatHTML, FormatSummary:
		return true
	default:
		return false
	}
}

// Backend selects the parser used for input files.
type Backend string

const (
	// BackendTextRight parses TextRight markup.
	BackendTextRight Backend = "textright"
	// BackendCommonMark parses CommonMark with goldmark.
	BackendCommonMark Backend = "commonmark"
	// BackendGFM parses GitHub Flavored Markdown with goldmark.
	BackendGFM Backend = "gfm"
)

// IsValid returns true if the backend is known.
func (b Backend) IsValid() bool {
	switch b {
	case BackendTextRight, BackendCommonMark, BackendGFM:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for textright.
type Config struct {
	// DisallowSimpleParagraphs stops indented lines inside a paragraph from
	// starting a list item.
	DisallowSimpleParagraphs bool `yaml:"disallow_simple_paragraphs"`

	// MaxDepth limits nesting of list items and quotes. 0 means the default.
	MaxDepth int `yaml:"max_depth"`

	// Extensions lists the file extensions treated as documents.
	Extensions []string `yaml:"extensions"`

	// Include restricts discovery to matching glob patterns.
	Include []string `yaml:"include"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// FollowSymlinks traverses symlinked directories during discovery.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Backend selects the parser.
	Backend Backend `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Color controls colorized output.
	Color ColorMode `yaml:"-"`

	// OutputDir receives one rendered file per input when set.
	OutputDir string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		MaxDepth:   parser.DefaultMaxDepth,
		Extensions: runner.DefaultExtensions(),
		Format:     FormatText,
		Backend:    BackendTextRight,
		Color:      ColorAuto,
		Jobs:       0, // 0 means use NumCPU
	}
}

// ParserOptions returns the options for the TextRight parser.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		DisallowSimpleParagraphs: c.DisallowSimpleParagraphs,
		MaxDepth:                 c.MaxDepth,
	}
}

// RunnerOptions returns discovery and worker options for paths.
func (c *Config) RunnerOptions(paths []string, workDir string) runner.Options {
	return runner.Options{
		Paths:          paths,
		WorkingDir:     workDir,
		Extensions:     c.Extensions,
		IncludeGlobs:   c.Include,
		ExcludeGlobs:   c.Ignore,
		FollowSymlinks: c.FollowSymlinks,
		Jobs:           c.Jobs,
	}
}
