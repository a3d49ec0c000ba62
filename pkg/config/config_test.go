package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textright/pkg/config"
	"github.com/yaklabco/textright/pkg/parser"
	"github.com/yaklabco/textright/pkg/runner"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, runner.DefaultExtensions(), cfg.Extensions)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.BackendTextRight, cfg.Backend)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestParserOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.DisallowSimpleParagraphs = true
	cfg.MaxDepth = 5

	assert.Equal(t, parser.Options{DisallowSimpleParagraphs: true, MaxDepth: 5}, cfg.ParserOptions())
}

func TestRunnerOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Include = []string{"docs/**"}
	cfg.Ignore = []string{"vendor/**"}
	cfg.FollowSymlinks = true
	cfg.Jobs = 3

	opts := cfg.RunnerOptions([]string{"a"}, "/work")
	assert.Equal(t, []string{"a"}, opts.Paths)
	assert.Equal(t, "/work", opts.WorkingDir)
	assert.Equal(t, cfg.Extensions, opts.Extensions)
	assert.Equal(t, []string{"docs/**"}, opts.IncludeGlobs)
	assert.Equal(t, []string{"vendor/**"}, opts.ExcludeGlobs)
	assert.True(t, opts.FollowSymlinks)
	assert.Equal(t, 3, opts.Jobs)
}

func TestEnumsValid(t *testing.T) {
	t.Parallel()

	for _, format := range []config.OutputFormat{
		config.FormatText, config.FormatJSON, config.FormatYAML, config.FormatHTML, config.FormatSummary,
	} {
		assert.True(t, format.IsValid(), format)
	}
	assert.False(t, config.OutputFormat("sarif").IsValid())

	for _, backend := range []config.Backend{config.BackendTextRight, config.BackendCommonMark, config.BackendGFM} {
		assert.True(t, backend.IsValid(), backend)
	}
	assert.False(t, config.Backend("asciidoc").IsValid())

	for _, mode := range []config.ColorMode{config.ColorAuto, config.ColorAlways, config.ColorNever} {
		assert.True(t, mode.IsValid(), mode)
	}
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	minimal, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(minimal), "# textright configuration")
	assert.Contains(t, string(minimal), "# max_depth: 64")

	parsed, err := config.FromYAML(minimal)
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.MaxDepth)

	full, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)
	parsed, err = config.FromYAML(full)
	require.NoError(t, err)
	assert.Equal(t, 64, parsed.MaxDepth)
	assert.Equal(t, []string{".tr", ".txt", ".md"}, parsed.Extensions)
	assert.Equal(t, []string{"vendor/**", "node_modules/**"}, parsed.Ignore)

	jsonTemplate, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
	require.NoError(t, err)
	assert.Contains(t, string(jsonTemplate), `"max_depth": 64`)
}
