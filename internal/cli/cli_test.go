package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textright/internal/cli"
	"github.com/yaklabco/textright/internal/configloader"
	"github.com/yaklabco/textright/pkg/fsutil"
	"github.com/yaklabco/textright/pkg/parser"
	"github.com/yaklabco/textright/pkg/reporter"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content to name under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// emptyConfig writes an explicit config file so that tests do not depend on
// configuration found around the working directory.
func emptyConfig(t *testing.T) string {
	t.Helper()

	return writeFile(t, t.TempDir(), ".textright.yml", "max_depth: 64\n")
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	require.NotNil(t, cmd)
	assert.Equal(t, "textright", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"parse", "render", "init", "env", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestParseCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	parseCmd, _, err := cmd.Find([]string{"parse"})
	require.NoError(t, err)

	for _, name := range []string{
		"format", "backend", "disallow-simple-paragraphs", "max-depth", "jobs",
		"extensions", "include", "ignore", "follow-symlinks", "output-dir",
		"show-raw", "compact", "no-summary", "stats", "sort",
	} {
		assert.NotNil(t, parseCmd.Flags().Lookup(name), "flag %q", name)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: cli.ExitSuccess},
		{name: "parse failures", err: fmt.Errorf("run: %w", cli.ErrParseFailures), want: cli.ExitParseFailures},
		{name: "usage", err: fmt.Errorf("%w: bad flag", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "config", err: fmt.Errorf("%w: broken", cli.ErrConfig), want: cli.ExitConfigError},
		{name: "validation", err: &configloader.ValidationError{Field: "jobs", Message: "bad"}, want: cli.ExitConfigError},
		{name: "not found", err: fmt.Errorf("read: %w", fsutil.ErrNotFound), want: cli.ExitIOError},
		{name: "too large", err: fsutil.ErrTooLarge, want: cli.ExitIOError},
		{name: "path error", err: &fs.PathError{Op: "stat", Path: "x", Err: fs.ErrNotExist}, want: cli.ExitIOError},
		{name: "internal", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, cli.ExitCode(testCase.err))
		})
	}
}

func TestParse_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.tr", "# Title\n\n1. first\n")

	stdout, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--color", "never", "--format", "json", doc)
	require.NoError(t, err)

	var output reporter.DocumentOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.Len(t, output.Files, 1)

	nodes := output.Files[0].Nodes
	require.Len(t, nodes, 2)
	assert.Equal(t, "Heading", nodes[0].Kind)
	assert.Equal(t, "OrderedList", nodes[1].Kind)
	assert.Equal(t, "1", nodes[1].InitialValue)
	assert.Equal(t, "decimal", nodes[1].ListType)
}

func TestParse_Text(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.tr", "# Title\n")

	stdout, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--color", "never", doc)
	require.NoError(t, err)

	assert.Contains(t, stdout, `Heading h1 "Title" L1`)
	assert.Contains(t, stdout, "1 file parsed, 1 line, 1 node")
}

func TestParse_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.tr", "a\n")
	writeFile(t, dir, "sub/b.txt", "b\n")
	writeFile(t, dir, "skip.html", "<p>\n")

	stdout, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--format", "json", dir)
	require.NoError(t, err)

	var output reporter.DocumentOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.Equal(t, 2, output.Summary.FilesParsed)
}

func TestParse_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "deep.tr", "> > > x\n")

	stdout, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--color", "never", "--max-depth", "1", doc)
	require.ErrorIs(t, err, cli.ErrParseFailures)
	assert.Equal(t, cli.ExitParseFailures, cli.ExitCode(err))
	assert.Contains(t, stdout, "nesting depth limit exceeded")
}

func TestParse_MissingPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.tr")

	_, _, err := execute(t, "", "parse", "--config", emptyConfig(t), missing)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestParse_InvalidFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.tr", "x\n")

	_, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--format", "xml", doc)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestParse_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, t.TempDir(), "bad.yml", "max_depth: -1\n")
	doc := writeFile(t, t.TempDir(), "doc.tr", "x\n")

	_, _, err := execute(t, "", "parse", "--config", cfgPath, doc)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "bad.yml")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "parse", "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestParse_OutputDir(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	// The working directory is the package directory, so inputs must live
	// below it to map into the output directory.
	src, err := filepath.Abs(filepath.Join("testdata", "site"))
	require.NoError(t, err)

	stdout, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--color", "never",
		"--output-dir", outDir, src)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 files parsed")

	index, err := os.ReadFile(filepath.Join(outDir, "testdata", "site", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<H1>Welcome</H1>\n<P>Hello &amp; goodbye</P>\n", string(index))

	nested, err := os.ReadFile(filepath.Join(outDir, "testdata", "site", "notes", "list.html"))
	require.NoError(t, err)
	assert.Equal(t, "<UL><LI><P>one</P></LI></UL>\n<UL><LI><P>two</P></LI></UL>\n", string(nested))
}

func TestParse_GFMBackend(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, t.TempDir(), "doc.md", "# Title\n\nSome *text*.\n")

	stdout, _, err := execute(t, "", "parse", "--config", emptyConfig(t), "--backend", "gfm", "--format", "json", doc)
	require.NoError(t, err)

	var output reporter.DocumentOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.Len(t, output.Files, 1)
	require.NotEmpty(t, output.Files[0].Nodes)
	assert.Equal(t, "Heading", output.Files[0].Nodes[0].Kind)
}

func TestRender_File(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, t.TempDir(), "doc.anything", "## Sub\n\n> quoted\n")

	stdout, _, err := execute(t, "", "render", "--config", emptyConfig(t), doc)
	require.NoError(t, err)
	assert.Equal(t, "<H2>Sub</H2>\n<QUOTE><P>quoted</P></QUOTE>\n", stdout)
}

func TestRender_Stdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "<div class=\"x\">\n<b>raw</b>\n</div>\n", "render", "--config", emptyConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"x\"><b>raw</b></div>\n", stdout)
}

func TestRender_OutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "out", "doc.html")

	stdout, _, err := execute(t, "####### Deep\n", "render", "--config", emptyConfig(t), "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<H6>Deep</H6>\n", string(content))
}

func TestRender_ParseError(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, t.TempDir(), "deep.tr", "> > > x\n")

	_, _, err := execute(t, "", "render", "--config", emptyConfig(t), "--max-depth", "1", doc)
	require.Error(t, err)
	require.ErrorIs(t, err, parser.ErrStackLimit)
	assert.Equal(t, 1, strings.Count(err.Error(), "parse "+doc), err.Error())
}

func TestRender_TooManyArgs(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "a.tr", "b.tr")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yml")

	_, _, err := execute(t, "", "init", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "max_depth")

	_, _, err = execute(t, "", "init", "--output", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, _, err = execute(t, "", "init", "--output", path, "--force")
	require.NoError(t, err)
}

func TestInit_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "init", "--format", "toml", "--output", filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestEnv(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "env", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Environment Variables")
	assert.Contains(t, stdout, "TEXTRIGHT_MAX_DEPTH")
}

func TestEnv_JSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "env", "--format", "json")
	require.NoError(t, err)

	var vars []configloader.EnvVar
	require.NoError(t, json.Unmarshal([]byte(stdout), &vars))
	assert.Len(t, vars, len(configloader.ListEnvVars()))
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
	assert.Contains(t, stdout, "test-commit")
}
