//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// smokeFixtures holds the sample documents used by Smoke.
const smokeFixtures = "internal/cli/testdata/site"

// releasePlatforms are the GOOS/GOARCH pairs release binaries are built for.
var releasePlatforms = []string{
	"linux/amd64", "linux/arm64",
	"darwin/amd64", "darwin/arm64",
	"windows/amd64",
}

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"s":   Smoke,
	"fmt": Lint.Fmt,
	"bp":  Bench.Parser,
	"fz":  Fuzz.Default,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
	Fuzz  st.Namespace
)

// ---------------------------------------------------------------------------
// Top-level targets
// ---------------------------------------------------------------------------

// Build compiles the textright binary with version info.
// Skips recompilation when source files have not changed.
func Build() error {
	rebuild, err := target.Dir("bin/textright", "cmd/", "pkg/", "internal/", "go.mod")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/textright is up to date")
		return nil
	}
	fmt.Println("Building textright...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/textright", "./cmd/textright")
}

// Check formats, lints and tests the module.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs textright to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing textright...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/textright")
}

// Smoke builds the binary and runs it over the CLI fixtures in every output
// format.
func Smoke() error {
	st.Deps(Build)
	for _, format := range []string{"text", "json", "yaml", "html", "summary"} {
		fmt.Printf("  parse --format %s\n", format)
		if err := sh.Run("bin/textright", "parse", "--format", format, smokeFixtures); err != nil {
			return fmt.Errorf("smoke %s: %w", format, err)
		}
	}
	return sh.Run("bin/textright", "render", filepath.Join(smokeFixtures, "index.tr"))
}

// ---------------------------------------------------------------------------
// Test namespace
// ---------------------------------------------------------------------------

// Default runs all tests with race detection and writes coverage.out.
// TEST_FLAGS adds extra go test flags, such as -short.
func (Test) Default() error {
	fmt.Println("Running tests...")
	args := []string{"tool", "gotestsum", "-f", "pkgname-and-test-fails", "--", "-race"}
	args = append(args, strings.Fields(os.Getenv("TEST_FLAGS"))...)
	args = append(args, "-coverprofile=coverage.out", "./...")
	return sh.RunV("go", args...)
}

// Cover prints per-function coverage from the last test run.
func (Test) Cover() error {
	if _, err := os.Stat("coverage.out"); errors.Is(err, fs.ErrNotExist) {
		st.Deps(Test.Default)
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// ---------------------------------------------------------------------------
// Lint namespace
// ---------------------------------------------------------------------------

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck verifies code formatting without modifying files.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	fmt.Println("✓ Code formatting OK")
	return nil
}

// ---------------------------------------------------------------------------
// CI namespace
// ---------------------------------------------------------------------------

// Gate runs the checks a change must pass before merging.
func (CI) Gate() error {
	st.SerialDeps(Lint.FmtCheck, CI.Lint, Test.Default, Fuzz.Seed, CI.Cross)
	fmt.Println("✓ CI gate passed")
	return nil
}

// Lint runs golangci-lint without auto-fix.
func (CI) Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Cross builds the binary for each release platform.
func (CI) Cross() error {
	for _, platform := range releasePlatforms {
		goos, goarch, _ := strings.Cut(platform, "/")
		fmt.Printf("  Building %s...\n", platform)
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, "./cmd/textright"); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Bench namespace
// ---------------------------------------------------------------------------

// Default runs Go benchmarks.
func (Bench) Default() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-bench=.", "-benchmem",
		"./...",
	)
}

// Parser runs only the parser benchmarks with allocation counts.
func (Bench) Parser() error {
	fmt.Println("Running parser benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/parser/...", "./pkg/lineparse/...")
}

// ---------------------------------------------------------------------------
// Fuzz namespace
// ---------------------------------------------------------------------------

// fuzzTargets lists every fuzz test and the package that holds it.
var fuzzTargets = []struct{ name, pkg string }{
	{"FuzzParse", "./pkg/parser"},
	{"FuzzParse", "./pkg/parser/goldmark"},
	{"FuzzClassify", "./pkg/lineparse"},
	{"FuzzWriteAtomic", "./pkg/fsutil"},
}

// Default runs every fuzz target for FUZZ_TIME (default 30s) each.
func (Fuzz) Default() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZ_TIME"), "30s")
	for _, ft := range fuzzTargets {
		fmt.Printf("Fuzzing %s in %s for %s...\n", ft.name, ft.pkg, fuzzTime)
		if err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+ft.name+"$", "-fuzztime="+fuzzTime, ft.pkg); err != nil {
			return fmt.Errorf("fuzz %s: %w", ft.name, err)
		}
	}
	return nil
}

// Seed runs the fuzz corpora as regular tests without generating inputs.
func (Fuzz) Seed() error {
	fmt.Println("Running fuzz seed corpora...")
	for _, ft := range fuzzTargets {
		if err := sh.RunV("go", "test", "-run=^"+ft.name+"$", ft.pkg); err != nil {
			return fmt.Errorf("fuzz seeds %s: %w", ft.name, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers (unexported, not targets)
// ---------------------------------------------------------------------------

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date,
	)
}
