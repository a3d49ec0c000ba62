package configloader

import (
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/textright/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEXTRIGHT_DISALLOW_SIMPLE_PARAGRAPHS", "true")
	t.Setenv("TEXTRIGHT_FOLLOW_SYMLINKS", "1")
	t.Setenv("TEXTRIGHT_JOBS", "4")
	t.Setenv("TEXTRIGHT_FORMAT", "yaml")
	t.Setenv("TEXTRIGHT_BACKEND", "commonmark")
	t.Setenv("TEXTRIGHT_COLOR", "never")
	t.Setenv("TEXTRIGHT_OUTPUT_DIR", "out")
	t.Setenv("TEXTRIGHT_INCLUDE", "docs/**,,notes/*")
	t.Setenv("TEXTRIGHT_IGNORE", "vendor/**")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if !cfg.DisallowSimpleParagraphs || !cfg.FollowSymlinks {
		t.Error("expected boolean fields set from env")
	}
	if cfg.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", cfg.Jobs)
	}
	if cfg.Format != config.FormatYAML || cfg.Backend != config.BackendCommonMark || cfg.Color != config.ColorNever {
		t.Errorf("unexpected enums: %q %q %q", cfg.Format, cfg.Backend, cfg.Color)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected output dir out, got %q", cfg.OutputDir)
	}
	if !slices.Equal(cfg.Include, []string{"docs/**", "notes/*"}) {
		t.Errorf("unexpected include %v", cfg.Include)
	}
	if !slices.Equal(cfg.Ignore, []string{"vendor/**"}) {
		t.Errorf("unexpected ignore %v", cfg.Ignore)
	}
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bool", key: "TEXTRIGHT_FOLLOW_SYMLINKS", value: "maybe"},
		{name: "int", key: "TEXTRIGHT_MAX_DEPTH", value: "deep"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.key, testCase.value)

			err := LoadFromEnv(config.NewConfig())
			if err == nil || !strings.Contains(err.Error(), testCase.key) {
				t.Fatalf("expected error naming %s, got %v", testCase.key, err)
			}
		})
	}
}

func TestLoadFromEnv_Nil(t *testing.T) {
	t.Parallel()

	if err := LoadFromEnv(nil); err != nil {
		t.Fatalf("LoadFromEnv(nil) error = %v", err)
	}
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "empty", value: "", want: nil},
		{name: "single", value: ".tr", want: []string{".tr"}},
		{name: "trimmed", value: " a , b ", want: []string{"a", "b"}},
		{name: "blank parts", value: "a,,b,", want: []string{"a", "b"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := parseSliceValue(testCase.value)
			if !slices.Equal(got, testCase.want) {
				t.Errorf("parseSliceValue(%q) = %v, want %v", testCase.value, got, testCase.want)
			}
		})
	}
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	if got := GetEnvVarName("max_depth"); got != "TEXTRIGHT_MAX_DEPTH" {
		t.Errorf("GetEnvVarName(max_depth) = %q", got)
	}
	if got := GetEnvVarName("unknown"); got != "" {
		t.Errorf("GetEnvVarName(unknown) = %q", got)
	}

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d env vars, got %d", len(envMappings), len(vars))
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Name >= vars[i].Name {
			t.Errorf("env vars not sorted: %q before %q", vars[i-1].Name, vars[i].Name)
		}
	}
}
