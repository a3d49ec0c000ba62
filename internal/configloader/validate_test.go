package configloader

import (
	"strings"
	"testing"

	"github.com/yaklabco/textright/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          *config.Config
		wantField    string
		wantWarnings int
	}{
		{name: "nil", cfg: nil},
		{name: "defaults", cfg: config.NewConfig()},
		{name: "empty", cfg: &config.Config{}},
		{name: "bad format", cfg: &config.Config{Format: "sarif"}, wantField: "format"},
		{name: "bad backend", cfg: &config.Config{Backend: "asciidoc"}, wantField: "backend"},
		{name: "bad color", cfg: &config.Config{Color: "rainbow"}, wantField: "color"},
		{name: "negative jobs", cfg: &config.Config{Jobs: -1}, wantField: "jobs"},
		{name: "negative depth", cfg: &config.Config{MaxDepth: -2}, wantField: "max_depth"},
		{name: "bare dot", cfg: &config.Config{Extensions: []string{"."}}, wantField: "extensions[0]"},
		{name: "missing dot", cfg: &config.Config{Extensions: []string{".tr", "md"}}, wantField: "extensions[1]"},
		{name: "bad include", cfg: &config.Config{Include: []string{"docs/[a"}}, wantField: "include[0]"},
		{name: "bad ignore", cfg: &config.Config{Ignore: []string{"ok/**", "{a"}}, wantField: "ignore[1]"},
		{name: "duplicate extension", cfg: &config.Config{Extensions: []string{".md", ".MD"}}, wantWarnings: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := Validate(testCase.cfg)

			if testCase.wantField == "" {
				if !result.Valid() {
					t.Fatalf("unexpected errors: %v", result.AllMessages())
				}
			} else {
				if result.Valid() {
					t.Fatalf("expected error on %s", testCase.wantField)
				}
				if result.Errors[0].Field != testCase.wantField {
					t.Errorf("expected field %q, got %q", testCase.wantField, result.Errors[0].Field)
				}
			}

			if len(result.Warnings) != testCase.wantWarnings {
				t.Errorf("expected %d warnings, got %v", testCase.wantWarnings, result.Warnings)
			}
			if result.HasWarnings() != (testCase.wantWarnings > 0) {
				t.Error("HasWarnings disagrees with Warnings")
			}
		})
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	result := ValidateWithFile(&config.Config{Jobs: -1, Extensions: []string{".a", ".a"}}, "cfg.yml")

	messages := result.AllMessages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", messages)
	}
	if messages[0] != "error: cfg.yml: jobs: jobs must be >= 0 (0 means auto)" {
		t.Errorf("unexpected error message %q", messages[0])
	}
	if !strings.HasPrefix(messages[1], "warning: cfg.yml: extensions[1]: ") {
		t.Errorf("unexpected warning message %q", messages[1])
	}
}

func TestValidationErrorLine(t *testing.T) {
	t.Parallel()

	err := &ValidationError{FilePath: "a.yml", Line: 3, Field: "x", Message: "bad"}
	if got := err.Error(); got != "a.yml:3: x: bad" {
		t.Errorf("Error() = %q", got)
	}
}
