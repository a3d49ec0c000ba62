package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string

	// Full writes every setting; otherwise optional settings are commented out.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON(NewConfig())
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	comment := "# "
	if opts.Full {
		comment = ""
	}

	defaults := NewConfig()

	buf.WriteString("# Stop indented lines inside a paragraph from starting list items\n")
	fmt.Fprintf(&buf, "%sdisallow_simple_paragraphs: %t\n\n", comment, defaults.DisallowSimpleParagraphs)

	buf.WriteString("# Maximum nesting of list items and quotes\n")
	fmt.Fprintf(&buf, "%smax_depth: %d\n\n", comment, defaults.MaxDepth)

	buf.WriteString("# File extensions treated as documents\n")
	fmt.Fprintf(&buf, "%sextensions:\n", comment)
	for _, ext := range defaults.Extensions {
		fmt.Fprintf(&buf, "%s  - %q\n", comment, ext)
	}
	buf.WriteString("\n")

	buf.WriteString("# Only parse files matching these glob patterns\n")
	buf.WriteString("# include:\n#   - \"docs/**\"\n\n")

	buf.WriteString("# File patterns to ignore (glob patterns)\n")
	fmt.Fprintf(&buf, "%signore:\n", comment)
	fmt.Fprintf(&buf, "%s  - \"vendor/**\"\n", comment)
	fmt.Fprintf(&buf, "%s  - \"node_modules/**\"\n\n", comment)

	buf.WriteString("# Traverse symlinked directories\n")
	fmt.Fprintf(&buf, "%sfollow_symlinks: %t\n", comment, defaults.FollowSymlinks)

	return buf.Bytes(), nil
}

// templateToJSON renders the defaults as indented JSON using the YAML keys.
func templateToJSON(cfg *Config) ([]byte, error) {
	yamlBytes, err := cfg.ToYAML()
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(yamlBytes, &generic); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(generic, "", strings.Repeat(" ", YAMLIndent()))
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# textright configuration
# See: https://github.com/yaklabco/textright`
}
