// Package langdetect guesses the language held by a raw block.
//
// The tag name is consulted first: "<script>" holds JavaScript and a tag
// named after a language, like "<python>", holds that language. Otherwise the
// content is classified with go-enry and a few strong textual signals.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/textright/pkg/doctree"
)

// Text is returned when no language can be determined.
const Text = "text"

const (
	langBash       = "bash"
	langCSS        = "css"
	langDockerfile = "dockerfile"
	langGo         = "go"
	langHTML       = "html"
	langJavaScript = "javascript"
	langJSON       = "json"
	langPython     = "python"
	langRust       = "rust"
	langSQL        = "sql"
	langXML        = "xml"
	langYAML       = "yaml"
)

// classifierCandidates limits the enry classifier to languages likely to be
// embedded in a document.
//
//nolint:gochecknoglobals // read-only lookup table
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// elementLanguages maps HTML elements whose content has a fixed language.
//
//nolint:gochecknoglobals // read-only lookup table
var elementLanguages = map[atom.Atom]string{
	atom.Script: langJavaScript,
	atom.Style:  langCSS,
	atom.Svg:    langXML,
	atom.Math:   langXML,
}

// DetectRaw returns the language of a raw block with the given tag name.
func DetectRaw(name string, content []byte) string {
	lower := strings.ToLower(name)
	element := atom.Lookup([]byte(lower))

	if lang, ok := elementLanguages[element]; ok {
		return lang
	}

	switch element {
	case atom.Pre, atom.Code, atom.Textarea:
		return Detect(content)
	case 0:
		if lower == "" {
			return Detect(content)
		}
		if lang, ok := enry.GetLanguageByAlias(lower); ok {
			return normalize(lang)
		}
		return Detect(content)
	default:
		return langHTML
	}
}

// ForRaw returns the language of a raw node. A "lang" attribute takes the
// place of the tag name.
func ForRaw(raw *doctree.Raw) string {
	name := raw.Name
	if lang, ok := raw.Attr("lang"); ok && lang != "" {
		name = lang
	}
	return DetectRaw(name, []byte(raw.Content()))
}

// Detect returns the language of content, or Text when unsure.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	for _, detector := range detectors {
		if detector.match(content) {
			return detector.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

type detector struct {
	lang  string
	match func(content []byte) bool
}

// detectors run in order; the first match wins.
//
//nolint:gochecknoglobals // read-only lookup table
var detectors = []detector{
	{langGo, func(c []byte) bool { return bytes.HasPrefix(bytes.TrimSpace(c), []byte("package ")) }},
	{langPython, looksLikePython},
	{langHTML, looksLikeHTML},
	{langJSON, looksLikeJSON},
	{langDockerfile, looksLikeDockerfile},
	{langSQL, looksLikeSQL},
	{langRust, containsAny("fn main()", "println!", "let mut ")},
	{langJavaScript, containsAny("=>", "const ", "let ", "console.log")},
	{langYAML, looksLikeYAML},
}

func containsAny(needles ...string) func([]byte) bool {
	return func(content []byte) bool {
		for _, needle := range needles {
			if bytes.Contains(content, []byte(needle)) {
				return true
			}
		}
		return false
	}
}

func looksLikePython(content []byte) bool {
	text := string(content)
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	if strings.Contains(text, "__name__") || strings.Contains(text, "__main__") {
		return true
	}
	// Go uses "import (", Python never does.
	if strings.Contains(text, "import ") && !strings.Contains(text, "import (") {
		return strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ")
	}
	return false
}

func looksLikeHTML(content []byte) bool {
	lower := bytes.ToLower(bytes.TrimSpace(content))
	return containsAny("<!doctype html", "<html", "<head>", "<body>")(lower)
}

func looksLikeJSON(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeDockerfile(content []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(content), []byte("FROM ")) ||
		(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
		(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
}

func looksLikeSQL(content []byte) bool {
	upper := strings.ToUpper(strings.TrimSpace(string(content)))
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, keyword) {
			return true
		}
	}
	return false
}

// looksLikeYAML requires at least two "key: value" or "- item" lines.
func looksLikeYAML(content []byte) bool {
	count := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") && line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

// normalize converts go-enry language names to short lowercase identifiers.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
