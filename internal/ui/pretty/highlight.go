package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/yaklabco/textright/pkg/langdetect"
)

// highlightTheme has good contrast on dark backgrounds.
const highlightTheme = "monokai"

// Highlighter applies syntax highlighting to raw block content.
// A nil Highlighter returns content unchanged.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a Highlighter, or nil when color is disabled.
func NewHighlighter(colorEnabled bool) *Highlighter {
	if !colorEnabled {
		return nil
	}

	style := styles.Get(highlightTheme)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{style: style}
}

// Highlight colors code written in language. Unknown languages and plain
// text are returned unchanged.
func (h *Highlighter) Highlight(language, code string) string {
	if h == nil || language == "" || language == langdetect.Text {
		return code
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return code
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	formatter := &foregroundFormatter{style: h.style}
	if err := formatter.Format(&buf, iterator); err != nil {
		return code
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// foregroundFormatter is a Chroma formatter that applies only foreground
// colors, so highlighted lines sit on the terminal's own background.
type foregroundFormatter struct {
	style *chroma.Style
}

func (f *foregroundFormatter) Format(w io.Writer, iterator chroma.Iterator) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		if token.Value == "" {
			continue
		}

		entry := f.style.Get(token.Type)

		var codes []string
		if entry.Colour.IsSet() {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		}
		if entry.Bold == chroma.Yes {
			codes = append(codes, "1")
		}
		if entry.Italic == chroma.Yes {
			codes = append(codes, "3")
		}
		if entry.Underline == chroma.Yes {
			codes = append(codes, "4")
		}

		if len(codes) == 0 {
			if _, err := io.WriteString(w, token.Value); err != nil {
				return fmt.Errorf("write token: %w", err)
			}
			continue
		}

		// Escapes must not span lines or the tree prefix picks up the color.
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return fmt.Errorf("write token: %w", err)
				}
			}
			if part == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), part); err != nil {
				return fmt.Errorf("write token: %w", err)
			}
		}
	}
	return nil
}
