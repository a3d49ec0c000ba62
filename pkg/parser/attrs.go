package parser

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/textright/pkg/doctree"
)

// ParseAttributes parses the attribute text of a raw start tag, such as
// ` class="note" id=x`. Keys are lowercased and entity references in values
// are decoded. Text that holds no attributes yields nil.
func ParseAttributes(text string) []doctree.Attribute {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokenizer := html.NewTokenizer(strings.NewReader("<raw " + text + ">"))
	switch tokenizer.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return nil
	}

	token := tokenizer.Token()
	if len(token.Attr) == 0 {
		return nil
	}

	attrs := make([]doctree.Attribute, 0, len(token.Attr))
	for _, attr := range token.Attr {
		attrs = append(attrs, doctree.Attribute{Key: attr.Key, Value: attr.Val})
	}

	return attrs
}
