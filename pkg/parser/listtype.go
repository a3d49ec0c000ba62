package parser

import (
	"strings"

	"github.com/yaklabco/textright/pkg/doctree"
)

// OrderedListType infers the numbering style from a literal list marker.
//
// Letter markers always map to a roman type, and only a single lowercase
// letter counts as lowercase: "i" and "a" are lower-roman while "iv" and "ab"
// are upper-roman. An empty prefix is upper-roman too. The line grammar only
// admits digits and '#', so these branches are reachable through this
// function alone.
func OrderedListType(prefix string) doctree.OrderedListType {
	switch {
	case consistsOf(prefix, "#"):
		return doctree.OrderedAny
	case consistsOf(prefix, "0123456789"):
		if prefix[0] == '0' {
			return doctree.OrderedDecimalLeadingZero
		}
		return doctree.OrderedDecimal
	case mainlyLowercase(prefix):
		return doctree.OrderedRomanLower
	default:
		return doctree.OrderedRomanUpper
	}
}

// UnorderedListType maps a bullet to its list type. Anything other than '*'
// and '+' is a dash.
func UnorderedListType(bullet string) doctree.UnorderedListType {
	switch bullet {
	case "*":
		return doctree.UnorderedAsterisk
	case "+":
		return doctree.UnorderedPlus
	default:
		return doctree.UnorderedDash
	}
}

// consistsOf reports whether text is non-empty and made only of chars.
func consistsOf(text, chars string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !strings.ContainsRune(chars, r) {
			return false
		}
	}
	return true
}

// mainlyLowercase counts a lowercase letter only when it is the whole prefix.
func mainlyLowercase(prefix string) bool {
	lower := 0
	if len(prefix) == 1 && prefix[0] >= 'a' && prefix[0] <= 'z' {
		lower = 1
	}
	if len(prefix) == 0 {
		return false
	}
	return float64(lower)/float64(len(prefix)) > 0.5
}
