package swiftparse

import "strings"

// This file holds the delimiter-scanning primitives everything else is
// built on. They all take their context (text, offset) as explicit
// parameters and keep no state between calls, so each one can be tested
// in isolation.
//
// The cardinal rule: string literals and comments are opaque. A brace or
// parenthesis inside "..." or // ... must never change nesting depth, so
// every scanner checks for an opaque span before it looks at the byte.

// skipOpaque checks whether an opaque span (string literal or comment)
// begins at i. If so it returns the index just past the span and true;
// otherwise it returns i and false.
func skipOpaque(text string, i int) (int, bool) {
	if i >= len(text) {
		return i, false
	}
	switch {
	case strings.HasPrefix(text[i:], `"""`):
		return skipTripleString(text, i), true
	case text[i] == '"':
		return skipString(text, i), true
	case strings.HasPrefix(text[i:], "//"):
		return skipLineComment(text, i), true
	case strings.HasPrefix(text[i:], "/*"):
		return skipBlockComment(text, i), true
	}
	return i, false
}

// skipString returns the index just past a single-line string literal
// starting at i (which must point at the opening quote). Backslash
// escapes are honored. An unterminated literal ends at the newline or at
// end of text.
func skipString(text string, i int) int {
	i++ // opening quote
	for i < len(text) {
		switch text[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		case '\n':
			return i
		default:
			i++
		}
	}
	return len(text)
}

// skipTripleString returns the index just past a triple-quoted string
// starting at i. Content runs until the next unescaped `"""`.
func skipTripleString(text string, i int) int {
	i += 3 // opening """
	for i < len(text) {
		if text[i] == '\\' {
			i += 2
			continue
		}
		if strings.HasPrefix(text[i:], `"""`) {
			return i + 3
		}
		i++
	}
	return len(text)
}

// skipLineComment returns the index of the newline ending a // comment
// starting at i, or end of text. The newline itself is not consumed so
// callers that split on newlines still see it.
func skipLineComment(text string, i int) int {
	for i < len(text) && text[i] != '\n' {
		i++
	}
	return i
}

// skipBlockComment returns the index just past the */ closing a block
// comment starting at i, or end of text if it never closes.
func skipBlockComment(text string, i int) int {
	i += 2 // opening /*
	for i < len(text) {
		if strings.HasPrefix(text[i:], "*/") {
			return i + 2
		}
		i++
	}
	return len(text)
}

// matchDelimiter returns the index of the delimiter closing the one that
// opens at open. It understands (), {} and []. Returns false if the text
// ends before balance is restored, or if open does not point at an
// opening delimiter.
func matchDelimiter(text string, open int) (int, bool) {
	if open < 0 || open >= len(text) {
		return 0, false
	}
	var closing byte
	opening := text[open]
	switch opening {
	case '(':
		closing = ')'
	case '{':
		closing = '}'
	case '[':
		closing = ']'
	default:
		return 0, false
	}

	depth := 0
	i := open
	for i < len(text) {
		if j, ok := skipOpaque(text, i); ok {
			i = j
			continue
		}
		switch text[i] {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

// isWordByte reports whether b can appear inside an identifier.
func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// hasKeywordAt reports whether kw appears at i on a word boundary on
// both sides.
func hasKeywordAt(text string, i int, kw string) bool {
	if !strings.HasPrefix(text[i:], kw) {
		return false
	}
	if i > 0 && isWordByte(text[i-1]) {
		return false
	}
	end := i + len(kw)
	return end >= len(text) || !isWordByte(text[end])
}

// skipSpaces advances past whitespace (including newlines) starting at i.
func skipSpaces(text string, i int) int {
	for i < len(text) && isSpaceByte(text[i]) {
		i++
	}
	return i
}

// skipSpacesAndComments advances past whitespace and whole comments.
func skipSpacesAndComments(text string, i int) int {
	for i < len(text) {
		if isSpaceByte(text[i]) {
			i++
			continue
		}
		if strings.HasPrefix(text[i:], "//") {
			i = skipLineComment(text, i)
			continue
		}
		if strings.HasPrefix(text[i:], "/*") {
			i = skipBlockComment(text, i)
			continue
		}
		break
	}
	return i
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
