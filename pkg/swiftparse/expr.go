package swiftparse

import (
	"regexp"
	"strings"
)

// nameRe matches the leading identifier or member chain of an expression.
var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*`)

// identRe matches a single identifier (no dots).
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

// labelRe splits a labeled argument into label and value.
var labelRe = regexp.MustCompile(`(?s)^([A-Za-z_][A-Za-z0-9_]*)\s*:\s*(.*)$`)

// contentRe finds the opening brace of a labeled content: closure.
var contentRe = regexp.MustCompile(`^content\s*:\s*\{`)

// Prop values longer than maxPropLen runes are cut to truncatedLen runes
// plus the ellipsis so every stored prop stays display-sized.
const (
	maxPropLen   = 60
	truncatedLen = 57
	ellipsis     = "…"
)

// parseExpression decomposes one trimmed view-construction expression
// into a Node. Custom-view names are not resolved here; that happens in
// a later pass over the finished tree.
func parseExpression(expr string) *Node {
	node := &Node{Kind: KindView, Name: placeholderName}

	name := nameRe.FindString(expr)
	i := 0
	if name != "" {
		node.Name = name
		i = len(name)
	}
	switch {
	case name == "ForEach":
		node.Kind = KindForEach
	case containerNames[name]:
		node.Kind = KindContainer
	}

	var childSrc string
	haveChildren := false

	// Argument list.
	j := skipSpaces(expr, i)
	if j < len(expr) && expr[j] == '(' {
		closeIdx, ok := matchDelimiter(expr, j)
		if !ok {
			// Arguments never balance: keep the bare node rather than
			// aborting the whole parse.
			return node
		}
		for _, arg := range splitArgs(expr[j+1 : closeIdx]) {
			if node.Kind == KindForEach && !haveChildren {
				if body, ok := contentClosure(arg); ok {
					childSrc = stripClosureBinding(body)
					haveChildren = true
					continue
				}
			}
			node.Props = append(node.Props, normalizeProp(arg))
		}
		i = closeIdx + 1
	}

	// Trailing-closure body. Takes precedence over a content: argument.
	j = skipSpaces(expr, i)
	if j < len(expr) && expr[j] == '{' {
		closeIdx, ok := matchDelimiter(expr, j)
		if ok {
			childSrc = expr[j+1 : closeIdx]
			i = closeIdx + 1
		} else {
			// Unterminated block: treat the remainder as the body.
			childSrc = expr[j+1:]
			i = len(expr)
		}
		if node.Kind == KindForEach {
			childSrc = stripClosureBinding(childSrc)
		}
		haveChildren = true
	}

	if haveChildren {
		node.Children = parseBlock(childSrc)
	}

	node.Modifiers = parseModifierChain(expr, i)
	return node
}

// splitArgs splits the inside of an argument list on top-level commas.
// Nested delimiters, strings and comments never split.
func splitArgs(args string) []string {
	var out []string
	depth := 0
	start := 0
	i := 0
	for i < len(args) {
		if j, ok := skipOpaque(args, i); ok {
			i = j
			continue
		}
		switch args[i] {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if piece := strings.TrimSpace(args[start:i]); piece != "" {
					out = append(out, piece)
				}
				start = i + 1
			}
		}
		i++
	}
	if piece := strings.TrimSpace(args[start:]); piece != "" {
		out = append(out, piece)
	}
	return out
}

// contentClosure extracts the body of a `content: { ... }` argument.
func contentClosure(arg string) (string, bool) {
	m := contentRe.FindStringIndex(arg)
	if m == nil {
		return "", false
	}
	open := m[1] - 1
	closeIdx, ok := matchDelimiter(arg, open)
	if !ok {
		return arg[open+1:], true
	}
	return arg[open+1 : closeIdx], true
}

// stripClosureBinding discards the closure-parameter preamble of a
// trailing-closure body: everything up to a top-level `in` keyword on
// the first content line. Binding names are not content. A body with no
// such preamble is returned unchanged.
func stripClosureBinding(body string) string {
	depth := 0
	i := skipSpaces(body, 0)
	for i < len(body) {
		if j, ok := skipOpaque(body, i); ok {
			i = j
			continue
		}
		switch body[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '\n':
			if depth == 0 {
				return body
			}
		default:
			if depth == 0 && hasKeywordAt(body, i, "in") {
				return body[i+2:]
			}
		}
		i++
	}
	return body
}

// normalizeProp trims an argument, normalizes `label: value` spacing and
// truncates oversized values.
func normalizeProp(arg string) string {
	arg = strings.TrimSpace(arg)
	if m := labelRe.FindStringSubmatch(arg); m != nil {
		arg = m[1] + ": " + strings.TrimSpace(m[2])
	}
	return truncateValue(arg)
}

// truncateValue cuts s to truncatedLen runes plus an ellipsis when it
// exceeds maxPropLen runes.
func truncateValue(s string) string {
	runes := []rune(s)
	if len(runes) <= maxPropLen {
		return s
	}
	return string(runes[:truncatedLen]) + ellipsis
}

// parseModifierChain scans the tail of an expression for a left-to-right
// chain of dotted calls and returns them normalized (`name` or
// `name(args)`). A modifier's own trailing closure is skipped so the
// chain continues past it. Scanning stops at the first thing that is not
// part of a chain; the remainder is left unparsed.
func parseModifierChain(expr string, i int) []string {
	var mods []string
	for {
		i = skipSpacesAndComments(expr, i)
		if i >= len(expr) || expr[i] != '.' {
			return mods
		}
		i++
		name := identRe.FindString(expr[i:])
		if name == "" {
			return mods
		}
		i += len(name)
		entry := name

		j := skipSpaces(expr, i)
		if j < len(expr) && expr[j] == '(' {
			closeIdx, ok := matchDelimiter(expr, j)
			if !ok {
				mods = append(mods, entry)
				return mods
			}
			entry = name + "(" + strings.TrimSpace(expr[j+1:closeIdx]) + ")"
			i = closeIdx + 1
		}

		// Trailing closure attached to the modifier (.overlay { ... }).
		j = skipSpacesAndComments(expr, i)
		if j < len(expr) && expr[j] == '{' {
			closeIdx, ok := matchDelimiter(expr, j)
			if !ok {
				mods = append(mods, entry)
				return mods
			}
			i = closeIdx + 1
		}

		mods = append(mods, entry)
	}
}
