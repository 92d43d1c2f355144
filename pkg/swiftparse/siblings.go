package swiftparse

import "strings"

// parseBlock splits the raw text inside a body block into its top-level
// sibling expressions and parses each into a Node. Conditionals are
// detected first and consume their whole if / else chain; everything
// else is cut at the first newline at zero nesting depth that is not
// followed by a modifier-chain continuation dot.
func parseBlock(text string) []*Node {
	var nodes []*Node
	i := 0
	for i < len(text) {
		i = skipSeparators(text, i)
		if i >= len(text) {
			break
		}
		if hasKeywordAt(text, i, "if") {
			node, next := parseConditional(text, i)
			nodes = append(nodes, node)
			i = next
			continue
		}
		expr, next := nextExpression(text, i)
		i = next
		if expr = strings.TrimSpace(expr); expr != "" {
			nodes = append(nodes, parseExpression(expr))
		}
	}
	return nodes
}

// skipSeparators advances past whitespace, commas and comments between
// sibling expressions.
func skipSeparators(text string, i int) int {
	for i < len(text) {
		j := skipSpacesAndComments(text, i)
		if j < len(text) && text[j] == ',' {
			i = j + 1
			continue
		}
		if j == i {
			break
		}
		i = j
	}
	return i
}

// nextExpression consumes one sibling expression starting at i and
// returns its text plus the index to resume from. The expression ends at
// the first newline at zero nesting depth whose next non-whitespace
// character is not a dot; dot continuation keeps multi-line modifier
// chains attached to their expression.
func nextExpression(text string, i int) (string, int) {
	start := i
	depth := 0
	for i < len(text) {
		if j, ok := skipOpaque(text, i); ok {
			i = j
			continue
		}
		switch text[i] {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			if depth > 0 {
				depth--
			}
		case '\n':
			if depth == 0 {
				j := skipSpacesAndComments(text, i+1)
				if j >= len(text) || text[j] != '.' {
					return text[start:i], i + 1
				}
				i = j
				continue
			}
		}
		i++
	}
	return text[start:], len(text)
}
