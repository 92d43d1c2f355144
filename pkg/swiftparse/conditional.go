package swiftparse

import "strings"

// parseConditional parses a conditional construct starting at the `if`
// keyword at start. It returns the If node and the index just past the
// fully consumed construct, including any else / else-if chain.
//
// The node always carries a Then branch child and at most one terminal
// Else branch; an `else if` nests another If node inside the Else branch.
func parseConditional(text string, start int) (*Node, int) {
	i := start + len("if")

	// Condition text runs to the next top-level opening brace.
	condStart := i
	depth := 0
scan:
	for i < len(text) {
		if j, ok := skipOpaque(text, i); ok {
			i = j
			continue
		}
		switch text[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case '{':
			if depth == 0 {
				break scan
			}
		}
		i++
	}
	node := &Node{
		Kind: KindIf,
		Name: strings.TrimSpace("if " + strings.TrimSpace(text[condStart:i])),
	}
	if i >= len(text) {
		// Never found a block; nothing more to consume.
		return node, len(text)
	}

	closeIdx, ok := matchDelimiter(text, i)
	if !ok {
		// Unterminated then-block: take the remainder and stop.
		node.Children = append(node.Children, branchNode("Then", text[i+1:]))
		return node, len(text)
	}
	node.Children = append(node.Children, branchNode("Then", text[i+1:closeIdx]))
	i = closeIdx + 1

	j := skipSpacesAndComments(text, i)
	if j >= len(text) || !hasKeywordAt(text, j, "else") {
		return node, i
	}
	j = skipSpacesAndComments(text, j+len("else"))

	if j < len(text) && hasKeywordAt(text, j, "if") {
		nested, next := parseConditional(text, j)
		elseBranch := &Node{Kind: KindBranch, Name: "Else", Children: []*Node{nested}}
		node.Children = append(node.Children, elseBranch)
		return node, next
	}
	if j < len(text) && text[j] == '{' {
		closeIdx, ok := matchDelimiter(text, j)
		if !ok {
			node.Children = append(node.Children, branchNode("Else", text[j+1:]))
			return node, len(text)
		}
		node.Children = append(node.Children, branchNode("Else", text[j+1:closeIdx]))
		return node, closeIdx + 1
	}

	// `else` with nothing parseable after it: leave it for the caller.
	return node, i
}

func branchNode(name, body string) *Node {
	return &Node{Kind: KindBranch, Name: name, Children: parseBlock(body)}
}
