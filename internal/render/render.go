// Package render draws a parsed view-node tree as plain text for
// terminal display.
package render

import (
	"strings"

	"github.com/swiftlens/swiftlens/pkg/swiftparse"
)

// Tree renders the node and its descendants as an indented tree using
// box-drawing connectors, one node per line.
func Tree(n *swiftparse.Node) string {
	var sb strings.Builder
	writeNode(&sb, n, "", "", "")
	return sb.String()
}

func writeNode(sb *strings.Builder, n *swiftparse.Node, prefix, connector, childPrefix string) {
	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(label(n))
	sb.WriteByte('\n')

	for i, child := range n.Children {
		if i == len(n.Children)-1 {
			writeNode(sb, child, prefix+childPrefix, "└── ", "    ")
		} else {
			writeNode(sb, child, prefix+childPrefix, "├── ", "│   ")
		}
	}
}

// label formats a single node: name, props in parentheses, modifiers as
// a dot chain.
func label(n *swiftparse.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Name)
	if len(n.Props) > 0 {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(n.Props, ", "))
		sb.WriteByte(')')
	}
	for _, m := range n.Modifiers {
		sb.WriteString(" .")
		sb.WriteString(m)
	}
	return sb.String()
}
