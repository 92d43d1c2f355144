package swiftparse

// BuildTree parses the rendering body of the named declaration into a
// view-node tree and inlines every nested reference to another known
// declaration. It returns ok == false when the name is unknown or its
// body yields no parsable content; callers should present that as an
// empty state, not a fault.
func BuildTree(decls DeclarationMap, root string) (*Node, bool) {
	body, ok := decls[root]
	if !ok {
		return nil, false
	}
	children := parseBlock(body)
	if len(children) == 0 {
		return nil, false
	}

	node := &Node{Kind: KindCustom, Name: root, Children: children}

	// The root itself is on the path: a body that references its own
	// declaration must hit the recursion guard.
	inProgress := map[string]bool{root: true}
	for _, child := range children {
		resolveCustomViews(child, decls, inProgress)
	}
	return node, true
}

// resolveCustomViews walks the tree and replaces leaf nodes whose name
// matches a known declaration with that declaration's parsed body.
//
// The guard set holds the declaration names currently being inlined on
// the path from the root to n. A name met again while in progress is
// left as a leaf and tagged with the recursion marker instead of being
// expanded, which bounds the tree even for self-referencing or mutually
// recursive declarations. The set is path-scoped: the same declaration
// inlines independently on unrelated sibling branches.
func resolveCustomViews(n *Node, decls DeclarationMap, inProgress map[string]bool) {
	if n.Kind == KindView && len(n.Children) == 0 && !isReservedName(n.Name) {
		if body, ok := decls[n.Name]; ok {
			if inProgress[n.Name] {
				n.Kind = KindCustom
				n.Modifiers = append(n.Modifiers, recursionMarker)
				return
			}
			n.Kind = KindCustom
			n.Children = parseBlock(body)
			inProgress[n.Name] = true
			for _, child := range n.Children {
				resolveCustomViews(child, decls, inProgress)
			}
			delete(inProgress, n.Name)
			return
		}
	}
	for _, child := range n.Children {
		resolveCustomViews(child, decls, inProgress)
	}
}
