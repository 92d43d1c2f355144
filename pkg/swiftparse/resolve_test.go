package swiftparse

import (
	"strings"
	"testing"
)

func TestBuildTree_InlinesCustomViews(t *testing.T) {
	decls := DeclarationMap{
		"ContentView": "\nHeaderView()\nText(\"body\")\n",
		"HeaderView":  "\nText(\"header\")\n",
	}

	tree, ok := BuildTree(decls, "ContentView")
	if !ok {
		t.Fatal("BuildTree returned absent")
	}
	if tree.Kind != KindCustom || tree.Name != "ContentView" {
		t.Fatalf("root = %+v", tree)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(tree.Children))
	}

	header := tree.Children[0]
	if header.Kind != KindCustom {
		t.Errorf("header Kind = %q, want %q", header.Kind, KindCustom)
	}
	if len(header.Children) != 1 || header.Children[0].Name != "Text" {
		t.Errorf("header children = %+v", header.Children)
	}
}

func TestBuildTree_UnknownRoot(t *testing.T) {
	decls := DeclarationMap{"A": "Text(\"a\")"}
	if tree, ok := BuildTree(decls, "Missing"); ok || tree != nil {
		t.Errorf("BuildTree = %v, %v; want nil, false", tree, ok)
	}
}

func TestBuildTree_UnparsableBody(t *testing.T) {
	decls := DeclarationMap{"Empty": "// nothing renderable\n"}
	if tree, ok := BuildTree(decls, "Empty"); ok || tree != nil {
		t.Errorf("BuildTree = %v, %v; want nil, false", tree, ok)
	}
}

func TestBuildTree_SelfRecursion(t *testing.T) {
	decls := DeclarationMap{
		"Nested": "\nText(\"level\")\nNested()\n",
	}

	tree, ok := BuildTree(decls, "Nested")
	if !ok {
		t.Fatal("BuildTree returned absent")
	}

	markers := countMarkers(tree)
	if markers != 1 {
		t.Errorf("recursion markers = %d, want exactly 1", markers)
	}

	repeat := tree.Children[1]
	if repeat.Name != "Nested" {
		t.Fatalf("repeat occurrence = %+v", repeat)
	}
	if len(repeat.Children) != 0 {
		t.Errorf("repeat occurrence was expanded: %+v", repeat.Children)
	}
}

func TestBuildTree_MutualRecursion(t *testing.T) {
	decls := DeclarationMap{
		"A": "\nB()\n",
		"B": "\nA()\n",
	}

	tree, ok := BuildTree(decls, "A")
	if !ok {
		t.Fatal("BuildTree returned absent")
	}
	// A -> B expands, B -> A hits the guard.
	b := tree.Children[0]
	if b.Kind != KindCustom || len(b.Children) != 1 {
		t.Fatalf("B = %+v", b)
	}
	a := b.Children[0]
	if len(a.Children) != 0 || !hasMarker(a) {
		t.Errorf("inner A = %+v, want guarded leaf", a)
	}
}

func TestBuildTree_SiblingBranchesInlineIndependently(t *testing.T) {
	decls := DeclarationMap{
		"Screen": "\nPanel()\nPanel()\n",
		"Panel":  "\nText(\"panel\")\n",
	}

	tree, ok := BuildTree(decls, "Screen")
	if !ok {
		t.Fatal("BuildTree returned absent")
	}
	if len(tree.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(tree.Children))
	}
	for i, panel := range tree.Children {
		if panel.Kind != KindCustom {
			t.Errorf("panel %d Kind = %q, want %q", i, panel.Kind, KindCustom)
		}
		if len(panel.Children) != 1 {
			t.Errorf("panel %d not inlined: %+v", i, panel)
		}
		if hasMarker(panel) {
			t.Errorf("panel %d wrongly guarded", i)
		}
	}
}

func TestBuildTree_ReservedNamesNeverInlined(t *testing.T) {
	// A user declaration shadowing a framework type must not hijack
	// framework leaves.
	decls := DeclarationMap{
		"Screen": "\nText(\"plain\")\n",
		"Text":   "\nSpacer()\n",
	}

	tree, ok := BuildTree(decls, "Screen")
	if !ok {
		t.Fatal("BuildTree returned absent")
	}
	leaf := tree.Children[0]
	if leaf.Kind != KindView || len(leaf.Children) != 0 {
		t.Errorf("Text leaf was inlined: %+v", leaf)
	}
}

func TestBuildTree_InlinesInsideBranches(t *testing.T) {
	decls := DeclarationMap{
		"Screen": "\nif compact {\n    Row()\n} else {\n    Row()\n}\n",
		"Row":    "\nText(\"row\")\n",
	}

	tree, ok := BuildTree(decls, "Screen")
	if !ok {
		t.Fatal("BuildTree returned absent")
	}
	cond := tree.Children[0]
	if cond.Kind != KindIf || len(cond.Children) != 2 {
		t.Fatalf("conditional = %+v", cond)
	}
	for _, branch := range cond.Children {
		if len(branch.Children) != 1 {
			t.Fatalf("branch = %+v", branch)
		}
		row := branch.Children[0]
		if row.Kind != KindCustom || len(row.Children) != 1 {
			t.Errorf("row not inlined in branch %s: %+v", branch.Name, row)
		}
	}
}

func countMarkers(n *Node) int {
	count := 0
	if hasMarker(n) {
		count++
	}
	for _, c := range n.Children {
		count += countMarkers(c)
	}
	return count
}

func hasMarker(n *Node) bool {
	for _, m := range n.Modifiers {
		if strings.Contains(m, "recursive") {
			return true
		}
	}
	return false
}
