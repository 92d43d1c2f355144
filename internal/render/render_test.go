package render

import (
	"strings"
	"testing"

	"github.com/swiftlens/swiftlens/pkg/swiftparse"
)

func TestTree(t *testing.T) {
	root := &swiftparse.Node{
		Kind: swiftparse.KindCustom,
		Name: "ContentView",
		Children: []*swiftparse.Node{
			{
				Kind:      swiftparse.KindContainer,
				Name:      "VStack",
				Props:     []string{"spacing: 8"},
				Modifiers: []string{"padding()"},
				Children: []*swiftparse.Node{
					{Kind: swiftparse.KindView, Name: "Text", Props: []string{`"hi"`}},
					{Kind: swiftparse.KindView, Name: "Spacer"},
				},
			},
		},
	}

	got := Tree(root)
	want := strings.Join([]string{
		"ContentView",
		"└── VStack(spacing: 8) .padding()",
		"    ├── Text(\"hi\")",
		"    └── Spacer",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Tree() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTree_SingleLeaf(t *testing.T) {
	got := Tree(&swiftparse.Node{Kind: swiftparse.KindView, Name: "Text"})
	if got != "Text\n" {
		t.Errorf("Tree() = %q", got)
	}
}
