package swiftparse

import "testing"

func TestRootCandidates(t *testing.T) {
	type tc struct {
		names []string
		want  []string
	}

	tests := map[string]tc{
		"content view first": {
			names: []string{"HeaderView", "ContentView", "TitleView"},
			want:  []string{"ContentView", "HeaderView", "TitleView"},
		},
		"entry terms group before others": {
			names: []string{"Sidebar", "MainScreen", "AppRoot", "Badge"},
			want:  []string{"AppRoot", "MainScreen", "Badge", "Sidebar"},
		},
		"case insensitive match": {
			names: []string{"ZViewMAIN", "Alpha"},
			want:  []string{"ZViewMAIN", "Alpha"},
		},
		"all entries lexicographic": {
			names: []string{"RootB", "RootA"},
			want:  []string{"RootA", "RootB"},
		},
		"single": {
			names: []string{"Only"},
			want:  []string{"Only"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			decls := DeclarationMap{}
			for _, n := range tt.names {
				decls[n] = "Text(\"x\")"
			}
			got := RootCandidates(decls)
			if !equalStrings(got, tt.want) {
				t.Errorf("RootCandidates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootCandidates_Empty(t *testing.T) {
	if got := RootCandidates(DeclarationMap{}); len(got) != 0 {
		t.Errorf("RootCandidates(empty) = %v, want empty", got)
	}
}
