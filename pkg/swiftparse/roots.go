package swiftparse

import (
	"sort"
	"strings"
)

// entryTerms are name fragments that suggest a declaration is the
// application's entry view. Matched case-insensitively as substrings.
var entryTerms = []string{"content", "main", "root", "app"}

// RootCandidates orders the declaration names for presentation as
// root-selection choices. Names that look like entry points sort before
// the rest; each group is lexicographic. Ranking is a display
// convenience only and has no effect on parsing.
func RootCandidates(decls DeclarationMap) []string {
	if len(decls) == 0 {
		return nil
	}

	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool {
		return looksLikeEntry(names[i]) && !looksLikeEntry(names[j])
	})
	return names
}

func looksLikeEntry(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range entryTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
