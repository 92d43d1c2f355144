package swiftparse

import "regexp"

// DeclarationMap maps a view declaration's name to the raw text of its
// rendering body (the content between the braces of `var body`). It is
// built once per parse and never mutated afterwards.
type DeclarationMap map[string]string

// structRe matches `struct Name: ... View ... {` where the conformance
// list mentions View. The trailing brace is the struct body's opening
// delimiter.
var structRe = regexp.MustCompile(`\bstruct\s+([A-Za-z_][A-Za-z0-9_]*)\s*:[^{]*\bView\b[^{]*\{`)

// bodyRe matches the rendering property `var body: some View {` inside a
// struct body. The trailing brace opens the rendering block.
var bodyRe = regexp.MustCompile(`\bvar\s+body\s*:\s*some\s+View\s*\{`)

// ExtractDeclarations scans source for view declarations and returns the
// name -> raw rendering body mapping. A struct that conforms to View but
// has no locatable `var body` block is silently omitted; it may be a
// helper type the heuristics cannot see into. No declarations at all
// yields an empty map, not an error.
func ExtractDeclarations(source string) DeclarationMap {
	decls := DeclarationMap{}

	for _, m := range structRe.FindAllStringSubmatchIndex(source, -1) {
		name := source[m[2]:m[3]]

		// The struct's opening brace is the last byte of the match.
		open := m[1] - 1
		closeIdx, ok := matchDelimiter(source, open)
		if !ok {
			continue
		}
		structBody := source[open+1 : closeIdx]

		bm := bodyRe.FindStringIndex(structBody)
		if bm == nil {
			continue
		}
		bodyOpen := bm[1] - 1
		bodyClose, ok := matchDelimiter(structBody, bodyOpen)
		if !ok {
			continue
		}
		decls[name] = structBody[bodyOpen+1 : bodyClose]
	}

	return decls
}
