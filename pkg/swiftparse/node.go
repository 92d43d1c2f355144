package swiftparse

// Kind classifies the structural role of a Node in the view tree.
type Kind string

const (
	// KindView is a plain view expression (Text, Image, a bare member
	// reference, or anything not otherwise classified).
	KindView Kind = "view"
	// KindContainer is a known layout construct (VStack, List, ...).
	KindContainer Kind = "container"
	// KindForEach is a ForEach construct; its children come from the
	// closure body with the binding preamble stripped.
	KindForEach Kind = "foreach"
	// KindIf is a conditional; its children are Branch nodes.
	KindIf Kind = "if"
	// KindBranch is the Then or Else arm of a conditional.
	KindBranch Kind = "branch"
	// KindCustom is a reference to a user declaration that has been
	// inlined by the resolver.
	KindCustom Kind = "custom"
)

// Node is one element of the parsed view hierarchy. Trees are plain
// values: once returned by BuildTree they are never mutated by this
// package again.
type Node struct {
	Kind      Kind     `json:"kind"`
	Name      string   `json:"name"`
	Props     []string `json:"props,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Children  []*Node  `json:"children,omitempty"`
}

// recursionMarker is appended to the modifier list of a node that refers
// back to a declaration already being inlined on the current path.
const recursionMarker = "recursive()"

// placeholderName is used when an expression yields no readable name.
const placeholderName = "Unknown"

// containerNames is the fixed set of layout constructs classified as
// KindContainer. Anything else with a trailing block still gets children,
// it just keeps KindView.
var containerNames = map[string]bool{
	"VStack":          true,
	"HStack":          true,
	"ZStack":          true,
	"LazyVStack":      true,
	"LazyHStack":      true,
	"LazyVGrid":       true,
	"LazyHGrid":       true,
	"List":            true,
	"Group":           true,
	"Section":         true,
	"NavigationView":  true,
	"NavigationStack": true,
	"ScrollView":      true,
	"Form":            true,
	"TabView":         true,
	"GeometryReader":  true,
	"Grid":            true,
	"GridRow":         true,
	"HSplitView":      true,
	"VSplitView":      true,
	"ToolbarItem":     true,
	"Menu":            true,
}

// builtinNames are framework view types that must never be treated as
// user declarations by the resolver, even if the source happens to
// declare a type with the same name.
var builtinNames = map[string]bool{
	"Text":             true,
	"Image":            true,
	"Label":            true,
	"Button":           true,
	"Link":             true,
	"Spacer":           true,
	"Divider":          true,
	"Toggle":           true,
	"Slider":           true,
	"Stepper":          true,
	"Picker":           true,
	"DatePicker":       true,
	"ColorPicker":      true,
	"TextField":        true,
	"TextEditor":       true,
	"SecureField":      true,
	"ProgressView":     true,
	"Capsule":          true,
	"Circle":           true,
	"Ellipse":          true,
	"Rectangle":        true,
	"RoundedRectangle": true,
	"EmptyView":        true,
	"Color":            true,
	"ForEach":          true,
}

// isReservedName reports whether name belongs to the framework rather
// than to user code. Reserved names are never inlined.
func isReservedName(name string) bool {
	return containerNames[name] || builtinNames[name]
}
