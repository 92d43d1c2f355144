// Package swiftparse turns SwiftUI-style declarative source text into a
// typed tree of view nodes without compiling it.
//
// It is a heuristic structural parser, not a grammar for the full language:
// it recognizes a common, representative subset using regular-expression
// token matching and balanced-delimiter scanning that is careful to skip
// string literals and comments. It performs no type checking and never
// evaluates expressions.
//
// The package exposes three operations:
//
//	decls := swiftparse.ExtractDeclarations(source)
//	roots := swiftparse.RootCandidates(decls)
//	tree, ok := swiftparse.BuildTree(decls, roots[0])
//
// All functions are pure over their inputs and hold no package-level
// mutable state, so they are safe to call concurrently on independent
// inputs.
package swiftparse
