// Package main provides the swiftlens CLI: paste or pipe SwiftUI-style
// source and inspect the resulting view hierarchy without compiling it.
//
// Usage:
//
//	swiftlens tree [file]     Print the view hierarchy of a source file
//	swiftlens roots [file]    List root candidates found in a source file
//	swiftlens serve           Start the HTTP playground
//	swiftlens help            Show help
//
// Examples:
//
//	swiftlens tree ContentView.swift
//	cat ContentView.swift | swiftlens tree
//	swiftlens tree -root DetailView ContentView.swift
//	swiftlens tree -demo
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `swiftlens - view-hierarchy inspector for SwiftUI-style source

Usage:
  swiftlens <command> [options] [file]

Commands:
  tree        Print the view hierarchy of a source file (or stdin)
  roots       List root candidates found in a source file (or stdin)
  serve       Start the HTTP playground
  version     Print version information
  help        Show this help message

Options for tree:
  -root NAME  Build the tree for NAME instead of the best candidate
  -json       Emit the tree as JSON instead of a text drawing
  -demo       Use the built-in demo source instead of a file

Examples:
  swiftlens tree ContentView.swift        Inspect a file
  cat view.swift | swiftlens tree         Inspect stdin
  swiftlens tree -root Sidebar app.swift  Pick a specific root
  swiftlens tree -json app.swift          JSON output for tooling
  swiftlens roots app.swift               See what could be a root
  swiftlens serve                         Start the web playground
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "tree":
		if err := runTree(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "roots":
		if err := runRoots(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("swiftlens version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// readSource resolves the input for tree/roots: the -demo sample, a file
// argument, or stdin when neither is given.
func readSource(paths []string, demo bool) (string, error) {
	if demo {
		return demoSource(), nil
	}
	if len(paths) > 1 {
		return "", fmt.Errorf("expected at most one file, got %d", len(paths))
	}
	if len(paths) == 1 {
		data, err := os.ReadFile(paths[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", paths[0], err)
		}
		return string(data), nil
	}
	data, err := readAllStdin()
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}
