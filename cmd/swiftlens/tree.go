package main

import (
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"

	"github.com/swiftlens/swiftlens/internal/example"
	"github.com/swiftlens/swiftlens/internal/render"
	"github.com/swiftlens/swiftlens/pkg/swiftparse"
)

// runTree implements the tree subcommand.
func runTree(args []string) error {
	var (
		root     string
		asJSON   bool
		demo     bool
		paths    []string
		skipNext bool
	)
	for i, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		switch arg {
		case "-root", "--root":
			if i+1 >= len(args) {
				return fmt.Errorf("-root requires a name")
			}
			root = args[i+1]
			skipNext = true
		case "-json", "--json":
			asJSON = true
		case "-demo", "--demo":
			demo = true
		default:
			paths = append(paths, arg)
		}
	}

	source, err := readSource(paths, demo)
	if err != nil {
		return err
	}

	decls := swiftparse.ExtractDeclarations(source)
	roots := swiftparse.RootCandidates(decls)
	if len(roots) == 0 {
		return fmt.Errorf("no view declarations found")
	}

	if root == "" {
		root = roots[0]
	}
	tree, ok := swiftparse.BuildTree(decls, root)
	if !ok {
		return fmt.Errorf("%s has no parsable rendering body", root)
	}

	if asJSON {
		enc := gojson.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}
	fmt.Print(render.Tree(tree))
	return nil
}

// demoSource returns the built-in sample used with -demo.
func demoSource() string {
	return example.Source
}

// readAllStdin reads stdin to EOF.
func readAllStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
