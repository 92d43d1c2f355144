package main

import (
	"fmt"

	"github.com/swiftlens/swiftlens/pkg/swiftparse"
)

// runRoots implements the roots subcommand. It lists root candidates in
// presentation order, best guess first.
func runRoots(args []string) error {
	demo := false
	var paths []string
	for _, arg := range args {
		switch arg {
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

	roots := swiftparse.RootCandidates(swiftparse.ExtractDeclarations(source))
	if len(roots) == 0 {
		return fmt.Errorf("no view declarations found")
	}
	for _, name := range roots {
		fmt.Println(name)
	}
	return nil
}
