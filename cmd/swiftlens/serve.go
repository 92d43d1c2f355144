package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/swiftlens/swiftlens/internal/server"
)

// runServe implements the serve subcommand: it starts the HTTP
// playground and blocks until interrupted.
func runServe(args []string) error {
	cfg := server.LoadConfig()
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-addr", "--addr":
			if i+1 >= len(args) {
				return fmt.Errorf("-addr requires an address")
			}
			cfg.Addr = args[i+1]
			i++
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg).Run(ctx)
}
