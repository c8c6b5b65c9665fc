// Package main is the entry point for the jackgen CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/usestring/jackgen/internal/commands"
	"github.com/usestring/jackgen/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, config.Load(), os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
