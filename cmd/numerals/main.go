// Package main is the numerals command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	numeralscmd "github.com/louisbranch/numerals.space/internal/cmd/numerals"
	"github.com/louisbranch/numerals.space/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.ExitOnError("numerals", numeralscmd.NewRootCommand(nil).ExecuteContext(ctx))
}
