// Package main is the entry point of anikit.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/anisan-cli/anikit/cmd"
	"github.com/anisan-cli/anikit/config"
	"github.com/anisan-cli/anikit/log"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

func main() {
	// .env is optional and never overrides variables already set.
	_ = godotenv.Load()

	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Execute(ctx)
}
