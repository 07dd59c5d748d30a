package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/integrasalud/affiliate-client/internal/buildinfo"
	"github.com/integrasalud/affiliate-client/internal/client/cli"
	"github.com/integrasalud/affiliate-client/internal/client/config"
	"github.com/integrasalud/affiliate-client/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
