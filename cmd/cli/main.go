package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/raidtracker/internal/buildinfo"
	"github.com/dmitrijs2005/raidtracker/internal/cli"
	"github.com/dmitrijs2005/raidtracker/internal/config"
	"github.com/dmitrijs2005/raidtracker/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
