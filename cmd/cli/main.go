package main

import (
	"context"
	"log"
	"os"

	"github.com/localaddons/addons/internal/buildinfo"
	"github.com/localaddons/addons/internal/client/cli"
	"github.com/localaddons/addons/internal/client/config"
	"github.com/localaddons/addons/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
