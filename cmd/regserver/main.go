package main

import (
	"context"
	"log"
	"os"

	"github.com/localaddons/addons/internal/buildinfo"
	"github.com/localaddons/addons/internal/logging"
	"github.com/localaddons/addons/internal/server"
	"github.com/localaddons/addons/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
