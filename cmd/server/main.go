package main

import (
	"context"
	"log"

	"github.com/rcnapps/ordinand/internal/server"
	"github.com/rcnapps/ordinand/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
