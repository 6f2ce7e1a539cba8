package main

import (
	"context"
	"log"

	"github.com/ivlasenko/bookvault/internal/server"
	"github.com/ivlasenko/bookvault/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
