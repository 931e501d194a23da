package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/meetscribe/meetscribe/internal/server"
	"github.com/meetscribe/meetscribe/internal/server/config"
)

func main() {

	// a missing .env file is fine; real env vars still apply
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
