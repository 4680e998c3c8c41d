package main

import (
	"log"

	"anon-upload-bot/bot"
	"anon-upload-bot/config"
	"anon-upload-bot/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	b, err := bot.New(cfg)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	defer b.Close()
	b.Run()
}
