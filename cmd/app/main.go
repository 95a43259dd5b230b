package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("insights dashboard: wiring failed: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("insights dashboard: stopped with error: %v", err)
	}
}
