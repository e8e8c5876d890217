package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zerowasteroad/zerowaste/internal/app"
	"github.com/zerowasteroad/zerowaste/internal/config"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.NewApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := application.Run(ctx, os.Stdout); err != nil {
		log.Error(err)
		application.Close()
		os.Exit(1)
	}
}
