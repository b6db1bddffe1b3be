package main

import (
	"context"
	"os"

	"github.com/amaumene/responder/internal/app"
	"github.com/amaumene/responder/internal/config"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	log.SetLevel(cfg.LogLevel)

	log.WithField("version", cfg.Version).Info("starting responder")

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.WithError(err).Fatal("responder stopped")
	}
}
