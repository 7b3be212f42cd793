package main

import (
	"os"

	"github.com/unify-apps/calendar-timeline/internal/app"
	log "github.com/sirupsen/logrus"
)

func configureLogging() {
	log.SetLevel(log.InfoLevel)
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			log.WithField("LOG_LEVEL", level).Fatal(err)
		}
		log.SetLevel(parsed)
	}
}

func main() {
	configureLogging()

	application, err := app.NewApplication()
	if err != nil {
		log.WithError(err).Fatal("failed to initialize application")
	}
	log.Info("starting calendar-timeline layout service")
	if err := application.Run(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
