// entry point to app :)
package main

import (
	"flag"

	"github.com/saeed-Underline/fidibo/config"
	"github.com/saeed-Underline/fidibo/internal/appServer"
	"github.com/saeed-Underline/fidibo/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	serve := flag.Bool("serve", false, "run periodic scrapes and serve the latest snapshot over HTTP")
	flag.Parse()

	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on process environment")
	}

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	metrics.Init()

	if *serve {
		appServer.Serve(cfg)
		return
	}

	if err := appServer.RunOnce(cfg); err != nil {
		logrus.Fatalf("Scrape run failed: %v", err)
	}
}
