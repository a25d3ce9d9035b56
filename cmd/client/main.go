package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hub-channel/internal/adapter"
	"github.com/MKhiriev/go-hub-channel/internal/client"
	"github.com/MKhiriev/go-hub-channel/internal/config"
	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-hub-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.LocalStore.Close()

	var meta adapter.MetaClient
	if cfg.Adapter.HTTPAddress != "" {
		meta, err = adapter.NewHTTPMetaClient(cfg.Adapter, cfg.App.UserAgent, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create meta client")
		}
	}

	app, err := client.NewApp(cfg, localStorage, meta, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
