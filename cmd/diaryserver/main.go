package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/config"
	httpHandler "github.com/MKhiriev/go-diary-keeper/internal/handler/http"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/server"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.Server.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close(ctx)

	// asset analysis is an optional enrichment: without a configured analysis
	// service the diary server still accepts uploads
	var analysis adapter.AnalysisAdapter
	if cfg.Adapter.AIServiceURL != "" {
		analysis, err = adapter.NewHTTPAnalysisAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating analysis adapter")
		}
	}

	services := service.NewServices(storages, cfg, analysis, log)

	handler := httpHandler.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler.InitDiary(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
