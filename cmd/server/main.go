package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/handler"
	httphandler "github.com/MKhiriev/go-course-auth/internal/handler/http"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/server"
	"github.com/MKhiriev/go-course-auth/internal/service"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-course-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("redis", cfg.Storage.Redis.Address != "").
		Bool("smtp", cfg.Adapter.SMTP.Host != "").
		Bool("google", cfg.Adapter.Google.Enabled()).
		Bool("legacy_password_reset", cfg.App.LegacyPasswordReset).
		Str("log_level", cfg.App.LogLevel).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	adapters := service.NewAdapters(cfg.Adapter, log)
	services, err := service.NewServices(storages, adapters, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	httphandler.RegisterMetrics(prometheus.DefaultRegisterer)
	workers.RegisterMetrics(prometheus.DefaultRegisterer)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
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
