package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-sync/internal/adapter"
	"github.com/MKhiriev/go-form-sync/internal/client"
	"github.com/MKhiriev/go-form-sync/internal/config"
	myHTTP "github.com/MKhiriev/go-form-sync/internal/handler/http"
	"github.com/MKhiriev/go-form-sync/internal/logger"
	"github.com/MKhiriev/go-form-sync/internal/notify"
	"github.com/MKhiriev/go-form-sync/internal/server"
	"github.com/MKhiriev/go-form-sync/internal/service"
	"github.com/MKhiriev/go-form-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("formsync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	formServer, err := adapter.NewHTTPFormServer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create form server adapter")
	}

	storages, err := store.NewCatalogStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog storage")
	}
	defer storages.Close()

	notifier := notify.NewLogNotifier(log)
	services := service.NewServices(storages, formServer, notifier, cfg.Storage.FormsDir, log)

	var triggerServer server.Server
	if cfg.Trigger.Address != "" {
		router := myHTTP.NewHandler(services.Manager, log).Init()
		triggerServer, err = server.NewServer(router, cfg.Trigger, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create trigger server")
		}
	}

	app, err := client.NewApp(services, triggerServer, cfg.Workers, log)
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
