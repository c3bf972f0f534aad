package main

import (
	"context"

	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("log level set to %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	orderLineRepo := repository.NewOrderLineRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	settingsRepo := repository.NewReportSettingsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	reporter := reporting.NewService(settingsRepo, orderLineRepo, catalogRepo, cfg)

	downloadTokenSweepService := scheduler.NewDownloadTokenSweepService(authenticator, cfg)
	if err := downloadTokenSweepService.Start(ctx); err != nil {
		log.L.WithError(err).Error("scheduler: download token sweep not started")
	} else {
		log.L.Info("scheduler: download token sweep started")
	}

	server, err := api.New(cfg, reporter, authenticator, downloadTokenSweepService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("postgres: connection failed")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("postgres: ping failed")
	}

	log.L.Info("postgres: connected")
	return conn
}
