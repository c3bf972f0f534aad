package main

import (
	"context"
	"time"

	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/migration"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("migration: connect to postgres")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := migration.Apply(ctx, conn); err != nil {
		log.L.WithError(err).Fatal("migration: schema not applied")
	}
	log.L.Infof("migration: schema applied in %v", time.Since(startTime))

	if cfg.Bootstrap.AdminEmail == "" {
		return
	}

	created, err := migration.SeedAdmin(ctx, conn, migration.AdminUser{
		Name:     "Admin",
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
		RoleID:   middleware.RoleAdmin,
	})
	if err != nil {
		log.L.WithError(err).Fatal("migration: admin not created")
	}
	if created {
		log.L.Infof("migration: admin %s created", cfg.Bootstrap.AdminEmail)
	} else {
		log.L.Infof("migration: admin %s already exists", cfg.Bootstrap.AdminEmail)
	}
}
