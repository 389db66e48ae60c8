package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/config"
	"github.com/amriteshrai/portfolio-backend/internal/auth"
	"github.com/amriteshrai/portfolio-backend/internal/bootstrap"
	"github.com/amriteshrai/portfolio-backend/internal/contact"
	"github.com/amriteshrai/portfolio-backend/internal/logging"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Init(logging.Options{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	defer func() { _ = db.Client().Disconnect(ctx) }()

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	verifier, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		logger.Fatal("init firebase", zap.Error(err))
	}

	mailer := contact.NewSMTPMailer(cfg.Mail)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AdminEmail:     cfg.Admin.Email,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DB:             db,
		Verifier:       verifier,
		Mailer:         mailer,
		Log:            logger,
	})

	logger.Info("API running", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
