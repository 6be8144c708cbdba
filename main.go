// main.go
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"legal-assistant/cmd"
	"legal-assistant/internal/data/repository"
	"legal-assistant/internal/usecase"
	"legal-assistant/internal/wire"
	"legal-assistant/pkg/database"
	"legal-assistant/pkg/inference"
	"legal-assistant/pkg/mailer"
	"legal-assistant/pkg/token"
	"legal-assistant/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if config.Auth.SessionSecret == "" || config.Auth.ActivationSecret == "" {
		log.Fatal("AUTH_SESSION_SECRET and AUTH_ACTIVATION_SECRET must be set")
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database only when the postgres backend is selected
	var db database.PgxIface
	if config.Storage.Driver == "postgres" {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
	}

	// Initialize the credential store
	repos, err := repository.NewRepository(config, db, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Make sure the protected admin exists before serving
	if err := usecase.EnsureDefaultAdmin(context.Background(), repos, config, logger); err != nil {
		logger.Fatal("Failed to seed default admin", zap.Error(err))
	}

	// Outbound collaborators
	var mail mailer.Mailer = mailer.NewNopMailer()
	if config.Email.Enabled {
		mail = mailer.NewSMTPMailer(config.Email)
	}

	deps := usecase.Deps{
		Repo:       repos,
		Sessions:   token.NewIssuer(config.Auth.SessionSecret, time.Duration(config.Auth.SessionExpiryHours)*time.Hour),
		Activation: token.NewIssuer(config.Auth.ActivationSecret, time.Duration(config.Auth.ActivationExpiryHours)*time.Hour),
		Mailer:     mail,
		Inference:  inference.NewClient(config.Inference.Endpoint, config.Inference.Model, time.Duration(config.Inference.TimeoutSeconds)*time.Second),
		Config:     config,
	}

	// Wire all dependencies
	app := wire.Wiring(deps, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
