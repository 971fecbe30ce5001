// main.go
package main

import (
	"log"

	"coaching-booking/cmd"
	"coaching-booking/internal/data/repository"
	"coaching-booking/internal/usecase"
	"coaching-booking/internal/wire"
	"coaching-booking/pkg/database"
	"coaching-booking/pkg/mq"
	"coaching-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
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
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional event publisher
	var publisher usecase.EventPublisher
	if config.MQ.URL != "" {
		pub, err := mq.NewPublisher(config.MQ.URL, config.MQ.Exchange)
		if err != nil {
			logger.Fatal("Failed to connect to message broker", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub

		logger.Info("Message broker connected", zap.String("exchange", config.MQ.Exchange))
	} else {
		logger.Info("Message broker disabled")
	}

	// Store and services
	store := repository.NewStore(db, logger)
	service := usecase.NewService(store, publisher, config, logger)

	// Wire all dependencies
	app := wire.Wiring(service, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
