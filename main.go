// @title LearnBotX API
// @version 1.0
// @description Backend server for the LearnBotX learning platform.

// @contact.name API Support
// @contact.email support@learnbotx.dev

// @license.name MIT

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"learnbotx_backend/internal/app"
	"learnbotx_backend/internal/config"
	"learnbotx_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
