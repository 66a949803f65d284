package main

import (
	"time"

	"intellisql/ai"
	"intellisql/cache"
	"intellisql/config"
	"intellisql/handlers"
	"intellisql/logger"
	"intellisql/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	logger.Configure(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Cannot start IntelliSQL")
	}

	gin.SetMode(cfg.GinMode)

	// Initialize Gemini AI client
	aiService, err := ai.New(cfg.GeminiAPIKey, cfg.ModelName, cfg.GeminiAPIBase)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Gemini")
	}
	defer aiService.Close()

	// The database is opened per query, so this only validates the path.
	sqlService, err := service.NewSQLiteService(cfg.DBPath, cfg.DBReadOnly)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize SQLite service")
	}

	h := handlers.New(aiService, sqlService, cache.New(30*time.Second), aiService.ModelName())

	r, err := handlers.NewRouter(h)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build router")
	}

	logger.Info().
		Str("port", cfg.Port).
		Str("db_path", cfg.DBPath).
		Bool("db_read_only", cfg.DBReadOnly).
		Str("model", cfg.ModelName).
		Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
