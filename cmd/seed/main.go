// Command seed creates the STUDENT table in the configured database file
// and fills it with sample rows.
package main

import (
	"context"
	"flag"

	"intellisql/config"
	"intellisql/logger"
	"intellisql/service"
)

func main() {
	cfg := config.GetConfig()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	dbPath := flag.String("db", cfg.DBPath, "path of the SQLite database file to seed")
	flag.Parse()

	if err := service.SeedStudents(context.Background(), *dbPath, service.DefaultStudents); err != nil {
		logger.Fatal().Err(err).Str("db_path", *dbPath).Msg("Failed to seed database")
	}

	logger.Info().Str("db_path", *dbPath).Int("rows", len(service.DefaultStudents)).Msg("Seeded STUDENT table")
}
