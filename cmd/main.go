// Package main provides the API to manage profiles, jars and the allowance ledger.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/threejars/ledger/cmd/httpserver"
	"github.com/threejars/ledger/internal/changefeed"
	"github.com/threejars/ledger/internal/middleware"
	"github.com/threejars/ledger/pkg/configpkg"
	"github.com/threejars/ledger/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	if err := dbpkg.RunMigrations(config.DBSource, config.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("cannot run migrations")
	}

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	feed, err := changefeed.New(config.DBSource, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot listen for jar changes")
	}

	go func() {
		err := feed.Run(context.Background(), func(profileID string) {
			logger.Info().Str("profile_id", profileID).Msg("jar state changed")
		})
		if err != nil {
			logger.Error().Err(err).Msg("changefeed stopped")
		}
	}()

	logger.Info().Msg("JAR LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
