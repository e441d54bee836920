package main

import (
	"database/sql"

	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/go-petr/account-ledger/cmd/httpserver"
	"github.com/go-petr/account-ledger/internal/middleware"
	"github.com/go-petr/account-ledger/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := conn.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("cannot reach db")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
