package main

import (
	"fmt"
	"os"

	"mdo-portal/internal/config"
	"mdo-portal/internal/database"
	"mdo-portal/internal/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	cfg := config.Load()

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("не удалось подключиться к базе данных")
	}

	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("не удалось заполнить демо-данные")
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("запуск сервера")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
