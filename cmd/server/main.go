package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rsked-radio/rcald/internal/config"
	"github.com/rsked-radio/rcald/internal/db"
	"github.com/rsked-radio/rcald/internal/library"
	"github.com/rsked-radio/rcald/internal/notify"
	"github.com/rsked-radio/rcald/internal/redis"
	"github.com/rsked-radio/rcald/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	archived := false
	if cfg.DatabaseURL != "" {
		if err := db.Init(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("db init")
		}
		if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("db migrate")
		}
		archived = true
	}

	if cfg.RedisAddress != "" {
		redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	var notifier *notify.Publisher
	if cfg.MQTTBrokerURL != "" {
		notifier, err = notify.NewPublisher(cfg.MQTTBrokerURL, "rcald")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect")
		}
		defer notifier.Close()
	}

	files := store.NewFileStore(cfg.ScheduleDir, cfg.BackupKeep)
	catalog := library.NewLoader(cfg.CatalogPath)

	r := gin.Default()
	RegisterRoutes(r, files, catalog, archived, notifier)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
