package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"oroshop/internal/config"
	"oroshop/internal/infra/db"
	"oroshop/internal/infra/event"
	"oroshop/internal/logging"
	"oroshop/internal/server"
	"oroshop/internal/usecase"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, os.Stdout)
	if cfg.GoEnv == "dev" {
		logger = logging.NewConsole(cfg.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	//ブローカーが無ければイベントは送らない
	var events usecase.EventPublisher = usecase.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		pub, err := event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("kafka publisher")
		}
		defer pub.Close()
		events = pub
	}

	e := server.New(cfg, logger, gormDB, events)

	if err := server.Start(ctx, e, ":"+cfg.Port, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server stopped")
}
