package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"oroshop/internal/config"
	infraauth "oroshop/internal/infra/auth"
	"oroshop/internal/infra/db"
	infraRepo "oroshop/internal/infra/repository"
	"oroshop/internal/logging"
	"oroshop/internal/seed"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	statusOnly := flag.Bool("status", false, "print row counts per table and exit")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewConsole(cfg.LogLevel)
	ctx := logger.WithContext(context.Background())

	gormDB, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}

	if !*statusOnly {
		seeder := seed.NewSeeder(
			infraRepo.NewCategoryGormRepository(gormDB),
			infraRepo.NewProductGormRepository(gormDB),
			infraRepo.NewUserGormRepository(gormDB),
			infraauth.NewBcryptPasswordHasher(cfg.BcryptCost),
			logger,
		)
		if err := seeder.Run(ctx); err != nil {
			logger.Fatal().Err(err).Msg("seed")
		}
		logger.Info().Msg("seed completed")
	}

	counts, err := seed.Status(ctx, gormDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("status")
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tROWS")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Table, c.Count)
	}
	_ = tw.Flush()
}
