package main

import (
	"context"
	"flag"

	"fashionstore/internal/config"
	"fashionstore/internal/infra/db"
	"fashionstore/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	seed := flag.Bool("seed", false, "insert demo roles, categories, products and coupons")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("config error", zap.Error(err))
	}
	logger.Init(cfg.GoEnv)
	defer logger.Sync()
	log := logger.L()

	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	log.Info("migrate done")

	if *seed {
		if err := db.Seed(context.Background(), gormDB); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seed done")
	}
}
