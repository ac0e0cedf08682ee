package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"trek-insurance/cmd"
	"trek-insurance/internal/data/repository"
	"trek-insurance/internal/payment"
	"trek-insurance/internal/wire"
	"trek-insurance/pkg/database"
	"trek-insurance/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres keeps paid orders; without it they live in memory
	var db database.PgxIface
	if config.Database.Enabled() {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := repository.EnsureOrderSchema(ctx, db); err != nil {
			logger.Fatal("Failed to prepare database schema", zap.Error(err))
		}
		logger.Info("Database connected successfully")
	} else {
		logger.Warn("DB_HOST not set, orders are kept in memory")
	}

	// Redis keeps wizard sessions; without it they live in memory
	var rdb *database.RedisClient
	if config.Redis.Enabled() {
		rdb, err = database.InitRedis(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		logger.Info("Redis connected successfully")
	} else {
		logger.Warn("REDIS_HOST not set, sessions are kept in memory")
	}

	repos := repository.NewRepository(db, rdb, config.Session.TTL, logger)
	gateway := payment.NewSimulatedGateway(config.Payment.Delay, logger)

	app := wire.Wiring(repos, gateway, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
