package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tastebook/admin-api/internal/api"
	mongodb "github.com/tastebook/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tastebook/admin-api/internal/infrastructure/db/redis"
	"github.com/tastebook/admin-api/internal/infrastructure/storage"
	"github.com/tastebook/admin-api/internal/pkg/config"
	"github.com/tastebook/admin-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	pictures, err := storage.NewLocalStore(cfg.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads dir unavailable")
	}

	e := api.NewRouter(db, rdb, cfg, log, pictures)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := mongodb.NewRecipeRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := mongodb.NewBlogRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	return mongodb.NewCommentRepository(db).EnsureIndexes(indexCtx)
}
