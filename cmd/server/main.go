package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"productmgmt/internal/config"
	"productmgmt/internal/infra"
	"productmgmt/internal/router"
)

//	@title			Product Management API
//	@version		1.0
//	@description	CRUD API for products and categories.
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	infra.SetupLogger(cfg.LogLevel, cfg.LogFormat, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db *gorm.DB
	if cfg.StoreDriver == config.StorePostgres {
		db, err = infra.NewDatabase(cfg.DatabaseURL, infra.PoolConfig{
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		if cfg.AutoMigrate {
			if err := infra.RunMigrations(db); err != nil {
				log.Fatal().Err(err).Msg("failed to migrate schema")
			}
		}
	} else {
		log.Warn().Msg("using in-memory store, data is lost on exit")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			// the limiter falls back to process memory while redis is down
			log.Error().Err(err).Msg("redis unavailable at startup, rate limiting stays local")
		} else {
			defer rdb.Close()
		}
	}

	r := router.New(ctx, cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("store", cfg.StoreDriver).Msgf("product API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	log.Info().Msg("server exited")
}
