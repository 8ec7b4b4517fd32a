// Package app wires configuration, storage, services, and the HTTP server
// into a runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/crankerz/crankerz/internal/config"
	"github.com/crankerz/crankerz/internal/db"
	"github.com/crankerz/crankerz/internal/http/api"
	"github.com/crankerz/crankerz/internal/leaderboard"
	"github.com/crankerz/crankerz/internal/ratelimit"
	"github.com/crankerz/crankerz/internal/session"
	"github.com/crankerz/crankerz/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 10 * time.Second

// Migrate opens the database and runs migrations.
func Migrate(cfg config.AppConfig) error {
	conn, errOpen := db.Open(cfg.DSN)
	if errOpen != nil {
		return errOpen
	}
	return db.Migrate(conn)
}

// RunServer boots the API server and blocks until ctx is cancelled.
func RunServer(ctx context.Context, cfg config.AppConfig) error {
	conn, errOpen := db.Open(cfg.DSN)
	if errOpen != nil {
		return errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	log.WithField("dialect", db.DialectName(conn)).Info("database ready")

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = cache.Close() }()
	}

	limiter := ratelimit.NewManager(ratelimit.RedisSettings{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	}, nil, nil)

	engine := NewEngine(conn, cfg, limiter, cache)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if errServe := server.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			errCh <- errServe
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		return <-errCh
	case errServe := <-errCh:
		return errServe
	}
}

// NewEngine builds the gin engine with all routes and middleware attached.
func NewEngine(conn *gorm.DB, cfg config.AppConfig, limiter *ratelimit.Manager, cache *redis.Client) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	api.RegisterRoutes(engine, api.Deps{
		DB:          conn,
		JWT:         cfg.JWT,
		RateLimit:   cfg.RateLimit,
		Limiter:     limiter,
		Recorder:    session.NewRecorder(conn, nil),
		Store:       store.NewService(conn),
		Leaderboard: leaderboard.NewService(conn, cache, cfg.Redis.Prefix, leaderboard.DefaultCacheTTL),
	})
	return engine
}
