package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gymmaster/internal/config"
	"gymmaster/internal/database"
	"gymmaster/internal/pkg/jwt"
	"gymmaster/internal/pkg/logger"
	"gymmaster/internal/server"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		return err
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	params := cfg.DatabaseParams()
	params.Logger = log
	db, err := database.Open(params)
	if err != nil {
		log.Error("database connection failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("database close failed", zap.Error(err))
		}
	}()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Error("migration failed", zap.Error(err))
			return err
		}
		log.Info("schema migrated")
	}

	opts := server.Options{
		DB:          db,
		Log:         log,
		CORSOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.AuthEnabled() {
		opts.Tokens = jwt.New(cfg.JWTSecret, cfg.JWTTTL)
		opts.StaffUsername = cfg.StaffUsername
		opts.StaffPasswordHash = cfg.StaffPasswordHash
	} else {
		log.Warn("JWT_SECRET is empty, booking routes are not protected")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("http server failed", zap.Error(err))
			return err
		}
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
