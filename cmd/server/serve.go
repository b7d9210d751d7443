package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/handler"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/middleware"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/router"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/database"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/jwt"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/redis"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. config and logger
	cfg, logger, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("storage", cfg.Storage.Driver),
	)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. database and migrations
	db, closeDB, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// 3. redis, optional: rate limiting is skipped while it is unavailable
	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, auth rate limiting disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			limiter = rdb
		}
	}

	// 4. object storage
	store, err := storage.New(ctx, &cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// 5. metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// 6. repository → service → handler
	if err := handler.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, store, m, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(router.Deps{
		Config:   cfg,
		Handler:  h,
		JWT:      jwtMgr,
		Users:    repo.User,
		Limiter:  limiter,
		Metrics:  m,
		Gatherer: reg,
		Logger:   logger,
	})

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}
