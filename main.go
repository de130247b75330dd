package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoo_api/internal/api"
	"zoo_api/internal/middleware"
	"zoo_api/internal/models"
	"zoo_api/internal/repository"
	"zoo_api/internal/service"
	"zoo_api/internal/storage"
	"zoo_api/pkg/config"
	"zoo_api/pkg/logger"
	"zoo_api/pkg/metrics"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(cfg.Server.Mode)

	// 初始化資料庫連接
	db, err := storage.NewDatabase(cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// 自動遷移資料庫結構，建立 zoos 與 bears 兩張表
	if err := db.AutoMigrate(models.All()...); err != nil {
		zlog.Fatal("Failed to auto migrate database", zap.Error(err))
	}

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	done := make(chan struct{})
	defer close(done)

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst)
		go limiter.Run(done)
	}

	r := api.NewRouter(cfg.Server, api.Dependencies{
		Services:    services,
		Logger:      zlog,
		Metrics:     metrics.NewManager(),
		DB:          db,
		RateLimiter: limiter,
	})

	if err := serve(cfg.Server, r, zlog); err != nil {
		zlog.Error("Server stopped with error", zap.Error(err))
	}
}

// serve 啟動 HTTP 服務器，收到 SIGINT 或 SIGTERM 後在 ShutdownTimeout 內優雅關閉
func serve(cfg config.ServerConfig, handler http.Handler, zlog *zap.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		zlog.Info("Shutting down server", zap.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	zlog.Info("Web API Listening on http://localhost:" + port(cfg.Address))

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	zlog.Info("Server stopped", zap.String("address", srv.Addr))
	return nil
}

func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
