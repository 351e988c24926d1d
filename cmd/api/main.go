package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AIMANKHANN123/pulse-backend/internal/config"
	"github.com/AIMANKHANN123/pulse-backend/internal/handler"
	"github.com/AIMANKHANN123/pulse-backend/internal/metrics"
	"github.com/AIMANKHANN123/pulse-backend/internal/upstream"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	/**********************************************
	 * 创建上游客户端和聚合器
	 **********************************************/
	client := upstream.NewClient(cfg)
	aggregator := metrics.NewAggregator(client, metrics.Options{
		EnableMockData:       cfg.Dashboard.EnableMockData,
		MaxConcurrentFetches: cfg.Dashboard.MaxConcurrentFetches,
	})

	/**********************************************
	 * 创建 handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, aggregator)
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		return
	}
	h.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}
