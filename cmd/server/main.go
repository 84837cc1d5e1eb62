package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m-lima/connect4/internal/api/controller"
	"github.com/m-lima/connect4/internal/api/service"
	"github.com/m-lima/connect4/internal/config"
	"github.com/m-lima/connect4/internal/hub"
	"github.com/m-lima/connect4/internal/logger"
	"github.com/m-lima/connect4/internal/repository"
	"github.com/m-lima/connect4/internal/server"
	"github.com/m-lima/connect4/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.Init(ctx, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	if err := logger.Init(os.Stdout, cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	gin.SetMode(gin.ReleaseMode)

	gameRepo := repository.NewGameRepository()

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go hub.NewHub(gameRepo, cfg.SessionTTL, time.Minute).Run(hubCtx)

	gameService := service.NewGameService(gameRepo, cfg.MaxDepth)
	gameController := controller.NewGameController(gameService)

	srv, err := server.NewServer(gameController)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: otelhttp.NewHandler(srv.Engine(), "connect4"),
	}

	go func() {
		slog.Info("HTTP server started", "http.addr", cfg.Addr, "bot.max_depth", cfg.MaxDepth)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting", "games", gameRepo.Count(ctx))
}
