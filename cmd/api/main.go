package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/parables-of-the-word-api/internal/catalog"
	"github.com/parables-of-the-word-api/internal/config"
	"github.com/parables-of-the-word-api/internal/handlers"
	"github.com/parables-of-the-word-api/internal/middleware"
	"github.com/parables-of-the-word-api/internal/services"
	"github.com/parables-of-the-word-api/pkg/llm"
	"github.com/parables-of-the-word-api/pkg/logging"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := config.GetConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model, err := llm.New(ctx, cfg.LLMConfig())
	if err != nil {
		return fmt.Errorf("initialize %s model: %w", cfg.LLMProvider, err)
	}
	defer func() {
		if err := model.Close(); err != nil {
			logger.Warn("error closing model client", zap.Error(err))
		}
	}()
	logger.Info("generative model ready",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", cfg.GeminiModel),
	)

	parables := catalog.Default()

	retry := services.DefaultRetryPolicy()
	retry.Timeout = cfg.RequestTimeout
	retry.MaxRetries = cfg.MaxRetries

	insightSvc := services.NewInsightService(model, retry, logger.Named("insights"))
	chatSvc := services.NewChatService(model, parables, retry, logger.Named("chat"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLogger(logger.Named("http")))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	api := e.Group(cfg.APIPrefix)

	handlers.NewHealthHandler(cfg.LLMProvider).RegisterRoutes(api)
	handlers.NewParableHandler(parables).RegisterRoutes(api)
	handlers.NewInsightHandler(parables, insightSvc).RegisterRoutes(api)
	handlers.NewChatHandler(parables, chatSvc).RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info("starting server",
			zap.String("name", cfg.APITitle),
			zap.String("version", cfg.APIVersion),
			zap.String("addr", addr),
			zap.Int("parables", parables.Len()),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
