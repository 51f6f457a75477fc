package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Eursukkul/events-portal/config"
	"github.com/Eursukkul/events-portal/internal/auth"
	"github.com/Eursukkul/events-portal/internal/consumer"
	"github.com/Eursukkul/events-portal/internal/dto"
	"github.com/Eursukkul/events-portal/internal/handler"
	"github.com/Eursukkul/events-portal/internal/middleware"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/Eursukkul/events-portal/pkg/database"
	"github.com/Eursukkul/events-portal/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	logger := setupLogger(cfg)

	db, err := openDB(cfg)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	featureRepo := repository.NewFeatureRepository(db)
	enrollRepo := repository.NewEnrollRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	// RabbitMQ is optional: without a URL nothing is published and users
	// must be provisioned directly in the database.
	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, logger)
		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		publisher = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, logger)
		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			logger.Error("failed to start consuming", "error", err)
			os.Exit(1)
		}
		consumer.NewUserConsumer(userRepo, logger).Start(ctx, msgs)
	} else {
		logger.Warn("RABBITMQ_URL not set, messaging disabled")
	}

	// Services
	eventSvc := service.NewEventService(service.EventDeps{
		Events:     eventRepo,
		Categories: categoryRepo,
		Features:   featureRepo,
		Enrolls:    enrollRepo,
		Reviews:    reviewRepo,
		Publisher:  publisher,
		Logger:     logger,
	})
	categorySvc := service.NewCategoryService(categoryRepo)
	featureSvc := service.NewFeatureService(featureRepo)
	enrollSvc := service.NewEnrollService(enrollRepo, eventRepo, userRepo, publisher, logger)
	reviewSvc := service.NewReviewService(reviewRepo, eventRepo, publisher, logger)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.NewErrorHandler(logger)
	e.Validator = middleware.NewRequestValidator()
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMw.Recover())
	e.Use(middleware.Session(auth.NewVerifier(cfg.SessionSecret), userRepo, cfg.SessionCookie, logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "events-portal"})
	})

	assets := dto.AssetURLs{Static: cfg.StaticURL, Media: cfg.MediaURL}
	handler.NewPageHandler(eventSvc, assets).RegisterRoutes(e.Group("/events"))
	handler.NewReviewHandler(reviewSvc, logger).RegisterRoutes(e.Group("/api/events"))

	admin := e.Group("/admin/api", middleware.RequireStaff)
	handler.NewAdminEventHandler(eventSvc).RegisterRoutes(admin)
	handler.NewAdminCategoryHandler(categorySvc, featureSvc).RegisterRoutes(admin)
	handler.NewAdminEnrollHandler(enrollSvc, reviewSvc).RegisterRoutes(admin)

	go func() {
		logger.Info("events portal starting", "port", cfg.ServerPort, "environment", cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return database.NewSQLiteDB(cfg.SQLitePath)
	}
	return database.NewPostgresDB(cfg.DSN())
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
