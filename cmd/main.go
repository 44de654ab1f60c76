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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/armaan1925/medremind/internal/app"
	"github.com/armaan1925/medremind/internal/config"
	"github.com/armaan1925/medremind/internal/domain"
	"github.com/armaan1925/medremind/internal/infra/handler"
	"github.com/armaan1925/medremind/internal/infra/notify"
	"github.com/armaan1925/medremind/internal/infra/repository"
	"github.com/armaan1925/medremind/internal/observability/logging"
	"github.com/armaan1925/medremind/internal/observability/middleware"
	"github.com/armaan1925/medremind/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	store, err := initStore(cfg.Database)
	if err != nil {
		slog.Error("failed to initialize reminder store", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	feed := notify.NewFeed()

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize event publisher", "error", err)
		os.Exit(1)
	}

	var deliverer *notify.Deliverer
	if publisher != nil {
		deliverer = notify.NewDeliverer(publisher, feed, publisher)
	} else {
		deliverer = notify.NewDeliverer(feed, nil, notify.NewLogAnnouncer())
	}

	reminderUseCase := app.NewReminderUseCase(store)

	reminderHandler := handler.NewReminderHandler(reminderUseCase, feed)

	router := setupRouter(reminderHandler)

	sched := scheduler.NewScheduler(store, deliverer, scheduler.Config{
		Interval: cfg.Scheduler.TickInterval,
	})
	sched.Start(ctx)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			slog.Warn("failed to close event publisher", "error", err)
		}
	}

	slog.Info("server exited properly")
}

// initStore opens postgres when a DSN is configured, otherwise the
// service runs standalone on the in-memory store.
func initStore(cfg config.DatabaseConfig) (domain.ReminderStore, error) {
	if cfg.DSN == "" {
		slog.Warn("POSTGRES_DSN not set, using in-memory reminder store")

		return repository.NewMemoryReminderStore(), nil
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&repository.CollectionModel{}); err != nil {
		return nil, err
	}

	return repository.NewReminderStore(db), nil
}

func setupRouter(reminderHandler *handler.ReminderHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/ping"},
		Module:     logging.ModuleReminder,
		TracerName: "medremind",
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "x-request-id"}
	router.Use(cors.New(corsConfig))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	reminderHandler.RegisterRoutes(v1)

	return router
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level

	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(logging.NewContextHandler(jsonHandler)))
}
