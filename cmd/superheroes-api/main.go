package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/superheroes/internal/api"
	"github.com/shaiso/superheroes/internal/config"
	"github.com/shaiso/superheroes/internal/mq"
	"github.com/shaiso/superheroes/internal/repo"
	"github.com/shaiso/superheroes/internal/telemetry"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		telemetry.SetupLogger("info", "json").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Инициализируем structured logging
	logger := telemetry.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting superheroes-api")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Подключаемся к базе данных
	db, err := repo.Open(ctx, repo.Options{
		URI:        cfg.DBURI,
		MaxConns:   cfg.DBMaxConns,
		LogQueries: cfg.DBLogQueries,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database", "dialect", db.Dialect)

	if cfg.DBAutoMigrate {
		if err := repo.AutoMigrate(ctx, db); err != nil {
			logger.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
	}

	handlerCfg := api.Config{
		Heroes:     repo.NewHeroRepo(db),
		Powers:     repo.NewPowerRepo(db),
		HeroPowers: repo.NewHeroPowerRepo(db),
		DB:         db,
		Logger:     logger,
	}

	// RabbitMQ необязателен: без него API работает, события не публикуются
	if cfg.AMQPURL != "" {
		conn, err := mq.Dial(cfg.AMQPURL, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, change events disabled", "error", err)
		} else {
			defer conn.Close()
			if err := mq.SetupTopology(conn); err != nil {
				logger.Error("failed to setup rabbitmq topology", "error", err)
				os.Exit(1)
			}
			handlerCfg.Publisher = mq.NewPublisher(conn, logger)
			logger.Info("connected to rabbitmq")
		}
	}

	handler := api.NewHandler(handlerCfg)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	handler.RegisterRoutes(mux, telemetry.NewHTTPMetrics(prometheus.DefaultRegisterer))

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
