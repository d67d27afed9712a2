package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "affiliate-escrow/internal/adapter/http"
	"affiliate-escrow/internal/adapter/kafka"
	"affiliate-escrow/internal/adapter/memory"
	"affiliate-escrow/internal/adapter/metrics"
	"affiliate-escrow/internal/adapter/postgres"
	"affiliate-escrow/internal/adapter/usecase"
	"affiliate-escrow/internal/config"
	"affiliate-escrow/internal/config/configs"
	"affiliate-escrow/internal/core/authority"
	"affiliate-escrow/internal/core/port"
	"affiliate-escrow/internal/db"
)

// main is the entry point of the affiliate escrow service. It loads
// configuration, selects and prepares the account store, wires the engine
// and starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A missing .env file is not an error; the environment may be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", slog.Any("error", err))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.Any("error", err))
		return
	}
	defer closeStore()

	// Config.Load already validated both values.
	program, _ := cfg.Engine.Program()
	grants, _ := cfg.Engine.Grants()
	if err = db.Seed(ctx, store, grants); err != nil {
		logger.Error("seed error", slog.Any("error", err))
		return
	}
	if len(grants) > 0 {
		logger.Info("startup holdings minted", slog.Int("grants", len(grants)))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithRecorder(metrics.NewRecorder(reg)),
	}
	if cfg.Kafka.Enabled() {
		publisher := kafka.NewPublisher(cfg.Kafka)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("kafka writer close error", slog.Any("error", err))
			}
		}()
		opts = append(opts, usecase.WithPublisher(publisher))
		logger.Info("publishing events", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}

	svc := usecase.NewEscrowUseCase(store, authority.NewDeriver(program), opts...)

	handler := httpadapter.NewHandler(svc, logger, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("storage", cfg.Engine.Storage),
			slog.String("program", program.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	exitCode = waitForShutdown(ctx, quit)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// waitForShutdown blocks until a termination signal arrives or ctx ends
// and returns the process exit code. Only the signal channel decides the
// 128+signal code; a cancelled context means the server failed.
func waitForShutdown(ctx context.Context, quit <-chan os.Signal) int {
	select {
	case sig := <-quit:
		if s, ok := sig.(syscall.Signal); ok {
			return 128 + int(s)
		}
		return 1
	case <-ctx.Done():
		return 1
	}
}

// mintingStore is a port.Store that can also credit startup holdings.
type mintingStore interface {
	port.Store
	db.Minter
}

// openStore builds the configured store. The returned func releases its
// resources.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (mintingStore, func(), error) {
	if cfg.Engine.Storage == configs.StorageMemory {
		logger.Warn("using in-memory storage; state is lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	return postgres.NewStore(pool), pool.Close, nil
}
