package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/regulardicers/dicers-backend/internal/config"
	"github.com/regulardicers/dicers-backend/internal/db"
	"github.com/regulardicers/dicers-backend/internal/hydrator"
	"github.com/regulardicers/dicers-backend/internal/metrics"
	"github.com/regulardicers/dicers-backend/internal/mock"
	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/query"
	"github.com/regulardicers/dicers-backend/internal/repository"
	"github.com/regulardicers/dicers-backend/internal/seed"
	"github.com/regulardicers/dicers-backend/internal/service"
)

const healthCheckInterval = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. .env и конфиг из окружения.
	if _, err := config.LoadEnvFile(".env"); err != nil {
		return err
	}
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(appCfg))

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. БД, метрики и миграции.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		return err
	}
	if err := gormDB.Use(m.GormPlugin()); err != nil {
		return err
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	slog.Info("database ready", "driver", dbCfg.Driver)

	// 3. Репозитории, гидратор, фасад.
	repos := repository.NewGormRepositories(gormDB)
	h := service.NewHydrator(repos, hydrator.WithDropHook(func(r hydrator.Relation) {
		m.DroppedRelation(string(r))
	}))
	svc := service.New(repos, h)

	// 4. Тестовые данные при SEED_COUNT > 0.
	if appCfg.SeedCount > 0 {
		seedValue := uint64(appCfg.SeedValue)
		if seedValue == 0 {
			seedValue = rand.Uint64()
		}
		slog.Info("seeding database", "rounds", appCfg.SeedCount, "seed", seedValue)
		if _, err := seed.New(mock.NewSeeded(seedValue), repos, slog.Default()).Populate(ctx, appCfg.SeedCount); err != nil {
			return err
		}
	}

	// 5. gRPC: health + reflection.
	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", appCfg.GRPCAddr)
	if err != nil {
		return err
	}
	go func() {
		slog.Info("grpc server listening", "addr", appCfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("grpc serve", "error", err)
			stop()
		}
	}()
	go watchHealth(ctx, healthSrv, svc)

	// 6. HTTP /metrics.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	metricsSrv := &http.Server{
		Addr:              appCfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("metrics server listening", "addr", appCfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics serve", "error", err)
			stop()
		}
	}()

	// 7. Грейсфул-шатдаун по сигналу.
	<-ctx.Done()
	slog.Info("shutting down")

	healthSrv.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return metricsSrv.Shutdown(shutdownCtx)
}

func newLogger(cfg *config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// watchHealth reports SERVING while a one-row read through the facade works.
func watchHealth(ctx context.Context, srv *health.Server, svc *service.Service) {
	check := func() {
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if _, err := svc.Chats(checkCtx, &query.Constraints{Limit: 1}, nil); err != nil {
			slog.Warn("health check failed", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		srv.SetServingStatus("", status)
	}

	check()
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
