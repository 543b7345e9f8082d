// Command controlplane starts the differential control-plane HTTP server.
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
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/differentialHQ/differential/internal/adapter/blob/fs"
	"github.com/differentialHQ/differential/internal/adapter/events/redpanda"
	httpserver "github.com/differentialHQ/differential/internal/adapter/httpserver"
	"github.com/differentialHQ/differential/internal/adapter/observability"
	"github.com/differentialHQ/differential/internal/adapter/provider"
	"github.com/differentialHQ/differential/internal/adapter/repo/postgres"
	"github.com/differentialHQ/differential/internal/app"
	"github.com/differentialHQ/differential/internal/config"
	"github.com/differentialHQ/differential/internal/service/ratelimiter"
	"github.com/differentialHQ/differential/internal/usecase"
)

// redisAdapter narrows *redis.Client to the readiness Ping interface.
type redisAdapter struct{ *redis.Client }

func (r redisAdapter) Ping(ctx context.Context) app.RedisPingResult { return r.Client.Ping(ctx) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)
	observability.SetAppEnv(cfg.AppEnv)

	// Register all Prometheus metrics once per process so /metrics exposes
	// HTTP and job-lifecycle instrumentation.
	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Infra: DB pool + schema
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		slog.Error("db migrate failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Redis backs the wake-up debounce and the function rate limiter. The
	// control plane runs without it; both consumers fail open.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("redis url invalid", slog.Any("error", err))
			os.Exit(1)
		}
		rdb = redis.NewClient(opts)
		defer func() { _ = rdb.Close() }()
	} else {
		slog.Warn("no redis configured; wake-up debounce and rate limiting disabled")
	}

	// Event audit stream (Redpanda/Kafka)
	events, err := redpanda.NewProducer(cfg.KafkaBrokers, cfg.EventsTopic)
	if err != nil {
		slog.Error("event producer connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := events.Close(); err != nil {
			slog.Error("failed to close event producer", slog.Any("error", err))
		}
	}()

	// Repositories
	jobRepo := postgres.NewJobRepo(pool)
	clusterRepo := postgres.NewClusterRepo(pool)
	machineRepo := postgres.NewMachineRepo(pool)
	serviceRepo := postgres.NewServiceRepo(pool)
	deployRepo := postgres.NewDeploymentRepo(pool)

	limiter := ratelimiter.NewRedisLuaLimiter(rdb, pool, nil)

	// Deployment bundles land on the local blob store; providers drive the
	// compute side. Only the mock provider ships in-process.
	blobs := fs.New(cfg.BlobDir)
	providers := provider.NewRegistry(provider.NewMock())

	// Usecases
	admissionSvc := usecase.NewAdmissionService(jobRepo, serviceRepo, events, limiter, cfg.GetJobDefaultTimeoutSeconds())
	dispatchSvc := usecase.NewDispatchService(jobRepo, machineRepo, serviceRepo, events)
	resultsSvc := usecase.NewResultsService(jobRepo, clusterRepo, nil)
	statusSvc := usecase.NewStatusService(jobRepo, events)
	clusterSvc := usecase.NewClusterService(clusterRepo, httpserver.Argon2Hasher{})
	deploySvc := usecase.NewDeploymentService(deployRepo, blobs, providers, events, cfg.DeploymentProvider)

	// Seed clusters for local development (idempotent)
	if err := seedClusters(ctx, cfg.ClusterSeedFile, clusterSvc); err != nil {
		slog.Error("cluster seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Readiness checks. Redis is optional, so its probe only counts when
	// configured; nil checks are skipped by the handler.
	var redisClient app.RedisClient
	if rdb != nil {
		redisClient = redisAdapter{rdb}
	}
	dbCheck, rdCheck, kafkaCheck := app.BuildReadinessChecks(pool, redisClient, events)
	if rdb == nil {
		rdCheck = nil
	}

	// HTTP server
	srv := httpserver.NewServer(cfg, admissionSvc, dispatchSvc, resultsSvc, statusSvc, clusterSvc, deploySvc,
		events, dbCheck, rdCheck, kafkaCheck)
	auth := httpserver.NewClusterAuth(clusterRepo, cfg.ClusterAuthCacheTTL)
	handler := app.BuildRouter(cfg, srv, auth)

	// Background loops share one context so shutdown stops them together.
	loopCtx, stopLoops := context.WithCancel(ctx)
	defer stopLoops()
	if healer := app.NewSelfHealer(jobRepo, events, cfg.GetHealInterval()); healer != nil {
		go healer.Run(loopCtx)
	}
	if wakeup := app.NewWakeupNotifier(jobRepo, machineRepo, deployRepo, providers, events, rdb,
		cfg.WakeupInterval, cfg.WakeupDebounceFloor, cfg.MachineLivenessWindow); wakeup != nil {
		go wakeup.Run(loopCtx)
	}
	if cleaner := app.NewCleaner(jobRepo, machineRepo, cfg.DataRetentionDays, cfg.CleanupInterval); cleaner != nil {
		go cleaner.Run(loopCtx)
	}

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	stopLoops()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
