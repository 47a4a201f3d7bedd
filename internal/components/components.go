package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brims/internal/actionlock"
	"brims/internal/api"
	"brims/internal/client"
	"brims/internal/config"
	"brims/internal/domain"
	"brims/internal/metrics"
	"brims/internal/policy"
	"brims/internal/redis"
	"brims/internal/service"
	"brims/internal/storage/postgres"
	"brims/internal/store"
	"brims/internal/workers"
	"brims/pkg/logger"
)

const changeQueueKey = "brims:changes"

type Components struct {
	logger     *slog.Logger
	cfg        *config.Config
	HttpServer *api.Server
	Service    *service.Service
	Store      *store.Store
	Lock       *actionlock.Lock
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	ChangeQ    *redis.ChangeQueue
	Refresher  *workers.Refresher

	wg sync.WaitGroup
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger, cfg: cfg}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(reg)

	backend, err := c.initBackend(ctx)
	if err != nil {
		return nil, err
	}

	var cache service.SnapshotCache
	if !cfg.Redis.Disabled {
		logger.Info("initializing redis")
		r, err := redis.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			c.closeStorage()
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = r
		cache = redis.NewSnapshotCache(r)
		c.ChangeQ = redis.NewChangeQueue(r.Client, changeQueueKey)
	}

	c.Lock = actionlock.New(
		actionlock.WithTimeout(cfg.Console.ActionTimeout),
		actionlock.WithObserver(collector),
	)
	engine := policy.New(policy.WithEditWindow(cfg.Console.EditWindow))
	c.Store = store.New(domain.Scope{Barangay: cfg.Console.Scope})

	coordinator := service.NewCoordinator(backend, c.Store, cache, cfg.Redis.SnapshotTTL, collector, logger,
		service.WithActionGate(c.Lock),
	)
	actions := service.NewActions(c.Lock, engine, c.Store, backend, coordinator, collector, logger)
	console := service.NewConsole(c.Store, engine, c.Lock, coordinator)
	c.Service = service.NewService(coordinator, actions, console)

	c.HttpServer = api.NewServer(cfg, logger, c.Service, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	c.Refresher = workers.NewRefresher(coordinator, c.Lock, service.TriggerSchedule, logger)

	logger.Info("initialized components",
		slog.String("backend", cfg.Backend),
		slog.String("scope", c.Store.Scope().String()),
	)
	return c, nil
}

func (c *Components) initBackend(ctx context.Context) (service.Backend, error) {
	switch c.cfg.Backend {
	case config.BackendPostgres:
		c.logger.Info("initializing postgres")
		pg, err := postgres.NewPostgres(ctx, c.cfg, c.logger)
		if err != nil {
			c.logger.Error("failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		return pg, nil
	default:
		cl, err := client.New(c.cfg.Remote)
		if err != nil {
			return nil, fmt.Errorf("failed to init remote client: %w", err)
		}
		c.logger.Info("using remote backend", slog.String("base_url", c.cfg.Remote.BaseURL))
		return cl, nil
	}
}

// Start loads the first snapshot and launches the background workers. A
// failed first load is logged; the scheduled refresh retries it.
func (c *Components) Start(ctx context.Context) error {
	coordinator := c.Service.Coordinator

	if warmed, err := coordinator.WarmStart(ctx); err != nil {
		c.logger.Warn("warm start failed", slog.Any("error", err))
	} else if warmed {
		c.logger.Info("serving cached snapshot until the first reload")
	}

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := coordinator.Reload(loadCtx, service.TriggerStartup); err != nil {
		c.logger.Error("initial load failed", slog.Any("error", err))
	}
	cancel()

	if err := c.Refresher.Start(c.cfg.Console.RefreshSchedule); err != nil {
		return err
	}

	if c.ChangeQ != nil && !c.cfg.Webhook.Disabled {
		events, unsubscribe := c.Store.Subscribe()
		notifier := service.NewNotifier(c.ChangeQ, c.logger)
		sender := service.NewWebhookSender(c.logger, c.cfg.Webhook, c.ChangeQ)

		c.wg.Add(2)
		go func() {
			defer c.wg.Done()
			defer unsubscribe()
			notifier.Run(ctx, events)
		}()
		go func() {
			defer c.wg.Done()
			sender.Run(ctx)
		}()
	}
	return nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll waits for the workers started by Start; the caller cancels
// their context first.
func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.Refresher.Stop()
	c.wg.Wait()
	if c.Lock.Busy() {
		c.logger.Warn("shutting down with an action in flight", slog.String("subject", c.Lock.State().Subject))
	}
	c.closeStorage()

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}

func (c *Components) closeStorage() {
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}
}
