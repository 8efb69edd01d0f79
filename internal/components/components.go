package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mariomediam/maps-backend/internal/api"
	"github.com/mariomediam/maps-backend/internal/api/handlers/http/system"
	"github.com/mariomediam/maps-backend/internal/config"
	"github.com/mariomediam/maps-backend/internal/imaging"
	"github.com/mariomediam/maps-backend/internal/metrics"
	"github.com/mariomediam/maps-backend/internal/redis"
	"github.com/mariomediam/maps-backend/internal/service"
	"github.com/mariomediam/maps-backend/internal/storage/objectstore"
	"github.com/mariomediam/maps-backend/internal/storage/postgres"
	"github.com/mariomediam/maps-backend/internal/workers"
	"github.com/mariomediam/maps-backend/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	// Dispatcher is nil when webhooks are disabled.
	Dispatcher *workers.EventDispatcher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	logger.Info("Initializing object storage", slog.String("bucket", cfg.Storage.Bucket))
	s3Client, err := objectstore.NewR2Client(ctx, cfg.Storage)
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	gateway := objectstore.NewGateway(s3Client, s3.NewPresignClient(s3Client), cfg.Storage.Bucket, cfg.Storage.SignedURLTTL, logger)

	m := metrics.New()

	// A nil interface, not a typed nil pointer, disables publishing.
	var events service.EventQueue
	var dispatcher *workers.EventDispatcher
	if !cfg.Webhook.Disabled {
		queue := redis.NewEventQueue(redisClient.Client, cfg.Webhook.Queue)
		events = queue
		dispatcher = workers.NewEventDispatcher(queue, cfg.Webhook, m, logger)
	} else {
		logger.Info("Webhook delivery disabled, lifecycle events are not published")
	}

	incidentSvc := service.NewIncidentService(
		storage.IncidentRepo(),
		gateway,
		imaging.NewNormalizer(logger),
		events,
		m,
		logger,
	)
	lookupSvc := service.NewLookupService(
		storage.LookupRepo(),
		redis.NewLookupCache(redisClient, cfg.Redis.LookupTTL),
		m,
		logger,
	)
	srv := service.NewService(incidentSvc, lookupSvc)

	httpServer := api.NewServer(ctx, cfg, logger, srv, m, map[string]system.Pinger{
		"postgres": storage.Pool,
		"redis":    redisClient,
	})
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Dispatcher: dispatcher,
	}, nil
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

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
