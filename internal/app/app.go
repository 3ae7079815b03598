package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dealer-analytics/internal/aggregators"
	"dealer-analytics/internal/caches"
	"dealer-analytics/internal/events"
	internalhttp "dealer-analytics/internal/http"
	"dealer-analytics/internal/ingestors"
	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/auth"
	"dealer-analytics/internal/shared/configs"
	"dealer-analytics/internal/shared/filestorages"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/sources"
	"dealer-analytics/internal/stores"
	"dealer-analytics/internal/streams"

	"github.com/redis/go-redis/v9"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	dayPartitionConsumer streams.DayPartitionConsumer
	redisClient          *redis.Client
	backgroundCtx        context.Context
	backgroundCancel     context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "dealer-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	dayBucketStore := stores.NewDayBucketStore(fileStorage)

	// Initialize stream queue and the day rollup consumer
	dayPartitionQueue := streams.NewPartitionedQueue[events.DayPartitionEvent]()
	rollupService := aggregators.NewRollupService(aggregators.NewDayBucketRolluper(), dayBucketStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	dayPartitionConsumer := streams.NewDayPartitionConsumer(dayPartitionQueue, rollupService, consumerLogger)

	// Initialize ingestionService
	ingestionService := ingestors.NewIngestionService(
		ingestors.NewDayBatchSplitter(),
		stores.NewEventBatchStore(fileStorage),
		streams.NewDayPartitionProducer(dayPartitionQueue),
	)

	// Initialize summaryService
	defaultRange, err := models.NewRangeWindowFromString(config.Analytics.DefaultRange)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize default range: %w", err)
	}
	summaryCache, redisClient := newSummaryCache(config.Cache)
	summaryService := aggregators.NewSummaryService(
		newEventSource(config, dayBucketStore),
		aggregators.NewEventAggregator(),
		summaryCache,
		stores.NewSummarySnapshotStore(fileStorage),
		time.Duration(config.Analytics.FetchTimeout)*time.Second,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.RouterDeps{
		IngestionService: ingestionService,
		SummaryService:   summaryService,
		Authenticator:    auth.NewJWTAuthenticator(config.Auth.JWTSecret),
		DefaultRange:     defaultRange,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:               config,
		appLogger:            appLogger,
		server:               server,
		dayPartitionConsumer: dayPartitionConsumer,
		redisClient:          redisClient,
	}, nil
}

func newEventSource(config *configs.Config, dayBucketStore stores.DayBucketStore) sources.EventSource {
	if config.Analytics.Source == configs.SourceStored {
		return sources.NewStoredEventSource(dayBucketStore)
	}
	return sources.NewProviderEventSource(sources.ProviderOptions{
		BaseURL:   config.Provider.BaseURL,
		ProjectID: config.Provider.ProjectID,
		APIKey:    config.Provider.APIKey,
		PageSize:  config.Provider.PageSize,
		MaxPages:  config.Provider.MaxPages,
		Timeout:   time.Duration(config.Provider.Timeout) * time.Second,
	}, &http.Client{})
}

// newSummaryCache returns the redis client too when one was opened, so it can be closed on shutdown.
func newSummaryCache(config configs.CacheConfig) (caches.SummaryCache, *redis.Client) {
	ttl := time.Duration(config.TTL) * time.Second
	if config.Driver == configs.CacheDriverRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		return caches.NewRedisSummaryCache(client, ttl), client
	}
	return caches.NewLRUSummaryCache(config.Capacity, ttl), nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting dealer-analytics service on port %d (log_level=%s, source=%s, cache=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Analytics.Source,
			app.config.Cache.Driver,
			app.config.FileStorage.RootDir)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.dayPartitionConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// 3) Wait for background consumers to finish
	app.dayPartitionConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	// 4) Release the cache connection
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.appLogger.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	return nil
}
