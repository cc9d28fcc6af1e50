package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger_adapter "listing-service/internal/adapters/logger"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 15 * time.Second

// App - структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager     *rabbitmq_common.ConnectionManager
	eventsPublisher *rabbitmq_producer.Publisher
}

// NewApp - composition root: здесь создаются и связываются все зависимости
func NewApp() (*App, error) {
	appConfig, notes, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Логгеры ---
	activeLoggers := []port.LoggerPort{
		logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
			Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
			IsJSON:   appConfig.StdoutLogger.JSON,
			UseColor: !appConfig.StdoutLogger.JSON,
		}),
	}

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:  appConfig.FluentBit.Host,
			Port:  appConfig.FluentBit.Port,
			Async: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, appConfig.AppName, logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			_ = fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})
	for _, note := range notes {
		appLogger.Warn(note, nil)
	}

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- 2. PostgreSQL ---
	ctx := context.Background()
	dbPool, err := postgres.NewClient(ctx, postgres.Config{
		DatabaseURL: appConfig.Database.URL,
		MaxConns:    int32(appConfig.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		application.closeResources()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	application.dbPool = dbPool
	appLogger.Info("Successfully connected to PostgreSQL pool", nil)

	if appConfig.Database.AutoMigrate {
		if err := postgres_adapter.Migrate(ctx, dbPool, baseLogger); err != nil {
			application.closeResources()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	storage, err := postgres_adapter.NewPostgresStorageAdapter(dbPool)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
	}

	// --- 3. RabbitMQ (необязателен) ---
	var events port.ListingEventsPort
	if appConfig.RabbitMQ.Enabled {
		events, err = application.initEvents(baseLogger)
		if err != nil {
			appLogger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			application.closeResources()
			return nil, err
		}
		appLogger.Info("Listing events publisher initialized", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
	} else {
		appLogger.Info("RabbitMQ is disabled, listing events will not be published", nil)
	}

	// --- 4. Use case'ы и HTTP ---
	propertyHandler := rest.NewPropertyHandler(
		usecase.NewListPropertiesUseCase(storage),
		usecase.NewGetPropertyUseCase(storage),
		usecase.NewGetFeaturedPropertiesUseCase(storage, appConfig.Listing.FeaturedDefaultLimit),
		usecase.NewCreatePropertyUseCase(storage, events),
	)
	catalogHandler := rest.NewCatalogHandler(rest.CatalogUseCases{
		ListAgencies:   usecase.NewListAgenciesUseCase(storage),
		GetAgency:      usecase.NewGetAgencyUseCase(storage),
		CreateAgency:   usecase.NewCreateAgencyUseCase(storage),
		ListLocations:  usecase.NewListLocationsUseCase(storage),
		GetLocation:    usecase.NewGetLocationUseCase(storage),
		CreateLocation: usecase.NewCreateLocationUseCase(storage),
		ListCategories: usecase.NewListPropertyCategoriesUseCase(storage),
		GetCategory:    usecase.NewGetPropertyCategoryUseCase(storage),
		CreateCategory: usecase.NewCreatePropertyCategoryUseCase(storage),
	})
	siteHandler := rest.NewSiteHandler(
		usecase.NewListFaqsUseCase(storage),
		usecase.NewGetFaqUseCase(storage),
		usecase.NewCreateFaqUseCase(storage),
		usecase.NewGetStatsUseCase(storage),
		usecase.NewSubscribeNewsletterUseCase(),
	)

	application.apiServer = rest.NewServer(
		rest.ServerConfig{
			Port:           appConfig.Rest.Port,
			AllowedOrigins: appConfig.Rest.AllowedOrigins,
			ServiceName:    appConfig.AppName,
		},
		rest.Handlers{Properties: propertyHandler, Catalog: catalogHandler, Site: siteHandler},
		storage,
		baseLogger,
	)
	appLogger.Info("REST API server configured", nil)

	return application, nil
}

func (a *App) initEvents(baseLogger port.LoggerPort) (port.ListingEventsPort, error) {
	connManager, err := rabbitmq_common.NewConnectionManager(
		rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager

	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create events publisher: %w", err)
	}
	a.eventsPublisher = publisher

	return rabbitmq_adapter.NewListingEventsAdapter(publisher, constants.RoutingKeyPropertyCreated)
}

// Run запускает HTTP-сервер и блокируется до сигнала или ошибки сервера
func (a *App) Run() error {
	defer a.closeResources()

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil {
			errorsCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.Port})

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("HTTP server stopped unexpectedly, shutting down", runErr, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// closeResources закрывает все, что успело открыться; безопасно вызывать при частичной инициализации
func (a *App) closeResources() {
	if a.eventsPublisher != nil {
		if err := a.eventsPublisher.Close(); err != nil {
			a.logger.Error("Error closing events publisher", err, nil)
		}
		a.eventsPublisher = nil
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.connManager = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.dbPool = nil
		a.logger.Info("PostgreSQL pool closed", nil)
	}

	if a.fluentClient != nil {
		a.logger.Info("Application shut down", nil)
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен, пишем в stderr
			fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}
