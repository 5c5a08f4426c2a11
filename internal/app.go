package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "brokerage-service/internal/adapters/logger"
	postgres_adapter "brokerage-service/internal/adapters/postgres"
	rabbitmq_adapter "brokerage-service/internal/adapters/rabbitmq"
	"brokerage-service/internal/adapters/rest"
	"brokerage-service/internal/configs"
	"brokerage-service/internal/constants"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/usecase"
	fluentlogger "brokerage-service/pkg/fluent_logger"
	"brokerage-service/pkg/postgres"
	"brokerage-service/pkg/rabbitmq/rabbitmq_common"
	"brokerage-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	dealEventsProducer *rabbitmq_producer.Publisher
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	clientRepository, err := postgres_adapter.NewClientRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}
	realtorRepository, err := postgres_adapter.NewRealtorRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create realtor repository: %w", err)
	}
	propertyRepository, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	offerRepository, err := postgres_adapter.NewOfferRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create offer repository: %w", err)
	}
	needRepository, err := postgres_adapter.NewNeedRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create need repository: %w", err)
	}
	dealRepository, err := postgres_adapter.NewDealRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create deal repository: %w", err)
	}
	actRepository, err := postgres_adapter.NewActRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create act repository: %w", err)
	}
	appLogger.Info("Postgres repositories initialized.", nil)

	// --- 4. RABBITMQ ---
	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	pkgLoggerBridge := rabbitmq_adapter.NewPkgLoggerBridge(producerLogger)

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger)
	connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, connManagerBridge)
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		ExchangeName:             constants.EventsExchange,
		ExchangeType:             constants.EventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,

		Logger: pkgLoggerBridge,
	}
	eventProducer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		appLogger.Error("Failed to create event producer", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	appLogger.Info("RabbitMQ Event Producer initialized.", nil)

	dealEventsAdapter, err := rabbitmq_adapter.NewDealEventsAdapter(eventProducer, constants.RoutingKeyDealCreated)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create deal events adapter: %w", err)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 5. USE CASES (ядро бизнес-логики) ---
	clientHandlers := rest.NewClientHandlers(
		usecase.NewCreateClientUseCase(clientRepository),
		usecase.NewUpdateClientUseCase(clientRepository),
		usecase.NewDeleteClientUseCase(clientRepository),
		usecase.NewGetClientUseCase(clientRepository),
		usecase.NewListClientsUseCase(clientRepository),
		usecase.NewSearchClientsUseCase(clientRepository),
	)
	realtorHandlers := rest.NewRealtorHandlers(
		usecase.NewCreateRealtorUseCase(realtorRepository),
		usecase.NewUpdateRealtorUseCase(realtorRepository),
		usecase.NewDeleteRealtorUseCase(realtorRepository),
		usecase.NewGetRealtorUseCase(realtorRepository),
		usecase.NewListRealtorsUseCase(realtorRepository),
		usecase.NewSearchRealtorsUseCase(realtorRepository),
	)
	propertyHandlers := rest.NewPropertyHandlers(
		usecase.NewCreatePropertyUseCase(propertyRepository),
		usecase.NewUpdatePropertyUseCase(propertyRepository),
		usecase.NewDeletePropertyUseCase(propertyRepository),
		usecase.NewGetPropertyUseCase(propertyRepository),
		usecase.NewListPropertiesUseCase(propertyRepository),
		usecase.NewSearchPropertiesByAddressUseCase(propertyRepository),
		usecase.NewSearchPropertiesByPolygonUseCase(propertyRepository),
	)
	offerHandlers := rest.NewOfferHandlers(
		usecase.NewCreateOfferUseCase(offerRepository),
		usecase.NewUpdateOfferUseCase(offerRepository),
		usecase.NewDeleteOfferUseCase(offerRepository),
		usecase.NewGetOfferUseCase(offerRepository),
		usecase.NewListOffersUseCase(offerRepository),
		usecase.NewMatchingNeedsForOfferUseCase(offerRepository, needRepository),
	)
	needHandlers := rest.NewNeedHandlers(
		usecase.NewCreateNeedUseCase(needRepository),
		usecase.NewUpdateNeedUseCase(needRepository),
		usecase.NewDeleteNeedUseCase(needRepository),
		usecase.NewGetNeedUseCase(needRepository),
		usecase.NewListNeedsUseCase(needRepository),
		usecase.NewMatchingOffersForNeedUseCase(needRepository, offerRepository),
	)
	dealHandlers := rest.NewDealHandlers(
		usecase.NewCreateDealUseCase(dealRepository, dealEventsAdapter),
		usecase.NewGetDealUseCase(dealRepository),
		usecase.NewListDealsUseCase(dealRepository),
		usecase.NewGetDealCommissionsUseCase(dealRepository),
	)
	actHandlers := rest.NewActHandlers(
		usecase.NewCreateActUseCase(actRepository),
		usecase.NewUpdateActUseCase(actRepository),
		usecase.NewDeleteActUseCase(actRepository),
		usecase.NewGetActUseCase(actRepository),
		usecase.NewListActsUseCase(actRepository),
	)
	appLogger.Info("All use cases initialized.", nil)

	// --- 6. REST API SERVER ---
	apiServer := rest.NewServer(appConfig.Rest.PORT,
		appConfig.Rest.CORSAllowedOrigins,
		clientHandlers, realtorHandlers, propertyHandlers,
		offerHandlers, needHandlers, dealHandlers, actHandlers,
		baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:             appConfig,
		dbPool:             dbPool,
		apiServer:          apiServer,
		dealEventsProducer: eventProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dealEventsProducer != nil {
			if err := a.dealEventsProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
