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

	token_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/jwt"
	logger_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/logger"
	memory_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/memory"
	postgres_adapter "github.com/ank17jaat/SpaceMate/internal/adapters/postgres"
	"github.com/ank17jaat/SpaceMate/internal/adapters/rabbitmq"
	"github.com/ank17jaat/SpaceMate/internal/adapters/rest"
	"github.com/ank17jaat/SpaceMate/internal/configs"
	"github.com/ank17jaat/SpaceMate/internal/constants"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
	"github.com/ank17jaat/SpaceMate/internal/core/usecase"
	fluentlogger "github.com/ank17jaat/SpaceMate/pkg/fluent_logger"
	"github.com/ank17jaat/SpaceMate/pkg/postgres"
	"github.com/ank17jaat/SpaceMate/pkg/rabbitmq/rabbitmq_common"
	"github.com/ank17jaat/SpaceMate/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitManager *rabbitmq_common.ConnectionManager
	producer      *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

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

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ХРАНИЛИЩЕ: in-memory или PostgreSQL ---
	var dbPool *pgxpool.Pool
	var propertyRepo port.PropertyRepositoryPort
	var bookingRepo port.BookingRepositoryPort

	switch appConfig.Storage.Backend {
	case "postgres":
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		propertyRepo, err = postgres_adapter.NewPostgresPropertyRepository(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres property repository: %w", err)
		}
		bookingRepo, err = postgres_adapter.NewPostgresBookingRepository(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres booking repository: %w", err)
		}
	default:
		// In-memory хранилище с демонстрационным каталогом
		propertyRepo = memory_adapter.NewMemoryPropertyRepository(memory_adapter.SeedProperties())
		bookingRepo = memory_adapter.NewMemoryBookingRepository()
		appLogger.Info("Using in-memory storage with seeded catalog.", nil)
	}

	// --- 4. НОТИФИКАТОР: RabbitMQ или лог ---
	var notifier port.BookingNotifierPort
	var rabbitManager *rabbitmq_common.ConnectionManager
	var producer *rabbitmq_producer.Publisher

	if appConfig.RabbitMQ.Enabled {
		rabbitLogger := rabbitmq.NewLoggerBridge(appLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		rabbitManager, err = rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			if dbPool != nil {
				dbPool.Close()
			}
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		producer, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.BookingEventsExchange,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitLogger,
		}, rabbitManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
			rabbitManager.Close()
			if dbPool != nil {
				dbPool.Close()
			}
			return nil, fmt.Errorf("failed to create rabbitmq publisher: %w", err)
		}

		notifier, err = rabbitmq.NewBookingNotifierAdapter(producer, constants.RoutingKeyBookingConfirmed)
		if err != nil {
			return nil, fmt.Errorf("failed to create booking notifier: %w", err)
		}
		appLogger.Info("RabbitMQ notifier initialized.", nil)
	} else {
		notifier = logger_adapter.NewLogBookingNotifier()
		appLogger.Info("RabbitMQ disabled, booking notifications go to the log.", nil)
	}

	// --- 5. АУТЕНТИФИКАЦИЯ ---
	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// --- 6. USE CASES (ядро бизнес-логики) ---
	findPropertiesUC := usecase.NewFindPropertiesUseCase(propertyRepo)
	getPropertyDetailsUC := usecase.NewGetPropertyDetailsUseCase(propertyRepo)
	createPropertyUC := usecase.NewCreatePropertyUseCase(propertyRepo)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(propertyRepo)
	getOwnerPropertiesUC := usecase.NewGetOwnerPropertiesUseCase(propertyRepo)
	getAmenitiesUC := usecase.NewGetAmenitiesUseCase(propertyRepo)
	createBookingUC := usecase.NewCreateBookingUseCase(propertyRepo, bookingRepo, notifier)
	cancelBookingUC := usecase.NewCancelBookingUseCase(bookingRepo)
	getUserBookingsUC := usecase.NewGetUserBookingsUseCase(bookingRepo)

	// --- 7. REST API Server ---
	propertyHandlers := rest.NewPropertyHandler(
		findPropertiesUC, getPropertyDetailsUC, createPropertyUC,
		deletePropertyUC, getOwnerPropertiesUC, getAmenitiesUC)
	bookingHandlers := rest.NewBookingHandler(createBookingUC, cancelBookingUC, getUserBookingsUC)
	authMiddleware := rest.NewAuthMiddleware(tokenService)

	apiServer := rest.NewServer(appConfig.Rest.PORT, propertyHandlers, bookingHandlers,
		authMiddleware, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		rabbitManager: rabbitManager,
		producer:      producer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Единый контекст приложения для graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.producer != nil {
			if err := a.producer.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ producer", err, nil)
			}
		}
		if a.rabbitManager != nil {
			if err := a.rabbitManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
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

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

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
