package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/voxdesk/internal/adapter/cache"
	"github.com/seu-repo/voxdesk/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/voxdesk/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/voxdesk/internal/adapter/queue"
	"github.com/seu-repo/voxdesk/internal/adapter/storage/postgres"
	"github.com/seu-repo/voxdesk/internal/adapter/vault"
	wsAdapter "github.com/seu-repo/voxdesk/internal/adapter/websocket"
	"github.com/seu-repo/voxdesk/internal/observability/telemetry"
	"github.com/seu-repo/voxdesk/internal/ports"
	"github.com/seu-repo/voxdesk/internal/service/auth"
	"github.com/seu-repo/voxdesk/internal/service/client"
	"github.com/seu-repo/voxdesk/internal/service/email"
	"github.com/seu-repo/voxdesk/internal/service/intent"
	"github.com/seu-repo/voxdesk/internal/service/project"
	"github.com/seu-repo/voxdesk/internal/service/user"
	"github.com/seu-repo/voxdesk/internal/service/voice"
	"github.com/seu-repo/voxdesk/pkg/config"
)

const (
	serviceName    = "voxdesk"
	serviceVersion = "v1.0.0"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.App.Environment == "development" {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	logger.Info("Starting VoxDesk",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
		zap.String("environment", cfg.App.Environment),
	)

	// Secrets from Vault override whatever config/env provided.
	if cfg.Vault.Enabled {
		if err := loadVaultSecrets(cfg, logger); err != nil {
			logger.Fatal("Failed to load secrets from Vault", zap.Error(err))
		}
	}

	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, serviceVersion, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	appCache, err := newCache(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.Error(err))
	}
	defer appCache.Close()

	messageQueue, err := newMessageQueue(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer messageQueue.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db, logger)
	projectRepo := postgres.NewProjectRepository(db, logger)
	clientRepo := postgres.NewClientRepository(db, logger)
	intentConfigRepo := postgres.NewIntentConfigRepository(db, logger)

	// Services
	emailService, err := email.NewService(emailConfig(cfg), logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}

	authService := auth.NewService(userRepo, appCache, cfg.JWT.Secret, logger)
	userService := user.NewService(userRepo, messageQueue, emailService, logger)
	projectService := project.NewService(projectRepo, clientRepo, messageQueue, logger)
	clientService := client.NewService(clientRepo, messageQueue, logger)

	// Voice pipeline
	registry := intent.NewRegistry(intentConfigRepo, appCache, logger)
	if cfg.Database.SeedIntents {
		if err := registry.SeedDefaults(context.Background()); err != nil {
			logger.Fatal("Failed to seed intent configurations", zap.Error(err))
		}
	}

	mapper := voice.NewMapper(cfg.Voice.DefaultHourlyRate, logger)
	resolver := voice.NewResolver(userRepo, clientRepo, logger)
	validator := voice.NewValidator(registry, resolver, mapper, logger)
	router := voice.NewRouter(userService, projectService, clientService, logger)
	pipeline := voice.NewPipeline(validator, router, logger)

	// WebSocket hub for pushing batch results back to clients
	wsHub := wsAdapter.NewHub()
	go wsHub.Run()
	resultsStream := wsAdapter.NewResultsStreamHandler(wsHub, logger)

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Database not ready")
		}
		if err := appCache.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	if cfg.Prometheus.Enabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	v1 := app.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/refresh", authHandler.Refresh)

	protected := v1.Group("", middleware.AuthRequired(authService))

	voiceHandler := handlers.NewVoiceHandler(pipeline, resultsStream, logger)
	protected.Post("/voice/actions", voiceHandler.ExecuteActions)
	protected.Post("/voice/validate", voiceHandler.ValidateCommand)

	intentHandler := handlers.NewIntentHandler(registry, logger)
	protected.Get("/intents/:intent", intentHandler.GetConfig)

	userHandler := handlers.NewUserHandler(userService, userRepo, logger)
	protected.Get("/users/pending", userHandler.ListPendingApproval)
	protected.Post("/users/:id/approve", userHandler.Approve)

	app.Use("/ws", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/results", websocket.New(resultsStream.HandleResultsStream))

	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// newCache returns the Redis-backed cache, or the in-memory cache when no
// Redis URL is configured (single-node and local runs).
func newCache(cfg *config.Config, logger *zap.Logger) (ports.Cache, error) {
	if cfg.Redis.URL == "" {
		logger.Info("No Redis URL configured, using in-memory cache")
		return cache.NewLocalCache(5*time.Minute, logger), nil
	}
	return cache.NewRedisCache(cfg.Redis.URL, logger)
}

func newMessageQueue(cfg *config.Config, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Queue.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.Queue.RabbitMQ.URL, logger)
	default:
		return queue.NewNATSQueue(cfg.Queue.NATS.URL, logger)
	}
}

func emailConfig(cfg *config.Config) *email.Config {
	return &email.Config{
		Provider:       cfg.Email.Provider,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUsername:   cfg.Email.SMTPUsername,
		SMTPPassword:   cfg.Email.SMTPPassword,
		SMTPUseTLS:     cfg.Email.SMTPUseTLS,
		BaseURL:        cfg.Email.BaseURL,
	}
}

func loadVaultSecrets(cfg *config.Config, logger *zap.Logger) error {
	sm, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
	if err != nil {
		return err
	}

	if url, err := sm.GetDatabaseURL(); err == nil && url != "" {
		cfg.Database.URL = url
	} else if err != nil {
		logger.Warn("Vault: database URL not available", zap.Error(err))
	}

	if secret, err := sm.GetJWTSecret(); err == nil && secret != "" {
		cfg.JWT.Secret = secret
	} else if err != nil {
		logger.Warn("Vault: JWT secret not available", zap.Error(err))
	}

	if key, err := sm.GetSendGridAPIKey(); err == nil && key != "" {
		cfg.Email.SendGridAPIKey = key
	} else if err != nil {
		logger.Warn("Vault: SendGrid API key not available", zap.Error(err))
	}

	return nil
}
