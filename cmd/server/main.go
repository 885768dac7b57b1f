package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authpg "smartnotes/internal/auth/adapters/postgres"
	authsvc "smartnotes/internal/auth/adapters/services"
	authapp "smartnotes/internal/auth/app"
	"smartnotes/internal/config"
	"smartnotes/internal/db"
	"smartnotes/internal/gateway/adapters/cache"
	httpserver "smartnotes/internal/gateway/adapters/http"
	authhttp "smartnotes/internal/gateway/adapters/http/auth"
	noteshttp "smartnotes/internal/gateway/adapters/http/notes"
	"smartnotes/internal/gateway/app/services"
	notespg "smartnotes/internal/notes/adapters/postgres"
	"smartnotes/internal/notes/adapters/summarizer"
	notesapp "smartnotes/internal/notes/app"
	notesports "smartnotes/internal/notes/ports/services"
	"smartnotes/pkg/logger"
	"smartnotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "LOGGER_MODE"
	EnvLoggerLevel = "LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "smartnotes service started"
	LogServiceShutdownDone = "smartnotes service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogRemoteSummarizer    = "using remote summarization provider"
	LogFallbackSummarizer  = "no provider credential configured, using local fallback summarizer"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres, cfg.Postgres.MigrationsDir)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		redisCache, err := cache.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		userRepo := authpg.NewUserRepository(database.Pool())
		noteRepo := notespg.NewNoteRepository(database.Pool())

		passwordSvc := authsvc.NewBcrypt(cfg.JWT.BCryptCost)
		tokenSvc := authsvc.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetAccessTokenTTL())

		var noteSummarizer notesports.Summarizer
		if cfg.Summarizer.HasAPIKey() {
			log.Info(ctx, LogRemoteSummarizer, zap.String("model", cfg.Summarizer.Model))
			noteSummarizer = summarizer.NewGemini(&cfg.Summarizer)
		} else {
			log.Info(ctx, LogFallbackSummarizer)
			noteSummarizer = summarizer.NewFallback()
		}

		authUseCase := authapp.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
		noteUseCase := notesapp.NewNoteUseCase(noteRepo, noteSummarizer)
		profileService := services.NewProfileService(authUseCase, redisCache)

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		authHandler := authhttp.NewHandler(authUseCase, profileService)
		notesHandler := noteshttp.NewHandler(noteUseCase)
		httpserver.SetupRouter(app, authHandler, notesHandler, tokenSvc)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.Shutdown()
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				log.Info(ctx, "closing Redis connection")
				return redisCache.Close()
			},
			// Закрытие базы данных.
			func(ctx context.Context) error {
				log.Info(ctx, "closing database connection")
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
