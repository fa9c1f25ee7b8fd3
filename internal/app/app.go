package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/educhain/educhain-api/internal/cache"
	"github.com/educhain/educhain-api/internal/config"
	"github.com/educhain/educhain-api/internal/env"
	"github.com/educhain/educhain-api/internal/errHandler"
	"github.com/educhain/educhain-api/internal/file"
	"github.com/educhain/educhain-api/internal/helper"
	"github.com/educhain/educhain-api/internal/repository"
	"github.com/educhain/educhain-api/internal/smtp"
	"github.com/educhain/educhain-api/internal/stream"
	"github.com/joho/godotenv"
)

// Essential services and resources are exposed to the application
// this makes it possible for methods to have access to these items when they need them
type Application struct {
	Config       config.Config
	DB           *repository.DB
	Logger       *slog.Logger
	Mailer       *smtp.Mailer
	WG           sync.WaitGroup
	errorHandler *errHandler.ErrorHandler
	helper       *helper.HelperRepository
	Kafka        *stream.KafkaStream
	Cache        *cache.Cache
	FileUploader *file.FileUploader
}

func NewApplication(logger *slog.Logger) (*Application, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", "error", err)
	}

	var cfg config.Config

	// config values are loaded from the .env file
	// Default values are provided for these items and these should strictly be values for development mode only
	// make sure no production-level value is exposed as default value here
	cfg.BaseURL = env.GetString("BASE_URL", "http://localhost:8000")
	cfg.HttpPort = env.GetInt("HTTP_PORT", 8000)

	cfg.Db.Dsn = env.GetString("DB_DSN", "user:pass@localhost:5432/educhain")
	cfg.Db.Automigrate = env.GetBool("DB_AUTOMIGRATE", true)

	// server errors and KYC review alerts won't be sent via email if the
	// NOTIFICATIONS_EMAIL wasn't set in the .env file
	cfg.Notifications.Email = env.GetString("NOTIFICATIONS_EMAIL", "")

	cfg.Smtp.Host = env.GetString("SMTP_HOST", "example.smtp.host")
	cfg.Smtp.Port = env.GetInt("SMTP_PORT", 25)
	cfg.Smtp.Username = env.GetString("SMTP_USERNAME", "example_username")
	cfg.Smtp.Password = env.GetString("SMTP_PASSWORD", "pa55word")
	cfg.Smtp.From = env.GetString("SMTP_FROM", "EduChain <no_reply@example.org>")

	cfg.KafkaServers = env.GetString("KAFKA_SERVERS", "localhost:9092")
	cfg.RedisServer = env.GetString("REDIS_SERVER", "localhost:6379")

	cfg.FileUploader.ApiKey = env.GetString("CLOUDINARY_API_KEY", "")
	cfg.FileUploader.CloudName = env.GetString("CLOUDINARY_CLOUD_NAME", "")
	cfg.FileUploader.ApiSecret = env.GetString("CLOUDINARY_API_SECRET", "")

	db, err := repository.New(cfg.Db.Dsn, cfg.Db.Automigrate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	mailer, err := smtp.NewMailer(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password, cfg.Smtp.From)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	errorHandler := errHandler.New(cfg.Notifications.Email, mailer, logger)

	kafkaStream := stream.New(cfg.KafkaServers)

	redisCache := cache.New(cfg.RedisServer, 0)

	fileUploader := file.New(cfg.FileUploader.CloudName, cfg.FileUploader.ApiKey, cfg.FileUploader.ApiSecret)

	app := &Application{
		Config:       cfg,
		DB:           db,
		Logger:       logger,
		Mailer:       mailer,
		errorHandler: errorHandler,
		Kafka:        kafkaStream,
		Cache:        redisCache,
		FileUploader: fileUploader,
	}

	app.helper = helper.New(&app.WG, errorHandler)

	return app, nil
}
