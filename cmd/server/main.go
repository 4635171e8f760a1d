package main

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/pgedit/studio-api/internal/api"
	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
	"github.com/pgedit/studio-api/internal/core/service"
	"github.com/pgedit/studio-api/internal/infrastructure/config"
	mongodb "github.com/pgedit/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pgedit/studio-api/internal/infrastructure/db/redis"
	"github.com/pgedit/studio-api/internal/infrastructure/gateway"
	"github.com/pgedit/studio-api/internal/infrastructure/queue"
	"github.com/pgedit/studio-api/pkg/logger"
)

// @title        PG Edit Studio API
// @version      1.0
// @description  Text-to-image generation with credit-based monetization and an admin back-office.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// No .env file is fine; rely on the existing environment.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Datastores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Audit pipeline ---
	eventRepo := mongodb.NewCreditEventRepository(db)
	auditService := service.NewAuditService(eventRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	// --- Seed admin account ---
	userRepo := mongodb.NewUserRepository(db)
	if err := seedAdmin(ctx, userRepo, cfg); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	// --- Outbound gateways ---
	generator := gateway.NewImagenClient(gateway.ImagenOptions{
		APIKey:  cfg.Imagen.APIKey,
		BaseURL: cfg.Imagen.BaseURL,
		Model:   cfg.Imagen.Model,
	}, log)
	configPublisher := gateway.NewHTTPConfigPublisher(cfg.ConfigEndpoint, nil)

	e := api.NewRouter(api.Options{
		Mongo:           db,
		Redis:           rdb,
		Config:          cfg,
		Audit:           dispatcher,
		Generator:       generator,
		ConfigPublisher: configPublisher,
		Logger:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("studio API listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}

// seedAdmin creates the back-office account on first startup. The password
// lives only as a bcrypt hash in the user table; login verifies it
// server-side like any other credential.
func seedAdmin(ctx context.Context, users ports.UserRepository, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	email := strings.ToLower(cfg.AdminEmail)
	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         cfg.AdminName,
		Email:        email,
		Credits:      cfg.AdminCredits,
		IsAdmin:      true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
