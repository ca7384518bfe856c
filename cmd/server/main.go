package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"

	"content-service/internal/auth"
	"content-service/internal/config"
	"content-service/internal/handlers"
	"content-service/internal/repository"
	service "content-service/internal/services"
	"content-service/internal/storage"
	"content-service/internal/utils"
)

func main() {
	// load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}
	dev := !cfg.Production()

	// logger
	logger, err := utils.NewLogger(dev, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// Mongo: lazy handle, opened on first use. The server must come up
	// even when the database is down so the env admin can still log in.
	store := repository.NewStore(cfg.Mongo.URI, cfg.Mongo.Database)
	contentRepo := repository.NewContentRepo(store, cfg.Mongo.ContentCollection)
	adminRepo := repository.NewAdminRepo(store, cfg.Mongo.AdminCollection)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if _, err := store.Database(ctx); err != nil {
			logger.Warnf("mongo not reachable at startup: %v", err)
		}
	}()

	// services
	tokens := auth.NewTokenManager(cfg.Auth.Secret)
	authSvc := service.NewAuthService(adminRepo, tokens, cfg.Admin.Username, cfg.Admin.Password)
	contentSvc := service.NewContentService(contentRepo)

	// asset store is optional; without a bucket the upload route stays off
	var uploadHandler *handlers.UploadHandler
	authHandler := handlers.NewAuthHandler(authSvc, cfg.Auth.CookieDomain, cfg.Production(), logger)
	contentHandler := handlers.NewContentHandler(contentSvc, authHandler, logger)
	if cfg.AWS.Bucket != "" {
		presignTTL := time.Duration(cfg.S3.PresignTTL) * time.Second
		s3store, err := storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.Endpoint, cfg.S3.PublicRead, presignTTL)
		if err != nil {
			logger.Fatalf("s3 init: %v", err)
		}
		uploadHandler = handlers.NewUploadHandler(s3store, authHandler, logger)
	}

	// fiber app & routes
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	handlers.Register(app, contentHandler, authHandler, uploadHandler)

	// start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting content service on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutdown requested")
	timeoutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	_ = store.Close(timeoutCtx)
	logger.Info("shutdown completed")
}
