package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"content-service/internal/config"
	"content-service/internal/repository"
	"content-service/internal/utils"
)

// Resets the stored admin record to the env-configured credentials.
func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}
	logger, err := utils.NewLogger(!cfg.Production(), cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		logger.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatalf("hash password: %v", err)
	}

	store := repository.NewStore(cfg.Mongo.URI, cfg.Mongo.Database)
	repo := repository.NewAdminRepo(store, cfg.Mongo.AdminCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.Upsert(ctx, uuid.NewString(), cfg.Admin.Username, string(hash)); err != nil {
		logger.Fatalf("reset admin: %v", err)
	}
	logger.Infof("admin account %q reset", cfg.Admin.Username)

	_ = store.Close(ctx)
}
