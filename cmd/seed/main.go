package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"content-service/internal/config"
	"content-service/internal/models"
	"content-service/internal/repository"
	"content-service/internal/utils"
)

var seedItems = []models.Content{
	{
		Type:         models.TypeVideo,
		Title:        "Featured Reel",
		Description:  "Hot trend available now.",
		URL:          "https://files.example.com/reels/featured.mp4",
		Category:     "Reels",
		ThumbnailURL: "https://placehold.co/600x400/1a1a1a/FFF?text=Reel",
	},
	{
		Type:     models.TypePhoto,
		Title:    "Gallery Opener",
		URL:      "https://files.example.com/photos/opener.jpg",
		Category: "Gallery",
	},
}

// Seeds sample content, skipping anything whose url already exists.
// The duplicate check lives here on purpose: the repository enforces no
// uniqueness on url.
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

	store := repository.NewStore(cfg.Mongo.URI, cfg.Mongo.Database)
	repo := repository.NewContentRepo(store, cfg.Mongo.ContentCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for i := range seedItems {
		item := seedItems[i]
		n, err := repo.CountByURL(ctx, item.URL)
		if err != nil {
			logger.Fatalf("duplicate check: %v", err)
		}
		if n > 0 {
			logger.Infof("skipping existing item: %s", item.Title)
			continue
		}
		item.ID = uuid.NewString()
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if item.Category == "" {
			item.Category = models.DefaultCategory
		}
		if err := repo.Insert(ctx, &item); err != nil {
			logger.Fatalf("insert %q: %v", item.Title, err)
		}
		logger.Infof("created item: %s", item.Title)
	}

	_ = store.Close(ctx)
}
