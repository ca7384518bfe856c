package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"content-service/internal/models"
	"content-service/internal/utils"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ContentStore is the slice of the content repository the service needs.
type ContentStore interface {
	Insert(ctx context.Context, c *models.Content) error
	FindByID(ctx context.Context, id string) (*models.Content, error)
	Find(ctx context.Context, contentType string, limit, skip int64) ([]models.Content, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) (*models.Content, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByType(ctx context.Context, contentType string) (int64, error)
	IncrementViews(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.ContentStats, error)
}

// ContentUpdate carries a partial edit; nil fields are left untouched.
type ContentUpdate struct {
	Type         *string   `json:"type"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	URL          *string   `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Tags         *[]string `json:"tags"`
	Category     *string   `json:"category"`
	FileSize     *string   `json:"fileSize"`
}

type ContentService struct {
	store ContentStore
}

func NewContentService(store ContentStore) *ContentService {
	return &ContentService{store: store}
}

// List validates and clamps the raw query parameters, then fetches
// matching items newest first.
func (s *ContentService) List(ctx context.Context, contentType, limitParam, skipParam string) ([]models.Content, error) {
	if contentType != "" && !models.ValidType(contentType) {
		return nil, utils.ErrInvalidType
	}
	return s.store.Find(ctx, contentType, clampLimit(limitParam), clampSkip(skipParam))
}

func (s *ContentService) Get(ctx context.Context, id string) (*models.Content, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ContentService) Create(ctx context.Context, c *models.Content) (*models.Content, error) {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.URL) == "" || c.Type == "" {
		return nil, utils.ErrMissingFields
	}
	if !models.ValidType(c.Type) {
		return nil, utils.ErrInvalidType
	}

	c.ID = uuid.NewString()
	c.Views = 0
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Category == "" {
		c.Category = models.DefaultCategory
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.store.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies the supplied fields only. Required fields may be
// rewritten but never blanked, and views/createdAt stay out of reach.
func (s *ContentService) Update(ctx context.Context, id string, u *ContentUpdate) (*models.Content, error) {
	fields := bson.M{}
	if u.Type != nil {
		if !models.ValidType(*u.Type) {
			return nil, utils.ErrInvalidType
		}
		fields["type"] = *u.Type
	}
	if u.Title != nil {
		if strings.TrimSpace(*u.Title) == "" {
			return nil, utils.ErrMissingFields
		}
		fields["title"] = *u.Title
	}
	if u.URL != nil {
		if strings.TrimSpace(*u.URL) == "" {
			return nil, utils.ErrMissingFields
		}
		fields["url"] = *u.URL
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.ThumbnailURL != nil {
		fields["thumbnail_url"] = *u.ThumbnailURL
	}
	if u.Tags != nil {
		fields["tags"] = *u.Tags
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.FileSize != nil {
		fields["file_size"] = *u.FileSize
	}
	return s.store.UpdateByID(ctx, id, fields)
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}

func (s *ContentService) DeleteAllPhotos(ctx context.Context) (int64, error) {
	return s.store.DeleteByType(ctx, models.TypePhoto)
}

func (s *ContentService) RecordView(ctx context.Context, id string) error {
	return s.store.IncrementViews(ctx, id)
}

func (s *ContentService) Stats(ctx context.Context) (*models.ContentStats, error) {
	return s.store.Stats(ctx)
}

func clampLimit(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultLimit
	}
	if n < 1 {
		return 1
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

func clampSkip(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
