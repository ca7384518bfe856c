package services_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"content-service/internal/models"
	"content-service/internal/services"
	"content-service/internal/utils"
)

// fakeContentStore records the arguments the service passes down.
type fakeContentStore struct {
	findType    string
	findLimit   int64
	findSkip    int64
	inserted    *models.Content
	updatedID   string
	updatedSet  bson.M
	deletedType string
}

func (f *fakeContentStore) Insert(ctx context.Context, c *models.Content) error {
	f.inserted = c
	return nil
}

func (f *fakeContentStore) FindByID(ctx context.Context, id string) (*models.Content, error) {
	return nil, utils.ErrNotFound
}

func (f *fakeContentStore) Find(ctx context.Context, contentType string, limit, skip int64) ([]models.Content, error) {
	f.findType = contentType
	f.findLimit = limit
	f.findSkip = skip
	return []models.Content{}, nil
}

func (f *fakeContentStore) UpdateByID(ctx context.Context, id string, fields bson.M) (*models.Content, error) {
	f.updatedID = id
	f.updatedSet = fields
	return &models.Content{ID: id}, nil
}

func (f *fakeContentStore) DeleteByID(ctx context.Context, id string) error { return nil }

func (f *fakeContentStore) DeleteByType(ctx context.Context, contentType string) (int64, error) {
	f.deletedType = contentType
	return 3, nil
}

func (f *fakeContentStore) IncrementViews(ctx context.Context, id string) error { return nil }

func (f *fakeContentStore) Stats(ctx context.Context) (*models.ContentStats, error) {
	return &models.ContentStats{}, nil
}

func TestListRejectsInvalidType(t *testing.T) {
	svc := services.NewContentService(&fakeContentStore{})

	if _, err := svc.List(context.Background(), "bogus", "", ""); !errors.Is(err, utils.ErrInvalidType) {
		t.Fatalf("err = %v, want ErrInvalidType", err)
	}

	for _, typ := range []string{"", "video", "photo", "program", "link"} {
		if _, err := svc.List(context.Background(), typ, "", ""); err != nil {
			t.Errorf("List(type=%q): %v", typ, err)
		}
	}
}

func TestListClampsPagination(t *testing.T) {
	tests := []struct {
		name      string
		limit     string
		skip      string
		wantLimit int64
		wantSkip  int64
	}{
		{"defaults", "", "", 50, 0},
		{"zero limit", "0", "", 1, 0},
		{"huge limit", "1000", "", 100, 0},
		{"max limit", "100", "", 100, 0},
		{"non-numeric limit", "abc", "", 50, 0},
		{"negative skip", "", "-5", 50, 0},
		{"plain values", "7", "20", 7, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeContentStore{}
			svc := services.NewContentService(store)
			if _, err := svc.List(context.Background(), "", tt.limit, tt.skip); err != nil {
				t.Fatalf("List: %v", err)
			}
			if store.findLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", store.findLimit, tt.wantLimit)
			}
			if store.findSkip != tt.wantSkip {
				t.Errorf("skip = %d, want %d", store.findSkip, tt.wantSkip)
			}
		})
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		item models.Content
		want error
	}{
		{"missing title", models.Content{Type: "video", URL: "http://x"}, utils.ErrMissingFields},
		{"missing url", models.Content{Type: "video", Title: "t"}, utils.ErrMissingFields},
		{"missing type", models.Content{Title: "t", URL: "http://x"}, utils.ErrMissingFields},
		{"blank title", models.Content{Type: "video", Title: "   ", URL: "http://x"}, utils.ErrMissingFields},
		{"bad type", models.Content{Type: "movie", Title: "t", URL: "http://x"}, utils.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeContentStore{}
			svc := services.NewContentService(store)
			if _, err := svc.Create(context.Background(), &tt.item); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if store.inserted != nil {
				t.Error("invalid payload reached storage")
			}
		})
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	store := &fakeContentStore{}
	svc := services.NewContentService(store)

	created, err := svc.Create(context.Background(), &models.Content{
		Type:  "video",
		Title: "Clip",
		URL:   "https://example.com/clip.mp4",
		Views: 99, // client-supplied counters are ignored
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("no id assigned")
	}
	if created.Views != 0 {
		t.Errorf("views = %d, want 0", created.Views)
	}
	if created.Category != models.DefaultCategory {
		t.Errorf("category = %q, want %q", created.Category, models.DefaultCategory)
	}
	if created.Tags == nil {
		t.Error("tags not defaulted to empty slice")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not assigned")
	}
	if store.inserted != created {
		t.Error("created item not persisted")
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	store := &fakeContentStore{}
	svc := services.NewContentService(store)

	title := "New title"
	category := "Reels"
	if _, err := svc.Update(context.Background(), "id1", &services.ContentUpdate{
		Title:    &title,
		Category: &category,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if store.updatedID != "id1" {
		t.Errorf("id = %q, want id1", store.updatedID)
	}
	want := bson.M{"title": "New title", "category": "Reels"}
	if len(store.updatedSet) != len(want) {
		t.Fatalf("set = %v, want %v", store.updatedSet, want)
	}
	for k, v := range want {
		if store.updatedSet[k] != v {
			t.Errorf("set[%q] = %v, want %v", k, store.updatedSet[k], v)
		}
	}
}

func TestUpdateValidation(t *testing.T) {
	bad := "movie"
	blank := "  "

	tests := []struct {
		name   string
		update services.ContentUpdate
		want   error
	}{
		{"bad type", services.ContentUpdate{Type: &bad}, utils.ErrInvalidType},
		{"blank title", services.ContentUpdate{Title: &blank}, utils.ErrMissingFields},
		{"blank url", services.ContentUpdate{URL: &blank}, utils.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeContentStore{}
			svc := services.NewContentService(store)
			if _, err := svc.Update(context.Background(), "id1", &tt.update); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if store.updatedID != "" {
				t.Error("invalid update reached storage")
			}
		})
	}
}

func TestDeleteAllPhotos(t *testing.T) {
	store := &fakeContentStore{}
	svc := services.NewContentService(store)

	count, err := svc.DeleteAllPhotos(context.Background())
	if err != nil {
		t.Fatalf("DeleteAllPhotos: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if store.deletedType != models.TypePhoto {
		t.Errorf("deleted type = %q, want %q", store.deletedType, models.TypePhoto)
	}
}
