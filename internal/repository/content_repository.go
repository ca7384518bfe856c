package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-service/internal/models"
	"content-service/internal/utils"
)

type ContentRepo struct {
	store *Store
	name  string
}

func NewContentRepo(store *Store, collection string) *ContentRepo {
	return &ContentRepo{store: store, name: collection}
}

func (r *ContentRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(r.name), nil
}

func (r *ContentRepo) Insert(ctx context.Context, c *models.Content) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	_, err = col.InsertOne(ctx, c)
	return err
}

func (r *ContentRepo) FindByID(ctx context.Context, id string) (*models.Content, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var c models.Content
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Find returns items newest first. contentType narrows the query when
// non-empty; callers validate it before reaching the repository.
func (r *ContentRepo) Find(ctx context.Context, contentType string, limit, skip int64) ([]models.Content, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	filter := bson.M{}
	if contentType != "" {
		filter["type"] = contentType
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]models.Content, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ContentRepo) UpdateByID(ctx context.Context, id string, fields bson.M) (*models.Content, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Content
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepo) DeleteByID(ctx context.Context, id string) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *ContentRepo) DeleteByType(ctx context.Context, contentType string) (int64, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	res, err := col.DeleteMany(ctx, bson.M{"type": contentType})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ContentRepo) IncrementViews(ctx context.Context, id string) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// CountByURL backs the seeder's duplicate check. The repository itself
// enforces no uniqueness on url.
func (r *ContentRepo) CountByURL(ctx context.Context, url string) (int64, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{"url": url})
}

func (r *ContentRepo) Stats(ctx context.Context) (*models.ContentStats, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"count": bson.M{"$sum": 1},
			"views": bson.M{"$sum": "$views"},
		}}},
	}
	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
		Views int64  `bson:"views"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &models.ContentStats{ByType: make(map[string]int64)}
	for _, row := range rows {
		stats.ByType[row.Type] = row.Count
		stats.Total += row.Count
		stats.TotalViews += row.Views
	}
	return stats, nil
}
