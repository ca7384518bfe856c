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

type AdminRepo struct {
	store *Store
	name  string
}

func NewAdminRepo(store *Store, collection string) *AdminRepo {
	return &AdminRepo{store: store, name: collection}
}

func (r *AdminRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(r.name), nil
}

func (r *AdminRepo) Count(ctx context.Context) (int64, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{})
}

func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var a models.Admin
	err = col.FindOne(ctx, bson.M{"username": username}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) Insert(ctx context.Context, a *models.Admin) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err = col.InsertOne(ctx, a)
	return err
}

// Upsert replaces the stored hash for username, creating the record if
// absent. Used by the resetadmin command.
func (r *AdminRepo) Upsert(ctx context.Context, id, username, passwordHash string) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	update := bson.M{
		"$set":         bson.M{"password": passwordHash},
		"$setOnInsert": bson.M{"_id": id, "username": username, "created_at": time.Now().UTC()},
	}
	opts := options.Update().SetUpsert(true)
	_, err = col.UpdateOne(ctx, bson.M{"username": username}, update, opts)
	return err
}
