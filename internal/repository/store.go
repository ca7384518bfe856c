package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-service/internal/utils"
)

const connectTimeout = 10 * time.Second

// Store owns the process-wide Mongo client. The connection is opened
// lazily on first use and reused for every later request, so the
// service can start (and the env-admin can log in) while the database
// is unreachable.
type Store struct {
	uri      string
	database string

	mu     sync.Mutex
	client *mongo.Client
}

func NewStore(uri, database string) *Store {
	return &Store{uri: uri, database: database}
}

// Database returns the shared database handle, connecting if needed.
// A failed attempt leaves the handle unset so the next request retries.
func (s *Store) Database(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client.Database(s.database), nil
	}
	if s.uri == "" {
		return nil, fmt.Errorf("%w: MONGODB_URI is not set", utils.ErrStorageUnavailable)
	}

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorageUnavailable, err)
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", utils.ErrStorageUnavailable, err)
	}

	s.client = client
	return client.Database(s.database), nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}
