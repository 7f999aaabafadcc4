package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/expomadeinworld/preference-service/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	questionsCollection = "questions"
	brandsCollection    = "brands"
	marketsCollection   = "markets"
)

// Database wraps the Mongo client and the collections this service uses.
type Database struct {
	client    *mongo.Client
	questions *mongo.Collection
	brands    *mongo.Collection
	markets   *mongo.Collection
}

// NewDatabase connects to the document store with retry logic for cold-start
// environments (e.g. Atlas serverless resume).
func NewDatabase(cfg *config.Config) (*Database, error) {
	return NewDatabaseWithRetry(cfg, 5, time.Second)
}

// NewDatabaseWithRetry connects with configurable retry/backoff.
func NewDatabaseWithRetry(cfg *config.Config, maxRetries int, initialDelay time.Duration) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	var client *mongo.Client
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("[PREF-DB] Connection attempt %d/%d to database %q", attempt, maxRetries, cfg.DBName)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		c, err := mongo.Connect(ctx, opts)
		if err == nil {
			err = c.Ping(ctx, readpref.Primary())
		}
		cancel()

		if err == nil {
			client = c
			log.Printf("[PREF-DB] Successfully connected on attempt %d", attempt)
			break
		}

		lastErr = fmt.Errorf("failed to reach document store: %w", err)
		log.Printf("[PREF-DB] Connection failed (attempt %d): %v", attempt, err)
		if c != nil {
			_ = c.Disconnect(context.Background())
		}

		if attempt < maxRetries {
			// Exponential backoff: 1s, 2s, 4s, 8s
			delay := initialDelay * time.Duration(1<<(attempt-1))
			log.Printf("[PREF-DB] Retrying in %v...", delay)
			time.Sleep(delay)
		}
	}

	if client == nil {
		return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
	}

	database := client.Database(cfg.DBName)
	return &Database{
		client:    client,
		questions: database.Collection(questionsCollection),
		brands:    database.Collection(brandsCollection),
		markets:   database.Collection(marketsCollection),
	}, nil
}

// Close disconnects from the document store.
func (d *Database) Close() error {
	if d.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// Health checks whether the document store is reachable.
func (d *Database) Health(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}
