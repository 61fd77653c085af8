// Package mongodb implements the repository against MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"exercise-tracker/config"
	"exercise-tracker/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

// Mongo wraps a driver client and the two collections it owns.
type Mongo struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.MongoConfig

	client    *mongo.Client
	users     *mongo.Collection
	exercises *mongo.Collection
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
	}
}

// OnStart connects, pings the primary and ensures the log index exists.
func (m *Mongo) OnStart(_ context.Context) error {
	ctx, cancel := context.WithTimeout(m.baseCtx, m.cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.cfg.URI).SetTimeout(m.cfg.Timeout))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping: %w", err)
	}

	db := client.Database(m.cfg.Database)
	exercises := db.Collection(exercisesCollection)
	_, err = exercises.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("create index: %w", err)
	}

	m.client = client
	m.users = db.Collection(usersCollection)
	m.exercises = exercises
	m.log.Infow("mongo ready", "database", m.cfg.Database)
	return nil
}

// OnStop disconnects the client.
func (m *Mongo) OnStop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	m.log.Infow("mongo client disconnected")
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", entities.ErrStorage, op, err)
}
