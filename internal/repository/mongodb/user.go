package mongodb

import (
	"context"
	"errors"

	"exercise-tracker/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

func (d userDoc) entity() entities.User {
	return entities.User{ID: d.ID.Hex(), Username: d.Username}
}

// CreateUser inserts a user document with a fresh ObjectID.
func (m *Mongo) CreateUser(ctx context.Context, username string) (*entities.User, error) {
	doc := userDoc{ID: primitive.NewObjectID(), Username: username}
	if _, err := m.users.InsertOne(ctx, doc); err != nil {
		m.log.Errorw("failed to create user", "error", err, "username", username)
		return nil, storeErr("create user", err)
	}

	u := doc.entity()
	m.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUser fetches a user by hex ObjectID. Malformed ids map to not found.
func (m *Mongo) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, entities.ErrUserNotFound
	}

	var doc userDoc
	if err := m.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrUserNotFound
		}
		m.log.Errorw("failed to get user", "error", err, "user_id", userID)
		return nil, storeErr("get user", err)
	}

	u := doc.entity()
	return &u, nil
}

// ListUsers returns all users ordered by ObjectID, i.e. creation order.
func (m *Mongo) ListUsers(ctx context.Context) ([]entities.User, error) {
	cur, err := m.users.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, storeErr("list users", err)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		m.log.Errorw("failed to decode users", "error", err)
		return nil, storeErr("decode users", err)
	}

	users := make([]entities.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.entity())
	}
	return users, nil
}

// DeleteAllUsers removes every user document.
func (m *Mongo) DeleteAllUsers(ctx context.Context) (int64, error) {
	res, err := m.users.DeleteMany(ctx, bson.D{})
	if err != nil {
		m.log.Errorw("failed to delete users", "error", err)
		return 0, storeErr("delete users", err)
	}

	m.log.Warnw("all users deleted", "count", res.DeletedCount)
	return res.DeletedCount, nil
}
