package mongodb

import (
	"context"
	"time"

	"exercise-tracker/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// exerciseDoc stores the date as an ISO string so range filters compare lexicographically.
type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        string             `bson:"date"`
}

func (d exerciseDoc) entity() (entities.Exercise, error) {
	date, err := time.Parse(entities.DateLayout, d.Date)
	if err != nil {
		return entities.Exercise{}, err
	}
	return entities.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        date,
	}, nil
}

// CreateExercise inserts an entry. The owner is validated by the caller.
func (m *Mongo) CreateExercise(ctx context.Context, ex entities.Exercise) (*entities.Exercise, error) {
	owner, err := primitive.ObjectIDFromHex(ex.UserID)
	if err != nil {
		return nil, entities.ErrUserNotFound
	}

	doc := exerciseDoc{
		ID:          primitive.NewObjectID(),
		UserID:      owner,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        entities.FormatDate(ex.Date),
	}
	if _, err := m.exercises.InsertOne(ctx, doc); err != nil {
		m.log.Errorw("failed to create exercise", "error", err, "user_id", ex.UserID)
		return nil, storeErr("create exercise", err)
	}

	out, err := doc.entity()
	if err != nil {
		return nil, storeErr("decode exercise", err)
	}
	out.Username = ex.Username
	m.log.Infow("exercise created", "exercise_id", out.ID, "user_id", out.UserID)
	return &out, nil
}

// ListExercises returns the user's entries in the inclusive range ordered by date then _id.
func (m *Mongo) ListExercises(ctx context.Context, filter entities.LogFilter) ([]entities.Exercise, error) {
	owner, err := primitive.ObjectIDFromHex(filter.UserID)
	if err != nil {
		return make([]entities.Exercise, 0), nil
	}

	query := bson.M{
		"userId": owner,
		"date": bson.M{
			"$gte": entities.FormatDate(filter.From),
			"$lte": entities.FormatDate(filter.To),
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := m.exercises.Find(ctx, query, opts)
	if err != nil {
		m.log.Errorw("failed to list exercises", "error", err, "user_id", filter.UserID)
		return nil, storeErr("list exercises", err)
	}

	var docs []exerciseDoc
	if err := cur.All(ctx, &docs); err != nil {
		m.log.Errorw("failed to decode exercises", "error", err, "user_id", filter.UserID)
		return nil, storeErr("decode exercises", err)
	}

	out := make([]entities.Exercise, 0, len(docs))
	for _, d := range docs {
		ex, err := d.entity()
		if err != nil {
			return nil, storeErr("decode exercise date", err)
		}
		out = append(out, ex)
	}
	return out, nil
}

// DeleteAllExercises removes every exercise document.
func (m *Mongo) DeleteAllExercises(ctx context.Context) (int64, error) {
	res, err := m.exercises.DeleteMany(ctx, bson.D{})
	if err != nil {
		m.log.Errorw("failed to delete exercises", "error", err)
		return 0, storeErr("delete exercises", err)
	}

	m.log.Warnw("all exercises deleted", "count", res.DeletedCount)
	return res.DeletedCount, nil
}
