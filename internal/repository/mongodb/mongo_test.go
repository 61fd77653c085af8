package mongodb

import (
	"context"
	"testing"
	"time"

	"exercise-tracker/config"
	"exercise-tracker/internal/entities"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestMalformedIDsNeverReachTheStore(t *testing.T) {
	ctx := context.Background()
	m := New(ctx, zap.NewNop().Sugar(), &config.Config{})

	_, err := m.GetUser(ctx, "not-an-object-id")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = m.CreateExercise(ctx, entities.Exercise{UserID: "nope", Description: "run"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	exs, err := m.ListExercises(ctx, entities.LogFilter{UserID: "nope"})
	require.NoError(t, err)
	require.Empty(t, exs)
}

func TestExerciseDocEntity(t *testing.T) {
	owner := primitive.NewObjectID()
	doc := exerciseDoc{ID: primitive.NewObjectID(), UserID: owner, Description: "run", Duration: 30, Date: "2023-05-01"}

	ex, err := doc.entity()
	require.NoError(t, err)
	require.Equal(t, owner.Hex(), ex.UserID)
	require.Equal(t, time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), ex.Date)

	doc.Date = "May 1st"
	_, err = doc.entity()
	require.Error(t, err)
}
