package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"exercise-tracker/config"
	"exercise-tracker/internal/entities"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupMongo(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	alice, err := repo.CreateUser(ctx, "alice")
	require.NoError(t, err)
	fetched, err := repo.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, *alice, *fetched)

	_, err = repo.GetUser(ctx, "000000000000000000000000")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	for _, ex := range []entities.Exercise{
		{UserID: alice.ID, Description: "swim", Duration: 45, Date: day("2023-03-01")},
		{UserID: alice.ID, Description: "run", Duration: 30, Date: day("2023-01-15")},
		{UserID: alice.ID, Description: "walk", Duration: 10, Date: day("2023-01-15")},
	} {
		_, err := repo.CreateExercise(ctx, ex)
		require.NoError(t, err)
	}

	all, err := repo.ListExercises(ctx, entities.LogFilter{UserID: alice.ID, From: entities.Epoch, To: day("2030-01-01")})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "run", all[0].Description)
	require.Equal(t, "walk", all[1].Description)
	require.Equal(t, "swim", all[2].Description)

	limited, err := repo.ListExercises(ctx, entities.LogFilter{UserID: alice.ID, From: entities.Epoch, To: day("2030-01-01"), Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)

	ranged, err := repo.ListExercises(ctx, entities.LogFilter{UserID: alice.ID, From: day("2023-01-16"), To: day("2023-03-01")})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	require.Equal(t, "2023-03-01", entities.FormatDate(ranged[0].Date))

	n, err := repo.DeleteAllUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	n, err = repo.DeleteAllExercises(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}

func setupMongo(t *testing.T) (*config.Config, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))

	require.NoError(t, pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		return client.Ping(ctx, nil)
	}))

	cfg := &config.Config{
		Repository: config.RepositoryConfig{Backend: config.BackendMongo},
		Mongo:      config.MongoConfig{URI: uri, Database: "exercise_tracker_test", Timeout: 10 * time.Second},
	}

	return cfg, func() { _ = pool.Purge(resource) }
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

func day(s string) time.Time {
	d, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
