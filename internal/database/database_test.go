package database

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testConnString string

func mustStartPostgresContainer() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	ctx := context.Background()

	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("fortune_wheel"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	testConnString, err = dbContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := mustStartPostgresContainer()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
	os.Exit(code)
}

func newTestService(t *testing.T) Service {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	svc, err := New(ctx, testConnString)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestHealth(t *testing.T) {
	svc := newTestService(t)

	stats := svc.Health(context.Background())
	assert.Equal(t, "up", stats["status"])
	assert.NotEmpty(t, stats["total_connections"])
}

func TestRecordAndTopWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordWin(ctx, "ABC123", "alice", 1600))
	require.NoError(t, svc.RecordWin(ctx, "ABC123", "bob", 900))
	require.NoError(t, svc.RecordWin(ctx, "XYZ789", "carol", 2400))

	entries, err := svc.TopWins(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "carol", entries[0].Name)
	assert.Equal(t, 2400, entries[0].Score)
	assert.Equal(t, "alice", entries[1].Name)
	assert.False(t, entries[0].PlayedAt.IsZero())
}

func TestTopWins_LimitOne(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordWin(ctx, "LIMIT1", "dave", 50))

	entries, err := svc.TopWins(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
