package postgres_test

import (
	"context"
	"fmt"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/storage/postgres"
	"mangatrade/pkg/storage/sqlstore"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func setupTestDB(t *testing.T) (*sqlstore.Store, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	store, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 10,
		MinConnections:     2,
	})
	require.NoError(t, err)

	require.NoError(t, store.Migrate(ctx))

	return store, func() {
		_ = store.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func TestOptions_ConnString(t *testing.T) {
	opts := postgres.Options{
		Username: "u",
		Password: "p",
		Host:     "db",
		Port:     5433,
		Database: "manga",
		SslMode:  "require",
	}
	require.Equal(t, "host=db port=5433 user=u dbname=manga password=p sslmode=require", opts.ConnString())
}

func TestPostgres_ListLifecycle(t *testing.T) {
	store, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	for _, e := range []domain.Entry{
		{OwnerID: "1", Kind: domain.Wishlist, Title: "Innocent 7", Key: "innocent 7"},
		{OwnerID: "1", Kind: domain.Wishlist, Title: "bleach", Key: "bleach"},
		{OwnerID: "1", Kind: domain.Tradelist, Title: "Bleach", Key: "bleach"},
		{OwnerID: "2", Kind: domain.Tradelist, Title: "innocent   7", Key: "innocent 7"},
	} {
		_, err := store.AddEntry(ctx, e)
		require.NoError(t, err)
	}

	added, err := store.AddEntry(ctx, domain.Entry{OwnerID: "1", Kind: domain.Wishlist, Title: "BLEACH", Key: "bleach"})
	require.NoError(t, err)
	require.False(t, added)

	titles, err := store.Titles(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, []string{"bleach", "Innocent 7"}, titles)

	hits, err := store.SearchTitles(ctx, "1", domain.Wishlist, "Innocent", "innocent")
	require.NoError(t, err)
	require.Equal(t, []string{"Innocent 7"}, hits)

	offers, err := store.EntriesByKeys(ctx, domain.Tradelist, []string{"innocent 7", "bleach"}, "1")
	require.NoError(t, err)
	require.Equal(t, []domain.Entry{
		{OwnerID: "2", Kind: domain.Tradelist, Title: "innocent   7", Key: "innocent 7"},
	}, offers)

	conflicts, err := store.Conflicts(ctx, "1")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, "bleach", conflicts[0].WishlistTitle)

	dups, err := store.DuplicateKeys(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Empty(t, dups)

	n, err := store.DeleteEntry(ctx, "1", domain.Wishlist, "bleach")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = store.DeleteEntries(ctx, "2", domain.Tradelist)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestPostgres_AddEntry_ConcurrentSameKey(t *testing.T) {
	store, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
		errs     []error
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.AddEntry(ctx, domain.Entry{
				OwnerID: "1",
				Kind:    domain.Wishlist,
				Title:   fmt.Sprintf("One Piece #%d", i),
				Key:     "one piece",
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
			}
			if ok {
				inserted++
			}
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Equal(t, 1, inserted)

	keys, err := store.OwnerKeys(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, []string{"one piece"}, keys)
}

func TestOptions_PoolConfig(t *testing.T) {
	opts := postgres.Options{
		Username:           "u",
		Password:           "p",
		Host:               "db",
		Port:               5432,
		Database:           "lists",
		SslMode:            "disable",
		ConnMaxLifetime:    2 * time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 10,
		MinConnections:     2,
	}

	cfg, err := opts.PoolConfig()
	require.NoError(t, err)
	require.Equal(t, int32(10), cfg.MaxConns)
	require.Equal(t, int32(2), cfg.MinConns)
	require.Equal(t, 2*time.Minute, cfg.MaxConnLifetime)
	require.Equal(t, time.Minute, cfg.MaxConnIdleTime)
	require.Equal(t, "db", cfg.ConnConfig.Host)
	require.Equal(t, "lists", cfg.ConnConfig.Database)

	// zero values keep the pool defaults
	cfg, err = postgres.Options{Host: "db", Port: 5432, SslMode: "disable"}.PoolConfig()
	require.NoError(t, err)
	require.Equal(t, int32(0), cfg.MinConns)
	require.Positive(t, cfg.MaxConns)
}
