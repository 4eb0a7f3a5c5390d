package dbmanager

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
	"github.com/talx-hub/likeboard/internal/utils/pgcontainer"
)

const testDefaultTimeout = 5 * time.Second

var getDSN func() string

func TestMain(m *testing.M) {
	log := slog.Default()
	code, err := runMain(m, log)
	if err != nil {
		log.ErrorContext(context.TODO(),
			"unexpected test failure",
			slog.Any(model.KeyLoggerError, err),
		)
	}
	os.Exit(code)
}

func runMain(m *testing.M, log *slog.Logger) (int, error) {
	pg := pgcontainer.New(log)
	err := pg.RunContainer()
	defer pg.Close()
	if errors.Is(err, serviceerrs.ErrDockerUnavailable) {
		log.Warn("docker is unavailable, DB tests are skipped", slog.Any(model.KeyLoggerError, err))
		return m.Run(), nil
	}
	if err != nil {
		return 1, err //nolint: wrapcheck // test setup
	}

	getDSN = pg.GetDSN
	return m.Run(), nil
}

func requireDSN(t *testing.T) string {
	t.Helper()
	if getDSN == nil {
		t.Skip("postgres container is not running")
	}
	return getDSN()
}

func TestDBManager_Connect(t *testing.T) {
	dsn := requireDSN(t)
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx)
	require.NoError(t, db.Error(), "failed to connect to test DB using dsn %s", dsn)
}

func TestDBManager_Ping(t *testing.T) {
	dsn := requireDSN(t)
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx)
	require.NoError(t, db.Error())
	require.NoError(t, db.Healthy(ctx))
}

func TestDBManager_ApplyMigrations(t *testing.T) {
	dsn := requireDSN(t)
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx).ApplyMigrations(ctx)
	require.NoError(t, db.Error(), "applying migrations twice must be a no-op")

	pool, err := db.GetPool(ctx)
	require.NoError(t, err)
	for _, table := range []string{"users", "user_likes"} {
		var exists bool
		err = pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}
}

func TestDBManager_RollbackMigrations(t *testing.T) {
	dsn := requireDSN(t)
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).ApplyMigrations(ctx).RollbackMigrations(ctx)
	require.NoError(t, db.Error())

	pool, err := db.GetPool(ctx)
	require.NoError(t, err)
	var exists bool
	err = pool.QueryRow(ctx, `SELECT to_regclass('users') IS NOT NULL`).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)

	db.ApplyMigrations(ctx)
	require.NoError(t, db.Error())
}

func TestDBManager_GetPool_from_nil(t *testing.T) {
	db := New("postgres://nobody@localhost:1/none", slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()
	p, err := db.GetPool(ctx)
	assert.Nil(t, p)
	require.ErrorIs(t, err, serviceerrs.ErrDBNotConnected)
	require.ErrorIs(t, db.Healthy(ctx), serviceerrs.ErrDBNotConnected)
}

func TestDBManager_Ping_without_connect(t *testing.T) {
	db := New("postgres://nobody@localhost:1/none", slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Ping(ctx).ApplyMigrations(ctx)
	require.ErrorIs(t, db.Error(), serviceerrs.ErrDBNotConnected)
}

func TestDBManager_Connect_bad_dsn(t *testing.T) {
	db := New("::not a dsn::", slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx)
	require.Error(t, db.Error())
	_, err := db.GetPool(ctx)
	require.Error(t, err)
}

func TestDBManager_GetPool(t *testing.T) {
	dsn := requireDSN(t)
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx)
	require.NoError(t, db.Error())
	p, err := db.GetPool(ctx)
	require.NoError(t, err)
	assert.NotNil(t, p)
}
