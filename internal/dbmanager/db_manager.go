package dbmanager

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DBManager owns the connection pool. Its methods can be chained,
// the first failure is kept and returned by Error.
type DBManager struct {
	log  *slog.Logger
	pool *pgxpool.Pool
	err  error
	dsn  string
}

func New(dsn string, log *slog.Logger) *DBManager {
	return &DBManager{
		log:  log,
		pool: nil,
		err:  nil,
		dsn:  dsn,
	}
}

func (m *DBManager) Connect(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	cfg, err := pgxpool.ParseConfig(m.dsn)
	if err != nil {
		m.fail(ctx, "failed to parse DSN", err)
		return m
	}
	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.ConnConfig.Tracer = &queryTracer{m.log}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		m.fail(ctx, "failed to init pgxpool", err)
		return m
	}

	m.pool = pool
	return m
}

func (m *DBManager) Ping(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}
	if m.pool == nil {
		m.fail(ctx, "failed to ping the DB", serviceerrs.ErrDBNotConnected)
		return m
	}

	if err := m.pool.Ping(ctx); err != nil {
		m.fail(ctx, "failed to ping the DB", err)
	}
	return m
}

// ApplyMigrations migrates the schema up to the latest version.
func (m *DBManager) ApplyMigrations(ctx context.Context) *DBManager {
	return m.migrate(ctx, "apply", func(mg *migrate.Migrate) error {
		return mg.Up()
	})
}

// RollbackMigrations migrates the schema all the way down.
func (m *DBManager) RollbackMigrations(ctx context.Context) *DBManager {
	return m.migrate(ctx, "rollback", func(mg *migrate.Migrate) error {
		return mg.Down()
	})
}

func (m *DBManager) migrate(ctx context.Context, action string,
	run func(*migrate.Migrate) error,
) *DBManager {
	if m.err != nil {
		return m
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		m.fail(ctx, "failed to open embedded migrations", err)
		return m
	}
	mg, err := migrate.NewWithSourceInstance("iofs", src, m.dsn)
	if err != nil {
		m.fail(ctx, "failed to init migrator", err)
		return m
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			m.log.LogAttrs(ctx,
				slog.LevelWarn,
				"failed to close migrator",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			mg.GracefulStop <- true
		case <-done:
		}
	}()

	if err = run(mg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.fail(ctx, "failed to "+action+" migrations", err)
		return m
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		m.fail(ctx, "failed to read schema version", err)
		return m
	}
	m.log.LogAttrs(ctx,
		slog.LevelInfo,
		"migrations done",
		slog.String("action", action),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)
	return m
}

func (m *DBManager) Error() error {
	return m.err
}

func (m *DBManager) GetPool(ctx context.Context) (*pgxpool.Pool, error) {
	if m.pool == nil {
		return nil, serviceerrs.ErrDBNotConnected
	}
	if m.err != nil {
		return nil, fmt.Errorf("DB manager is in failed state: %w", m.err)
	}
	return m.pool, nil
}

// Healthy pings the DB without touching the chained error state.
func (m *DBManager) Healthy(ctx context.Context) error {
	if m.pool == nil {
		return serviceerrs.ErrDBNotConnected
	}
	if err := m.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping the DB: %w", err)
	}
	return nil
}

func (m *DBManager) Close() {
	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"connection to DB closed",
	)
}

func (m *DBManager) fail(ctx context.Context, msg string, err error) {
	m.log.LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
	m.err = fmt.Errorf("%s: %w", msg, err)
}
