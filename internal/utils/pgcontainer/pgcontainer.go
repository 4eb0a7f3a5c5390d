package pgcontainer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

const (
	defaultTag   = "17-alpine"
	pgPort       = "5432/tcp"
	testDBName   = "test"
	testUser     = "test"
	testPassword = "test"
	expireAfter  = 120 // seconds
	maxWait      = 30 * time.Second
)

// PGContainer runs a throwaway postgres in docker for integration tests.
type PGContainer struct {
	log      *slog.Logger
	pool     *dockertest.Pool
	resource *dockertest.Resource
	dsn      string
}

func New(log *slog.Logger) *PGContainer {
	return &PGContainer{log: log}
}

// loadTag reads POSTGRES_TAG, optionally from a .env file next to the tests.
func loadTag() string {
	_ = godotenv.Load(".env")
	if tag := os.Getenv("POSTGRES_TAG"); tag != "" {
		return tag
	}
	return defaultTag
}

// RunContainer starts postgres and waits until it accepts connections.
// serviceerrs.ErrDockerUnavailable is returned when there is no docker daemon.
func (c *PGContainer) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("%w: %w", serviceerrs.ErrDockerUnavailable, err)
	}
	if err = pool.Client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", serviceerrs.ErrDockerUnavailable, err)
	}
	c.pool = pool

	resource, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        loadTag(),
			Env: []string{
				"POSTGRES_USER=" + testUser,
				"POSTGRES_PASSWORD=" + testPassword,
				"POSTGRES_DB=" + testDBName,
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.resource = resource
	if err = resource.Expire(expireAfter); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelWarn,
			"failed to set container expiration",
			slog.Any(model.KeyLoggerError, err),
		)
	}

	c.dsn = fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		testUser,
		testPassword,
		resource.GetHostPort(pgPort),
		testDBName,
	)

	pool.MaxWait = maxWait
	if err = pool.Retry(c.ping); err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}
	return nil
}

func (c *PGContainer) ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, c.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to the DB: %w", err)
	}
	defer func() {
		_ = conn.Close(context.Background())
	}()
	if err = conn.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping the DB: %w", err)
	}
	return nil
}

func (c *PGContainer) GetDSN() string {
	return c.dsn
}

func (c *PGContainer) Close() {
	if c.pool == nil || c.resource == nil {
		return
	}
	if err := c.pool.Purge(c.resource); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
