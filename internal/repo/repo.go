package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
)

type connectionPool interface {
	Begin(context.Context) (pgx.Tx, error)
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type DB struct {
	pool connectionPool
	log  *slog.Logger
}

type dbLogic func(ctx context.Context, tx connectionPool) (any, error)

func WithTX[T any](ctx context.Context,
	pool connectionPool, log *slog.Logger, f dbLogic,
) (T, error) {
	var zero T

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to begin TX: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.LogAttrs(ctx,
				slog.LevelError,
				"failed to rollback TX",
				slog.Any(model.KeyLoggerError, rbErr),
			)
		}
	}()

	res, err := f(ctx, tx)
	if err != nil {
		return zero, err //nolint: wrapcheck // error from wrapped function
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("failed to commit TX: %w", err)
	}

	r, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("failed to convert any to %T", zero)
	}
	return r, nil
}

var retryDelay = func(counter int) time.Duration {
	return time.Duration(counter*2+1) * time.Second // count: 0 1 2 -> seconds: 1 3 5
}

func WithRetry[T any](dbQuery func() (T, error), counter int) (T, error) {
	return withRetry(dbQuery, counter, isRetryableError)
}

// WithInsertRetry is WithRetry for statements that must not run twice.
// An unknown transaction outcome may hide a committed insert, so it is
// returned to the caller instead of being retried.
func WithInsertRetry[T any](dbQuery func() (T, error), counter int) (T, error) {
	return withRetry(dbQuery, counter, isRetryableInsertError)
}

func withRetry[T any](
	dbQuery func() (T, error), counter int, retryable func(error) bool,
) (T, error) {
	res, err := dbQuery()
	if err == nil {
		return res, nil
	}

	var zero T
	const maxAttemptCount = 3
	if counter >= maxAttemptCount {
		return zero, fmt.Errorf("failed to reattempt query to the DB: %w", err)
	}
	if retryable(err) {
		time.Sleep(retryDelay(counter))
		return withRetry(dbQuery, counter+1, retryable)
	}
	return zero, fmt.Errorf("on attempt #%d error occurred: %w", counter, err)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.TransactionResolutionUnknown {
		return true
	}
	return isRetryableInsertError(err)
}

func isRetryableInsertError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow,
			pgerrcode.SQLClientUnableToEstablishSQLConnection,
			pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
			return true
		}
	}

	return false
}

// classify attaches a storage sentinel from serviceerrs to err
// so that the service layer does not depend on pgx.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", serviceerrs.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", serviceerrs.ErrUniqueViolation, err)
	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", serviceerrs.ErrCheckViolation, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", serviceerrs.ErrForeignKeyViolation, err)
	}
	return err
}
