package dbmanager

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talx-hub/likeboard/internal/model"
)

type tracerKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

// queryTracer logs statements at debug level. Arguments are never logged:
// they carry password hashes.
type queryTracer struct {
	log *slog.Logger
}

func (t *queryTracer) TraceQueryStart(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryStartData,
) context.Context {
	return context.WithValue(ctx, tracerKey{}, queryStart{
		at:  time.Now(),
		sql: data.SQL,
	})
}

func (t *queryTracer) TraceQueryEnd(
	ctx context.Context,
	_ *pgx.Conn,
	data pgx.TraceQueryEndData,
) {
	start, ok := ctx.Value(tracerKey{}).(queryStart)
	if !ok {
		return
	}

	attrs := []slog.Attr{
		slog.String("query", start.sql),
		slog.Duration("duration", time.Since(start.at)),
		slog.String("tag", data.CommandTag.String()),
	}
	if data.Err != nil {
		attrs = append(attrs, slog.Any(model.KeyLoggerError, data.Err))
	}
	t.log.LogAttrs(ctx, slog.LevelDebug, "query done", attrs...)
}
