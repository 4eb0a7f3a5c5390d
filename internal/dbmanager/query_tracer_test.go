package dbmanager

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tracer := &queryTracer{log: log}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL:  "UPDATE users SET password_hash = $2 WHERE id = $1",
		Args: []any{int64(1), "$2a$10$secret-hash"},
	})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{
		CommandTag: pgconn.NewCommandTag("UPDATE 1"),
		Err:        errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "UPDATE users SET password_hash")
	assert.Contains(t, out, "UPDATE 1")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "secret-hash")
}

func TestQueryTracer_endWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tracer := &queryTracer{log: log}

	tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	assert.Empty(t, buf.String())
}
