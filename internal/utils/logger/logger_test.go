package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talx-hub/likeboard/internal/model"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestFromContext(t *testing.T) {
	log := New(slog.LevelDebug)

	assert.Same(t, log, FromContext(WithContext(context.Background(), log)))
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	wrong := context.WithValue(context.Background(), model.KeyContextLogger, "not a logger")
	assert.Same(t, slog.Default(), FromContext(wrong))
}
