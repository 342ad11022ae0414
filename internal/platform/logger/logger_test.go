package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		wantErr  bool
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case insensitive", logLevel: "INFO"},
		{name: "unknown level falls back to info", logLevel: "verbose"},
		{name: "empty level", logLevel: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(tt.logLevel)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)
			// Setup installs the logger as the process default.
			assert.Equal(t, logger, slog.Default())
		})
	}
}

func TestLoggerContext(t *testing.T) {
	ctx := context.Background()

	// A bare context falls back to the default logger.
	assert.Equal(t, slog.Default(), FromContext(ctx))

	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = WithLogger(ctx, scoped)
	assert.Equal(t, scoped, FromContext(ctx))

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, scoped, FromContextOrDefault(ctx, fallback))
	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
