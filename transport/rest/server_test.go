package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	t.Run("Stops cleanly when the context is canceled", func(t *testing.T) {
		// Given: a server on a free port
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- Start(ctx, logger, "0", http.NotFoundHandler())
		}()

		// When: the context is canceled
		time.Sleep(50 * time.Millisecond)
		cancel()

		// Then: Start returns without error and nothing is logged
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * shutdownTimeout):
			t.Fatal("server did not stop")
		}
		assert.Empty(t, logs.String())
	})

	t.Run("Reports a listen failure", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

		err := Start(context.Background(), logger, "not-a-port", http.NotFoundHandler())

		require.Error(t, err)
	})
}
