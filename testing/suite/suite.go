package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New returns a context bounded by maxWaitDuration and a suite with a debug logger.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// BlockingReader returns a reader that never yields data until the test ends.
func BlockingReader(t *testing.T) io.Reader {
	t.Helper()

	reader, writer := io.Pipe()
	t.Cleanup(func() {
		_ = writer.Close()
	})

	return reader
}
