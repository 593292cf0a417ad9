package impl

import (
	"io"
	"log/slog"
	"time"
)

// fixedNow is the clock used by services under test
var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sequentialIDs(ids ...string) func() string {
	i := 0

	return func() string {
		id := ids[i%len(ids)]
		i++

		return id
	}
}

func ptr[T any](v T) *T {
	return &v
}
