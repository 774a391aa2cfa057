package metadata

import (
	"context"
	"io"
	"time"

	"imd/internal/logger"
)

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard, false)
}

func seconds(n int) *time.Duration {
	return Ptr(time.Duration(n) * time.Second)
}

func song(title, artist string, duration int) Record {
	return Record{Title: Ptr(title), Artist: Ptr(artist), Duration: seconds(duration)}
}

// mockProvider answers searches from a table keyed by "title|artist" and
// records every query it receives.
type mockProvider struct {
	results map[string][]Record
	err     error
	queries []string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Search(_ context.Context, rec Record) ([]Record, error) {
	key := deref(rec.Title) + "|" + deref(rec.Artist)
	m.queries = append(m.queries, key)
	if m.err != nil {
		return nil, m.err
	}
	return m.results[key], nil
}
