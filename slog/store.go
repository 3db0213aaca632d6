// Package slog provides logging decorators for qtdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qtdoc"
)

// Ensure LoggingStore implements qtdoc.ContentStore at compile time.
var _ qtdoc.ContentStore = (*LoggingStore)(nil)

// LoggingStore wraps a ContentStore with debug logging for cache traffic.
type LoggingStore struct {
	next   qtdoc.ContentStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next qtdoc.ContentStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Read delegates to the wrapped store and logs the hit/miss outcome.
func (s *LoggingStore) Read(ctx context.Context, key string) (string, bool, error) {
	begin := time.Now()
	value, ok, err := s.next.Read(ctx, key)
	s.logger.Debug("disk cache read",
		"key", key,
		"hit", ok,
		"duration", time.Since(begin),
	)
	return value, ok, err
}

// Write delegates to the wrapped store and logs the written size.
func (s *LoggingStore) Write(ctx context.Context, key, value string) error {
	begin := time.Now()
	err := s.next.Write(ctx, key, value)
	s.logger.Debug("disk cache write",
		"key", key,
		"bytes", len(value),
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}
