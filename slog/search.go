package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qtdoc"
)

// Ensure LoggingSearch implements qtdoc.SearchService at compile time.
var _ qtdoc.SearchService = (*LoggingSearch)(nil)

// LoggingSearch wraps a SearchService with query logging.
type LoggingSearch struct {
	next   qtdoc.SearchService
	logger *slog.Logger
}

// NewLoggingSearch creates a new LoggingSearch.
func NewLoggingSearch(next qtdoc.SearchService, logger *slog.Logger) *LoggingSearch {
	return &LoggingSearch{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the query outcome.
func (s *LoggingSearch) Search(ctx context.Context, query string, limit int, scope string) ([]*qtdoc.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, query, limit, scope)
	s.logger.Info("search",
		"query", query,
		"limit", limit,
		"scope", scope,
		"results", len(results),
		"duration", time.Since(begin),
		"error", err,
	)
	return results, err
}

// Metadata delegates to the wrapped service.
func (s *LoggingSearch) Metadata(ctx context.Context) (*qtdoc.IndexMetadata, error) {
	return s.next.Metadata(ctx)
}
