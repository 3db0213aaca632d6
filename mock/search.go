package mock

import (
	"context"

	"github.com/fwojciec/qtdoc"
)

var _ qtdoc.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of qtdoc.SearchService.
type SearchService struct {
	SearchFn   func(ctx context.Context, query string, limit int, scope string) ([]*qtdoc.SearchResult, error)
	MetadataFn func(ctx context.Context) (*qtdoc.IndexMetadata, error)
}

func (s *SearchService) Search(ctx context.Context, query string, limit int, scope string) ([]*qtdoc.SearchResult, error) {
	return s.SearchFn(ctx, query, limit, scope)
}

func (s *SearchService) Metadata(ctx context.Context) (*qtdoc.IndexMetadata, error) {
	return s.MetadataFn(ctx)
}
