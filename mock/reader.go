package mock

import (
	"context"

	"github.com/fwojciec/qtdoc"
)

var _ qtdoc.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of qtdoc.DocumentReader.
type DocumentReader struct {
	ReadFn func(ctx context.Context, rawURL string, opts qtdoc.ReadOptions) (*qtdoc.Page, error)
}

func (r *DocumentReader) Read(ctx context.Context, rawURL string, opts qtdoc.ReadOptions) (*qtdoc.Page, error) {
	return r.ReadFn(ctx, rawURL, opts)
}
