package mock

import (
	"context"

	"github.com/fwojciec/qtdoc"
)

var _ qtdoc.MemoryCache = (*MemoryCache)(nil)

// MemoryCache is a mock implementation of qtdoc.MemoryCache.
type MemoryCache struct {
	GetFn func(key string) (string, bool)
	PutFn func(key, value string)
}

func (c *MemoryCache) Get(key string) (string, bool) {
	return c.GetFn(key)
}

func (c *MemoryCache) Put(key, value string) {
	c.PutFn(key, value)
}

var _ qtdoc.ContentStore = (*ContentStore)(nil)

// ContentStore is a mock implementation of qtdoc.ContentStore.
type ContentStore struct {
	ReadFn  func(ctx context.Context, key string) (string, bool, error)
	WriteFn func(ctx context.Context, key, value string) error
}

func (s *ContentStore) Read(ctx context.Context, key string) (string, bool, error) {
	return s.ReadFn(ctx, key)
}

func (s *ContentStore) Write(ctx context.Context, key, value string) error {
	return s.WriteFn(ctx, key, value)
}
