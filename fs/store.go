// Package fs provides file-based storage: the content-addressed Markdown
// store and the corpus HTML reader.
package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/fwojciec/qtdoc"
)

// Ensure Store implements qtdoc.ContentStore at compile time.
var _ qtdoc.ContentStore = (*Store)(nil)

// Store is the durable cache tier: one file per canonical URL, addressed by
// the SHA-256 digest of the key and sharded two hex characters deep.
// Entries are permanent until explicitly removed; the corpus is static, so
// there is no eviction.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file location for key: dir/h[:2]/h.md where h is the
// hex SHA-256 digest of key. The mapping is a pure function of the key.
func (s *Store) Path(key string) string {
	sum := sha256.Sum256([]byte(key))
	h := hex.EncodeToString(sum[:])
	return filepath.Join(s.dir, h[:2], h+".md")
}

// Read returns the stored content for key. An absent entry is a miss, not
// an error.
func (s *Store) Read(ctx context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(s.Path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Write stores content for key atomically and durably: the content is
// written to a temporary file in the final directory, forced to stable
// storage, then renamed over the final path. A concurrent reader sees
// either the old entry or the new one, never a mix.
func (s *Store) Write(ctx context.Context, key, value string) error {
	p := s.Path(key)
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		// No-op after a successful rename; cleans up on the error paths.
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}
