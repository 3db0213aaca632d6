package qtdoc

// DefaultCacheSize is the default capacity of the in-memory page cache.
const DefaultCacheSize = 128

// Config holds the externally supplied settings the services need. Values
// are treated as opaque and already expanded (no ~ or env interpolation).
type Config struct {
	// DocBase is the root directory of the pre-downloaded HTML corpus.
	DocBase string

	// CacheDir is the root of the on-disk Markdown store.
	CacheDir string

	// IndexPath is the location of the SQLite search index file.
	IndexPath string

	// CacheSize is the capacity of the in-memory page cache.
	CacheSize int
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.DocBase == "" {
		return Errorf(EINVALID, "documentation base directory required")
	}
	if c.CacheDir == "" {
		return Errorf(EINVALID, "cache directory required")
	}
	if c.IndexPath == "" {
		return Errorf(EINVALID, "index path required")
	}
	if c.CacheSize < 0 {
		return Errorf(EINVALID, "cache size must not be negative")
	}
	return nil
}

// EffectiveCacheSize returns CacheSize or the default when unset.
func (c *Config) EffectiveCacheSize() int {
	if c.CacheSize == 0 {
		return DefaultCacheSize
	}
	return c.CacheSize
}
