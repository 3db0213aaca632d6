package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/qtdoc"
	"github.com/fwojciec/qtdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Corpus implements qtdoc.CorpusReader at compile time.
var _ qtdoc.CorpusReader = (*fs.Corpus)(nil)

func TestCorpus_LoadPage(t *testing.T) {
	t.Parallel()

	t.Run("reads UTF-8 content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html>héllo</html>"), 0o644))

		got, err := fs.NewCorpus().LoadPage(path)
		require.NoError(t, err)
		assert.Equal(t, "<html>héllo</html>", got)
	})

	t.Run("falls back to Latin-1 for legacy pages", func(t *testing.T) {
		t.Parallel()

		// 0xE9 is "é" in Latin-1 and invalid as a standalone UTF-8 byte.
		path := filepath.Join(t.TempDir(), "legacy.html")
		require.NoError(t, os.WriteFile(path, []byte{'<', 'p', '>', 0xE9, '<', '/', 'p', '>'}, 0o644))

		got, err := fs.NewCorpus().LoadPage(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>é</p>", got)
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCorpus().LoadPage(filepath.Join(t.TempDir(), "absent.html"))
		require.Error(t, err)
		assert.Equal(t, qtdoc.ENOTFOUND, qtdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCorpus().LoadPage(t.TempDir())
		require.Error(t, err)
		assert.Equal(t, qtdoc.ENOTFOUND, qtdoc.ErrorCode(err))
	})
}
