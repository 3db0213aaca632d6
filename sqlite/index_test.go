package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/qtdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexService_Build(t *testing.T) {
	t.Parallel()

	t.Run("indexes the whole corpus", func(t *testing.T) {
		t.Parallel()

		docBase := sampleCorpus(t)
		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")

		stats, err := newBuilder(t, indexPath).Build(context.Background(), docBase, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Indexed)
		assert.Equal(t, 0, stats.Skipped)
		assert.Equal(t, 0, stats.Errors)

		_, err = os.Stat(indexPath)
		assert.NoError(t, err, "index file should be created")
	})

	t.Run("reports progress for every file in order", func(t *testing.T) {
		t.Parallel()

		docBase := sampleCorpus(t)
		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")

		type call struct {
			current, total int
			path           string
		}
		var calls []call
		progress := func(current, total int, path string) {
			calls = append(calls, call{current, total, path})
		}

		_, err := newBuilder(t, indexPath).Build(context.Background(), docBase, progress)
		require.NoError(t, err)

		require.Len(t, calls, 3)
		assert.Equal(t, call{1, 3, filepath.Join(docBase, "qstring.html")}, calls[0])
		assert.Equal(t, call{2, 3, filepath.Join(docBase, "qwidget.html")}, calls[1])
		assert.Equal(t, call{3, 3, filepath.Join(docBase, "signals-slots.html")}, calls[2])
	})

	t.Run("repeated builds of an unchanged corpus are equivalent", func(t *testing.T) {
		t.Parallel()

		docBase := sampleCorpus(t)
		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")
		builder := newBuilder(t, indexPath)

		first, err := builder.Build(context.Background(), docBase, nil)
		require.NoError(t, err)
		second, err := builder.Build(context.Background(), docBase, nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("skips pages without title or body", func(t *testing.T) {
		t.Parallel()

		docBase := sampleCorpus(t)
		empty := filepath.Join(docBase, "empty.html")
		require.NoError(t, os.WriteFile(empty, []byte("<html><body></body></html>"), 0o644))
		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")

		stats, err := newBuilder(t, indexPath).Build(context.Background(), docBase, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Indexed)
		assert.Equal(t, 1, stats.Skipped)
		assert.Equal(t, 0, stats.Errors)
	})

	t.Run("rebuild discards entries for removed pages", func(t *testing.T) {
		t.Parallel()

		docBase := sampleCorpus(t)
		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")
		builder := newBuilder(t, indexPath)

		_, err := builder.Build(context.Background(), docBase, nil)
		require.NoError(t, err)

		require.NoError(t, os.Remove(filepath.Join(docBase, "qwidget.html")))
		stats, err := builder.Build(context.Background(), docBase, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Indexed)
	})

	t.Run("fails for a missing corpus directory", func(t *testing.T) {
		t.Parallel()

		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")

		_, err := newBuilder(t, indexPath).Build(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)
		require.Error(t, err)
		assert.Equal(t, qtdoc.EINDEX, qtdoc.ErrorCode(err))
	})

	t.Run("fails for a corpus with no HTML files", func(t *testing.T) {
		t.Parallel()

		indexPath := filepath.Join(t.TempDir(), "fts.sqlite")

		_, err := newBuilder(t, indexPath).Build(context.Background(), t.TempDir(), nil)
		require.Error(t, err)
		assert.Equal(t, qtdoc.EINDEX, qtdoc.ErrorCode(err))
		assert.True(t, strings.Contains(qtdoc.ErrorMessage(err), "no HTML files"))
	})
}
