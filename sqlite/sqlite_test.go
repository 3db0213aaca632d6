package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/qtdoc"
	"github.com/fwojciec/qtdoc/fs"
	"github.com/fwojciec/qtdoc/goquery"
	"github.com/fwojciec/qtdoc/sqlite"
	"github.com/stretchr/testify/require"
)

// Compile-time interface verification.
var (
	_ qtdoc.IndexBuilder  = (*sqlite.IndexService)(nil)
	_ qtdoc.SearchService = (*sqlite.SearchService)(nil)
)

var samplePages = map[string]string{
	"qstring.html": `
		<html>
		  <head><title>QString Class Reference</title></head>
		  <body>
		    <div class="mainContent">
		      <h1>QString Class Reference</h1>
		      <p>The QString class provides a Unicode character string.</p>
		      <h2>Public Functions</h2>
		      <p>QString provides many functions for manipulating strings.</p>
		    </div>
		  </body>
		</html>`,
	"qwidget.html": `
		<html>
		  <head><title>QWidget Class Reference</title></head>
		  <body>
		    <div class="mainContent">
		      <h1>QWidget Class Reference</h1>
		      <p>The QWidget class is the base class of all user interface objects.</p>
		      <h2>Signals and Slots</h2>
		      <p>Widgets can emit signals and have slots for receiving signals.</p>
		    </div>
		  </body>
		</html>`,
	"signals-slots.html": `
		<html>
		  <head><title>Signals and Slots</title></head>
		  <body>
		    <div class="mainContent">
		      <h1>Signals and Slots</h1>
		      <p>Signals and slots are used for communication between objects.</p>
		      <h2>Overview</h2>
		      <p>The signals and slots mechanism is a central feature of Qt.</p>
		    </div>
		  </body>
		</html>`,
}

// sampleCorpus writes the three-page test corpus and returns its root.
func sampleCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, html := range samplePages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(html), 0o644))
	}
	return dir
}

// newBuilder wires an IndexService against the real corpus reader and
// extractor, matching the production composition.
func newBuilder(t *testing.T, indexPath string) *sqlite.IndexService {
	t.Helper()
	return sqlite.NewIndexService(indexPath, fs.NewCorpus(), goquery.NewExtractor(), nil)
}

// buildSampleIndex builds the sample corpus into a fresh index and returns
// the index path.
func buildSampleIndex(t *testing.T) string {
	t.Helper()

	docBase := sampleCorpus(t)
	indexPath := filepath.Join(t.TempDir(), "fts.sqlite")

	stats, err := newBuilder(t, indexPath).Build(context.Background(), docBase, nil)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Indexed)
	require.Equal(t, 0, stats.Errors)

	return indexPath
}
