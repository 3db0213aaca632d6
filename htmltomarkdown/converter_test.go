package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/qtdoc"
	"github.com/fwojciec/qtdoc/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements qtdoc.Converter at compile time.
var _ qtdoc.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>QString Class Reference</h1><p>The QString class provides a Unicode character string.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# QString Class Reference")
		assert.Contains(t, md, "The QString class provides a Unicode character string.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://doc.qt.io/archives/qt-4.8/qchar.html">QChar</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[QChar](https://doc.qt.io/archives/qt-4.8/qchar.html)")
	})

	t.Run("converts function tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>Function</th><th>Description</th></tr><tr><td>append()</td><td>Appends a string</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "append()")
		assert.Contains(t, md, "Appends a string")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<pre>QString s = "hello";</pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, `QString s = "hello";`)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, qtdoc.EINVALID, qtdoc.ErrorCode(err))
	})
}
