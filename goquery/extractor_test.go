package goquery_test

import (
	"testing"

	"github.com/fwojciec/qtdoc"
	"github.com/fwojciec/qtdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements qtdoc.Extractor at compile time.
var _ qtdoc.Extractor = (*goquery.Extractor)(nil)

const qstringPage = `
<html>
  <head><title>QString Class Reference | Qt 4.8</title></head>
  <body>
    <div class="header">Qt Documentation</div>
    <div class="breadcrumbs">Home / Classes</div>
    <div class="content mainContent">
      <h1>QString Class Reference</h1>
      <p>The QString class provides a Unicode character string.
         See <a href="qchar.html">QChar</a> and
         <a href="qbytearray.html#details">QByteArray</a> and
         <a href="https://example.com/elsewhere">elsewhere</a>.</p>
      <h2 id="public-functions">Public Functions</h2>
      <p>QString provides many functions for manipulating strings.</p>
      <h2 id="details">Detailed Description</h2>
      <p>Strings are implicitly shared.</p>
    </div>
    <div class="footer">Copyright footer</div>
  </body>
</html>
`

const baseURL = "https://doc.qt.io/archives/qt-4.8/qstring.html"

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewExtractor().ExtractText(qstringPage)
	require.NoError(t, err)

	assert.Equal(t, "QString Class Reference", doc.Title)

	assert.Contains(t, doc.Headings, "QString Class Reference")
	assert.Contains(t, doc.Headings, "Public Functions")
	assert.Contains(t, doc.Headings, "Detailed Description")

	assert.Contains(t, doc.Body, "Unicode character string")
	assert.Contains(t, doc.Body, "implicitly shared")
	assert.NotContains(t, doc.Body, "Public Functions", "heading text must not leak into the body field")

	assert.NotContains(t, doc.Body, "Copyright footer")
	assert.NotContains(t, doc.Headings, "Qt Documentation")
}

func TestExtractor_ExtractText_TitleFallsBackToTitleTag(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewExtractor().ExtractText(
		`<html><head><title>Index</title></head><body><p>hello</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Index", doc.Title)
	assert.Contains(t, doc.Body, "hello")
}

func TestExtractor_ExtractText_EmptyPage(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewExtractor().ExtractText(`<html><body></body></html>`)
	require.NoError(t, err)

	assert.True(t, doc.Empty())
}

func TestExtractor_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("returns the content area without chrome", func(t *testing.T) {
		t.Parallel()

		res, err := goquery.NewExtractor().ExtractPage(qstringPage, baseURL, qtdoc.ExtractOptions{})
		require.NoError(t, err)

		assert.Equal(t, "QString Class Reference", res.Title)
		assert.Contains(t, res.ContentHTML, "Unicode character string")
		assert.NotContains(t, res.ContentHTML, "Copyright footer")
		assert.NotContains(t, res.ContentHTML, "Qt Documentation")
	})

	t.Run("resolves in-corpus links and drops external ones", func(t *testing.T) {
		t.Parallel()

		res, err := goquery.NewExtractor().ExtractPage(qstringPage, baseURL, qtdoc.ExtractOptions{})
		require.NoError(t, err)

		var urls []string
		for _, l := range res.Links {
			urls = append(urls, l.URL)
		}
		assert.Contains(t, urls, "https://doc.qt.io/archives/qt-4.8/qchar.html")
		assert.Contains(t, urls, "https://doc.qt.io/archives/qt-4.8/qbytearray.html#details")
		assert.NotContains(t, urls, "https://example.com/elsewhere")
	})

	t.Run("slices a fragment section", func(t *testing.T) {
		t.Parallel()

		res, err := goquery.NewExtractor().ExtractPage(qstringPage, baseURL, qtdoc.ExtractOptions{
			Fragment:    "public-functions",
			SectionOnly: true,
		})
		require.NoError(t, err)

		assert.Contains(t, res.ContentHTML, "Public Functions")
		assert.Contains(t, res.ContentHTML, "many functions for manipulating strings")
		assert.NotContains(t, res.ContentHTML, "Unicode character string")
		assert.NotContains(t, res.ContentHTML, "implicitly shared")
	})

	t.Run("narrows to the anchored element without section_only", func(t *testing.T) {
		t.Parallel()

		res, err := goquery.NewExtractor().ExtractPage(qstringPage, baseURL, qtdoc.ExtractOptions{
			Fragment: "details",
		})
		require.NoError(t, err)

		assert.Contains(t, res.ContentHTML, "Detailed Description")
		assert.NotContains(t, res.ContentHTML, "Unicode character string")
		assert.NotContains(t, res.ContentHTML, "implicitly shared",
			"without section_only only the anchored element is returned, not its section")
	})

	t.Run("returns ENOTFOUND for a missing fragment", func(t *testing.T) {
		t.Parallel()

		for _, sectionOnly := range []bool{false, true} {
			_, err := goquery.NewExtractor().ExtractPage(qstringPage, baseURL, qtdoc.ExtractOptions{
				Fragment:    "no-such-anchor",
				SectionOnly: sectionOnly,
			})
			require.Error(t, err)
			assert.Equal(t, qtdoc.ENOTFOUND, qtdoc.ErrorCode(err))
		}
	})
}
