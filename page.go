package qtdoc

import "context"

// Page represents a served documentation page.
type Page struct {
	// Title is the page title. Empty on cache hits; only the conversion
	// path recovers it from the HTML.
	Title string

	// CanonicalURL is the canonical form of the requested URL.
	CanonicalURL string

	// Markdown is the converted page content, attribution trailer included.
	Markdown string

	// Links are the in-corpus outbound links discovered during conversion.
	// Nil on cache hits.
	Links []Link
}

// Link is an outbound link discovered in a page's content area.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ExtractResult holds the content extracted from an HTML page for the
// conversion path.
type ExtractResult struct {
	// Title is the page title from the first heading or the <title> tag.
	Title string

	// ContentHTML is the main content area with navigation chrome removed.
	ContentHTML string

	// Links are outbound links from the content area, resolved to absolute
	// canonical URLs.
	Links []Link
}

// ExtractOptions narrows extraction to part of a page.
type ExtractOptions struct {
	// Fragment is the id of an anchor within the page.
	Fragment string

	// SectionOnly limits the content to the fragment's section: the
	// anchored heading up to the next heading of the same or higher level.
	// Ignored when Fragment is empty.
	SectionOnly bool
}

// Extractor extracts the main content from HTML pages, removing boilerplate.
type Extractor interface {
	// ExtractPage returns the content area as clean HTML plus title and
	// outbound links. baseURL is the page's canonical URL, used to resolve
	// relative links.
	ExtractPage(html, baseURL string, opts ExtractOptions) (*ExtractResult, error)

	// ExtractText returns the indexable fields of a page: title,
	// concatenated heading text, and concatenated non-heading body text.
	// The same content-area heuristics as ExtractPage apply.
	ExtractText(html string) (*Document, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into Markdown.
	Convert(html string) (string, error)
}

// MemoryCache is a bounded in-memory recency cache. Get promotes the key on
// a hit; Put evicts the least-recently-used entry when over capacity.
type MemoryCache interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// ContentStore is the durable content-addressed cache tier. Read reports a
// miss for an absent key, never an error; Write is atomic and durable, so a
// reader never observes a partially written entry.
type ContentStore interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
}

// CorpusReader loads raw HTML pages from the local corpus.
type CorpusReader interface {
	// LoadPage reads the file at path. Returns ENOTFOUND if it does not
	// exist.
	LoadPage(path string) (string, error)
}

// ReadOptions narrows a documentation read request.
type ReadOptions struct {
	// Fragment focuses the page on the given anchor id.
	Fragment string

	// SectionOnly returns only the fragment's section content.
	SectionOnly bool
}

// DocumentReader serves documentation pages by URL.
type DocumentReader interface {
	Read(ctx context.Context, rawURL string, opts ReadOptions) (*Page, error)
}
