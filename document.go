package qtdoc

import "context"

// Document represents one corpus page as stored in the search index.
// Title, Headings and Body are the indexed fields; URL and PathRel are
// returned verbatim with search hits.
type Document struct {
	Title    string `json:"title"`
	Headings string `json:"headings"`
	Body     string `json:"body"`
	URL      string `json:"url"`
	PathRel  string `json:"pathRel"`
}

// Empty reports whether the document carries no indexable content.
// Pages without a title and without body text are skipped by the builder.
func (d *Document) Empty() bool {
	return d.Title == "" && d.Body == ""
}

// IndexStats summarizes one index build pass.
type IndexStats struct {
	Indexed int `json:"indexed"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// IndexMetadata records index provenance for diagnostics. It is advisory
// only; correctness never depends on it.
type IndexMetadata struct {
	DocBase    string `json:"docBase"`
	TotalFiles int    `json:"totalFiles"`
}

// BuildProgressFunc is called after each file during an index build with
// the running count, the total file count, and the file just processed.
// It exists for reporting only; indexing does not depend on it.
type BuildProgressFunc func(current, total int, path string)

// IndexBuilder rebuilds the search index from the corpus. A rebuild is
// destructive and whole-corpus: any pre-existing index is discarded.
type IndexBuilder interface {
	Build(ctx context.Context, docBase string, progress BuildProgressFunc) (*IndexStats, error)
}

// Search scopes. Only ScopeAll is currently supported.
const (
	ScopeAll    = "all"
	ScopeAPI    = "api"
	ScopeGuides = "guides"
)

// SearchResult is a single ranked hit. Score is normalized so that larger
// means more relevant, regardless of the ranking engine's native sign.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
	Context string  `json:"context"`
}

// SearchService executes ranked full-text queries against the index.
type SearchService interface {
	// Search runs a ranked query. An empty or all-whitespace query returns
	// no results and no error. Returns EUNAVAILABLE if the index does not
	// exist, and EINVALID for an unsupported scope.
	Search(ctx context.Context, query string, limit int, scope string) ([]*SearchResult, error)

	// Metadata returns the provenance record stored with the index.
	Metadata(ctx context.Context) (*IndexMetadata, error)
}
