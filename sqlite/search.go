package sqlite

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/qtdoc"
)

// Ensure SearchService implements qtdoc.SearchService at compile time.
var _ qtdoc.SearchService = (*SearchService)(nil)

// SearchService executes ranked FTS5 queries against a built index. The
// index file is opened read-only per query, so a concurrent rebuild either
// serves the pre-rebuild index or fails cleanly with EUNAVAILABLE.
type SearchService struct {
	path string
}

// NewSearchService creates a SearchService reading the index at path.
func NewSearchService(path string) *SearchService {
	return &SearchService{path: path}
}

// Search runs a ranked full-text query across title, headings and body.
// BM25 scores negative-is-better; the reported score is normalized so
// larger means more relevant. An empty or all-whitespace query is an
// intentional no-op returning no results.
func (s *SearchService) Search(ctx context.Context, query string, limit int, scope string) ([]*qtdoc.SearchResult, error) {
	if err := checkScope(scope); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// snippet() argument 2 selects the body column; a match that only hits
	// the title produces an empty snippet and falls back below.
	rows, err := db.QueryContext(ctx, `
		SELECT
			title,
			url,
			bm25(docs) AS score,
			snippet(docs, 2, '<b>', '</b>', '…', 10) AS context
		FROM docs
		WHERE docs MATCH ?
		ORDER BY bm25(docs) ASC
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, mapQueryError(err)
	}
	defer rows.Close()

	var results []*qtdoc.SearchResult
	for rows.Next() {
		var r qtdoc.SearchResult
		if err := rows.Scan(&r.Title, &r.URL, &r.Score, &r.Context); err != nil {
			return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to scan result: %v", err)
		}

		r.Score = math.Abs(r.Score)
		if strings.TrimSpace(r.Context) == "" {
			r.Context = fallbackContext(r.Title)
		}
		if r.Title == "" {
			r.Title = "Untitled"
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, mapQueryError(err)
	}

	return results, nil
}

// Metadata returns the provenance record stored with the index.
func (s *SearchService) Metadata(ctx context.Context) (*qtdoc.IndexMetadata, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT key, value FROM meta")
	if err != nil {
		return nil, mapQueryError(err)
	}
	defer rows.Close()

	var meta qtdoc.IndexMetadata
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to scan metadata: %v", err)
		}
		switch key {
		case "doc_base":
			meta.DocBase = value
		case "total_files":
			meta.TotalFiles, _ = strconv.Atoi(value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, mapQueryError(err)
	}
	return &meta, nil
}

func (s *SearchService) open() (*DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EUNAVAILABLE, "search index not found at %s", s.path)
	}
	db := NewReadOnlyDB(s.path)
	if err := db.Open(); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EUNAVAILABLE, "search index not readable: %v", err)
	}
	return db, nil
}

// mapQueryError distinguishes a missing/uninitialized index from a genuine
// query failure.
func mapQueryError(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "no such table") {
		return qtdoc.Errorf(qtdoc.EUNAVAILABLE, "search index not initialized")
	}
	return qtdoc.Errorf(qtdoc.EINDEX, "search query failed: %v", err)
}

// fallbackContext substitutes the title when the body snippet is empty so
// no result ships without a preview.
func fallbackContext(title string) string {
	if title == "" {
		return "No preview available"
	}
	if len(title) > 200 {
		return title[:200]
	}
	return title
}

func checkScope(scope string) error {
	switch scope {
	case "", qtdoc.ScopeAll:
		return nil
	case qtdoc.ScopeAPI, qtdoc.ScopeGuides:
		return qtdoc.Errorf(qtdoc.EINVALID, "scope %q is not currently supported", scope)
	default:
		return qtdoc.Errorf(qtdoc.EINVALID, "unknown scope %q", scope)
	}
}
