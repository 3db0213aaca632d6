package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/qtdoc"
)

// Ensure IndexService implements qtdoc.IndexBuilder at compile time.
var _ qtdoc.IndexBuilder = (*IndexService)(nil)

// IndexService builds the FTS5 search index from the local HTML corpus.
// Rebuilds are destructive and whole-corpus: the existing index file is
// discarded, never merged, so no stale entries survive a corpus change.
// Two concurrent builds against the same path are not supported.
type IndexService struct {
	path      string
	corpus    qtdoc.CorpusReader
	extractor qtdoc.Extractor
	logger    *slog.Logger
}

// NewIndexService creates an IndexService writing to path.
func NewIndexService(path string, corpus qtdoc.CorpusReader, extractor qtdoc.Extractor, logger *slog.Logger) *IndexService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexService{path: path, corpus: corpus, extractor: extractor, logger: logger}
}

// Build indexes every HTML file under docBase in lexicographic order of
// relative path, so repeated builds of an unchanged corpus are equivalent.
// A file that fails extraction is counted and skipped; a missing or empty
// corpus aborts the build with EINDEX.
func (s *IndexService) Build(ctx context.Context, docBase string, progress qtdoc.BuildProgressFunc) (*qtdoc.IndexStats, error) {
	info, err := os.Stat(docBase)
	if err != nil || !info.IsDir() {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "documentation base directory not found: %s", docBase)
	}

	files, err := collectHTMLFiles(docBase)
	if err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to enumerate corpus: %v", err)
	}
	if len(files) == 0 {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "no HTML files found under %s", docBase)
	}

	s.logger.Info("building index", "files", len(files), "path", s.path)

	if err := s.removeExisting(); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to remove existing index: %v", err)
	}

	db := NewDB(s.path)
	if err := db.Open(); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to initialize index schema: %v", err)
	}
	defer db.Close()

	stats, err := s.populate(ctx, db, docBase, files, progress)
	if err != nil {
		return nil, err
	}

	// Compact the database after the optimize pass.
	if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to compact index: %v", err)
	}

	s.logger.Info("index build complete",
		"indexed", stats.Indexed, "skipped", stats.Skipped, "errors", stats.Errors)

	return stats, nil
}

func (s *IndexService) populate(ctx context.Context, db *DB, docBase string, files []string, progress qtdoc.BuildProgressFunc) (*qtdoc.IndexStats, error) {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, kv := range [][2]string{
		{"doc_base", docBase},
		{"total_files", strconv.Itoa(len(files))},
	} {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", kv[0], kv[1]); err != nil {
			return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to store metadata: %v", err)
		}
	}

	var stats qtdoc.IndexStats
	for i, file := range files {
		if progress != nil {
			progress(i+1, len(files), file)
		}

		doc, err := s.extractFile(docBase, file)
		if err != nil {
			s.logger.Warn("failed to index file", "file", file, "error", err)
			stats.Errors++
			continue
		}
		if doc.Empty() {
			stats.Skipped++
			continue
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO docs (title, headings, body, url, path_rel) VALUES (?, ?, ?, ?, ?)",
			doc.Title, doc.Headings, doc.Body, doc.URL, doc.PathRel); err != nil {
			return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to insert document: %v", err)
		}
		stats.Indexed++
	}

	// Merge FTS5 b-trees for query performance before committing.
	if _, err := tx.ExecContext(ctx, "INSERT INTO docs(docs) VALUES('optimize')"); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to optimize index: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to commit index: %v", err)
	}
	return &stats, nil
}

func (s *IndexService) extractFile(docBase, file string) (*qtdoc.Document, error) {
	html, err := s.corpus.LoadPage(file)
	if err != nil {
		return nil, err
	}
	doc, err := s.extractor.ExtractText(html)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(docBase, file)
	if err != nil {
		return nil, err
	}
	doc.PathRel = filepath.ToSlash(rel)
	doc.URL = qtdoc.CanonicalBase + doc.PathRel
	return doc, nil
}

// removeExisting discards a previous index, including WAL sidecar files.
func (s *IndexService) removeExisting() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	for _, p := range []string{s.path, s.path + "-wal", s.path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// collectHTMLFiles returns every .html file under root, sorted by path so
// the build order is fully deterministic.
func collectHTMLFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
