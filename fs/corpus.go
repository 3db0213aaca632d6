package fs

import (
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/fwojciec/qtdoc"
)

// Ensure Corpus implements qtdoc.CorpusReader at compile time.
var _ qtdoc.CorpusReader = (*Corpus)(nil)

// Corpus reads raw HTML pages from the local documentation tree.
type Corpus struct{}

// NewCorpus creates a new Corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

// LoadPage reads the file at path as UTF-8, falling back to Latin-1 for the
// handful of Qt 4.8 pages that predate the UTF-8 migration. A directory,
// such as the corpus root itself, is reported as not found.
func (c *Corpus) LoadPage(path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", qtdoc.Errorf(qtdoc.ENOTFOUND, "documentation page not found: %s", path)
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", qtdoc.Errorf(qtdoc.ENOTFOUND, "documentation page not found: %s", path)
	}
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
