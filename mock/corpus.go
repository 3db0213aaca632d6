package mock

import "github.com/fwojciec/qtdoc"

var _ qtdoc.CorpusReader = (*CorpusReader)(nil)

// CorpusReader is a mock implementation of qtdoc.CorpusReader.
type CorpusReader struct {
	LoadPageFn func(path string) (string, error)
}

func (r *CorpusReader) LoadPage(path string) (string, error) {
	return r.LoadPageFn(path)
}
