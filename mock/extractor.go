package mock

import "github.com/fwojciec/qtdoc"

var _ qtdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of qtdoc.Extractor.
type Extractor struct {
	ExtractPageFn func(html, baseURL string, opts qtdoc.ExtractOptions) (*qtdoc.ExtractResult, error)
	ExtractTextFn func(html string) (*qtdoc.Document, error)
}

func (e *Extractor) ExtractPage(html, baseURL string, opts qtdoc.ExtractOptions) (*qtdoc.ExtractResult, error) {
	return e.ExtractPageFn(html, baseURL, opts)
}

func (e *Extractor) ExtractText(html string) (*qtdoc.Document, error) {
	return e.ExtractTextFn(html)
}
