package qtdoc

import (
	"context"
	"strings"
)

// Ensure DocService implements DocumentReader at compile time.
var _ DocumentReader = (*DocService)(nil)

// DocService serves documentation pages through a two-tier cache: a bounded
// in-memory recency cache in front of a durable on-disk Markdown store, with
// HTML extraction and conversion as the fallback on a full miss.
type DocService struct {
	Resolver  *Resolver
	DocBase   string
	Memory    MemoryCache
	Store     ContentStore
	Corpus    CorpusReader
	Extractor Extractor
	Converter Converter
}

// Read returns the page for rawURL. Tiers are consulted in a fixed order:
// memory, disk, then extract-and-convert; a conversion result is written to
// disk and then memory before it is returned. Conversion failures propagate
// uncached so a retry re-attempts the conversion.
//
// Cache hits return content only: title and links are recovered by the
// conversion path alone. This is an intentional fast-path trade-off.
//
// Requests narrowed by a fragment bypass both cache tiers entirely, so a
// sliced page can never be cached in place of the full page.
func (s *DocService) Read(ctx context.Context, rawURL string, opts ReadOptions) (*Page, error) {
	canonical, err := s.Resolver.Canonicalize(rawURL)
	if err != nil {
		return nil, err
	}

	cacheable := opts.Fragment == "" && !opts.SectionOnly

	if cacheable {
		if md, ok := s.Memory.Get(canonical); ok {
			return &Page{CanonicalURL: canonical, Markdown: md}, nil
		}
		md, ok, err := s.Store.Read(ctx, canonical)
		if err != nil {
			return nil, err
		}
		if ok {
			s.Memory.Put(canonical, md)
			return &Page{CanonicalURL: canonical, Markdown: md}, nil
		}
	}

	local, err := s.Resolver.Resolve(canonical, s.DocBase)
	if err != nil {
		return nil, err
	}
	html, err := s.Corpus.LoadPage(local)
	if err != nil {
		return nil, err
	}

	res, err := s.Extractor.ExtractPage(html, canonical, ExtractOptions{
		Fragment:    opts.Fragment,
		SectionOnly: opts.SectionOnly,
	})
	if err != nil {
		return nil, err
	}
	md, err := s.Converter.Convert(res.ContentHTML)
	if err != nil {
		return nil, err
	}
	md = strings.TrimRight(md, " \n") + AttributionBlock

	if cacheable {
		if err := s.Store.Write(ctx, canonical, md); err != nil {
			return nil, err
		}
		s.Memory.Put(canonical, md)
	}

	return &Page{
		Title:        res.Title,
		CanonicalURL: canonical,
		Markdown:     md,
		Links:        res.Links,
	}, nil
}
