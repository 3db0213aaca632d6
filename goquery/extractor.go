// Package goquery extracts content from Qt 4.8 documentation pages using
// CSS selectors. The corpus uses a single page template, so the selectors
// are fixed rather than detected.
package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/qtdoc"
)

// Navigation and chrome elements removed before any extraction. The same
// list applies to the conversion path and the index builder so both see an
// identical content area.
var chromeSelectors = []string{
	"div.header",
	"div.nav",
	"div.sidebar",
	"div.breadcrumbs",
	"div.ft",
	"div.footer",
	"div.qt-footer",
}

// Main content candidates, most specific first.
var contentSelectors = []string{
	"div.content.mainContent",
	"div.mainContent",
	"div.content",
	"body",
}

const headingTags = "h1, h2, h3, h4, h5, h6"

// Ensure Extractor implements qtdoc.Extractor at compile time.
var _ qtdoc.Extractor = (*Extractor)(nil)

// Extractor extracts titles, content areas, index fields and outbound links
// from Qt documentation HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPage returns the main content area as clean HTML along with the
// page title and outbound in-corpus links. When opts names a fragment, the
// content is narrowed to the anchored element, or to its whole section when
// opts.SectionOnly is set.
func (e *Extractor) ExtractPage(rawHTML, baseURL string, opts qtdoc.ExtractOptions) (*qtdoc.ExtractResult, error) {
	doc, main, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	title := pageTitle(doc)

	links, err := extractLinks(main, baseURL)
	if err != nil {
		return nil, err
	}

	if opts.Fragment != "" {
		content := sliceFragment(main, opts.Fragment, opts.SectionOnly)
		if content == "" {
			return nil, qtdoc.Errorf(qtdoc.ENOTFOUND, "fragment %q not found in page", opts.Fragment)
		}
		return &qtdoc.ExtractResult{Title: title, ContentHTML: content, Links: links}, nil
	}

	contentHTML, err := goquery.OuterHtml(main)
	if err != nil {
		return nil, err
	}

	return &qtdoc.ExtractResult{Title: title, ContentHTML: contentHTML, Links: links}, nil
}

// ExtractText returns the indexable fields of a page: title, concatenated
// heading text, and concatenated non-heading body text.
func (e *Extractor) ExtractText(rawHTML string) (*qtdoc.Document, error) {
	doc, main, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	var headings []string
	main.Find(headingTags).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			headings = append(headings, text)
		}
	})

	// Headings are indexed separately; remove them from a copy so body
	// text does not double-count their terms.
	body := main.Clone()
	body.Find(headingTags).Remove()

	return &qtdoc.Document{
		Title:    pageTitle(doc),
		Headings: strings.Join(headings, " "),
		Body:     normalizeText(body.Text()),
	}, nil
}

// parse builds the document, strips chrome, and locates the content area.
func parse(rawHTML string) (*goquery.Document, *goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nil, qtdoc.Errorf(qtdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, sel := range chromeSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range contentSelectors {
		if main := doc.Find(sel).First(); main.Length() > 0 {
			return doc, main, nil
		}
	}
	return doc, doc.Selection, nil
}

// pageTitle prefers the first h1 over the <title> tag.
func pageTitle(doc *goquery.Document) string {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		return strings.TrimSpace(h1.Text())
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// sliceFragment renders the content anchored at the given fragment id.
// Without sectionOnly the result is the anchored element alone. With
// sectionOnly, a heading anchor expands to every sibling up to the next
// heading of the same or higher level. Returns "" when the id is absent.
func sliceFragment(main *goquery.Selection, fragment string, sectionOnly bool) string {
	target := main.Find(fmt.Sprintf("[id=%q]", fragment)).First()
	if target.Length() == 0 {
		return ""
	}

	node := target.Nodes[0]
	level := headingLevel(node)
	if !sectionOnly || level == 0 {
		return renderNode(node)
	}

	var b strings.Builder
	b.WriteString(renderNode(node))
	for sib := node.NextSibling; sib != nil; sib = sib.NextSibling {
		if l := headingLevel(sib); l != 0 && l <= level {
			break
		}
		b.WriteString(renderNode(sib))
	}
	return b.String()
}

// extractLinks returns outbound links from the content area, resolved to
// absolute URLs and restricted to the canonical host. Duplicates keep their
// first occurrence so document order is preserved.
func extractLinks(main *goquery.Selection, baseURL string) ([]qtdoc.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINVALID, "invalid base URL: %v", err)
	}

	seen := make(map[string]bool)
	var links []qtdoc.Link

	main.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			return
		}

		u := resolved.String()
		if seen[u] {
			return
		}
		seen[u] = true
		links = append(links, qtdoc.Link{
			URL:  u,
			Text: strings.TrimSpace(sel.Text()),
		})
	})

	return links, nil
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// headingLevel returns 1-6 for h1-h6 element nodes and 0 otherwise.
func headingLevel(n *html.Node) int {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	if n.Data[1] < '1' || n.Data[1] > '6' {
		return 0
	}
	return int(n.Data[1] - '0')
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// normalizeText collapses runs of whitespace into single spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
