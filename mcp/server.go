// Package mcp exposes the documentation services as MCP tools over stdio.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fwojciec/qtdoc"
)

// Server wires the document reader and search service into an MCP server
// speaking the stdio transport.
type Server struct {
	docs   qtdoc.DocumentReader
	search qtdoc.SearchService
	logger *slog.Logger
	mcp    *mcp.Server
}

// NewServer creates an MCP server exposing read_documentation and
// search_documentation.
func NewServer(docs qtdoc.DocumentReader, search qtdoc.SearchService, logger *slog.Logger) *Server {
	s := &Server{
		docs:   docs,
		search: search,
		logger: logger,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "qtdoc",
			Version: "1.0.0",
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP requests over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

type readInput struct {
	URL         string `json:"url" jsonschema:"required,Canonical Qt docs URL (https://doc.qt.io/archives/qt-4.8/...)"`
	Fragment    string `json:"fragment,omitempty" jsonschema:"Optional anchor id to focus"`
	SectionOnly bool   `json:"section_only,omitempty" jsonschema:"When true return only the fragment section content"`
	StartIndex  int    `json:"start_index,omitempty" jsonschema:"Optional start offset for chunking the markdown"`
	MaxLength   int    `json:"max_length,omitempty" jsonschema:"Optional maximum characters for chunking the markdown"`
}

type readOutput struct {
	Title        string       `json:"title"`
	URL          string       `json:"url"`
	CanonicalURL string       `json:"canonical_url"`
	Markdown     string       `json:"markdown"`
	Attribution  string       `json:"attribution"`
	Links        []qtdoc.Link `json:"links"`
}

type searchInput struct {
	Query string `json:"query" jsonschema:"required,Full-text search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default 10, max 50)"`
	Scope string `json:"scope,omitempty" jsonschema:"Search scope; only 'all' is currently supported"`
}

type searchOutput struct {
	Results []*qtdoc.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "read_documentation",
		Description: "Fetch a Qt 4.8 documentation page and return it as Markdown with title, canonical URL, attribution, and outbound links.",
	}, s.readDocumentation)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_documentation",
		Description: "Search the Qt 4.8 documentation full-text index and return ranked results with context snippets.",
	}, s.searchDocumentation)
}

func (s *Server) readDocumentation(ctx context.Context, req *mcp.CallToolRequest, in readInput) (*mcp.CallToolResult, readOutput, error) {
	logger := s.logger.With("request_id", uuid.New().String(), "tool", "read_documentation")
	begin := time.Now()

	page, err := s.docs.Read(ctx, in.URL, qtdoc.ReadOptions{
		Fragment:    in.Fragment,
		SectionOnly: in.SectionOnly,
	})
	if err != nil {
		logger.Warn("read failed", "url", in.URL, "code", qtdoc.ErrorCode(err), "error", qtdoc.ErrorMessage(err))
		return nil, readOutput{}, err
	}

	markdown := window(page.Markdown, in.StartIndex, in.MaxLength)

	logger.Info("read",
		"url", in.URL,
		"bytes", len(markdown),
		"duration", time.Since(begin),
	)

	return nil, readOutput{
		Title:        page.Title,
		URL:          in.URL,
		CanonicalURL: page.CanonicalURL,
		Markdown:     markdown,
		Attribution:  qtdoc.Attribution,
		Links:        page.Links,
	}, nil
}

func (s *Server) searchDocumentation(ctx context.Context, req *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, searchOutput, error) {
	logger := s.logger.With("request_id", uuid.New().String(), "tool", "search_documentation")
	begin := time.Now()

	scope := in.Scope
	if scope == "" {
		scope = qtdoc.ScopeAll
	}

	results, err := s.search.Search(ctx, in.Query, clampLimit(in.Limit), scope)
	if err != nil {
		logger.Warn("search failed", "query", in.Query, "code", qtdoc.ErrorCode(err), "error", qtdoc.ErrorMessage(err))
		return nil, searchOutput{}, err
	}

	logger.Info("search",
		"query", in.Query,
		"results", len(results),
		"duration", time.Since(begin),
	)

	if results == nil {
		results = []*qtdoc.SearchResult{}
	}
	return nil, searchOutput{Results: results, Count: len(results)}, nil
}

// clampLimit confines the result limit to 1..50 with a default of 10. The
// search engine passes the limit through as-is, so the boundary is enforced
// here at the tool layer.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return 10
	case limit > 50:
		return 50
	default:
		return limit
	}
}

// window slices markdown by characters for chunked reading. Offsets count
// runes so a window never splits a multi-byte character.
func window(markdown string, start, maxLength int) string {
	if start <= 0 && maxLength <= 0 {
		return markdown
	}

	runes := []rune(markdown)
	if start < 0 {
		start = 0
	}
	if start >= len(runes) {
		return ""
	}
	end := len(runes)
	if maxLength > 0 && start+maxLength < end {
		end = start + maxLength
	}
	return string(runes[start:end])
}
