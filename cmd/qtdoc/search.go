package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/qtdoc"
)

// SearchCmd runs a one-shot query against the built index.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms."`
	Limit int      `help:"Maximum number of results." default:"10"`
	Scope string   `help:"Search scope." default:"all"`
	Meta  bool     `help:"Also print index metadata."`
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	results, err := deps.Search.Search(deps.Ctx, query, c.Limit, c.Scope)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", qtdoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
	}
	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. %s (%.2f)\n", i+1, r.Title, r.Score)
		fmt.Fprintf(deps.Stdout, "   %s\n", r.URL)
		fmt.Fprintf(deps.Stdout, "   %s\n", r.Context)
	}

	if c.Meta {
		meta, err := deps.Search.Metadata(deps.Ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nindex: %d files from %s\n", meta.TotalFiles, meta.DocBase)
	}

	return nil
}
