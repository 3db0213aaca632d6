package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/qtdoc"
)

// IndexCmd builds the search index.
type IndexCmd struct {
	Force bool `help:"Rebuild even if an index already exists."`
}

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	indexPath := deps.Config.IndexPath

	if _, err := os.Stat(indexPath); err == nil && !c.Force {
		fmt.Fprintf(deps.Stderr, "Index already exists at %s\n", indexPath)
		fmt.Fprintln(deps.Stderr, "Use --force to rebuild")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Building search index from %s\n", deps.Config.DocBase)
	fmt.Fprintf(deps.Stdout, "Index will be written to %s\n", indexPath)

	begin := time.Now()
	var lastLen int
	progress := func(current, total int, path string) {
		rel, err := filepath.Rel(deps.Config.DocBase, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		if len(rel) > 50 {
			rel = "..." + rel[len(rel)-47:]
		}

		elapsed := time.Since(begin).Seconds()
		var eta int
		if current > 0 {
			eta = int(float64(total-current) * elapsed / float64(current))
		}
		msg := fmt.Sprintf("[%5d/%d] %5.1f%%  ETA %02d:%02d  %s",
			current, total, float64(current)*100/float64(total), eta/60, eta%60, rel)
		pad := lastLen - len(msg)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(deps.Stderr, "\r%s%s", msg, strings.Repeat(" ", pad))
		lastLen = len(msg)
	}

	stats, err := deps.Builder.Build(deps.Ctx, deps.Config.DocBase, progress)
	fmt.Fprintln(deps.Stderr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error building index: %s\n", qtdoc.ErrorMessage(err))
		return err
	}

	elapsed := int(time.Since(begin).Seconds())
	fmt.Fprintf(deps.Stdout, "\nIndex build complete in %02d:%02d\n", elapsed/60, elapsed%60)
	fmt.Fprintf(deps.Stdout, "  Indexed: %d\n", stats.Indexed)
	fmt.Fprintf(deps.Stdout, "  Skipped: %d\n", stats.Skipped)
	fmt.Fprintf(deps.Stdout, "  Errors:  %d\n", stats.Errors)

	if info, err := os.Stat(indexPath); err == nil {
		fmt.Fprintf(deps.Stdout, "  Index size: %.1f MB\n", float64(info.Size())/(1024*1024))
	}

	return nil
}
