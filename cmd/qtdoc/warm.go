package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/qtdoc"
)

// WarmCmd pre-converts every corpus page into the Markdown store so the
// first agent request never pays conversion latency.
type WarmCmd struct {
	Limit       int `help:"Limit number of files (for testing)." default:"0"`
	Concurrency int `help:"Number of concurrent conversions." default:"4"`
}

// Run executes the warm command.
func (c *WarmCmd) Run(deps *Dependencies) error {
	files, err := htmlFiles(deps.Config.DocBase)
	if err != nil {
		return err
	}
	if c.Limit > 0 && len(files) > c.Limit {
		files = files[:c.Limit]
	}
	if len(files) == 0 {
		fmt.Fprintln(deps.Stderr, "No HTML files found under the documentation base")
		return qtdoc.Errorf(qtdoc.EINDEX, "no HTML files found under %s", deps.Config.DocBase)
	}

	fmt.Fprintf(deps.Stdout, "Warming Markdown store from %d HTML files...\n", len(files))

	begin := time.Now()
	var done, failed atomic.Int64

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	for _, file := range files {
		rel, err := filepath.Rel(deps.Config.DocBase, file)
		if err != nil {
			continue
		}
		url := qtdoc.CanonicalBase + filepath.ToSlash(rel)

		g.Go(func() error {
			if _, err := deps.Docs.Read(ctx, url, qtdoc.ReadOptions{}); err != nil {
				failed.Add(1)
				fmt.Fprintf(deps.Stderr, "\nskip %s: %s\n", rel, qtdoc.ErrorMessage(err))
			}
			n := done.Add(1)
			fmt.Fprintf(deps.Stderr, "\r[%5d/%d] %5.1f%%",
				n, len(files), float64(n)*100/float64(len(files)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintln(deps.Stderr)

	elapsed := int(time.Since(begin).Seconds())
	fmt.Fprintf(deps.Stdout, "Done. Converted %d pages (%d failed) in %02d:%02d\n",
		done.Load()-failed.Load(), failed.Load(), elapsed/60, elapsed%60)
	return nil
}

// htmlFiles returns every .html file under root sorted by path.
func htmlFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, qtdoc.Errorf(qtdoc.EINDEX, "failed to enumerate corpus: %v", err)
	}
	sort.Strings(files)
	return files, nil
}
