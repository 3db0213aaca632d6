package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/qtdoc"
	"github.com/fwojciec/qtdoc/fs"
	"github.com/fwojciec/qtdoc/goquery"
	"github.com/fwojciec/qtdoc/htmltomarkdown"
	"github.com/fwojciec/qtdoc/lru"
	qslog "github.com/fwojciec/qtdoc/slog"
	"github.com/fwojciec/qtdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("qtdoc"),
		kong.Description("Serve and search a local copy of the Qt 4.8 documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := qtdoc.Config{
		DocBase:   cli.DocBase,
		CacheDir:  cli.CacheDir,
		IndexPath: cli.IndexPath,
		CacheSize: cli.CacheSize,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extractor := goquery.NewExtractor()
	corpus := fs.NewCorpus()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: logger,
		Docs: &qtdoc.DocService{
			Resolver:  qtdoc.NewResolver(),
			DocBase:   cfg.DocBase,
			Memory:    lru.New(cfg.EffectiveCacheSize()),
			Store:     qslog.NewLoggingStore(fs.NewStore(cfg.CacheDir), logger),
			Corpus:    corpus,
			Extractor: extractor,
			Converter: htmltomarkdown.NewConverter(),
		},
		Search:  qslog.NewLoggingSearch(sqlite.NewSearchService(cfg.IndexPath), logger),
		Builder: sqlite.NewIndexService(cfg.IndexPath, corpus, extractor, logger),
	}

	return kctx.Run(deps)
}
