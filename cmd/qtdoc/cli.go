package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/qtdoc"
)

// CLI defines the command-line interface. Every setting can also come from
// the environment so the serve command works under an MCP client that only
// passes env vars.
type CLI struct {
	DocBase   string `help:"Root directory of the Qt 4.8 HTML documentation." env:"QTDOC_DOC_BASE" default:"./qt-4.8-docs"`
	CacheDir  string `help:"Directory for the on-disk Markdown store." env:"QTDOC_CACHE_DIR" default:"./cache/md"`
	IndexPath string `help:"Location of the search index file." env:"QTDOC_INDEX_PATH" default:"./cache/fts.sqlite"`
	CacheSize int    `help:"Capacity of the in-memory page cache." env:"QTDOC_CACHE_SIZE" default:"128"`
	Verbose   bool   `help:"Enable debug logging." short:"v"`

	Serve  ServeCmd  `cmd:"" help:"Serve documentation tools over MCP stdio."`
	Index  IndexCmd  `cmd:"" help:"Build the full-text search index from the corpus."`
	Warm   WarmCmd   `cmd:"" help:"Pre-convert the whole corpus into the Markdown store."`
	Search SearchCmd `cmd:"" help:"Run a one-shot search query against the index."`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config qtdoc.Config
	Logger *slog.Logger

	Docs    qtdoc.DocumentReader
	Search  qtdoc.SearchService
	Builder qtdoc.IndexBuilder
}
