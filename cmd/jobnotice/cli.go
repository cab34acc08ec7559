package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Records   jobnotice.RecordService
	Fetcher   jobnotice.Fetcher
	Extractor jobnotice.Extractor
	Formatter jobnotice.RecordFormatter
	Scraper   *crawl.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose    bool   `short:"v" help:"Log each fetch, probe and store call to stderr"`
	Database   string `default:"sara" help:"MongoDB database name"`
	Collection string `default:"records" help:"MongoDB collection name"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape listing pages and store new notices"`
	Extract ExtractCmd `cmd:"" help:"Extract one notice page and print it as JSON"`
	List    ListCmd    `cmd:"" help:"List stored notices, newest first"`
	Show    ShowCmd    `cmd:"" help:"Show a stored notice as Markdown"`
	Export  ExportCmd  `cmd:"" help:"Export stored notices as Markdown files"`
}

// FetchFlags configure page fetching and link validation.
type FetchFlags struct {
	Timeout      time.Duration `default:"10s" help:"Page fetch timeout"`
	ProbeTimeout time.Duration `default:"3s" help:"Link probe timeout"`
	Category     string        `default:"RESULT" help:"Post category stamped on extracted notices"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs    []string      `arg:"" name:"url" help:"Listing page URLs"`
	Limit   int           `short:"n" help:"Maximum number of pages to process (0 means all)"`
	Delay   time.Duration `default:"1s" help:"Minimum delay between requests to one host"`
	Sitemap bool          `help:"Discover pages from the site's sitemaps instead of the listing markup"`

	Fetch FetchFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Notice page URL"`

	Fetch FetchFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only list notices of this post category"`
	Limit    int    `short:"n" default:"20" help:"Maximum number of notices to list"`
	Offset   int    `help:"Number of notices to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Title string `arg:"" help:"Notice title"`
	JSON  bool   `help:"Print the stored record as JSON"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir      string `arg:"" help:"Output directory"`
	Category string `short:"c" help:"Only export notices of this post category"`
	Limit    int    `short:"n" help:"Maximum number of notices to export (0 means all)"`
}
