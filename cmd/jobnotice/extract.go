package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/crawl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	defer deps.Fetcher.Close()

	html, err := crawl.FetchWithRetry(deps.Ctx, c.URL, deps.Fetcher.Fetch, retryLogger(deps.Logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		return err
	}

	rec, err := deps.Extractor.Extract(deps.Ctx, html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		return err
	}
	rec.SourceURL = c.URL

	if rec.Empty() {
		fmt.Fprintln(deps.Stderr, "warning: no sections extracted; scrape would skip this page")
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rec)
}
