package main

import (
	"fmt"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/crawl"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d pages\n", event.Total)
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] saved   %s\n", event.Completed, event.Total, crawl.TruncateTitle(event.Title, 60))
		case crawl.ProgressExists:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] exists  %s\n", event.Completed, event.Total, crawl.TruncateTitle(event.Title, 60))
		case crawl.ProgressEmpty:
			fmt.Fprintf(deps.Stderr, "  skip %s: no sections extracted\n", crawl.TruncateURL(event.URL, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", crawl.TruncateURL(event.URL, 60), jobnotice.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result)
	return nil
}
