package main

import (
	"fmt"

	"github.com/fwojciec/jobnotice"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := jobnotice.RecordFilter{Offset: c.Offset, Limit: c.Limit}
	if c.Category != "" {
		filter.PostCategory = &c.Category
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No notices found. Use 'jobnotice scrape' to collect some.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %s\n", rec.CreatedAt.Format("2006-01-02"), rec.PostCategory, rec.Title)
	}
	return nil
}
