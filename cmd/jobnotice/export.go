package main

import (
	"fmt"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := jobnotice.RecordFilter{Limit: c.Limit}
	if c.Category != "" {
		filter.PostCategory = &c.Category
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		return err
	}

	w := fs.NewWriter(c.Dir, deps.Formatter)
	for _, rec := range records {
		if err := w.WriteRecord(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: export %q: %v\n", rec.Title, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d notices to %s\n", len(records), c.Dir)
	return nil
}
