package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/jobnotice"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByTitle(deps.Ctx, c.Title)
	if err != nil {
		if jobnotice.ErrorCode(err) == jobnotice.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: notice %q not found. Use 'jobnotice list' to see stored notices.\n", c.Title)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(rec)
	}

	md, err := deps.Formatter.FormatRecord(rec)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobnotice.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, strings.TrimRight(md, "\n"))
	return nil
}
