package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/jobnotice"
	main "github.com/fwojciec/jobnotice/cmd/jobnotice"
	"github.com/fwojciec/jobnotice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	stored := &jobnotice.Record{ID: "rec-1", Title: "SSC CGL 2024", PostCategory: "RESULT"}
	records := &mock.RecordService{
		FindRecordByTitleFn: func(_ context.Context, title string) (*jobnotice.Record, error) {
			if title == stored.Title {
				return stored, nil
			}
			return nil, jobnotice.Errorf(jobnotice.ENOTFOUND, "record not found")
		},
	}
	formatter := &mock.RecordFormatter{
		FormatRecordFn: func(rec *jobnotice.Record) (string, error) {
			return "# " + rec.Title, nil
		},
	}

	t.Run("prints markdown", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Records: records, Formatter: formatter}

		err := (&main.ShowCmd{Title: "SSC CGL 2024"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# SSC CGL 2024\n", stdout.String())
	})

	t.Run("prints json", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Records: records, Formatter: formatter}

		err := (&main.ShowCmd{Title: "SSC CGL 2024", JSON: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"id": "rec-1"`)
		assert.Contains(t, stdout.String(), `"typeOfPost": "RESULT"`)
	})

	t.Run("reports missing notice", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Records: records, Formatter: formatter}

		err := (&main.ShowCmd{Title: "UPSC CSE 2024"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, jobnotice.ENOTFOUND, jobnotice.ErrorCode(err))
		assert.Contains(t, stderr.String(), `notice "UPSC CSE 2024" not found`)
	})
}
