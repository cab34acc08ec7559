package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobnotice"
	main "github.com/fwojciec/jobnotice/cmd/jobnotice"
	"github.com/fwojciec/jobnotice/crawl"
	"github.com/fwojciec/jobnotice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports each page and the totals", func(t *testing.T) {
		t.Parallel()

		scraper := &crawl.Scraper{
			Source: &mock.URLSource{
				DiscoverFn: func(_ context.Context, _ string) ([]string, error) {
					return []string{"https://jobs.example/a/", "https://jobs.example/b/", "https://jobs.example/c/"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://jobs.example/c/" {
						return "", jobnotice.Errorf(jobnotice.EFETCH, "status 500")
					}
					return url, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ context.Context, html string) (*jobnotice.Record, error) {
					rec := &jobnotice.Record{Title: "SSC CGL 2024"}
					if html == "https://jobs.example/a/" {
						rec.Sections = []jobnotice.Section{{Title: jobnotice.LabelAgeLimit, Kind: jobnotice.SectionList, Items: []string{"Minimum Age: 18"}}}
					}
					return rec, nil
				},
			},
			Records: &mock.RecordService{
				FindRecordByTitleFn: func(_ context.Context, _ string) (*jobnotice.Record, error) {
					return nil, jobnotice.Errorf(jobnotice.ENOTFOUND, "record not found")
				},
				CreateRecordFn: func(_ context.Context, _ *jobnotice.Record) error {
					return nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
		}

		err := (&main.ScrapeCmd{URLs: []string{"https://jobs.example/latest-jobs/"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 3 pages")
		assert.Contains(t, stdout.String(), "[1/3] saved   SSC CGL 2024")
		assert.Contains(t, stdout.String(), "1 saved, 0 already stored, 1 empty, 1 failed (of 3)")
		assert.Contains(t, stderr.String(), "skip https://jobs.example/b/: no sections extracted")
		assert.Contains(t, stderr.String(), "skip https://jobs.example/c/: status 500")
	})

	t.Run("returns error when no listing can be read", func(t *testing.T) {
		t.Parallel()

		scraper := &crawl.Scraper{
			Source: &mock.URLSource{
				DiscoverFn: func(_ context.Context, _ string) ([]string, error) {
					return nil, jobnotice.Errorf(jobnotice.EFETCH, "status 404")
				},
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Scraper: scraper}

		err := (&main.ScrapeCmd{URLs: []string{"https://jobs.example/missing/"}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: status 404")
	})
}
