package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/mock"
	jnslog "github.com/fwojciec/jobnotice/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title and section count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ context.Context, _ string) (*jobnotice.Record, error) {
				return &jobnotice.Record{
					Title:    "SSC CGL 2024",
					Sections: []jobnotice.Section{{Title: jobnotice.LabelAgeLimit}},
				}, nil
			},
		}

		rec, err := jnslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "SSC CGL 2024", rec.Title)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, `title="SSC CGL 2024"`)
		assert.Contains(t, output, "sections=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ context.Context, _ string) (*jobnotice.Record, error) {
				return nil, errors.New("bad markup")
			},
		}

		_, err := jnslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="bad markup"`)
		assert.Contains(t, buf.String(), "sections=0")
	})
}
