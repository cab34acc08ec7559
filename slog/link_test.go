package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/jobnotice"
	"github.com/fwojciec/jobnotice/mock"
	jnslog "github.com/fwojciec/jobnotice/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingLinkValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("logs rejection with reason", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkValidator{
			ValidateFn: func(_ context.Context, _ string) jobnotice.LinkVerdict {
				return jobnotice.RejectByProbeFailure("timeout")
			},
		}

		got := jnslog.NewLoggingLinkValidator(inner, logger).Validate(context.Background(), "https://sarkari.example/a.pdf")

		assert.Equal(t, jobnotice.LinkRejectedByProbeFailure, got.Decision)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "decision=probe_failed")
		assert.Contains(t, output, "reason=timeout")
	})

	t.Run("accepted links log at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkValidator{
			ValidateFn: func(_ context.Context, _ string) jobnotice.LinkVerdict {
				return jobnotice.Accept()
			},
		}

		got := jnslog.NewLoggingLinkValidator(inner, logger).Validate(context.Background(), "https://ssc.nic.in/")

		assert.True(t, got.Accepted())
		assert.Empty(t, buf.String())
	})
}
