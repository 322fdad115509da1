package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fadedpez/tucojack/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{" warn ", WARN},
		{"warning", WARN},
		{"Error", ERROR},
		{"", INFO},
		{"verbose", INFO},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, WARN)

	logger.Debug("dealt %d cards", 4)
	logger.Info("round started")
	assert.Empty(t, buf.String(), "messages below WARN should be dropped")

	logger.Warn("stats not saved: %s", "disk full")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "stats not saved: disk full")
	assert.Contains(t, buf.String(), "logger_test.go", "caller should point at the call site")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, DEBUG)

	logger.LogError(types.WrapError(types.ErrStatsWriteFailed, "could not save stats", errors.New("read-only file system")))
	out := buf.String()
	assert.Contains(t, out, "Code: STATS_WRITE_FAILED")
	assert.Contains(t, out, "Message: could not save stats")
	assert.Contains(t, out, "Cause: read-only file system")

	buf.Reset()
	logger.LogError(errors.New("boom"))
	assert.Contains(t, buf.String(), "Unexpected error: boom")

	buf.Reset()
	logger.LogError(nil)
	assert.Empty(t, buf.String())
}

func TestDiscardLoggerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Error("nothing to see")
		Discard.LogError(errors.New("ignored"))
	})
}
