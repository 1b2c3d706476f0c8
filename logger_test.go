package flist

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// All methods are no-ops; With returns a usable logger.
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")
	assert.NotNil(t, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("loop detected", "path", "/srv/data/self")
	out := buf.String()
	require.Contains(t, out, "loop detected")
	assert.Contains(t, out, "path=/srv/data/self")

	buf.Reset()
	logger.With("component", "walker").Warn("skipping entry")
	out = buf.String()
	assert.Contains(t, out, "component=walker")
	assert.Contains(t, out, "skipping entry")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}
