package slogcute

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	opts := CuteHandlerOptions{
		SlogOptions: &slog.HandlerOptions{Level: level},
	}

	return slog.New(opts.NewCuteHandler(buf))
}

func TestCuteHandler_RespectsLevel(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelInfo)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "INFO:")
	assert.Contains(t, buf.String(), "shown")
}

func TestCuteHandler_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(CuteHandlerOptions{}.NewCuteHandler(&buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestCuteHandler_Attrs(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelDebug).
		With(slog.String("op", "alias.Service.Shorten"))

	log.Error("failed", slog.Any("error", errors.New("boom")), slog.Int("attempt", 3))

	out := buf.String()
	assert.Contains(t, out, `"op": "alias.Service.Shorten"`)
	assert.Contains(t, out, `"error": "boom"`)
	assert.Contains(t, out, `"attempt": 3`)
}

func TestCuteHandler_Groups(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelDebug).
		WithGroup("request").
		With(slog.String("method", "GET"))

	log.Info("request completed", slog.Int("status", 302))

	out := buf.String()
	assert.Contains(t, out, `"request": {`)
	assert.Contains(t, out, `"method": "GET"`)
	assert.Contains(t, out, `"status": 302`)
}

func TestCuteHandler_WithAttrsDoesNotLeak(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	base := newTestLogger(&buf, slog.LevelDebug).With(slog.String("a", "1"))

	_ = base.With(slog.String("b", "2"))
	base.Info("base only")

	assert.NotContains(t, buf.String(), `"b"`)
}
