package sloghandler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler/memoryhandler"
	"github.com/philipp01105/fanlog/handler/streamhandler"
)

// captureHandler is a slog.Handler that stores records
type captureHandler struct {
	min     slog.Level
	records []slog.Record
	err     error
}

func (c *captureHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= c.min }
func (c *captureHandler) Handle(_ context.Context, r slog.Record) error {
	c.records = append(c.records, r)
	return c.err
}
func (c *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *captureHandler) WithGroup(string) slog.Handler      { return c }

func attrs(r slog.Record) map[string]any {
	out := map[string]any{}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})
	return out
}

func TestSlogHandler_Log(t *testing.T) {
	capture := &captureHandler{min: slog.LevelDebug}
	h := New(capture)

	require.NoError(t, h.Log(core.NoticeLevel, "hello {who}", core.Context{"who": "world"}))

	require.Len(t, capture.records, 1)
	r := capture.records[0]
	assert.Equal(t, LevelNotice, r.Level)
	assert.Equal(t, "hello world", r.Message)
	assert.False(t, r.Time.IsZero())
	assert.Equal(t, map[string]any{"severity": "notice", "who": "world"}, attrs(r))
}

func TestSlogHandler_DisabledLevel(t *testing.T) {
	capture := &captureHandler{min: slog.LevelWarn}
	require.NoError(t, New(capture).Log(core.InfoLevel, "m", nil))
	assert.Empty(t, capture.records)
}

func TestSlogHandler_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	capture := &captureHandler{err: boom}
	assert.ErrorIs(t, New(capture).Log(core.ErrorLevel, "m", nil), boom)
}

func TestSlogHandler_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	h := New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, h.Log(core.WarningLevel, "disk {pct}% full", core.Context{"pct": 91}))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="disk 91% full"`)
	assert.Contains(t, out, "severity=warning")
	assert.Contains(t, out, "pct=91")
}

func TestLevelRoundTrip(t *testing.T) {
	for _, l := range core.Levels() {
		assert.Equal(t, l, CoreLevel(SlogLevel(l)), l.String())
	}

	assert.Equal(t, core.DebugLevel, CoreLevel(slog.LevelDebug-4))
	assert.Equal(t, core.InfoLevel, CoreLevel(slog.LevelInfo+1))
	assert.Equal(t, core.EmergencyLevel, CoreLevel(slog.LevelError+100))
}

func TestAdapter_Handle(t *testing.T) {
	rec := memoryhandler.New()
	logger := slog.New(NewAdapter(rec))

	logger.Info("user {name}", "name", "bob", "count", 42)

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, core.InfoLevel, records[0].Level)
	assert.Equal(t, "user {name}", records[0].Message)
	assert.Equal(t, "bob", records[0].Context["name"])
	assert.Equal(t, int64(42), records[0].Context["count"])
}

func TestAdapter_Levels(t *testing.T) {
	rec := memoryhandler.New()
	logger := slog.New(NewAdapter(rec))

	logger.Debug("d")
	logger.Warn("w")
	logger.Error("e")
	logger.Log(context.Background(), LevelEmergency, "x")

	records := rec.Records()
	require.Len(t, records, 4)
	assert.Equal(t, core.DebugLevel, records[0].Level)
	assert.Equal(t, core.WarningLevel, records[1].Level)
	assert.Equal(t, core.ErrorLevel, records[2].Level)
	assert.Equal(t, core.EmergencyLevel, records[3].Level)
}

func TestAdapter_WithAttrsAndGroups(t *testing.T) {
	rec := memoryhandler.New()
	logger := slog.New(NewAdapter(rec)).
		With("request_id", "req-123").
		WithGroup("http").
		With("method", "GET")

	logger.Info("done", "status", 200, slog.Group("client", "ip", "10.0.0.1", "port", 5555))

	ctx := rec.Records()[0].Context
	assert.Equal(t, "req-123", ctx["request_id"])
	assert.Equal(t, "GET", ctx["http.method"])
	assert.Equal(t, int64(200), ctx["http.status"])
	assert.Equal(t, "10.0.0.1", ctx["http.client.ip"])
	assert.Equal(t, int64(5555), ctx["http.client.port"])
}

func TestAdapter_WithGroupEmpty(t *testing.T) {
	a := NewAdapter(memoryhandler.New())
	assert.Same(t, a, a.WithGroup(""))
}

func TestAdapter_ErrorPropagates(t *testing.T) {
	rec := memoryhandler.New()
	boom := errors.New("boom")
	rec.FailWith(boom)

	err := NewAdapter(rec).Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "m", 0))
	assert.ErrorIs(t, err, boom)
}

func TestAdapter_IntoStreamHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewAdapter(streamhandler.New(&buf)))

	logger.Warn("cache {name} evicted {n} keys", "name", "sessions", "n", 12)

	assert.Equal(t, "[warning] cache sessions evicted 12 keys\n", buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
