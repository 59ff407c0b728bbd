package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/handler"
)

// Adapter implements slog.Handler on top of a fanlog handler. Record
// attributes become the context, so the record message may use them as
// {placeholders}.
type Adapter struct {
	handler handler.Handler
	attrs   core.Context
	group   string
}

var _ slog.Handler = (*Adapter)(nil)

// NewAdapter creates a new slog.Handler adapter wrapping the given Handler.
func NewAdapter(h handler.Handler) *Adapter {
	return &Adapter{handler: h}
}

// Enabled always reports true; fanlog handlers do not filter by level.
func (a *Adapter) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle converts the record to a fanlog call. The handler's error is
// returned to slog.
func (a *Adapter) Handle(_ context.Context, record slog.Record) error {
	ctx := make(core.Context, len(a.attrs)+record.NumAttrs())
	for k, v := range a.attrs {
		ctx[k] = v
	}
	record.Attrs(func(attr slog.Attr) bool {
		addAttr(ctx, a.group, attr)
		return true
	})

	return a.handler.Log(CoreLevel(record.Level), record.Message, ctx)
}

// WithAttrs returns a new Adapter with additional attributes.
func (a *Adapter) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(core.Context, len(a.attrs)+len(attrs))
	for k, v := range a.attrs {
		next[k] = v
	}
	for _, attr := range attrs {
		addAttr(next, a.group, attr)
	}
	return &Adapter{handler: a.handler, attrs: next, group: a.group}
}

// WithGroup returns a new Adapter with the given group name.
func (a *Adapter) WithGroup(name string) slog.Handler {
	if name == "" {
		return a
	}
	group := name
	if a.group != "" {
		group = a.group + "." + name
	}
	return &Adapter{handler: a.handler, attrs: a.attrs, group: group}
}

// addAttr stores attr under its dotted key, flattening groups.
func addAttr(ctx core.Context, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			addAttr(ctx, key, member)
		}
		return
	}
	if key == "" {
		return
	}
	ctx[key] = attr.Value.Any()
}
