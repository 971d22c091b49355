// Package slogfilter gates log/slog records against a logspec
// specification before they reach the wrapped handler.
//
// slog records carry no module path of their own, so the handler derives
// one from two sources: group names added with WithGroup become dotted
// path segments, and an attribute named "module" (on the record or added
// with WithAttrs) overrides the accumulated path entirely.
package slogfilter

import (
	"context"
	"log/slog"

	"github.com/waimea/logspec"
)

// ModuleKey is the attribute consulted for a record's module path.
const ModuleKey = "module"

// Handler filters records before forwarding them to the next handler.
type Handler struct {
	res    *logspec.Logger
	next   slog.Handler
	module string
}

var _ slog.Handler = (*Handler)(nil)

// New wraps next with a filter configured from the LOGSPEC environment
// variable.
func New(next slog.Handler) *Handler {
	return &Handler{res: logspec.New(forwardSink{}), next: next}
}

// NewSpec wraps next with a filter parsed from an explicit specification
// string.
func NewSpec(next slog.Handler, spec string) *Handler {
	return &Handler{
		res:  logspec.NewBuilder(forwardSink{}).Parse(spec).Build(),
		next: next,
	}
}

// Enabled coarsely checks level against the most verbose directive. The
// per-module decision happens in Handle, once the record is available.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return fromSlog(level) <= h.res.MaxLevel()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	module := h.module
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == ModuleKey {
			module = a.Value.String()
			return false
		}
		return true
	})
	return h.res.Log(&record{ctx: ctx, rec: r, module: module, next: h.next})
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	for _, a := range attrs {
		if a.Key == ModuleKey {
			nh.module = a.Value.String()
		}
	}
	nh.next = h.next.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.module == "" {
		nh.module = name
	} else {
		nh.module += "." + name
	}
	nh.next = h.next.WithGroup(name)
	return &nh
}

// record adapts a slog.Record to the logspec event contract, carrying
// along everything the next handler needs.
type record struct {
	ctx    context.Context
	rec    slog.Record
	module string
	next   slog.Handler
}

func (r *record) Level() logspec.Level { return fromSlog(r.rec.Level) }
func (r *record) Module() string       { return r.module }

func (r *record) AppendMessage(buf []byte) []byte {
	return append(buf, r.rec.Message...)
}

// forwardSink hands surviving records to the handler they were bound for.
type forwardSink struct{}

func (forwardSink) Log(e logspec.Event) error {
	r := e.(*record)
	return r.next.Handle(r.ctx, r.rec)
}

// fromSlog collapses slog's numeric levels onto the directive scale.
// Anything below LevelDebug counts as trace.
func fromSlog(l slog.Level) logspec.Level {
	switch {
	case l >= slog.LevelError:
		return logspec.Error
	case l >= slog.LevelWarn:
		return logspec.Warn
	case l >= slog.LevelInfo:
		return logspec.Info
	case l >= slog.LevelDebug:
		return logspec.Debug
	default:
		return logspec.Trace
	}
}
