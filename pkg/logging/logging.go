// Package logging wires slog with context-scoped attributes and an optional
// rotating file sink.
package logging

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxAttrsKey struct{}

// Logger builds a process logger writing to w. jsonOut selects the JSON
// handler over the text handler.
func Logger(w io.Writer, jsonOut bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if jsonOut {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(&ctxHandler{inner: h})
}

// Rotating returns a size-capped log sink that rotates itself at path.
func Rotating(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// AppendCtx attaches attrs to ctx. Loggers built by Logger emit them on
// every record logged through that context.
func AppendCtx(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := ctx.Value(ctxAttrsKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxAttrsKey{}, merged)
}

// ctxHandler copies context attributes onto each record before delegating.
type ctxHandler struct {
	inner slog.Handler
}

func (h *ctxHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxAttrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.inner.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{inner: h.inner.WithGroup(name)}
}
