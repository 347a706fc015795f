package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler and adds attributes taken from the
// context of every handled record.
type LogHandlerDecorator struct {
	slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Nil extractors are dropped. Decorating a
// decorator appends to its extractors instead of nesting handlers.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
		return ex == nil
	})
	if d, ok := next.(*LogHandlerDecorator); ok {
		return &LogHandlerDecorator{
			Handler:    d.Handler,
			extractors: append(slices.Clip(d.extractors), extractors...),
		}
	}
	return &LogHandlerDecorator{Handler: next, extractors: extractors}
}

// Decorate returns l with extractors added to its handler.
func Decorate(l *slog.Logger, extractors ...ContextExtractor) *slog.Logger {
	if l == nil || len(extractors) == 0 {
		return l
	}
	return slog.New(NewLogHandlerDecorator(l.Handler(), extractors...))
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
