package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/bookdesk/internal/config"
	"github.com/heartmarshall/bookdesk/pkg/ctxutil"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output.
// Format "text" produces human-readable output with source info.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output is always os.Stderr. Records logged with a context carrying an
// operation ID get an "operation_id" attribute.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(operationHandler{Handler: handler})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// operationHandler decorates records with the operation ID from ctx.
type operationHandler struct {
	slog.Handler
}

func (h operationHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ctxutil.OperationIDFromCtx(ctx); ok {
		r.AddAttrs(slog.String("operation_id", id.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h operationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return operationHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h operationHandler) WithGroup(name string) slog.Handler {
	return operationHandler{Handler: h.Handler.WithGroup(name)}
}
