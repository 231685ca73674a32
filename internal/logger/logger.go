package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// Options identify the running service. Every record carries them.
type Options struct {
	Service     string
	Version     string
	Environment string
	// Writer defaults to stdout.
	Writer io.Writer
}

// New builds the service logger. Inside Kubernetes and in the dev/prod
// environments records are JSON at info level; locally they are text at debug
// level with error messages in red. LOG_LEVEL overrides the level.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	structured := isStructured(opts.Environment)
	level := slog.LevelDebug
	if structured {
		level = slog.LevelInfo
	}
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		_ = level.UnmarshalText([]byte(raw))
	}

	var base slog.Handler
	if structured {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	} else {
		base = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	base = base.WithAttrs([]slog.Attr{
		slog.String("service", opts.Service),
		slog.String("version", opts.Version),
		slog.String("environment", opts.Environment),
	})

	return slog.New(&recordHandler{next: base, colorErrors: !structured})
}

func isStructured(env string) bool {
	if _, inK8s := os.LookupEnv("KUBERNETES_SERVICE_HOST"); inK8s {
		return true
	}
	return env == "prod" || env == "dev"
}

// Discard is used by tests that do not care about log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordHandler adds trace_id and span_id from the OTel span in ctx and, for
// terminal output, paints error messages red.
type recordHandler struct {
	next        slog.Handler
	colorErrors bool
}

func (h *recordHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *recordHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.colorErrors && r.Level >= slog.LevelError {
		colored := slog.NewRecord(r.Time, r.Level, fmt.Sprintf("\x1b[31m%s\x1b[0m", r.Message), r.PC)
		r.Attrs(func(a slog.Attr) bool {
			colored.AddAttrs(a)
			return true
		})
		r = colored
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", spanCtx.TraceID().String()),
			slog.String("span_id", spanCtx.SpanID().String()),
		)
	}
	return h.next.Handle(ctx, r)
}

func (h *recordHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordHandler{next: h.next.WithAttrs(attrs), colorErrors: h.colorErrors}
}

func (h *recordHandler) WithGroup(name string) slog.Handler {
	return &recordHandler{next: h.next.WithGroup(name), colorErrors: h.colorErrors}
}
