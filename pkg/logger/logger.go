package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a configured zerolog.Logger.
// level: debug, info, warn, error. pretty: human-readable console output.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout

	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Caller().
		Str("service", "payment-orchestrator").
		Logger()
}

// NewWithWriter creates a logger writing to a custom writer (useful for testing).
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// RequestMeta is the diagnostic context of one inbound request. It is
// populated by the HTTP layer and travels inside context.Context.
type RequestMeta struct {
	RequestID  string
	MerchantID string
	ClientIP   string
}

type metaKey struct{}

// WithMeta returns a copy of ctx carrying meta.
func WithMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// MetaFrom extracts the request metadata, if any.
func MetaFrom(ctx context.Context) (RequestMeta, bool) {
	if ctx == nil {
		return RequestMeta{}, false
	}
	meta, ok := ctx.Value(metaKey{}).(RequestMeta)
	return meta, ok
}

// For returns base enriched with the request metadata found in ctx.
// The returned logger is a copy; base is never mutated.
func For(ctx context.Context, base zerolog.Logger) zerolog.Logger {
	meta, ok := MetaFrom(ctx)
	if !ok {
		return base
	}
	lc := base.With()
	if meta.RequestID != "" {
		lc = lc.Str("request_id", meta.RequestID)
	}
	if meta.MerchantID != "" {
		lc = lc.Str("merchant_id", meta.MerchantID)
	}
	if meta.ClientIP != "" {
		lc = lc.Str("client_ip", meta.ClientIP)
	}
	return lc.Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
