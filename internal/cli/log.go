package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depdag/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time since progress was created.
// Example output: "Loaded graph.toml (3ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// RegisterHooks routes manifest and query events to the logger carried by
// each event's context. Call it once from main.
func RegisterHooks() {
	observability.SetManifestHooks(logHooks{})
	observability.SetQueryHooks(logHooks{})
}

// logHooks logs observability events at debug level.
type logHooks struct{}

func (logHooks) OnLoadStart(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("Loading manifest", "path", path)
}

func (logHooks) OnLoadComplete(ctx context.Context, path string, vertexCount int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("Manifest load failed", "path", path, "err", err)
		return
	}
	l.Debug("Manifest loaded", "path", path, "vertices", vertexCount, "took", d.Round(time.Microsecond))
}

func (logHooks) OnQuery(ctx context.Context, op string, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("Query failed", "op", op, "err", err)
		return
	}
	l.Debug("Query", "op", op, "took", d.Round(time.Microsecond))
}

func (logHooks) OnCycleCheck(ctx context.Context, vertexCount int, cyclic bool, d time.Duration) {
	loggerFromContext(ctx).Debug("Cycle check", "vertices", vertexCount, "cyclic", cyclic, "took", d.Round(time.Microsecond))
}
