package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Lines carry a "cloudalign" prefix and a
// short "15:04:05.00" timestamp.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "cloudalign",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command run over a cloud.
type progress struct {
	logger *log.Logger
	op     string
	points int
	start  time.Time
}

func newProgress(l *log.Logger, op string) *progress {
	return &progress{logger: l, op: op, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// loaded records the size of the input cloud.
func (p *progress) loaded(path string, points int) {
	p.points = points
	p.logger.Debug("read cloud", "path", path, "points", points, "elapsed", p.elapsed())
}

// done logs the finished operation, e.g.
// "INFO cloudalign: align done points=5000 elapsed=12ms".
func (p *progress) done(keyvals ...any) {
	kv := append([]any{"points", p.points, "elapsed", p.elapsed()}, keyvals...)
	p.logger.Info(p.op+" done", kv...)
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
