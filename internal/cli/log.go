package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
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
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Fetched octocat (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks writes lookup and HTTP events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLookupStart(_ context.Context, username string) {
	h.logger.Debug("lookup started", "username", username)
}

func (h *logHooks) OnLookupComplete(_ context.Context, username string, repoCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("lookup failed", "username", username, "duration", d.Round(time.Millisecond), "error", err)
		return
	}
	h.logger.Debug("lookup finished", "username", username, "repos", repoCount, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnLookupSuperseded(_ context.Context, username string) {
	h.logger.Debug("lookup superseded", "username", username)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "error", err)
}
