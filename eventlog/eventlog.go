// SPDX-License-Identifier: MIT

// Package eventlog writes graph lifecycle events as structured log records.
package eventlog

import (
	"log/slog"

	"github.com/katalvlaran/geograph/core"
)

// Logger is a core.Observer backed by *slog.Logger.
// Begin/end events log at Info, per-batch progress at Debug.
type Logger struct {
	log *slog.Logger
}

// New returns a Logger writing to l, or to slog.Default() when l is nil.
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}

	return &Logger{log: l.With(slog.String("component", "geograph"))}
}

func (l *Logger) InitBegin(e core.InitEvent) {
	l.log.Info("graph init begin",
		slog.Int("nodes", e.Nodes),
		slog.Int("parallelism", e.Parallelism),
		slog.Int64("seed", e.Seed))
}

func (l *Logger) InitEnd(e core.InitEvent) {
	l.log.Info("graph init end",
		slog.Int("nodes", e.Nodes),
		slog.Duration("elapsed", e.Elapsed))
}

func (l *Logger) InsertBegin(e core.InsertEvent) {
	l.log.Info("edge insert begin",
		slog.String("run_id", e.RunID.String()),
		slog.Int("requested", e.Requested),
		slog.String("policy", e.Policy.String()),
		slog.String("rand", e.Rand.String()),
		slog.Int("total", e.Total),
		slog.Time("begin", e.Begin))
}

func (l *Logger) InsertProgress(e core.ProgressEvent) {
	l.log.Debug("edge insert progress",
		slog.String("run_id", e.RunID.String()),
		slog.Int("batch", e.Batch),
		slog.Int("delta", e.Delta),
		slog.Int("total", e.Total))
}

func (l *Logger) InsertEnd(e core.InsertEvent) {
	l.log.Info("edge insert end",
		slog.String("run_id", e.RunID.String()),
		slog.Int("requested", e.Requested),
		slog.Int("inserted", e.Inserted),
		slog.Int("total", e.Total),
		slog.Duration("elapsed", e.Elapsed))
}
