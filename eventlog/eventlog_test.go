package eventlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/eventlog"
	"github.com/stretchr/testify/require"
)

// decode splits JSON-lines output into records.
func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

// TestLoggerRecords checks the messages and key attributes of every event.
func TestLoggerRecords(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, err := core.NewGraph(4, core.WithEdgeParallelism(1), core.WithObserver(eventlog.New(l)))
	require.NoError(t, err)
	g.InsertRandomEdges(2)

	recs := decode(t, &buf)
	var msgs []string
	for _, r := range recs {
		msgs = append(msgs, r["msg"].(string))
		require.Equal(t, "geograph", r["component"])
	}
	require.Equal(t, []string{
		"graph init begin", "graph init end",
		"edge insert begin", "edge insert progress", "edge insert progress", "edge insert end",
	}, msgs)

	end := recs[len(recs)-1]
	require.Equal(t, 2.0, end["inserted"])
	require.Equal(t, 2.0, end["total"])
	require.Equal(t, recs[2]["run_id"], end["run_id"])
}

// TestLoggerInfoHidesProgress verifies progress is debug-only.
func TestLoggerInfoHidesProgress(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	g, err := core.NewGraph(4, core.WithObserver(eventlog.New(l)))
	require.NoError(t, err)
	g.InsertRandomEdges(3)

	require.NotContains(t, buf.String(), "edge insert progress")
	require.Len(t, decode(t, &buf), 4)
}

// TestNewNilLogger falls back to the default logger without panicking.
func TestNewNilLogger(t *testing.T) {
	require.NotNil(t, eventlog.New(nil))
}
