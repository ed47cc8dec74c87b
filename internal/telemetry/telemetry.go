// Package telemetry records per-tool usage. Recording is strictly
// best-effort: counters are atomic, persistence runs off the request path,
// and failures are logged and swallowed, never surfaced to the caller.
package telemetry

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/instabids/mcp-hub/internal/infra/eventbus"
	"github.com/instabids/mcp-hub/internal/infra/logging"
	"github.com/instabids/mcp-hub/internal/tool"
	"github.com/instabids/mcp-hub/pkg/uuid"
)

// Topic is the eventbus topic usage events are published on.
const Topic = "usage.dispatch"

// Event is one recorded dispatch outcome.
type Event struct {
	ID       string
	Tool     string
	Outcome  string
	Duration time.Duration
	At       time.Time
}

// Recorder implements tool.UsageRecorder. It increments in-memory counters
// and publishes the event for asynchronous persistence.
type Recorder struct {
	bus    eventbus.EventBus
	total  atomic.Uint64
	failed atomic.Uint64
}

// NewRecorder returns a Recorder. bus may be nil to keep counters only.
func NewRecorder(bus eventbus.EventBus) *Recorder {
	return &Recorder{bus: bus}
}

// Record counts the dispatch and hands the event to the writer via the bus.
// Publish is non-blocking; under backpressure the event is dropped.
func (r *Recorder) Record(toolName string, outcome tool.Kind, elapsed time.Duration) {
	r.total.Add(1)
	if outcome != tool.Kind(tool.StatusSuccess) {
		r.failed.Add(1)
	}
	if r.bus == nil {
		return
	}
	r.bus.Publish(Topic, Event{
		ID:       uuid.NewV7().String(),
		Tool:     toolName,
		Outcome:  string(outcome),
		Duration: elapsed,
		At:       time.Now().UTC(),
	})
}

// Snapshot returns the total and failed dispatch counts since startup.
func (r *Recorder) Snapshot() (total, failed uint64) {
	return r.total.Load(), r.failed.Load()
}

// Writer consumes usage events from the bus and appends them to SQLite.
type Writer struct {
	db     *sql.DB
	bus    eventbus.EventBus
	logger *slog.Logger
}

// NewWriter returns a Writer ready to Start.
func NewWriter(db *sql.DB, bus eventbus.EventBus, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{db: db, bus: bus, logger: logger}
}

// Start consumes the usage topic until ctx is cancelled. Run it in its own
// goroutine. Insert failures are logged and swallowed.
func (w *Writer) Start(ctx context.Context) {
	ch := w.bus.Subscribe(Topic)
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-ch:
			usage, ok := evt.Payload.(Event)
			if !ok {
				continue
			}
			w.insert(ctx, usage)
		}
	}
}

func (w *Writer) insert(ctx context.Context, evt Event) {
	_, err := w.db.ExecContext(ctx, `
		INSERT INTO usage_event (id, tool, outcome, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, evt.ID, evt.Tool, evt.Outcome, evt.Duration.Milliseconds(), evt.At)
	if err != nil && ctx.Err() == nil {
		w.logger.Warn("usage event not persisted",
			logging.ToolKey, evt.Tool,
			"error", err.Error(),
		)
	}
}

// ToolCount is an aggregated usage row.
type ToolCount struct {
	Tool  string `json:"tool"`
	Count int64  `json:"count"`
}

// TopTools returns the most-dispatched tools, busiest first.
func TopTools(ctx context.Context, db *sql.DB, limit int) ([]ToolCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.QueryContext(ctx, `
		SELECT tool, COUNT(*) AS n
		FROM usage_event
		GROUP BY tool
		ORDER BY n DESC, tool ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ToolCount, 0, limit)
	for rows.Next() {
		var tc ToolCount
		if err := rows.Scan(&tc.Tool, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
