package metrics

import (
	"sync"
	"time"
)

type loadStats struct {
	loads           int
	errors          int
	skipped         int
	lastLoadLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about data loads and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*loadStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*loadStats),
		otel:  otel,
	}
}

// RecordLoad counts a file load of the given kind and stores its latency.
func (r *Recorder) RecordLoad(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(kind)
	stats.loads++
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(kind, duration, err)
	}
}

// RecordSkippedMatches counts a match file that was skipped because it did not decode.
func (r *Recorder) RecordSkippedMatches(competition string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(KindMatches).skipped++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSkipped(competition)
	}
}

// RecordCommand tracks a CLI command run.
func (r *Recorder) RecordCommand(command string, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordCommand(command, duration, err)
}

// Loads returns the total loads recorded for a kind.
func (r *Recorder) Loads(kind string) int {
	return r.Snapshot(kind).Loads
}

// Errors returns the failed loads recorded for a kind.
func (r *Recorder) Errors(kind string) int {
	return r.Snapshot(kind).Errors
}

// Skipped returns the number of skipped files recorded for a kind.
func (r *Recorder) Skipped(kind string) int {
	return r.Snapshot(kind).Skipped
}

// LastLoadLatency returns the last recorded latency for a kind.
func (r *Recorder) LastLoadLatency(kind string) time.Duration {
	return r.Snapshot(kind).LastLoadLatency
}

// Snapshot is a copy of the current stats for one data kind.
type Snapshot struct {
	Loads           int
	Errors          int
	Skipped         int
	LastLoadLatency time.Duration
}

func (r *Recorder) Snapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[kind]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Loads:           stats.loads,
		Errors:          stats.errors,
		Skipped:         stats.skipped,
		LastLoadLatency: stats.lastLoadLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(kind string) *loadStats {
	stats, ok := r.stats[kind]
	if !ok {
		stats = &loadStats{}
		r.stats[kind] = stats
	}
	return stats
}
