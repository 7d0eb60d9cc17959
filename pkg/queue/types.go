// Package queue claims pending workflow runs from the database-backed
// queue and drives them through the engine, with heartbeats and orphan
// recovery so a crashed pod's runs resume elsewhere.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/outreachkit/prospector/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no claimable runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claimed run to a terminal status. The error
// return is for infrastructure failures only; the run is then left
// non-terminal for another claim to resume. Implemented by
// workflow.Engine.
type RunExecutor interface {
	ExecuteRun(ctx context.Context, run *ent.WorkflowRun) error
}

// Config tunes the worker pool.
type Config struct {
	WorkerCount             int           `yaml:"worker_count"`
	MaxConcurrentRuns       int           `yaml:"max_concurrent_runs"`
	PollInterval            time.Duration `yaml:"poll_interval"`
	PollIntervalJitter      time.Duration `yaml:"poll_interval_jitter"`
	HeartbeatInterval       time.Duration `yaml:"heartbeat_interval"`
	RunTimeout              time.Duration `yaml:"run_timeout"`
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`
	OrphanThreshold         time.Duration `yaml:"orphan_threshold"`

	// GracefulShutdownTimeout bounds the wait for active runs on
	// shutdown. Runs still going after it are released for reclaim.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultConfig returns production queue tuning. Workers are few: one
// worker goroutine owns one run end to end, including its gate waits.
func DefaultConfig() Config {
	return Config{
		WorkerCount:             4,
		MaxConcurrentRuns:       8,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		RunTimeout:              96 * time.Hour,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         2 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansReclaimed int            `json:"orphans_reclaimed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
