// Package analytics tracks session-level generation metrics: pieces
// produced, time and cost saved against manual copywriting, and ROI
// projections. State lives in an Engine instance owned by the caller, so
// independent sessions never share counters.
package analytics

import (
	"sync"
	"time"

	"github.com/brandboost/brandboost/internal/content"
)

// Savings attributed to one generated piece when no custom rates are
// configured: a copywriter spends roughly half an hour per piece at an
// agency cost of twelve euros.
const (
	DefaultMinutesPerPiece = 30.0
	DefaultCostPerPiece    = 12.0
)

// Engine accumulates generation events. Safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	minutesPerPiece float64
	costPerPiece    float64

	pieces         int
	remotePieces   int
	fallbackPieces int
	minutesSaved   float64
	costSaved      float64
	totalElapsed   time.Duration
}

// Snapshot is a point-in-time copy of the engine counters. EventMinutes
// and EventCost carry the contribution of the event that produced the
// snapshot; they are zero on snapshots taken outside Record.
type Snapshot struct {
	Pieces         int           `json:"pieces"`
	RemotePieces   int           `json:"remote_pieces"`
	FallbackPieces int           `json:"fallback_pieces"`
	MinutesSaved   float64       `json:"minutes_saved"`
	CostSaved      float64       `json:"cost_saved"`
	TotalElapsed   time.Duration `json:"total_elapsed"`
	EventMinutes   float64       `json:"event_minutes,omitempty"`
	EventCost      float64       `json:"event_cost,omitempty"`
}

// ROIReport compares the cost of producing the session's pieces manually
// against the cost of generating them.
type ROIReport struct {
	Pieces     int     `json:"pieces"`
	ManualCost float64 `json:"manual_cost"`
	AICost     float64 `json:"ai_cost"`
	NetSavings float64 `json:"net_savings"`
	Percent    float64 `json:"percent"`
}

// NewEngine creates an engine crediting the given savings per piece.
// Negative rates are treated as zero.
func NewEngine(minutesPerPiece, costPerPiece float64) *Engine {
	if minutesPerPiece < 0 {
		minutesPerPiece = 0
	}
	if costPerPiece < 0 {
		costPerPiece = 0
	}
	return &Engine{
		minutesPerPiece: minutesPerPiece,
		costPerPiece:    costPerPiece,
	}
}

// Record credits one generated piece to the session and returns the
// updated totals together with the event's own contribution.
func (e *Engine) Record(res content.Result) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pieces++
	switch res.Source {
	case content.SourceFallback:
		e.fallbackPieces++
	default:
		e.remotePieces++
	}
	e.minutesSaved += e.minutesPerPiece
	e.costSaved += e.costPerPiece
	e.totalElapsed += res.Elapsed

	snap := e.snapshotLocked()
	snap.EventMinutes = e.minutesPerPiece
	snap.EventCost = e.costPerPiece
	return snap
}

// Snapshot returns the current totals.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Pieces:         e.pieces,
		RemotePieces:   e.remotePieces,
		FallbackPieces: e.fallbackPieces,
		MinutesSaved:   e.minutesSaved,
		CostSaved:      e.costSaved,
		TotalElapsed:   e.totalElapsed,
	}
}

// ROI projects savings for the session at the given copywriter hourly rate
// and per-generation inference cost. The percentage is computed against an
// AI cost floor of one euro so tiny inference bills do not explode it.
func (e *Engine) ROI(writerRate, aiCostPerGen float64) ROIReport {
	snap := e.Snapshot()

	manual := snap.MinutesSaved / 60 * writerRate
	ai := float64(snap.Pieces) * aiCostPerGen
	net := manual - ai

	return ROIReport{
		Pieces:     snap.Pieces,
		ManualCost: manual,
		AICost:     ai,
		NetSavings: net,
		Percent:    net / max(ai, 1) * 100,
	}
}
