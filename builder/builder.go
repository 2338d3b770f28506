// Package builder wires the core louvre triangulator to file I/O,
// settings and diagnostics, the way a caller embedding it in a larger
// tool would use it.
package builder

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/acheul/go-louvre"
	"github.com/acheul/go-louvre/geom"
	"github.com/aurelien-rainone/gogeo/f32/d3"
)

// Elapsed is the per-stage timing breakdown of a Build call, read back
// from the BuildContext's timers.
type Elapsed struct {
	BuildRing time.Duration
	Intersect time.Duration
	Link      time.Duration
	Decompose time.Duration
	EarClip   time.Duration
	Total     time.Duration
}

// Result is everything a Build call produced.
type Result struct {
	Vertices []float64
	Indices  []int
	Bounds   d3.Rectangle

	// TriangleCount is len(Indices)/3.
	TriangleCount int

	// DiscardedCycles counts the LogWarning entries Build's
	// BuildContext collected, i.e. cycles ear-clip abandoned.
	DiscardedCycles int

	Elapsed Elapsed
}

// Builder loads a ring from a geometry file and triangulates it
// against a set of Settings, collecting diagnostics on a BuildContext.
type Builder struct {
	ctx      *louvre.BuildContext
	settings Settings
	data     []float64
	bounds   d3.Rectangle
}

// New creates a Builder with default settings and a fresh BuildContext.
func New() *Builder {
	return &Builder{
		ctx:      louvre.NewBuildContext(true),
		settings: NewSettings(),
	}
}

// SetSettings replaces the builder's settings.
func (b *Builder) SetSettings(s Settings) {
	b.settings = s
}

// Context returns the builder's BuildContext, for callers that want to
// inspect logs or timers after Build.
func (b *Builder) Context() *louvre.BuildContext {
	return b.ctx
}

// LoadFile opens path and loads ring coordinates and bounds from it.
func (b *Builder) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("builder: open: %w", err)
	}
	defer f.Close()

	data, bounds, err := geom.Load(f)
	if err != nil {
		return fmt.Errorf("builder: load: %w", err)
	}
	b.data = data
	b.bounds = bounds
	return nil
}

// Build triangulates the loaded ring. It returns an error only when
// AbandonedCycleIsError is set and at least one cycle was abandoned
// during ear-clipping; Triangulate itself never fails. Abandoned cycles
// are counted from the BuildContext's warning log, so with EnableLog off
// none are counted and no error is returned.
func (b *Builder) Build() (Result, error) {
	b.ctx.EnableLog(b.settings.EnableLog)
	b.ctx.EnableTimer(b.settings.EnableTimer)
	b.ctx.Reset()

	newData, indices := louvre.Triangulate(b.ctx, b.data, b.settings.CoordDim)
	discarded := countAbandonedCycles(b.ctx)

	if b.settings.AbandonedCycleIsError && discarded > 0 {
		return Result{}, fmt.Errorf("builder: %d cycle(s) were abandoned during ear-clipping", discarded)
	}

	return Result{
		Vertices:        newData,
		Indices:         indices,
		Bounds:          b.bounds,
		TriangleCount:   len(indices) / 3,
		DiscardedCycles: discarded,
		Elapsed: Elapsed{
			BuildRing: b.ctx.AccumulatedTime(louvre.TimerBuildRing),
			Intersect: b.ctx.AccumulatedTime(louvre.TimerIntersect),
			Link:      b.ctx.AccumulatedTime(louvre.TimerLink),
			Decompose: b.ctx.AccumulatedTime(louvre.TimerDecompose),
			EarClip:   b.ctx.AccumulatedTime(louvre.TimerEarClip),
			Total:     b.ctx.AccumulatedTime(louvre.TimerTotal),
		},
	}, nil
}

// countAbandonedCycles counts the LogWarning entries logged for an
// abandoned ear-clip in ctx's log buffer.
func countAbandonedCycles(ctx *louvre.BuildContext) int {
	n := 0
	for i := 0; i < ctx.LogCount(); i++ {
		if strings.HasPrefix(ctx.LogText(i), "warning:") {
			n++
		}
	}
	return n
}
