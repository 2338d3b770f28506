package louvre

import (
	"fmt"
	"time"
)

// LogCategory classifies a BuildContext log entry.
type LogCategory int

const (
	// LogProgress marks a routine progress entry.
	LogProgress LogCategory = 1 + iota
	// LogWarning marks a recoverable condition, such as an abandoned cycle.
	LogWarning
	// LogError marks an unrecoverable condition.
	LogError
)

// TimerLabel names one of Triangulate's stage timers.
type TimerLabel int

const (
	TimerBuildRing TimerLabel = iota
	TimerIntersect
	TimerLink
	TimerDecompose
	TimerEarClip
	TimerTotal

	timerCount
)

const maxMessages = 1000

// BuildContext collects diagnostic log entries and per-stage timings
// across a single Triangulate call. A nil *BuildContext is valid
// everywhere Triangulate accepts one: every method on it is a no-op.
type BuildContext struct {
	startTime [timerCount]time.Time
	accTime   [timerCount]time.Duration

	messages    []string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a BuildContext with logging and timing enabled
// according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{logEnabled: state, timerEnabled: state}
}

// EnableLog turns logging on or off.
func (ctx *BuildContext) EnableLog(state bool) {
	if ctx == nil {
		return
	}
	ctx.logEnabled = state
}

// EnableTimer turns timing on or off.
func (ctx *BuildContext) EnableTimer(state bool) {
	if ctx == nil {
		return
	}
	ctx.timerEnabled = state
}

// Reset clears both the log buffer and the accumulated timers.
func (ctx *BuildContext) Reset() {
	if ctx == nil {
		return
	}
	ctx.resetLog()
	ctx.resetTimers()
}

func (ctx *BuildContext) resetLog() {
	ctx.numMessages = 0
	ctx.messages = nil
}

func (ctx *BuildContext) resetTimers() {
	for i := range ctx.accTime {
		ctx.accTime[i] = 0
	}
}

// Progressf logs a LogProgress entry.
func (ctx *BuildContext) Progressf(format string, v ...interface{}) {
	ctx.Log(LogProgress, format, v...)
}

// Warningf logs a LogWarning entry.
func (ctx *BuildContext) Warningf(format string, v ...interface{}) {
	ctx.Log(LogWarning, format, v...)
}

// Errorf logs a LogError entry.
func (ctx *BuildContext) Errorf(format string, v ...interface{}) {
	ctx.Log(LogError, format, v...)
}

// Log appends a formatted message under category to the log buffer.
func (ctx *BuildContext) Log(category LogCategory, format string, v ...interface{}) {
	if ctx == nil || !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	prefix := "?"
	switch category {
	case LogProgress:
		prefix = "progress"
	case LogWarning:
		prefix = "warning"
	case LogError:
		prefix = "error"
	}
	ctx.messages = append(ctx.messages, fmt.Sprintf("%s: %s", prefix, fmt.Sprintf(format, v...)))
	ctx.numMessages++
}

// LogCount returns the number of buffered log entries.
func (ctx *BuildContext) LogCount() int {
	if ctx == nil {
		return 0
	}
	return ctx.numMessages
}

// LogText returns the i-th buffered log entry.
func (ctx *BuildContext) LogText(i int) string {
	if ctx == nil || i < 0 || i >= ctx.numMessages {
		return ""
	}
	return ctx.messages[i]
}

// StartTimer begins timing label. Calling it again before StopTimer
// restarts the interval rather than nesting.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.startTime[label] = time.Now()
}

// StopTimer accumulates the elapsed time since the matching StartTimer
// into label's running total.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	if ctx.startTime[label].IsZero() {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
	ctx.startTime[label] = time.Time{}
}

// AccumulatedTime returns the running total for label.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil {
		return 0
	}
	return ctx.accTime[label]
}
