// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and logs it on stop.
//              The engine times every scan and parse with it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with checkpoints
// - 2025-10-19 v0.2.0: Reduced to start, stop and stop-with-error

package log

import (
	"time"
)

// Timer measures an operation and logs its duration
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    make(Fields),
	}
}

// WithLevel sets the level the completion message is logged at
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the completion and returns the elapsed time. Only the first
// call logs.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs completion at warn level when err is non-nil
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	if !t.logger.IsLevelEnabled(t.level) && err == nil {
		return elapsed
	}

	entryFields := Fields{"operation": t.operation, "duration_ms": float64(elapsed.Microseconds()) / 1000.0}
	for k, v := range t.fields {
		entryFields[k] = v
	}

	if err != nil {
		entryFields["success"] = false
		t.logger.log(LevelWarn, "operation failed", err, entryFields)
		return elapsed
	}
	entryFields["success"] = true
	t.logger.log(t.level, "operation completed", nil, entryFields)
	return elapsed
}
