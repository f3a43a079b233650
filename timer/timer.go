// Package timer contains the countdown engine: a user-adjustable duration
// counted down once per second, with a completion signal and an automatic
// return to the configuring state when it reaches zero.
//
// Maintenance notes:
//   - Mutable fields are touched by the clock goroutine (tick) and by the
//     application command loop. All of them are guarded by mu; callbacks
//     (onChange, onComplete) are always invoked after mu is released.
//   - A running timer owns exactly one clock.Ticker. Pause, Reset, Close
//     and completion all stop it before changing remaining, and gen makes
//     a tick that was already in flight for an older run a no-op.
package timer

import (
	"fmt"
	"sync"
	"time"

	"macTime/clock"
)

// TickInterval is the countdown step.
const TickInterval = time.Second

// TimerState defines the possible states of the countdown.
type TimerState int

const (
	StateConfiguring TimerState = iota
	StateRunning
	StatePaused
)

func (s TimerState) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return fmt.Sprintf("TimerState(%d)", int(s))
}

// Timer represents a single countdown's state and logic.
type Timer struct {
	clock  clock.Clock
	config Config

	// mutable state - protect with mu
	mu         sync.RWMutex
	state      TimerState
	minutes    int
	remaining  time.Duration
	startedAt  time.Time
	deadline   time.Time
	ticker     clock.Ticker
	gen        uint64
	closed     bool
	onChange   func()
	onComplete func()
}

// New creates a timer in the configuring state at cfg's default duration.
func New(c clock.Clock, cfg Config) *Timer {
	if c == nil {
		c = clock.System
	}
	cfg = cfg.Normalize()
	return &Timer{
		clock:     c,
		config:    cfg,
		state:     StateConfiguring,
		minutes:   cfg.DefaultMinutes,
		remaining: time.Duration(cfg.DefaultMinutes) * time.Minute,
	}
}

// SetOnChange registers fn to be called after every state change.
func (t *Timer) SetOnChange(fn func()) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

// SetOnComplete registers the completion signal. It fires once per
// countdown that reaches zero, after the timer has already reset itself.
func (t *Timer) SetOnComplete(fn func()) {
	t.mu.Lock()
	t.onComplete = fn
	t.mu.Unlock()
}

// Config returns the bounds the timer was built with.
func (t *Timer) Config() Config {
	return t.config
}

// AdjustDuration moves the configured duration by delta minutes, clamped
// to the configured bounds. Only a configuring timer can be adjusted; reset
// a paused one first.
func (t *Timer) AdjustDuration(delta int) bool {
	t.mu.Lock()
	if t.closed || t.state != StateConfiguring {
		t.mu.Unlock()
		return false
	}
	m := t.config.Clamp(t.minutes + delta)
	if m == t.minutes {
		t.mu.Unlock()
		return false
	}
	t.minutes = m
	t.resetLocked()
	fn := t.onChange
	t.mu.Unlock()

	notify(fn)
	return true
}

// Increase adds one minute to the configured duration.
func (t *Timer) Increase() bool {
	return t.AdjustDuration(1)
}

// Decrease removes one minute from the configured duration.
func (t *Timer) Decrease() bool {
	return t.AdjustDuration(-1)
}

// Start begins the countdown from the configured duration, or resumes a
// paused one. Starting a running timer is a no-op.
func (t *Timer) Start() bool {
	t.mu.Lock()
	if t.closed || t.state == StateRunning {
		t.mu.Unlock()
		return false
	}
	if t.remaining <= 0 {
		t.remaining = t.totalLocked()
	}
	t.state = StateRunning
	t.startedAt = t.clock.Now()
	t.deadline = t.startedAt.Add(t.remaining)
	t.gen++
	gen := t.gen
	t.ticker = t.clock.Every(TickInterval, func() { t.tick(gen) })
	fn := t.onChange
	t.mu.Unlock()

	notify(fn)
	return true
}

// Pause stops the countdown and keeps the remaining time.
func (t *Timer) Pause() bool {
	t.mu.Lock()
	if t.state != StateRunning {
		t.mu.Unlock()
		return false
	}
	t.stopTickerLocked()
	t.state = StatePaused
	t.deadline = time.Time{}
	fn := t.onChange
	t.mu.Unlock()

	notify(fn)
	return true
}

// Toggle starts a configuring or paused timer and pauses a running one.
func (t *Timer) Toggle() {
	if t.State() == StateRunning {
		t.Pause()
		return
	}
	t.Start()
}

// Reset cancels any countdown and restores the configured duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.resetLocked()
	fn := t.onChange
	t.mu.Unlock()

	notify(fn)
}

// Close cancels any pending tick for good; used when the hosting window
// goes away.
func (t *Timer) Close() {
	t.mu.Lock()
	t.stopTickerLocked()
	if t.state == StateRunning {
		t.state = StatePaused
	}
	t.closed = true
	t.onChange = nil
	t.onComplete = nil
	t.mu.Unlock()
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	if t.state != StateRunning || t.gen != gen {
		t.mu.Unlock()
		return
	}
	t.remaining -= TickInterval
	fn := t.onChange
	if t.remaining > 0 {
		t.mu.Unlock()
		notify(fn)
		return
	}

	// Countdown finished: stop, leave running and go straight back to
	// configuring at the chosen duration.
	t.resetLocked()
	done := t.onComplete
	t.mu.Unlock()

	notify(done)
	notify(fn)
}

func (t *Timer) resetLocked() {
	t.stopTickerLocked()
	t.state = StateConfiguring
	t.remaining = t.totalLocked()
	t.startedAt = time.Time{}
	t.deadline = time.Time{}
}

func (t *Timer) stopTickerLocked() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

func (t *Timer) totalLocked() time.Duration {
	return time.Duration(t.minutes) * time.Minute
}

// State returns the current state in a thread-safe manner.
func (t *Timer) State() TimerState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Remaining returns the time left in a thread-safe manner.
func (t *Timer) Remaining() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.remaining
}

// Minutes returns the configured duration in minutes.
func (t *Timer) Minutes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.minutes
}

// TimerSnapshot is an atomic snapshot of the fields the UI needs to render
// a consistent view.
type TimerSnapshot struct {
	State     TimerState
	Minutes   int
	Total     time.Duration
	Remaining time.Duration
	StartedAt time.Time
	Deadline  time.Time
	Min       int
	Max       int
}

// Running reports whether the countdown was active.
func (s TimerSnapshot) Running() bool {
	return s.State == StateRunning
}

// Progress is the remaining fraction of the total, for the gauge.
func (s TimerSnapshot) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Remaining) / float64(s.Total)
}

// CanReset mirrors the reset button: running, or some time already used.
func (s TimerSnapshot) CanReset() bool {
	return s.State == StateRunning || s.Remaining < s.Total
}

// CanIncrease reports whether the + button is enabled.
func (s TimerSnapshot) CanIncrease() bool {
	return s.State == StateConfiguring && s.Minutes < s.Max
}

// CanDecrease reports whether the - button is enabled.
func (s TimerSnapshot) CanDecrease() bool {
	return s.State == StateConfiguring && s.Minutes > s.Min
}

// Display renders the remaining time as MM:SS.
func (s TimerSnapshot) Display() string {
	return FormatTime(s.Remaining)
}

// GetSnapshot returns a consistent snapshot of the timer's state for UI use.
func (t *Timer) GetSnapshot() TimerSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return TimerSnapshot{
		State:     t.state,
		Minutes:   t.minutes,
		Total:     t.totalLocked(),
		Remaining: t.remaining,
		StartedAt: t.startedAt,
		Deadline:  t.deadline,
		Min:       t.config.MinMinutes,
		Max:       t.config.MaxMinutes,
	}
}

func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
