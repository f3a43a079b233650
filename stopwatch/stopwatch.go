// Package stopwatch contains the stopwatch engine: elapsed-time
// accumulation driven by a fixed-interval tick, its display fields and the
// lap history.
//
// Maintenance notes:
//   - Ticks arrive on the clock's goroutine while commands arrive from the
//     application command loop, so every mutable field is guarded by mu.
//   - A running stopwatch owns exactly one clock.Ticker. Every transition
//     out of StateRunning stops it before touching elapsed or laps, and
//     each start bumps gen so a tick already in flight for an older run is
//     discarded.
package stopwatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"macTime/clock"
)

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// State defines the possible states of the stopwatch.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Lap is an immutable snapshot of the elapsed time at capture.
type Lap struct {
	ID      uuid.UUID
	Number  int
	Elapsed time.Duration
}

// Formatted renders the lap time as MM:SS.T.
func (l Lap) Formatted() string {
	return FormatElapsed(l.Elapsed)
}

// Stopwatch is a single stopwatch's state and logic.
type Stopwatch struct {
	clock    clock.Clock
	interval time.Duration

	// mutable state - protect with mu
	mu       sync.RWMutex
	state    State
	elapsed  time.Duration
	laps     []Lap
	ticker   clock.Ticker
	gen      uint64
	closed   bool
	onChange func()
}

// New creates an idle stopwatch ticking every interval on c.
func New(c clock.Clock, interval time.Duration) *Stopwatch {
	if c == nil {
		c = clock.System
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Stopwatch{clock: c, interval: interval}
}

// SetOnChange registers fn to be called after every state change. fn runs
// outside the stopwatch lock and may read a Snapshot.
func (s *Stopwatch) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Interval returns the tick period.
func (s *Stopwatch) Interval() time.Duration {
	return s.interval
}

// Start begins or resumes counting. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()
	if s.closed || s.state == StateRunning {
		s.mu.Unlock()
		return false
	}
	s.state = StateRunning
	s.gen++
	gen := s.gen
	s.ticker = s.clock.Every(s.interval, func() { s.tick(gen) })
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
	return true
}

// Pause stops counting and keeps the elapsed time and laps.
func (s *Stopwatch) Pause() bool {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return false
	}
	s.stopTickerLocked()
	s.state = StatePaused
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
	return true
}

// Toggle starts an idle or paused stopwatch and pauses a running one.
func (s *Stopwatch) Toggle() {
	if s.State() == StateRunning {
		s.Pause()
		return
	}
	s.Start()
}

// Reset stops the tick, zeroes the elapsed time and clears the laps.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	s.stopTickerLocked()
	s.state = StateIdle
	s.elapsed = 0
	s.laps = nil
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
}

// Lap records the current elapsed time. It only works while running.
func (s *Stopwatch) Lap() (Lap, bool) {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return Lap{}, false
	}
	lap := Lap{
		ID:      uuid.New(),
		Number:  len(s.laps) + 1,
		Elapsed: s.elapsed,
	}
	s.laps = append(s.laps, lap)
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
	return lap, true
}

// Close cancels any pending tick for good. It is called when the window
// hosting the stopwatch goes away.
func (s *Stopwatch) Close() {
	s.mu.Lock()
	s.stopTickerLocked()
	if s.state == StateRunning {
		s.state = StatePaused
	}
	s.closed = true
	s.onChange = nil
	s.mu.Unlock()
}

func (s *Stopwatch) tick(gen uint64) {
	s.mu.Lock()
	if s.state != StateRunning || s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.elapsed += s.interval
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
}

func (s *Stopwatch) stopTickerLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// State returns the current state in a thread-safe manner.
func (s *Stopwatch) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Elapsed returns the accumulated time in a thread-safe manner.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

// Laps returns a copy of the recorded laps in capture order.
func (s *Stopwatch) Laps() []Lap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Lap(nil), s.laps...)
}

// Snapshot is a coherent view of the stopwatch for rendering.
type Snapshot struct {
	State   State
	Elapsed time.Duration
	Minutes int
	Seconds int
	Tenths  int
	Laps    []Lap
}

// Running reports whether the snapshot was taken while counting.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}

// CanReset mirrors the reset button: something to clear or a run to stop.
func (s Snapshot) CanReset() bool {
	return s.State == StateRunning || s.Elapsed > 0
}

// Display renders the elapsed time as MM:SS.T.
func (s Snapshot) Display() string {
	return fmt.Sprintf("%02d:%02d.%d", s.Minutes, s.Seconds, s.Tenths)
}

// Snapshot returns a consistent snapshot of the stopwatch for UI use.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.RLock()
	snap := Snapshot{
		State:   s.state,
		Elapsed: s.elapsed,
		Laps:    append([]Lap(nil), s.laps...),
	}
	s.mu.RUnlock()
	snap.Minutes, snap.Seconds, snap.Tenths = Components(snap.Elapsed)
	return snap
}

func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
