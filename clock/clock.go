// Package clock provides the time source and periodic scheduler the
// engines run on. The System clock drives real windows; Fake lets tests
// advance time deterministically.
package clock

import (
	"sync"
	"time"
)

// Ticker is a periodic callback that can be cancelled.
type Ticker interface {
	Stop()
}

// Clock provides time-related operations.
// This interface enables dependency injection for testing tick behavior.
type Clock interface {
	Now() time.Time
	// Every calls f once per period d until the returned Ticker is stopped.
	Every(d time.Duration, f func()) Ticker
}

// System is the default Clock implementation using the standard library.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Every(d time.Duration, f func()) Ticker {
	t := &systemTicker{done: make(chan struct{})}
	tk := time.NewTicker(d)
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-tk.C:
				// A stop racing with the tick wins.
				select {
				case <-t.done:
					return
				default:
				}
				f()
			}
		}
	}()
	return t
}

type systemTicker struct {
	done chan struct{}
	once sync.Once
}

// Stop never blocks, so it is safe to call from inside the callback.
func (t *systemTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}
