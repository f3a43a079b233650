package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

func TestFakeAdvanceFiresInOrder(t *testing.T) {
	f := NewFake(epoch)
	var got []string
	f.Every(300*time.Millisecond, func() { got = append(got, "slow") })
	f.Every(100*time.Millisecond, func() { got = append(got, "fast") })

	f.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{"fast", "fast", "slow", "fast"}, got)
	assert.Equal(t, epoch.Add(300*time.Millisecond), f.Now())
}

func TestFakeStopInsideCallback(t *testing.T) {
	f := NewFake(epoch)
	n := 0
	var tk Ticker
	tk = f.Every(time.Second, func() {
		n++
		if n == 3 {
			tk.Stop()
		}
	})
	require.Equal(t, 1, f.Active())

	f.Advance(10 * time.Second)

	assert.Equal(t, 3, n)
	assert.Equal(t, 0, f.Active())
	assert.Equal(t, epoch.Add(10*time.Second), f.Now())
}

func TestFakeStopIsIdempotent(t *testing.T) {
	f := NewFake(epoch)
	tk := f.Every(time.Second, func() {})
	other := f.Every(time.Second, func() {})
	tk.Stop()
	tk.Stop()
	assert.Equal(t, 1, f.Active())
	other.Stop()
	assert.Equal(t, 0, f.Active())
}

func TestFakeAdvanceWithoutTickers(t *testing.T) {
	f := NewFake(epoch)
	f.Advance(time.Hour)
	assert.Equal(t, epoch.Add(time.Hour), f.Now())
}

func TestSystemTickerStops(t *testing.T) {
	var n atomic.Int32
	tk := System.Every(5*time.Millisecond, func() { n.Add(1) })
	require.Eventually(t, func() bool { return n.Load() >= 2 }, time.Second, time.Millisecond)

	tk.Stop()
	tk.Stop()
	time.Sleep(20 * time.Millisecond)
	stopped := n.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, n.Load())
}
