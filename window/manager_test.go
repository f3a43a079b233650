package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macTime/clock"
	"macTime/stopwatch"
)

type fakeSurface struct {
	kind     Kind
	sw       *stopwatch.Stopwatch
	onClosed func()
	shows    int
	closed   bool
	levels   []Level
}

func (s *fakeSurface) Show() { s.shows++ }

func (s *fakeSurface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sw.Close()
	s.onClosed()
}

func (s *fakeSurface) SetLevel(l Level) { s.levels = append(s.levels, l) }

func (s *fakeSurface) level() Level { return s.levels[len(s.levels)-1] }

type fakeFactory struct {
	clock   *clock.Fake
	created []*fakeSurface
}

func (f *fakeFactory) NewSurface(kind Kind, onClosed func()) Surface {
	s := &fakeSurface{kind: kind, sw: stopwatch.New(f.clock, 100*time.Millisecond), onClosed: onClosed}
	f.created = append(f.created, s)
	return s
}

func (f *fakeFactory) live() int {
	n := 0
	for _, s := range f.created {
		if !s.closed {
			n++
		}
	}
	return n
}

func newTestRegistry() (*Registry, *fakeFactory) {
	f := &fakeFactory{clock: clock.NewFake(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))}
	return NewRegistry(f), f
}

func TestOpenTwiceKeepsOneSurface(t *testing.T) {
	r, f := newTestRegistry()
	require.True(t, r.Open(KindStopwatch))
	s := f.created[0]
	s.sw.Start()
	f.clock.Advance(2 * time.Second)

	r.Open(KindStopwatch)

	assert.Len(t, f.created, 1)
	assert.Equal(t, 1, f.live())
	assert.Equal(t, 2, s.shows)
	assert.Equal(t, stopwatch.StateRunning, s.sw.State())
	assert.Equal(t, 2*time.Second, s.sw.Elapsed())
}

func TestCloseThenOpenIsFresh(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindStopwatch)
	first := f.created[0]
	first.sw.Start()
	f.clock.Advance(time.Second)

	r.Close(KindStopwatch)
	assert.True(t, first.closed)
	assert.False(t, r.IsOpen(KindStopwatch))
	assert.Equal(t, 0, f.clock.Active())

	r.Open(KindStopwatch)
	require.Len(t, f.created, 2)
	second := f.created[1]
	assert.Equal(t, stopwatch.StateIdle, second.sw.State())
	assert.Zero(t, second.sw.Elapsed())
	assert.Equal(t, 1, f.live())
}

func TestUserCloseReleasesSurface(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindTimer)
	f.created[0].Close()

	assert.False(t, r.IsOpen(KindTimer))
	r.Open(KindTimer)
	assert.Len(t, f.created, 2)
}

func TestStaleCloseCallbackIgnored(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindTimer)
	old := f.created[0]
	r.Close(KindTimer)
	r.Open(KindTimer)

	old.onClosed()

	assert.True(t, r.IsOpen(KindTimer))
}

func TestCloseWithoutSurfaceIsNoop(t *testing.T) {
	r, f := newTestRegistry()
	r.Close(KindAlarm)
	r.CloseAll()
	assert.Empty(t, f.created)
	assert.False(t, r.TogglePinned(KindAlarm))
}

func TestTogglePinned(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindStopwatch)
	s := f.created[0]
	m := r.Get(KindStopwatch)
	assert.Equal(t, LevelNormal, s.level())

	require.True(t, r.TogglePinned(KindStopwatch))
	assert.Equal(t, LevelFloating, s.level())
	assert.Equal(t, LevelFloating, m.Level())

	r.TogglePinned(KindStopwatch)
	assert.Equal(t, LevelNormal, s.level())
}

func TestTogglePinnedLeavesTimingAlone(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindStopwatch)
	s := f.created[0]
	s.sw.Start()
	f.clock.Advance(time.Second)
	r.TogglePinned(KindStopwatch)
	f.clock.Advance(time.Second)
	assert.Equal(t, 2*time.Second, s.sw.Elapsed())
	assert.Equal(t, stopwatch.StateRunning, s.sw.State())
}

func TestReopenResetsLevel(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindTimer)
	r.TogglePinned(KindTimer)
	r.Close(KindTimer)
	assert.Equal(t, LevelNormal, r.Get(KindTimer).Level())

	r.Open(KindTimer)
	assert.Equal(t, LevelNormal, f.created[1].level())
}

func TestFullScreenStartsFloating(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindFullScreen)
	assert.Equal(t, LevelFloating, f.created[0].level())
	assert.True(t, KindFullScreen.Frame().FullScreen)
	assert.False(t, KindTimer.Frame().FullScreen)
}

func TestManagersAreIndependent(t *testing.T) {
	r, f := newTestRegistry()
	r.Open(KindStopwatch)
	r.Open(KindTimer)
	r.Close(KindStopwatch)
	assert.True(t, r.IsOpen(KindTimer))
	assert.Equal(t, 1, f.live())

	r.CloseAll()
	assert.Equal(t, 0, f.live())
}

func TestRegistrySubset(t *testing.T) {
	r := NewRegistry(&fakeFactory{clock: clock.NewFake(time.Now())}, KindTimer, KindTimer)
	assert.Nil(t, r.Get(KindStopwatch))
	assert.False(t, r.Open(KindStopwatch))
	assert.NotNil(t, r.Get(KindTimer))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	got, ok := ParseKind(" Alarms ")
	assert.True(t, ok)
	assert.Equal(t, KindAlarm, got)
	_, ok = ParseKind("clock")
	assert.False(t, ok)
}

func TestFactoryFunc(t *testing.T) {
	var gotKind Kind = -1
	f := FactoryFunc(func(k Kind, onClosed func()) Surface {
		gotKind = k
		return &fakeSurface{sw: stopwatch.New(clock.NewFake(time.Now()), 0), onClosed: onClosed}
	})
	m := NewManager(KindAlarm, f)
	m.Open()
	assert.Equal(t, KindAlarm, gotKind)
	assert.Equal(t, KindAlarm, m.Kind())
	assert.True(t, m.IsOpen())
}
