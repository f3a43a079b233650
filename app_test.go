package main

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macTime/clock"
	"macTime/config"
	"macTime/control"
	"macTime/i18n"
	"macTime/stopwatch"
	"macTime/timer"
	"macTime/window"
)

func newTestManager(t *testing.T, edit func(*config.Config)) (*AppManager, *clock.Fake) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Notifications.Backend = config.BackendNone
	cfg.Notifications.Sound = false
	if edit != nil {
		edit(cfg)
	}
	fake := clock.NewFake(time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC))
	a := NewAppManager(test.NewTempApp(t), cfg, fake)
	t.Cleanup(a.Shutdown)
	return a, fake
}

func sendAndWait(t *testing.T, a *AppManager, tool window.Kind, ct control.CommandType) {
	t.Helper()
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: ct, Tool: tool, Reply: reply})
	select {
	case err := <-reply:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("%s for %s was not applied", ct, tool)
	}
}

func (a *AppManager) liveStopwatch() *stopwatch.Stopwatch {
	a.engLock.Lock()
	defer a.engLock.Unlock()
	return a.stopwatch
}

func (a *AppManager) liveTimer() *timer.Timer {
	a.engLock.Lock()
	defer a.engLock.Unlock()
	return a.countdown
}

func TestCommandsDriveOpenStopwatch(t *testing.T) {
	a, fake := newTestManager(t, nil)
	a.OpenWindow(window.KindStopwatch)
	sw := a.liveStopwatch()
	require.NotNil(t, sw)

	sendAndWait(t, a, window.KindStopwatch, control.CmdToggle)
	assert.Equal(t, stopwatch.StateRunning, sw.State())

	fake.Advance(time.Second)
	sendAndWait(t, a, window.KindStopwatch, control.CmdLap)
	sendAndWait(t, a, window.KindStopwatch, control.CmdToggle)

	assert.Equal(t, stopwatch.StatePaused, sw.State())
	assert.Equal(t, time.Second, sw.Elapsed())
	require.Len(t, sw.Laps(), 1)
	assert.Equal(t, "00:01.0", sw.Laps()[0].Formatted())
}

func TestCommandForClosedToolIsDropped(t *testing.T) {
	a, fake := newTestManager(t, nil)

	sendAndWait(t, a, window.KindStopwatch, control.CmdStart)
	sendAndWait(t, a, window.KindTimer, control.CmdIncrease)

	assert.Nil(t, a.liveStopwatch())
	assert.Nil(t, a.liveTimer())
	assert.Zero(t, fake.Active())
}

func TestClosingWindowStopsTicks(t *testing.T) {
	a, fake := newTestManager(t, nil)
	a.OpenWindow(window.KindStopwatch)
	sendAndWait(t, a, window.KindStopwatch, control.CmdStart)
	require.Equal(t, 1, fake.Active())

	a.CloseWindow(window.KindStopwatch)

	assert.Zero(t, fake.Active())
	assert.Nil(t, a.liveStopwatch())
	assert.False(t, a.Windows().IsOpen(window.KindStopwatch))
}

func TestReopenedStopwatchStartsFresh(t *testing.T) {
	a, fake := newTestManager(t, nil)
	a.OpenWindow(window.KindStopwatch)
	first := a.liveStopwatch()
	sendAndWait(t, a, window.KindStopwatch, control.CmdStart)
	fake.Advance(3 * time.Second)

	a.CloseWindow(window.KindStopwatch)
	a.OpenWindow(window.KindStopwatch)

	second := a.liveStopwatch()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, stopwatch.StateIdle, second.State())
	assert.Zero(t, second.Elapsed())
}

func TestOpenTwiceKeepsEngine(t *testing.T) {
	a, _ := newTestManager(t, nil)
	a.OpenWindow(window.KindTimer)
	first := a.liveTimer()
	a.OpenWindow(window.KindTimer)

	assert.Same(t, first, a.liveTimer())
}

func TestTimerKeysAdjustDuration(t *testing.T) {
	a, _ := newTestManager(t, nil)
	a.OpenWindow(window.KindTimer)
	tm := a.liveTimer()

	a.HandleKeyRune(window.KindTimer, '+')
	require.Eventually(t, func() bool { return tm.GetSnapshot().Minutes == 26 }, time.Second, 5*time.Millisecond)

	a.HandleKeyRune(window.KindTimer, '-')
	a.HandleKeyRune(window.KindTimer, '-')
	require.Eventually(t, func() bool { return tm.GetSnapshot().Minutes == 24 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 24*time.Minute, tm.GetSnapshot().Remaining)
}

func TestTimerCompletionOpensAlert(t *testing.T) {
	a, fake := newTestManager(t, func(c *config.Config) {
		c.Timer.DefaultMinutes = 1
		c.Notifications.FullScreenAlert = true
	})
	a.OpenWindow(window.KindTimer)
	tm := a.liveTimer()
	sendAndWait(t, a, window.KindTimer, control.CmdStart)

	fake.Advance(59 * time.Second)
	assert.False(t, a.Windows().IsOpen(window.KindFullScreen))

	fake.Advance(time.Second)

	assert.Eventually(t, func() bool { return a.Windows().IsOpen(window.KindFullScreen) }, time.Second, 5*time.Millisecond)
	snap := tm.GetSnapshot()
	assert.Equal(t, timer.StateConfiguring, snap.State)
	assert.Equal(t, time.Minute, snap.Remaining)
	assert.Zero(t, fake.Active())
}

func TestTimerCompletionWithoutAlert(t *testing.T) {
	a, fake := newTestManager(t, func(c *config.Config) {
		c.Timer.DefaultMinutes = 1
		c.Notifications.FullScreenAlert = false
	})
	a.OpenWindow(window.KindTimer)
	sendAndWait(t, a, window.KindTimer, control.CmdStart)

	fake.Advance(time.Minute)

	assert.False(t, a.Windows().IsOpen(window.KindFullScreen))
	assert.Equal(t, timer.StateConfiguring, a.liveTimer().GetSnapshot().State)
}

func TestPinKeyTogglesLevel(t *testing.T) {
	a, _ := newTestManager(t, nil)
	a.OpenWindow(window.KindAlarm)
	assert.False(t, a.Pinned(window.KindAlarm))

	a.HandleKeyRune(window.KindAlarm, 'p')
	assert.True(t, a.Pinned(window.KindAlarm))

	a.HandleKeyRune(window.KindAlarm, 'P')
	assert.False(t, a.Pinned(window.KindAlarm))
}

func TestPinClosedWindowIsNoop(t *testing.T) {
	a, _ := newTestManager(t, nil)

	assert.False(t, a.TogglePinned(window.KindStopwatch))
	assert.False(t, a.Pinned(window.KindStopwatch))
}

func TestApplyConfigSwitchesLanguage(t *testing.T) {
	a, _ := newTestManager(t, nil)
	cfg := config.DefaultConfig()
	cfg.Notifications.Backend = config.BackendNone
	cfg.Notifications.Sound = false
	cfg.App.Name = "Clock"
	cfg.Language = "pt"

	a.ApplyConfig(cfg)
	t.Cleanup(func() { i18n.SetLang("en") })

	assert.Equal(t, "Clock", a.AppName())
	assert.Equal(t, "pt", i18n.GetLang())
}

func TestShutdownClosesEverything(t *testing.T) {
	a, fake := newTestManager(t, nil)
	a.OpenWindow(window.KindStopwatch)
	a.OpenWindow(window.KindTimer)
	sendAndWait(t, a, window.KindStopwatch, control.CmdStart)
	sendAndWait(t, a, window.KindTimer, control.CmdStart)
	require.Equal(t, 2, fake.Active())

	a.Shutdown()

	assert.Zero(t, fake.Active())
	for _, k := range window.Kinds {
		assert.False(t, a.Windows().IsOpen(k))
	}
}
