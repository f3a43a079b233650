// Package main contains the application wiring and the AppManager which
// coordinates the tool windows, their engines and the completion alert.
//
// Maintenance notes / tips:
//   - Concurrency model: button taps and key presses become
//     control.Commands that a single command-loop goroutine (see
//     `commandLoop`) applies to the live engine of the target tool. Ticks
//     arrive on clock goroutines; the engines guard their own state, so the
//     loop only serializes user intent.
//   - Engines live exactly as long as their window. NewSurface creates a
//     fresh engine for every new window and the window's teardown closes it
//     and clears the reference, so a command for a closed tool is dropped.
//   - fyne objects must be touched on the main goroutine. Views refresh
//     through fyne.Do; window opens triggered off the main goroutine (the
//     full-screen alert) are wrapped in fyne.Do as well.
//   - `cmdCh` is a buffered channel; EnqueueCommand drops a command if the
//     loop cannot accept it within a short timeout rather than block the UI.
package main

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"macTime/alarm"
	"macTime/clock"
	"macTime/config"
	"macTime/control"
	"macTime/i18n"
	"macTime/notify"
	"macTime/stopwatch"
	"macTime/timer"
	"macTime/ui"
	"macTime/window"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	fyneApp fyne.App
	clock   clock.Clock
	windows *window.Registry

	cfgLock  sync.RWMutex
	cfg      *config.Config
	notifier notify.Notifier
	chime    notify.Player

	engLock   sync.Mutex
	stopwatch *stopwatch.Stopwatch
	countdown *timer.Timer

	permissionOnce sync.Once

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
}

// NewAppManager creates a new application manager and starts its command
// loop. clk may be nil for the system clock.
func NewAppManager(fyneApp fyne.App, cfg *config.Config, clk clock.Clock) *AppManager {
	if clk == nil {
		clk = clock.System
	}
	a := &AppManager{fyneApp: fyneApp, clock: clk}
	a.ApplyConfig(cfg)
	a.windows = window.NewRegistry(a)

	a.cmdCh = make(chan control.Command, 64)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// ApplyConfig makes cfg current. Engine settings apply to windows opened
// afterwards; the notifier and chime are replaced right away.
func (a *AppManager) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	n := notify.New(cfg.Notifications.Backend, a.fyneApp)

	var chime notify.Player
	if cfg.Notifications.Sound {
		c, err := notify.NewChime(cfg.Notifications.SoundFile, cfg.Notifications.Volume)
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			chime = c
		}
	}
	i18n.SetLang(cfg.Language)

	a.cfgLock.Lock()
	a.cfg = cfg.Clone()
	a.notifier = n
	a.chime = chime
	a.cfgLock.Unlock()
}

func (a *AppManager) config() *config.Config {
	a.cfgLock.RLock()
	defer a.cfgLock.RUnlock()
	return a.cfg
}

// Windows returns the registry of tool windows.
func (a *AppManager) Windows() *window.Registry {
	return a.windows
}

// NewSurface builds a window hosting a fresh engine and view for kind. It
// implements window.Factory.
func (a *AppManager) NewSurface(kind window.Kind, onClosed func()) window.Surface {
	cfg := a.config()

	var (
		title    string
		content  fyne.CanvasObject
		teardown func()
	)
	switch kind {
	case window.KindStopwatch:
		sw := stopwatch.New(a.clock, cfg.Stopwatch.TickInterval)
		content = ui.NewStopwatchView(a, sw).Object()
		title = i18n.T("Stopwatch")
		a.engLock.Lock()
		a.stopwatch = sw
		a.engLock.Unlock()
		teardown = func() {
			sw.Close()
			a.engLock.Lock()
			if a.stopwatch == sw {
				a.stopwatch = nil
			}
			a.engLock.Unlock()
		}
	case window.KindTimer:
		t := timer.New(a.clock, timerConfig(cfg))
		t.SetOnComplete(a.timerFinished)
		content = ui.NewTimerView(a, t).Object()
		title = i18n.T("Timer")
		a.engLock.Lock()
		a.countdown = t
		a.engLock.Unlock()
		teardown = func() {
			t.Close()
			a.engLock.Lock()
			if a.countdown == t {
				a.countdown = nil
			}
			a.engLock.Unlock()
		}
		a.permissionOnce.Do(func() {
			notify.RequestPermission(a.cmdCtx, a.currentNotifier())
		})
	case window.KindAlarm:
		content = ui.NewAlarmView(a, alarm.NewList(alarmSeeds(cfg))).Object()
		title = i18n.T("Alarms")
	case window.KindFullScreen:
		content = ui.NewAlertView(a, i18n.T(cfg.Notifications.Body))
		title = i18n.T("Alert")
	default:
		log.Printf("No view for %s window", kind)
		return nil
	}

	s := ui.NewSurface(a.fyneApp, kind, title, content, teardown, onClosed)
	s.Window().Canvas().SetOnTypedRune(func(r rune) { a.HandleKeyRune(kind, r) })
	return s
}

func timerConfig(cfg *config.Config) timer.Config {
	return timer.Config{
		DefaultMinutes: cfg.Timer.DefaultMinutes,
		MinMinutes:     cfg.Timer.MinMinutes,
		MaxMinutes:     cfg.Timer.MaxMinutes,
	}
}

func alarmSeeds(cfg *config.Config) []alarm.Seed {
	if len(cfg.Alarms) == 0 {
		return alarm.DefaultSeeds
	}
	seeds := make([]alarm.Seed, 0, len(cfg.Alarms))
	for _, al := range cfg.Alarms {
		seeds = append(seeds, alarm.Seed{Name: al.Name, Active: al.Active})
	}
	return seeds
}

func (a *AppManager) currentNotifier() notify.Notifier {
	a.cfgLock.RLock()
	defer a.cfgLock.RUnlock()
	return a.notifier
}

// timerFinished is the countdown completion signal: notification, chime
// and, when configured, the full-screen alert. None of it can fail the
// timer.
func (a *AppManager) timerFinished() {
	a.cfgLock.RLock()
	cfg, n, chime := a.cfg, a.notifier, a.chime
	a.cfgLock.RUnlock()

	log.Println("Timer finished")
	go notify.Deliver(n, cfg.Notifications.Title, i18n.T(cfg.Notifications.Body))
	if chime != nil {
		chime.Play()
	}
	if cfg.Notifications.FullScreenAlert {
		fyne.Do(func() {
			a.windows.Open(window.KindFullScreen)
		})
	}
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	// Try to enqueue the command but avoid blocking UI indefinitely. If the
	// channel stays full for the configured short timeout, drop and log.
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s for %s", cmd.Type, cmd.Tool)
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			a.apply(cmd)
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

func (a *AppManager) apply(cmd control.Command) {
	a.engLock.Lock()
	sw, t := a.stopwatch, a.countdown
	a.engLock.Unlock()

	switch cmd.Tool {
	case window.KindStopwatch:
		if sw == nil {
			return
		}
		switch cmd.Type {
		case control.CmdStart:
			sw.Start()
		case control.CmdPause:
			sw.Pause()
		case control.CmdToggle:
			sw.Toggle()
		case control.CmdReset:
			sw.Reset()
		case control.CmdLap:
			sw.Lap()
		}
	case window.KindTimer:
		if t == nil {
			return
		}
		switch cmd.Type {
		case control.CmdStart:
			t.Start()
		case control.CmdPause:
			t.Pause()
		case control.CmdToggle:
			t.Toggle()
		case control.CmdReset:
			t.Reset()
		case control.CmdIncrease:
			t.Increase()
		case control.CmdDecrease:
			t.Decrease()
		}
	}
}

// OpenWindow opens or focuses the window of kind.
func (a *AppManager) OpenWindow(kind window.Kind) {
	a.windows.Open(kind)
}

// CloseWindow closes the window of kind.
func (a *AppManager) CloseWindow(kind window.Kind) {
	a.windows.Close(kind)
}

// TogglePinned flips the stacking level of the window of kind.
func (a *AppManager) TogglePinned(kind window.Kind) bool {
	return a.windows.TogglePinned(kind)
}

// Pinned reports whether the window of kind floats above others.
func (a *AppManager) Pinned(kind window.Kind) bool {
	m := a.windows.Get(kind)
	return m != nil && m.Level() == window.LevelFloating
}

// HandleKeyRune handles key presses in a tool window.
func (a *AppManager) HandleKeyRune(kind window.Kind, r rune) {
	if r == 'p' || r == 'P' {
		a.TogglePinned(kind)
		return
	}
	if cmd, ok := control.ForKey(kind, r); ok {
		a.EnqueueCommand(cmd)
	}
}

// AppName is the name shown in the launcher and notifications.
func (a *AppManager) AppName() string {
	return a.config().App.Name
}

// Version is the version shown in the launcher.
func (a *AppManager) Version() string {
	return a.config().App.Version
}

// Quit closes every window and exits the fyne application.
func (a *AppManager) Quit() {
	a.Shutdown()
	a.fyneApp.Quit()
}

// Shutdown closes all tool windows, which cancels their ticks, and stops
// the command loop.
func (a *AppManager) Shutdown() {
	a.windows.CloseAll()
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
