// Package ui builds the fyne windows: the launcher, one view per tool and
// the fyne-backed window.Surface they are hosted in.
package ui

import (
	"time"

	"macTime/control"
	"macTime/window"
)

// App is what the views need from the application.
type App interface {
	EnqueueCommand(cmd control.Command)
	OpenWindow(kind window.Kind)
	CloseWindow(kind window.Kind)
	TogglePinned(kind window.Kind) bool
	Pinned(kind window.Kind) bool
	HandleKeyRune(kind window.Kind, r rune)
	AppName() string
	Version() string
	Quit()
}

// replyTimeout bounds how long a tap waits for the command loop.
const replyTimeout = 200 * time.Millisecond

// send enqueues a command for tool and waits briefly for it to be applied
// so the view refreshes from the new state.
func send(a App, tool window.Kind, t control.CommandType) {
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: t, Tool: tool, Reply: reply})
	select {
	case <-reply:
	case <-time.After(replyTimeout):
	}
}
