// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command-loop
// centralizes engine state changes so button taps and key presses apply
// one at a time, in order.
package control

import (
	"fmt"

	"macTime/window"
)

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdToggle
	CmdReset
	CmdLap
	CmdIncrease
	CmdDecrease
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	case CmdLap:
		return "lap"
	case CmdIncrease:
		return "increase"
	case CmdDecrease:
		return "decrease"
	}
	return fmt.Sprintf("CommandType(%d)", int(c))
}

// Command is the message sent from UI to AppManager.commandLoop. Tool
// selects the engine of the live window of that kind; commands for a tool
// with no open window are dropped. The optional Reply channel is used by
// the commandLoop to confirm completion back to the sender (useful for
// keeping UI state in sync).
type Command struct {
	Type  CommandType
	Tool  window.Kind
	Reply chan error // optional reply channel
}

// ForKey maps a key typed in a tool window to the command it triggers.
func ForKey(tool window.Kind, r rune) (Command, bool) {
	var t CommandType
	switch r {
	case ' ':
		t = CmdToggle
	case 'r', 'R':
		t = CmdReset
	case 'l', 'L':
		if tool != window.KindStopwatch {
			return Command{}, false
		}
		t = CmdLap
	case '+', '=':
		if tool != window.KindTimer {
			return Command{}, false
		}
		t = CmdIncrease
	case '-', '_':
		if tool != window.KindTimer {
			return Command{}, false
		}
		t = CmdDecrease
	default:
		return Command{}, false
	}
	if tool != window.KindStopwatch && tool != window.KindTimer {
		return Command{}, false
	}
	return Command{Type: t, Tool: tool}, true
}
