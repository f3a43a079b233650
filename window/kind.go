package window

import (
	"fmt"
	"strings"
)

// Kind identifies a tool window. At most one surface per kind is live.
type Kind int

const (
	KindStopwatch Kind = iota
	KindTimer
	KindAlarm
	KindFullScreen
)

// Kinds lists every tool window in menu order.
var Kinds = []Kind{KindStopwatch, KindTimer, KindAlarm, KindFullScreen}

func (k Kind) String() string {
	switch k {
	case KindStopwatch:
		return "stopwatch"
	case KindTimer:
		return "timer"
	case KindAlarm:
		return "alarm"
	case KindFullScreen:
		return "fullscreen"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a command line name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stopwatch":
		return KindStopwatch, true
	case "timer":
		return KindTimer, true
	case "alarm", "alarms":
		return KindAlarm, true
	case "fullscreen":
		return KindFullScreen, true
	}
	return 0, false
}

// Level is a window's stacking level.
type Level int

const (
	LevelNormal Level = iota
	// LevelFloating keeps the window above normally stacked windows.
	LevelFloating
)

func (l Level) String() string {
	if l == LevelFloating {
		return "floating"
	}
	return "normal"
}

// Toggle returns the other level.
func (l Level) Toggle() Level {
	if l == LevelFloating {
		return LevelNormal
	}
	return LevelFloating
}

// Tool window dimensions.
const (
	ToolWidth  = 350
	ToolHeight = 400
)

// Frame describes how a freshly created surface is placed.
type Frame struct {
	Width, Height float32
	// FullScreen surfaces cover the whole display, menu bar and dock
	// included, and ignore Width and Height.
	FullScreen bool
	Level      Level
}

// Frame returns the placement for a new surface of this kind: tool
// windows are centered and start at the normal level, the full-screen
// alert covers the display and floats.
func (k Kind) Frame() Frame {
	if k == KindFullScreen {
		return Frame{FullScreen: true, Level: LevelFloating}
	}
	return Frame{Width: ToolWidth, Height: ToolHeight, Level: LevelNormal}
}
