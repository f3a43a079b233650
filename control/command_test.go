package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"macTime/window"
)

func TestForKey(t *testing.T) {
	cases := []struct {
		tool window.Kind
		key  rune
		want CommandType
		ok   bool
	}{
		{window.KindStopwatch, ' ', CmdToggle, true},
		{window.KindTimer, ' ', CmdToggle, true},
		{window.KindStopwatch, 'R', CmdReset, true},
		{window.KindStopwatch, 'l', CmdLap, true},
		{window.KindTimer, 'l', 0, false},
		{window.KindTimer, '+', CmdIncrease, true},
		{window.KindTimer, '-', CmdDecrease, true},
		{window.KindStopwatch, '+', 0, false},
		{window.KindAlarm, ' ', 0, false},
		{window.KindTimer, 'x', 0, false},
	}
	for _, c := range cases {
		cmd, ok := ForKey(c.tool, c.key)
		assert.Equal(t, c.ok, ok, "%s %q", c.tool, c.key)
		if ok {
			assert.Equal(t, c.want, cmd.Type, "%s %q", c.tool, c.key)
			assert.Equal(t, c.tool, cmd.Tool)
		}
	}
}

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "lap", CmdLap.String())
	assert.Equal(t, "CommandType(99)", CommandType(99).String())
}
