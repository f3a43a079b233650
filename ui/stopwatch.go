package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"macTime/control"
	"macTime/i18n"
	"macTime/stopwatch"
	"macTime/window"
)

// StopwatchView renders a stopwatch and sends its button presses to the
// command loop.
type StopwatchView struct {
	sw *stopwatch.Stopwatch

	timeText     *canvas.Text
	resetButton  *widget.Button
	toggleButton *widget.Button
	lapButton    *widget.Button
	lapList      *widget.List
	laps         []stopwatch.Lap
	content      fyne.CanvasObject
}

// NewStopwatchView builds the view and subscribes it to sw.
func NewStopwatchView(a App, sw *stopwatch.Stopwatch) *StopwatchView {
	v := &StopwatchView{sw: sw}
	kind := window.KindStopwatch

	v.timeText = canvas.NewText("00:00.0", theme.Color(theme.ColorNameForeground))
	v.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	v.timeText.TextSize = FontSizeTime

	v.resetButton = widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaStopIcon(), func() {
		send(a, kind, control.CmdReset)
	})
	v.toggleButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), func() {
		send(a, kind, control.CmdToggle)
	})
	v.lapButton = widget.NewButtonWithIcon(i18n.T("Lap"), theme.MediaRecordIcon(), func() {
		send(a, kind, control.CmdLap)
	})

	v.lapList = widget.NewList(
		func() int { return len(v.laps) },
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			at := widget.NewLabel("")
			at.TextStyle.Monospace = true
			return container.NewBorder(nil, nil, name, at)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id < 0 || id >= len(v.laps) {
				return
			}
			row := o.(*fyne.Container)
			lap := v.laps[id]
			row.Objects[0].(*widget.Label).SetText(fmt.Sprintf("%s %d", i18n.T("Lap"), lap.Number))
			row.Objects[1].(*widget.Label).SetText(lap.Formatted())
		},
	)
	lapArea := container.NewGridWrap(fyne.NewSize(window.ToolWidth-40, LapListHeight), v.lapList)

	controls := container.NewHBox(
		layout.NewSpacer(),
		v.resetButton,
		v.toggleButton,
		v.lapButton,
		layout.NewSpacer(),
	)

	v.content = panel(container.NewVBox(
		newHeader(a, kind, i18n.T("Stopwatch")),
		container.NewCenter(v.timeText),
		controls,
		container.NewCenter(lapArea),
	))

	sw.SetOnChange(v.UpdateDisplay)
	v.UpdateDisplay()
	return v
}

// Object returns the view's root canvas object.
func (v *StopwatchView) Object() fyne.CanvasObject {
	return v.content
}

// UpdateDisplay re-renders from a fresh snapshot. Safe from any goroutine.
func (v *StopwatchView) UpdateDisplay() {
	s := v.sw.Snapshot()
	fyne.Do(func() {
		v.timeText.Text = s.Display()
		v.timeText.Refresh()

		if s.Running() {
			v.toggleButton.SetText(i18n.T("Pause"))
			v.toggleButton.SetIcon(theme.MediaPauseIcon())
			v.toggleButton.Importance = widget.DangerImportance
			v.lapButton.Enable()
		} else {
			v.toggleButton.SetText(i18n.T("Start"))
			v.toggleButton.SetIcon(theme.MediaPlayIcon())
			v.toggleButton.Importance = widget.SuccessImportance
			v.lapButton.Disable()
		}
		v.toggleButton.Refresh()

		setEnabled(v.resetButton, s.CanReset())

		if len(s.Laps) != len(v.laps) {
			v.laps = s.Laps
			v.lapList.Refresh()
			if len(v.laps) > 0 {
				v.lapList.ScrollToBottom()
			}
		}
	})
}
