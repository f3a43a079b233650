package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"macTime/control"
	"macTime/i18n"
	"macTime/timer"
	"macTime/window"
)

// TimerView renders a countdown with its minute adjusters and gauge.
type TimerView struct {
	timer *timer.Timer

	timeText     *canvas.Text
	gauge        *widget.ProgressBar
	minusButton  *widget.Button
	plusButton   *widget.Button
	resetButton  *widget.Button
	toggleButton *widget.Button
	content      fyne.CanvasObject
}

// NewTimerView builds the view and subscribes it to t.
func NewTimerView(a App, t *timer.Timer) *TimerView {
	v := &TimerView{timer: t}
	kind := window.KindTimer

	v.timeText = canvas.NewText(timer.FormatTime(t.Remaining()), theme.Color(theme.ColorNameForeground))
	v.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	v.timeText.TextSize = FontSizeTime

	v.gauge = widget.NewProgressBar()
	v.gauge.Min, v.gauge.Max = 0, 1
	v.gauge.TextFormatter = func() string { return "" }

	v.minusButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		send(a, kind, control.CmdDecrease)
	})
	v.plusButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		send(a, kind, control.CmdIncrease)
	})
	v.resetButton = widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaStopIcon(), func() {
		send(a, kind, control.CmdReset)
	})
	v.toggleButton = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), func() {
		send(a, kind, control.CmdToggle)
	})

	display := container.NewHBox(
		layout.NewSpacer(),
		container.NewCenter(v.minusButton),
		v.timeText,
		container.NewCenter(v.plusButton),
		layout.NewSpacer(),
	)
	controls := container.NewHBox(layout.NewSpacer(), v.resetButton, v.toggleButton, layout.NewSpacer())

	v.content = panel(container.NewVBox(
		newHeader(a, kind, i18n.T("Timer")),
		display,
		v.gauge,
		controls,
	))

	t.SetOnChange(v.UpdateDisplay)
	v.UpdateDisplay()
	return v
}

// Object returns the view's root canvas object.
func (v *TimerView) Object() fyne.CanvasObject {
	return v.content
}

// UpdateDisplay re-renders from a fresh snapshot. Safe from any goroutine.
func (v *TimerView) UpdateDisplay() {
	s := v.timer.GetSnapshot()
	fyne.Do(func() {
		v.timeText.Text = s.Display()
		v.timeText.Refresh()
		v.gauge.SetValue(s.Progress())

		setEnabled(v.minusButton, s.CanDecrease())
		setEnabled(v.plusButton, s.CanIncrease())
		setEnabled(v.resetButton, s.CanReset())

		if s.Running() {
			v.toggleButton.SetText(i18n.T("Pause"))
			v.toggleButton.SetIcon(theme.MediaPauseIcon())
			v.toggleButton.Importance = widget.DangerImportance
		} else {
			v.toggleButton.SetText(i18n.T("Start"))
			v.toggleButton.SetIcon(theme.MediaPlayIcon())
			v.toggleButton.Importance = widget.SuccessImportance
		}
		v.toggleButton.Refresh()
	})
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
