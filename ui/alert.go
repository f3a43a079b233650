package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"macTime/i18n"
	"macTime/window"
)

// NewAlertView builds the full-screen alert shown when a countdown ends.
func NewAlertView(a App, body string) fyne.CanvasObject {
	fg := theme.Color(theme.ColorNameForeground)

	headline := canvas.NewText(i18n.T("Alert"), fg)
	headline.TextStyle.Bold = true
	headline.TextSize = FontSizeAlert

	message := canvas.NewText(body, fg)
	message.TextSize = FontSizeAlertBody

	closeButton := widget.NewButton(i18n.T("Close"), func() {
		a.CloseWindow(window.KindFullScreen)
	})

	return container.NewStack(
		canvas.NewRectangle(AlertColor),
		container.NewVBox(
			layout.NewSpacer(),
			container.NewCenter(headline),
			container.NewCenter(message),
			container.NewCenter(closeButton),
			layout.NewSpacer(),
		),
	)
}
