package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"macTime/window"
)

// newHeader builds the close button, centered title and pin toggle that
// top every tool window.
func newHeader(a App, kind window.Kind, title string) fyne.CanvasObject {
	closeButton := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		a.CloseWindow(kind)
	})
	closeButton.Importance = widget.LowImportance

	var pinButton *widget.Button
	pinButton = widget.NewButtonWithIcon("", pinIcon(a.Pinned(kind)), func() {
		if a.TogglePinned(kind) {
			pinButton.SetIcon(pinIcon(a.Pinned(kind)))
		}
	})
	pinButton.Importance = widget.LowImportance

	titleText := canvas.NewText(title, theme.Color(theme.ColorNameDisabled))
	titleText.TextStyle.Bold = true
	titleText.TextSize = FontSizeTitle

	return container.NewBorder(nil, nil, closeButton, pinButton, container.NewCenter(titleText))
}

func pinIcon(pinned bool) fyne.Resource {
	if pinned {
		return theme.RadioButtonCheckedIcon()
	}
	return theme.RadioButtonIcon()
}

// panel wraps content in the rounded translucent backdrop.
func panel(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(PanelColor)
	bg.CornerRadius = CornerRadius
	return container.NewStack(bg, container.NewPadded(content))
}
