package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"macTime/i18n"
	"macTime/window"
)

type launchItem struct {
	kind  window.Kind
	label string
	icon  fyne.Resource
}

func launchItems() []launchItem {
	return []launchItem{
		{window.KindStopwatch, i18n.T("Stopwatch"), theme.HistoryIcon()},
		{window.KindTimer, i18n.T("Timer"), theme.MediaPlayIcon()},
		{window.KindAlarm, i18n.T("Alarms"), theme.ListIcon()},
	}
}

// CreateMainWindow builds the launcher: app name, version and one button
// per tool.
func CreateMainWindow(a App, fyneApp fyne.App, width, height float32) fyne.Window {
	w := fyneApp.NewWindow(a.AppName())

	name := canvas.NewText(a.AppName(), theme.Color(theme.ColorNameForeground))
	name.TextSize = 20
	name.TextStyle.Bold = true
	version := widget.NewLabel(fmt.Sprintf("%s %s", i18n.T("version"), a.Version()))

	buttons := container.NewVBox()
	for _, it := range launchItems() {
		kind := it.kind
		b := widget.NewButtonWithIcon(it.label, it.icon, func() { a.OpenWindow(kind) })
		buttons.Add(b)
	}

	w.SetContent(container.NewPadded(container.NewVBox(
		container.NewHBox(container.NewVBox(name, version), layout.NewSpacer()),
		buttons,
	)))
	if width <= 0 {
		width = LauncherWidth
	}
	w.Resize(fyne.NewSize(width, height))
	w.SetFixedSize(true)
	return w
}

// InstallTrayMenu adds the tools to the system tray when the driver has
// one. It reports whether a tray menu was installed.
func InstallTrayMenu(a App, fyneApp fyne.App) bool {
	desk, ok := fyneApp.(desktop.App)
	if !ok {
		return false
	}
	desk.SetSystemTrayMenu(TrayMenu(a))
	return true
}

// TrayMenu is the tray menu: one entry per tool, then quit.
func TrayMenu(a App) *fyne.Menu {
	var items []*fyne.MenuItem
	for _, it := range launchItems() {
		kind := it.kind
		item := fyne.NewMenuItem(it.label, func() { a.OpenWindow(kind) })
		item.Icon = it.icon
		items = append(items, item)
	}
	items = append(items, fyne.NewMenuItemSeparator())
	quit := fyne.NewMenuItem(i18n.T("Quit"), a.Quit)
	quit.IsQuit = true
	items = append(items, quit)
	return fyne.NewMenu(a.AppName(), items...)
}
