package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"macTime/window"
)

// Surface hosts one tool view in a fyne window. It implements
// window.Surface.
type Surface struct {
	win   fyne.Window
	kind  window.Kind
	level window.Level
}

// NewSurface creates the window for kind, framed per kind.Frame(). On
// desktop drivers the window is borderless. teardown runs before onClosed
// whenever the window goes away.
func NewSurface(app fyne.App, kind window.Kind, title string, content fyne.CanvasObject, teardown, onClosed func()) *Surface {
	var w fyne.Window
	if drv, ok := app.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
		w.SetTitle(title)
	} else {
		w = app.NewWindow(title)
	}
	w.SetPadded(false)
	w.SetContent(content)

	frame := kind.Frame()
	if frame.FullScreen {
		w.SetFullScreen(true)
	} else {
		w.Resize(fyne.NewSize(frame.Width, frame.Height))
		w.SetFixedSize(true)
		w.CenterOnScreen()
	}

	w.SetOnClosed(func() {
		if teardown != nil {
			teardown()
		}
		if onClosed != nil {
			onClosed()
		}
	})
	return &Surface{win: w, kind: kind, level: frame.Level}
}

// Window returns the underlying fyne window.
func (s *Surface) Window() fyne.Window {
	return s.win
}

// Show makes the window visible and focused.
func (s *Surface) Show() {
	s.win.Show()
	s.win.RequestFocus()
}

func (s *Surface) Close() {
	s.win.Close()
}

// SetLevel records the stacking level. fyne has no always-on-top
// control, so a floating window is raised whenever it is pinned.
func (s *Surface) SetLevel(l window.Level) {
	if s.level != l {
		log.Printf("%s window level set to %s", s.kind, l)
	}
	s.level = l
	if l == window.LevelFloating {
		s.win.RequestFocus()
	}
}

// Level returns the last level set.
func (s *Surface) Level() window.Level {
	return s.level
}
