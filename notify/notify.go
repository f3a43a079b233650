// Package notify delivers the end-of-countdown alert: a desktop
// notification through one of several backends, and a short chime.
// Both are best effort; failures are logged and never reach the timer.
package notify

import (
	"context"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"
	"github.com/pkg/errors"
)

// Notifier is the boundary to the operating system's notification center.
type Notifier interface {
	// RequestPermission asks to show notifications.
	RequestPermission(ctx context.Context) (bool, error)
	// Deliver shows a notification without waiting for confirmation.
	Deliver(title, body string) error
}

// New returns the notifier for a config backend name. Unknown names fall
// back to fyne.
func New(backend string, app fyne.App) Notifier {
	switch strings.ToLower(backend) {
	case "none":
		return None{}
	case "system":
		return System{}
	}
	if app == nil {
		return None{}
	}
	return NewFyne(app)
}

// Fyne sends notifications through the fyne application.
type Fyne struct {
	app fyne.App
}

// NewFyne creates a notifier bound to app.
func NewFyne(app fyne.App) *Fyne {
	return &Fyne{app: app}
}

// RequestPermission always succeeds: fyne asks the OS on first delivery.
func (f *Fyne) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (f *Fyne) Deliver(title, body string) error {
	f.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}

// System sends notifications with beeep (notification center, D-Bus or
// toast depending on the platform).
type System struct{}

func (System) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (System) Deliver(title, body string) error {
	return errors.Wrap(beeep.Notify(title, body, ""), "system notification")
}

// None drops every notification.
type None struct{}

func (None) RequestPermission(context.Context) (bool, error) {
	return false, nil
}

func (None) Deliver(string, string) error {
	return nil
}

// RequestPermission asks n for permission in the background and logs the
// outcome. Denial is not retried and not shown to the user.
func RequestPermission(ctx context.Context, n Notifier) {
	go func() {
		granted, err := n.RequestPermission(ctx)
		switch {
		case err != nil:
			log.Printf("Error requesting notification permission: %v", err)
		case granted:
			log.Println("Notification permission granted")
		default:
			log.Println("Notification permission denied")
		}
	}()
}

// Deliver sends a notification and logs any failure.
func Deliver(n Notifier, title, body string) {
	if err := n.Deliver(title, body); err != nil {
		log.Printf("Error sending notification: %v", err)
	}
}
