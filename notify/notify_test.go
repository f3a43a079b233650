package notify

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsBackend(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	assert.IsType(t, &Fyne{}, New("fyne", app))
	assert.IsType(t, &Fyne{}, New("", app))
	assert.IsType(t, System{}, New("System", app))
	assert.IsType(t, None{}, New("none", app))
	assert.IsType(t, None{}, New("fyne", nil))
}

func TestFyneDeliver(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	n := NewFyne(app)

	granted, err := n.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)

	test.AssertNotificationSent(t, fyne.NewNotification("macTime", "Timer Over!"), func() {
		require.NoError(t, n.Deliver("macTime", "Timer Over!"))
	})
}

func TestNoneIsSilent(t *testing.T) {
	granted, err := None{}.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.False(t, granted)
	assert.NoError(t, None{}.Deliver("a", "b"))
}

type failing struct{ asked chan struct{} }

func (f failing) RequestPermission(context.Context) (bool, error) {
	close(f.asked)
	return false, errors.New("no notification center")
}

func (failing) Deliver(string, string) error {
	return errors.New("no notification center")
}

func TestFailuresAreSwallowed(t *testing.T) {
	f := failing{asked: make(chan struct{})}
	RequestPermission(context.Background(), f)
	select {
	case <-f.asked:
	case <-time.After(time.Second):
		t.Fatal("permission never requested")
	}
	assert.NotPanics(t, func() { Deliver(f, "macTime", "Timer Over!") })
}

func TestSynthesizedChime(t *testing.T) {
	c, err := NewChime("", 0)
	require.NoError(t, err)
	assert.Equal(t, SpeakerRate.N(400*time.Millisecond), c.Len())
}

func TestChimeMissingFile(t *testing.T) {
	_, err := NewChime(filepath.Join(t.TempDir(), "missing.ogg"), 0)
	assert.Error(t, err)
}
