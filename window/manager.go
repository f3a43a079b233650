// Package window manages the lifecycle of the tool windows. A Manager owns
// at most one presentation surface for its tool: it creates it lazily,
// brings it forward on later requests, flips its stacking level and drops
// it on close. The Registry owns one Manager per tool kind and is passed
// to whatever issues open, close and pin commands.
package window

import (
	"log"
	"sync"
)

// Surface is the presentation boundary: a window hosting one tool view.
type Surface interface {
	// Show brings the surface to the foreground.
	Show()
	// Close tears the surface down. Implementations call the onClosed
	// callback given to the Factory when they go away, whoever closed them.
	Close()
	SetLevel(Level)
}

// Factory builds a surface hosting a fresh view and engine for kind, placed
// according to kind.Frame(). onClosed must be called once the surface is
// gone, including when the user closes it through the window chrome.
type Factory interface {
	NewSurface(kind Kind, onClosed func()) Surface
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(kind Kind, onClosed func()) Surface

// NewSurface calls f.
func (f FactoryFunc) NewSurface(kind Kind, onClosed func()) Surface {
	return f(kind, onClosed)
}

// Manager owns the single surface of one tool kind.
type Manager struct {
	kind    Kind
	factory Factory

	mu      sync.Mutex
	surface Surface
	level   Level
	gen     uint64
}

// NewManager creates a manager with no surface.
func NewManager(kind Kind, factory Factory) *Manager {
	return &Manager{kind: kind, factory: factory, level: kind.Frame().Level}
}

// Kind returns the tool kind this manager serves.
func (m *Manager) Kind() Kind {
	return m.kind
}

// Open creates the surface if there is none, otherwise only brings the
// existing one forward without touching its state. The factory runs
// without the manager lock held, so views may query the manager while
// they are built.
func (m *Manager) Open() {
	m.mu.Lock()
	if s := m.surface; s != nil {
		m.mu.Unlock()
		s.Show()
		return
	}
	m.gen++
	gen := m.gen
	m.level = m.kind.Frame().Level
	level := m.level
	m.mu.Unlock()

	created := m.factory.NewSurface(m.kind, func() { m.released(gen) })
	if created == nil {
		log.Printf("Failed to create %s window", m.kind)
		return
	}

	m.mu.Lock()
	if m.gen != gen {
		// Another Open or a Close ran while this surface was being built.
		existing := m.surface
		m.mu.Unlock()
		created.Close()
		if existing != nil {
			existing.Show()
		}
		return
	}
	m.surface = created
	m.mu.Unlock()

	created.SetLevel(level)
	log.Printf("Opened %s window", m.kind)
	created.Show()
}

// Close tears down the surface, if any. The next Open starts fresh.
func (m *Manager) Close() {
	m.mu.Lock()
	s := m.surface
	m.surface = nil
	m.gen++
	m.level = m.kind.Frame().Level
	m.mu.Unlock()

	if s != nil {
		s.Close()
		log.Printf("Closed %s window", m.kind)
	}
}

// TogglePinned flips the surface between the normal and floating levels.
// It does nothing when no surface is open.
func (m *Manager) TogglePinned() bool {
	m.mu.Lock()
	s := m.surface
	if s == nil {
		m.mu.Unlock()
		return false
	}
	m.level = m.level.Toggle()
	level := m.level
	m.mu.Unlock()

	s.SetLevel(level)
	return true
}

// IsOpen reports whether a surface is live.
func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.surface != nil
}

// Level returns the current stacking level.
func (m *Manager) Level() Level {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// released drops the reference after the surface went away on its own.
// A callback from an older surface is ignored.
func (m *Manager) released(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen || m.surface == nil {
		return
	}
	m.surface = nil
	m.level = m.kind.Frame().Level
	log.Printf("%s window closed by user", m.kind)
}
