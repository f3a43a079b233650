// Package alarm holds the alarm list shown in the Alarms window: named
// entries the user can switch on and off. Alarms are not scheduled.
package alarm

import (
	"sync"

	"github.com/google/uuid"
)

// Alarm is a single named toggle.
type Alarm struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

// Seed describes an alarm to create a list with.
type Seed struct {
	Name   string
	Active bool
}

// DefaultSeeds are the entries a fresh list starts with.
var DefaultSeeds = []Seed{
	{Name: "Wake Up"},
	{Name: "Meeting"},
	{Name: "Exercise"},
}

// List is an ordered set of alarms.
type List struct {
	mu       sync.RWMutex
	alarms   []Alarm
	onChange func()
}

// NewList creates a list with one alarm per seed, in order.
func NewList(seeds []Seed) *List {
	l := &List{alarms: make([]Alarm, 0, len(seeds))}
	for _, s := range seeds {
		l.alarms = append(l.alarms, Alarm{ID: uuid.New(), Name: s.Name, Active: s.Active})
	}
	return l
}

// SetOnChange registers fn to be called after an alarm is switched.
func (l *List) SetOnChange(fn func()) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

// Alarms returns a copy of the alarms in display order.
func (l *List) Alarms() []Alarm {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Alarm(nil), l.alarms...)
}

// Toggle flips the alarm with the given id. Unknown ids are ignored.
func (l *List) Toggle(id uuid.UUID) bool {
	return l.update(id, func(a *Alarm) bool {
		a.Active = !a.Active
		return true
	})
}

// SetActive switches the alarm with the given id on or off.
func (l *List) SetActive(id uuid.UUID, active bool) bool {
	return l.update(id, func(a *Alarm) bool {
		if a.Active == active {
			return false
		}
		a.Active = active
		return true
	})
}

// ActiveCount returns how many alarms are switched on.
func (l *List) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, a := range l.alarms {
		if a.Active {
			n++
		}
	}
	return n
}

func (l *List) update(id uuid.UUID, fn func(*Alarm) bool) bool {
	l.mu.Lock()
	changed := false
	for i := range l.alarms {
		if l.alarms[i].ID == id {
			changed = fn(&l.alarms[i])
			break
		}
	}
	cb := l.onChange
	l.mu.Unlock()

	if changed && cb != nil {
		cb()
	}
	return changed
}
