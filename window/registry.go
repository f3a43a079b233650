package window

// Registry owns one Manager per tool kind.
type Registry struct {
	managers map[Kind]*Manager
	order    []Kind
}

// NewRegistry creates a manager for each kind, or for all Kinds when none
// are given.
func NewRegistry(factory Factory, kinds ...Kind) *Registry {
	if len(kinds) == 0 {
		kinds = Kinds
	}
	r := &Registry{managers: make(map[Kind]*Manager, len(kinds))}
	for _, k := range kinds {
		if _, ok := r.managers[k]; ok {
			continue
		}
		r.managers[k] = NewManager(k, factory)
		r.order = append(r.order, k)
	}
	return r
}

// Get returns the manager for kind, or nil if the registry has none.
func (r *Registry) Get(kind Kind) *Manager {
	return r.managers[kind]
}

// Open opens or focuses the window of kind.
func (r *Registry) Open(kind Kind) bool {
	m := r.managers[kind]
	if m == nil {
		return false
	}
	m.Open()
	return true
}

// Close closes the window of kind if it is open.
func (r *Registry) Close(kind Kind) {
	if m := r.managers[kind]; m != nil {
		m.Close()
	}
}

// TogglePinned flips the stacking level of the window of kind.
func (r *Registry) TogglePinned(kind Kind) bool {
	if m := r.managers[kind]; m != nil {
		return m.TogglePinned()
	}
	return false
}

// IsOpen reports whether the window of kind is live.
func (r *Registry) IsOpen(kind Kind) bool {
	if m := r.managers[kind]; m != nil {
		return m.IsOpen()
	}
	return false
}

// CloseAll closes every open window, in registration order.
func (r *Registry) CloseAll() {
	for _, k := range r.order {
		r.managers[k].Close()
	}
}
