package fsm

// State is a named node in the machine with optional exit and entry
// callbacks. States are immutable once created and are owned by the
// machine's lookup structure after registration.
type State struct {
	name    string
	onExit  Callback
	onEntry Callback
}

// StateOption is a functional option for configuring a State
type StateOption func(*State)

// WithOnExit sets the callback invoked when leaving the state
func WithOnExit(fn Callback) StateOption {
	return func(s *State) {
		s.onExit = fn
	}
}

// WithOnEntry sets the callback invoked when entering the state
func WithOnEntry(fn Callback) StateOption {
	return func(s *State) {
		s.onEntry = fn
	}
}

// NewState creates a state with the given name. The name must be unique
// across the machine; uniqueness is checked at construction, not here.
func NewState(name string, opts ...StateOption) *State {
	s := &State{name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the state's name
func (s *State) Name() string {
	return s.name
}

// Exit runs the exit callback with the payload. No-op if none is set.
func (s *State) Exit(payload Payload) error {
	if s.onExit == nil {
		return nil
	}
	return s.onExit(payload)
}

// Enter runs the entry callback with the payload. No-op if none is set.
func (s *State) Enter(payload Payload) error {
	if s.onEntry == nil {
		return nil
	}
	return s.onEntry(payload)
}
