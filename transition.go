package fsm

// Transition is a named directed edge between two states with an optional
// callback. Its name is unique only within its source state's outgoing set;
// transitions from different sources may share a name. At most one
// transition may exist per ordered (source, destination) pair.
type Transition struct {
	name         string
	source       string
	destination  string
	onTransition Callback
}

// TransitionOption is a functional option for configuring a Transition
type TransitionOption func(*Transition)

// WithOnTransition sets the callback executed during the transition
func WithOnTransition(fn Callback) TransitionOption {
	return func(t *Transition) {
		t.onTransition = fn
	}
}

// NewTransition creates a transition from source to destination. Both must
// name registered states; this is checked at machine construction.
func NewTransition(name, source, destination string, opts ...TransitionOption) *Transition {
	t := &Transition{
		name:        name,
		source:      source,
		destination: destination,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the transition's name
func (t *Transition) Name() string {
	return t.name
}

// Source returns the source state name
func (t *Transition) Source() string {
	return t.source
}

// Destination returns the destination state name
func (t *Transition) Destination() string {
	return t.destination
}

// Run executes the transition callback with the payload. No-op if none is set.
func (t *Transition) Run(payload Payload) error {
	if t.onTransition == nil {
		return nil
	}
	return t.onTransition(payload)
}
