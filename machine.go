// Package fsm implements a flat finite state machine driven by named
// transitions, with optional callbacks on state exit, transition and state
// entry.
package fsm

import (
	"fmt"
	"log/slog"
)

// node groups a registered state with two lookup views over its outgoing
// edges: by transition name and by destination state name. Both maps are
// populated together at registration.
type node struct {
	state        *State
	transitions  map[string]*Transition
	destinations map[string]*Transition
}

// Machine is the FSM engine. Its only mutable field is the current state
// name; everything else is fixed at construction. The machine performs no
// internal locking - callers invoking it from multiple goroutines must
// serialize access themselves.
type Machine struct {
	nodes   map[string]*node
	current string
	logger  *slog.Logger
}

// Option is a functional option for configuring a Machine
type Option func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New builds a machine from the given states and transitions and places it
// in the initial state. Construction is all-or-nothing: states are
// registered first, then transitions, then the initial state, and the first
// validation failure aborts with no machine returned.
func New(initial string, states []*State, transitions []*Transition, opts ...Option) (*Machine, error) {
	m := &Machine{
		nodes:  make(map[string]*node, len(states)),
		logger: Logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, s := range states {
		if err := m.addState(s); err != nil {
			return nil, err
		}
	}
	for _, t := range transitions {
		if err := m.addTransition(t); err != nil {
			return nil, err
		}
	}
	if err := m.setInitialState(initial); err != nil {
		return nil, err
	}

	return m, nil
}

// CurrentState returns the name of the machine's current state
func (m *Machine) CurrentState() string {
	return m.current
}

// ExecuteTransition executes the transition with the given name from the
// current state. It fails with ErrUnknownTransition if the current state has
// no outgoing transition of that name, even when the name exists on another
// state. On success the machine's current state becomes the transition's
// destination.
func (m *Machine) ExecuteTransition(name string, payload Payload) error {
	n := m.nodes[m.current]
	t, ok := n.transitions[name]
	if !ok {
		return fmt.Errorf("%w: no transition %q from state %q", ErrUnknownTransition, name, m.current)
	}
	return m.execute(n.state, m.nodes[t.Destination()].state, t, payload)
}

// ExecuteTransitionTo executes the transition from the current state to the
// named destination state. It fails with ErrUnknownState if the destination
// was never registered, and with ErrUnknownTransition if no direct edge
// exists from the current state, even when a multi-hop path does.
func (m *Machine) ExecuteTransitionTo(destination string, payload Payload) error {
	if _, ok := m.nodes[destination]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, destination)
	}
	n := m.nodes[m.current]
	t, ok := n.destinations[destination]
	if !ok {
		return fmt.Errorf("%w: no transition from %q to %q", ErrUnknownTransition, m.current, destination)
	}
	return m.execute(n.state, m.nodes[destination].state, t, payload)
}

// execute runs the shared protocol: source exit, transition callback,
// destination entry, then the state change. The first callback error aborts
// the sequence; side effects already produced are not rolled back, and the
// current state only changes after all three callbacks succeed.
func (m *Machine) execute(source, destination *State, t *Transition, payload Payload) error {
	m.logger.Debug("executing transition",
		"transition", t.Name(), "from", source.Name(), "to", destination.Name())

	if err := source.Exit(payload); err != nil {
		return err
	}
	if err := t.Run(payload); err != nil {
		return err
	}
	if err := destination.Enter(payload); err != nil {
		return err
	}
	m.current = destination.Name()
	return nil
}

func (m *Machine) addState(s *State) error {
	if _, ok := m.nodes[s.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateState, s.Name())
	}
	m.nodes[s.Name()] = &node{
		state:        s,
		transitions:  make(map[string]*Transition),
		destinations: make(map[string]*Transition),
	}
	return nil
}

// addTransition validates a transition against the already registered
// states and indexes it under its source. All states must be registered
// before any transition is added.
func (m *Machine) addTransition(t *Transition) error {
	src, ok := m.nodes[t.Source()]
	if !ok {
		return fmt.Errorf("%w: source %q in transition %q", ErrUnknownState, t.Source(), t.Name())
	}
	if _, ok := m.nodes[t.Destination()]; !ok {
		return fmt.Errorf("%w: destination %q in transition %q", ErrUnknownState, t.Destination(), t.Name())
	}
	if _, ok := src.destinations[t.Destination()]; ok {
		return fmt.Errorf("%w: %q to %q", ErrDuplicateEdge, t.Source(), t.Destination())
	}
	if _, ok := src.transitions[t.Name()]; ok {
		return fmt.Errorf("%w: %q from %q", ErrDuplicateTransitionName, t.Name(), t.Source())
	}

	src.transitions[t.Name()] = t
	src.destinations[t.Destination()] = t
	return nil
}

func (m *Machine) setInitialState(name string) error {
	if name == "" {
		return fmt.Errorf("%w: no initial state set", ErrInvalidInitialState)
	}
	if _, ok := m.nodes[name]; !ok {
		return fmt.Errorf("%w: %q is not a registered state", ErrInvalidInitialState, name)
	}
	m.current = name
	return nil
}
