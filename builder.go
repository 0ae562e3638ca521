package fsm

import (
	"fmt"

	"github.com/google/uuid"
)

// Builder accumulates states and transitions for a single validated
// construction call. Nothing is checked while staging: name uniqueness,
// endpoint validity and the initial state are all verified at Build.
type Builder struct {
	states      []*State
	transitions []*Transition
	initial     string
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		states:      make([]*State, 0),
		transitions: make([]*Transition, 0),
	}
}

// AddState stages a state with a generated unique name and returns it so
// the caller can reference the name when staging transitions.
func (b *Builder) AddState(opts ...StateOption) *State {
	return b.AddNamedState(randomName("state"), opts...)
}

// AddNamedState stages a state with the given name. Uniqueness is checked
// only at Build, not here.
func (b *Builder) AddNamedState(name string, opts ...StateOption) *State {
	s := NewState(name, opts...)
	b.states = append(b.states, s)
	return s
}

// AddTransition stages a transition with a generated unique name between the
// named source and destination states.
func (b *Builder) AddTransition(source, destination string, opts ...TransitionOption) *Transition {
	return b.AddNamedTransition(randomName("transition"), source, destination, opts...)
}

// AddNamedTransition stages a transition with the given name. The name may
// repeat across transitions with different source states.
func (b *Builder) AddNamedTransition(name, source, destination string, opts ...TransitionOption) *Transition {
	t := NewTransition(name, source, destination, opts...)
	b.transitions = append(b.transitions, t)
	return t
}

// SetInitialState records the initial state name. Build fails with
// ErrInvalidInitialState when this was never called.
func (b *Builder) SetInitialState(name string) {
	b.initial = name
}

// Build constructs and validates the machine from everything staged,
// propagating any construction error verbatim.
func (b *Builder) Build(opts ...Option) (*Machine, error) {
	return New(b.initial, b.states, b.transitions, opts...)
}

// randomName returns the prefix with a short random suffix. Collisions are
// improbable but possible; Build surfaces them as duplicate-name errors.
func randomName(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString()[:8])
}
