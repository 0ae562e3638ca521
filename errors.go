package fsm

import "errors"

// Construction and execution failures. All are returned wrapped with
// contextual detail; match them with errors.Is.
var (
	// ErrDuplicateState - a state name was registered twice
	ErrDuplicateState = errors.New("duplicate state name")
	// ErrUnknownState - a source, destination or explicit destination
	// argument names a state that was never registered
	ErrUnknownState = errors.New("unknown state")
	// ErrDuplicateEdge - a second transition between the same ordered
	// source/destination pair
	ErrDuplicateEdge = errors.New("duplicate transition between states")
	// ErrDuplicateTransitionName - a second transition with the same name
	// from the same source state
	ErrDuplicateTransitionName = errors.New("duplicate transition name from source state")
	// ErrInvalidInitialState - the initial state name is empty or unregistered
	ErrInvalidInitialState = errors.New("invalid initial state")
	// ErrUnknownTransition - the requested transition name or destination has
	// no matching outgoing edge from the current state
	ErrUnknownTransition = errors.New("unknown transition")
)
