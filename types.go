package fsm

import "log/slog"

// Payload carries the caller's keyword arguments through the exit,
// transition and entry callbacks of one execution. A nil Payload is valid.
type Payload map[string]any

// Callback is an optional hook attached to a state or transition. It
// receives the payload of the execution that triggered it. A non-nil error
// aborts the execution protocol at that point.
type Callback func(payload Payload) error

// Logger is the default logger used when none is provided
var Logger = slog.Default()
