package simulation

import "errors"

// ErrStreamOpen indicates one of the four CLI file streams (topology,
// messages, changes, output) could not be opened. Both cmd/lsr and
// cmd/dvr wrap the underlying *os.PathError with this sentinel so
// callers can distinguish it from a malformed-line parse failure.
var ErrStreamOpen = errors.New("simulation: stream open failed")
