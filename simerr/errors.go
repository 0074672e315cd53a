// Package simerr collects the sentinel error kinds shared by the tick engine,
// the evolutionary trainer, and the tournament runner. Errors are plain
// sentinels callers wrap with fmt.Errorf and test with errors.Is.
package simerr

import "errors"

var (
	// ErrShapeMismatch is returned when a sensor vector's length does not
	// match a genome's declared input count. The NEAT controller does not
	// end the match on it: Think returns Idle for that tick and the match
	// continues, with no fitness override for the pairing.
	ErrShapeMismatch = errors.New("simerr: sensor vector length does not match genome input count")

	// ErrInvalidConfig is returned for out-of-range weights, zero map
	// dimensions, or an empty population. Detected at construction time and
	// fatal before the first generation runs.
	ErrInvalidConfig = errors.New("simerr: invalid configuration")

	// ErrSinkFailure wraps a replay or snapshot write failure. It is
	// surfaced to the caller but does not abort an in-progress generation.
	ErrSinkFailure = errors.New("simerr: sink write failed")

	// ErrNoParticipants is returned when a tournament is asked to run with
	// fewer than two participants.
	ErrNoParticipants = errors.New("simerr: fewer than two tournament participants")
)
