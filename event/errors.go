package event

import "errors"

var (
	// ErrInvalidEventArgument reports an entity of the wrong kind for a
	// breakpoint role, e.g. a band where a chromosome was required.
	ErrInvalidEventArgument = errors.New("invalid event argument")

	// ErrArity reports a wrong number of breakpoint arguments, e.g. a
	// translocation with fewer than two exchange groups.
	ErrArity = errors.New("wrong event arity")
)
