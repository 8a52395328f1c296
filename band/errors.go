package band

import "errors"

var (
	// ErrUnrecognizedBandSyntax reports a token matching none of the known
	// lexical band patterns (terminal, centromere, p-arm, q-arm).
	ErrUnrecognizedBandSyntax = errors.New("unrecognized band syntax")

	// ErrBandSyntax reports a band specification element that failed
	// classification during chromosome assembly.
	ErrBandSyntax = errors.New("band syntax error")
)
