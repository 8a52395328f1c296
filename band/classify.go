package band

import (
	"fmt"
	"strings"
)

// Kind classifies a band token by the chromosome region it names.
type Kind int

const (
	// KindTelomere is a terminal cap token (pTer, qTer).
	KindTelomere Kind = iota

	// KindCentromere is a centromere token (Cen).
	KindCentromere

	// KindPBand is a short-arm band token (p36.3).
	KindPBand

	// KindQBand is a long-arm band token (q21).
	KindQBand
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTelomere:
		return "telomere"
	case KindCentromere:
		return "centromere"
	case KindPBand:
		return "p-band"
	case KindQBand:
		return "q-band"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arm identifies a chromosome arm.
type Arm string

const (
	// ArmP is the short arm.
	ArmP Arm = "p"

	// ArmQ is the long arm.
	ArmQ Arm = "q"
)

// Lexical markers of ISCN band tokens.
const (
	terminalMarker   = "Ter"
	centromereMarker = "Cen"
)

// Classify determines the kind of an ISCN band token. The terminal and
// centromere markers are checked before the arm letters: a token such as
// pTer must classify as a telomere even though it also carries the p-arm
// letter. Tokens matching no marker fail with ErrUnrecognizedBandSyntax.
func Classify(token string) (Kind, error) {
	switch {
	case strings.Contains(token, terminalMarker):
		return KindTelomere, nil
	case strings.Contains(token, centromereMarker):
		return KindCentromere, nil
	case strings.Contains(token, string(ArmP)):
		return KindPBand, nil
	case strings.Contains(token, string(ArmQ)):
		return KindQBand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedBandSyntax, token)
}

// armOf returns the arm letter carried by a token already known to be a
// telomere or band token. Telomere classification wins the generic check,
// so terminal tokens need this second pass to route to the right arm group.
func armOf(token string) (Arm, error) {
	switch {
	case strings.Contains(token, string(ArmP)):
		return ArmP, nil
	case strings.Contains(token, string(ArmQ)):
		return ArmQ, nil
	}
	return "", fmt.Errorf("%w: %q carries no arm letter", ErrUnrecognizedBandSyntax, token)
}
