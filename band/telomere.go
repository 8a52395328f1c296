package band

import (
	"fmt"
	"strings"

	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// ResolveTelomere derives the identifier of the telomere terminating the
// same arm as the given declared identifier. It accepts band classes, arm
// groups, band-group roots, chromosome classes, and identifiers that
// already name a telomere or centromere; resolution is idempotent on
// telomere identifiers.
//
// Declared classes resolve structurally through the builder's registry.
// Identifiers the builder never declared (chromosome classes, arm groups)
// fall back to the lexical branches of resolveTelomereLexical. The result
// is an identifier only; the caller is responsible for having built the
// chromosome so the identifier denotes a declared class.
func (b *Builder) ResolveTelomere(id string) (string, error) {
	local := karyotype.Local(id)
	if info, ok := b.registry[local]; ok {
		switch info.Kind {
		case KindPBand:
			return info.Chromosome + "Band" + string(ArmP) + terminalMarker, nil
		case KindQBand:
			return info.Chromosome + "Band" + string(ArmQ) + terminalMarker, nil
		case KindTelomere, KindCentromere:
			return info.Chromosome + "Telomere", nil
		}
	}
	return resolveTelomereLexical(local)
}

// resolveTelomereLexical recovers the telomere identifier by decomposing
// the identifier string. Branch order mirrors the classification priority:
// arm bands first, then bare chromosome tokens, then band-group roots, then
// identifiers already naming a telomere or centromere.
func resolveTelomereLexical(local string) (string, error) {
	group, rest, hasBand := strings.Cut(local, "Band")

	if kind, err := Classify(local); err == nil && hasBand {
		switch kind {
		case KindPBand:
			return group + "Band" + string(ArmP) + terminalMarker, nil
		case KindQBand:
			return group + "Band" + string(ArmQ) + terminalMarker, nil
		}
	}

	// Bare chromosome token: HumanChromosome1 .. HumanChromosome22, X, Y.
	if !hasBand && isChromosomeToken(local) {
		return local + "Telomere", nil
	}

	// Band-group root (HumanChromosome1Band) resolves to the chromosome's
	// telomere; the arm groups were caught by the band branches above.
	if hasBand && rest == "" {
		return group + "Telomere", nil
	}

	// Already a telomere or centromere class.
	if idx := telomereSuffixIndex(local); idx >= 0 {
		if hasBand {
			return group + "Telomere", nil
		}
		return local[:idx] + "Telomere", nil
	}

	return "", fmt.Errorf("%w: cannot derive telomere of %q", ErrUnrecognizedBandSyntax, local)
}

// telomereSuffixIndex locates the terminal or centromere marker in an
// identifier, preferring the longer Telomere spelling so that stripping it
// keeps resolution idempotent.
func telomereSuffixIndex(local string) int {
	if idx := strings.Index(local, "Telomere"); idx >= 0 {
		return idx
	}
	if idx := strings.Index(local, terminalMarker); idx >= 0 {
		return idx
	}
	if idx := strings.Index(local, centromereMarker); idx >= 0 {
		return idx
	}
	return -1
}

// isChromosomeToken reports whether the identifier names a chromosome
// rather than one of its components: it ends in a digit run or an allosome
// letter with no component marker anywhere.
func isChromosomeToken(local string) bool {
	if local == "" {
		return false
	}
	if strings.Contains(local, "Telomere") || strings.Contains(local, terminalMarker) || strings.Contains(local, centromereMarker) {
		return false
	}
	last := local[len(local)-1]
	return (last >= '0' && last <= '9') || last == 'X' || last == 'Y'
}
