package event

import (
	"fmt"

	"github.com/cytogenlab/karyonto/ontology"
	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// TargetKind distinguishes whole-chromosome from band-level event targets.
type TargetKind int

const (
	// TargetChromosome is a whole chromosome (gain or loss of the entire
	// chromosome, no breakpoint).
	TargetChromosome TargetKind = iota + 1

	// TargetBand is a single band (one breakpoint at the band).
	TargetBand
)

// Target is an event argument classified at construction time: the class
// hierarchy is queried once here, so the event builders branch on the tag
// and never consult the ontology again.
type Target struct {
	Kind  TargetKind
	Class *ontology.Class
}

// Target classifies a declared identifier as a chromosome or band target.
// Identifiers naming neither a Chromosome nor a ChromosomeBand subclass
// fail with ErrInvalidEventArgument.
func (p *Patterns) Target(id string) (Target, error) {
	local := karyotype.Local(id)
	cls, ok := p.o.Class(local)
	if !ok {
		return Target{}, fmt.Errorf("%w: %q is not declared", ErrInvalidEventArgument, local)
	}
	switch {
	case p.o.IsSubclassOf(local, karyotype.Local(karyotype.ClassChromosome)):
		return Target{Kind: TargetChromosome, Class: cls}, nil
	case p.o.IsSubclassOf(local, karyotype.Local(karyotype.ClassChromosomeBand)):
		return Target{Kind: TargetBand, Class: cls}, nil
	}
	return Target{}, fmt.Errorf("%w: %q is neither a chromosome nor a band", ErrInvalidEventArgument, local)
}

// band resolves an identifier to a declared ChromosomeBand subclass.
func (p *Patterns) band(id string) (*ontology.Class, error) {
	t, err := p.Target(id)
	if err != nil {
		return nil, err
	}
	if t.Kind != TargetBand {
		return nil, fmt.Errorf("%w: %q is not a band", ErrInvalidEventArgument, karyotype.Local(id))
	}
	return t.Class, nil
}
