package event

import (
	"fmt"

	"github.com/cytogenlab/karyonto/band"
	"github.com/cytogenlab/karyonto/ontology"
	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// Patterns builds rearrangement event patterns against the ontology a band
// builder populated. Creating a Patterns declares the event class hierarchy
// and the event/breakpoint property vocabulary.
type Patterns struct {
	o     *ontology.Ontology
	bands *band.Builder

	hasEvent     *ontology.Property
	hasDirect    *ontology.Property
	hasInverse   *ontology.Property
	hasBreak     *ontology.Property
	hasReceiving *ontology.Property
	hasProviding *ontology.Property

	event           *ontology.Class
	addition        *ontology.Class
	deletion        *ontology.Class
	duplication     *ontology.Class
	directDup       *ontology.Class
	inverseDup      *ontology.Class
	fission         *ontology.Class
	insertion       *ontology.Class
	directIns       *ontology.Class
	inverseIns      *ontology.Class
	inversion       *ontology.Class
	quadruplication *ontology.Class
	translocation   *ontology.Class
	triplication    *ontology.Class
	directTri       *ontology.Class
	inverseTri      *ontology.Class
}

// New creates a Patterns over the band builder's ontology and declares the
// event vocabulary. The band hierarchy must be populated before any
// pattern that infers telomeres is built.
func New(b *band.Builder) *Patterns {
	o := b.Ontology()
	p := &Patterns{o: o, bands: b}

	local := karyotype.Local
	p.event = o.DeclareClass(local(karyotype.ClassEvent))
	p.addition = o.DeclareClassWith(local(karyotype.ClassAddition), p.event)
	p.deletion = o.DeclareClassWith(local(karyotype.ClassDeletion), p.event)
	p.duplication = o.DeclareClassWith(local(karyotype.ClassDuplication), p.event)
	p.directDup = o.DeclareClassWith(local(karyotype.ClassDirectDuplication), p.duplication)
	p.inverseDup = o.DeclareClassWith(local(karyotype.ClassInverseDuplication), p.duplication)
	p.fission = o.DeclareClassWith(local(karyotype.ClassFission), p.event)
	p.insertion = o.DeclareClassWith(local(karyotype.ClassInsertion), p.event)
	p.directIns = o.DeclareClassWith(local(karyotype.ClassDirectInsertion), p.insertion)
	p.inverseIns = o.DeclareClassWith(local(karyotype.ClassInverseInsertion), p.insertion)
	p.inversion = o.DeclareClassWith(local(karyotype.ClassInversion), p.event)
	p.quadruplication = o.DeclareClassWith(local(karyotype.ClassQuadruplication), p.event)
	p.translocation = o.DeclareClassWith(local(karyotype.ClassTranslocation), p.event)
	p.triplication = o.DeclareClassWith(local(karyotype.ClassTriplication), p.event)
	p.directTri = o.DeclareClassWith(local(karyotype.ClassDirectTriplication), p.triplication)
	p.inverseTri = o.DeclareClassWith(local(karyotype.ClassInverseTriplication), p.triplication)

	component := o.MustClass(local(karyotype.ClassChromosomeComponent))
	p.hasEvent = o.DeclareObjectProperty(local(karyotype.PropHasEvent), ontology.PropertyOptions{
		Range: p.event,
	})
	p.hasDirect = o.DeclareObjectProperty(local(karyotype.PropHasDirectEvent), ontology.PropertyOptions{
		Range:         p.event,
		SubPropertyOf: p.hasEvent,
	})
	p.hasInverse = o.DeclareObjectProperty(local(karyotype.PropHasInverseEvent), ontology.PropertyOptions{
		Range:         p.event,
		SubPropertyOf: p.hasEvent,
	})
	p.hasBreak = o.DeclareObjectProperty(local(karyotype.PropHasBreakPoint), ontology.PropertyOptions{
		Domain: p.event,
		Range:  component,
	})
	p.hasReceiving = o.DeclareObjectProperty(local(karyotype.PropHasReceivingBreakPoint), ontology.PropertyOptions{
		Domain:        p.event,
		Range:         component,
		SubPropertyOf: p.hasBreak,
	})
	p.hasProviding = o.DeclareObjectProperty(local(karyotype.PropHasProvidingBreakPoint), ontology.PropertyOptions{
		Domain:        p.event,
		Range:         component,
		SubPropertyOf: p.hasBreak,
	})

	return p
}

// wrap applies the cardinality policy: n > 0 asserts exactly n occurrences
// of the pattern, n == 0 asserts at least one.
func (p *Patterns) wrap(n int, prop *ontology.Property, inner ontology.Expression) ontology.Expression {
	if n > 0 {
		return ontology.Exactly(n, prop, inner)
	}
	return ontology.Some(prop, inner)
}

// telomereOf resolves and looks up the telomere class terminating the arm
// of the given declared band class.
func (p *Patterns) telomereOf(cls *ontology.Class) (*ontology.Class, error) {
	id, err := p.bands.ResolveTelomere(cls.Name)
	if err != nil {
		return nil, err
	}
	tel, ok := p.o.Class(id)
	if !ok {
		return nil, fmt.Errorf("%w: telomere %q of %q is not declared", ErrInvalidEventArgument, id, cls.Name)
	}
	return tel, nil
}

// pairPattern builds the common two-breakpoint shape shared by
// duplications, inversions, quadruplications, and triplications.
func (p *Patterns) pairPattern(n int, prop *ontology.Property, eventClass *ontology.Class, band1, band2 string) (ontology.Expression, error) {
	b1, err := p.band(band1)
	if err != nil {
		return nil, err
	}
	b2, err := p.band(band2)
	if err != nil {
		return nil, err
	}
	return p.wrap(n, prop, ontology.And(eventClass, ontology.Some(p.hasBreak, b1, b2))), nil
}

// Addition builds a gain pattern: a whole-chromosome target intersects the
// Addition class with the chromosome itself; a band target adds a single
// breakpoint at the band.
func (p *Patterns) Addition(n int, t Target) (ontology.Expression, error) {
	switch t.Kind {
	case TargetChromosome:
		return p.wrap(n, p.hasEvent, ontology.And(p.addition, t.Class)), nil
	case TargetBand:
		return p.wrap(n, p.hasEvent, ontology.And(p.addition, ontology.Some(p.hasBreak, t.Class))), nil
	}
	return nil, fmt.Errorf("%w: addition target is unclassified", ErrInvalidEventArgument)
}

// Deletion builds a loss pattern. A chromosome target is a whole-chromosome
// loss. A band target alone is a terminal deletion: the second breakpoint
// is the band's telomere, inferred. A band target plus one more band is an
// interstitial deletion with both breakpoints taken verbatim.
func (p *Patterns) Deletion(n int, t Target, more ...string) (ontology.Expression, error) {
	if len(more) > 1 {
		return nil, fmt.Errorf("%w: deletion takes at most two bands, got %d", ErrArity, len(more)+1)
	}
	switch t.Kind {
	case TargetChromosome:
		if len(more) != 0 {
			return nil, fmt.Errorf("%w: whole-chromosome deletion takes no second breakpoint", ErrArity)
		}
		return p.wrap(n, p.hasEvent, ontology.And(p.deletion, t.Class)), nil
	case TargetBand:
		if len(more) == 0 {
			tel, err := p.telomereOf(t.Class)
			if err != nil {
				return nil, err
			}
			return p.wrap(n, p.hasEvent, ontology.And(p.deletion, ontology.Some(p.hasBreak, t.Class, tel))), nil
		}
		b2, err := p.band(more[0])
		if err != nil {
			return nil, err
		}
		return p.wrap(n, p.hasEvent, ontology.And(p.deletion, ontology.Some(p.hasBreak, t.Class, b2))), nil
	}
	return nil, fmt.Errorf("%w: deletion target is unclassified", ErrInvalidEventArgument)
}

// Duplication builds a two-breakpoint duplication pattern.
func (p *Patterns) Duplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasEvent, p.duplication, band1, band2)
}

// DirectDuplication preserves the duplicated segment orientation.
func (p *Patterns) DirectDuplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasDirect, p.directDup, band1, band2)
}

// InverseDuplication reverses the duplicated segment orientation.
func (p *Patterns) InverseDuplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasInverse, p.inverseDup, band1, band2)
}

// Fission builds a centric fission pattern: one breakpoint at the band,
// the second at the band's telomere, inferred.
func (p *Patterns) Fission(n int, bandID string) (ontology.Expression, error) {
	b, err := p.band(bandID)
	if err != nil {
		return nil, err
	}
	tel, err := p.telomereOf(b)
	if err != nil {
		return nil, err
	}
	return p.wrap(n, p.hasEvent, ontology.And(p.fission, ontology.Some(p.hasBreak, b, tel))), nil
}

// insertionPattern builds the three-breakpoint insertion shape: one
// receiving breakpoint and a providing pair. The receiving band may sit on
// a different chromosome than the providing pair (two-chromosome form); the
// pattern shape is identical.
func (p *Patterns) insertionPattern(n int, prop *ontology.Property, eventClass *ontology.Class, receive, provide1, provide2 string) (ontology.Expression, error) {
	r, err := p.band(receive)
	if err != nil {
		return nil, err
	}
	p1, err := p.band(provide1)
	if err != nil {
		return nil, err
	}
	p2, err := p.band(provide2)
	if err != nil {
		return nil, err
	}
	return p.wrap(n, prop, ontology.And(eventClass,
		ontology.Some(p.hasReceiving, r),
		ontology.Some(p.hasProviding, p1, p2))), nil
}

// Insertion builds an insertion pattern with a receiving breakpoint band
// and two providing breakpoint bands.
func (p *Patterns) Insertion(n int, receive, provide1, provide2 string) (ontology.Expression, error) {
	return p.insertionPattern(n, p.hasEvent, p.insertion, receive, provide1, provide2)
}

// DirectInsertion preserves the inserted segment orientation.
func (p *Patterns) DirectInsertion(n int, receive, provide1, provide2 string) (ontology.Expression, error) {
	return p.insertionPattern(n, p.hasDirect, p.directIns, receive, provide1, provide2)
}

// InverseInsertion reverses the inserted segment orientation.
func (p *Patterns) InverseInsertion(n int, receive, provide1, provide2 string) (ontology.Expression, error) {
	return p.insertionPattern(n, p.hasInverse, p.inverseIns, receive, provide1, provide2)
}

// Inversion builds a two-breakpoint inversion pattern. Both breakpoints
// are taken verbatim; unlike deletion there is never telomere inference.
func (p *Patterns) Inversion(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasEvent, p.inversion, band1, band2)
}

// Quadruplication builds a two-breakpoint quadruplication pattern.
func (p *Patterns) Quadruplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasEvent, p.quadruplication, band1, band2)
}

// Translocation builds a closed cycle of chromosome exchanges. Each group
// supplies one or two bands of a participating chromosome; a single band
// has its telomere inferred as the second breakpoint. Each group receives
// at its own pair and provides toward the next group's pair, the last
// group wrapping around to the first.
func (p *Patterns) Translocation(n int, groups ...[]string) (ontology.Expression, error) {
	if len(groups) < 2 {
		return nil, fmt.Errorf("%w: translocation needs at least 2 groups, got %d", ErrArity, len(groups))
	}

	pairs := make([][]*ontology.Class, 0, len(groups))
	for i, g := range groups {
		switch len(g) {
		case 1:
			b, err := p.band(g[0])
			if err != nil {
				return nil, err
			}
			tel, err := p.telomereOf(b)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, []*ontology.Class{b, tel})
		case 2:
			b1, err := p.band(g[0])
			if err != nil {
				return nil, err
			}
			b2, err := p.band(g[1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, []*ontology.Class{b1, b2})
		default:
			return nil, fmt.Errorf("%w: translocation group %d has %d bands, want 1 or 2", ErrArity, i, len(g))
		}
	}

	operands := []ontology.Expression{p.translocation}
	for i, pair := range pairs {
		next := pairs[(i+1)%len(pairs)]
		operands = append(operands, ontology.And(
			ontology.Some(p.hasReceiving, pair[0], pair[1]),
			ontology.Some(p.hasProviding, next[0], next[1]),
		))
	}
	return p.wrap(n, p.hasEvent, ontology.And(operands...)), nil
}

// Triplication builds a two-breakpoint triplication pattern.
func (p *Patterns) Triplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasEvent, p.triplication, band1, band2)
}

// DirectTriplication preserves the repeated segment orientation.
func (p *Patterns) DirectTriplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasDirect, p.directTri, band1, band2)
}

// InverseTriplication reverses the repeated segment orientation.
func (p *Patterns) InverseTriplication(n int, band1, band2 string) (ontology.Expression, error) {
	return p.pairPattern(n, p.hasInverse, p.inverseTri, band1, band2)
}
