package band

import (
	"fmt"

	"github.com/cytogenlab/karyonto/ontology"
	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// Info records the structure behind a declared band-related class so that
// later lookups (telomere resolution, top-level listings) work structurally
// instead of re-parsing identifier strings.
type Info struct {
	// Chromosome is the chromosome group name, e.g. HumanChromosome1.
	Chromosome string

	// Arm is the arm the class belongs to; empty for centromeres and
	// whole-chromosome telomere classes.
	Arm Arm

	// Band is the original token, e.g. p36.3, pTer, Cen.
	Band string

	// Kind is the token classification.
	Kind Kind

	// SubBandOf names the immediately enclosing container class; empty
	// for top-level entries.
	SubBandOf string

	// Boundary marks the implicit p10/q10 centromere boundary classes,
	// which flank the centromere rather than appear in the band spec.
	Boundary bool
}

// Builder constructs chromosome band hierarchies in one owned ontology.
// It declares the shared structural vocabulary on creation and keeps a
// registry of every band-related class it declares.
type Builder struct {
	o *ontology.Ontology

	chromosome      *ontology.Class
	humanChromosome *ontology.Class
	component       *ontology.Class
	bandRoot        *ontology.Class
	centromereRoot  *ontology.Class
	telomereRoot    *ontology.Class

	isComponentOf *ontology.Property
	isBandOf      *ontology.Property
	isSubBandOf   *ontology.Property

	registry map[string]Info
	declared []string

	bandGroups  []*ontology.Class
	centromeres []*ontology.Class
}

// NewBuilder creates a Builder over o and declares the structural
// vocabulary: the chromosome and component root classes and the
// isComponentOf / isBandOf / isSubBandOf property hierarchy with inverses.
func NewBuilder(o *ontology.Ontology) *Builder {
	b := &Builder{o: o, registry: make(map[string]Info)}

	b.chromosome = o.DeclareClass(karyotype.Local(karyotype.ClassChromosome))
	b.humanChromosome = o.DeclareClassWith(karyotype.Local(karyotype.ClassHumanChromosome), b.chromosome)
	b.component = o.DeclareClass(karyotype.Local(karyotype.ClassChromosomeComponent))
	b.bandRoot = o.DeclareClassWith(karyotype.Local(karyotype.ClassChromosomeBand), b.component)
	b.centromereRoot = o.DeclareClassWith(karyotype.Local(karyotype.ClassCentromere), b.component)
	b.telomereRoot = o.DeclareClassWith(karyotype.Local(karyotype.ClassTelomere), b.component)
	o.AssertDisjoint(b.bandRoot, b.centromereRoot)

	b.isComponentOf = o.DeclareObjectProperty(karyotype.Local(karyotype.PropIsComponentOf), ontology.PropertyOptions{
		Domain: b.component,
		Range:  b.chromosome,
	})
	o.DeclareObjectProperty(karyotype.Local(karyotype.PropHasComponent), ontology.PropertyOptions{
		Domain:    b.chromosome,
		Range:     b.component,
		InverseOf: b.isComponentOf,
	})
	b.isBandOf = o.DeclareObjectProperty(karyotype.Local(karyotype.PropIsBandOf), ontology.PropertyOptions{
		Domain:        b.bandRoot,
		Range:         b.chromosome,
		SubPropertyOf: b.isComponentOf,
	})
	o.DeclareObjectProperty(karyotype.Local(karyotype.PropHasBand), ontology.PropertyOptions{
		Domain:    b.chromosome,
		Range:     b.bandRoot,
		InverseOf: b.isBandOf,
	})
	b.isSubBandOf = o.DeclareObjectProperty(karyotype.Local(karyotype.PropIsSubBandOf), ontology.PropertyOptions{
		Domain: b.bandRoot,
		Range:  b.bandRoot,
	})
	o.DeclareObjectProperty(karyotype.Local(karyotype.PropHasSubBand), ontology.PropertyOptions{
		Domain:    b.bandRoot,
		Range:     b.bandRoot,
		InverseOf: b.isSubBandOf,
	})

	return b
}

// Ontology returns the builder's owned ontology.
func (b *Builder) Ontology() *ontology.Ontology { return b.o }

// Info returns the registry entry for a declared band-related class.
func (b *Builder) Info(name string) (Info, bool) {
	info, ok := b.registry[karyotype.Local(name)]
	return info, ok
}

func (b *Builder) register(name string, info Info) {
	if _, ok := b.registry[name]; !ok {
		b.declared = append(b.declared, name)
	}
	b.registry[name] = info
}

// BuildChromosome declares one chromosome's full band hierarchy from its
// ordered band specification. number is the ISCN chromosome number
// ("1".."22", "X", "Y"). Every top-level entry becomes one class in a
// single pairwise-disjointness assertion; declaration is pre-order, so a
// container class exists before any of its sub-bands reference it.
//
// Any element that fails classification aborts the build with ErrBandSyntax
// before the chromosome's disjointness assertion is made.
func (b *Builder) BuildChromosome(number string, specs []Node) error {
	group := "HumanChromosome" + number
	chrom := b.o.DeclareClassWith(group, b.humanChromosome)

	bandGroup := group + "Band"
	bg := b.o.DeclareClassWith(bandGroup, ontology.Some(b.isBandOf, chrom), b.bandRoot)
	bgp := b.o.DeclareClassWith(bandGroup+string(ArmP), bg)
	bgq := b.o.DeclareClassWith(bandGroup+string(ArmQ), bg)
	b.bandGroups = append(b.bandGroups, bg)

	// Whole-chromosome telomere anchor, the target of telomere resolution
	// for chromosome-level and centromere-level inputs.
	telomere := b.o.DeclareClassWith(group+"Telomere", b.telomereRoot, ontology.Some(b.isComponentOf, chrom))
	b.register(telomere.Name, Info{Chromosome: group, Band: "Telomere", Kind: KindTelomere})

	var topLevel []*ontology.Class
	for _, node := range specs {
		if node.IsContainer() {
			cls, err := b.expandContainer(chrom, bg, bgp, bgq, nil, node, "")
			if err != nil {
				return fmt.Errorf("build %s: %w", group, err)
			}
			topLevel = append(topLevel, cls)
			continue
		}

		kind, err := Classify(node.Token)
		if err != nil {
			return fmt.Errorf("build %s: %w: token %q", group, ErrBandSyntax, node.Token)
		}

		switch kind {
		case KindCentromere:
			cen := b.buildCentromere(bgp, bgq, chrom, bandGroup, group+node.Token)
			topLevel = append(topLevel, cen)

		case KindTelomere:
			arm, err := armOf(node.Token)
			if err != nil {
				return fmt.Errorf("build %s: %w: token %q", group, ErrBandSyntax, node.Token)
			}
			armGroup := bgp
			if arm == ArmQ {
				armGroup = bgq
			}
			cls := b.o.DeclareClassWith(bandGroup+node.Token,
				armGroup,
				telomere,
				ontology.Some(b.isComponentOf, chrom))
			b.register(cls.Name, Info{Chromosome: group, Arm: arm, Band: node.Token, Kind: KindTelomere})
			topLevel = append(topLevel, cls)

		case KindPBand, KindQBand:
			armGroup := bgp
			arm := ArmP
			if kind == KindQBand {
				armGroup = bgq
				arm = ArmQ
			}
			cls := b.o.DeclareClassWith(bandGroup+node.Token, armGroup)
			b.register(cls.Name, Info{Chromosome: group, Arm: arm, Band: node.Token, Kind: kind})
			topLevel = append(topLevel, cls)

		default:
			return fmt.Errorf("build %s: %w: token %q", group, ErrBandSyntax, node.Token)
		}
	}

	b.o.AssertDisjoint(topLevel...)
	return nil
}

// expandContainer declares a container class and recursively its children.
// parentSuper is the arm group the whole subtree subsumes from; nil means
// infer it from the container's first leaf. subBandOf names the enclosing
// container for nested containers, empty at top level.
func (b *Builder) expandContainer(chrom, bg, bgp, bgq, parentSuper *ontology.Class, node Node, subBandOf string) (*ontology.Class, error) {
	first, ok := node.FirstLeaf()
	if !ok {
		return nil, fmt.Errorf("%w: empty container %q", ErrBandSyntax, node.Token)
	}

	arm := ArmP
	if parentSuper == nil {
		kind, err := Classify(first)
		if err != nil {
			return nil, fmt.Errorf("%w: container %q first child %q", ErrBandSyntax, node.Token, first)
		}
		switch kind {
		case KindPBand:
			parentSuper = bgp
		case KindQBand:
			parentSuper = bgq
			arm = ArmQ
		default:
			return nil, fmt.Errorf("%w: container %q first child %q is %s, want an arm band", ErrBandSyntax, node.Token, first, kind)
		}
	} else if parentSuper == bgq {
		arm = ArmQ
	}

	supers := []ontology.Expression{parentSuper}
	if subBandOf != "" {
		supers = append(supers, ontology.Some(b.isSubBandOf, b.o.MustClass(subBandOf)))
	}
	container := b.o.DeclareClassWith(bg.Name+node.Token, supers...)
	b.register(container.Name, Info{Chromosome: chrom.Name, Arm: arm, Band: node.Token, Kind: classifyArm(arm), SubBandOf: subBandOf})

	var kids []*ontology.Class
	for _, child := range node.Children {
		if child.IsContainer() {
			// Sub-containers stay subclasses of the arm group; only the
			// isSubBandOf restriction points at the immediate container.
			kid, err := b.expandContainer(chrom, bg, bgp, bgq, parentSuper, child, container.Name)
			if err != nil {
				return nil, err
			}
			kids = append(kids, kid)
			continue
		}

		kind, err := Classify(child.Token)
		if err != nil || (kind != KindPBand && kind != KindQBand) {
			return nil, fmt.Errorf("%w: container %q child %q", ErrBandSyntax, node.Token, child.Token)
		}
		leaf := b.o.DeclareClassWith(bg.Name+child.Token,
			parentSuper,
			ontology.Some(b.isSubBandOf, container))
		b.register(leaf.Name, Info{Chromosome: chrom.Name, Arm: arm, Band: child.Token, Kind: kind, SubBandOf: container.Name})
		kids = append(kids, leaf)
	}

	b.o.AssertDisjoint(kids...)
	return container, nil
}

func classifyArm(arm Arm) Kind {
	if arm == ArmQ {
		return KindQBand
	}
	return KindPBand
}

// buildCentromere declares a chromosome's centromere class and the p10/q10
// boundary classes flanking it, asserting the pair disjoint.
func (b *Builder) buildCentromere(bgp, bgq, chrom *ontology.Class, bandGroup, name string) *ontology.Class {
	cen := b.o.DeclareClassWith(name, b.centromereRoot, ontology.Some(b.isComponentOf, chrom))
	b.register(name, Info{Chromosome: chrom.Name, Band: centromereMarker, Kind: KindCentromere})
	b.centromeres = append(b.centromeres, cen)

	p10 := b.o.DeclareClassWith(bandGroup+"p10", bgp)
	b.register(p10.Name, Info{Chromosome: chrom.Name, Arm: ArmP, Band: "p10", Kind: KindPBand, Boundary: true})
	q10 := b.o.DeclareClassWith(bandGroup+"q10", bgq)
	b.register(q10.Name, Info{Chromosome: chrom.Name, Arm: ArmQ, Band: "q10", Kind: KindQBand, Boundary: true})
	b.o.AssertDisjoint(p10, q10)

	return cen
}

// TopLevelBands returns, in declaration order, the names of the top-level
// classes of one arm of one chromosome: entries declared directly from the
// band specification, excluding sub-bands nested inside containers.
func (b *Builder) TopLevelBands(number string, arm Arm) []string {
	group := "HumanChromosome" + number
	var out []string
	for _, name := range b.declared {
		info := b.registry[name]
		if info.Chromosome != group || info.Arm != arm || info.SubBandOf != "" || info.Boundary {
			continue
		}
		out = append(out, name)
	}
	return out
}
