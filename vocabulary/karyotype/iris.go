package karyotype

// Namespace is the base IRI prefix for karyotype vocabulary terms.
const Namespace = "https://cytogenlab.dev/ontology/karyotype/"

// Structural class IRIs describe chromosome anatomy.
const (
	// ClassChromosome is the root class of all chromosomes.
	ClassChromosome = Namespace + "Chromosome"

	// ClassHumanChromosome covers the 24 human chromosomes (1-22, X, Y).
	// Extends: ClassChromosome
	ClassHumanChromosome = Namespace + "HumanChromosome"

	// ClassChromosomeComponent is the root class of structural parts of a
	// chromosome (bands, centromeres, telomeres).
	ClassChromosomeComponent = Namespace + "ChromosomeComponent"

	// ClassChromosomeBand is an ISCN-named region of a chromosome arm.
	// Extends: ClassChromosomeComponent
	ClassChromosomeBand = Namespace + "ChromosomeBand"

	// ClassCentromere is the constriction point separating p and q arms.
	// Extends: ClassChromosomeComponent
	ClassCentromere = Namespace + "Centromere"

	// ClassTelomere is the terminal cap of a chromosome arm.
	// Extends: ClassChromosomeComponent
	ClassTelomere = Namespace + "Telomere"
)

// Event class IRIs describe cytogenetic rearrangement events.
const (
	// ClassEvent is the root class of all rearrangement events.
	ClassEvent = Namespace + "Event"

	// ClassAddition is a whole-chromosome or band-level gain.
	ClassAddition = Namespace + "Addition"

	// ClassDeletion is a whole-chromosome, terminal, or interstitial loss.
	ClassDeletion = Namespace + "Deletion"

	// ClassDuplication is a repeat of a band interval.
	ClassDuplication = Namespace + "Duplication"

	// ClassDirectDuplication preserves the original band orientation.
	// Extends: ClassDuplication
	ClassDirectDuplication = Namespace + "DirectDuplication"

	// ClassInverseDuplication reverses the duplicated band orientation.
	// Extends: ClassDuplication
	ClassInverseDuplication = Namespace + "InverseDuplication"

	// ClassFission is a centric split of one chromosome at a band.
	ClassFission = Namespace + "Fission"

	// ClassInsertion moves a band interval into a receiving breakpoint.
	ClassInsertion = Namespace + "Insertion"

	// ClassDirectInsertion preserves the inserted segment orientation.
	// Extends: ClassInsertion
	ClassDirectInsertion = Namespace + "DirectInsertion"

	// ClassInverseInsertion reverses the inserted segment orientation.
	// Extends: ClassInsertion
	ClassInverseInsertion = Namespace + "InverseInsertion"

	// ClassInversion reverses a band interval in place.
	ClassInversion = Namespace + "Inversion"

	// ClassQuadruplication is a fourfold repeat of a band interval.
	ClassQuadruplication = Namespace + "Quadruplication"

	// ClassTranslocation is a cyclic exchange of segments between two or
	// more chromosomes.
	ClassTranslocation = Namespace + "Translocation"

	// ClassTriplication is a threefold repeat of a band interval.
	ClassTriplication = Namespace + "Triplication"

	// ClassDirectTriplication preserves the repeated segment orientation.
	// Extends: ClassTriplication
	ClassDirectTriplication = Namespace + "DirectTriplication"

	// ClassInverseTriplication reverses the repeated segment orientation.
	// Extends: ClassTriplication
	ClassInverseTriplication = Namespace + "InverseTriplication"
)

// Structural object property IRIs relate components to chromosomes.
const (
	// PropIsComponentOf links a structural part to its chromosome.
	// Domain: ClassChromosomeComponent, Range: ClassChromosome
	PropIsComponentOf = Namespace + "isComponentOf"

	// PropHasComponent is the inverse of PropIsComponentOf.
	PropHasComponent = Namespace + "hasComponent"

	// PropIsBandOf links a band to its chromosome.
	// SubPropertyOf: PropIsComponentOf. Domain: ClassChromosomeBand
	PropIsBandOf = Namespace + "isBandOf"

	// PropHasBand is the inverse of PropIsBandOf.
	PropHasBand = Namespace + "hasBand"

	// PropIsSubBandOf links a sub-band to the merged band region that
	// subsumes it. Domain and Range: ClassChromosomeBand
	PropIsSubBandOf = Namespace + "isSubBandOf"

	// PropHasSubBand is the inverse of PropIsSubBandOf.
	PropHasSubBand = Namespace + "hasSubBand"
)

// Event object property IRIs attach events and breakpoints to patterns.
const (
	// PropHasEvent links a karyotype description to a rearrangement event.
	PropHasEvent = Namespace + "hasEvent"

	// PropHasDirectEvent marks orientation-preserving events.
	// SubPropertyOf: PropHasEvent
	PropHasDirectEvent = Namespace + "hasDirectEvent"

	// PropHasInverseEvent marks orientation-reversing events.
	// SubPropertyOf: PropHasEvent
	PropHasInverseEvent = Namespace + "hasInverseEvent"

	// PropHasBreakPoint links an event to a band where it begins or ends.
	// Range: ClassChromosomeComponent
	PropHasBreakPoint = Namespace + "hasBreakPoint"

	// PropHasReceivingBreakPoint marks the breakpoint that receives
	// material in insertions and translocations.
	// SubPropertyOf: PropHasBreakPoint
	PropHasReceivingBreakPoint = Namespace + "hasReceivingBreakPoint"

	// PropHasProvidingBreakPoint marks the breakpoint that provides
	// material in insertions and translocations.
	// SubPropertyOf: PropHasBreakPoint
	PropHasProvidingBreakPoint = Namespace + "hasProvidingBreakPoint"
)

// Local returns the local name of an IRI in the karyotype namespace.
// IRIs outside the namespace are returned unchanged.
func Local(iri string) string {
	if len(iri) > len(Namespace) && iri[:len(Namespace)] == Namespace {
		return iri[len(Namespace):]
	}
	return iri
}
