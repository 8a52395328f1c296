package band

import "fmt"

// HumanChromosomes lists the human chromosome numbers in karyotype order.
var HumanChromosomes = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "X", "Y",
}

// BuildHuman builds the band hierarchy of all 24 human chromosomes from
// the static ISCN band data and asserts the whole-ontology disjointness
// among per-chromosome band groups and centromeres. A malformed entry in
// any chromosome aborts the whole build.
func (b *Builder) BuildHuman() error {
	return b.Build(HumanChromosomes, HumanBandSpecs)
}

// Build builds the listed chromosomes from the given band specifications
// and finalizes cross-chromosome disjointness.
func (b *Builder) Build(numbers []string, specs map[string][]Node) error {
	for _, num := range numbers {
		spec, ok := specs[num]
		if !ok {
			return fmt.Errorf("no band specification for chromosome %s", num)
		}
		if err := b.BuildChromosome(num, spec); err != nil {
			return err
		}
	}
	b.FinalizeDisjointness()
	return nil
}

// FinalizeDisjointness asserts that every chromosome's band group is
// disjoint from every other's, and likewise for centromeres. Called once
// after all chromosomes are built.
func (b *Builder) FinalizeDisjointness() {
	b.o.AssertDisjoint(b.bandGroups...)
	b.o.AssertDisjoint(b.centromeres...)
}

// HumanBandSpecs holds the ISCN band specification tree per chromosome at
// the 400-band resolution, ordered from the p telomere through the
// centromere to the q telomere. Containers represent merged ISCN regions
// subsuming their sub-bands; a container's first child carries the arm of
// the whole container.
var HumanBandSpecs = map[string][]Node{
	"1": {
		Leaf("pTer"),
		Container("p36.3", Leaf("p36.33"), Leaf("p36.32"), Leaf("p36.31")),
		Leaf("p35"), Leaf("p34"), Leaf("p33"), Leaf("p32"), Leaf("p31"),
		Leaf("p22"), Leaf("p21"), Leaf("p13"), Leaf("p12"),
		Container("p11", Leaf("p11.2"), Leaf("p11.1")),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"), Leaf("q23"), Leaf("q24"), Leaf("q25"),
		Leaf("q31"),
		Container("q32", Leaf("q32.1"), Leaf("q32.2"), Leaf("q32.3")),
		Leaf("q41"),
		Container("q42",
			Container("q42.1", Leaf("q42.11"), Leaf("q42.12"), Leaf("q42.13")),
			Leaf("q42.2"), Leaf("q42.3")),
		Leaf("q43"), Leaf("q44"),
		Leaf("qTer"),
	},
	"2": {
		Leaf("pTer"),
		Leaf("p25"), Leaf("p24"), Leaf("p23"), Leaf("p22"), Leaf("p21"),
		Leaf("p16"), Leaf("p15"), Leaf("p14"), Leaf("p13"), Leaf("p12"),
		Container("p11", Leaf("p11.2"), Leaf("p11.1")),
		Leaf("Cen"),
		Container("q11", Leaf("q11.1"), Leaf("q11.2")),
		Leaf("q12"), Leaf("q13"),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"), Leaf("q23"),
		Container("q24", Leaf("q24.1"), Leaf("q24.2"), Leaf("q24.3")),
		Leaf("q31"),
		Container("q32", Leaf("q32.1"), Leaf("q32.2"), Leaf("q32.3")),
		Leaf("q33"), Leaf("q34"), Leaf("q35"), Leaf("q36"),
		Container("q37", Leaf("q37.1"), Leaf("q37.2"), Leaf("q37.3")),
		Leaf("qTer"),
	},
	"3": {
		Leaf("pTer"),
		Leaf("p26"), Leaf("p25"),
		Container("p24", Leaf("p24.3"), Leaf("p24.2"), Leaf("p24.1")),
		Leaf("p23"), Leaf("p22"),
		Container("p21.3", Leaf("p21.33"), Leaf("p21.32"), Leaf("p21.31")),
		Leaf("p21.2"), Leaf("p21.1"),
		Leaf("p14"), Leaf("p13"), Leaf("p12"), Leaf("p11"),
		Leaf("Cen"),
		Container("q11", Leaf("q11.1"), Leaf("q11.2")),
		Leaf("q12"), Leaf("q13"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"), Leaf("q23"), Leaf("q24"),
		Container("q25", Leaf("q25.1"), Leaf("q25.2"), Leaf("q25.3")),
		Container("q26", Leaf("q26.1"), Leaf("q26.2"), Leaf("q26.3")),
		Leaf("q27"), Leaf("q28"), Leaf("q29"),
		Leaf("qTer"),
	},
	"4": {
		Leaf("pTer"),
		Container("p16", Leaf("p16.3"), Leaf("p16.2"), Leaf("p16.1")),
		Container("p15.3", Leaf("p15.33"), Leaf("p15.32"), Leaf("p15.31")),
		Leaf("p15.2"), Leaf("p15.1"),
		Leaf("p14"), Leaf("p13"), Leaf("p12"), Leaf("p11"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"), Leaf("q13"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"), Leaf("q23"), Leaf("q24"), Leaf("q25"), Leaf("q26"),
		Leaf("q27"),
		Container("q28", Leaf("q28.1"), Leaf("q28.2"), Leaf("q28.3")),
		Container("q31.2", Leaf("q31.21"), Leaf("q31.22"), Leaf("q31.23")),
		Leaf("q31.3"),
		Container("q32", Leaf("q32.1"), Leaf("q32.2"), Leaf("q32.3")),
		Leaf("q33"), Leaf("q34"),
		Container("q35", Leaf("q35.1"), Leaf("q35.2")),
		Leaf("qTer"),
	},
	"5": {
		Leaf("pTer"),
		Container("p15.3", Leaf("p15.33"), Leaf("p15.32"), Leaf("p15.31")),
		Leaf("p15.2"), Leaf("p15.1"),
		Leaf("p14"), Leaf("p13"), Leaf("p12"), Leaf("p11"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"), Leaf("q13"),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Leaf("q15"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q31", Leaf("q31.1"), Leaf("q31.2"), Leaf("q31.3")),
		Leaf("q32"), Leaf("q33"), Leaf("q34"),
		Container("q35", Leaf("q35.1"), Leaf("q35.2"), Leaf("q35.3")),
		Leaf("qTer"),
	},
	"6": {
		Leaf("pTer"),
		Container("p25", Leaf("p25.3"), Leaf("p25.2"), Leaf("p25.1")),
		Leaf("p24"), Leaf("p23"), Leaf("p22"),
		Container("p21.3", Leaf("p21.33"), Leaf("p21.32"), Leaf("p21.31")),
		Leaf("p21.2"), Leaf("p21.1"),
		Leaf("p12"), Leaf("p11"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"), Leaf("q13"),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Leaf("q15"),
		Container("q16", Leaf("q16.1"), Leaf("q16.2"), Leaf("q16.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"), Leaf("q23"), Leaf("q24"), Leaf("q25"), Leaf("q26"),
		Leaf("q27"),
		Leaf("qTer"),
	},
	"7": {
		Leaf("pTer"),
		Leaf("p22"), Leaf("p21"),
		Container("p15", Leaf("p15.3"), Leaf("p15.2"), Leaf("p15.1")),
		Leaf("p14"), Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"),
		Container("q11.2", Leaf("q11.21"), Leaf("q11.22"), Leaf("q11.23")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"),
		Container("q31", Leaf("q31.1"), Leaf("q31.2"), Leaf("q31.3")),
		Leaf("q32"), Leaf("q33"), Leaf("q34"), Leaf("q35"),
		Container("q36", Leaf("q36.1"), Leaf("q36.2"), Leaf("q36.3")),
		Leaf("qTer"),
	},
	"8": {
		Leaf("pTer"),
		Container("p23", Leaf("p23.3"), Leaf("p23.2"), Leaf("p23.1")),
		Leaf("p22"),
		Container("p21", Leaf("p21.3"), Leaf("p21.2"), Leaf("p21.1")),
		Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"), Leaf("q13"),
		Container("q21.1", Leaf("q21.11"), Leaf("q21.12"), Leaf("q21.13")),
		Leaf("q21.2"), Leaf("q21.3"),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q24.1", Leaf("q24.11"), Leaf("q24.12"), Leaf("q24.13")),
		Container("q24.2", Leaf("q24.21"), Leaf("q24.22"), Leaf("q24.23")),
		Leaf("q24.3"),
		Leaf("qTer"),
	},
	"9": {
		Leaf("pTer"),
		Leaf("p24"), Leaf("p23"), Leaf("p22"),
		Container("p21", Leaf("p21.3"), Leaf("p21.2"), Leaf("p21.1")),
		Leaf("p13"), Leaf("p12"), Leaf("p11"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"), Leaf("q13"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Container("q31", Leaf("q31.1"), Leaf("q31.2"), Leaf("q31.3")),
		Leaf("q32"), Leaf("q33"),
		Container("q34", Leaf("q34.1"), Leaf("q34.2"), Leaf("q34.3")),
		Leaf("qTer"),
	},
	"10": {
		Leaf("pTer"),
		Leaf("p15"), Leaf("p14"), Leaf("p13"),
		Container("p12", Leaf("p12.3"), Leaf("p12.2"), Leaf("p12.1")),
		Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q24", Leaf("q24.1"), Leaf("q24.2"), Leaf("q24.3")),
		Container("q25", Leaf("q25.1"), Leaf("q25.2"), Leaf("q25.3")),
		Container("q26", Leaf("q26.1"), Leaf("q26.2"), Leaf("q26.3")),
		Leaf("qTer"),
	},
	"11": {
		Leaf("pTer"),
		Container("p15", Leaf("p15.5"), Leaf("p15.4"), Leaf("p15.3"), Leaf("p15.2"), Leaf("p15.1")),
		Leaf("p14"), Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"),
		Container("q13", Leaf("q13.1"), Leaf("q13.2"), Leaf("q13.3"), Leaf("q13.4"), Leaf("q13.5")),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Leaf("q21"), Leaf("q22"),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q24", Leaf("q24.1"), Leaf("q24.2"), Leaf("q24.3")),
		Leaf("q25"),
		Leaf("qTer"),
	},
	"12": {
		Leaf("pTer"),
		Container("p13", Leaf("p13.3"), Leaf("p13.2"), Leaf("p13.1")),
		Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"),
		Container("q13", Leaf("q13.1"), Leaf("q13.2"), Leaf("q13.3")),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Leaf("q15"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q24.1", Leaf("q24.11"), Leaf("q24.12"), Leaf("q24.13")),
		Leaf("q24.2"),
		Container("q24.3", Leaf("q24.31"), Leaf("q24.32"), Leaf("q24.33")),
		Leaf("qTer"),
	},
	"13": {
		Leaf("pTer"),
		Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11"),
		Container("q12", Leaf("q12.1"), Leaf("q12.2"), Leaf("q12.3")),
		Container("q13", Leaf("q13.1"), Leaf("q13.2"), Leaf("q13.3")),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Leaf("q31"), Leaf("q32"), Leaf("q33"), Leaf("q34"),
		Leaf("qTer"),
	},
	"14": {
		Leaf("pTer"),
		Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"),
		Container("q13", Leaf("q13.1"), Leaf("q13.2"), Leaf("q13.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q24", Leaf("q24.1"), Leaf("q24.2"), Leaf("q24.3")),
		Leaf("q31"),
		Container("q32.1", Leaf("q32.11"), Leaf("q32.12"), Leaf("q32.13")),
		Leaf("q32.2"),
		Container("q32.3", Leaf("q32.31"), Leaf("q32.32"), Leaf("q32.33")),
		Leaf("qTer"),
	},
	"15": {
		Leaf("pTer"),
		Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"), Leaf("q13"),
		Container("q14", Leaf("q14.1"), Leaf("q14.2"), Leaf("q14.3")),
		Container("q15", Leaf("q15.1"), Leaf("q15.2"), Leaf("q15.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Leaf("q23"), Leaf("q24"),
		Container("q25", Leaf("q25.1"), Leaf("q25.2"), Leaf("q25.3")),
		Container("q26", Leaf("q26.1"), Leaf("q26.2"), Leaf("q26.3")),
		Leaf("qTer"),
	},
	"16": {
		Leaf("pTer"),
		Container("p13.3", Leaf("p13.33"), Leaf("p13.32"), Leaf("p13.31")),
		Leaf("p13.2"),
		Container("p13.1", Leaf("p13.13"), Leaf("p13.12"), Leaf("p13.11")),
		Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12.1"), Leaf("q12.2"),
		Leaf("q13"), Leaf("q21"),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Container("q23", Leaf("q23.1"), Leaf("q23.2"), Leaf("q23.3")),
		Container("q24", Leaf("q24.1"), Leaf("q24.2"), Leaf("q24.3")),
		Leaf("qTer"),
	},
	"17": {
		Leaf("pTer"),
		Container("p13", Leaf("p13.3"), Leaf("p13.2"), Leaf("p13.1")),
		Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.31"), Leaf("q21.32"), Leaf("q21.33")),
		Leaf("q22"), Leaf("q23"),
		Container("q24", Leaf("q24.1"), Leaf("q24.2"), Leaf("q24.3")),
		Container("q25", Leaf("q25.1"), Leaf("q25.2"), Leaf("q25.3")),
		Leaf("qTer"),
	},
	"18": {
		Leaf("pTer"),
		Leaf("p11.3"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"),
		Container("q12", Leaf("q12.1"), Leaf("q12.2"), Leaf("q12.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Container("q22", Leaf("q22.1"), Leaf("q22.2"), Leaf("q22.3")),
		Leaf("q23"),
		Leaf("qTer"),
	},
	"19": {
		Leaf("pTer"),
		Container("p13.3", Leaf("p13.33"), Leaf("p13.32"), Leaf("p13.31")),
		Leaf("p13.2"),
		Container("p13.1", Leaf("p13.13"), Leaf("p13.12"), Leaf("p13.11")),
		Leaf("p12"), Leaf("p11"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"),
		Container("q13.1", Leaf("q13.11"), Leaf("q13.12"), Leaf("q13.13")),
		Leaf("q13.2"),
		Container("q13.3", Leaf("q13.31"), Leaf("q13.32"), Leaf("q13.33")),
		Container("q13.4", Leaf("q13.41"), Leaf("q13.42"), Leaf("q13.43")),
		Leaf("qTer"),
	},
	"20": {
		Leaf("pTer"),
		Container("p13", Leaf("p13.3"), Leaf("p13.2"), Leaf("p13.1")),
		Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"),
		Container("q13.1", Leaf("q13.11"), Leaf("q13.12"), Leaf("q13.13")),
		Leaf("q13.2"),
		Container("q13.3", Leaf("q13.31"), Leaf("q13.32"), Leaf("q13.33")),
		Leaf("qTer"),
	},
	"21": {
		Leaf("pTer"),
		Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q21"),
		Container("q22.1", Leaf("q22.11"), Leaf("q22.12"), Leaf("q22.13")),
		Leaf("q22.2"), Leaf("q22.3"),
		Leaf("qTer"),
	},
	"22": {
		Leaf("pTer"),
		Leaf("p13"), Leaf("p12"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"), Leaf("q11.2"), Leaf("q12"),
		Container("q13", Leaf("q13.1"), Leaf("q13.2"), Leaf("q13.3")),
		Leaf("qTer"),
	},
	"X": {
		Leaf("pTer"),
		Container("p22.3", Leaf("p22.33"), Leaf("p22.32"), Leaf("p22.31")),
		Leaf("p22.2"), Leaf("p22.1"),
		Leaf("p21"),
		Leaf("p11.4"), Leaf("p11.3"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11"), Leaf("q12"),
		Container("q13", Leaf("q13.1"), Leaf("q13.2"), Leaf("q13.3")),
		Container("q21", Leaf("q21.1"), Leaf("q21.2"), Leaf("q21.3")),
		Leaf("q22"), Leaf("q23"), Leaf("q24"), Leaf("q25"),
		Container("q26", Leaf("q26.1"), Leaf("q26.2"), Leaf("q26.3")),
		Container("q27", Leaf("q27.1"), Leaf("q27.2"), Leaf("q27.3")),
		Leaf("q28"),
		Leaf("qTer"),
	},
	"Y": {
		Leaf("pTer"),
		Leaf("p11.3"), Leaf("p11.2"), Leaf("p11.1"),
		Leaf("Cen"),
		Leaf("q11.1"),
		Container("q11.2", Leaf("q11.21"), Leaf("q11.22"), Leaf("q11.23")),
		Leaf("q12"),
		Leaf("qTer"),
	},
}
