// Package event builds the logical patterns representing cytogenetic
// rearrangement events: additions, deletions, duplications, fissions,
// insertions, inversions, quadruplications, translocations, and
// triplications.
//
// Each pattern is an exact-cardinality or existential restriction over the
// hasEvent property whose filler intersects the event class with breakpoint
// restrictions on the supplied bands. Patterns are transient expressions
// for inclusion in larger karyotype axioms; nothing is stored.
//
// Breakpoint arguments must name classes already declared by the band
// builder. Terminal deletions, fissions, and single-band translocation
// groups infer the implicit telomere breakpoint from the band's arm.
package event
