// Package karyotype provides vocabulary IRIs for the human karyotype
// ontology: chromosome structure classes (chromosomes, bands, centromeres,
// telomeres), the object properties that relate them, and the rearrangement
// event classes used by breakpoint patterns.
//
// All IRIs are built from the Namespace base. Import this package wherever
// class or property identifiers are needed; never build karyotype IRIs by
// hand.
package karyotype
