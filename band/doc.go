// Package band builds the chromosome-band class hierarchy of the human
// karyotype ontology.
//
// It classifies ISCN band tokens (p36.3, q21, Cen, pTer), expands each
// chromosome's ordered band specification tree into declared classes with
// sub-band and disjointness axioms, and resolves the telomere identifier
// terminating any declared band, arm group, or chromosome.
//
// Construction is a strict batch: a Builder owns one ontology, chromosomes
// are built in nomenclature order, and any malformed token aborts the
// enclosing chromosome build with no partial-success state.
package band
