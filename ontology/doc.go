// Package ontology provides an in-memory OWL class store used while the
// karyotype knowledge base is built: class and object property declaration,
// disjointness assertions, class expression constructors (existential and
// exact-cardinality restrictions, intersections), and subclass queries.
//
// The store is a build-time batch structure. Declarations are ordered: a
// class must be declared before anything references it as a superclass or
// inside a restriction. Callers own that ordering; the store only records.
// It is not safe for concurrent writers.
package ontology
