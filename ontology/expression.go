package ontology

import (
	"fmt"
	"strings"
)

// Expression is an OWL class expression: a named class, a restriction, or
// an intersection of expressions. Expressions are immutable once built.
type Expression interface {
	// Render returns a compact functional-style rendering, used for
	// logging, test assertions, and the functional-syntax serializer.
	Render() string
}

// Class is a named, declared class. Supers holds its asserted superclass
// expressions in declaration order.
type Class struct {
	Name   string
	Supers []Expression
}

// Render returns the class name.
func (c *Class) Render() string { return c.Name }

// Property is a named object property.
type Property struct {
	Name          string
	Domain        *Class
	Range         *Class
	SubPropertyOf *Property
	InverseOf     *Property
}

// SomeValues is an existential restriction over one property. Multiple
// fillers stand for the conjunction of one single-filler restriction per
// filler, matching ISCN breakpoint pairs written as one expression.
type SomeValues struct {
	Property *Property
	Fillers  []Expression
}

// Render renders the restriction in functional style.
func (s *SomeValues) Render() string {
	parts := make([]string, 0, len(s.Fillers))
	for _, f := range s.Fillers {
		parts = append(parts, fmt.Sprintf("ObjectSomeValuesFrom(%s %s)", s.Property.Name, f.Render()))
	}
	return strings.Join(parts, " ")
}

// Cardinality is an exact qualified cardinality restriction.
type Cardinality struct {
	N        int
	Property *Property
	Filler   Expression
}

// Render renders the restriction in functional style.
func (c *Cardinality) Render() string {
	return fmt.Sprintf("ObjectExactCardinality(%d %s %s)", c.N, c.Property.Name, c.Filler.Render())
}

// Intersection is a conjunction of class expressions.
type Intersection struct {
	Operands []Expression
}

// Render renders the intersection in functional style.
func (i *Intersection) Render() string {
	parts := make([]string, 0, len(i.Operands))
	for _, op := range i.Operands {
		parts = append(parts, op.Render())
	}
	return "ObjectIntersectionOf(" + strings.Join(parts, " ") + ")"
}

// Some builds an existential restriction over property for each filler.
func Some(property *Property, fillers ...Expression) *SomeValues {
	return &SomeValues{Property: property, Fillers: fillers}
}

// Exactly builds an exact qualified cardinality restriction.
func Exactly(n int, property *Property, filler Expression) *Cardinality {
	return &Cardinality{N: n, Property: property, Filler: filler}
}

// And builds an intersection of the given expressions.
func And(operands ...Expression) *Intersection {
	return &Intersection{Operands: operands}
}
