package export

import (
	"fmt"
	"strings"

	"github.com/cytogenlab/karyonto/ontology"
	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// FunctionalWriter renders an ontology in OWL 2 functional-style syntax.
type FunctionalWriter struct {
	o  *ontology.Ontology
	sb strings.Builder
}

// NewFunctionalWriter creates a functional-syntax writer over a built
// ontology.
func NewFunctionalWriter(o *ontology.Ontology) *FunctionalWriter {
	return &FunctionalWriter{o: o}
}

// String renders the full ontology.
func (w *FunctionalWriter) String() string {
	w.sb.Reset()
	fmt.Fprintf(&w.sb, "Prefix(:=<%s>)\n", karyotype.Namespace)
	w.sb.WriteString("Prefix(owl:=<http://www.w3.org/2002/07/owl#>)\n")
	w.sb.WriteString("Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)\n\n")
	fmt.Fprintf(&w.sb, "Ontology(<%s>\n", w.o.IRI())
	fmt.Fprintf(&w.sb, "Annotation(owl:versionInfo %q)\n\n", w.o.Version())

	for _, name := range w.o.Properties() {
		p, _ := w.o.Property(name)
		fmt.Fprintf(&w.sb, "Declaration(ObjectProperty(%s))\n", fname(name))
		if p.SubPropertyOf != nil {
			fmt.Fprintf(&w.sb, "SubObjectPropertyOf(%s %s)\n", fname(name), fname(p.SubPropertyOf.Name))
		}
		if p.Domain != nil {
			fmt.Fprintf(&w.sb, "ObjectPropertyDomain(%s %s)\n", fname(name), fname(p.Domain.Name))
		}
		if p.Range != nil {
			fmt.Fprintf(&w.sb, "ObjectPropertyRange(%s %s)\n", fname(name), fname(p.Range.Name))
		}
		if p.InverseOf != nil && name < p.InverseOf.Name {
			// Emit each inverse pair once.
			fmt.Fprintf(&w.sb, "InverseObjectProperties(%s %s)\n", fname(name), fname(p.InverseOf.Name))
		}
	}
	w.sb.WriteString("\n")

	for _, name := range w.o.Classes() {
		c, _ := w.o.Class(name)
		fmt.Fprintf(&w.sb, "Declaration(Class(%s))\n", fname(name))
		for _, super := range c.Supers {
			for _, s := range fExprList(super) {
				fmt.Fprintf(&w.sb, "SubClassOf(%s %s)\n", fname(name), s)
			}
		}
	}
	w.sb.WriteString("\n")

	for _, set := range w.o.DisjointSets() {
		members := make([]string, 0, len(set))
		for _, c := range set {
			members = append(members, fname(c.Name))
		}
		fmt.Fprintf(&w.sb, "DisjointClasses(%s)\n", strings.Join(members, " "))
	}

	w.sb.WriteString(")\n")
	return w.sb.String()
}

// fname renders a local name as a full IRI reference; band locals carry
// dots that abbreviated names cannot.
func fname(local string) string {
	return "<" + karyotype.Namespace + local + ">"
}

// FExpr renders one class expression in functional-style syntax, wrapping
// multi-filler restrictions in an intersection.
func FExpr(e ontology.Expression) string {
	parts := fExprList(e)
	if len(parts) == 1 {
		return parts[0]
	}
	return "ObjectIntersectionOf(" + strings.Join(parts, " ") + ")"
}

func fExprList(e ontology.Expression) []string {
	switch v := e.(type) {
	case *ontology.Class:
		return []string{fname(v.Name)}
	case *ontology.SomeValues:
		out := make([]string, 0, len(v.Fillers))
		for _, f := range v.Fillers {
			out = append(out, fmt.Sprintf("ObjectSomeValuesFrom(%s %s)", fname(v.Property.Name), FExpr(f)))
		}
		return out
	case *ontology.Cardinality:
		return []string{fmt.Sprintf("ObjectExactCardinality(%d %s %s)", v.N, fname(v.Property.Name), FExpr(v.Filler))}
	case *ontology.Intersection:
		var members []string
		for _, op := range v.Operands {
			members = append(members, fExprList(op)...)
		}
		return []string{"ObjectIntersectionOf(" + strings.Join(members, " ") + ")"}
	}
	return nil
}
