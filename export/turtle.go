package export

import (
	"fmt"
	"strings"

	"github.com/cytogenlab/karyonto/ontology"
	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// TurtleWriter renders an ontology as Turtle. Classes and properties are
// written in declaration order so output is deterministic across builds.
type TurtleWriter struct {
	o        *ontology.Ontology
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a Turtle writer over a built ontology with the
// default prefixes.
func NewTurtleWriter(o *ontology.Ontology) *TurtleWriter {
	return &TurtleWriter{o: o, prefixes: defaultPrefixes()}
}

func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
		"owl":  "http://www.w3.org/2002/07/owl#",
		"xsd":  "http://www.w3.org/2001/XMLSchema#",
		"kary": karyotype.Namespace,
	}
}

// String renders the full ontology.
func (w *TurtleWriter) String() string {
	w.sb.Reset()
	w.writePrefixes()
	w.writeHeader()
	w.writeProperties()
	w.writeClasses()
	w.writeDisjoints()
	return w.sb.String()
}

func (w *TurtleWriter) writePrefixes() {
	// Fixed order keeps output diffable.
	for _, prefix := range []string{"rdf", "rdfs", "owl", "xsd", "kary"} {
		fmt.Fprintf(&w.sb, "@prefix %s: <%s> .\n", prefix, w.prefixes[prefix])
	}
	w.sb.WriteString("\n")
}

func (w *TurtleWriter) writeHeader() {
	fmt.Fprintf(&w.sb, "<%s> a owl:Ontology ;\n", w.o.IRI())
	fmt.Fprintf(&w.sb, "    owl:versionInfo %q .\n\n", w.o.Version())
}

func (w *TurtleWriter) writeProperties() {
	for _, name := range w.o.Properties() {
		p, _ := w.o.Property(name)
		fmt.Fprintf(&w.sb, "%s a owl:ObjectProperty", iri(name))
		if p.SubPropertyOf != nil {
			fmt.Fprintf(&w.sb, " ;\n    rdfs:subPropertyOf %s", iri(p.SubPropertyOf.Name))
		}
		if p.Domain != nil {
			fmt.Fprintf(&w.sb, " ;\n    rdfs:domain %s", iri(p.Domain.Name))
		}
		if p.Range != nil {
			fmt.Fprintf(&w.sb, " ;\n    rdfs:range %s", iri(p.Range.Name))
		}
		if p.InverseOf != nil {
			fmt.Fprintf(&w.sb, " ;\n    owl:inverseOf %s", iri(p.InverseOf.Name))
		}
		w.sb.WriteString(" .\n")
	}
	w.sb.WriteString("\n")
}

func (w *TurtleWriter) writeClasses() {
	for _, name := range w.o.Classes() {
		c, _ := w.o.Class(name)
		fmt.Fprintf(&w.sb, "%s a owl:Class", iri(name))
		var objects []string
		for _, super := range c.Supers {
			objects = append(objects, exprObjects(super)...)
		}
		if len(objects) > 0 {
			fmt.Fprintf(&w.sb, " ;\n    rdfs:subClassOf %s", strings.Join(objects, " ,\n        "))
		}
		w.sb.WriteString(" .\n")
	}
	w.sb.WriteString("\n")
}

func (w *TurtleWriter) writeDisjoints() {
	for _, set := range w.o.DisjointSets() {
		members := make([]string, 0, len(set))
		for _, c := range set {
			members = append(members, iri(c.Name))
		}
		fmt.Fprintf(&w.sb, "[] a owl:AllDisjointClasses ;\n    owl:members ( %s ) .\n", strings.Join(members, " "))
	}
}

// iri renders a local class or property name as a full IRI reference.
// Band locals carry dots, which prefixed names handle poorly, so full IRIs
// are used throughout.
func iri(local string) string {
	return "<" + karyotype.Namespace + local + ">"
}

// exprObjects renders a class expression as one or more Turtle objects. A
// multi-filler existential restriction stands for the conjunction of one
// restriction per filler, so it expands to several objects.
func exprObjects(e ontology.Expression) []string {
	switch v := e.(type) {
	case *ontology.Class:
		return []string{iri(v.Name)}
	case *ontology.SomeValues:
		out := make([]string, 0, len(v.Fillers))
		for _, f := range v.Fillers {
			out = append(out, fmt.Sprintf("[ a owl:Restriction ; owl:onProperty %s ; owl:someValuesFrom %s ]",
				iri(v.Property.Name), exprObject(f)))
		}
		return out
	case *ontology.Cardinality:
		return []string{fmt.Sprintf(
			"[ a owl:Restriction ; owl:onProperty %s ; owl:qualifiedCardinality \"%d\"^^xsd:nonNegativeInteger ; owl:onClass %s ]",
			iri(v.Property.Name), v.N, exprObject(v.Filler))}
	case *ontology.Intersection:
		var members []string
		for _, op := range v.Operands {
			members = append(members, exprObjects(op)...)
		}
		return []string{fmt.Sprintf("[ a owl:Class ; owl:intersectionOf ( %s ) ]", strings.Join(members, " "))}
	}
	return nil
}

// exprObject renders an expression as exactly one Turtle object, wrapping
// multi-part expressions in an intersection.
func exprObject(e ontology.Expression) string {
	objects := exprObjects(e)
	if len(objects) == 1 {
		return objects[0]
	}
	return fmt.Sprintf("[ a owl:Class ; owl:intersectionOf ( %s ) ]", strings.Join(objects, " "))
}
