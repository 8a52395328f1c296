package ontology

import "fmt"

// Ontology is the owned builder context for one knowledge base. All
// declarations made while building the karyotype hierarchy and the event
// vocabulary go through a single Ontology value threaded explicitly through
// the builders.
type Ontology struct {
	iri     string
	version string

	classes    map[string]*Class
	classOrder []string

	properties map[string]*Property
	propOrder  []string

	disjoints [][]*Class
}

// New creates an empty ontology with the given ontology IRI and version
// annotation.
func New(iri, version string) *Ontology {
	return &Ontology{
		iri:        iri,
		version:    version,
		classes:    make(map[string]*Class),
		properties: make(map[string]*Property),
	}
}

// IRI returns the ontology IRI.
func (o *Ontology) IRI() string { return o.iri }

// Version returns the version annotation.
func (o *Ontology) Version() string { return o.version }

// DeclareClass declares a named class with no superclasses. Declaring an
// existing name returns the existing handle unchanged.
func (o *Ontology) DeclareClass(name string) *Class {
	if c, ok := o.classes[name]; ok {
		return c
	}
	c := &Class{Name: name}
	o.classes[name] = c
	o.classOrder = append(o.classOrder, name)
	return c
}

// DeclareClassWith declares a named class with the given superclass
// expressions. Declaring an existing name appends any superclasses not yet
// asserted on it.
func (o *Ontology) DeclareClassWith(name string, supers ...Expression) *Class {
	c := o.DeclareClass(name)
	for _, s := range supers {
		if !hasSuper(c, s) {
			c.Supers = append(c.Supers, s)
		}
	}
	return c
}

func hasSuper(c *Class, s Expression) bool {
	for _, existing := range c.Supers {
		if existing == s {
			return true
		}
		en, eok := existing.(*Class)
		sn, sok := s.(*Class)
		if eok && sok && en.Name == sn.Name {
			return true
		}
	}
	return false
}

// PropertyOptions configures an object property declaration. All fields
// are optional.
type PropertyOptions struct {
	Domain        *Class
	Range         *Class
	SubPropertyOf *Property
	InverseOf     *Property
}

// DeclareObjectProperty declares a named object property. Declaring an
// existing name returns the existing handle unchanged.
func (o *Ontology) DeclareObjectProperty(name string, opts PropertyOptions) *Property {
	if p, ok := o.properties[name]; ok {
		return p
	}
	p := &Property{
		Name:          name,
		Domain:        opts.Domain,
		Range:         opts.Range,
		SubPropertyOf: opts.SubPropertyOf,
		InverseOf:     opts.InverseOf,
	}
	if opts.InverseOf != nil && opts.InverseOf.InverseOf == nil {
		opts.InverseOf.InverseOf = p
	}
	o.properties[name] = p
	o.propOrder = append(o.propOrder, name)
	return p
}

// AssertDisjoint records the given classes as pairwise disjoint. Sets of
// fewer than two classes are ignored.
func (o *Ontology) AssertDisjoint(classes ...*Class) {
	if len(classes) < 2 {
		return
	}
	set := make([]*Class, len(classes))
	copy(set, classes)
	o.disjoints = append(o.disjoints, set)
}

// Class returns the declared class with the given name.
func (o *Ontology) Class(name string) (*Class, bool) {
	c, ok := o.classes[name]
	return c, ok
}

// Property returns the declared object property with the given name.
func (o *Ontology) Property(name string) (*Property, bool) {
	p, ok := o.properties[name]
	return p, ok
}

// MustClass returns the declared class with the given name and panics if
// it is missing. Reserved for identifiers the caller itself declared.
func (o *Ontology) MustClass(name string) *Class {
	c, ok := o.classes[name]
	if !ok {
		panic(fmt.Sprintf("ontology: class %q not declared", name))
	}
	return c
}

// Classes returns all declared class names in declaration order.
func (o *Ontology) Classes() []string {
	out := make([]string, len(o.classOrder))
	copy(out, o.classOrder)
	return out
}

// Properties returns all declared property names in declaration order.
func (o *Ontology) Properties() []string {
	out := make([]string, len(o.propOrder))
	copy(out, o.propOrder)
	return out
}

// DisjointSets returns every asserted disjointness set.
func (o *Ontology) DisjointSets() [][]*Class {
	out := make([][]*Class, len(o.disjoints))
	copy(out, o.disjoints)
	return out
}

// AreDisjoint reports whether a and b appear together in any asserted
// disjointness set.
func (o *Ontology) AreDisjoint(a, b string) bool {
	if a == b {
		return false
	}
	for _, set := range o.disjoints {
		var foundA, foundB bool
		for _, c := range set {
			if c.Name == a {
				foundA = true
			}
			if c.Name == b {
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// IsSubclassOf reports whether candidate is ancestor or a transitive named
// subclass of ancestor. Only named superclasses participate; restriction
// superclasses carry no subsumption here.
func (o *Ontology) IsSubclassOf(candidate, ancestor string) bool {
	if candidate == ancestor {
		return o.classes[candidate] != nil
	}
	start, ok := o.classes[candidate]
	if !ok {
		return false
	}
	seen := map[string]bool{start.Name: true}
	queue := []*Class{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, s := range cur.Supers {
			named, isNamed := s.(*Class)
			if !isNamed || seen[named.Name] {
				continue
			}
			if named.Name == ancestor {
				return true
			}
			seen[named.Name] = true
			queue = append(queue, named)
		}
	}
	return false
}

// DirectSubclasses returns the names of classes that assert name as a
// direct named superclass, in declaration order.
func (o *Ontology) DirectSubclasses(name string) []string {
	var out []string
	for _, cn := range o.classOrder {
		c := o.classes[cn]
		for _, s := range c.Supers {
			if named, ok := s.(*Class); ok && named.Name == name {
				out = append(out, cn)
				break
			}
		}
	}
	return out
}
