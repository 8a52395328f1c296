package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareClass_Idempotent(t *testing.T) {
	o := New("https://example.org/test", "test")

	a := o.DeclareClass("A")
	again := o.DeclareClass("A")
	assert.Same(t, a, again)
	assert.Equal(t, []string{"A"}, o.Classes())
}

func TestDeclareClassWith_AppendsNewSupers(t *testing.T) {
	o := New("https://example.org/test", "test")

	root := o.DeclareClass("Root")
	a := o.DeclareClassWith("A", root)
	o.DeclareClassWith("A", root) // duplicate superclass ignored
	require.Len(t, a.Supers, 1)

	other := o.DeclareClass("Other")
	o.DeclareClassWith("A", other)
	assert.Len(t, a.Supers, 2)
}

func TestIsSubclassOf_Transitive(t *testing.T) {
	o := New("https://example.org/test", "test")

	root := o.DeclareClass("Root")
	mid := o.DeclareClassWith("Mid", root)
	leaf := o.DeclareClassWith("Leaf", mid)
	_ = leaf

	assert.True(t, o.IsSubclassOf("Leaf", "Mid"))
	assert.True(t, o.IsSubclassOf("Leaf", "Root"))
	assert.True(t, o.IsSubclassOf("Leaf", "Leaf"))
	assert.False(t, o.IsSubclassOf("Root", "Leaf"))
	assert.False(t, o.IsSubclassOf("Missing", "Root"))
}

func TestIsSubclassOf_IgnoresRestrictions(t *testing.T) {
	o := New("https://example.org/test", "test")

	root := o.DeclareClass("Root")
	p := o.DeclareObjectProperty("rel", PropertyOptions{})
	o.DeclareClassWith("A", Some(p, root))

	assert.False(t, o.IsSubclassOf("A", "Root"))
}

func TestAssertDisjoint(t *testing.T) {
	o := New("https://example.org/test", "test")

	a := o.DeclareClass("A")
	b := o.DeclareClass("B")
	c := o.DeclareClass("C")
	o.AssertDisjoint(a, b, c)
	o.AssertDisjoint(a) // ignored: below pair size

	assert.True(t, o.AreDisjoint("A", "B"))
	assert.True(t, o.AreDisjoint("B", "C"))
	assert.False(t, o.AreDisjoint("A", "A"))
	assert.False(t, o.AreDisjoint("A", "D"))
	assert.Len(t, o.DisjointSets(), 1)
}

func TestDeclareObjectProperty_InverseLinking(t *testing.T) {
	o := New("https://example.org/test", "test")

	isPart := o.DeclareObjectProperty("isPartOf", PropertyOptions{})
	hasPart := o.DeclareObjectProperty("hasPart", PropertyOptions{InverseOf: isPart})

	assert.Same(t, hasPart, isPart.InverseOf)
	assert.Same(t, isPart, hasPart.InverseOf)
	assert.Equal(t, []string{"isPartOf", "hasPart"}, o.Properties())
}

func TestDirectSubclasses(t *testing.T) {
	o := New("https://example.org/test", "test")

	root := o.DeclareClass("Root")
	o.DeclareClassWith("A", root)
	o.DeclareClassWith("B", root)
	mid := o.DeclareClassWith("Mid", root)
	o.DeclareClassWith("C", mid)

	assert.Equal(t, []string{"A", "B", "Mid"}, o.DirectSubclasses("Root"))
	assert.Equal(t, []string{"C"}, o.DirectSubclasses("Mid"))
}

func TestExpressionRender(t *testing.T) {
	o := New("https://example.org/test", "test")

	a := o.DeclareClass("A")
	b := o.DeclareClass("B")
	p := o.DeclareObjectProperty("rel", PropertyOptions{})

	assert.Equal(t, "ObjectSomeValuesFrom(rel A)", Some(p, a).Render())
	assert.Equal(t, "ObjectSomeValuesFrom(rel A) ObjectSomeValuesFrom(rel B)", Some(p, a, b).Render())
	assert.Equal(t, "ObjectExactCardinality(3 rel A)", Exactly(3, p, a).Render())
	assert.Equal(t, "ObjectIntersectionOf(A B)", And(a, b).Render())
}
