package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytogenlab/karyonto/band"
	"github.com/cytogenlab/karyonto/ontology"
)

func newTestPatterns(t *testing.T) *Patterns {
	t.Helper()
	o := ontology.New("https://example.org/karyotype-test", "test")
	b := band.NewBuilder(o)
	require.NoError(t, b.BuildChromosome("1", band.HumanBandSpecs["1"]))
	require.NoError(t, b.BuildChromosome("5", band.HumanBandSpecs["5"]))
	return New(b)
}

func TestTarget(t *testing.T) {
	p := newTestPatterns(t)

	chrom, err := p.Target("HumanChromosome1")
	require.NoError(t, err)
	assert.Equal(t, TargetChromosome, chrom.Kind)

	bnd, err := p.Target("HumanChromosome1Bandp36.3")
	require.NoError(t, err)
	assert.Equal(t, TargetBand, bnd.Kind)

	_, err = p.Target("Event")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEventArgument)

	_, err = p.Target("NeverDeclared")
	assert.ErrorIs(t, err, ErrInvalidEventArgument)
}

func TestAddition(t *testing.T) {
	p := newTestPatterns(t)

	chrom, err := p.Target("HumanChromosome1")
	require.NoError(t, err)
	expr, err := p.Addition(1, chrom)
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectExactCardinality(1 hasEvent ObjectIntersectionOf(Addition HumanChromosome1))",
		expr.Render())

	bnd, err := p.Target("HumanChromosome1Bandq21.1")
	require.NoError(t, err)
	expr, err = p.Addition(2, bnd)
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectExactCardinality(2 hasEvent ObjectIntersectionOf(Addition ObjectSomeValuesFrom(hasBreakPoint HumanChromosome1Bandq21.1)))",
		expr.Render())
}

func TestAddition_ExistentialWhenNoCardinality(t *testing.T) {
	p := newTestPatterns(t)
	bnd, err := p.Target("HumanChromosome1Bandq21.1")
	require.NoError(t, err)

	expr, err := p.Addition(0, bnd)
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectSomeValuesFrom(hasEvent ObjectIntersectionOf(Addition ObjectSomeValuesFrom(hasBreakPoint HumanChromosome1Bandq21.1)))",
		expr.Render())
}

func TestDeletion_TerminalInfersTelomere(t *testing.T) {
	p := newTestPatterns(t)
	bnd, err := p.Target("HumanChromosome1Bandq21.1")
	require.NoError(t, err)

	expr, err := p.Deletion(1, bnd)
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectExactCardinality(1 hasEvent ObjectIntersectionOf(Deletion "+
			"ObjectSomeValuesFrom(hasBreakPoint HumanChromosome1Bandq21.1) "+
			"ObjectSomeValuesFrom(hasBreakPoint HumanChromosome1BandqTer)))",
		expr.Render())
}

func TestDeletion_InterstitialVerbatim(t *testing.T) {
	p := newTestPatterns(t)
	bnd, err := p.Target("HumanChromosome1Bandq21.1")
	require.NoError(t, err)

	expr, err := p.Deletion(1, bnd, "HumanChromosome1Bandq23")
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectExactCardinality(1 hasEvent ObjectIntersectionOf(Deletion "+
			"ObjectSomeValuesFrom(hasBreakPoint HumanChromosome1Bandq21.1) "+
			"ObjectSomeValuesFrom(hasBreakPoint HumanChromosome1Bandq23)))",
		expr.Render())
}

func TestDeletion_WholeChromosome(t *testing.T) {
	p := newTestPatterns(t)
	chrom, err := p.Target("HumanChromosome5")
	require.NoError(t, err)

	expr, err := p.Deletion(1, chrom)
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectExactCardinality(1 hasEvent ObjectIntersectionOf(Deletion HumanChromosome5))",
		expr.Render())

	_, err = p.Deletion(1, chrom, "HumanChromosome1Bandq23")
	assert.ErrorIs(t, err, ErrArity)
}

func TestDeletion_TooManyBands(t *testing.T) {
	p := newTestPatterns(t)
	bnd, err := p.Target("HumanChromosome1Bandq21.1")
	require.NoError(t, err)

	_, err = p.Deletion(1, bnd, "HumanChromosome1Bandq23", "HumanChromosome1Bandq24")
	assert.ErrorIs(t, err, ErrArity)
}

func TestInversion_NeverInfersTelomere(t *testing.T) {
	p := newTestPatterns(t)

	expr, err := p.Inversion(1, "HumanChromosome1Bandp13", "HumanChromosome1Bandq21.1")
	require.NoError(t, err)
	rendered := expr.Render()
	assert.Contains(t, rendered, "Inversion")
	assert.Contains(t, rendered, "HumanChromosome1Bandp13")
	assert.Contains(t, rendered, "HumanChromosome1Bandq21.1")
	assert.NotContains(t, rendered, "Ter")
}

func TestFission(t *testing.T) {
	p := newTestPatterns(t)

	expr, err := p.Fission(1, "HumanChromosome5Bandq14.1")
	require.NoError(t, err)
	assert.Equal(t,
		"ObjectExactCardinality(1 hasEvent ObjectIntersectionOf(Fission "+
			"ObjectSomeValuesFrom(hasBreakPoint HumanChromosome5Bandq14.1) "+
			"ObjectSomeValuesFrom(hasBreakPoint HumanChromosome5BandqTer)))",
		expr.Render())
}

func TestDuplicationFamily(t *testing.T) {
	p := newTestPatterns(t)
	b1, b2 := "HumanChromosome1Bandq22", "HumanChromosome1Bandq25"

	expr, err := p.Duplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "Duplication")

	expr, err = p.DirectDuplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "DirectDuplication")
	assert.Contains(t, expr.Render(), "hasDirectEvent")

	expr, err = p.InverseDuplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "InverseDuplication")
	assert.Contains(t, expr.Render(), "hasInverseEvent")

	expr, err = p.Quadruplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "Quadruplication")

	expr, err = p.Triplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "Triplication")

	expr, err = p.DirectTriplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "DirectTriplication")

	expr, err = p.InverseTriplication(1, b1, b2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "InverseTriplication")
}

func TestDuplication_RejectsChromosome(t *testing.T) {
	p := newTestPatterns(t)
	_, err := p.Duplication(1, "HumanChromosome1", "HumanChromosome1Bandq25")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEventArgument)
}

func TestInsertionFamily(t *testing.T) {
	p := newTestPatterns(t)
	receive := "HumanChromosome1Bandp13"
	p1, p2 := "HumanChromosome5Bandq14.1", "HumanChromosome5Bandq21.3"

	expr, err := p.Insertion(1, receive, p1, p2)
	require.NoError(t, err)
	rendered := expr.Render()
	assert.Contains(t, rendered, "ObjectSomeValuesFrom(hasReceivingBreakPoint HumanChromosome1Bandp13)")
	assert.Contains(t, rendered, "ObjectSomeValuesFrom(hasProvidingBreakPoint HumanChromosome5Bandq14.1)")
	assert.Contains(t, rendered, "ObjectSomeValuesFrom(hasProvidingBreakPoint HumanChromosome5Bandq21.3)")

	expr, err = p.DirectInsertion(1, receive, p1, p2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "DirectInsertion")

	expr, err = p.InverseInsertion(1, receive, p1, p2)
	require.NoError(t, err)
	assert.Contains(t, expr.Render(), "InverseInsertion")
}

func TestTranslocation_TwoGroupsCyclic(t *testing.T) {
	p := newTestPatterns(t)

	expr, err := p.Translocation(1,
		[]string{"HumanChromosome1Bandq21.1"},
		[]string{"HumanChromosome5Bandq14.1", "HumanChromosome5Bandq21.3"})
	require.NoError(t, err)
	rendered := expr.Render()

	// Group 1 had one band: its telomere is inferred as the pair's second
	// breakpoint.
	assert.Contains(t, rendered,
		"ObjectSomeValuesFrom(hasReceivingBreakPoint HumanChromosome1Bandq21.1) "+
			"ObjectSomeValuesFrom(hasReceivingBreakPoint HumanChromosome1BandqTer)")
	// Group 1 provides toward group 2's pair.
	assert.Contains(t, rendered,
		"ObjectSomeValuesFrom(hasProvidingBreakPoint HumanChromosome5Bandq14.1) "+
			"ObjectSomeValuesFrom(hasProvidingBreakPoint HumanChromosome5Bandq21.3)")
	// Group 2 receives at its own pair and wraps around to group 1.
	assert.Contains(t, rendered,
		"ObjectSomeValuesFrom(hasReceivingBreakPoint HumanChromosome5Bandq14.1)")
	assert.Contains(t, rendered,
		"ObjectSomeValuesFrom(hasProvidingBreakPoint HumanChromosome1Bandq21.1) "+
			"ObjectSomeValuesFrom(hasProvidingBreakPoint HumanChromosome1BandqTer)")
	assert.Contains(t, rendered, "Translocation")
}

func TestTranslocation_Arity(t *testing.T) {
	p := newTestPatterns(t)

	_, err := p.Translocation(1, []string{"HumanChromosome1Bandq21.1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArity)

	_, err = p.Translocation(1,
		[]string{"HumanChromosome1Bandq21.1"},
		[]string{"HumanChromosome5Bandq14.1", "HumanChromosome5Bandq21.3", "HumanChromosome5Bandq23.1"})
	assert.ErrorIs(t, err, ErrArity)
}
