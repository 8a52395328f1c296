package band

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  Kind
	}{
		{"pTer", KindTelomere},
		{"qTer", KindTelomere},
		{"Cen", KindCentromere},
		{"p36.3", KindPBand},
		{"p11.1", KindPBand},
		{"q21", KindQBand},
		{"q42.13", KindQBand},
		// Priority: terminal and centromere markers win over arm letters.
		{"pCen", KindCentromere},
		{"TerQ", KindTelomere},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Classify(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	for _, token := range []string{"z99", "", "36.3", "Ban"} {
		t.Run(token, func(t *testing.T) {
			_, err := Classify(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnrecognizedBandSyntax)
		})
	}
}

func TestArmOf(t *testing.T) {
	arm, err := armOf("pTer")
	require.NoError(t, err)
	assert.Equal(t, ArmP, arm)

	arm, err = armOf("qTer")
	require.NoError(t, err)
	assert.Equal(t, ArmQ, arm)

	_, err = armOf("Ter")
	assert.ErrorIs(t, err, ErrUnrecognizedBandSyntax)
}

func TestNode_FirstLeaf(t *testing.T) {
	n := Container("q42",
		Container("q42.1", Leaf("q42.11"), Leaf("q42.12")),
		Leaf("q42.2"))
	first, ok := n.FirstLeaf()
	require.True(t, ok)
	assert.Equal(t, "q42.11", first)

	_, ok = Node{Token: "p11"}.FirstLeaf()
	assert.True(t, ok, "a leaf is its own first leaf")

	_, ok = Node{}.FirstLeaf()
	assert.False(t, ok)
}
