package band

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ChromosomeSpec is one chromosome's band specification as loaded from a
// YAML spec file.
type ChromosomeSpec struct {
	// Number is the ISCN chromosome number: "1".."22", "X", "Y".
	Number string `yaml:"chromosome"`

	// Bands is the ordered band tree, p telomere through q telomere.
	Bands []Node `yaml:"-"`
}

// specDocument is the raw YAML shape of a band spec file. The band list is
// decoded manually: a scalar item is a leaf, a single-key mapping is a
// container whose value sequence holds the children.
type specDocument struct {
	Chromosome string    `yaml:"chromosome"`
	Bands      yaml.Node `yaml:"bands"`
}

// LoadSpecFile parses one YAML band specification file.
func LoadSpecFile(path string) (ChromosomeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChromosomeSpec{}, fmt.Errorf("read band spec: %w", err)
	}

	var doc specDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ChromosomeSpec{}, fmt.Errorf("parse band spec %s: %w", path, err)
	}
	if doc.Chromosome == "" {
		return ChromosomeSpec{}, fmt.Errorf("band spec %s: chromosome is required", path)
	}

	bands, err := decodeBandList(&doc.Bands)
	if err != nil {
		return ChromosomeSpec{}, fmt.Errorf("band spec %s: %w", path, err)
	}
	if len(bands) == 0 {
		return ChromosomeSpec{}, fmt.Errorf("band spec %s: bands list is empty", path)
	}

	return ChromosomeSpec{Number: doc.Chromosome, Bands: bands}, nil
}

// LoadSpecDir loads every *.yaml / *.yml band spec under dir, including
// nested directories, in sorted path order.
func LoadSpecDir(dir string) ([]ChromosomeSpec, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*.{yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("glob band specs in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no band spec files under %s", dir)
	}
	sort.Strings(matches)

	specs := make([]ChromosomeSpec, 0, len(matches))
	for _, m := range matches {
		spec, err := LoadSpecFile(filepath.Join(dir, m))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// BuildFromSpecs builds the listed chromosomes in the given order and
// finalizes cross-chromosome disjointness.
func (b *Builder) BuildFromSpecs(specs []ChromosomeSpec) error {
	for _, spec := range specs {
		if err := b.BuildChromosome(spec.Number, spec.Bands); err != nil {
			return err
		}
	}
	b.FinalizeDisjointness()
	return nil
}

func decodeBandList(n *yaml.Node) ([]Node, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("bands must be a sequence, got %s at line %d", yamlKind(n.Kind), n.Line)
	}
	out := make([]Node, 0, len(n.Content))
	for _, item := range n.Content {
		node, err := decodeBandNode(item)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func decodeBandNode(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return Node{}, fmt.Errorf("empty band token at line %d", n.Line)
		}
		return Leaf(n.Value), nil

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return Node{}, fmt.Errorf("band container must have exactly one label at line %d", n.Line)
		}
		label := n.Content[0]
		if label.Kind != yaml.ScalarNode || label.Value == "" {
			return Node{}, fmt.Errorf("band container label must be a token at line %d", n.Line)
		}
		children, err := decodeBandList(n.Content[1])
		if err != nil {
			return Node{}, err
		}
		if len(children) == 0 {
			return Node{}, fmt.Errorf("band container %q has no children at line %d", label.Value, n.Line)
		}
		return Node{Token: label.Value, Children: children}, nil
	}
	return Node{}, fmt.Errorf("band entry must be a token or a container mapping at line %d", n.Line)
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
