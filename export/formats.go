// Package export serializes a built karyotype ontology to standard OWL
// exchange formats.
package export

import (
	"fmt"

	"github.com/cytogenlab/karyonto/ontology"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatFunctional produces OWL 2 functional-style syntax (.ofn).
	FormatFunctional Format = "functional"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatFunctional: {
		Name:        FormatFunctional,
		MIMEType:    "text/owl-functional",
		Extension:   ".ofn",
		Description: "OWL 2 Functional-Style Syntax",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Serialize renders the ontology in the given format.
func Serialize(o *ontology.Ontology, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return NewTurtleWriter(o).String(), nil
	case FormatFunctional:
		return NewFunctionalWriter(o).String(), nil
	}
	return "", fmt.Errorf("unsupported format: %s", format)
}
