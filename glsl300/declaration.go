// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

// Qualifier values for a Declaration.
const (
	QualifierIn      = "in"
	QualifierOut     = "out"
	QualifierUniform = "uniform"
	QualifierStruct  = "struct"
)

// Sentinel Type values. Any other Type is a built-in GLSL type name.
const (
	// TypeBlock marks a declaration that introduces a brace-delimited
	// group of members (a uniform block or a struct body). Block holds
	// the members.
	TypeBlock = "block"

	// TypeStruct marks a declaration whose type is a previously
	// defined struct, named in StructName.
	TypeStruct = "struct"
)

// Precision qualifier values.
const (
	PrecisionHigh   = "highp"
	PrecisionMedium = "mediump"
	PrecisionLow    = "lowp"
)

// Declaration describes one shader-interface variable or type
// definition.
type Declaration struct {
	// Qualifier is the storage class: "in", "out", "uniform", or
	// "struct" for type definitions.
	Qualifier string `json:"qualifier"`

	// Type is a built-in GLSL type name, TypeBlock or TypeStruct.
	Type string `json:"type"`

	// Name is the declared identifier.
	Name string `json:"name"`

	// Amount is the array length; 1 for non-arrays.
	Amount int `json:"amount"`

	IsInvariant bool `json:"isInvariant"`
	IsCentroid  bool `json:"isCentroid"`

	// Layout is the layout-qualifier payload with all whitespace
	// removed (e.g. "location=0"), or empty when absent.
	Layout string `json:"layout,omitempty"`

	// Precision is "highp", "mediump" or "lowp", or empty when absent.
	Precision string `json:"precision,omitempty"`

	// Block holds the member declarations, in source order, when Type
	// is TypeBlock. Member order is significant for buffer layouts.
	Block []Declaration `json:"block,omitempty"`

	// StructName names the referenced struct when Type is TypeStruct.
	StructName string `json:"structName,omitempty"`
}

// IsInput reports whether the declaration is readable by the shader.
// Everything except "out" variables counts as input.
func (d Declaration) IsInput() bool {
	return d.Qualifier != QualifierOut
}

// IsOutput reports whether the declaration is an "out" variable.
func (d Declaration) IsOutput() bool {
	return d.Qualifier == QualifierOut
}
