// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

// validate promotes a fully-populated accumulator to an immutable
// Declaration, or rejects it. Rejection of any declaration aborts the
// entire parse.
func validate(p *partial) (Declaration, error) {
	switch p.qualifier {
	case QualifierIn, QualifierOut, QualifierUniform, QualifierStruct:
	case "":
		return Declaration{}, p.errf("missing qualifier")
	default:
		return Declaration{}, p.errf("invalid qualifier %q", p.qualifier)
	}

	switch {
	case p.typ == TypeBlock, p.typ == TypeStruct, isBuiltinType(p.typ):
	case p.typ == "":
		return Declaration{}, p.errf("missing type")
	default:
		return Declaration{}, p.errf("invalid type %q", p.typ)
	}

	if p.name == "" {
		return Declaration{}, p.errf("missing name")
	}
	if p.amount < 1 {
		return Declaration{}, p.errf("array size %d is not positive", p.amount)
	}
	if p.precision != "" && !isPrecision(p.precision) {
		return Declaration{}, p.errf("invalid precision %q", p.precision)
	}
	if p.typ == TypeStruct && p.structName == "" {
		return Declaration{}, p.errf("missing struct type name")
	}
	if p.typ == TypeBlock && p.block == nil {
		return Declaration{}, p.errf("missing block members")
	}

	return Declaration{
		Qualifier:   p.qualifier,
		Type:        p.typ,
		Name:        p.name,
		Amount:      p.amount,
		IsInvariant: p.invariant,
		IsCentroid:  p.centroid,
		Layout:      p.layout,
		Precision:   p.precision,
		Block:       p.block,
		StructName:  p.structName,
	}, nil
}
