// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import "fmt"

// Parse extracts the declared interface of a GLSL ES 3.00 shader from
// its source text.
//
// The extraction pipeline is:
//  1. Strip preprocessor directive lines and comments
//  2. Replace (...) and {...} contents with block-table indices
//  3. Pre-pass over struct definitions to learn user type names
//  4. Main pass over in/out/uniform declarations, recognizing the
//     collected struct names as declaration types
//
// The returned list holds all variable declarations in source order,
// followed by all struct type definitions in source order. Parse
// fails, returning no partial results, if any declaration-shaped
// expression cannot be resolved into a complete Declaration.
func Parse(source string) ([]Declaration, error) {
	sanitized := sanitize(source)
	r := &reader{blocks: &blockTable{}}

	structs, err := r.pass(sanitized, filterStruct, "")
	if err != nil {
		return nil, fmt.Errorf("struct definitions: %w", err)
	}

	extra := make(map[string]struct{}, len(structs))
	for _, s := range structs {
		extra[s.Name] = struct{}{}
	}
	r.extraTypes = extra

	decls, err := r.pass(sanitized, filterDeclaration, "")
	if err != nil {
		return nil, fmt.Errorf("declarations: %w", err)
	}

	return append(decls, structs...), nil
}
