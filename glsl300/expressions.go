// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import "strings"

// filterKind selects which expressions of a pass are handed to the
// reader.
type filterKind int

const (
	// filterDeclaration keeps top-level variable declarations.
	filterDeclaration filterKind = iota
	// filterStruct keeps struct type definitions (pre-pass).
	filterStruct
	// filterBlockMember keeps member declarations inside a uniform
	// block or struct body, where the storage qualifier is implied.
	filterBlockMember
)

// splitExpressions splits code on ';' and tokenizes each fragment
// into whitespace-delimited words. Empty fragments are dropped.
func splitExpressions(code string) [][]string {
	fragments := strings.Split(code, ";")
	exprs := make([][]string, 0, len(fragments))
	for _, fragment := range fragments {
		tokens := strings.Fields(fragment)
		if len(tokens) == 0 {
			continue
		}
		exprs = append(exprs, tokens)
	}
	return exprs
}

// matchesStruct reports whether the expression is a struct type
// definition.
func matchesStruct(tokens []string) bool {
	return tokens[0] == QualifierStruct
}

// matchesDeclaration reports whether the expression looks like a
// variable declaration. A bare precision statement ("precision highp
// float") is not a variable; only the longer precision-prefixed
// declaration form passes.
func matchesDeclaration(tokens []string) bool {
	switch tokens[0] {
	case QualifierUniform, QualifierIn, QualifierOut:
		return true
	}
	if strings.Contains(tokens[0], "layout") {
		return true
	}
	return strings.Contains(tokens[0], "precision") && len(tokens) > 3
}

// matches applies the filter of the given kind to one expression.
func (r *reader) matches(kind filterKind, tokens []string) bool {
	switch kind {
	case filterStruct:
		return matchesStruct(tokens)
	case filterBlockMember:
		if matchesDeclaration(tokens) || isBuiltinType(tokens[0]) {
			return true
		}
		_, ok := r.extraTypes[tokens[0]]
		return ok
	default:
		return matchesDeclaration(tokens)
	}
}
