// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl300 extracts the declared interface of a GLSL ES 3.00
// (WebGL2) shader from its source text.
//
// The extractor reads `in`, `out` and `uniform` variables, uniform
// block members and `struct` type definitions, and returns one
// structured Declaration per declaration found. It deliberately does
// not parse the full GLSL grammar: function bodies, expressions and
// preprocessor macros are ignored.
//
// # Components
//
// The package consists of several components, run in order by Parse:
//
//   - Sanitizer: removes preprocessor directive lines and comments
//   - Block extractor: replaces (...) and {...} contents with indices
//     into a side table, so later stages see flat token streams
//   - Expression splitter: splits on ';' and keeps only
//     declaration-shaped statements
//   - Reader: classifies the tokens of one statement into a
//     Declaration, recursing into uniform-block and struct bodies
//
// # Usage
//
// To extract a shader interface:
//
//	source := `#version 300 es
//	layout(location = 0) in vec4 position;
//	uniform mat4 projection;
//	out vec2 uv;
//	`
//
//	decls, err := glsl300.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Struct type definitions are appended after all variable
// declarations, each with Qualifier "struct" and its members in Block.
//
// # Limitations
//
//   - Only version-300-style declarations are recognized.
//   - Macros are stripped, never expanded: an array sized by a #define
//     constant fails to parse.
//   - Qualifier combinations are not validated against the GLSL
//     specification; the extractor trusts well-formed input.
package glsl300
