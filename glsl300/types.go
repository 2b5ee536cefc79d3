// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

// builtinTypes contains the GLSL ES 3.00 type names that may appear
// as the type of an interface declaration.
// Based on the OpenGL ES Shading Language 3.00 specification.
var builtinTypes = map[string]struct{}{
	// Scalar types
	"bool": {}, "int": {}, "uint": {}, "float": {},

	// Vector types
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},

	// Matrix types
	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},

	// Sampler types
	"sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"sampler2DShadow": {}, "samplerCubeShadow": {},
	"sampler2DArray": {}, "sampler2DArrayShadow": {},

	// Integer sampler types
	"isampler2D": {}, "isampler3D": {}, "isamplerCube": {},
	"isampler2DArray": {},

	// Unsigned integer sampler types
	"usampler2D": {}, "usampler3D": {}, "usamplerCube": {},
	"usampler2DArray": {},
}

// isBuiltinType checks if a name is a GLSL ES 3.00 declaration type.
func isBuiltinType(name string) bool {
	_, ok := builtinTypes[name]
	return ok
}

// isPrecision checks if a name is a precision qualifier keyword.
func isPrecision(name string) bool {
	return name == PrecisionHigh || name == PrecisionMedium || name == PrecisionLow
}
