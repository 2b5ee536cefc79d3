// Package glslreflect extracts the declared interface of GLSL ES 3.00
// (WebGL2) shaders.
//
// glslreflect reads the `in`, `out` and `uniform` variables, uniform
// block members and `struct` type definitions of a shader from its
// source text, producing one structured record per declaration.
// Consumers use the records to generate host-side bindings (attribute
// and uniform locations, buffer layouts) without hand-maintaining a
// shader's interface description.
//
// Example usage:
//
//	source := `#version 300 es
//	layout(location = 0) in vec4 position;
//	uniform mat4 projection;
//	out vec2 uv;
//	`
//	decls, err := glslreflect.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range decls {
//	    fmt.Println(d.Qualifier, d.Type, d.Name)
//	}
//
// The extractor targets declarations only: function bodies,
// expressions and preprocessor macros are ignored, and macros are
// never expanded. For the pipeline details, see the glsl300 package.
package glslreflect

import "github.com/gogpu/glslreflect/glsl300"

// Declaration describes one shader-interface variable or type
// definition. See glsl300.Declaration for field documentation.
type Declaration = glsl300.Declaration

// Parse extracts the declared interface of a GLSL ES 3.00 shader.
//
// The returned list holds all variable declarations in source order,
// followed by all struct type definitions in source order. Parse
// fails, returning no partial results, if any declaration-shaped
// expression cannot be resolved into a complete record.
func Parse(source string) ([]Declaration, error) {
	return glsl300.Parse(source)
}

// IsInputVariable reports whether the declaration is readable by the
// shader. Everything except "out" variables counts as input.
func IsInputVariable(d Declaration) bool {
	return d.IsInput()
}

// IsOutputVariable reports whether the declaration is an "out"
// variable.
func IsOutputVariable(d Declaration) bool {
	return d.IsOutput()
}
