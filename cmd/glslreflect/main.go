// Command glslreflect extracts the declared interface of GLSL ES 3.00
// shaders.
//
// Usage:
//
//	glslreflect extract shader.vert            # interface as JSON
//	glslreflect extract --pretty *.frag        # indented JSON
//	glslreflect extract --json=false shader.vert
//	glslreflect watch shader.vert              # re-extract on change
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
