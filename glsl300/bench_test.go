// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import "testing"

// ---------------------------------------------------------------------------
// Shader sources for extraction benchmarks
// ---------------------------------------------------------------------------

const benchSmall = `#version 300 es
layout(location = 0) in vec4 position;
uniform mat4 projection;
out vec2 uv;
`

const benchMedium = `#version 300 es
precision highp float;

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 texcoord;

struct Light {
	vec3 position;
	vec3 color;
	float intensity;
};

layout(std140) uniform Scene {
	mat4 projection;
	mat4 view;
	Light lights[4];
} scene;

uniform sampler2D albedo;
uniform sampler2D normalMap;

out vec2 vUV;
out vec3 vNormal;
`

func BenchmarkParseSmall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchSmall); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMedium(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchMedium); err != nil {
			b.Fatal(err)
		}
	}
}
