// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import (
	"reflect"
	"testing"
)

func TestExtractParens(t *testing.T) {
	table := &blockTable{}
	got := table.extract("layout(location = 0) in vec4 a;", '(', ')')
	want := "layout(0) in vec4 a;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !reflect.DeepEqual(table.spans, []string{"location = 0"}) {
		t.Errorf("table: got %v", table.spans)
	}
}

func TestExtractSiblingSpans(t *testing.T) {
	table := &blockTable{}
	got := table.extract("f(a) g(b)", '(', ')')
	want := "f(0) g(1)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !reflect.DeepEqual(table.spans, []string{"a", "b"}) {
		t.Errorf("table: got %v", table.spans)
	}
}

func TestExtractBraces(t *testing.T) {
	table := &blockTable{}
	got := table.extract("uniform U { float x; } u;", '{', '}')
	want := "uniform U {0} u;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if table.spans[0] != " float x; " {
		t.Errorf("span: got %q", table.spans[0])
	}
}

func TestExtractSharedTableAcrossPasses(t *testing.T) {
	// One table serves both delimiter passes; indices keep counting.
	table := &blockTable{}
	code := table.extract("layout(std140) uniform U { vec3 v; } u;", '(', ')')
	code = table.extract(code, '{', '}')
	want := "layout(0) uniform U {1} u;"
	if code != want {
		t.Errorf("got %q, want %q", code, want)
	}
}

func TestExtractUnmatchedDelimiter(t *testing.T) {
	table := &blockTable{}
	got := table.extract("f(a", '(', ')')
	if got != "f(a" {
		t.Errorf("got %q, want input unchanged", got)
	}
	if len(table.spans) != 0 {
		t.Errorf("table should stay empty, got %v", table.spans)
	}
}

func TestExtractNestedSameDelimiter(t *testing.T) {
	// A single left-to-right pass: the inner pair is captured, the
	// outer pair is left as it falls.
	table := &blockTable{}
	got := table.extract("{ a { b } c }", '{', '}')
	want := "{ a {0} c }"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if table.spans[0] != " b " {
		t.Errorf("span: got %q", table.spans[0])
	}
}

func TestResolveFollowsIndexChain(t *testing.T) {
	table := &blockTable{}
	table.add("location = 0") // index 0
	table.add("0")            // index 1, wraps index 0

	if got := table.resolve("1"); got != "location = 0" {
		t.Errorf("resolve(1): got %q", got)
	}
	if got := table.resolve("0"); got != "location = 0" {
		t.Errorf("resolve(0): got %q", got)
	}
	if got := table.resolve("std140"); got != "std140" {
		t.Errorf("resolve(std140): got %q", got)
	}
	if got := table.resolve("7"); got != "7" {
		t.Errorf("resolve out of range: got %q", got)
	}
}

func TestLookupRange(t *testing.T) {
	table := &blockTable{}
	table.add("x")
	if _, ok := table.lookup(0); !ok {
		t.Error("lookup(0) should succeed")
	}
	if _, ok := table.lookup(1); ok {
		t.Error("lookup(1) should fail")
	}
	if _, ok := table.lookup(-1); ok {
		t.Error("lookup(-1) should fail")
	}
}
