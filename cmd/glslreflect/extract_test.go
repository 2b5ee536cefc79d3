package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/glslreflect/glsl300"
)

func TestRunExtractJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runExtract(&buf, []string{"testdata/triangle.vert"}, true, false); err != nil {
		t.Fatalf("runExtract failed: %v", err)
	}

	var decls []glsl300.Declaration
	if err := json.Unmarshal(buf.Bytes(), &decls); err != nil {
		t.Fatalf("output is not a declaration list: %v", err)
	}

	want := []string{"position", "texcoord", "projection", "vUV"}
	if len(decls) != len(want) {
		t.Fatalf("expected %d declarations, got %d", len(want), len(decls))
	}
	for i, name := range want {
		if decls[i].Name != name {
			t.Errorf("declaration %d: got %q, want %q", i, decls[i].Name, name)
		}
	}
	if decls[0].Layout != "location=0" {
		t.Errorf("layout: got %q, want %q", decls[0].Layout, "location=0")
	}
}

func TestRunExtractText(t *testing.T) {
	var buf bytes.Buffer
	if err := runExtract(&buf, []string{"testdata/triangle.vert"}, false, false); err != nil {
		t.Fatalf("runExtract failed: %v", err)
	}

	out := buf.String()
	for _, line := range []string{
		"testdata/triangle.vert:",
		"in vec4 position",
		"uniform mat4 projection",
		"out vec2 vUV",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestRunExtractMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := runExtract(&buf, []string{"testdata/nope.vert"}, true, false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractCommandOutFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "iface.json")
	root := newRootCmd()
	root.SetArgs([]string{"extract", "-o", outPath, "testdata/triangle.vert"})
	if err := root.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	var decls []glsl300.Declaration
	if err := json.Unmarshal(data, &decls); err != nil {
		t.Fatalf("output file is not a declaration list: %v", err)
	}
	if len(decls) != 4 {
		t.Errorf("expected 4 declarations, got %d", len(decls))
	}
}

func TestExtractCommand(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"extract", "testdata/triangle.vert"})
	if err := root.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\"position\"") {
		t.Errorf("expected JSON output mentioning position, got:\n%s", buf.String())
	}
}
