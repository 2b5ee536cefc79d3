// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import (
	"fmt"
	"strings"
)

// DeclarationError reports an expression that matched a declaration
// filter but could not be resolved into a complete Declaration. Any
// DeclarationError aborts the entire parse; no partial results are
// returned.
type DeclarationError struct {
	Message string
	Expr    string // offending expression, tokens rejoined
}

// Error implements the error interface.
func (e *DeclarationError) Error() string {
	if e.Expr == "" {
		return e.Message
	}
	return fmt.Sprintf("%s in %q", e.Message, e.Expr)
}

// FormatWithContext returns the error message with the offending
// expression on its own marked line.
func (e *DeclarationError) FormatWithContext() string {
	if e.Expr == "" {
		return "error: " + e.Message
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, "  --> %s;\n", e.Expr)
	return sb.String()
}
