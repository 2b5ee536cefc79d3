// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import "strings"

// sanitize strips comments and preprocessor directive lines from the
// source. Comments are erased first so a directive hidden inside a
// block comment never survives, and a trailing line comment never
// keeps a directive line alive.
func sanitize(source string) string {
	return stripDirectives(stripComments(source))
}

// stripComments erases line comments ("//" to end of line) and block
// comments ("/*" to "*/", possibly spanning lines). Newlines inside a
// block comment are preserved so directive-line detection still sees
// the original line structure. GLSL has no string literals, so the
// delimiters never need escaping rules; nested block comments are not
// part of the language.
func stripComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))

	const (
		code = iota
		lineComment
		blockComment
	)
	state := code

	for i := 0; i < len(source); i++ {
		c := source[i]
		switch state {
		case code:
			if c == '/' && i+1 < len(source) {
				switch source[i+1] {
				case '/':
					state = lineComment
					i++
					continue
				case '*':
					state = blockComment
					i++
					continue
				}
			}
			sb.WriteByte(c)
		case lineComment:
			if c == '\n' {
				state = code
				sb.WriteByte(c)
			}
		case blockComment:
			if c == '\n' {
				sb.WriteByte(c)
			}
			if c == '*' && i+1 < len(source) && source[i+1] == '/' {
				state = code
				i++
			}
		}
	}
	return sb.String()
}

// stripDirectives removes every line whose trimmed form starts with
// '#'. Directives are only stripped, never resolved.
func stripDirectives(source string) string {
	lines := strings.Split(source, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
