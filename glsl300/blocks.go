// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import (
	"strconv"
	"strings"
)

// blockTable stores the contents of extracted (...) and {...} spans.
// It is append-only and local to one top-level Parse call; extracted
// code refers to entries by decimal index.
type blockTable struct {
	spans []string
}

// add appends a span's content and returns its index.
func (t *blockTable) add(content string) int {
	t.spans = append(t.spans, content)
	return len(t.spans) - 1
}

// lookup returns the content stored at index i, or false when the
// index is out of range.
func (t *blockTable) lookup(i int) (string, bool) {
	if i < 0 || i >= len(t.spans) {
		return "", false
	}
	return t.spans[i], true
}

// resolve maps a bare decimal index back to its stored content,
// repeatedly: re-extraction during block recursion can wrap an index
// in another index, so resolution follows the chain until the text is
// no longer a stored index.
func (t *blockTable) resolve(text string) string {
	for {
		i, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return text
		}
		content, ok := t.lookup(i)
		if !ok {
			return text
		}
		text = content
	}
}

// extract replaces the content between each open/close delimiter pair
// with the index at which that content was appended to the table.
//
// This is a single left-to-right pass, not a balanced-bracket scan:
// the code is split on the opening delimiter and each fragment is cut
// at its first closing delimiter. Sibling spans separate correctly;
// same-delimiter nesting beyond one level is not reliably threaded
// through, which is acceptable for the declaration forms this package
// targets. Callers must run the parenthesis pass before the brace
// pass, once each.
func (t *blockTable) extract(code string, open, close byte) string {
	parts := strings.Split(code, string(open))
	if len(parts) == 1 {
		return code
	}

	var sb strings.Builder
	sb.Grow(len(code))
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		sb.WriteByte(open)
		i := strings.IndexByte(part, close)
		if i < 0 {
			sb.WriteString(part)
			continue
		}
		idx := t.add(part[:i])
		sb.WriteString(strconv.Itoa(idx))
		sb.WriteString(part[i:])
	}
	return sb.String()
}
