// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl300

import (
	"fmt"
	"strconv"
	"strings"
)

// reader turns filtered expressions into declarations. It carries the
// block-content table and the struct type names collected by the
// pre-pass; both are local to one Parse call, so independent calls
// never share state.
type reader struct {
	blocks     *blockTable
	extraTypes map[string]struct{}
}

// partial is the mutable accumulator a declaration is built in before
// validation promotes it to a Declaration. Attributes are settable
// once; later matching tokens are discarded.
type partial struct {
	expr       string // source expression, for error reporting
	qualifier  string
	typ        string
	name       string
	amount     int
	amountSet  bool
	invariant  bool
	centroid   bool
	layout     string
	precision  string
	structName string
	block      []Declaration
	blockRef   int // index into the block table, -1 when absent
}

func (p *partial) errf(format string, args ...interface{}) *DeclarationError {
	return &DeclarationError{
		Message: fmt.Sprintf(format, args...),
		Expr:    p.expr,
	}
}

// pass runs one pipeline pass over already-sanitized code: delimiter
// extraction (parentheses first, then braces, one pass each), splitting
// on ';', filtering, reading and validation. Members read inside a
// block body inherit the enclosing declaration's qualifier when they
// carry none of their own.
func (r *reader) pass(code string, kind filterKind, inherit string) ([]Declaration, error) {
	code = r.blocks.extract(code, '(', ')')
	code = r.blocks.extract(code, '{', '}')

	exprs := splitExpressions(code)
	decls := make([]Declaration, 0, len(exprs))
	for _, tokens := range exprs {
		if !r.matches(kind, tokens) {
			continue
		}
		p, err := r.read(tokens)
		if err != nil {
			return nil, err
		}
		if p.qualifier == "" {
			p.qualifier = inherit
		}
		decl, err := validate(&p)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// read builds the partial declaration for one expression: layout
// extraction, token classification, then block-content recursion.
func (r *reader) read(tokens []string) (partial, error) {
	p := partial{
		expr:     strings.Join(tokens, " "),
		amount:   1,
		blockRef: -1,
	}

	rest := r.extractLayout(tokens, &p)

	for _, tok := range rest {
		before, idx, after, ok := splitBlockRef(tok)
		if ok {
			if p.blockRef < 0 {
				p.blockRef = idx
			}
			// Classify the fused fragments in source order, so the
			// block name wins over a trailing instance identifier.
			if before != "" {
				if err := r.classify(&p, before); err != nil {
					return p, err
				}
			}
			if after != "" {
				if err := r.classify(&p, after); err != nil {
					return p, err
				}
			}
			continue
		}
		if err := r.classify(&p, tok); err != nil {
			return p, err
		}
	}

	if p.blockRef >= 0 {
		if err := r.readBlock(&p); err != nil {
			return p, err
		}
	}
	return p, nil
}

// extractLayout scans for the first token containing '(' and the
// first containing ')', resolves the text between them through the
// block table, strips its whitespace and stores it as the layout
// payload. The consumed tokens are removed; the "layout" keyword is
// consumed with them, while any other text fused outside the
// parentheses is preserved as a standalone token.
func (r *reader) extractLayout(tokens []string, p *partial) []string {
	open, close := -1, -1
	for i, tok := range tokens {
		if open < 0 && strings.IndexByte(tok, '(') >= 0 {
			open = i
		}
		if close < 0 && strings.IndexByte(tok, ')') >= 0 {
			close = i
		}
	}
	if open < 0 || close < 0 || close < open {
		return tokens
	}

	o := strings.IndexByte(tokens[open], '(')
	c := strings.IndexByte(tokens[close], ')')
	if open == close && c < o {
		return tokens
	}

	var inner string
	if open == close {
		inner = tokens[open][o+1 : c]
	} else {
		parts := make([]string, 0, close-open+1)
		parts = append(parts, tokens[open][o+1:])
		parts = append(parts, tokens[open+1:close]...)
		parts = append(parts, tokens[close][:c])
		inner = strings.Join(parts, " ")
	}
	p.layout = strings.Join(strings.Fields(r.blocks.resolve(inner)), "")

	before := tokens[open][:o]
	after := tokens[close][c+1:]

	rest := make([]string, 0, len(tokens))
	for _, tok := range tokens[:open] {
		// The layout keyword is consumed together with its payload.
		if tok == "layout" {
			continue
		}
		rest = append(rest, tok)
	}
	if before != "" && before != "layout" {
		rest = append(rest, before)
	}
	if after != "" {
		rest = append(rest, after)
	}
	rest = append(rest, tokens[close+1:]...)
	return rest
}

// readBlock resolves the accumulator's block reference and reads the
// stored body as member declarations. Members are validated before
// the parent is; a single invalid member aborts the whole parse.
func (r *reader) readBlock(p *partial) error {
	content, ok := r.blocks.lookup(p.blockRef)
	if !ok {
		return p.errf("unknown block reference %d", p.blockRef)
	}
	members, err := r.pass(content, filterBlockMember, p.qualifier)
	if err != nil {
		return err
	}
	p.typ = TypeBlock
	// A block is not a struct reference, even when its name shadows a
	// defined struct type.
	p.structName = ""
	p.block = members
	return nil
}

// classify runs the ordered rule chain over one token. Leading '{'
// and trailing '}' characters fused to the token are block boundary
// artifacts and are stripped first. Tokens no rule accepts are
// discarded.
func (r *reader) classify(p *partial, tok string) error {
	tok = strings.TrimLeft(tok, "{")
	tok = strings.TrimRight(tok, "}")
	if tok == "" {
		return nil
	}
	for _, rule := range classifyRules {
		matched, err := rule.apply(r, p, tok)
		if err != nil {
			return err
		}
		if matched {
			return nil
		}
	}
	return nil
}

// classifyRule is one step of the token classification chain.
type classifyRule struct {
	name  string
	apply func(r *reader, p *partial, tok string) (bool, error)
}

// classifyRules is the classification chain, in precedence order. The
// first rule that accepts a token wins.
var classifyRules = []classifyRule{
	{"qualifier", func(r *reader, p *partial, tok string) (bool, error) {
		switch tok {
		case QualifierIn, QualifierUniform, QualifierOut, QualifierStruct:
			if p.qualifier == "" {
				p.qualifier = tok
				return true, nil
			}
		}
		return false, nil
	}},
	{"struct type", func(r *reader, p *partial, tok string) (bool, error) {
		if _, ok := r.extraTypes[tok]; ok && p.structName == "" {
			p.typ = TypeStruct
			p.structName = tok
			return true, nil
		}
		return false, nil
	}},
	{"builtin type", func(r *reader, p *partial, tok string) (bool, error) {
		if isBuiltinType(tok) && p.typ == "" {
			p.typ = tok
			return true, nil
		}
		return false, nil
	}},
	{"array size", func(r *reader, p *partial, tok string) (bool, error) {
		i := strings.IndexByte(tok, '[')
		if i < 0 {
			return false, nil
		}
		j := strings.IndexByte(tok, ']')
		if j < i {
			return true, p.errf("malformed array suffix %q", tok)
		}
		n, err := strconv.Atoi(tok[i+1 : j])
		if err != nil {
			return true, p.errf("array size %q is not a number", tok[i+1:j])
		}
		if !p.amountSet {
			p.amount = n
			p.amountSet = true
		}
		if name := tok[:i]; name != "" && p.name == "" {
			p.name = name
		}
		return true, nil
	}},
	{"centroid", func(r *reader, p *partial, tok string) (bool, error) {
		if tok == "centroid" && !p.centroid {
			p.centroid = true
			return true, nil
		}
		return false, nil
	}},
	{"invariant", func(r *reader, p *partial, tok string) (bool, error) {
		if tok == "invariant" && !p.invariant {
			p.invariant = true
			return true, nil
		}
		return false, nil
	}},
	{"precision", func(r *reader, p *partial, tok string) (bool, error) {
		if isPrecision(tok) && p.precision == "" {
			p.precision = tok
			return true, nil
		}
		return false, nil
	}},
	{"name", func(r *reader, p *partial, tok string) (bool, error) {
		if p.name == "" {
			p.name = tok
			return true, nil
		}
		return false, nil
	}},
}

// splitBlockRef recognizes a block-table reference of the form "{N}",
// possibly with text fused on either side, and splits the token
// around it.
func splitBlockRef(tok string) (before string, idx int, after string, ok bool) {
	i := strings.IndexByte(tok, '{')
	if i < 0 {
		return "", 0, "", false
	}
	j := strings.IndexByte(tok, '}')
	if j < i {
		return "", 0, "", false
	}
	n, err := strconv.Atoi(tok[i+1 : j])
	if err != nil {
		return "", 0, "", false
	}
	return tok[:i], n, tok[j+1:], true
}
