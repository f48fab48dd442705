// Copyright 2026 The Drift Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements the recursive-descent parser: arbitrary-depth
// one-shot backtracking via restore points, a three-layer error recovery
// policy (silent backtrack, synthesized Missing* placeholders,
// importance-ranked fallback for competing top-level alternatives), and
// the token-list in-place mutation the grammar requires for nested
// generics and closure modifiers (§4.2, §9).
package parser

import (
	"github.com/driftlang/drift/ast"
	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/position"
	"github.com/driftlang/drift/token"
)

// maxProductionIterations guards every parser loop against a buggy
// production that fails to make progress; it is purely a defense against
// implementation bugs, there is no legitimate input that should ever
// approach it (§5 "Timeouts"). Every such loop calls checkIterations each
// pass, which panics with unreachableStateError once the cap is reached
// rather than silently falling out of the loop.
const maxProductionIterations = 1_000_000

// unreachableStateError is the panic value thrown when a parser loop
// exceeds maxProductionIterations, the one case §5 calls truly
// unreachable: it is caught at the top of Parse/ParseExpression and
// converted into an internal-error diagnostic (§7 "Internal"), the same
// recover-at-the-boundary treatment §7 describes for a SyntaxException.
type unreachableStateError struct{ where string }

func (e unreachableStateError) Error() string {
	return "unreachable parser state in " + e.where
}

// checkIterations panics with unreachableStateError if iter has reached
// maxProductionIterations. Call this once per pass at the top of every
// parser loop bounded by maxProductionIterations.
func (p *parser) checkIterations(iter int, where string) {
	if iter >= maxProductionIterations {
		panic(unreachableStateError{where: where})
	}
}

// ensureProgress consumes and reports exactly one token if the cursor
// never moved past before, the "a single bad token is skipped and
// reported rather than retried forever" recovery §8.3 requires for a
// top-level loop whose item production can fail to recognize anything
// (e.g. a token.Unrecognized byte) without itself consuming it.
func (p *parser) ensureProgress(diags *diag.Collection, before restorePoint) {
	if int(before) != p.idx || p.atEOF() {
		return
	}
	bad := p.advance()
	p.report(diags, diag.Error, bad.Pos, "Unexpected token")
}

// parser holds the mutable cursor over a token.List plus the file
// identifier diagnostics are anchored to. A parser is single-use: build
// one per call to Parse/ParseExpression.
type parser struct {
	toks *token.List
	idx  int
	file string

	// prevEnd is the End point of the most recently consumed non-trivia
	// token. Missing nodes are positioned here, mirroring
	// "previous_token.position.after()" (§4.2 layer 2).
	prevEnd position.Point
}

func newParser(toks *token.List, file string) *parser {
	return &parser{toks: toks, file: file}
}

// restorePoint is an opaque cursor snapshot for backtracking (§4.2
// "Model").
type restorePoint int

func (p *parser) mark() restorePoint      { return restorePoint(p.idx) }
func (p *parser) restore(rp restorePoint) { p.idx = int(rp) }

// skipTrivia advances the cursor past whitespace, line breaks, comments,
// and preprocessor tokens. It is invoked before every token match (§4.2
// "skip_trivia()").
func (p *parser) skipTrivia() {
	for p.idx < p.toks.Len() && p.toks.At(p.idx).Kind.IsTrivia() {
		p.idx++
	}
}

// peek returns the next non-trivia token without consuming it, or
// token.Nil at end of input.
func (p *parser) peek() token.Token {
	p.skipTrivia()
	if p.idx >= p.toks.Len() {
		return token.Nil
	}
	return p.toks.At(p.idx)
}

// peekIndex is like peek but also returns the token's index in the
// underlying list, needed by productions that must splice the list in
// place (generic-close splitting, closure-modifier splitting).
func (p *parser) peekIndex() (token.Token, int) {
	p.skipTrivia()
	if p.idx >= p.toks.Len() {
		return token.Nil, -1
	}
	return p.toks.At(p.idx), p.idx
}

// advance consumes and returns the next non-trivia token.
func (p *parser) advance() token.Token {
	t := p.peek()
	if t.IsNil() {
		return t
	}
	p.idx++
	p.prevEnd = t.Pos.End
	return t
}

// here is the position the next token would be matched at, used as the
// anchor for "expected X here" diagnostics.
func (p *parser) here() position.Position {
	if t := p.peek(); !t.IsNil() {
		return t.Pos
	}
	return position.AtPoint(p.prevEnd)
}

// missingPos is where a synthesized Missing* node is anchored: the point
// immediately after the last token actually consumed (§4.2 layer 2).
func (p *parser) missingPos() position.Position {
	return position.AtPoint(p.prevEnd)
}

// atEOF reports whether no more non-trivia tokens remain.
func (p *parser) atEOF() bool {
	return p.peek().IsNil()
}

// expectOperator consumes the next token if it is an Operator whose
// content is one of want, returning it and true; otherwise the cursor is
// left unchanged.
func (p *parser) expectOperator(want ...string) (token.Token, bool) {
	t := p.peek()
	if t.Kind != token.Operator {
		return token.Nil, false
	}
	for _, w := range want {
		if t.Content == w {
			return p.advance(), true
		}
	}
	return token.Nil, false
}

// expectIdentifier consumes the next token if it is an Identifier whose
// content is one of want (or any Identifier, if want is empty).
func (p *parser) expectIdentifier(want ...string) (token.Token, bool) {
	t := p.peek()
	if t.Kind != token.Identifier {
		return token.Nil, false
	}
	if len(want) == 0 {
		return p.advance(), true
	}
	for _, w := range want {
		if t.Content == w {
			return p.advance(), true
		}
	}
	return token.Nil, false
}

// expectLiteral consumes the next token if it is one of the literal
// kinds.
func (p *parser) expectLiteral() (token.Token, bool) {
	switch p.peek().Kind {
	case token.LiteralNumber, token.LiteralFloat, token.LiteralHex,
		token.LiteralBinary, token.LiteralString, token.LiteralCharacter:
		return p.advance(), true
	default:
		return token.Nil, false
	}
}

// report appends a positioned diagnostic to diags.
func (p *parser) report(diags *diag.Collection, level diag.Level, pos position.Position, message string) {
	if diags == nil {
		return
	}
	diags.Add(diag.At(level, message, position.Location{Position: pos, File: p.file}))
}

// base builds an ast.Base spanning [from, p.prevEnd] for a node that just
// finished parsing, where from is the position recorded at the start of
// the production via startPoint.
func (p *parser) base(from position.Point) ast.Base {
	return ast.Base{Pos: position.New(from, p.prevEnd), File: p.file}
}

// startPoint returns the start point of the next non-trivia token, or
// prevEnd at end of input; productions call this before doing any work so
// base() can later compute an accurate span.
func (p *parser) startPoint() position.Point {
	if t := p.peek(); !t.IsNil() {
		return t.Pos.Start
	}
	return p.prevEnd
}
