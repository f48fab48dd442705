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

package parser

import (
	"github.com/driftlang/drift/ast"
	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/position"
	"github.com/driftlang/drift/token"
)

// parseType parses a type expression (§4.2.4):
//
//	type ::= identifier ( generic_args | '*' | '(' types ')' | '[' expr? ']' )*
//
// allowed gates which postfix forms may legally appear. A stack array
// without a length still parses when disallowed (so the caller's tree
// stays complete) but is reported; a function-pointer suffix is only
// recognized when allowed, and otherwise the type ends before the '('.
func (p *parser) parseType(diags *diag.Collection, allowed ast.AllowedType) ast.TypeExpr {
	closureModifier := p.parseClosureModifierPrefix()

	nameTok, ok := p.expectIdentifier()
	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected a type")
		return &ast.MissingTypeInstance{Base: ast.Base{Pos: p.missingPos(), File: p.file}}
	}
	from := nameTok.Pos.Start

	var cur ast.TypeExpr = &ast.TypeInstanceSimple{
		Base: p.base(from),
		Name: nameTok.Content,
	}

	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "type postfix suffixes")
		switch {
		case p.peekOperator("<"):
			cur = p.parseGenericArgs(diags, cur)

		case p.peekOperator("*"):
			p.advance()
			cur = &ast.TypeInstancePointer{Base: p.base(from), Pointee: cur}

		case allowed.Has(ast.AllowFunctionPointer) && p.peekOperator("("):
			cur = p.parseFunctionPointerSuffix(diags, cur, closureModifier, from)
			closureModifier = ""

		case p.peekOperator("["):
			cur = p.parseStackArraySuffix(diags, cur, allowed, from)

		default:
			return cur
		}
	}
	return cur
}

// parseClosureModifierPrefix consumes a leading `@name` closure modifier,
// if present, splitting the token in place when the tokenizer happened to
// lex it as one combined Identifier (§4.2.4, §9 "Token list in-place
// mutation"). It returns the modifier name, or "" if none was present.
func (p *parser) parseClosureModifierPrefix() string {
	t, idx := p.peekIndex()
	if t.IsNil() {
		return ""
	}

	if t.Kind == token.Identifier && len(t.Content) > 1 && t.Content[0] == '@' {
		p.toks.SplitClosureModifier(idx)
		t = p.toks.At(idx)
	}

	if t.Kind != token.Operator || t.Content != "@" {
		return ""
	}
	p.advance()
	name, ok := p.expectIdentifier()
	if !ok {
		return ""
	}
	return name.Content
}

func (p *parser) peekOperator(content string) bool {
	t := p.peek()
	return t.Kind == token.Operator && t.Content == content
}

// parseGenericArgs parses `'<' type (',' type)* ('>' | '>>')` and returns
// the TypeInstanceSimple rebuilt with TypeArgs filled in.
func (p *parser) parseGenericArgs(diags *diag.Collection, base ast.TypeExpr) ast.TypeExpr {
	simple, ok := base.(*ast.TypeInstanceSimple)
	if !ok {
		// Defensive: generic args only ever follow a freshly parsed simple
		// name in this grammar.
		return base
	}
	p.advance() // '<'

	var args []ast.TypeExpr
	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "generic argument list")
		args = append(args, p.parseType(diags, ast.AllowAny))
		if _, ok := p.expectOperator(","); ok {
			continue
		}
		break
	}

	if !p.consumeGenericClose() {
		p.report(diags, diag.Error, p.here(), "Expected '>' to close generic argument list")
	}

	simple.TypeArgs = args
	simple.Pos = position.New(simple.Pos.Start, p.prevEnd)
	return simple
}

// consumeGenericClose consumes one level of generic-argument close. If the
// next operator token is literally ">" it is consumed whole; if it is
// ">>" or ">>>" (an unexpected triple, per the Open Question in §9) it is
// split in place into a leading ">" and the remainder (">" or ">>") first,
// and only the leading ">" is consumed here, leaving the remainder for the
// enclosing generic_args production to consume in its own turn.
func (p *parser) consumeGenericClose() bool {
	t, idx := p.peekIndex()
	if t.Kind != token.Operator {
		return false
	}
	switch t.Content {
	case ">":
		p.advance()
		return true
	case ">>", ">>>":
		p.toks.SplitDoubleAngle(idx)
		p.advance()
		return true
	default:
		return false
	}
}

func (p *parser) parseFunctionPointerSuffix(diags *diag.Collection, ret ast.TypeExpr, closureModifier string, from position.Point) ast.TypeExpr {
	p.advance() // '('
	var params []ast.TypeExpr
	if !p.peekOperator(")") {
		for iter := 0; iter < maxProductionIterations; iter++ {
			p.checkIterations(iter, "function-pointer parameter list")
			params = append(params, p.parseType(diags, ast.AllowAny))
			if _, ok := p.expectOperator(","); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ')' to close function-pointer parameter list")
	}
	return &ast.TypeInstanceFunction{
		Base:            p.base(from),
		Return:          ret,
		Params:          params,
		ClosureModifier: closureModifier,
	}
}

func (p *parser) parseStackArraySuffix(diags *diag.Collection, elem ast.TypeExpr, allowed ast.AllowedType, from position.Point) ast.TypeExpr {
	p.advance() // '['
	var length ast.Expr
	if !p.peekOperator("]") {
		length = p.parseExpr(diags)
	}
	if _, ok := p.expectOperator("]"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ']' to close array type")
	}
	if length == nil && !allowed.Has(ast.AllowStackArrayWithoutLength) {
		p.report(diags, diag.Error, p.here(), "Stack array type requires a length in this context")
	}
	return &ast.TypeInstanceStackArray{Base: p.base(from), Element: elem, Length: length}
}
