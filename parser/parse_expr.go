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

// precedenceLevels lists the binary-operator precedence table of §4.2.3,
// lowest-binding first, so parseExpr can climb it from loosest to
// tightest. Operators earlier in the slice bind looser; parseExpr is
// called once per level, each delegating to the next-tighter level for
// its operands. The resulting tree already has the higher-precedence
// operator nested deeper, which is the same tree a left-leaning-plus-
// reassociate walk over a flat operator run would produce, without this
// implementation needing to mutate a partially built tree in place.
var precedenceLevels = [][]string{
	{"||"},
	{"&&"},
	{"<", ">", "<=", ">=", "!=", "=="},
	{"|"},
	{"^"},
	{"&"},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%"},
}

// parseExpr parses a full expression using the precedence table.
func (p *parser) parseExpr(diags *diag.Collection) ast.Expr {
	return p.parseBinary(diags, 0)
}

func (p *parser) parseBinary(diags *diag.Collection, level int) ast.Expr {
	if level >= len(precedenceLevels) {
		return p.parseUnary(diags)
	}

	left := p.parseBinary(diags, level+1)
	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "binary operator chain")
		op, ok := p.expectOperator(precedenceLevels[level]...)
		if !ok {
			return left
		}
		right := p.parseBinary(diags, level+1)
		left = &ast.BinaryOperatorCall{
			Base:     ast.Base{Pos: position.UnionAll(left.Position(), op.Pos, right.Position()), File: p.file},
			Operator: op.Content,
			Left:     left,
			Right:    right,
		}
	}
	return left
}

// parseUnary handles the unary prefix level (`! ~ - +`), which binds
// tightest per the precedence table.
func (p *parser) parseUnary(diags *diag.Collection) ast.Expr {
	if op, ok := p.expectOperator("!", "~", "-", "+"); ok {
		operand := p.parseUnary(diags)
		return &ast.UnaryOperatorCall{
			Base:     ast.Base{Pos: position.UnionAll(op.Pos, operand.Position()), File: p.file},
			Operator: op.Content,
			Operand:  operand,
		}
	}
	return p.parseAsExpr(diags)
}

// parseAsExpr parses a one_value_chain optionally followed by `as Type`
// (Reinterpret), which binds looser than chaining but is still handled
// above the general binary table since it is not itself a binary
// operator token.
func (p *parser) parseAsExpr(diags *diag.Collection) ast.Expr {
	from := p.startPoint()
	v := p.parseOneValueChain(diags)
	for p.peekIsKeyword("as") {
		p.advance()
		t := p.parseType(diags, ast.AllowAny)
		v = &ast.Reinterpret{Base: p.base(from), Value: v, Type: t}
	}
	return v
}

func (p *parser) peekIsKeyword(kw string) bool {
	t := p.peek()
	return t.Kind == token.Identifier && t.Content == kw
}

// parseOneValueChain parses `one_value ( '.' ident | '[' expr ']' | '(' args ')' )*`.
func (p *parser) parseOneValueChain(diags *diag.Collection) ast.Expr {
	from := p.startPoint()
	v := p.parseOneValue(diags)

	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "one-value chain")
		switch {
		case p.peekOperator("."):
			p.advance()
			name, ok := p.expectIdentifier()
			if !ok {
				p.report(diags, diag.Error, p.here(), "Expected a field name")
				v = &ast.FieldAccess{Base: p.base(from), Receiver: v, Name: ""}
				continue
			}
			v = &ast.FieldAccess{Base: p.base(from), Receiver: v, Name: name.Content}

		case p.peekOperator("["):
			p.advance()
			idx := p.parseExpr(diags)
			if _, ok := p.expectOperator("]"); !ok {
				p.report(diags, diag.Error, p.here(), "Expected ']'")
			}
			v = &ast.IndexCall{Base: p.base(from), Receiver: v, Index: idx}

		case p.peekOperator("("):
			args := p.parseArgumentList(diags)
			v = &ast.AnyCall{Base: p.base(from), Callee: v, Arguments: args}

		default:
			return v
		}
	}
	return v
}

// parseOneValue parses the `one_value` grammar (§4.2.3).
func (p *parser) parseOneValue(diags *diag.Collection) ast.Expr {
	from := p.startPoint()

	switch {
	case p.peekOperator("&"):
		p.advance()
		operand := p.parseOneValue(diags)
		return &ast.GetReference{Base: p.base(from), Operand: operand}

	case p.peekOperator("*"):
		p.advance()
		operand := p.parseOneValue(diags)
		return &ast.Dereference{Base: p.base(from), Operand: operand}

	case p.peekOperator("["):
		return p.parseListExpr(diags)

	case p.peekIsKeyword("new"):
		return p.parseNewExpr(diags)

	case p.peekIsKeyword("sizeof"):
		p.advance()
		operand := p.parseOneValue(diags)
		return &ast.UnaryOperatorCall{Base: p.base(from), Operator: "sizeof", Operand: operand}

	case p.peekIsKeyword("this"):
		t := p.advance()
		return &ast.Identifier{Base: ast.Base{Pos: t.Pos, File: p.file}, Name: "this"}

	case p.looksLikeLambda():
		return p.parseLambda(diags)
	}

	if t, ok := p.expectLiteral(); ok {
		return &ast.Literal{Base: ast.Base{Pos: t.Pos, File: p.file}, Kind: literalBaseOf(t.Kind), Raw: t.Content}
	}

	if castType, value, ok := p.tryParseTypeCast(diags); ok {
		return &ast.ManagedTypeCast{Base: p.base(from), Type: castType, Value: value}
	}

	if p.peekOperator("(") {
		p.advance()
		inner := p.parseExpr(diags)
		if _, ok := p.expectOperator(")"); !ok {
			p.report(diags, diag.Error, p.here(), "Expected ')'")
		}
		return inner
	}

	if t, ok := p.expectIdentifier(); ok {
		return &ast.Identifier{Base: ast.Base{Pos: t.Pos, File: p.file}, Name: t.Content}
	}

	if p.atEOF() {
		p.report(diags, diag.Error, p.here(), "Expected an expression")
		return &ast.MissingExpression{Base: ast.Base{Pos: p.missingPos(), File: p.file}}
	}

	// Nothing in this grammar starts an expression with whatever token is
	// here (most often token.Unrecognized, which no production above ever
	// consumes) - consume it so the enclosing statement/member loop is
	// guaranteed to make progress instead of re-parsing the same position
	// forever (§8.3).
	bad := p.advance()
	p.report(diags, diag.Error, bad.Pos, "Expected an expression, found an unrecognized token")
	return &ast.MissingExpression{Base: ast.Base{Pos: bad.Pos, File: p.file}}
}

func literalBaseOf(k token.Kind) ast.LiteralBase {
	switch k {
	case token.LiteralHex:
		return ast.BaseHex
	case token.LiteralBinary:
		return ast.BaseBinary
	case token.LiteralFloat:
		return ast.BaseFloat
	case token.LiteralString:
		return ast.BaseString
	case token.LiteralCharacter:
		return ast.BaseChar
	default:
		return ast.BaseDecimal
	}
}

// tryParseTypeCast implements the `(TYPE) one_value` vs `(' expr ')'`
// disambiguation of §4.2.3: speculatively parse `(identifier...)`, then
// require a one_value to follow with no intervening operator that would
// mean it was actually a parenthesized expression; backtrack otherwise.
func (p *parser) tryParseTypeCast(diags *diag.Collection) (ast.TypeExpr, ast.Expr, bool) {
	if !p.peekOperator("(") {
		return nil, nil, false
	}
	rp := p.mark()

	var sub diag.Collection
	sub.PushOverride()
	p.advance() // '('
	t := p.parseType(&sub, ast.AllowAny)
	closed := false
	if _, ok := p.expectOperator(")"); ok {
		closed = true
	}

	if !closed || ast.IsMissing(t) {
		sub.Drop()
		p.restore(rp)
		return nil, nil, false
	}

	if !p.startsOneValue() {
		sub.Drop()
		p.restore(rp)
		return nil, nil, false
	}

	sub.Apply()
	if diags != nil {
		sub.Each(func(d diag.Diagnostic) bool { diags.Add(d); return true })
	}
	value := p.parseOneValue(diags)
	return t, value, true
}

// startsOneValue reports whether the next token could begin a one_value,
// without consuming anything; used to decide whether `(TYPE)` is a cast.
func (p *parser) startsOneValue() bool {
	t := p.peek()
	if t.IsNil() {
		return false
	}
	switch t.Kind {
	case token.Identifier, token.LiteralNumber, token.LiteralFloat, token.LiteralHex,
		token.LiteralBinary, token.LiteralString, token.LiteralCharacter:
		return true
	case token.Operator:
		switch t.Content {
		case "&", "*", "(", "[":
			return true
		}
	}
	return false
}

func (p *parser) parseListExpr(diags *diag.Collection) ast.Expr {
	from := p.startPoint()
	p.advance() // '['
	var elems []ast.Expr
	if !p.peekOperator("]") {
		for iter := 0; iter < maxProductionIterations; iter++ {
			p.checkIterations(iter, "list expression elements")
			elems = append(elems, p.parseExpr(diags))
			if _, ok := p.expectOperator(","); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.expectOperator("]"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ']' to close list expression")
	}
	return &ast.ListExpression{Base: p.base(from), Elements: elems}
}

func (p *parser) parseNewExpr(diags *diag.Collection) ast.Expr {
	from := p.startPoint()
	p.advance() // 'new'
	t := p.parseType(diags, ast.AllowAny)

	var args *ast.ArgumentListExpression
	if p.peekOperator("(") {
		args = p.parseArgumentList(diags)
	}
	return &ast.NewInstance{Base: p.base(from), Type: t, Arguments: args}
}

func (p *parser) parseArgumentList(diags *diag.Collection) *ast.ArgumentListExpression {
	from := p.startPoint()
	p.advance() // '('
	var args []*ast.ArgumentExpression
	if !p.peekOperator(")") {
		for iter := 0; iter < maxProductionIterations; iter++ {
			p.checkIterations(iter, "argument list")
			args = append(args, p.parseArgumentExpr(diags))
			if _, ok := p.expectOperator(","); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ')' to close argument list")
	}
	return &ast.ArgumentListExpression{Base: p.base(from), Arguments: args}
}

func (p *parser) parseArgumentExpr(diags *diag.Collection) *ast.ArgumentExpression {
	from := p.startPoint()
	mods := p.parseModifiers()
	if !p.startsOneValue() && !p.peekOperator("!") && !p.peekOperator("-") && !p.peekOperator("~") && !p.peekOperator("+") {
		p.report(diags, diag.Error, p.here(), "Expected an argument expression")
		return &ast.ArgumentExpression{
			Base:      p.base(from),
			Modifiers: mods,
			Value:     &ast.MissingArgumentExpression{Base: ast.Base{Pos: p.missingPos(), File: p.file}},
		}
	}
	value := p.parseExpr(diags)
	return &ast.ArgumentExpression{Base: p.base(from), Modifiers: mods, Value: value}
}

// looksLikeLambda speculatively checks whether the upcoming tokens form a
// parameter list followed by `=>`, without committing the cursor.
func (p *parser) looksLikeLambda() bool {
	if !p.peekOperator("(") {
		return false
	}
	rp := p.mark()
	defer p.restore(rp)

	depth := 0
	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "lambda lookahead")
		t := p.advance()
		if t.IsNil() {
			return false
		}
		if t.Kind == token.Operator && t.Content == "(" {
			depth++
		}
		if t.Kind == token.Operator && t.Content == ")" {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	return p.peekOperator("=>")
}

func (p *parser) parseLambda(diags *diag.Collection) ast.Expr {
	from := p.startPoint()
	params, _ := p.parseParameterList(diags, parameterContext{allowDefaults: true, allowed: lambdaModifiers})
	if _, ok := p.expectOperator("=>"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '=>' in lambda")
	}

	if p.peekOperator("{") {
		block := p.parseBlock(diags)
		return &ast.Lambda{Base: p.base(from), Parameters: params, Block: block}
	}
	body := p.parseExpr(diags)
	return &ast.Lambda{Base: p.base(from), Parameters: params, Body: body}
}
