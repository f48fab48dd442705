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

var compoundAssignmentOps = []string{"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^="}
var shortOperators = []string{"++", "--"}

var builtinTypeKeywords = []string{
	"any", "void", "int", "float", "char", "byte",
	"u8", "u16", "u32", "i8", "i16", "i32",
}

// parseStatement parses one `statement` production (§4.2.2).
func (p *parser) parseStatement(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()

	if _, ok := p.expectOperator(";"); ok {
		p.report(diags, diag.Warning, p.base(from).Pos, "Empty statement")
		return &ast.EmptyStatement{Base: p.base(from)}
	}

	if p.peekOperator("{") {
		return p.parseBlock(diags)
	}

	if s, ok := p.tryParseInstructionLabel(); ok {
		return s
	}

	if kw := p.peekKeywordOneOf("if", "while", "for", "return", "yield", "goto", "crash", "break", "delete"); kw != "" {
		switch kw {
		case "if":
			return p.parseIf(diags)
		case "while":
			return p.parseWhile(diags)
		case "for":
			return p.parseFor(diags)
		case "return":
			return p.parseReturn(diags)
		case "yield":
			return p.parseYieldOrDelete(diags, "yield")
		case "goto":
			return p.parseGoto(diags)
		case "crash":
			return p.parseCrash(diags)
		case "break":
			return p.parseBreak(diags)
		case "delete":
			return p.parseYieldOrDelete(diags, "delete")
		}
	}

	if s, ok := p.tryParseVariableDecl(diags); ok {
		return s
	}

	return p.parseAssignmentOrExpressionStatement(diags)
}

func (p *parser) peekKeywordOneOf(kws ...string) string {
	t := p.peek()
	if t.Kind != token.Identifier {
		return ""
	}
	for _, kw := range kws {
		if t.Content == kw {
			return kw
		}
	}
	return ""
}

// tryParseInstructionLabel speculatively parses `identifier ':'`,
// backtracking (silent layer-1 recovery) if the colon is absent.
func (p *parser) tryParseInstructionLabel() (ast.Stmt, bool) {
	rp := p.mark()
	from := p.startPoint()

	name, ok := p.expectIdentifier()
	if !ok {
		p.restore(rp)
		return nil, false
	}
	if _, ok := p.expectOperator(":"); !ok {
		p.restore(rp)
		return nil, false
	}
	return &ast.InstructionLabelDeclaration{Base: p.base(from), Name: name.Content}, true
}

func (p *parser) parseBlock(diags *diag.Collection) *ast.Block {
	from := p.startPoint()
	if _, ok := p.expectOperator("{"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '{'")
		return &ast.Block{Base: p.base(from)}
	}

	var stmts []ast.Stmt
	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "block statements")
		if p.peekOperator("}") || p.atEOF() {
			break
		}
		before := p.mark()
		stmts = append(stmts, p.parseStatement(diags))
		p.ensureProgress(diags, before)
	}

	if _, ok := p.expectOperator("}"); !ok {
		// §8.3: a missing closing '}' yields a single diagnostic at the
		// stall point, not one per leftover statement. No MissingToken or
		// MissingStatement placeholder is added to the block.
		p.report(diags, diag.Error, p.here(), "Expected a statement")
	}

	return &ast.Block{Base: p.base(from), Statements: stmts}
}

func (p *parser) parseIf(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'if'
	cond := p.parseParenCondition(diags)
	then := p.parseStatement(diags)

	var elseStmt ast.Stmt
	if p.peekKeywordOneOf("else") != "" {
		p.advance()
		elseStmt = p.parseStatement(diags)
	}

	return &ast.If{Base: p.base(from), Condition: cond, Then: then, Else: elseStmt}
}

func (p *parser) parseWhile(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'while'
	cond := p.parseParenCondition(diags)
	body := p.parseStatement(diags)
	return &ast.While{Base: p.base(from), Condition: cond, Body: body}
}

func (p *parser) parseParenCondition(diags *diag.Collection) ast.Expr {
	if _, ok := p.expectOperator("("); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '('")
	}
	cond := p.parseExpr(diags)
	if _, ok := p.expectOperator(")"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ')'")
	}
	return cond
}

// parseFor parses `for (init; cond; step) body`, where each of init,
// cond, and step may be empty (§4.2.2).
func (p *parser) parseFor(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'for'
	if _, ok := p.expectOperator("("); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '('")
	}

	var init ast.Stmt
	if !p.peekOperator(";") {
		init = p.parseAssignmentOrExpressionStatement(diags)
	} else {
		p.advance() // consume bare ';'
	}

	var cond ast.Expr
	if !p.peekOperator(";") {
		cond = p.parseExpr(diags)
	}
	if _, ok := p.expectOperator(";"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ';'")
	}

	var step ast.Stmt
	if !p.peekOperator(")") {
		step = p.parseAssignmentStatementNoSemicolon(diags)
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ')'")
	}

	body := p.parseStatement(diags)
	return &ast.For{Base: p.base(from), Init: init, Condition: cond, Step: step, Body: body}
}

func (p *parser) parseReturn(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'return'
	var value ast.Expr
	if !p.peekOperator(";") {
		value = p.parseExpr(diags)
	}
	p.expectSemicolon(diags)
	return &ast.Return{Base: p.base(from), Value: value}
}

func (p *parser) parseYieldOrDelete(diags *diag.Collection, which string) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'yield'/'delete'
	value := p.parseExpr(diags)
	p.expectSemicolon(diags)
	if which == "yield" {
		return &ast.Yield{Base: p.base(from), Value: value}
	}
	return &ast.Delete{Base: p.base(from), Value: value}
}

func (p *parser) parseGoto(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'goto'
	name, ok := p.expectIdentifier()
	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected a label name")
	}
	p.expectSemicolon(diags)
	return &ast.Goto{Base: p.base(from), Label: name.Content}
}

func (p *parser) parseCrash(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'crash'
	var value ast.Expr
	if !p.peekOperator(";") {
		value = p.parseExpr(diags)
	}
	p.expectSemicolon(diags)
	return &ast.Crash{Base: p.base(from), Value: value}
}

func (p *parser) parseBreak(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	p.advance() // 'break'
	p.expectSemicolon(diags)
	return &ast.Break{Base: p.base(from)}
}

// expectSemicolon consumes a required ';', warning (not erroring) about
// extras is handled by the empty-statement production itself; a missing
// one here is a recoverable layer-2 diagnostic.
func (p *parser) expectSemicolon(diags *diag.Collection) {
	if _, ok := p.expectOperator(";"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected ';'")
	}
}

// tryParseVariableDecl speculatively parses `modifier* type ident ('=' expr)? ';'`.
// It backtracks silently if no identifier name follows the candidate
// type, since at that point it cannot yet be told apart from an
// expression statement that merely starts with an identifier (e.g. a bare
// call `f();`).
func (p *parser) tryParseVariableDecl(diags *diag.Collection) (ast.Stmt, bool) {
	rp := p.mark()
	from := p.startPoint()

	var probe diag.Collection
	probe.PushOverride()

	mods := p.parseModifiers()
	if !p.startsType() {
		probe.Drop()
		p.restore(rp)
		return nil, false
	}
	typ := p.parseType(&probe, defaultTypeFlags)
	name, ok := p.expectIdentifier()
	if !ok || ast.IsMissing(typ) {
		probe.Drop()
		p.restore(rp)
		return nil, false
	}

	probe.Apply()
	if diags != nil {
		probe.Each(func(d diag.Diagnostic) bool { diags.Add(d); return true })
	}

	var init ast.Expr
	if _, ok := p.expectOperator("="); ok {
		init = p.parseExpr(diags)
	}
	p.expectSemicolon(diags)

	return &ast.VariableDefinition{
		Base:        p.base(from),
		Modifiers:   mods,
		Type:        typ,
		Name:        name.Content,
		Initializer: init,
	}, true
}

// startsType reports whether the next token could begin a type: a
// builtin type keyword or any other identifier (a user type name). It is
// the lookahead tryParseVariableDecl uses before committing to the more
// expensive speculative parse.
func (p *parser) startsType() bool {
	t := p.peek()
	return t.Kind == token.Identifier
}

// parseAssignmentOrExpressionStatement parses the remaining statement
// forms that all start with an expression: short ('++'/'--'), compound,
// simple '=', or a bare statement-expression, each terminated by ';'.
func (p *parser) parseAssignmentOrExpressionStatement(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	target := p.parseExpr(diags)

	stmt := p.finishAssignment(diags, from, target)
	p.expectSemicolon(diags)
	return stmt
}

// parseAssignmentStatementNoSemicolon is used for a `for` loop's step
// clause, which is terminated by ')' rather than ';' (§4.2.2).
func (p *parser) parseAssignmentStatementNoSemicolon(diags *diag.Collection) ast.Stmt {
	from := p.startPoint()
	target := p.parseExpr(diags)
	return p.finishAssignment(diags, from, target)
}

func (p *parser) finishAssignment(diags *diag.Collection, from position.Point, target ast.Expr) ast.Stmt {
	if op, ok := p.expectOperator(shortOperators...); ok {
		return &ast.ShortOperatorCall{Base: p.base(from), Operator: op.Content, Target: target}
	}
	if op, ok := p.expectOperator(compoundAssignmentOps...); ok {
		value := p.parseExpr(diags)
		return &ast.CompoundAssignment{Base: p.base(from), Operator: op.Content, Target: target, Value: value}
	}
	if _, ok := p.expectOperator("="); ok {
		value := p.parseExpr(diags)
		return &ast.SimpleAssignment{Base: p.base(from), Target: target, Value: value}
	}
	return &ast.ExpressionStatement{Base: p.base(from), Expression: target}
}
