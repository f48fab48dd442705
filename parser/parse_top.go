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

// defaultTypeFlags is the permissive AllowedType mask used everywhere a
// type is parsed without some narrower, context-specific restriction
// (§4.2.4): function-pointer and unsized-array suffixes are both legal.
const defaultTypeFlags = ast.AllowAny | ast.AllowFunctionPointer | ast.AllowStackArrayWithoutLength

// parseFile parses `file ::= using* top_item*` (§4.2.1).
func (p *parser) parseFile(diags *diag.Collection) *ast.ParserResult {
	result := &ast.ParserResult{}

	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "using declarations")
		if !p.peekIsKeyword("using") {
			break
		}
		result.Usings = append(result.Usings, p.parseUsingDef(diags))
	}

	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "top-level items")
		if p.atEOF() {
			break
		}
		before := p.mark()
		p.parseTopItem(diags, result)
		p.ensureProgress(diags, before)
	}

	return result
}

func (p *parser) parseUsingDef(diags *diag.Collection) *ast.UsingDefinition {
	from := p.startPoint()
	p.advance() // 'using'

	var path string
	if lit, ok := p.expectLiteral(); ok && lit.Kind == token.LiteralString {
		path = unquoteStringLiteral(lit.Content)
	} else if name, ok := p.expectIdentifier(); ok {
		path = name.Content
		for {
			if _, ok := p.expectOperator("."); !ok {
				break
			}
			seg, ok := p.expectIdentifier()
			if !ok {
				p.report(diags, diag.Error, p.here(), "Expected an identifier after '.'")
				break
			}
			path += "." + seg.Content
		}
	} else {
		p.report(diags, diag.Error, p.here(), "Expected a string literal or a dotted identifier path")
	}

	p.expectSemicolon(diags)
	return &ast.UsingDefinition{Base: p.base(from), Path: path}
}

// unquoteStringLiteral strips the surrounding quotes the tokenizer leaves
// on a string literal's raw content; it does not process escapes, since
// those are a later (semantic) concern for this path-only use.
func unquoteStringLiteral(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// parseAttributeUsages greedily consumes zero or more `@Name(args)` or
// bare `@Name` attribute usages (§3.4 "AttributeUsage").
func (p *parser) parseAttributeUsages(diags *diag.Collection) []*ast.AttributeUsage {
	var attrs []*ast.AttributeUsage
	for p.peekOperator("@") {
		from := p.startPoint()
		p.advance() // '@'
		name, ok := p.expectIdentifier()
		if !ok {
			p.report(diags, diag.Error, p.here(), "Expected an attribute name after '@'")
			break
		}

		var args []ast.Expr
		if p.peekOperator("(") {
			p.advance()
			if !p.peekOperator(")") {
				for iter := 0; iter < maxProductionIterations; iter++ {
					p.checkIterations(iter, "attribute arguments")
					args = append(args, p.parseExpr(diags))
					if _, ok := p.expectOperator(","); ok {
						continue
					}
					break
				}
			}
			if _, ok := p.expectOperator(")"); !ok {
				p.report(diags, diag.Error, p.here(), "Expected ')' to close attribute arguments")
			}
		}

		attrs = append(attrs, &ast.AttributeUsage{Base: p.base(from), Name: name.Content, Arguments: args})
	}
	return attrs
}

// parseTopItem parses one `top_item` (§4.2.1), preceded by whatever
// attribute usages and modifier keywords were already written (§4.2.1
// "Every top-level item may be preceded by..."). struct_def and
// alias_def are keyword-anchored and never compete with anything else;
// function_def and operator_def both start with a return type and so
// genuinely compete with each other and with a plain statement (most
// often a variable_decl, which also starts with a type) — that contest
// is resolved with a diag.OrderedCollection per §4.2.7.
func (p *parser) parseTopItem(diags *diag.Collection, result *ast.ParserResult) {
	from := p.startPoint()
	attrs := p.parseAttributeUsages(diags)
	mods := p.parseModifiers()

	switch {
	case p.peekIsKeyword("struct"):
		result.Structs = append(result.Structs, p.parseStructDef(diags, attrs, mods, from))
		return
	case p.peekIsKeyword("alias"):
		result.Aliases = append(result.Aliases, p.parseAliasDef(diags, attrs, mods, from))
		return
	}

	var pending *diag.OrderedCollection
	if p.startsType() {
		var ordered diag.OrderedCollection
		if fn, ok := p.tryFunctionDef(diags, &ordered, attrs, mods, from); ok {
			// fn is nil when the header committed but the input ran out
			// before the definition could ever close (§8.4 S5); there is
			// nothing to keep, but the attempt still owns this position.
			if fn != nil {
				result.Functions = append(result.Functions, fn)
			}
			return
		}
		if op, ok := p.tryOperatorDef(diags, &ordered, attrs, mods, from); ok {
			if op != nil {
				result.Operators = append(result.Operators, op)
			}
			return
		}
		// Neither definition form committed; parsing falls through to an
		// ordinary statement (which naturally covers a variable_decl written
		// with the same leading type). The most promising attempt's
		// diagnostic survives only if that statement reports an error too.
		pending = &ordered
	}

	if len(attrs) > 0 || len(mods) > 0 {
		p.report(diags, diag.Error, p.base(from).Pos, "Attributes and modifiers are not allowed on a statement")
	}
	stmtDiags := diags
	if pending != nil && diags != nil {
		stmtDiags = &diag.Collection{}
	}
	result.TopLevelStatements = append(result.TopLevelStatements, p.parseStatement(stmtDiags))
	if stmtDiags != diags {
		if stmtDiags.HasErrors() {
			pending.CompileInto(diags)
		}
		stmtDiags.Each(func(d diag.Diagnostic) bool { diags.Add(d); return true })
	}
}

// tryFunctionDef speculatively parses a `function_def` header (return
// type, name, and an opening '(') and, once that much is certain,
// commits and parses the rest with the real diagnostics collection. If
// the header does not look like a function, it restores the cursor and
// records a low-importance candidate diagnostic for the contest in
// parseTopItem (§4.2.7). The bool return is whether this position was
// claimed as a function_def at all; the *ast.FunctionDefinition itself
// may still be nil if the input ran out before the definition closed.
func (p *parser) tryFunctionDef(diags *diag.Collection, ordered *diag.OrderedCollection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, from position.Point) (*ast.FunctionDefinition, bool) {
	rp := p.mark()
	var probe diag.Collection
	probe.PushOverride()
	retType := p.parseType(&probe, defaultTypeFlags)
	name, nameOk := p.expectIdentifier()
	headerOk := nameOk && p.peekOperator("(") && !ast.IsMissing(retType)
	probe.Apply()

	if !headerOk {
		p.recordFailedAlternative(ordered, &probe, rp, "not a function definition")
		p.restore(rp)
		return nil, false
	}
	if diags != nil {
		probe.Each(func(d diag.Diagnostic) bool { diags.Add(d); return true })
	}

	return p.finishFunctionDef(diags, attrs, mods, retType, name.Content, from), true
}

// finishFunctionDef parses the parameter list and body/forward-declaration
// semicolon common to both a top-level function_def and a struct method,
// once the return type and name have already been committed to. It
// returns nil if the input ran out before the parameter list ever closed
// (§8.4 S5): a bare header is not enough to report a function_def, only
// the diagnostics parseParameterList already recorded.
func (p *parser) finishFunctionDef(diags *diag.Collection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, retType ast.TypeExpr, name string, from position.Point) *ast.FunctionDefinition {
	p.checkModifiersAllowed(diags, mods, functionModifiers, p.base(from).Pos, "a function")
	params, closed := p.parseParameterList(diags, parameterContext{allowDefaults: true, allowed: functionModifiers})
	if !closed && p.atEOF() {
		return nil
	}

	var body *ast.Block
	if p.peekOperator("{") {
		body = p.parseBlock(diags)
	} else {
		p.expectSemicolon(diags)
	}

	return &ast.FunctionDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		ReturnType: retType,
		Name:       name,
		Parameters: params,
		Body:       body,
	}
}

// tryOperatorDef mirrors tryFunctionDef for `operator_def`: a return
// type, the literal keyword `operator`, and one of the overloadable
// operator symbols (§6.4).
func (p *parser) tryOperatorDef(diags *diag.Collection, ordered *diag.OrderedCollection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, from position.Point) (*ast.OperatorDefinition, bool) {
	rp := p.mark()
	var probe diag.Collection
	probe.PushOverride()
	retType := p.parseType(&probe, defaultTypeFlags)
	isOperatorKw := p.peekIsKeyword("operator")
	headerOk := isOperatorKw && !ast.IsMissing(retType)
	probe.Apply()

	if !headerOk {
		p.recordFailedAlternative(ordered, &probe, rp, "not an operator definition")
		p.restore(rp)
		return nil, false
	}
	if diags != nil {
		probe.Each(func(d diag.Diagnostic) bool { diags.Add(d); return true })
	}

	return p.finishOperatorDef(diags, attrs, mods, retType, from), true
}

// finishOperatorDef parses the `operator` keyword, its symbol, parameter
// list, and body, once the return type has already been committed to. It
// returns nil if the input ran out before the parameter list ever closed
// (§8.4 S5), mirroring finishFunctionDef.
func (p *parser) finishOperatorDef(diags *diag.Collection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, retType ast.TypeExpr, from position.Point) *ast.OperatorDefinition {
	p.advance() // 'operator'

	opSym, ok := p.parseOverloadableOperatorSymbol()
	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected an overloadable operator symbol")
	}

	p.checkModifiersAllowed(diags, mods, operatorModifiers, p.base(from).Pos, "an operator")
	params, closed := p.parseParameterList(diags, parameterContext{allowDefaults: false, allowed: operatorModifiers})
	if !closed && p.atEOF() {
		return nil
	}
	body := p.parseBlock(diags)

	return &ast.OperatorDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		Operator:   opSym,
		ReturnType: retType,
		Parameters: params,
		Body:       body,
	}
}

// overloadableOperatorSymbols is the closed set from §6.4, plus the call
// operator `()` written as two adjacent tokens.
var overloadableOperatorSymbols = []string{
	"<<", ">>", "+", "-", "*", "/", "%", "&", "|", "^",
	"<", ">", "<=", ">=", "!=", "==", "&&", "||",
}

func (p *parser) parseOverloadableOperatorSymbol() (string, bool) {
	if p.peekOperator("(") {
		// The call operator, spelled `operator()`.
		rp := p.mark()
		p.advance()
		if _, ok := p.expectOperator(")"); ok {
			return "()", true
		}
		p.restore(rp)
		return "", false
	}
	if t, ok := p.expectOperator(overloadableOperatorSymbols...); ok {
		return t.Content, true
	}
	return "", false
}

func (p *parser) parseAliasDef(diags *diag.Collection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, from position.Point) *ast.AliasDefinition {
	p.advance() // 'alias'
	name, ok := p.expectIdentifier()
	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected an alias name")
	}
	if _, ok := p.expectOperator("="); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '=' in alias definition")
	}
	target := p.parseType(diags, defaultTypeFlags)
	p.expectSemicolon(diags)

	return &ast.AliasDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		Name:       name.Content,
		Target:     target,
	}
}

// recordFailedAlternative compiles probe's recorded diagnostic (if any)
// into ordered, scored by how far the cursor advanced before the
// alternative gave up — the importance §4.2.7 uses to pick the most
// plausible failure to report when every alternative at a position
// fails.
func (p *parser) recordFailedAlternative(ordered *diag.OrderedCollection, probe *diag.Collection, rp restorePoint, fallback string) {
	importance := p.idx - int(rp)
	if d, ok := probe.First(); ok {
		ordered.Add(diag.NewOrdered(importance, d))
		return
	}
	ordered.Add(diag.NewOrdered(importance, diag.At(diag.Error, fallback, position.Location{Position: p.here(), File: p.file})))
}
