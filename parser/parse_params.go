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
)

// modifierKeywords is the closed set of modifier/protection keywords
// recognized by parseModifiers (§6.4).
var modifierKeywords = []string{
	string(ast.ModifierInline), string(ast.ModifierConst), string(ast.ModifierRef),
	string(ast.ModifierTemp), string(ast.ModifierThis),
	string(ast.ModifierExport), string(ast.ModifierPrivate),
}

// Allowed-modifier sets per caller (§4.2.5 "Allowed modifiers set depends
// on the caller").
var (
	functionModifiers    = ast.ModifierSet{ast.ModifierInline, ast.ModifierConst, ast.ModifierRef, ast.ModifierTemp, ast.ModifierThis}
	operatorModifiers    = ast.ModifierSet{ast.ModifierInline, ast.ModifierConst, ast.ModifierRef, ast.ModifierThis}
	constructorModifiers = ast.ModifierSet{ast.ModifierConst, ast.ModifierRef, ast.ModifierTemp}
	lambdaModifiers      = ast.ModifierSet{ast.ModifierConst, ast.ModifierRef}
	generalModifiers     = ast.ModifierSet{ast.ModifierConst, ast.ModifierRef, ast.ModifierThis}

	defModifiers = ast.ModifierSet{ast.ModifierInline, ast.ModifierExport, ast.ModifierPrivate}
)

// parameterContext carries the per-caller constraints §4.2.5 names:
// which modifiers are legal on a parameter, and whether default values
// are syntactically permitted at all in this position.
type parameterContext struct {
	allowDefaults bool
	allowed       ast.ModifierSet
}

// parseModifiers greedily consumes zero or more modifier keywords.
func (p *parser) parseModifiers() ast.ModifierSet {
	var mods ast.ModifierSet
	for {
		t, ok := p.expectIdentifier(modifierKeywords...)
		if !ok {
			return mods
		}
		mods = append(mods, ast.Modifier(t.Content))
	}
}

// checkModifiersAllowed reports (via diagnostic, never by removing
// anything) any modifier in mods that is not in allowed (§3.4 invariant
// 2, §8.1 invariant 3).
func (p *parser) checkModifiersAllowed(diags *diag.Collection, mods, allowed ast.ModifierSet, pos position.Position, context string) {
	if mods.SubsetOf(allowed) {
		return
	}
	p.report(diags, diag.Error, pos, "Modifier not allowed on "+context)
}

// parseParameterList parses `'(' (param (',' param)*)? ')'` (§4.2.5),
// enforcing (by diagnostic, not removal):
//   - allowed modifier set per ctx,
//   - `this` only at index 0 (§8.1 invariant 3 analogue),
//   - once a parameter has a default, every later one must too,
//   - defaults are only kept when ctx.allowDefaults is true; otherwise the
//     default expression is parsed past, reported and dropped.
//
// The returned bool reports whether the list actually closed with a ')';
// a caller whose construct can only make sense once its parameter list is
// known-complete (§8.4 S5) should treat false together with p.atEOF() as
// "the input ran out here" rather than keep a degenerate result.
func (p *parser) parseParameterList(diags *diag.Collection, ctx parameterContext) (*ast.ParameterDefinitionCollection, bool) {
	from := p.startPoint()
	if _, ok := p.expectOperator("("); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '('")
		return &ast.ParameterDefinitionCollection{
			Base:               p.base(from),
			AllowDefaultValues: ctx.allowDefaults,
		}, false
	}

	var params []*ast.ParameterDefinition
	sawDefault := false
	if !p.peekOperator(")") {
		for iter := 0; iter < maxProductionIterations; iter++ {
			p.checkIterations(iter, "parameter list")
			param := p.parseParameter(diags, ctx, len(params))

			if param.Modifiers.Has(ast.ModifierThis) && len(params) != 0 {
				p.report(diags, diag.Error, param.Pos, "'this' modifier is only valid on the first parameter")
			}
			if param.Default == nil && sawDefault {
				p.report(diags, diag.Error, param.Pos, "A parameter without a default value may not follow one with a default value")
			}
			if param.Default != nil {
				sawDefault = true
			}

			params = append(params, param)
			if _, ok := p.expectOperator(","); ok {
				continue
			}
			break
		}
	}

	_, closed := p.expectOperator(")")
	if !closed {
		p.report(diags, diag.Error, p.here(), "Expected ')' to close parameter list")
	}

	return &ast.ParameterDefinitionCollection{
		Base:               p.base(from),
		Parameters:         params,
		AllowDefaultValues: ctx.allowDefaults,
	}, closed
}

// parseParameter parses `param ::= modifier* type ident ('=' expr)?`.
func (p *parser) parseParameter(diags *diag.Collection, ctx parameterContext, index int) *ast.ParameterDefinition {
	from := p.startPoint()
	mods := p.parseModifiers()
	p.checkModifiersAllowed(diags, mods, ctx.allowed, p.base(from).Pos, "a parameter")

	typ := p.parseType(diags, defaultTypeFlags)

	name, ok := p.expectIdentifier()
	var nameStr string
	if ok {
		nameStr = name.Content
	} else {
		p.report(diags, diag.Error, p.here(), "Expected a parameter name")
	}

	var def ast.Expr
	if _, ok := p.expectOperator("="); ok {
		if !ctx.allowDefaults {
			p.report(diags, diag.Error, p.here(), "Default values are not allowed here")
		}
		if value := p.parseExpr(diags); ctx.allowDefaults {
			def = value
		}
	}

	return &ast.ParameterDefinition{
		Base:      p.base(from),
		Modifiers: mods,
		Type:      typ,
		Name:      nameStr,
		Default:   def,
	}
}
