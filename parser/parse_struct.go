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

// parseStructDef parses `struct_def ::= attr* modifier* 'struct' ident
// template? '{' member* '}'` (§4.2.6). attrs and mods were already
// consumed by the caller as part of the shared top-level prefix.
func (p *parser) parseStructDef(diags *diag.Collection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, from position.Point) *ast.StructDefinition {
	p.advance() // 'struct'

	name, ok := p.expectIdentifier()
	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected a struct name")
	}

	var template *ast.TemplateInfo
	if p.peekOperator("<") {
		template = p.parseTemplateInfo(diags)
	}

	s := &ast.StructDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		Name:       name.Content,
		Template:   template,
	}

	if _, ok := p.expectOperator("{"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '{' to open struct body")
		s.Base = p.base(from)
		return s
	}

	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "struct members")
		if p.peekOperator("}") || p.atEOF() {
			break
		}
		before := p.mark()
		p.parseMember(diags, s)
		p.ensureProgress(diags, before)
	}

	if _, ok := p.expectOperator("}"); !ok {
		p.report(diags, diag.Error, p.here(), "Expected '}' to close struct body")
	}
	s.Base = p.base(from)
	return s
}

// parseTemplateInfo parses `template ::= '<' ident (',' ident)* '>'`.
func (p *parser) parseTemplateInfo(diags *diag.Collection) *ast.TemplateInfo {
	from := p.startPoint()
	p.advance() // '<'

	var params []string
	for iter := 0; iter < maxProductionIterations; iter++ {
		p.checkIterations(iter, "template parameters")
		name, ok := p.expectIdentifier()
		if !ok {
			p.report(diags, diag.Error, p.here(), "Expected a template parameter name")
			break
		}
		params = append(params, name.Content)
		if _, ok := p.expectOperator(","); ok {
			continue
		}
		break
	}

	if !p.consumeGenericClose() {
		p.report(diags, diag.Error, p.here(), "Expected '>' to close template parameter list")
	}
	return &ast.TemplateInfo{Base: p.base(from), Params: params}
}

// parseMember parses one `member ::= field_def ';' | function_def |
// general_function_def | constructor_def | operator_def` (§4.2.6) and
// appends it onto the right slice of s.
//
// constructor_def is the only member form anchored by a leading keyword
// ('new'); the other four all start with a type, so the type is parsed
// once and the token immediately following it (an identifier name,
// 'general', or 'operator') decides which of the remaining four this is
// — no backtracking is needed, since that following token is never
// itself ambiguous.
func (p *parser) parseMember(diags *diag.Collection, s *ast.StructDefinition) {
	from := p.startPoint()
	attrs := p.parseAttributeUsages(diags)
	mods := p.parseModifiers()

	if p.peekIsKeyword("new") {
		s.Constructors = append(s.Constructors, p.parseConstructorDef(diags, attrs, mods, from))
		return
	}

	typ := p.parseType(diags, defaultTypeFlags)

	switch {
	case p.peekIsKeyword("general"):
		s.GeneralMethods = append(s.GeneralMethods, p.parseGeneralFunctionDef(diags, attrs, mods, typ, from))
		return
	case p.peekIsKeyword("operator"):
		if op := p.finishOperatorDef(diags, attrs, mods, typ, from); op != nil {
			s.Operators = append(s.Operators, op)
		}
		return
	}

	name, ok := p.expectIdentifier()
	if ok && p.peekOperator("(") {
		if fn := p.finishFunctionDef(diags, attrs, mods, typ, name.Content, from); fn != nil {
			s.Methods = append(s.Methods, fn)
		}
		return
	}

	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected a member name")
	}
	p.expectSemicolon(diags)
	s.Fields = append(s.Fields, &ast.FieldDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		Type:       typ,
		Name:       name.Content,
	})
}

// parseGeneralFunctionDef parses `type 'general' general_symbol
// '(' params ')' block`.
func (p *parser) parseGeneralFunctionDef(diags *diag.Collection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, retType ast.TypeExpr, from position.Point) *ast.GeneralFunctionDefinition {
	p.advance() // 'general'
	kind, ok := p.parseGeneralSymbol()
	if !ok {
		p.report(diags, diag.Error, p.here(), "Expected '[]', '[]=', or '~'")
	}

	p.checkModifiersAllowed(diags, mods, generalModifiers, p.base(from).Pos, "a general function")
	params, _ := p.parseParameterList(diags, parameterContext{allowDefaults: false, allowed: generalModifiers})
	body := p.parseBlock(diags)

	return &ast.GeneralFunctionDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		Kind:       kind,
		ReturnType: retType,
		Parameters: params,
		Body:       body,
	}
}

// parseGeneralSymbol parses one of '[]', '[]=', or '~'. The tokenizer
// lexes '[', ']', and '=' as separate single-character operators, so
// '[]=' is three tokens read in sequence.
func (p *parser) parseGeneralSymbol() (ast.GeneralFunctionKind, bool) {
	if _, ok := p.expectOperator("~"); ok {
		return ast.GeneralDestructor, true
	}
	if _, ok := p.expectOperator("["); ok {
		if _, ok := p.expectOperator("]"); !ok {
			return 0, false
		}
		if _, ok := p.expectOperator("="); ok {
			return ast.GeneralIndexerSet, true
		}
		return ast.GeneralIndexerGet, true
	}
	return 0, false
}

// parseConstructorDef parses `'new' '(' params ')' block` (no return
// type; the struct's own type is implicit).
func (p *parser) parseConstructorDef(diags *diag.Collection, attrs []*ast.AttributeUsage, mods ast.ModifierSet, from position.Point) *ast.ConstructorDefinition {
	p.advance() // 'new'
	p.checkModifiersAllowed(diags, mods, constructorModifiers, p.base(from).Pos, "a constructor")
	params, _ := p.parseParameterList(diags, parameterContext{allowDefaults: true, allowed: constructorModifiers})
	body := p.parseBlock(diags)

	return &ast.ConstructorDefinition{
		Base:       p.base(from),
		Attributes: attrs,
		Modifiers:  mods,
		Parameters: params,
		Body:       body,
	}
}
