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

// Parse runs the full `file ::= using* top_item*` grammar over tokens and
// returns the resulting ParserResult (§6.1). Diagnostics discovered along
// the way are appended to diags; parsing never stops early on error, so
// the returned result always reflects a best-effort, possibly
// error-laden, parse of the entire token stream.
//
// A single top-level recover() converts an unreachableStateError (the
// only panic this package ever raises, thrown when a loop exceeds
// maxProductionIterations) into a positioned internal-error diagnostic
// instead of crashing the caller, mirroring §7's "a SyntaxException ...
// is caught at the top of parse(), converted to a diagnostic". A
// ParserResult is still returned, but it is a fresh, empty one: items
// parsed before the panic and the token lists are not kept in it.
func Parse(tokens *token.List, file string, diags *diag.Collection) (result *ast.ParserResult) {
	original := token.NewList(tokens.Clone())
	p := newParser(tokens, file)
	defer recoverUnreachableState(p, diags, &result)

	result = p.parseFile(diags)
	result.OriginalTokens = original
	result.FilteredTokens = tokens
	return result
}

// ParseExpression runs the restricted mode in which the outer
// semicolon/top-level rules are relaxed and a single expression is
// permitted (§6.1). The expression is wrapped in an ExpressionStatement
// so callers get the same ParserResult shape as Parse. See Parse for the
// recover() boundary this shares.
func ParseExpression(tokens *token.List, file string, diags *diag.Collection) (result *ast.ParserResult) {
	original := token.NewList(tokens.Clone())
	p := newParser(tokens, file)
	defer recoverUnreachableState(p, diags, &result)

	expr := p.parseExpr(diags)

	if !p.atEOF() {
		p.report(diags, diag.Error, p.here(), "Unexpected trailing tokens after expression")
	}

	stmt := &ast.ExpressionStatement{
		Base:       ast.Base{Pos: expr.Position(), File: file},
		Expression: expr,
	}
	result = &ast.ParserResult{
		TopLevelStatements: []ast.Stmt{stmt},
		OriginalTokens:     original,
		FilteredTokens:     tokens,
	}
	return result
}

// recoverUnreachableState is the shared recover() boundary for Parse and
// ParseExpression. A panic of any other type is not ours to handle and is
// re-raised.
func recoverUnreachableState(p *parser, diags *diag.Collection, result **ast.ParserResult) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(unreachableStateError)
	if !ok {
		panic(r)
	}
	if diags != nil {
		diags.Add(diag.At(diag.Error, "internal: "+err.Error(), position.Location{Position: p.here(), File: p.file}).AsInternal())
	}
	if *result == nil {
		*result = &ast.ParserResult{}
	}
}
