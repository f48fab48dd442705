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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlang/drift/ast"
	"github.com/driftlang/drift/position"
)

func pos(a, b int) position.Position {
	return position.New(
		position.Point{Byte: a, Line: 1, Column: a + 1},
		position.Point{Byte: b, Line: 1, Column: b + 1},
	)
}

func TestIsMissingDistinguishesVariants(t *testing.T) {
	t.Parallel()

	missing := &ast.MissingExpression{Base: ast.Base{Pos: pos(4, 4), File: "t.drift"}}
	ordinary := &ast.Identifier{Base: ast.Base{Pos: pos(0, 1), File: "t.drift"}, Name: "a"}

	assert.True(t, ast.IsMissing(missing))
	assert.False(t, ast.IsMissing(ordinary))
}

func TestMissingNodesCompareByIdentity(t *testing.T) {
	t.Parallel()

	a := &ast.MissingStatement{Base: ast.Base{Pos: pos(4, 4), File: "t.drift"}}
	b := &ast.MissingStatement{Base: ast.Base{Pos: pos(4, 4), File: "t.drift"}}

	assert.NotSame(t, a, b)
	assert.True(t, a != b) // pointer identity, not structural equality
	assert.Same(t, a, a)
}

func TestModifierSetSubsetOf(t *testing.T) {
	t.Parallel()

	allowed := ast.ModifierSet{ast.ModifierInline, ast.ModifierConst}

	assert.True(t, ast.ModifierSet{ast.ModifierConst}.SubsetOf(allowed))
	assert.False(t, ast.ModifierSet{ast.ModifierRef}.SubsetOf(allowed))
}

func TestPrintRoundTripsSimpleStruct(t *testing.T) {
	t.Parallel()

	intType := &ast.TypeInstanceSimple{Name: "int"}
	structDef := &ast.StructDefinition{
		Name: "Point",
		Fields: []*ast.FieldDefinition{
			{Type: intType, Name: "x"},
			{Type: intType, Name: "y"},
		},
	}

	out := ast.Print(structDef)
	assert.Contains(t, out, "struct Point")
	assert.Contains(t, out, "int x;")
	assert.Contains(t, out, "int y;")
}

func TestPrintBinaryOperatorPrecedenceTree(t *testing.T) {
	t.Parallel()

	one := &ast.Literal{Kind: ast.BaseDecimal, Raw: "1"}
	two := &ast.Literal{Kind: ast.BaseDecimal, Raw: "2"}
	three := &ast.Literal{Kind: ast.BaseDecimal, Raw: "3"}

	mul := &ast.BinaryOperatorCall{Operator: "*", Left: two, Right: three}
	add := &ast.BinaryOperatorCall{Operator: "+", Left: one, Right: mul}

	require.Equal(t, "1 + 2 * 3", ast.Print(add))
}

func TestParserResultEmpty(t *testing.T) {
	t.Parallel()

	r := &ast.ParserResult{}
	assert.True(t, r.Empty())

	r.Functions = append(r.Functions, &ast.FunctionDefinition{Name: "f"})
	assert.False(t, r.Empty())
}

func TestParameterThisOnlyAtIndexZeroIsCallerEnforced(t *testing.T) {
	t.Parallel()

	// ParameterDefinitionCollection itself does not enforce invariant 3;
	// it only carries what the parser decided. This documents the shape
	// the parser is expected to reject.
	coll := &ast.ParameterDefinitionCollection{
		Parameters: []*ast.ParameterDefinition{
			{Name: "a", Modifiers: ast.ModifierSet{ast.ModifierThis}},
			{Name: "b"},
		},
	}
	assert.True(t, coll.Parameters[0].Modifiers.Has(ast.ModifierThis))
	assert.False(t, coll.Parameters[1].Modifiers.Has(ast.ModifierThis))
}
