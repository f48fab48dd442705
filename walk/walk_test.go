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

package walk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftlang/drift/ast"
	"github.com/driftlang/drift/walk"
)

func TestNodesPreOrder(t *testing.T) {
	// while (x) { y = y + 1; }
	cond := &ast.Identifier{Name: "x"}
	add := &ast.BinaryOperatorCall{
		Operator: "+",
		Left:     &ast.Identifier{Name: "y"},
		Right:    &ast.Literal{Kind: ast.BaseDecimal, Raw: "1"},
	}
	assign := &ast.SimpleAssignment{Target: &ast.Identifier{Name: "y"}, Value: add}
	body := &ast.Block{Statements: []ast.Stmt{assign}}
	loop := &ast.While{Condition: cond, Body: body}

	var kinds []string
	walk.Nodes(loop, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.While:
			kinds = append(kinds, "While")
		case *ast.Identifier:
			kinds = append(kinds, "Identifier")
		case *ast.Block:
			kinds = append(kinds, "Block")
		case *ast.SimpleAssignment:
			kinds = append(kinds, "SimpleAssignment")
		case *ast.BinaryOperatorCall:
			kinds = append(kinds, "BinaryOperatorCall")
		case *ast.Literal:
			kinds = append(kinds, "Literal")
		}
		return true
	})

	require.Equal(t, []string{
		"While", "Identifier", "Block", "SimpleAssignment",
		"Identifier", "BinaryOperatorCall", "Identifier", "Literal",
	}, kinds)
}

func TestNodesShortCircuit(t *testing.T) {
	inner := &ast.Identifier{Name: "inner"}
	block := &ast.Block{Statements: []ast.Stmt{
		&ast.ExpressionStatement{Expression: inner},
	}}

	var visited int
	walk.Nodes(block, func(n ast.Node) bool {
		visited++
		_, isBlock := n.(*ast.Block)
		return !isBlock // stop descending as soon as we see the Block itself
	})

	require.Equal(t, 1, visited)
}

func TestFunctionLinkedDedupesAliasedReference(t *testing.T) {
	destructor := &ast.GeneralFunctionDefinition{Kind: ast.GeneralDestructor}

	del1 := &ast.Delete{Value: &ast.Identifier{Name: "a"}, Reference: destructor}
	del2 := &ast.Delete{Value: &ast.Identifier{Name: "b"}, Reference: destructor}
	block := &ast.Block{Statements: []ast.Stmt{
		&ast.ExpressionStatement{Expression: &ast.Literal{}}, // unrelated filler
	}}
	_ = block

	var reported []ast.Def
	walk.FunctionLinked(&ast.Block{Statements: []ast.Stmt{del1, del2}}, func(ast.Node) bool { return true }, func(fn ast.Def) {
		reported = append(reported, fn)
	})

	require.Len(t, reported, 1)
	require.Same(t, destructor, reported[0])
}

func TestResultVisitsAllTopLevelBuckets(t *testing.T) {
	r := &ast.ParserResult{
		Usings:    []*ast.UsingDefinition{{Path: "a.b"}},
		Aliases:   []*ast.AliasDefinition{{Name: "X", Target: &ast.TypeInstanceSimple{Name: "int"}}},
		Functions: []*ast.FunctionDefinition{{Name: "f", ReturnType: &ast.TypeInstanceSimple{Name: "void"}, Parameters: &ast.ParameterDefinitionCollection{}}},
	}

	var kinds []string
	walk.Result(r, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.UsingDefinition:
			kinds = append(kinds, "Using")
		case *ast.AliasDefinition:
			kinds = append(kinds, "Alias")
		case *ast.FunctionDefinition:
			kinds = append(kinds, "Function")
		}
		return true
	})

	require.Equal(t, []string{"Using", "Alias", "Function"}, kinds)
}
