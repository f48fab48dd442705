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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftlang/drift/ast"
	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/lexer"
	"github.com/driftlang/drift/parser"
	"github.com/driftlang/drift/token"
)

func parse(t *testing.T, src string) (*ast.ParserResult, *diag.Collection) {
	t.Helper()
	var diags diag.Collection
	toks := lexer.Tokenize(src, "test.drift", &diags, nil)
	return parser.Parse(toks, "test.drift", &diags), &diags
}

// S1: struct Point { int x; int y; } -> one StructDefinition, two fields, no diagnostics.
func TestStructDefinition(t *testing.T) {
	result, diags := parse(t, "struct Point { int x; int y; }")

	require.Equal(t, 0, diags.Len())
	require.Len(t, result.Structs, 1)

	s := result.Structs[0]
	require.Equal(t, "Point", s.Name)
	require.Len(t, s.Fields, 2)
	require.Equal(t, "x", s.Fields[0].Name)
	require.Equal(t, "y", s.Fields[1].Name)
}

// S2: int add(int a, int b) { return a + b; } -> one FunctionDefinition
// whose body is a single Return of a BinaryOperatorCall.
func TestFunctionDefinitionBody(t *testing.T) {
	result, diags := parse(t, "int add(int a, int b) { return a + b; }")

	require.Equal(t, 0, diags.Len())
	require.Len(t, result.Functions, 1)

	fn := result.Functions[0]
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Parameters.Parameters, 2)
	require.Len(t, fn.Body.Statements, 1)

	ret, ok := fn.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryOperatorCall)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)

	lhs, ok := bin.Left.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "a", lhs.Name)
	rhs, ok := bin.Right.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "b", rhs.Name)
}

// S3: int x = 1 + 2 * 3; -> initializer respects * binding tighter than +.
func TestExpressionPrecedence(t *testing.T) {
	result, diags := parse(t, "int x = 1 + 2 * 3;")

	require.Equal(t, 0, diags.Len())
	require.Len(t, result.TopLevelStatements, 1)

	decl, ok := result.TopLevelStatements[0].(*ast.VariableDefinition)
	require.True(t, ok)

	add, ok := decl.Initializer.(*ast.BinaryOperatorCall)
	require.True(t, ok)
	require.Equal(t, "+", add.Operator)

	one, ok := add.Left.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "1", one.Raw)

	mul, ok := add.Right.(*ast.BinaryOperatorCall)
	require.True(t, ok)
	require.Equal(t, "*", mul.Operator)
}

// S4: preprocessor conditional compiles exactly one branch depending on
// which variables are pre-defined.
func TestPreprocessorConditional(t *testing.T) {
	src := "#if FEATURE\nint f() {}\n#else\nint g() {}\n#endif\n"

	var diags diag.Collection
	toks := lexer.Tokenize(src, "test.drift", &diags, map[string]bool{"FEATURE": true})
	result := parser.Parse(toks, "test.drift", &diags)
	require.Len(t, result.Functions, 1)
	require.Equal(t, "f", result.Functions[0].Name)

	var diags2 diag.Collection
	toks2 := lexer.Tokenize(src, "test.drift", &diags2, nil)
	result2 := parser.Parse(toks2, "test.drift", &diags2)
	require.Len(t, result2.Functions, 1)
	require.Equal(t, "g", result2.Functions[0].Name)
}

// S5: a truncated parameter list produces zero functions and at least
// one diagnostic, rather than panicking, looping forever, or keeping a
// degenerate function_def whose parameter list never closed.
func TestTruncatedInputRecovers(t *testing.T) {
	result, diags := parse(t, "int f(")

	require.Empty(t, result.Functions)
	require.Greater(t, diags.Len(), 0)
}

// S6: nested generics closed with ">>" must be split into four separate
// ">" tokens, not consumed as one ">>" operator.
func TestNestedGenericsSplitDoubleAngle(t *testing.T) {
	result, diags := parse(t, "List<Dict<int, int>> m;")
	require.Equal(t, 0, diags.Len())

	require.Len(t, result.TopLevelStatements, 1)
	decl, ok := result.TopLevelStatements[0].(*ast.VariableDefinition)
	require.True(t, ok)

	outer, ok := decl.Type.(*ast.TypeInstanceSimple)
	require.True(t, ok)
	require.Equal(t, "List", outer.Name)
	require.Len(t, outer.TypeArgs, 1)

	inner, ok := outer.TypeArgs[0].(*ast.TypeInstanceSimple)
	require.True(t, ok)
	require.Equal(t, "Dict", inner.Name)
	require.Len(t, inner.TypeArgs, 2)

	angleCloses := 0
	for _, tok := range result.FilteredTokens.View() {
		if tok.Kind == token.Operator && tok.Content == ">" {
			angleCloses++
		}
	}
	require.Equal(t, 4, angleCloses)
}

func TestEmptyInputYieldsEmptyResultNoDiagnostics(t *testing.T) {
	result, diags := parse(t, "")
	require.True(t, result.Empty())
	require.Equal(t, 0, diags.Len())
}
