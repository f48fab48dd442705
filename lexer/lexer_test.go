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

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/lexer"
	"github.com/driftlang/drift/token"
)

func kinds(list *token.List) []token.Kind {
	out := make([]token.Kind, list.Len())
	for i := range out {
		out[i] = list.At(i).Kind
	}
	return out
}

func contents(list *token.List) []string {
	out := make([]string, list.Len())
	for i := range out {
		out[i] = list.At(i).Content
	}
	return out
}

func TestIdentifiersAndOperators(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize("a + b", "t.drift", &diags, nil)

	assert.Equal(t, []string{"a", " ", "+", " ", "b"}, contents(list))
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Whitespace, token.Operator, token.Whitespace, token.Identifier,
	}, kinds(list))
	assert.False(t, diags.HasErrors())
}

func TestNumericLiterals(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize("1_000 3.14 0x1_F 0b1010", "t.drift", &diags, nil)

	var nonTrivia []token.Token
	for i := 0; i < list.Len(); i++ {
		if !list.At(i).Kind.IsTrivia() {
			nonTrivia = append(nonTrivia, list.At(i))
		}
	}

	assert.Len(t, nonTrivia, 4)
	assert.Equal(t, token.LiteralNumber, nonTrivia[0].Kind)
	assert.Equal(t, token.LiteralFloat, nonTrivia[1].Kind)
	assert.Equal(t, token.LiteralHex, nonTrivia[2].Kind)
	assert.Equal(t, token.LiteralBinary, nonTrivia[3].Kind)
	assert.False(t, diags.HasErrors())
}

func TestInvalidHexLiteral(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize("0x", "t.drift", &diags, nil)

	assert.Equal(t, token.LiteralHex, list.At(0).Kind)
	assert.True(t, diags.HasErrors())
	d, _ := diags.First()
	assert.Equal(t, "Invalid hex literal", d.Message)
}

func TestInvalidBinaryLiteral(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize("0b", "t.drift", &diags, nil)

	assert.Equal(t, token.LiteralBinary, list.At(0).Kind)
	assert.True(t, diags.HasErrors())
}

func TestUnderscoreOnlyLiteralNoExtraDiagnostic(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize("0x_", "t.drift", &diags, nil)

	assert.Equal(t, token.LiteralHex, list.At(0).Kind)
	assert.False(t, diags.HasErrors())
}

func TestStringAndCharLiterals(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize(`"a\"b" 'x'`, "t.drift", &diags, nil)

	var nonTrivia []token.Token
	for i := 0; i < list.Len(); i++ {
		if !list.At(i).Kind.IsTrivia() {
			nonTrivia = append(nonTrivia, list.At(i))
		}
	}
	assert.Len(t, nonTrivia, 2)
	assert.Equal(t, token.LiteralString, nonTrivia[0].Kind)
	assert.Equal(t, `"a\"b"`, nonTrivia[0].Content)
	assert.Equal(t, token.LiteralCharacter, nonTrivia[1].Kind)
	assert.False(t, diags.HasErrors())
}

func TestLineBreakIsItsOwnKind(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize("a\nb", "t.drift", &diags, nil)

	assert.Equal(t, []token.Kind{token.Identifier, token.LineBreak, token.Identifier}, kinds(list))
	assert.Equal(t, 2, list.At(2).Pos.Start.Line)
	assert.Equal(t, 1, list.At(2).Pos.Start.Column)
}

func TestDoubleAngleLexesAsOneToken(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize(">>", "t.drift", &diags, nil)

	assert.Equal(t, 1, list.Len())
	assert.Equal(t, ">>", list.At(0).Content)
}
