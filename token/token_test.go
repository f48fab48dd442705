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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftlang/drift/position"
	"github.com/driftlang/drift/token"
)

func TestNilToken(t *testing.T) {
	t.Parallel()

	var tok token.Token
	assert.True(t, tok.IsNil())
	assert.False(t, tok.IsSynthetic)
	assert.Equal(t, token.Unrecognized, tok.Kind)
}

func TestConcat(t *testing.T) {
	t.Parallel()

	a := token.Token{
		Kind:    token.Identifier,
		Content: "fo",
		Pos:     position.New(position.Point{Byte: 0, Line: 1, Column: 1}, position.Point{Byte: 2, Line: 1, Column: 3}),
	}
	b := token.Token{
		Kind:    token.Identifier,
		Content: "o",
		Pos:     position.New(position.Point{Byte: 2, Line: 1, Column: 3}, position.Point{Byte: 3, Line: 1, Column: 4}),
	}

	joined := token.Concat(a, b)
	assert.Equal(t, "foo", joined.Content)
	assert.Equal(t, a.Pos.Start, joined.Pos.Start)
	assert.Equal(t, b.Pos.End, joined.Pos.End)
}

func TestConcatNonAdjacentPanics(t *testing.T) {
	t.Parallel()

	a := token.Token{Pos: position.New(position.Point{Byte: 0}, position.Point{Byte: 1})}
	b := token.Token{Pos: position.New(position.Point{Byte: 5}, position.Point{Byte: 6})}
	assert.Panics(t, func() { token.Concat(a, b) })
}

func TestSlice(t *testing.T) {
	t.Parallel()

	tok := token.Token{
		Kind:    token.Operator,
		Content: ">>",
		Pos:     position.New(position.Point{Byte: 10, Line: 1, Column: 11}, position.Point{Byte: 12, Line: 1, Column: 13}),
	}

	left, right, ok := tok.Slice(1)
	assert.True(t, ok)
	assert.Equal(t, ">", left.Content)
	assert.Equal(t, ">", right.Content)
	assert.Equal(t, tok.Pos.Start, left.Pos.Start)
	assert.Equal(t, tok.Pos.End, right.Pos.End)
	assert.Equal(t, left.Pos.End, right.Pos.Start)
}

func TestSliceRejectsEscapeBoundary(t *testing.T) {
	t.Parallel()

	tok := token.Token{
		Kind:    token.LiteralString,
		Content: `a\nb`,
		Pos:     position.New(position.Point{Byte: 0}, position.Point{Byte: 4}),
	}

	// Splitting between '\\' and 'n' would separate an escape from the
	// character it escapes.
	_, _, ok := tok.Slice(2)
	assert.False(t, ok)
}

func TestSliceRejectsUTF8Continuation(t *testing.T) {
	t.Parallel()

	tok := token.Token{
		Kind:    token.LiteralString,
		Content: "café",
		Pos:     position.New(position.Point{Byte: 0}, position.Point{Byte: 5}),
	}

	// The 'é' is encoded as two bytes; splitting inside it is invalid.
	_, _, ok := tok.Slice(4)
	assert.False(t, ok)
}

func TestMissingTokenIsSynthetic(t *testing.T) {
	t.Parallel()

	m := token.Missing(token.Operator, position.AtPoint(position.Point{Byte: 3, Line: 1, Column: 4}))
	assert.True(t, m.IsSynthetic)
	assert.True(t, m.Pos.IsZeroWidth())
}
