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

func TestSplitDoubleAngle(t *testing.T) {
	t.Parallel()

	closeAngle := token.Token{
		Kind:    token.Operator,
		Content: ">>",
		Pos:     position.New(position.Point{Byte: 5, Line: 1, Column: 6}, position.Point{Byte: 7, Line: 1, Column: 8}),
	}
	list := token.NewList([]token.Token{closeAngle})

	list.SplitDoubleAngle(0)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, ">", list.At(0).Content)
	assert.Equal(t, ">", list.At(1).Content)
	assert.True(t, list.At(0).IsSynthetic)
	assert.Equal(t, list.At(0).Pos.End, list.At(1).Pos.Start)
}

// An unexpected ">>>" splits into ">" + ">>" rather than three single-byte
// ">" tokens (spec.md §9 Open Question (b)).
func TestSplitTripleAngle(t *testing.T) {
	t.Parallel()

	tok := token.Token{
		Kind:    token.Operator,
		Content: ">>>",
		Pos:     position.New(position.Point{Byte: 0}, position.Point{Byte: 3}),
	}
	list := token.NewList([]token.Token{tok})
	list.SplitDoubleAngle(0)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, ">", list.At(0).Content)
	assert.Equal(t, ">>", list.At(1).Content)
	assert.Equal(t, list.At(0).Pos.End, list.At(1).Pos.Start)
}

func TestSplitClosureModifier(t *testing.T) {
	t.Parallel()

	word := token.Token{
		Kind:    token.Identifier,
		Content: "@closure",
		Pos:     position.New(position.Point{Byte: 0, Line: 1, Column: 1}, position.Point{Byte: 8, Line: 1, Column: 9}),
	}
	list := token.NewList([]token.Token{word})

	list.SplitClosureModifier(0)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, token.Operator, list.At(0).Kind)
	assert.Equal(t, "@", list.At(0).Content)
	assert.Equal(t, token.Identifier, list.At(1).Kind)
	assert.Equal(t, "closure", list.At(1).Content)
}

func TestSplitPreservesSurroundingTokens(t *testing.T) {
	t.Parallel()

	before := token.Token{Content: "List", Kind: token.Identifier}
	angle := token.Token{
		Content: ">>",
		Kind:    token.Operator,
		Pos:     position.New(position.Point{Byte: 4}, position.Point{Byte: 6}),
	}
	after := token.Token{Content: ";", Kind: token.Operator}

	list := token.NewList([]token.Token{before, angle, after})
	list.SplitDoubleAngle(1)

	assert.Equal(t, 4, list.Len())
	assert.Equal(t, "List", list.At(0).Content)
	assert.Equal(t, ">", list.At(1).Content)
	assert.Equal(t, ">", list.At(2).Content)
	assert.Equal(t, ";", list.At(3).Content)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	list := token.NewList([]token.Token{{Content: "a"}, {Content: "b"}})
	snapshot := list.Clone()

	list.Split(0, token.Token{Content: "z"})

	assert.Equal(t, "a", snapshot[0].Content)
	assert.Equal(t, "z", list.At(0).Content)
}
