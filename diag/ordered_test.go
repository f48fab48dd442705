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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driftlang/drift/diag"
)

func TestOrderedCompileKeepsOnlyMaxImportance(t *testing.T) {
	t.Parallel()

	var oc diag.OrderedCollection
	oc.Add(diag.NewOrdered(1, diag.New(diag.Error, "expected function or struct")))
	oc.Add(diag.NewOrdered(3, diag.New(diag.Error, "expected ')' after parameter list")))
	oc.Add(diag.NewOrdered(3, diag.New(diag.Error, "expected a type")))

	out := oc.Compile()
	assert.Len(t, out, 2)
	for _, d := range out {
		assert.NotEqual(t, "expected function or struct", d.Message)
	}
}

func TestOrderedCompileEmpty(t *testing.T) {
	t.Parallel()

	var oc diag.OrderedCollection
	assert.Nil(t, oc.Compile())
}

func TestOrderedCompileIntoCollection(t *testing.T) {
	t.Parallel()

	var oc diag.OrderedCollection
	oc.Add(diag.NewOrdered(5, diag.New(diag.Error, "winner")))
	oc.Add(diag.NewOrdered(2, diag.New(diag.Error, "loser")))

	var c diag.Collection
	oc.CompileInto(&c)

	assert.Equal(t, 1, c.Len())
	d, ok := c.First()
	assert.True(t, ok)
	assert.Equal(t, "winner", d.Message)
}
