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

func TestAddIsIdempotent(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	d := diag.At(diag.Error, "expected ';'", loc("a.drift", 10))
	c.Add(d)
	c.Add(d)

	assert.Equal(t, 1, c.Len())
}

func TestAddOrdersPositionedDiagnosticsBySourcePosition(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	c.Add(diag.At(diag.Warning, "third", loc("a.drift", 30)))
	c.Add(diag.At(diag.Warning, "first", loc("a.drift", 5)))
	c.Add(diag.At(diag.Warning, "second", loc("a.drift", 15)))

	var order []string
	c.Each(func(d diag.Diagnostic) bool {
		order = append(order, d.Message)
		return true
	})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestContextlessPrintBeforePositioned(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	c.Add(diag.At(diag.Warning, "positioned", loc("a.drift", 1)))
	c.Add(diag.New(diag.Warning, "contextless"))

	var order []string
	c.Each(func(d diag.Diagnostic) bool {
		order = append(order, d.Message)
		return true
	})

	assert.Equal(t, []string{"contextless", "positioned"}, order)
}

func TestHasErrors(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	assert.False(t, c.HasErrors())

	c.Add(diag.New(diag.Warning, "just a warning"))
	assert.False(t, c.HasErrors())

	c.Add(diag.New(diag.Error, "boom"))
	assert.True(t, c.HasErrors())
}

func TestOverrideApplyMergesIntoParent(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	c.Add(diag.New(diag.Warning, "outer"))

	c.PushOverride()
	c.Add(diag.New(diag.Error, "speculative"))
	c.Apply()

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.HasErrors())
}

func TestOverrideDropDiscards(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	c.Add(diag.New(diag.Warning, "outer"))

	c.PushOverride()
	c.Add(diag.New(diag.Error, "speculative"))
	c.Drop()

	assert.Equal(t, 1, c.Len())
	assert.False(t, c.HasErrors())
}

func TestOverridePopMismatchPanics(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	assert.Panics(t, func() { c.Apply() })
}

func TestThrowReturnsFirstError(t *testing.T) {
	t.Parallel()

	var c diag.Collection
	assert.NoError(t, c.Throw())

	c.Add(diag.At(diag.Error, "bad token", loc("a.drift", 3)))
	err := c.Throw()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad token")
}
