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
	"github.com/driftlang/drift/position"
)

func loc(file string, byteOff int) position.Location {
	p := position.AtPoint(position.Point{Byte: byteOff, Line: 1, Column: byteOff + 1})
	return position.Location{Position: p, File: file}
}

func TestDiagnosticEqual(t *testing.T) {
	t.Parallel()

	a := diag.At(diag.Error, "expected a statement", loc("a.drift", 5))
	b := diag.At(diag.Error, "expected a statement", loc("a.drift", 5))
	c := diag.At(diag.Error, "expected a statement", loc("a.drift", 6))
	d := diag.At(diag.Warning, "expected a statement", loc("a.drift", 5))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestContextlessDiagnosticsIgnoreLocation(t *testing.T) {
	t.Parallel()

	a := diag.New(diag.Error, "file too large")
	b := diag.New(diag.Error, "file too large")
	assert.True(t, a.Equal(b))
}

func TestBreakingChains(t *testing.T) {
	t.Parallel()

	d := diag.New(diag.Hint, "is this ok?").Breaking()
	assert.True(t, d.ShouldBreak)
}
