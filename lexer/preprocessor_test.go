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

const s4Source = `#if FEATURE
int f() {}
#else
int g() {}
#endif
`

func identifierContents(list *token.List) []string {
	var out []string
	for i := 0; i < list.Len(); i++ {
		tok := list.At(i)
		if tok.Kind == token.Identifier {
			out = append(out, tok.Content)
		}
	}
	return out
}

func TestPreprocessorSkipsElseBranchWhenDefined(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize(s4Source, "t.drift", &diags, map[string]bool{"FEATURE": true})

	names := identifierContents(list)
	assert.Contains(t, names, "f")
	assert.NotContains(t, names, "g")
}

func TestPreprocessorTakesElseBranchWhenUndefined(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize(s4Source, "t.drift", &diags, nil)

	names := identifierContents(list)
	assert.NotContains(t, names, "f")
	assert.Contains(t, names, "g")
}

func TestSkippedTokensAreRetaggedButPreserved(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	list := lexer.Tokenize(s4Source, "t.drift", &diags, map[string]bool{"FEATURE": true})

	var sawSkipped bool
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Kind == token.PreprocessSkipped && list.At(i).Content == "g" {
			sawSkipped = true
		}
	}
	assert.True(t, sawSkipped)
}

func TestElseifWithoutIfIsError(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	lexer.Tokenize("#elseif X\n#endif\n", "t.drift", &diags, nil)

	assert.True(t, diags.HasErrors())
}

func TestUnclosedIfWarns(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	lexer.Tokenize("#if X\nint x;\n", "t.drift", &diags, nil)

	assert.False(t, diags.HasErrors())

	var sawWarning bool
	diags.Each(func(d diag.Diagnostic) bool {
		if d.Level == diag.Warning {
			sawWarning = true
		}
		return true
	})
	assert.True(t, sawWarning)
}

func TestDefineThenUndefine(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	src := "#define X\n#if X\nint a;\n#endif\n#undefine X\n#if X\nint b;\n#endif\n"
	list := lexer.Tokenize(src, "t.drift", &diags, nil)

	names := identifierContents(list)
	assert.Contains(t, names, "a")
	assert.NotContains(t, names, "b")
}

func TestDefineMissingArgumentIsError(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	lexer.Tokenize("#define\n", "t.drift", &diags, nil)

	assert.True(t, diags.HasErrors())
}

func TestNestedIfElseif(t *testing.T) {
	t.Parallel()

	var diags diag.Collection
	src := "#if A\nint a;\n#elseif B\nint b;\n#else\nint c;\n#endif\n"
	list := lexer.Tokenize(src, "t.drift", &diags, map[string]bool{"B": true})

	names := identifierContents(list)
	assert.NotContains(t, names, "a")
	assert.Contains(t, names, "b")
	assert.NotContains(t, names, "c")
}
