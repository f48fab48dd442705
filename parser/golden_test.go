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
	"strings"
	"testing"

	"github.com/driftlang/drift/ast"
	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/internal/golden"
	"github.com/driftlang/drift/lexer"
	"github.com/driftlang/drift/parser"
)

// textLookup resolves the single file a corpus case parses, so
// diag.Render can print source snippets under each golden diagnostic.
type textLookup struct {
	file, text string
}

func (l textLookup) Source(file string) (string, bool) {
	if file != l.file {
		return "", false
	}
	return l.text, true
}

// TestCorpus runs every ".drift" fixture under testdata/corpus through the
// tokenizer and parser, comparing the rendered diagnostics and a
// re-printed AST against the adjacent ".diag"/".ast" golden files. Set
// DRIFT_REFRESH_GOLDEN to a glob (e.g. "*") to regenerate them.
func TestCorpus(t *testing.T) {
	corpus := golden.Corpus{
		Root:       "../testdata/corpus",
		Refresh:    "DRIFT_REFRESH_GOLDEN",
		Extensions: []string{"drift"},
		Outputs: []golden.Output{
			{Extension: "diag"},
			{Extension: "ast"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var diags diag.Collection
		toks := lexer.Tokenize(text, path, &diags, nil)
		result := parser.Parse(toks, path, &diags)

		outputs[0] = renderDiagnostics(diags, textLookup{file: path, text: text})
		outputs[1] = printResult(result)
	})
}

func renderDiagnostics(diags diag.Collection, lookup diag.SourceLookup) string {
	var b strings.Builder
	diags.Each(func(d diag.Diagnostic) bool {
		b.WriteString(diag.Render(d, lookup))
		return true
	})
	return b.String()
}

// printResult re-prints every declaration a parse produced, grouped the
// same way ast.ParserResult groups them, so a golden ".ast" file reads as
// a (possibly reordered, re-spaced) rendition of the input source.
func printResult(r *ast.ParserResult) string {
	var b strings.Builder
	for _, u := range r.Usings {
		b.WriteString(ast.Print(u))
		b.WriteByte('\n')
	}
	for _, a := range r.Aliases {
		b.WriteString(ast.Print(a))
		b.WriteByte('\n')
	}
	for _, s := range r.Structs {
		b.WriteString(ast.Print(s))
		b.WriteByte('\n')
	}
	for _, f := range r.Functions {
		b.WriteString(ast.Print(f))
		b.WriteByte('\n')
	}
	for _, op := range r.Operators {
		b.WriteString(ast.Print(op))
		b.WriteByte('\n')
	}
	for _, stmt := range r.TopLevelStatements {
		b.WriteString(ast.Print(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}
