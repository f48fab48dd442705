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

package ast

import "github.com/driftlang/drift/token"

// ParserResult is the complete output of a single parse (§3.4, §6.1).
//
// OriginalTokens is an independent copy of the tokenizer's raw output,
// taken before any `>>`/`@word` splitting; FilteredTokens is the list the
// parser consumed, after those in-place splits (§9 "Token list in-place
// mutation"). FilteredTokens still contains the trivia tokens; the parser
// skips them as it reads. Both are kept so fidelity tools (formatters,
// incremental re-parse) can recover either picture.
type ParserResult struct {
	Functions          []*FunctionDefinition
	Operators          []*OperatorDefinition
	Structs            []*StructDefinition
	Usings             []*UsingDefinition
	Aliases            []*AliasDefinition
	TopLevelStatements []Stmt

	OriginalTokens *token.List
	FilteredTokens *token.List
}

// Empty reports whether parsing produced no top-level item of any kind; it
// has no bearing on diagnostics, only on whether parsing "found" any
// declarations (useful in tests exercising §8.2's empty-parse invariant).
func (r *ParserResult) Empty() bool {
	return len(r.Functions) == 0 &&
		len(r.Operators) == 0 &&
		len(r.Structs) == 0 &&
		len(r.Usings) == 0 &&
		len(r.Aliases) == 0 &&
		len(r.TopLevelStatements) == 0
}
