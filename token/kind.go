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

// Package token defines the lexical token type produced by the tokenizer
// and consumed (and, in places, mutated in place) by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token. This is the wire
// identity clients outside this module key off of; it is a closed set.
type Kind uint8

const (
	Unrecognized Kind = iota
	Identifier
	LiteralNumber
	LiteralFloat
	LiteralHex
	LiteralBinary
	LiteralString
	LiteralCharacter
	Operator
	Whitespace
	LineBreak
	Comment
	CommentMultiline
	PreprocessIdentifier
	PreprocessArgument
	// PreprocessSkipped re-tags any of the kinds above when it was produced
	// while the preprocessor's is_skipping flag was set. The original kind
	// is not retained: skipped tokens carry no syntactic meaning, only a
	// source span, which is all callers inspecting PreprocessSkipped tokens
	// need.
	PreprocessSkipped
)

// IsTrivia reports whether tokens of this kind are skipped over by
// skip_trivia() during parsing: whitespace, line breaks, comments, and any
// preprocessor-only token.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineBreak, Comment, CommentMultiline,
		PreprocessIdentifier, PreprocessArgument, PreprocessSkipped:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Identifier:
		return "Identifier"
	case LiteralNumber:
		return "LiteralNumber"
	case LiteralFloat:
		return "LiteralFloat"
	case LiteralHex:
		return "LiteralHex"
	case LiteralBinary:
		return "LiteralBinary"
	case LiteralString:
		return "LiteralString"
	case LiteralCharacter:
		return "LiteralCharacter"
	case Operator:
		return "Operator"
	case Whitespace:
		return "Whitespace"
	case LineBreak:
		return "LineBreak"
	case Comment:
		return "Comment"
	case CommentMultiline:
		return "CommentMultiline"
	case PreprocessIdentifier:
		return "PreprocessIdentifier"
	case PreprocessArgument:
		return "PreprocessArgument"
	case PreprocessSkipped:
		return "PreprocessSkipped"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// AnalyzedKind tags the semantic color category of an already-lexed token,
// as assigned during parsing. This is consumed by an external
// syntax-highlighter and has no effect on parsing itself; it is a mutable
// slot on Token set after the fact (see Token.SetAnalyzedKind).
type AnalyzedKind uint8

const (
	// AnalyzedNone means no semantic category has been assigned yet.
	AnalyzedNone AnalyzedKind = iota
	AnalyzedKeyword
	AnalyzedModifier
	AnalyzedBuiltinType
	AnalyzedTypeName
	AnalyzedFieldName
	AnalyzedParameterName
	AnalyzedFunctionName
	AnalyzedVariableName
	AnalyzedNamespace
)

func (a AnalyzedKind) String() string {
	switch a {
	case AnalyzedNone:
		return "None"
	case AnalyzedKeyword:
		return "Keyword"
	case AnalyzedModifier:
		return "Modifier"
	case AnalyzedBuiltinType:
		return "BuiltinType"
	case AnalyzedTypeName:
		return "TypeName"
	case AnalyzedFieldName:
		return "FieldName"
	case AnalyzedParameterName:
		return "ParameterName"
	case AnalyzedFunctionName:
		return "FunctionName"
	case AnalyzedVariableName:
		return "VariableName"
	case AnalyzedNamespace:
		return "Namespace"
	default:
		return fmt.Sprintf("token.AnalyzedKind(%d)", int(a))
	}
}
