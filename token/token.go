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

package token

import "github.com/driftlang/drift/position"

// Token is a single lexeme: a kind, the raw source text it covers, and the
// position it occupies.
//
// Token is a value type and is safe to copy; AnalyzedKind is the one field
// intended to be mutated after creation (see SetAnalyzedKind), which is why
// it is plain data rather than behind an accessor-only API.
type Token struct {
	Kind    Kind
	Content string
	Pos     position.Position

	// IsSynthetic is true when this Token did not come from lexing source
	// text: the tokenizer never sets it, but the parser does, when it
	// fabricates a token to recover from missing input (a MissingToken) or
	// when it splits an existing token in place (see Split).
	IsSynthetic bool

	// AnalyzedKind is filled in during parsing to tag this token's semantic
	// color category for an external syntax highlighter. It has no bearing
	// on parsing and starts out as AnalyzedNone.
	AnalyzedKind AnalyzedKind
}

// Nil is the zero Token, used to denote the absence of a token (e.g. "no
// previous token" at the start of a file).
var Nil Token

// IsNil reports whether t is the zero Token.
func (t Token) IsNil() bool {
	return t == Token{}
}

// SetAnalyzedKind tags t with a semantic color category. It returns t so it
// can be used fluently when building a token in place.
func (t Token) SetAnalyzedKind(kind AnalyzedKind) Token {
	t.AnalyzedKind = kind
	return t
}

// Missing synthesizes a zero-width placeholder token of the given kind,
// positioned at p, marked IsSynthetic, so downstream passes still have
// something to anchor to. The parser's Missing* AST nodes do not use it;
// they carry only a position.
func Missing(kind Kind, p position.Position) Token {
	return Token{
		Kind:        kind,
		Content:     "",
		Pos:         p,
		IsSynthetic: true,
	}
}

// Concat merges two adjacent tokens (a.Pos.End == b.Pos.Start) of the same
// Kind into one token spanning both. It panics if the tokens are not
// adjacent; callers are expected to have already checked adjacency.
func Concat(a, b Token) Token {
	if a.Pos.End != b.Pos.Start {
		panic("token: Concat requires a.Pos.End == b.Pos.Start")
	}
	kind := a.Kind
	if a.Kind != b.Kind {
		// A concatenation of differently-kinded tokens has no single kind
		// that describes it better than "not one thing"; this only arises
		// from internal splicing bugs, so keep the left kind rather than
		// invent a new "mixed" kind no one has to plan for.
		kind = a.Kind
	}
	return Token{
		Kind:        kind,
		Content:     a.Content + b.Content,
		Pos:         a.Pos.Union(b.Pos),
		IsSynthetic: a.IsSynthetic || b.IsSynthetic,
	}
}

// Slice splits t at byte offset n (relative to the start of t.Content),
// returning the left and right halves. ok is false (and the zero Tokens
// are returned) when n is out of [0, len(t.Content)] or would fall inside a
// multi-byte rune or a backslash escape sequence, since such a split would
// produce two Tokens whose content does not losslessly reassemble via
// Concat.
func (t Token) Slice(n int) (left, right Token, ok bool) {
	if n < 0 || n > len(t.Content) {
		return Token{}, Token{}, false
	}
	if n > 0 && n < len(t.Content) {
		if isUTF8Continuation(t.Content[n]) {
			return Token{}, Token{}, false
		}
		if splitsEscape(t.Content, n) {
			return Token{}, Token{}, false
		}
	}

	mid := position.Point{
		Byte:   t.Pos.Start.Byte + n,
		Line:   t.Pos.Start.Line,
		Column: t.Pos.Start.Column + n,
	}
	left = Token{
		Kind:        t.Kind,
		Content:     t.Content[:n],
		Pos:         position.New(t.Pos.Start, mid),
		IsSynthetic: t.IsSynthetic,
	}
	right = Token{
		Kind:        t.Kind,
		Content:     t.Content[n:],
		Pos:         position.New(mid, t.Pos.End),
		IsSynthetic: t.IsSynthetic,
	}
	return left, right, true
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// splitsEscape reports whether byte offset n in s falls strictly inside a
// backslash escape sequence (between the backslash and the character it
// escapes).
func splitsEscape(s string, n int) bool {
	if n == 0 {
		return false
	}
	backslashes := 0
	for i := n - 1; i >= 0 && s[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}
