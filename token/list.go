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

// List is an owned, mutable buffer of Tokens.
//
// The tokenizer produces a List and hands it to the parser. Unlike every
// other artifact in this module, a List's contents are not immutable: the
// parser splices tokens in place twice over, in ways fixed by the grammar
// rather than by general editing:
//
//   - A trailing ">>" closing two nested generic argument lists is split
//     into two adjacent ">" tokens (Split).
//   - A leading "@identifier" closure-modifier prefix that the tokenizer
//     lexed as a single Identifier token (because there was no space
//     between "@" and the word) is split into an Operator "@" token and an
//     Identifier token (Split).
//
// Clients that only want to observe the stream (print it, diff it, feed it
// to a highlighter) should use View, which is a read-only snapshot; it does
// not track further mutation.
type List struct {
	toks []Token
}

// NewList takes ownership of toks and returns a List wrapping it.
func NewList(toks []Token) *List {
	return &List{toks: toks}
}

// Len returns the number of tokens currently in the list.
func (l *List) Len() int {
	return len(l.toks)
}

// At returns the token at index i. It panics if i is out of range, exactly
// as slice indexing would.
func (l *List) At(i int) Token {
	return l.toks[i]
}

// View returns an immutable snapshot of the current contents. The returned
// slice must not be mutated by the caller; further mutation of the List
// (via Split) does not retroactively affect a previously taken View, since
// Split never mutates toks in place beyond the one index it targets and
// View's backing array may be shared up to that point. Callers that need a
// guaranteed-frozen copy (e.g. to stash as ParserResult.OriginalTokens
// before parsing begins) should call Clone instead.
func (l *List) View() []Token {
	return l.toks
}

// Clone returns an independent copy of the current contents, safe from any
// future mutation of l.
func (l *List) Clone() []Token {
	out := make([]Token, len(l.toks))
	copy(out, l.toks)
	return out
}

// Split replaces the single token at index i with the given replacement
// tokens, which must together cover exactly the same source span as the
// original (this is the in-place-splice discipline §9 of the specification
// requires: no text is gained or lost, only re-partitioned).
//
// Split returns the index of the first replacement token, which remains i.
func (l *List) Split(i int, with ...Token) int {
	if len(with) == 0 {
		panic("token: Split requires at least one replacement token")
	}

	rest := make([]Token, 0, len(l.toks)-1+len(with))
	rest = append(rest, l.toks[:i]...)
	rest = append(rest, with...)
	rest = append(rest, l.toks[i+1:]...)
	l.toks = rest
	return i
}

// SplitDoubleAngle splits the token at index i into single ">" tokens, each
// one byte wide. This implements the generic-argument-list closing rule
// (§4.2.4): "A<B<C>>" lexes ">>" as one token, which the parser must treat
// as two consecutive ">" tokens so both the inner and outer generic_args
// productions can each consume one.
//
// An unexpected ">>>" (as if a right-shift-assign were mis-lexed into this
// position) is handled per the Open Question in §9 as a splitting attempt
// rather than a closing attempt: it yields two tokens, a one-byte ">"
// followed by a two-byte ">>", instead of three separate one-byte ">"
// tokens, so only the first level of nesting closes here and the other two
// remain together for whatever production reads them next.
func (l *List) SplitDoubleAngle(i int) int {
	tok := l.toks[i]
	n := len(tok.Content)
	base := tok.Pos.Start

	widths := make([]int, n)
	for k := range widths {
		widths[k] = 1
	}
	if n == 3 {
		widths = []int{1, 2}
	}

	pieces := make([]Token, len(widths))
	start := base
	offset := 0
	for k, w := range widths {
		end := start
		end.Byte += w
		end.Column += w
		pieces[k] = Token{
			Kind:        Operator,
			Content:     tok.Content[offset : offset+w],
			Pos:         position.New(start, end),
			IsSynthetic: true,
		}
		start = end
		offset += w
	}
	return l.Split(i, pieces...)
}

// SplitClosureModifier splits the token at index i, an Identifier whose
// content begins with "@" (i.e. the tokenizer lexed "@name" as a single
// word because nothing separated them), into an Operator "@" token
// followed by an Identifier token for the remaining name. This is the
// other in-place split named in §4.2.4.
func (l *List) SplitClosureModifier(i int) int {
	tok := l.toks[i]
	left, right, ok := tok.Slice(1)
	if !ok {
		panic("token: SplitClosureModifier requires a token starting with a single-byte '@'")
	}
	left.Kind = Operator
	left.IsSynthetic = true
	right.Kind = Identifier
	right.IsSynthetic = true
	return l.Split(i, left, right)
}
