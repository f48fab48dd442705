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

package lexer

import (
	"unicode/utf8"

	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/position"
	"github.com/driftlang/drift/token"
)

// lexer is the scanning state for one call to Tokenize.
type lexer struct {
	*cursor
	file  string
	diags *diag.Collection
	pp    *preprocessor
	toks  []token.Token
}

// Tokenize converts src into an immutable token sequence, applying the
// integrated conditional preprocessor as it goes (§4.1). The returned List
// includes whitespace, line breaks, comments, and preprocessor tokens; the
// parser is responsible for filtering those out on intake via skip_trivia.
//
// initiallyDefined seeds the preprocessor's set of defined variables before
// the first directive is seen.
func Tokenize(src, file string, diags *diag.Collection, initiallyDefined map[string]bool) *token.List {
	l := &lexer{
		cursor: newCursor(src),
		file:   file,
		diags:  diags,
		pp:     newPreprocessor(initiallyDefined),
	}

	for !l.done() {
		start := l.point()
		kind, content := l.scanOne()
		pos := position.New(start, l.point())

		if kind == token.PreprocessIdentifier {
			l.handleDirective(content, pos)
			continue
		}

		if l.pp.isSkipping() {
			kind = token.PreprocessSkipped
		}
		l.toks = append(l.toks, token.Token{Kind: kind, Content: content, Pos: pos})
	}

	l.pp.checkUnclosed(l.diags, l.file, l.point())

	return token.NewList(l.toks)
}

// handleDirective scans the directive's single-token argument (if any) and
// dispatches to the preprocessor state machine.
func (l *lexer) handleDirective(directive string, directivePos position.Position) {
	// A directive token that is itself encountered while skipping is
	// emitted as PreprocessSkipped, like the rest of the skipped text, but
	// the state machine below still sees it and (for #elseif/#else/#endif)
	// acts on it.
	wasSkipping := l.pp.isSkipping()

	arg, argPos, hasArg := l.scanPreprocessArgument()

	if wasSkipping {
		l.toks = append(l.toks, token.Token{Kind: token.PreprocessSkipped, Content: directive, Pos: directivePos})
	} else {
		l.toks = append(l.toks, token.Token{Kind: token.PreprocessIdentifier, Content: directive, Pos: directivePos})
	}
	if hasArg {
		kind := token.PreprocessArgument
		if wasSkipping {
			kind = token.PreprocessSkipped
		}
		l.toks = append(l.toks, token.Token{Kind: kind, Content: arg, Pos: argPos})
	}

	l.pp.apply(directive, arg, hasArg, directivePos, l.diags, l.file)
}

// scanOne scans exactly one token (of any non-directive kind) starting at
// the cursor, or recognizes the start of a preprocessor directive and
// returns (PreprocessIdentifier, "#name") without consuming its argument.
func (l *lexer) scanOne() (token.Kind, string) {
	start := l.offset

	if isLineBreakStart(l.peek(), l.peekAt(1)) {
		l.scanLineBreak()
		return token.LineBreak, l.src[start:l.offset]
	}

	if isHorizontalSpace(l.peek()) {
		for isHorizontalSpace(l.peek()) {
			l.advance()
		}
		return token.Whitespace, l.src[start:l.offset]
	}

	if l.peek() == '/' && l.peekAt(1) == '/' {
		l.advance()
		l.advance()
		for !l.done() && !isLineBreakStart(l.peek(), l.peekAt(1)) {
			l.advance()
		}
		return token.Comment, l.src[start:l.offset]
	}

	if l.peek() == '/' && l.peekAt(1) == '*' {
		l.advance()
		l.advance()
		for !l.done() && !(l.peek() == '*' && l.peekAt(1) == '/') {
			l.advance()
		}
		if !l.done() {
			l.advance()
			l.advance()
		}
		return token.CommentMultiline, l.src[start:l.offset]
	}

	if l.peek() == '#' {
		l.advance()
		for isIdentByte(l.peek(), false) {
			l.advance()
		}
		return token.PreprocessIdentifier, l.src[start:l.offset]
	}

	if l.peek() == '"' {
		return l.scanString()
	}
	if l.peek() == '\'' {
		return l.scanChar()
	}

	if isDigit(l.peek()) {
		return l.scanNumber()
	}

	if isIdentByte(l.peek(), true) {
		for isIdentByte(l.peek(), false) {
			l.advance()
		}
		return token.Identifier, l.src[start:l.offset]
	}

	if op, ok := l.scanOperator(); ok {
		return token.Operator, op
	}

	// Unrecognized garbage: consume one rune so the lexer always makes
	// progress, matching the endless-loop guard philosophy of §5.
	_, size := utf8.DecodeRuneInString(l.src[l.offset:])
	if size == 0 {
		size = 1
	}
	l.offset += size
	l.column++
	return token.Unrecognized, l.src[start:l.offset]
}

// scanPreprocessArgument scans the remainder of the logical line after a
// preprocess-identifier, trimmed of leading/trailing horizontal whitespace,
// as the directive's single-token argument.
func (l *lexer) scanPreprocessArgument() (content string, pos position.Position, ok bool) {
	for isHorizontalSpace(l.peek()) {
		l.advance()
	}
	start := l.point()

	contentStart := l.offset
	for !l.done() && !isLineBreakStart(l.peek(), l.peekAt(1)) {
		l.advance()
	}
	raw := l.src[contentStart:l.offset]

	trimmedRight := len(raw)
	for trimmedRight > 0 && isHorizontalSpace(raw[trimmedRight-1]) {
		trimmedRight--
	}
	if trimmedRight == 0 {
		return "", position.Position{}, false
	}

	end := start
	end.Byte += trimmedRight
	end.Column += trimmedRight
	return raw[:trimmedRight], position.New(start, end), true
}

func isLineBreakStart(b, next byte) bool {
	return b == '\n' || (b == '\r' && next == '\n')
}

func (l *lexer) scanLineBreak() {
	if l.peek() == '\r' && l.peekAt(1) == '\n' {
		l.offset++ // consume the \r without the line/col bump advance() gives \n
		l.column++
		l.advance() // consumes the \n, bumping line and resetting column
		return
	}
	l.advance()
}

func isHorizontalSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentByte(b byte, first bool) bool {
	if b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
		return true
	}
	if !first && isDigit(b) {
		return true
	}
	return false
}

// multiCharOperators lists every recognized operator longer than one byte,
// longest first so the scanner always matches maximally.
var multiCharOperators = []string{
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "=>", "->",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
}

const singleCharOperators = ".,;:(){}[]<>+-*/%&|^~!=?@"

func (l *lexer) scanOperator() (string, bool) {
	for _, op := range multiCharOperators {
		if l.hasPrefix(op) {
			for range op {
				l.advance()
			}
			return op, true
		}
	}
	b := l.peek()
	for i := 0; i < len(singleCharOperators); i++ {
		if singleCharOperators[i] == b {
			l.advance()
			return string(b), true
		}
	}
	return "", false
}

func (l *lexer) hasPrefix(s string) bool {
	if l.offset+len(s) > len(l.src) {
		return false
	}
	return l.src[l.offset:l.offset+len(s)] == s
}
