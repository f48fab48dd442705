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

import "github.com/driftlang/drift/token"

// scanString scans a double-quoted string literal, including backslash
// escapes. An unterminated string (EOF or a bare line break before the
// closing quote) is reported and the literal is taken to extend to where
// scanning stopped, so the lexer always makes forward progress.
func (l *lexer) scanString() (token.Kind, string) {
	start := l.offset
	startPoint := l.point()
	l.advance() // opening quote

	for !l.done() {
		if l.peek() == '\\' && !l.done() {
			l.advance()
			if !l.done() {
				l.advance()
			}
			continue
		}
		if l.peek() == '"' {
			l.advance()
			return token.LiteralString, l.src[start:l.offset]
		}
		if isLineBreakStart(l.peek(), l.peekAt(1)) {
			break
		}
		l.advance()
	}

	l.errorAt(startPoint, "Unterminated string literal")
	return token.LiteralString, l.src[start:l.offset]
}

// scanChar scans a single-quoted character literal, including a single
// backslash escape.
func (l *lexer) scanChar() (token.Kind, string) {
	start := l.offset
	startPoint := l.point()
	l.advance() // opening quote

	for !l.done() {
		if l.peek() == '\\' && !l.done() {
			l.advance()
			if !l.done() {
				l.advance()
			}
			continue
		}
		if l.peek() == '\'' {
			l.advance()
			return token.LiteralCharacter, l.src[start:l.offset]
		}
		if isLineBreakStart(l.peek(), l.peekAt(1)) {
			break
		}
		l.advance()
	}

	l.errorAt(startPoint, "Unterminated character literal")
	return token.LiteralCharacter, l.src[start:l.offset]
}
