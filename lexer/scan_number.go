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
	"github.com/driftlang/drift/diag"
	"github.com/driftlang/drift/position"
	"github.com/driftlang/drift/token"
)

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

// scanNumber scans an integer, float, hex, or binary literal starting at
// the cursor, which must be positioned on a digit. "0x" and "0b" prefixes
// are recognized only at the very start of the run; "0x1_f" is a hex
// literal, but "10x1" is just the integer "10" followed by identifier "x1".
func (l *lexer) scanNumber() (token.Kind, string) {
	start := l.offset
	startPoint := l.point()

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance()
		l.advance()
		digitsStart := l.offset
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		if l.offset-digitsStart == 0 {
			l.errorAt(startPoint, "Invalid hex literal")
		}
		return token.LiteralHex, l.src[start:l.offset]
	}

	if l.peek() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'B') {
		l.advance()
		l.advance()
		digitsStart := l.offset
		for isBinDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		if l.offset-digitsStart == 0 {
			l.errorAt(startPoint, "Invalid binary literal")
		}
		return token.LiteralBinary, l.src[start:l.offset]
	}

	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		return token.LiteralFloat, l.src[start:l.offset]
	}

	return token.LiteralNumber, l.src[start:l.offset]
}

// errorAt appends a positioned diagnostic spanning [start, current cursor).
func (l *lexer) errorAt(start position.Point, message string) {
	if l.diags == nil {
		return
	}
	pos := position.New(start, l.point())
	l.diags.Add(diag.At(diag.Error, message, position.Location{Position: pos, File: l.file}))
}
