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

// Package lexer implements the tokenizer and its integrated conditional
// preprocessor (§4.1 of the specification).
package lexer

import "github.com/driftlang/drift/position"

// cursor walks a source buffer byte by byte, tracking the (byte, line,
// column) triple needed to stamp every Token with a Position.
type cursor struct {
	src    string
	offset int
	line   int
	column int
}

func newCursor(src string) *cursor {
	return &cursor{src: src, line: 1, column: 1}
}

func (c *cursor) done() bool {
	return c.offset >= len(c.src)
}

func (c *cursor) peek() byte {
	if c.done() {
		return 0
	}
	return c.src[c.offset]
}

func (c *cursor) peekAt(n int) byte {
	if c.offset+n >= len(c.src) {
		return 0
	}
	return c.src[c.offset+n]
}

func (c *cursor) point() position.Point {
	return position.Point{Byte: c.offset, Line: c.line, Column: c.column}
}

// advance consumes one byte, correctly tracking \n as a line break. \r is
// treated as ordinary horizontal content; \r\n pairs are handled by the
// line-break scanner consuming both bytes before calling advance just
// once logically (see scanLineBreak).
func (c *cursor) advance() byte {
	b := c.src[c.offset]
	c.offset++
	if b == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return b
}
