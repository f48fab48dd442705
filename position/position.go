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

// Package position provides byte/line/column source positions and the
// ranges and unions built out of them.
//
// Every node produced by the tokenizer and parser carries a Position. Spans
// compose: Union returns the smallest Position containing two others, which
// is how a parent statement or expression's Position is derived from its
// children's.
package position

import "fmt"

// Point is a single location within a source file: an absolute byte offset
// together with the 1-based line and column it corresponds to.
//
// Line and Column are computed from line-break scanning during tokenization;
// Byte is the authoritative offset used for slicing and comparison.
type Point struct {
	Byte   int
	Line   int
	Column int
}

// IsZero reports whether p is the zero Point.
func (p Point) IsZero() bool {
	return p == Point{}
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// before reports whether p sorts strictly before q, comparing by byte
// offset. Line/column are derived and not independently authoritative.
func (p Point) before(q Point) bool {
	return p.Byte < q.Byte
}

// Unknown is the sentinel Position used when no real source location is
// available (e.g. for nodes synthesized outside of any parse). It compares
// equal only to itself, and every ordering query against it is false.
var Unknown = Position{unknown: true}

// Position is a half-open byte range [Start, End) within a source file, plus
// the line/column of each endpoint.
//
// The zero Position is NOT a valid empty span at byte 0; use Unknown for "no
// position". A Position with Start == End is a legitimate zero-width span,
// used by synthesized "missing" nodes.
type Position struct {
	Start, End Point
	unknown    bool
}

// New builds a Position spanning [start, end).
func New(start, end Point) Position {
	return Position{Start: start, End: end}
}

// AtPoint builds a zero-width Position located at p.
func AtPoint(p Point) Position {
	return Position{Start: p, End: p}
}

// IsUnknown reports whether this is the Unknown sentinel.
func (p Position) IsUnknown() bool {
	return p.unknown
}

// IsZeroWidth reports whether this Position spans no bytes.
func (p Position) IsZeroWidth() bool {
	return !p.unknown && p.Start.Byte == p.End.Byte
}

// Len returns the number of bytes spanned, or 0 for Unknown.
func (p Position) Len() int {
	if p.unknown {
		return 0
	}
	return p.End.Byte - p.Start.Byte
}

// Before returns the zero-width Position immediately preceding p's start.
func (p Position) Before() Position {
	if p.unknown {
		return Unknown
	}
	return AtPoint(p.Start)
}

// After returns the zero-width Position immediately following p's end. This
// is where the parser anchors synthesized "missing" nodes: "expected a
// statement here" points at the position right after the last real token.
func (p Position) After() Position {
	if p.unknown {
		return Unknown
	}
	return AtPoint(p.End)
}

// Contains reports whether q falls entirely within p.
func (p Position) Contains(q Position) bool {
	if p.unknown || q.unknown {
		return false
	}
	return p.Start.Byte <= q.Start.Byte && q.End.Byte <= p.End.Byte
}

// Union returns the smallest Position spanning both p and q.
//
// If either operand is Unknown, the other is returned unchanged; this lets
// callers fold Union over a node's children without special-casing
// synthesized, positionless pieces.
func (p Position) Union(q Position) Position {
	switch {
	case p.unknown && q.unknown:
		return Unknown
	case p.unknown:
		return q
	case q.unknown:
		return p
	}

	start, end := p.Start, p.End
	if q.Start.before(start) {
		start = q.Start
	}
	if end.before(q.End) {
		end = q.End
	}
	return Position{Start: start, End: end}
}

// UnionAll folds Union across every element of ps, starting from Unknown.
func UnionAll(ps ...Position) Position {
	out := Unknown
	for _, p := range ps {
		out = out.Union(p)
	}
	return out
}

func (p Position) String() string {
	if p.unknown {
		return "<unknown>"
	}
	return fmt.Sprintf("%s-%s", p.Start, p.End)
}

// Equal reports structural equality. Two Unknown positions are equal to one
// another by this definition, matching "compares equal only to itself"
// from the data model: there is exactly one Unknown value.
func (p Position) Equal(q Position) bool {
	return p == q
}
