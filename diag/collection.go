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

package diag

import (
	"fmt"
	"io"

	"github.com/tidwall/btree"

	"github.com/driftlang/drift/position"
)

// Collection holds every diagnostic reported during the processing of one
// or more files: a list of context-less diagnostics and an ordered,
// de-duplicating index of positioned ones.
//
// The positioned index is kept in a btree.Map (github.com/tidwall/btree)
// keyed by a sortable encoding of (file, byte offset), rather than a plain
// slice re-sorted on demand: parsing a large file can append thousands of
// diagnostics (most immediately discarded as duplicates by backtracking
// alternatives), and keeping them in positional order incrementally avoids
// an O(n log n) sort every time the collection is printed.
//
// The zero Collection is ready to use.
type Collection struct {
	contextless []Diagnostic
	positioned  btree.Map[string, []Diagnostic]
	count       int

	overrides []*Collection

	// BreakHook, if set, is invoked the first time a diagnostic with
	// ShouldBreak set is successfully appended (not a duplicate). It exists
	// so a debug build can wire in a real breakpoint trigger; production
	// builds leave it nil.
	BreakHook func(Diagnostic)
}

// target returns the collection that new diagnostics should actually land
// in: the innermost pushed override scope, or c itself.
func (c *Collection) target() *Collection {
	if n := len(c.overrides); n > 0 {
		return c.overrides[n-1]
	}
	return c
}

// Add appends d to the collection, unless an equal diagnostic (by
// Diagnostic.Equal) has already been added, in which case it is silently
// dropped. This makes Add idempotent: adding the same Diagnostic twice
// leaves the collection with exactly one copy (§8.1 invariant 6).
func (c *Collection) Add(d Diagnostic) {
	t := c.target()

	if !d.Located {
		for _, existing := range t.contextless {
			if existing.Equal(d) {
				return
			}
		}
		t.contextless = append(t.contextless, d)
		t.count++
		t.fireBreak(d)
		return
	}

	key := locationKey(d.Location)
	bucket, _ := t.positioned.Get(key)
	for _, existing := range bucket {
		if existing.Equal(d) {
			return
		}
	}
	t.positioned.Set(key, append(bucket, d))
	t.count++
	t.fireBreak(d)
}

func (c *Collection) fireBreak(d Diagnostic) {
	if d.ShouldBreak && c.BreakHook != nil {
		c.BreakHook(d)
	}
}

// locationKey encodes a Location into a string that sorts in source order:
// first by file, then by byte offset. Byte offsets are zero-padded so that
// lexicographic string comparison agrees with numeric comparison.
func locationKey(loc position.Location) string {
	byteOffset := 0
	if !loc.IsUnknown() {
		byteOffset = loc.Position.Start.Byte
	}
	return fmt.Sprintf("%s\x00%020d", loc.File, byteOffset)
}

// Len returns the total number of diagnostics in the collection (both
// lists), not counting sub-errors.
func (c *Collection) Len() int {
	return c.count
}

// HasErrors reports whether the collection contains at least one
// Error-level diagnostic.
func (c *Collection) HasErrors() bool {
	found := false
	c.Each(func(d Diagnostic) bool {
		if d.Level.IsErrorLevel() {
			found = true
			return false
		}
		return true
	})
	return found
}

// Each calls fn for every diagnostic in the collection, context-less ones
// first, then positioned ones in source order (§4.4: "Context-less
// diagnostics print first, then positioned"). Iteration stops early if fn
// returns false.
func (c *Collection) Each(fn func(Diagnostic) bool) {
	for _, d := range c.contextless {
		if !fn(d) {
			return
		}
	}

	c.positioned.Scan(func(_ string, bucket []Diagnostic) bool {
		for _, d := range bucket {
			if !fn(d) {
				return false
			}
		}
		return true
	})
}

// First returns the first Error-level diagnostic in the collection, in the
// order Each would yield it, and true if one exists.
func (c *Collection) First() (Diagnostic, bool) {
	var found Diagnostic
	ok := false
	c.Each(func(d Diagnostic) bool {
		if d.Level.IsErrorLevel() {
			found, ok = d, true
			return false
		}
		return true
	})
	return found, ok
}

// Throw returns an error wrapping the first Error-level diagnostic, or nil
// if there are none. Per §3.3/§7, this is how a caller escalates "first
// error" into something that can be returned up a Go call stack; it is
// named Throw to mirror the specification's vocabulary even though Go has
// no exceptions.
func (c *Collection) Throw() error {
	d, ok := c.First()
	if !ok {
		return nil
	}
	return diagnosticError{d}
}

type diagnosticError struct{ d Diagnostic }

func (e diagnosticError) Error() string {
	return fmt.Sprintf("%s: %s", e.d.Level, e.d.Message)
}

// PushOverride starts a scoped sub-collection: subsequent calls to Add on c
// (and on any collection nested inside this override) land in the new
// scope instead of c directly, until the scope is closed with Apply or
// Drop. This implements the "scoped override" mechanism a parsing attempt
// uses to record diagnostics speculatively and only commit them once it is
// sure the attempt succeeded (§3.3, §4.4).
func (c *Collection) PushOverride() {
	c.overrides = append(c.overrides, &Collection{})
}

// Apply closes the innermost override scope and merges everything recorded
// in it into the next-outer scope (or c, if there is no next-outer scope).
// It panics if no scope is open, since push/pop must nest correctly (§4.4:
// "mismatch is a programmer error").
func (c *Collection) Apply() {
	scope := c.popOverride()
	dest := c.target()
	scope.Each(func(d Diagnostic) bool {
		dest.Add(d)
		return true
	})
}

// Drop closes the innermost override scope and discards everything
// recorded in it.
func (c *Collection) Drop() {
	c.popOverride()
}

func (c *Collection) popOverride() *Collection {
	n := len(c.overrides)
	if n == 0 {
		panic("diag: PushOverride/Apply or Drop mismatch: no open override scope")
	}
	scope := c.overrides[n-1]
	c.overrides = c.overrides[:n-1]
	return scope
}

// WriteErrorsTo writes every diagnostic in the collection to w using Render.
func (c *Collection) WriteErrorsTo(w io.Writer) error {
	var err error
	c.Each(func(d Diagnostic) bool {
		if _, werr := io.WriteString(w, Render(d, nil)); werr != nil {
			err = werr
			return false
		}
		return true
	})
	return err
}

// Print writes every diagnostic to w; it is the convenience form of
// WriteErrorsTo used by command-line embedders (out of scope for this
// module, but the method is part of the consumed-by-embedders surface).
func (c *Collection) Print(w io.Writer) error {
	return c.WriteErrorsTo(w)
}
