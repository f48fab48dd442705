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

import "github.com/driftlang/drift/position"

// Diagnostic is a single level-tagged, positioned message, optionally with
// a tree of sub-diagnostics giving further detail (e.g. "note: previous
// declaration was here").
type Diagnostic struct {
	Level   Level
	Message string

	// Located is false for context-less diagnostics (e.g. "file too large
	// to process") that have no (position, file) to anchor to.
	Located  bool
	Location position.Location

	SubErrors []Diagnostic

	// ShouldBreak marks a diagnostic that, in a debug build, should trip a
	// breakpoint the first time it is observed (§7). The standard library
	// has no portable breakpoint primitive, so this module exposes the flag
	// and lets an embedder's debug tooling act on it; see
	// Collection.BreakHook.
	ShouldBreak bool

	// Internal marks a diagnostic as the "this is internal" case of §7's
	// taxonomy: an impossibility the implementation hit (a bug), as opposed
	// to a malformed input. Set via AsInternal.
	Internal bool
}

// New creates a context-less Diagnostic.
func New(level Level, message string) Diagnostic {
	return Diagnostic{Level: level, Message: message}
}

// At creates a Diagnostic positioned at loc.
func At(level Level, message string, loc position.Location) Diagnostic {
	return Diagnostic{Level: level, Message: message, Located: true, Location: loc}
}

// WithSub appends a sub-diagnostic and returns d for chaining.
func (d Diagnostic) WithSub(sub Diagnostic) Diagnostic {
	d.SubErrors = append(d.SubErrors, sub)
	return d
}

// Breaking marks d as should_break and returns it for chaining.
func (d Diagnostic) Breaking() Diagnostic {
	d.ShouldBreak = true
	return d
}

// AsInternal marks d as an internal-error diagnostic and returns it for
// chaining.
func (d Diagnostic) AsInternal() Diagnostic {
	d.Internal = true
	return d
}

// Equal reports whether d and e have the same message, level, and location,
// per (§7) "same message, position, file". Sub-errors are not compared:
// two diagnostics that otherwise agree are duplicates of each other even if
// one happened to accumulate different notes along the way, since dedup
// runs on the outer diagnostic as it is appended, before any sub-errors are
// attached by a later step.
func (d Diagnostic) Equal(e Diagnostic) bool {
	if d.Level != e.Level || d.Message != e.Message || d.Located != e.Located {
		return false
	}
	if !d.Located {
		return true
	}
	return d.Location.Equal(e.Location)
}
