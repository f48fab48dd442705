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

// Package ast defines the Abstract Syntax Tree produced by the parser:
// statements, expressions, type expressions, and top-level/struct-member
// definitions, plus the "missing" placeholder variants the parser
// synthesizes during error recovery (§3.4).
//
// Node kinds are modeled as Go interfaces implemented by pointer-to-struct
// types, dispatched with type switches rather than virtual method calls,
// per the redesign notes in §9: this is a tagged sum type, not a class
// hierarchy. Every concrete node embeds Base, which carries the
// (position, file) pair every node in the data model must have.
package ast

import "github.com/driftlang/drift/position"

// Node is implemented by every AST node: statements, expressions, types,
// and definitions alike.
type Node interface {
	// Position returns the node's source span. Per the bounding-box
	// invariant (§3.4, §8.1 invariant 1), this is always contained in the
	// Position of the node's parent.
	Position() position.Position
	// FileURI returns the source file this node was parsed from.
	FileURI() string
}

// Base is embedded by every concrete node type to supply Node.
type Base struct {
	Pos  position.Position
	File string
}

// Position implements Node.
func (b Base) Position() position.Position { return b.Pos }

// FileURI implements Node.
func (b Base) FileURI() string { return b.File }

// Missing is implemented by the Missing* placeholder variants the parser
// synthesizes during recovery. Every other node type does not implement
// it; IsMissing uses a type assertion to tell the two apart, which is the
// "common IsMissing marker" named in §3.4.
//
// Missing nodes are allocated individually by the parser and compare by Go
// pointer identity, which already gives "compare identity-only" (§3.4)
// without needing a synthetic arena index: two Missing nodes with the same
// position and kind are still distinct values.
type Missing interface {
	missingNode()
}

// IsMissing reports whether n is one of the Missing* variants.
func IsMissing(n Node) bool {
	_, ok := n.(Missing)
	return ok
}
