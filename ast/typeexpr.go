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

package ast

// TypeExpr is a type written in type position (§4.2.4): a simple named
// type with optional generic arguments, a pointer, a function-pointer
// signature, or a stack array.
type TypeExpr interface {
	Node
	typeExprNode()
}

// TypeInstanceSimple is a named type with optional generic arguments,
// e.g. `int` or `Dict<int, int>`.
type TypeInstanceSimple struct {
	Base
	Name       string
	TypeArgs   []TypeExpr
}

func (*TypeInstanceSimple) typeExprNode() {}

// TypeInstancePointer is `T*`.
type TypeInstancePointer struct {
	Base
	Pointee TypeExpr
}

func (*TypeInstancePointer) typeExprNode() {}

// TypeInstanceFunction is a function-pointer type, e.g. `int(int, int)`,
// optionally carrying a leading `@name` closure modifier.
type TypeInstanceFunction struct {
	Base
	Return          TypeExpr
	Params          []TypeExpr
	ClosureModifier string // "" when absent
}

func (*TypeInstanceFunction) typeExprNode() {}

// TypeInstanceStackArray is `T[n]` or `T[]` (length expression optional,
// gated by AllowedType.StackArrayWithoutLength at the call site).
type TypeInstanceStackArray struct {
	Base
	Element TypeExpr
	Length  Expr // nil when absent
}

func (*TypeInstanceStackArray) typeExprNode() {}

// AllowedType is a bitmask gating which type forms are legal in a given
// grammar position (§4.2.4).
type AllowedType uint8

const (
	AllowAny AllowedType = 1 << iota
	AllowFunctionPointer
	AllowStackArrayWithoutLength
)

// Has reports whether flag is present in a.
func (a AllowedType) Has(flag AllowedType) bool { return a&flag != 0 }

// MissingTypeInstance is synthesized when a type is required but absent.
type MissingTypeInstance struct {
	Base
}

func (*MissingTypeInstance) typeExprNode() {}
func (*MissingTypeInstance) missingNode()  {}
