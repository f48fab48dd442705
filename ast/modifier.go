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

// Modifier is one of the modifier/protection keywords (§6.4) that may
// prefix a definition or parameter.
type Modifier string

const (
	ModifierInline  Modifier = "inline"
	ModifierConst   Modifier = "const"
	ModifierRef     Modifier = "ref"
	ModifierTemp    Modifier = "temp"
	ModifierThis    Modifier = "this"
	ModifierExport  Modifier = "export"
	ModifierPrivate Modifier = "private"
)

// ModifierSet is an unordered collection of modifiers attached to a
// definition or parameter. The parser never removes a disallowed modifier;
// it only reports a diagnostic, so ModifierSet always reflects exactly
// what was written in source (§3.4 invariant 2).
type ModifierSet []Modifier

// Has reports whether m contains the given modifier.
func (m ModifierSet) Has(mod Modifier) bool {
	for _, x := range m {
		if x == mod {
			return true
		}
	}
	return false
}

// SubsetOf reports whether every modifier in m is present in allowed. This
// is the check the parser uses to decide whether to raise the "modifier
// not allowed in this context" diagnostic; the parser calls it without
// ever removing the excess modifiers from m afterwards.
func (m ModifierSet) SubsetOf(allowed ModifierSet) bool {
	for _, x := range m {
		if !allowed.Has(x) {
			return false
		}
	}
	return true
}

// AttributeUsage is one `@Name(args)`-style attribute usage attached to a
// definition.
type AttributeUsage struct {
	Base
	Name      string
	Arguments []Expr
}
