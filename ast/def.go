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

// Def is any top-level or struct-member definition (§3.4).
type Def interface {
	Node
	defNode()
}

// UsingDefinition is `using (string_literal | dotted_identifier);`.
type UsingDefinition struct {
	Base
	Path string
}

func (*UsingDefinition) defNode() {}

// AliasDefinition is `alias Name = Type;`.
type AliasDefinition struct {
	Base
	Attributes []*AttributeUsage
	Modifiers  ModifierSet
	Name       string
	Target     TypeExpr
}

func (*AliasDefinition) defNode() {}

// TemplateInfo is a struct's `<T, U, ...>` generic parameter list.
type TemplateInfo struct {
	Base
	Params []string
}

// ParameterDefinition is a single entry of a parameter list (§4.2.5).
type ParameterDefinition struct {
	Base
	Modifiers ModifierSet
	Type      TypeExpr
	Name      string
	Default   Expr // nil when absent
}

func (*ParameterDefinition) defNode() {}

// ParameterDefinitionCollection is a parsed `(param, ...)` list together
// with the constraints that were in force while parsing it.
//
// Invariants enforced by the parser, never by this type itself (§8.1
// invariants 2-4): when AllowDefaultValues is false, no member has a
// Default (a written default is reported and dropped). A member with
// ModifierThis after index 0, or a member without a Default after one
// with a Default, is reported as a diagnostic but kept in Parameters.
type ParameterDefinitionCollection struct {
	Base
	Parameters         []*ParameterDefinition
	AllowDefaultValues bool
}

func (*ParameterDefinitionCollection) defNode() {}

// FieldDefinition is a struct member field, `[modifier*] type name;`.
type FieldDefinition struct {
	Base
	Attributes []*AttributeUsage
	Modifiers  ModifierSet
	Type       TypeExpr
	Name       string
}

func (*FieldDefinition) defNode() {}

// FunctionDefinition is a free function or struct method.
type FunctionDefinition struct {
	Base
	Attributes []*AttributeUsage
	Modifiers  ModifierSet
	ReturnType TypeExpr
	Name       string
	Parameters *ParameterDefinitionCollection
	Body       *Block // nil for a forward declaration
}

func (*FunctionDefinition) defNode() {}

// GeneralFunctionKind enumerates the closed set of general-function
// identities (glossary "General function"): indexer get, indexer set,
// and destructor.
type GeneralFunctionKind int

const (
	GeneralIndexerGet GeneralFunctionKind = iota
	GeneralIndexerSet
	GeneralDestructor
)

func (k GeneralFunctionKind) String() string {
	switch k {
	case GeneralIndexerGet:
		return "[]"
	case GeneralIndexerSet:
		return "[]="
	case GeneralDestructor:
		return "~"
	default:
		return "unknown"
	}
}

// GeneralFunctionDefinition is `general [] (...) {...}`,
// `general []= (...) {...}`, or `general ~() {...}`.
type GeneralFunctionDefinition struct {
	Base
	Attributes []*AttributeUsage
	Modifiers  ModifierSet
	Kind       GeneralFunctionKind
	ReturnType TypeExpr
	Parameters *ParameterDefinitionCollection
	Body       *Block
}

func (*GeneralFunctionDefinition) defNode() {}

// ConstructorDefinition is a struct constructor.
type ConstructorDefinition struct {
	Base
	Attributes []*AttributeUsage
	Modifiers  ModifierSet
	Parameters *ParameterDefinitionCollection
	Body       *Block
}

func (*ConstructorDefinition) defNode() {}

// OperatorDefinition overloads one of the operators in §6.4's overloadable
// set, including the call operator `()`.
type OperatorDefinition struct {
	Base
	Attributes []*AttributeUsage
	Modifiers  ModifierSet
	Operator   string
	ReturnType TypeExpr
	Parameters *ParameterDefinitionCollection
	Body       *Block
}

func (*OperatorDefinition) defNode() {}

// StructDefinition is `struct Name<template?> { member* }`.
type StructDefinition struct {
	Base
	Attributes     []*AttributeUsage
	Modifiers      ModifierSet
	Name           string
	Template       *TemplateInfo // nil when absent
	Fields         []*FieldDefinition
	Methods        []*FunctionDefinition
	GeneralMethods []*GeneralFunctionDefinition
	Operators      []*OperatorDefinition
	Constructors   []*ConstructorDefinition
}

func (*StructDefinition) defNode() {}

// MissingToken is a synthesized Missing variant at the token level
// (§3.4): a placeholder recorded at the spot a required textual token
// (commonly `}`) was never found, carrying a zero-width position so
// downstream passes can still anchor diagnostics to it.
type MissingToken struct {
	Base
	Expected string // the expected token's textual form, e.g. "}"
}

func (*MissingToken) missingNode() {}
