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

// Stmt is any node that does not itself produce a value: a control-flow
// form or a value-producing expression used in statement position (§3.4).
type Stmt interface {
	Node
	stmtNode()
}

// EmptyStatement is a bare `;`. The parser always attaches a warning
// diagnostic alongside it (§4.2.2), never refuses to produce the node.
type EmptyStatement struct {
	Base
}

func (*EmptyStatement) stmtNode() {}

// Block is `{ stmt* }`.
type Block struct {
	Base
	Statements []Stmt
}

func (*Block) stmtNode() {}

// If is `if (cond) then [else else_]`.
type If struct {
	Base
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

func (*If) stmtNode() {}

// While is `while (cond) body`.
type While struct {
	Base
	Condition Expr
	Body      Stmt
}

func (*While) stmtNode() {}

// For is `for (init; cond; step) body`, any of Init/Condition/Step may be
// nil per §4.2.2's "for allows empty initializer/condition/step".
type For struct {
	Base
	Init      Stmt
	Condition Expr
	Step      Stmt
	Body      Stmt
}

func (*For) stmtNode() {}

// Return is `return [value];`.
type Return struct {
	Base
	Value Expr // nil when bare `return;`
}

func (*Return) stmtNode() {}

// Break is `break;`.
type Break struct {
	Base
}

func (*Break) stmtNode() {}

// Goto is `goto label;`.
type Goto struct {
	Base
	Label string
}

func (*Goto) stmtNode() {}

// Crash is `crash [value];`.
type Crash struct {
	Base
	Value Expr // nil when bare
}

func (*Crash) stmtNode() {}

// Delete is `delete value;`.
type Delete struct {
	Base
	Value Expr

	// Reference is filled in by an external semantic analyzer with the
	// destructor (and deallocator, if distinct) invoked by this deletion
	// (§4.3 "function-linked pass", glossary "destructor"/"cleanup").
	Reference Def
}

func (*Delete) stmtNode() {}

// Yield is `yield value;`.
type Yield struct {
	Base
	Value Expr
}

func (*Yield) stmtNode() {}

// InstructionLabelDeclaration is `label:`, the target of a Goto.
type InstructionLabelDeclaration struct {
	Base
	Name string
}

func (*InstructionLabelDeclaration) stmtNode() {}

// VariableDefinition is `[modifier*] type name [= initializer];`.
type VariableDefinition struct {
	Base
	Modifiers   ModifierSet
	Type        TypeExpr
	Name        string
	Initializer Expr // nil when absent
}

func (*VariableDefinition) stmtNode() {}

// SimpleAssignment is `target = value;`.
type SimpleAssignment struct {
	Base
	Target Expr
	Value  Expr
}

func (*SimpleAssignment) stmtNode() {}

// CompoundAssignment is `target OP= value;` for one of the compound
// assignment operators (§6.4).
type CompoundAssignment struct {
	Base
	Operator string
	Target   Expr
	Value    Expr
}

func (*CompoundAssignment) stmtNode() {}

// ShortOperatorCall is `target++;` or `target--;`.
type ShortOperatorCall struct {
	Base
	Operator string
	Target   Expr
}

func (*ShortOperatorCall) stmtNode() {}

// ExpressionStatement wraps an Expr used as a statement (§4.2.2's
// "expression -- only if it is a statement-expression").
type ExpressionStatement struct {
	Base
	Expression Expr
}

func (*ExpressionStatement) stmtNode() {}

// MissingStatement is synthesized for unparsed content when a statement
// was required but the parser could not recognize one (§8.3).
type MissingStatement struct {
	Base
}

func (*MissingStatement) stmtNode()    {}
func (*MissingStatement) missingNode() {}

// MissingBlock is synthesized when a `{` was expected but absent, or when
// its closing `}` was never found before end-of-input (§8.3).
type MissingBlock struct {
	Base
}

func (*MissingBlock) stmtNode()    {}
func (*MissingBlock) missingNode() {}
