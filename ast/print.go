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

import (
	"fmt"
	"strings"
)

// Print renders a node back to source text. It is not meant to reproduce
// the original formatting; it exists so that re-tokenizing Print(n)
// yields the same token sequence modulo trivia and synthesized tokens
// (§8.2).
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n)
	return b.String()
}

func printNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Literal:
		b.WriteString(v.Raw)
	case *Identifier:
		b.WriteString(v.Name)
	case *FieldAccess:
		printNode(b, v.Receiver)
		b.WriteByte('.')
		b.WriteString(v.Name)
	case *IndexCall:
		printNode(b, v.Receiver)
		b.WriteByte('[')
		printNode(b, v.Index)
		b.WriteByte(']')
	case *AnyCall:
		printNode(b, v.Callee)
		printNode(b, v.Arguments)
	case *FunctionCall:
		printNode(b, v.Callee)
		printNode(b, v.Arguments)
	case *ConstructorCall:
		printNode(b, v.Callee)
		printNode(b, v.Arguments)
	case *NewInstance:
		b.WriteString("new ")
		printType(b, v.Type)
		if v.Arguments != nil {
			printNode(b, v.Arguments)
		}
	case *BinaryOperatorCall:
		printNode(b, v.Left)
		b.WriteByte(' ')
		b.WriteString(v.Operator)
		b.WriteByte(' ')
		printNode(b, v.Right)
	case *UnaryOperatorCall:
		b.WriteString(v.Operator)
		printNode(b, v.Operand)
	case *ArgumentExpression:
		for _, m := range v.Modifiers {
			b.WriteString(string(m))
			b.WriteByte(' ')
		}
		printNode(b, v.Value)
	case *ArgumentListExpression:
		b.WriteByte('(')
		for i, a := range v.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			printNode(b, a)
		}
		b.WriteByte(')')
	case *ListExpression:
		b.WriteByte('[')
		for i, e := range v.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			printNode(b, e)
		}
		b.WriteByte(']')
	case *Lambda:
		printNode(b, v.Parameters)
		b.WriteString(" => ")
		if v.Block != nil {
			printNode(b, v.Block)
		} else {
			printNode(b, v.Body)
		}
	case *GetReference:
		b.WriteByte('&')
		printNode(b, v.Operand)
	case *Dereference:
		b.WriteByte('*')
		printNode(b, v.Operand)
	case *ManagedTypeCast:
		b.WriteByte('(')
		printType(b, v.Type)
		b.WriteByte(')')
		printNode(b, v.Value)
	case *Reinterpret:
		printNode(b, v.Value)
		b.WriteString(" as ")
		printType(b, v.Type)
	case *MissingExpression, *MissingArgumentExpression, *MissingLiteral, *MissingIdentifierExpression:
		// Zero-width: nothing to render.

	case *EmptyStatement:
		b.WriteByte(';')
	case *Block:
		b.WriteString("{\n")
		for _, s := range v.Statements {
			printNode(b, s)
			b.WriteByte('\n')
		}
		b.WriteByte('}')
	case *If:
		b.WriteString("if (")
		printNode(b, v.Condition)
		b.WriteString(") ")
		printNode(b, v.Then)
		if v.Else != nil {
			b.WriteString(" else ")
			printNode(b, v.Else)
		}
	case *While:
		b.WriteString("while (")
		printNode(b, v.Condition)
		b.WriteString(") ")
		printNode(b, v.Body)
	case *For:
		b.WriteString("for (")
		if v.Init != nil {
			printNode(b, v.Init)
		} else {
			b.WriteByte(';')
		}
		b.WriteByte(' ')
		if v.Condition != nil {
			printNode(b, v.Condition)
		}
		b.WriteString("; ")
		if v.Step != nil {
			printStepNoSemicolon(b, v.Step)
		}
		b.WriteString(") ")
		printNode(b, v.Body)
	case *Return:
		b.WriteString("return")
		if v.Value != nil {
			b.WriteByte(' ')
			printNode(b, v.Value)
		}
		b.WriteByte(';')
	case *Break:
		b.WriteString("break;")
	case *Goto:
		fmt.Fprintf(b, "goto %s;", v.Label)
	case *Crash:
		b.WriteString("crash")
		if v.Value != nil {
			b.WriteByte(' ')
			printNode(b, v.Value)
		}
		b.WriteByte(';')
	case *Delete:
		b.WriteString("delete ")
		printNode(b, v.Value)
		b.WriteByte(';')
	case *Yield:
		b.WriteString("yield ")
		printNode(b, v.Value)
		b.WriteByte(';')
	case *InstructionLabelDeclaration:
		fmt.Fprintf(b, "%s:", v.Name)
	case *VariableDefinition:
		printModifiers(b, v.Modifiers)
		printType(b, v.Type)
		b.WriteByte(' ')
		b.WriteString(v.Name)
		if v.Initializer != nil {
			b.WriteString(" = ")
			printNode(b, v.Initializer)
		}
		b.WriteByte(';')
	case *SimpleAssignment:
		printNode(b, v.Target)
		b.WriteString(" = ")
		printNode(b, v.Value)
		b.WriteByte(';')
	case *CompoundAssignment:
		printNode(b, v.Target)
		b.WriteByte(' ')
		b.WriteString(v.Operator)
		b.WriteByte(' ')
		printNode(b, v.Value)
		b.WriteByte(';')
	case *ShortOperatorCall:
		printNode(b, v.Target)
		b.WriteString(v.Operator)
		b.WriteByte(';')
	case *ExpressionStatement:
		printNode(b, v.Expression)
		b.WriteByte(';')
	case *MissingStatement, *MissingBlock:
		// Zero-width.

	case *ParameterDefinitionCollection:
		b.WriteByte('(')
		for i, p := range v.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			printNode(b, p)
		}
		b.WriteByte(')')
	case *ParameterDefinition:
		printModifiers(b, v.Modifiers)
		printType(b, v.Type)
		b.WriteByte(' ')
		b.WriteString(v.Name)
		if v.Default != nil {
			b.WriteString(" = ")
			printNode(b, v.Default)
		}
	case *FieldDefinition:
		printModifiers(b, v.Modifiers)
		printType(b, v.Type)
		b.WriteByte(' ')
		b.WriteString(v.Name)
		b.WriteByte(';')
	case *FunctionDefinition:
		printModifiers(b, v.Modifiers)
		printType(b, v.ReturnType)
		fmt.Fprintf(b, " %s", v.Name)
		printNode(b, v.Parameters)
		if v.Body != nil {
			b.WriteByte(' ')
			printNode(b, v.Body)
		} else {
			b.WriteByte(';')
		}
	case *GeneralFunctionDefinition:
		printModifiers(b, v.Modifiers)
		printType(b, v.ReturnType)
		fmt.Fprintf(b, " general %s", v.Kind.String())
		printNode(b, v.Parameters)
		b.WriteByte(' ')
		printNode(b, v.Body)
	case *ConstructorDefinition:
		printModifiers(b, v.Modifiers)
		b.WriteString("new")
		printNode(b, v.Parameters)
		b.WriteByte(' ')
		printNode(b, v.Body)
	case *OperatorDefinition:
		printModifiers(b, v.Modifiers)
		printType(b, v.ReturnType)
		fmt.Fprintf(b, " operator%s", v.Operator)
		printNode(b, v.Parameters)
		b.WriteByte(' ')
		printNode(b, v.Body)
	case *StructDefinition:
		printModifiers(b, v.Modifiers)
		fmt.Fprintf(b, "struct %s", v.Name)
		if v.Template != nil {
			b.WriteByte('<')
			b.WriteString(strings.Join(v.Template.Params, ", "))
			b.WriteByte('>')
		}
		b.WriteString(" {\n")
		for _, f := range v.Fields {
			printNode(b, f)
			b.WriteByte('\n')
		}
		for _, m := range v.Methods {
			printNode(b, m)
			b.WriteByte('\n')
		}
		for _, g := range v.GeneralMethods {
			printNode(b, g)
			b.WriteByte('\n')
		}
		for _, o := range v.Operators {
			printNode(b, o)
			b.WriteByte('\n')
		}
		for _, c := range v.Constructors {
			printNode(b, c)
			b.WriteByte('\n')
		}
		b.WriteByte('}')
	case *UsingDefinition:
		fmt.Fprintf(b, "using %s;", v.Path)
	case *AliasDefinition:
		fmt.Fprintf(b, "alias %s = ", v.Name)
		printType(b, v.Target)
		b.WriteByte(';')

	default:
		// Unknown node kind: best-effort, emits nothing rather than
		// panicking so Print stays safe to call from tests and tools.
	}
}

// printStepNoSemicolon renders a for-loop step clause, which in source
// does not end with its own `;` (the `)` closes it instead), by printing
// the statement and trimming the trailing `;` printNode always appends.
func printStepNoSemicolon(b *strings.Builder, step Stmt) {
	var tmp strings.Builder
	printNode(&tmp, step)
	b.WriteString(strings.TrimSuffix(tmp.String(), ";"))
}

func printModifiers(b *strings.Builder, mods ModifierSet) {
	for _, m := range mods {
		b.WriteString(string(m))
		b.WriteByte(' ')
	}
}

func printType(b *strings.Builder, t TypeExpr) {
	switch v := t.(type) {
	case *TypeInstanceSimple:
		b.WriteString(v.Name)
		if len(v.TypeArgs) > 0 {
			b.WriteByte('<')
			for i, a := range v.TypeArgs {
				if i > 0 {
					b.WriteString(", ")
				}
				printType(b, a)
			}
			b.WriteString(">")
		}
	case *TypeInstancePointer:
		printType(b, v.Pointee)
		b.WriteByte('*')
	case *TypeInstanceFunction:
		if v.ClosureModifier != "" {
			fmt.Fprintf(b, "@%s ", v.ClosureModifier)
		}
		printType(b, v.Return)
		b.WriteByte('(')
		for i, p := range v.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			printType(b, p)
		}
		b.WriteByte(')')
	case *TypeInstanceStackArray:
		printType(b, v.Element)
		b.WriteByte('[')
		if v.Length != nil {
			printNode(b, v.Length)
		}
		b.WriteByte(']')
	case *MissingTypeInstance:
		// Zero-width.
	default:
	}
}
