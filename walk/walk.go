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

// Package walk implements the pre-order AST traversal (§4.3): for every
// node, a predicate is invoked, and traversal descends into children in
// source order only if the predicate returns true. There is no
// reflection; each node variant enumerates its own children explicitly.
package walk

import "github.com/driftlang/drift/ast"

// Func is the predicate invoked for every node visited. Returning false
// short-circuits the walk below that node (its children are skipped),
// but does not stop visiting its remaining siblings.
type Func func(ast.Node) bool

// Nodes walks every node reachable from n in pre-order, calling visit at
// each one.
func Nodes(n ast.Node, visit Func) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range children(n) {
		Nodes(child, visit)
	}
}

// Result walks an entire parsed file's top-level items one kind at a time,
// in this order: usings, then aliases, then structs, then operators, then
// functions, then loose top-level statements. Items of different kinds are
// not interleaved by source position.
func Result(r *ast.ParserResult, visit Func) {
	if r == nil {
		return
	}
	for _, u := range r.Usings {
		Nodes(u, visit)
	}
	for _, a := range r.Aliases {
		Nodes(a, visit)
	}
	for _, s := range r.Structs {
		Nodes(s, visit)
	}
	for _, o := range r.Operators {
		Nodes(o, visit)
	}
	for _, f := range r.Functions {
		Nodes(f, visit)
	}
	for _, s := range r.TopLevelStatements {
		Nodes(s, visit)
	}
}

// FunctionRef is implemented by any node that may carry a reference to a
// compiled function-like definition, filled in by an external semantic
// analyzer after parsing (call, constructor call, heap allocation,
// destructor/cleanup — §4.3, §3.4 Lifecycle).
type FunctionRef interface {
	ast.Node
	functionRef() ast.Def
}

func (n *ast.FunctionCall) functionRef() ast.Def    { return n.Reference }
func (n *ast.ConstructorCall) functionRef() ast.Def { return n.Reference }
func (n *ast.NewInstance) functionRef() ast.Def     { return n.Reference }
func (n *ast.Delete) functionRef() ast.Def          { return n.Reference }

// FunctionLinked performs the untyped walk of Nodes, and additionally
// invokes onFunction with the resolved definition of every FunctionRef
// node whose reference has been filled in. A given ast.Def value is
// reported to onFunction at most once per walk, even if it is reached
// through more than one aliased reference (e.g. a delete whose
// destructor and deallocator are the same compiled function) (§4.3).
func FunctionLinked(n ast.Node, visit Func, onFunction func(ast.Def)) {
	seen := make(map[ast.Def]bool)
	Nodes(n, func(node ast.Node) bool {
		cont := visit(node)
		if ref, ok := node.(FunctionRef); ok {
			if fn := ref.functionRef(); fn != nil && !seen[fn] {
				seen[fn] = true
				onFunction(fn)
			}
		}
		return cont
	})
}

// children enumerates the direct children of n in source order. Leaf
// nodes (literals, identifiers, missing placeholders, modifiers-only
// nodes) return nil.
func children(n ast.Node) []ast.Node {
	switch v := n.(type) {

	// --- statements ---
	case *ast.Block:
		out := make([]ast.Node, 0, len(v.Statements))
		for _, s := range v.Statements {
			out = append(out, s)
		}
		return out
	case *ast.If:
		out := []ast.Node{v.Condition, v.Then}
		if v.Else != nil {
			out = append(out, v.Else)
		}
		return out
	case *ast.While:
		return []ast.Node{v.Condition, v.Body}
	case *ast.For:
		var out []ast.Node
		if v.Init != nil {
			out = append(out, v.Init)
		}
		if v.Condition != nil {
			out = append(out, v.Condition)
		}
		if v.Step != nil {
			out = append(out, v.Step)
		}
		out = append(out, v.Body)
		return out
	case *ast.Return:
		if v.Value != nil {
			return []ast.Node{v.Value}
		}
	case *ast.Crash:
		if v.Value != nil {
			return []ast.Node{v.Value}
		}
	case *ast.Delete:
		return []ast.Node{v.Value}
	case *ast.Yield:
		return []ast.Node{v.Value}
	case *ast.VariableDefinition:
		out := []ast.Node{v.Type}
		if v.Initializer != nil {
			out = append(out, v.Initializer)
		}
		return out
	case *ast.SimpleAssignment:
		return []ast.Node{v.Target, v.Value}
	case *ast.CompoundAssignment:
		return []ast.Node{v.Target, v.Value}
	case *ast.ShortOperatorCall:
		return []ast.Node{v.Target}
	case *ast.ExpressionStatement:
		return []ast.Node{v.Expression}

	// --- expressions ---
	case *ast.FieldAccess:
		return []ast.Node{v.Receiver}
	case *ast.IndexCall:
		return []ast.Node{v.Receiver, v.Index}
	case *ast.AnyCall:
		return []ast.Node{v.Callee, v.Arguments}
	case *ast.FunctionCall:
		return []ast.Node{v.Callee, v.Arguments}
	case *ast.ConstructorCall:
		return []ast.Node{v.Callee, v.Arguments}
	case *ast.NewInstance:
		out := []ast.Node{v.Type}
		if v.Arguments != nil {
			out = append(out, v.Arguments)
		}
		return out
	case *ast.BinaryOperatorCall:
		return []ast.Node{v.Left, v.Right}
	case *ast.UnaryOperatorCall:
		return []ast.Node{v.Operand}
	case *ast.ArgumentExpression:
		return []ast.Node{v.Value}
	case *ast.ArgumentListExpression:
		out := make([]ast.Node, 0, len(v.Arguments))
		for _, a := range v.Arguments {
			out = append(out, a)
		}
		return out
	case *ast.ListExpression:
		out := make([]ast.Node, 0, len(v.Elements))
		for _, e := range v.Elements {
			out = append(out, e)
		}
		return out
	case *ast.Lambda:
		out := []ast.Node{v.Parameters}
		if v.Block != nil {
			out = append(out, v.Block)
		}
		if v.Body != nil {
			out = append(out, v.Body)
		}
		return out
	case *ast.GetReference:
		return []ast.Node{v.Operand}
	case *ast.Dereference:
		return []ast.Node{v.Operand}
	case *ast.ManagedTypeCast:
		return []ast.Node{v.Type, v.Value}
	case *ast.Reinterpret:
		return []ast.Node{v.Value, v.Type}

	// --- types ---
	case *ast.TypeInstanceSimple:
		out := make([]ast.Node, 0, len(v.TypeArgs))
		for _, t := range v.TypeArgs {
			out = append(out, t)
		}
		return out
	case *ast.TypeInstancePointer:
		return []ast.Node{v.Pointee}
	case *ast.TypeInstanceFunction:
		out := []ast.Node{v.Return}
		for _, p := range v.Params {
			out = append(out, p)
		}
		return out
	case *ast.TypeInstanceStackArray:
		out := []ast.Node{v.Element}
		if v.Length != nil {
			out = append(out, v.Length)
		}
		return out

	// --- definitions ---
	case *ast.AliasDefinition:
		return []ast.Node{v.Target}
	case *ast.ParameterDefinition:
		out := []ast.Node{v.Type}
		if v.Default != nil {
			out = append(out, v.Default)
		}
		return out
	case *ast.ParameterDefinitionCollection:
		out := make([]ast.Node, 0, len(v.Parameters))
		for _, p := range v.Parameters {
			out = append(out, p)
		}
		return out
	case *ast.FieldDefinition:
		return []ast.Node{v.Type}
	case *ast.FunctionDefinition:
		out := []ast.Node{v.ReturnType, v.Parameters}
		if v.Body != nil {
			out = append(out, v.Body)
		}
		return attrs(v.Attributes, out)
	case *ast.GeneralFunctionDefinition:
		out := []ast.Node{v.ReturnType, v.Parameters, v.Body}
		return attrs(v.Attributes, out)
	case *ast.ConstructorDefinition:
		out := []ast.Node{v.Parameters, v.Body}
		return attrs(v.Attributes, out)
	case *ast.OperatorDefinition:
		out := []ast.Node{v.ReturnType, v.Parameters, v.Body}
		return attrs(v.Attributes, out)
	case *ast.StructDefinition:
		var out []ast.Node
		if v.Template != nil {
			out = append(out, v.Template)
		}
		for _, f := range v.Fields {
			out = append(out, f)
		}
		for _, m := range v.Methods {
			out = append(out, m)
		}
		for _, g := range v.GeneralMethods {
			out = append(out, g)
		}
		for _, o := range v.Operators {
			out = append(out, o)
		}
		for _, c := range v.Constructors {
			out = append(out, c)
		}
		return attrs(v.Attributes, out)
	case *ast.AttributeUsage:
		out := make([]ast.Node, 0, len(v.Arguments))
		for _, a := range v.Arguments {
			out = append(out, a)
		}
		return out
	}

	// Leaves: Literal, Identifier, InstructionLabelDeclaration, Goto,
	// Break, EmptyStatement, TemplateInfo, every Missing* placeholder.
	return nil
}

// attrs prepends a definition's attribute usages (if any) onto out, so
// they are visited before the rest of the definition's children.
func attrs(a []*ast.AttributeUsage, out []ast.Node) []ast.Node {
	if len(a) == 0 {
		return out
	}
	prefixed := make([]ast.Node, 0, len(a)+len(out))
	for _, u := range a {
		prefixed = append(prefixed, u)
	}
	return append(prefixed, out...)
}
