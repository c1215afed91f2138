// Package ast defines the Lilac syntax tree. The node set is closed: every
// node lives in this package, children are exclusively owned by their
// parent, and the tree is produced once by the parser and never mutated.
package ast

import "strings"

// Node is implemented by every AST node. The unexported print method keeps
// the node set closed to this package.
type Node interface {
	print(w *strings.Builder)
}

// Type describes a Lilac type.
type Type interface {
	Node
	typeNode()
}

// Place denotes a memory location (an l-value): an identifier, a pointer
// dereference, an array element, or a struct field.
type Place interface {
	Node
	placeNode()
}

// Exp denotes a computed value (an r-value).
type Exp interface {
	Node
	expNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Print renders a node in its canonical textual form.
func Print(n Node) string {
	var sb strings.Builder
	n.print(&sb)
	return sb.String()
}

// Decl binds a name to a type.
type Decl struct {
	Name string
	Type Type
}

// FunCall pairs a callee expression with its ordered arguments.
type FunCall struct {
	Callee Exp
	Args   []Exp
}

// StructDef is a named struct with ordered fields.
type StructDef struct {
	Name   string
	Fields []*Decl
}

// FunctionDef is a function definition: parameters, return type, local
// declarations, and body statements, all in source order.
type FunctionDef struct {
	Name    string
	Params  []*Decl
	RetType Type
	Locals  []*Decl
	Stmts   []Stmt
}

// Program is the root of the tree. The three lists preserve source
// declaration order. Externs are declarations whose type is a *FnType.
type Program struct {
	Structs   []*StructDef
	Externs   []*Decl
	Functions []*FunctionDef
}
