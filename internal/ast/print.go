package ast

import (
	"strconv"
	"strings"
)

// printJoin writes items separated by ", ".
func printJoin[N Node](w *strings.Builder, items []N) {
	for i, item := range items {
		if i > 0 {
			w.WriteString(", ")
		}
		item.print(w)
	}
}

func (t *IntType) print(w *strings.Builder) { w.WriteString("Int") }

func (t *StructType) print(w *strings.Builder) {
	w.WriteString("Struct(")
	w.WriteString(t.Name)
	w.WriteString(")")
}

func (t *PtrType) print(w *strings.Builder) {
	w.WriteString("Ptr(")
	t.Inner.print(w)
	w.WriteString(")")
}

func (t *ArrayType) print(w *strings.Builder) {
	w.WriteString("Array(")
	t.Inner.print(w)
	w.WriteString(")")
}

func (t *FnType) print(w *strings.Builder) {
	w.WriteString("Fn([")
	printJoin(w, t.Params)
	w.WriteString("], ")
	t.Ret.print(w)
	w.WriteString(")")
}

func (t *NilType) print(w *strings.Builder) { w.WriteString("Nil") }

func (d *Decl) print(w *strings.Builder) {
	w.WriteString(`Decl { name: "`)
	w.WriteString(d.Name)
	w.WriteString(`", typ: `)
	d.Type.print(w)
	w.WriteString(" }")
}

func (p *Id) print(w *strings.Builder) {
	w.WriteString(`Id("`)
	w.WriteString(p.Name)
	w.WriteString(`")`)
}

func (p *Deref) print(w *strings.Builder) {
	w.WriteString("Deref(")
	p.Inner.print(w)
	w.WriteString(")")
}

func (p *ArrayAccess) print(w *strings.Builder) {
	w.WriteString("ArrayAccess { array: ")
	p.Array.print(w)
	w.WriteString(", index: ")
	p.Index.print(w)
	w.WriteString(" }")
}

func (p *FieldAccess) print(w *strings.Builder) {
	w.WriteString("FieldAccess { ptr: ")
	p.Ptr.print(w)
	w.WriteString(`, field: "`)
	w.WriteString(p.Field)
	w.WriteString(`" }`)
}

func (e *Val) print(w *strings.Builder) {
	w.WriteString("Val(")
	e.Place.print(w)
	w.WriteString(")")
}

func (e *Num) print(w *strings.Builder) {
	w.WriteString("Num(")
	w.WriteString(strconv.FormatInt(e.Value, 10))
	w.WriteString(")")
}

func (e *NilExp) print(w *strings.Builder) { w.WriteString("Nil") }

func (e *Select) print(w *strings.Builder) {
	w.WriteString("Select { guard: ")
	e.Guard.print(w)
	w.WriteString(", tt: ")
	e.TT.print(w)
	w.WriteString(", ff: ")
	e.FF.print(w)
	w.WriteString(" }")
}

func (e *UnOp) print(w *strings.Builder) {
	w.WriteString("UnOp(")
	w.WriteString(string(e.Op))
	w.WriteString(", ")
	e.Exp.print(w)
	w.WriteString(")")
}

func (e *BinOp) print(w *strings.Builder) {
	w.WriteString("BinOp { op: ")
	w.WriteString(string(e.Op))
	w.WriteString(", left: ")
	e.Left.print(w)
	w.WriteString(", right: ")
	e.Right.print(w)
	w.WriteString(" }")
}

func (e *NewSingle) print(w *strings.Builder) {
	w.WriteString("NewSingle(")
	e.Type.print(w)
	w.WriteString(")")
}

func (e *NewArray) print(w *strings.Builder) {
	w.WriteString("NewArray { typ: ")
	e.Type.print(w)
	w.WriteString(", size: ")
	e.Size.print(w)
	w.WriteString(" }")
}

func (e *CallExp) print(w *strings.Builder) {
	w.WriteString("Call(")
	e.Call.print(w)
	w.WriteString(")")
}

func (fc *FunCall) print(w *strings.Builder) {
	w.WriteString("FunCall { callee: ")
	fc.Callee.print(w)
	w.WriteString(", args: [")
	printJoin(w, fc.Args)
	w.WriteString("] }")
}

func (s *Assign) print(w *strings.Builder) {
	w.WriteString("Assign(")
	s.Place.print(w)
	w.WriteString(", ")
	s.Exp.print(w)
	w.WriteString(")")
}

func (s *CallStmt) print(w *strings.Builder) {
	w.WriteString("Call(")
	s.Call.print(w)
	w.WriteString(")")
}

func (s *If) print(w *strings.Builder) {
	w.WriteString("If { guard: ")
	s.Guard.print(w)
	w.WriteString(", tt: [")
	printJoin(w, s.TT)
	w.WriteString("], ff: [")
	printJoin(w, s.FF)
	w.WriteString("] }")
}

func (s *While) print(w *strings.Builder) {
	w.WriteString("While(")
	s.Guard.print(w)
	w.WriteString(", [")
	printJoin(w, s.Body)
	w.WriteString("])")
}

func (s *Break) print(w *strings.Builder)    { w.WriteString("Break") }
func (s *Continue) print(w *strings.Builder) { w.WriteString("Continue") }

func (s *Return) print(w *strings.Builder) {
	w.WriteString("Return(")
	s.Exp.print(w)
	w.WriteString(")")
}

func (d *StructDef) print(w *strings.Builder) {
	w.WriteString(`Struct { name: "`)
	w.WriteString(d.Name)
	w.WriteString(`", fields: [`)
	printJoin(w, d.Fields)
	w.WriteString("] }")
}

func (f *FunctionDef) print(w *strings.Builder) {
	w.WriteString(`Function { name: "`)
	w.WriteString(f.Name)
	w.WriteString(`", prms: [`)
	printJoin(w, f.Params)
	w.WriteString("], rettyp: ")
	f.RetType.print(w)
	w.WriteString(", locals: {")
	printJoin(w, f.Locals)
	w.WriteString("}, stmts: [")
	printJoin(w, f.Stmts)
	w.WriteString("] }")
}

// Program's structs and externs print with a separator after every element;
// functions separate between elements only. The shape is part of the output
// contract.
func (p *Program) print(w *strings.Builder) {
	w.WriteString("Program { structs: {")
	for _, s := range p.Structs {
		s.print(w)
		w.WriteString(", ")
	}
	w.WriteString("}, externs: {")
	for _, e := range p.Externs {
		e.print(w)
		w.WriteString(", ")
	}
	w.WriteString("}, functions: {")
	printJoin(w, p.Functions)
	w.WriteString("}}")
}
