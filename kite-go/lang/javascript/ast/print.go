package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
)

// String returns a short textual representation of a node: its type, plus
// the operator or name it carries.
func String(n Node, src []byte) string {
	if n == nil {
		return "Nil"
	}
	out := string(n.Type())
	switch n := n.(type) {
	case *NameExpr:
		out += "[" + string(n.Token.Text(src)) + "]"
	case *BinaryExpr:
		out += "[" + n.Op.Kind.String() + "]"
	case *AssignExpr:
		out += "[" + n.Op.Kind.String() + "]"
	case *UnaryExpr:
		out += "[" + n.Op.Kind.String() + "]"
	case *PostfixExpr:
		out += "[" + n.Op.Kind.String() + "]"
	case *PropertyExpr:
		out += "[" + string(n.Name.Text(src)) + "]"
	case *VarStmt:
		var names []string
		for _, decl := range n.Decls {
			names = append(names, string(decl.Name.Text(src)))
		}
		out += "[" + strings.Join(names, ", ") + "]"
	case *ConstructExpr:
		if !n.HasArgs {
			out += "[bare]"
		}
	case *IfStmt:
		if n.Else != nil {
			out += "[else]"
		}
	}
	return out
}

func print(node Node, src []byte, w io.Writer, indent string, printPositions bool) {
	var depth int
	Inspect(node, func(n Node) bool {
		if n == nil {
			depth--
			return true
		}

		prefix := strings.Repeat(indent, depth)
		var pos string
		if printPositions {
			pos = fmt.Sprintf("[%d...%d]", n.Begin(), n.End())
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, String(n, src), pos)
		depth++
		return true
	})
}

// Print the AST to the provided writer with the specified indent.
func Print(node Node, src []byte, w io.Writer, indent string) {
	print(node, src, w, indent, false)
}

// PrintPositions prints the AST to the provided writer with
// the specified indent and node positions.
func PrintPositions(node Node, src []byte, w io.Writer, indent string) {
	print(node, src, w, indent, true)
}

// Dump renders the tree rooted at n on one line, e.g. Var{x, y = 1} or
// Assign{a = Cond{b ? c : d}}. The output is deterministic and is what the
// parser tests compare against.
func Dump(n Node, src []byte) string {
	var buf bytes.Buffer
	d := dumper{src: src, buf: &buf}
	d.node(n)
	return buf.String()
}

type dumper struct {
	src []byte
	buf *bytes.Buffer
}

func (d dumper) text(tok scanner.Token) {
	d.buf.Write(tok.Text(d.src))
}

func (d dumper) op(tok scanner.Token) {
	d.buf.WriteString(tok.Kind.String())
}

func (d dumper) stmts(ss []Stmt) {
	for i, s := range ss {
		if i > 0 {
			d.buf.WriteString(", ")
		}
		d.node(s)
	}
}

func (d dumper) args(xs []Expr) {
	d.buf.WriteByte('(')
	for i, x := range xs {
		if i > 0 {
			d.buf.WriteString(", ")
		}
		d.node(x)
	}
	d.buf.WriteByte(')')
}

func (d dumper) node(n Node) {
	w := d.buf.WriteString
	switch n := n.(type) {
	case nil:
		w("Nil")
	case *ProgramNode:
		w("Program{")
		d.stmts(n.Body)
		w("}")
	case *BlockStmt:
		w("Block{")
		d.stmts(n.Body)
		w("}")
	case *VarStmt:
		w("Var{")
		for i, decl := range n.Decls {
			if i > 0 {
				w(", ")
			}
			d.text(decl.Name)
			if decl.Init != nil {
				w(" = ")
				d.node(decl.Init)
			}
		}
		w("}")
	case *EmptyStmt:
		w("Empty")
	case *IfStmt:
		w("If{")
		d.node(n.Cond)
		w(", ")
		d.node(n.Then)
		if n.Else != nil {
			w(", ")
			d.node(n.Else)
		}
		w("}")
	case *ExprStmt:
		w("ExprStmt{")
		d.node(n.X)
		w("}")
	case *BinaryExpr:
		w("Binary{")
		d.node(n.X)
		w(" ")
		d.op(n.Op)
		w(" ")
		d.node(n.Y)
		w("}")
	case *ConditionalExpr:
		w("Cond{")
		d.node(n.Cond)
		w(" ? ")
		d.node(n.Then)
		w(" : ")
		d.node(n.Else)
		w("}")
	case *AssignExpr:
		w("Assign{")
		d.node(n.Target)
		w(" ")
		d.op(n.Op)
		w(" ")
		d.node(n.Value)
		w("}")
	case *CommaExpr:
		w("Comma{")
		d.node(n.X)
		w(", ")
		d.node(n.Y)
		w("}")
	case *PostfixExpr:
		w("Postfix{")
		d.node(n.X)
		d.op(n.Op)
		w("}")
	case *UnaryExpr:
		w("Unary{")
		d.op(n.Op)
		if n.Op.Kind.IsKeyword() {
			w(" ")
		}
		d.node(n.X)
		w("}")
	case *ConstructExpr:
		w("Construct{new ")
		d.node(n.Callee)
		if n.HasArgs {
			d.args(n.Args)
		}
		w("}")
	case *PropertyExpr:
		w("Property{")
		d.node(n.X)
		w(".")
		d.text(n.Name)
		w("}")
	case *ElementExpr:
		w("Element{")
		d.node(n.X)
		w("[")
		d.node(n.Index)
		w("]}")
	case *CallExpr:
		w("Call{")
		d.node(n.Fn)
		d.args(n.Args)
		w("}")
	case *NameExpr:
		d.text(n.Token)
	default:
		panic(fmt.Sprintf("unhandled node type %T", n))
	}
}
