package ast

import "fmt"

// Children returns the child nodes of n in source order. Declarations of a
// var statement contribute their initializers.
func Children(n Node) []Node {
	var out []Node
	addExpr := func(x Expr) {
		if x != nil {
			out = append(out, x)
		}
	}
	addExprs := func(xs []Expr) {
		for _, x := range xs {
			out = append(out, x)
		}
	}
	addStmts := func(ss []Stmt) {
		for _, s := range ss {
			out = append(out, s)
		}
	}

	switch n := n.(type) {
	case *ProgramNode:
		addStmts(n.Body)
	case *BlockStmt:
		addStmts(n.Body)
	case *VarStmt:
		for _, decl := range n.Decls {
			addExpr(decl.Init)
		}
	case *EmptyStmt:
	case *IfStmt:
		out = append(out, n.Cond, n.Then)
		if n.Else != nil {
			out = append(out, n.Else)
		}
	case *ExprStmt:
		out = append(out, n.X)
	case *BinaryExpr:
		out = append(out, n.X, n.Y)
	case *ConditionalExpr:
		out = append(out, n.Cond, n.Then, n.Else)
	case *AssignExpr:
		out = append(out, n.Target, n.Value)
	case *CommaExpr:
		out = append(out, n.X, n.Y)
	case *PostfixExpr:
		out = append(out, n.X)
	case *UnaryExpr:
		out = append(out, n.X)
	case *ConstructExpr:
		out = append(out, n.Callee)
		addExprs(n.Args)
	case *PropertyExpr:
		out = append(out, n.X)
	case *ElementExpr:
		out = append(out, n.X, n.Index)
	case *CallExpr:
		out = append(out, n.Fn)
		addExprs(n.Args)
	case *NameExpr:
	default:
		panic(fmt.Sprintf("unhandled node type %T", n))
	}
	return out
}

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	if f(node) {
		for _, child := range Children(node) {
			Inspect(child, f)
		}
		f(nil)
	}
}

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order, starting with v.Visit(node).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
	v.Visit(nil)
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	var n int
	Inspect(node, func(c Node) bool {
		if c != nil {
			n++
		}
		return true
	})
	return n
}
