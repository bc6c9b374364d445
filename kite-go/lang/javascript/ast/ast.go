package ast

import (
	"fmt"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
)

// Type of an ast node.
type Type string

const (
	// Program is the root of every tree.
	Program Type = "Program"

	// -- Statements

	// BlockStatement represents a braced statement list.
	BlockStatement Type = "BlockStatement"
	// VariableStatement represents a var declaration list.
	VariableStatement = "VariableStatement"
	// EmptyStatement represents a lone semicolon.
	EmptyStatement = "EmptyStatement"
	// IfStatement represents an if statement with an optional else branch.
	IfStatement = "IfStatement"
	// ExpressionStatement represents an expression terminated by a semicolon.
	ExpressionStatement = "ExpressionStatement"

	// -- Expressions

	// BinaryExpression represents an infix arithmetic, bitwise, logical or relational operation.
	BinaryExpression Type = "BinaryExpression"
	// ConditionalExpression represents cond ? a : b.
	ConditionalExpression = "ConditionalExpression"
	// AssignmentExpression represents simple and compound assignment.
	AssignmentExpression = "AssignmentExpression"
	// CommaExpression represents a, b.
	CommaExpression = "CommaExpression"
	// PostfixExpression represents x++ and x--.
	PostfixExpression = "PostfixExpression"
	// UnaryExpression represents a prefix operator applied to an operand.
	UnaryExpression = "UnaryExpression"
	// NewExpression represents new with or without an argument list.
	NewExpression = "NewExpression"
	// PropertyAccess represents x.name.
	PropertyAccess = "PropertyAccess"
	// ElementAccess represents x[index].
	ElementAccess = "ElementAccess"
	// Call represents a function call.
	Call = "Call"
	// Name represents an identifier, a numeric literal or this.
	Name = "Name"
)

// Node is implemented by every node in the tree.
type Node interface {
	Type() Type
	IsStatement() bool
	IsExpression() bool
	Begin() scanner.StreamPosition
	End() scanner.StreamPosition
}

// Stmt is a node that can appear in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that can appear in expression position.
type Expr interface {
	Node
	exprNode()
}

type stmt struct{}

func (stmt) IsStatement() bool  { return true }
func (stmt) IsExpression() bool { return false }
func (stmt) stmtNode()          {}

type expr struct{}

func (expr) IsStatement() bool  { return false }
func (expr) IsExpression() bool { return true }
func (expr) exprNode()          {}

// Constructors below panic when handed a child that cannot fill its slot.
// The parser never does so; a panic here means the builder is broken.

func mustExpr(x Expr, slot string) {
	if x == nil || !x.IsExpression() {
		panic(fmt.Sprintf("%s: expression required", slot))
	}
}

func mustStmt(s Stmt, slot string) {
	if s == nil || !s.IsStatement() {
		panic(fmt.Sprintf("%s: statement required", slot))
	}
}

func mustKind(tok scanner.Token, slot string, ok bool) {
	if !ok {
		panic(fmt.Sprintf("%s: unexpected token %s", slot, tok.Kind))
	}
}
