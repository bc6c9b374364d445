package ast

import "github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"

// BinaryExpr is X Op Y
type BinaryExpr struct {
	expr
	Op scanner.Token
	X  Expr
	Y  Expr
}

// NewBinaryExpr creates a binary expression. Assignment, '?' and ',' have
// their own nodes.
func NewBinaryExpr(op scanner.Token, x, y Expr) *BinaryExpr {
	_, isBinary := scanner.BinaryPrecedence(op.Kind)
	mustKind(op, "Binary.Op", isBinary && !op.Kind.IsAssignment() &&
		op.Kind != scanner.Question && op.Kind != scanner.Comma)
	mustExpr(x, "Binary.X")
	mustExpr(y, "Binary.Y")
	return &BinaryExpr{Op: op, X: x, Y: y}
}

// Type implements Node
func (b *BinaryExpr) Type() Type { return BinaryExpression }

// Begin implements Node
func (b *BinaryExpr) Begin() scanner.StreamPosition { return b.X.Begin() }

// End implements Node
func (b *BinaryExpr) End() scanner.StreamPosition { return b.Y.End() }

// ConditionalExpr is Cond ? Then : Else
type ConditionalExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// NewConditionalExpr creates a conditional expression
func NewConditionalExpr(cond, then, els Expr) *ConditionalExpr {
	mustExpr(cond, "Conditional.Cond")
	mustExpr(then, "Conditional.Then")
	mustExpr(els, "Conditional.Else")
	return &ConditionalExpr{Cond: cond, Then: then, Else: els}
}

// Type implements Node
func (c *ConditionalExpr) Type() Type { return ConditionalExpression }

// Begin implements Node
func (c *ConditionalExpr) Begin() scanner.StreamPosition { return c.Cond.Begin() }

// End implements Node
func (c *ConditionalExpr) End() scanner.StreamPosition { return c.Else.End() }

// AssignExpr is Target Op Value, where Op is = or a compound assignment.
type AssignExpr struct {
	expr
	Op     scanner.Token
	Target Expr
	Value  Expr
}

// NewAssignExpr creates an assignment
func NewAssignExpr(op scanner.Token, target, value Expr) *AssignExpr {
	mustKind(op, "Assign.Op", op.Kind.IsAssignment())
	mustExpr(target, "Assign.Target")
	mustExpr(value, "Assign.Value")
	return &AssignExpr{Op: op, Target: target, Value: value}
}

// Type implements Node
func (a *AssignExpr) Type() Type { return AssignmentExpression }

// Begin implements Node
func (a *AssignExpr) Begin() scanner.StreamPosition { return a.Target.Begin() }

// End implements Node
func (a *AssignExpr) End() scanner.StreamPosition { return a.Value.End() }

// CommaExpr is X, Y
type CommaExpr struct {
	expr
	X Expr
	Y Expr
}

// NewCommaExpr creates a comma expression
func NewCommaExpr(x, y Expr) *CommaExpr {
	mustExpr(x, "Comma.X")
	mustExpr(y, "Comma.Y")
	return &CommaExpr{X: x, Y: y}
}

// Type implements Node
func (c *CommaExpr) Type() Type { return CommaExpression }

// Begin implements Node
func (c *CommaExpr) Begin() scanner.StreamPosition { return c.X.Begin() }

// End implements Node
func (c *CommaExpr) End() scanner.StreamPosition { return c.Y.End() }

// PostfixExpr is X++ or X--
type PostfixExpr struct {
	expr
	Op scanner.Token
	X  Expr
}

// NewPostfixExpr creates a postfix expression
func NewPostfixExpr(op scanner.Token, x Expr) *PostfixExpr {
	mustKind(op, "Postfix.Op", op.Kind == scanner.PlusPlus || op.Kind == scanner.MinusMinus)
	mustExpr(x, "Postfix.X")
	return &PostfixExpr{Op: op, X: x}
}

// Type implements Node
func (p *PostfixExpr) Type() Type { return PostfixExpression }

// Begin implements Node
func (p *PostfixExpr) Begin() scanner.StreamPosition { return p.X.Begin() }

// End implements Node
func (p *PostfixExpr) End() scanner.StreamPosition { return p.Op.Location.End }

// UnaryExpr is Op X for a prefix operator.
type UnaryExpr struct {
	expr
	Op scanner.Token
	X  Expr
}

// NewUnaryExpr creates a prefix expression
func NewUnaryExpr(op scanner.Token, x Expr) *UnaryExpr {
	mustKind(op, "Unary.Op", scanner.IsUnaryOperator(op.Kind))
	mustExpr(x, "Unary.X")
	return &UnaryExpr{Op: op, X: x}
}

// Type implements Node
func (u *UnaryExpr) Type() Type { return UnaryExpression }

// Begin implements Node
func (u *UnaryExpr) Begin() scanner.StreamPosition { return u.Op.Location.Start }

// End implements Node
func (u *UnaryExpr) End() scanner.StreamPosition { return u.X.End() }

// ConstructExpr is new Callee(Args), or new Callee when HasArgs is false.
type ConstructExpr struct {
	expr
	New     scanner.Token
	Callee  Expr
	Args    []Expr
	HasArgs bool
	Rparen  scanner.Token // zero if HasArgs is false
}

// NewConstructExpr creates a new expression with an argument list.
func NewConstructExpr(newTok scanner.Token, callee Expr, args []Expr, rparen scanner.Token) *ConstructExpr {
	mustKind(newTok, "Construct.New", newTok.Kind == scanner.NewKeyword)
	mustKind(rparen, "Construct.Rparen", rparen.Kind == scanner.CloseParen)
	mustExpr(callee, "Construct.Callee")
	for _, arg := range args {
		mustExpr(arg, "Construct.Args")
	}
	return &ConstructExpr{New: newTok, Callee: callee, Args: args, HasArgs: true, Rparen: rparen}
}

// NewBareConstructExpr creates a new expression without an argument list.
func NewBareConstructExpr(newTok scanner.Token, callee Expr) *ConstructExpr {
	mustKind(newTok, "Construct.New", newTok.Kind == scanner.NewKeyword)
	mustExpr(callee, "Construct.Callee")
	return &ConstructExpr{New: newTok, Callee: callee}
}

// Type implements Node
func (c *ConstructExpr) Type() Type { return NewExpression }

// Begin implements Node
func (c *ConstructExpr) Begin() scanner.StreamPosition { return c.New.Location.Start }

// End implements Node
func (c *ConstructExpr) End() scanner.StreamPosition {
	if c.HasArgs {
		return c.Rparen.Location.End
	}
	return c.Callee.End()
}

// PropertyExpr is X.Name
type PropertyExpr struct {
	expr
	X    Expr
	Name scanner.Token
}

// NewPropertyExpr creates a property access. Reserved words scan as
// identifiers after a dot, so Name is always an identifier.
func NewPropertyExpr(x Expr, name scanner.Token) *PropertyExpr {
	mustExpr(x, "Property.X")
	mustKind(name, "Property.Name", name.Kind == scanner.Identifier)
	return &PropertyExpr{X: x, Name: name}
}

// Type implements Node
func (p *PropertyExpr) Type() Type { return PropertyAccess }

// Begin implements Node
func (p *PropertyExpr) Begin() scanner.StreamPosition { return p.X.Begin() }

// End implements Node
func (p *PropertyExpr) End() scanner.StreamPosition { return p.Name.Location.End }

// ElementExpr is X[Index]
type ElementExpr struct {
	expr
	X      Expr
	Index  Expr
	Rbrack scanner.Token
}

// NewElementExpr creates an element access
func NewElementExpr(x, index Expr, rbrack scanner.Token) *ElementExpr {
	mustExpr(x, "Element.X")
	mustExpr(index, "Element.Index")
	mustKind(rbrack, "Element.Rbrack", rbrack.Kind == scanner.CloseBracket)
	return &ElementExpr{X: x, Index: index, Rbrack: rbrack}
}

// Type implements Node
func (e *ElementExpr) Type() Type { return ElementAccess }

// Begin implements Node
func (e *ElementExpr) Begin() scanner.StreamPosition { return e.X.Begin() }

// End implements Node
func (e *ElementExpr) End() scanner.StreamPosition { return e.Rbrack.Location.End }

// CallExpr is Fn(Args)
type CallExpr struct {
	expr
	Fn     Expr
	Args   []Expr
	Rparen scanner.Token
}

// NewCallExpr creates a call
func NewCallExpr(fn Expr, args []Expr, rparen scanner.Token) *CallExpr {
	mustExpr(fn, "Call.Fn")
	for _, arg := range args {
		mustExpr(arg, "Call.Args")
	}
	mustKind(rparen, "Call.Rparen", rparen.Kind == scanner.CloseParen)
	return &CallExpr{Fn: fn, Args: args, Rparen: rparen}
}

// Type implements Node
func (c *CallExpr) Type() Type { return Call }

// Begin implements Node
func (c *CallExpr) Begin() scanner.StreamPosition { return c.Fn.Begin() }

// End implements Node
func (c *CallExpr) End() scanner.StreamPosition { return c.Rparen.Location.End }

// NameExpr is a single atomic token: an identifier, a numeric literal or this.
type NameExpr struct {
	expr
	Token scanner.Token
}

// NewNameExpr creates a name
func NewNameExpr(tok scanner.Token) *NameExpr {
	mustKind(tok, "Name.Token", tok.Kind.IsAtomic())
	return &NameExpr{Token: tok}
}

// Type implements Node
func (n *NameExpr) Type() Type { return Name }

// Begin implements Node
func (n *NameExpr) Begin() scanner.StreamPosition { return n.Token.Location.Start }

// End implements Node
func (n *NameExpr) End() scanner.StreamPosition { return n.Token.Location.End }
