package ast

import "github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"

// ProgramNode is the root of a parsed source buffer.
type ProgramNode struct {
	Body []Stmt
	Span scanner.Location
}

// NewProgram creates a program covering span.
func NewProgram(body []Stmt, span scanner.Location) *ProgramNode {
	for _, s := range body {
		mustStmt(s, "Program.Body")
	}
	return &ProgramNode{Body: body, Span: span}
}

// Type implements Node
func (p *ProgramNode) Type() Type { return Program }

// IsStatement implements Node. The program is the root and fills no slot.
func (p *ProgramNode) IsStatement() bool { return false }

// IsExpression implements Node
func (p *ProgramNode) IsExpression() bool { return false }

// Begin implements Node
func (p *ProgramNode) Begin() scanner.StreamPosition { return p.Span.Start }

// End implements Node
func (p *ProgramNode) End() scanner.StreamPosition { return p.Span.End }

// BlockStmt is { Body }
type BlockStmt struct {
	stmt
	Lbrace scanner.Token
	Body   []Stmt
	Rbrace scanner.Token
}

// NewBlockStmt creates a block statement
func NewBlockStmt(lbrace scanner.Token, body []Stmt, rbrace scanner.Token) *BlockStmt {
	mustKind(lbrace, "Block.Lbrace", lbrace.Kind == scanner.OpenBrace)
	mustKind(rbrace, "Block.Rbrace", rbrace.Kind == scanner.CloseBrace)
	for _, s := range body {
		mustStmt(s, "Block.Body")
	}
	return &BlockStmt{Lbrace: lbrace, Body: body, Rbrace: rbrace}
}

// Type implements Node
func (b *BlockStmt) Type() Type { return BlockStatement }

// Begin implements Node
func (b *BlockStmt) Begin() scanner.StreamPosition { return b.Lbrace.Location.Start }

// End implements Node
func (b *BlockStmt) End() scanner.StreamPosition { return b.Rbrace.Location.End }

// VarDecl is one name in a var statement, with its optional initializer.
type VarDecl struct {
	Name scanner.Token
	Init Expr // nil if there is no initializer
}

// NewVarDecl creates a declaration; init may be nil.
func NewVarDecl(name scanner.Token, init Expr) *VarDecl {
	mustKind(name, "VarDecl.Name", name.Kind == scanner.Identifier)
	if init != nil {
		mustExpr(init, "VarDecl.Init")
	}
	return &VarDecl{Name: name, Init: init}
}

// VarStmt is var a, b = 1;
type VarStmt struct {
	stmt
	Var       scanner.Token
	Decls     []*VarDecl
	Semicolon scanner.Token
}

// NewVarStmt creates a var statement with at least one declaration.
func NewVarStmt(v scanner.Token, decls []*VarDecl, semi scanner.Token) *VarStmt {
	mustKind(v, "Var.Var", v.Kind == scanner.VarKeyword)
	mustKind(semi, "Var.Semicolon", semi.Kind == scanner.Semicolon)
	if len(decls) == 0 {
		panic("Var.Decls: at least one declaration required")
	}
	return &VarStmt{Var: v, Decls: decls, Semicolon: semi}
}

// Type implements Node
func (v *VarStmt) Type() Type { return VariableStatement }

// Begin implements Node
func (v *VarStmt) Begin() scanner.StreamPosition { return v.Var.Location.Start }

// End implements Node
func (v *VarStmt) End() scanner.StreamPosition { return v.Semicolon.Location.End }

// EmptyStmt is a lone ;
type EmptyStmt struct {
	stmt
	Semicolon scanner.Token
}

// NewEmptyStmt creates an empty statement
func NewEmptyStmt(semi scanner.Token) *EmptyStmt {
	mustKind(semi, "Empty.Semicolon", semi.Kind == scanner.Semicolon)
	return &EmptyStmt{Semicolon: semi}
}

// Type implements Node
func (e *EmptyStmt) Type() Type { return EmptyStatement }

// Begin implements Node
func (e *EmptyStmt) Begin() scanner.StreamPosition { return e.Semicolon.Location.Start }

// End implements Node
func (e *EmptyStmt) End() scanner.StreamPosition { return e.Semicolon.Location.End }

// IfStmt is if (Cond) Then else Else
type IfStmt struct {
	stmt
	If   scanner.Token
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
}

// NewIfStmt creates an if statement; els may be nil.
func NewIfStmt(ifTok scanner.Token, cond Expr, then Stmt, els Stmt) *IfStmt {
	mustKind(ifTok, "If.If", ifTok.Kind == scanner.IfKeyword)
	mustExpr(cond, "If.Cond")
	mustStmt(then, "If.Then")
	if els != nil {
		mustStmt(els, "If.Else")
	}
	return &IfStmt{If: ifTok, Cond: cond, Then: then, Else: els}
}

// Type implements Node
func (i *IfStmt) Type() Type { return IfStatement }

// Begin implements Node
func (i *IfStmt) Begin() scanner.StreamPosition { return i.If.Location.Start }

// End implements Node
func (i *IfStmt) End() scanner.StreamPosition {
	if i.Else != nil {
		return i.Else.End()
	}
	return i.Then.End()
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	stmt
	X         Expr
	Semicolon scanner.Token
}

// NewExprStmt creates an expression statement
func NewExprStmt(x Expr, semi scanner.Token) *ExprStmt {
	mustExpr(x, "ExprStmt.X")
	mustKind(semi, "ExprStmt.Semicolon", semi.Kind == scanner.Semicolon)
	return &ExprStmt{X: x, Semicolon: semi}
}

// Type implements Node
func (e *ExprStmt) Type() Type { return ExpressionStatement }

// Begin implements Node
func (e *ExprStmt) Begin() scanner.StreamPosition { return e.X.Begin() }

// End implements Node
func (e *ExprStmt) End() scanner.StreamPosition { return e.Semicolon.Location.End }
