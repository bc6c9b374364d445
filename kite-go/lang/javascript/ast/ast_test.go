package ast

import (
	"bytes"
	"testing"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokens lexes src without trivia and drops the End token.
func tokens(t *testing.T, src string) []scanner.Token {
	toks, err := scanner.Lex([]byte(src), scanner.LexOptions{CheckKeywords: true})
	require.NoError(t, err)
	return toks[:len(toks)-1]
}

func TestVarStmt_Dump(t *testing.T) {
	src := "var x, y = 1;"
	toks := tokens(t, src)
	// var x , y = 1 ;
	stmt := NewVarStmt(toks[0], []*VarDecl{
		NewVarDecl(toks[1], nil),
		NewVarDecl(toks[3], NewNameExpr(toks[5])),
	}, toks[6])

	assert.Equal(t, "Var{x, y = 1}", Dump(stmt, []byte(src)))
	assert.Equal(t, "VariableStatement[x, y]", String(stmt, []byte(src)))
	assert.Equal(t, scanner.StreamPosition(0), stmt.Begin())
	assert.Equal(t, scanner.StreamPosition(len(src)), stmt.End())
	assert.True(t, stmt.IsStatement())
	assert.False(t, stmt.IsExpression())
}

func TestExpr_Dump(t *testing.T) {
	src := "a = b ? c : d"
	toks := tokens(t, src)
	a, b, c, d := NewNameExpr(toks[0]), NewNameExpr(toks[2]), NewNameExpr(toks[4]), NewNameExpr(toks[6])
	assign := NewAssignExpr(toks[1], a, NewConditionalExpr(b, c, d))

	assert.Equal(t, "Assign{a = Cond{b ? c : d}}", Dump(assign, []byte(src)))
	assert.True(t, assign.IsExpression())
	assert.False(t, assign.IsStatement())
	assert.Equal(t, scanner.StreamPosition(len(src)), assign.End())
}

func TestConstruct_Dump(t *testing.T) {
	src := "new F ( x ) new"
	toks := tokens(t, src)
	inner := NewConstructExpr(toks[0], NewNameExpr(toks[1]), []Expr{NewNameExpr(toks[3])}, toks[4])
	outer := NewBareConstructExpr(toks[5], inner)

	assert.Equal(t, "Construct{new Construct{new F(x)}}", Dump(outer, []byte(src)))
	assert.False(t, outer.HasArgs)
	assert.Equal(t, inner.End(), outer.End())
}

func TestUnary_Dump(t *testing.T) {
	src := "typeof a - b"
	toks := tokens(t, src)
	u := NewUnaryExpr(toks[0], NewNameExpr(toks[1]))
	neg := NewUnaryExpr(toks[2], NewNameExpr(toks[3]))
	assert.Equal(t, "Unary{typeof a}", Dump(u, []byte(src)))
	assert.Equal(t, "Unary{-b}", Dump(neg, []byte(src)))
}

func TestConstructors_RejectBadSlots(t *testing.T) {
	src := "a + ; var"
	toks := tokens(t, src)
	a := NewNameExpr(toks[0])

	assert.Panics(t, func() { NewNameExpr(toks[1]) })
	assert.Panics(t, func() { NewAssignExpr(toks[1], a, a) })
	assert.Panics(t, func() { NewBinaryExpr(toks[1], a, nil) })
	assert.Panics(t, func() { NewExprStmt(nil, toks[2]) })
	assert.Panics(t, func() { NewPostfixExpr(toks[1], a) })
	assert.Panics(t, func() { NewVarDecl(toks[3], nil) })
	assert.Panics(t, func() { NewVarStmt(toks[3], nil, toks[2]) })
	assert.Panics(t, func() { NewEmptyStmt(toks[1]) })
	assert.NotPanics(t, func() { NewBinaryExpr(toks[1], a, a) })
}

func TestInspect(t *testing.T) {
	src := "if (a) b; else c;"
	toks := tokens(t, src)
	// if ( a ) b ; else c ;
	stmt := NewIfStmt(toks[0], NewNameExpr(toks[2]),
		NewExprStmt(NewNameExpr(toks[4]), toks[5]),
		NewExprStmt(NewNameExpr(toks[7]), toks[8]))
	prog := NewProgram([]Stmt{stmt}, scanner.Location{End: scanner.StreamPosition(len(src))})

	var types []Type
	Inspect(prog, func(n Node) bool {
		if n != nil {
			types = append(types, n.Type())
		}
		return true
	})
	assert.Equal(t, []Type{
		Program, IfStatement, Name, ExpressionStatement, Name, ExpressionStatement, Name,
	}, types)
	assert.Equal(t, 7, Count(prog))
	assert.Equal(t, "Program{If{a, ExprStmt{b}, ExprStmt{c}}}", Dump(prog, []byte(src)))
	assert.Equal(t, scanner.StreamPosition(len(src)), stmt.End())
}

type depthVisitor struct {
	depth int
	max   *int
}

func (v depthVisitor) Visit(n Node) Visitor {
	if n == nil {
		return nil
	}
	if v.depth > *v.max {
		*v.max = v.depth
	}
	// skip the arguments of calls
	if _, ok := n.(*CallExpr); ok {
		return nil
	}
	return depthVisitor{depth: v.depth + 1, max: v.max}
}

func TestWalk(t *testing.T) {
	src := "a + f(b.c);"
	toks := tokens(t, src)
	// a + f ( b . c ) ;
	call := NewCallExpr(NewNameExpr(toks[2]), []Expr{NewPropertyExpr(NewNameExpr(toks[4]), toks[6])}, toks[7])
	stmt := NewExprStmt(NewBinaryExpr(toks[1], NewNameExpr(toks[0]), call), toks[8])

	var max int
	Walk(depthVisitor{max: &max}, stmt)
	assert.Equal(t, 2, max)
}

func TestPrint(t *testing.T) {
	src := "f(x).y;"
	toks := tokens(t, src)
	// f ( x ) . y ;
	call := NewCallExpr(NewNameExpr(toks[0]), []Expr{NewNameExpr(toks[2])}, toks[3])
	stmt := NewExprStmt(NewPropertyExpr(call, toks[5]), toks[6])

	var buf bytes.Buffer
	Print(stmt, []byte(src), &buf, "  ")
	assert.Equal(t, `ExpressionStatement
  PropertyAccess[y]
    Call
      Name[f]
      Name[x]
`, buf.String())

	buf.Reset()
	PrintPositions(call, []byte(src), &buf, "")
	assert.Equal(t, "Call[0...4]\nName[f][0...1]\nName[x][2...3]\n", buf.String())
}
