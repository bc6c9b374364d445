package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kiteco/oxyjs/kite-go/lang/javascript/ast"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
	"github.com/kiteco/oxyjs/kite-golib/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDump(t *testing.T, expected, actual, src string) {
	if expected == actual {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	t.Errorf("for source:\n%s\nexpected:\n%s\nactual:\n%s\ndiff:\n%s",
		src, expected, actual, dmp.DiffPrettyText(diffs))
}

func assertParse(t *testing.T, expected string, src string) *ast.ProgramNode {
	prog, err := Parse([]byte(src), DefaultOptions)
	require.NoError(t, err, src)
	assertDump(t, expected, ast.Dump(prog, []byte(src)), src)
	return prog
}

// assertExpr parses src as a single expression statement and compares the
// dump of the expression.
func assertExpr(t *testing.T, expected string, src string) {
	prog, err := Parse([]byte(src+";"), DefaultOptions)
	require.NoError(t, err, src)
	require.Len(t, prog.Body, 1, src)
	stmt, ok := prog.Body[0].(*ast.ExprStmt)
	require.True(t, ok, "%T", prog.Body[0])
	assertDump(t, expected, ast.Dump(stmt.X, []byte(src+";")), src)
}

func assertError(t *testing.T, reason Reason, src string) *ParseError {
	_, err := Parse([]byte(src), DefaultOptions)
	require.Error(t, err, src)
	perr, ok := err.(*ParseError)
	require.True(t, ok, "%T", err)
	assert.Equal(t, reason, perr.Reason, "%s: %v", src, err)
	return perr
}

func TestAssignConditional(t *testing.T) {
	prog := assertParse(t, "Program{ExprStmt{Assign{a = Cond{b ? c : d}}}}", "a = b ? c : d;")

	assign, ok := prog.Body[0].(*ast.ExprStmt).X.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, scanner.Assign, assign.Op.Kind)
	cond, ok := assign.Value.(*ast.ConditionalExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.NameExpr{}, cond.Cond)
}

func TestCommaPrecedence(t *testing.T) {
	src := []byte("a , b = c")
	b := NewAstBuilder(scanner.NewBufferStream(src), DefaultOptions)
	x, err := b.ParseExpression(scanner.CommaPrecedence)
	require.NoError(t, err)

	comma, ok := x.(*ast.CommaExpr)
	require.True(t, ok, "%T", x)
	assert.IsType(t, &ast.NameExpr{}, comma.X)
	assert.IsType(t, &ast.AssignExpr{}, comma.Y)
	assert.Equal(t, "Comma{a, Assign{b = c}}", ast.Dump(x, src))
}

func TestAssignmentPrecedenceStopsAtComma(t *testing.T) {
	src := []byte("a = 1, b")
	b := NewAstBuilder(scanner.NewBufferStream(src), DefaultOptions)
	x, err := b.ParseExpression(scanner.AssignmentPrecedence)
	require.NoError(t, err)
	assert.Equal(t, "Assign{a = 1}", ast.Dump(x, src))

	tok, err := b.peek()
	require.NoError(t, err)
	assert.Equal(t, scanner.Comma, tok.Kind)
}

func TestVarStatement(t *testing.T) {
	prog := assertParse(t, "Program{Var{x, y = 1}}", "var x, y = 1;")
	v := prog.Body[0].(*ast.VarStmt)
	require.Len(t, v.Decls, 2)
	assert.Nil(t, v.Decls[0].Init)
	assert.NotNil(t, v.Decls[1].Init)

	assertParse(t, "Program{Var{a = Comma{b, c}}}", "var a = (b, c);")
	assertParse(t, "Program{Var{a = Assign{b = c}, d}}", "var a = b = c, d;")
}

func TestIfStatement(t *testing.T) {
	prog := assertParse(t, "Program{If{a, ExprStmt{b}, ExprStmt{c}}}", "if (a) b; else c;")
	assert.NotNil(t, prog.Body[0].(*ast.IfStmt).Else)

	prog = assertParse(t, "Program{If{a, ExprStmt{b}}}", "if (a) b;")
	assert.Nil(t, prog.Body[0].(*ast.IfStmt).Else)

	assertParse(t, "Program{If{a, If{b, ExprStmt{c}, ExprStmt{d}}}}", "if (a) if (b) c; else d;")
	assertParse(t, "Program{If{Binary{a == 1}, Empty}}", "if (a == 1) ;")
}

func TestStatements(t *testing.T) {
	assertParse(t, "Program{}", "")
	assertParse(t, "Program{}", "  // nothing\n/* here */\n")
	assertParse(t, "Program{Empty, Empty}", ";;")
	assertParse(t, "Program{Block{}}", "{}")
	assertParse(t, "Program{Block{ExprStmt{a}, Block{Var{b}}}}", "{ a; { var b; } }")
	assertParse(t, "Program{If{a, Block{ExprStmt{b}, ExprStmt{c}}, Block{}}}", "if (a) { b; c; } else {}")
	assertParse(t, "Program{ExprStmt{thistle}}", "thistle;")
	assertParse(t, "Program{ExprStmt{a}, ExprStmt{b}}", "a;\r\nb;")
}

func TestBinaryPrecedence(t *testing.T) {
	assertExpr(t, "Binary{Binary{a - b} - c}", "a - b - c")
	assertExpr(t, "Binary{a + Binary{b * c}}", "a + b * c")
	assertExpr(t, "Binary{Binary{a * b} + c}", "a * b + c")
	assertExpr(t, "Binary{a || Binary{b && c}}", "a || b && c")
	assertExpr(t, "Binary{Binary{a < b} == c}", "a < b == c")
	assertExpr(t, "Binary{Binary{a | b} | Binary{c ^ Binary{d & e}}}", "a | b | c ^ d & e")
	assertExpr(t, "Binary{Binary{a << 1} >>> 2}", "a << 1 >>> 2")
	assertExpr(t, "Binary{Binary{a in b} instanceof c}", "a in b instanceof c")
	assertExpr(t, "Binary{Comma{a, b} * c}", "(a, b) * c")
}

func TestAssignment(t *testing.T) {
	assertExpr(t, "Assign{a = Assign{b = c}}", "a = b = c")
	assertExpr(t, "Assign{a += Binary{b * 2}}", "a += b * 2")
	assertExpr(t, "Comma{Assign{x = Cond{y ? 1 : 2}}, z}", "x = y ? 1 : 2, z")
	assertExpr(t, "Cond{a ? b : Cond{c ? d : e}}", "a ? b : c ? d : e")
	assertExpr(t, "Cond{a ? Assign{b = 1} : Assign{c = 2}}", "a ? b = 1 : c = 2")
	assertExpr(t, "Assign{Property{this.x} = 0x1F}", "this.x = 0x1F")
}

func TestUnaryAndPostfix(t *testing.T) {
	assertExpr(t, "Unary{-Property{a.b}}", "-a.b")
	assertExpr(t, "Binary{Unary{typeof a} + b}", "typeof a + b")
	assertExpr(t, "Unary{!Postfix{a++}}", "!a++")
	assertExpr(t, "Postfix{Property{a.b}++}", "a.b++")
	assertExpr(t, "Unary{-Unary{-a}}", "- -a")
	assertExpr(t, "Unary{++Unary{~a}}", "++~a")
	assertExpr(t, "Comma{Unary{delete Element{a[0]}}, Unary{void 0}}", "delete a[0], void 0")
	assertExpr(t, "Binary{Postfix{a--} - b}", "a-- - b")
	assertExpr(t, "Postfix{a++}", "a /* same line */ ++")
}

func TestPostfixAcrossNewline(t *testing.T) {
	perr := assertError(t, UnexpectedToken, "a\n++b;")
	assert.Equal(t, scanner.Semicolon, perr.Expected)
	assert.Equal(t, scanner.PlusPlus, perr.Token.Kind)

	assertParse(t, "Program{ExprStmt{a}, ExprStmt{Unary{++b}}}", "a;\n++b;")
}

func TestMemberAndCall(t *testing.T) {
	assertExpr(t, "Element{Property{Call{Call{f(a)}(b)}.c}[d]}", "f(a)(b).c[d]")
	assertExpr(t, "Call{f()}", "f()")
	assertExpr(t, "Call{f(Assign{a = 1}, Binary{b + c})}", "f(a = 1, b + c)")
	assertExpr(t, "Property{a.if}", "a.if")
	assertExpr(t, "Property{Property{a.new}.var}", "a.new.var")
	assertExpr(t, "Element{a[Comma{b, c}]}", "a[b, c]")

	// parentheses make any expression a primary expression again
	assertExpr(t, "Property{Postfix{a++}.b}", "(a++).b")
	assertExpr(t, "Element{Postfix{a++}[0]}", "(a++)[0]")
	assertExpr(t, "Call{Postfix{a--}(1)}", "(a--)(1)")
	assertExpr(t, "Property{Binary{a + b}.c}", "(a + b).c")
	assertExpr(t, "Postfix{Property{Call{f()}.x}++}", "f().x++")
	assertExpr(t, "Call{Property{Call{f()}.g}()}", "f().g()")
}

func TestNew(t *testing.T) {
	assertExpr(t, "Construct{new F}", "new F")
	assertExpr(t, "Construct{new F(a, b)}", "new F(a, b)")
	assertExpr(t, "Construct{new Construct{new F()}()}", "new new F()()")
	assertExpr(t, "Construct{new Construct{new F()}}", "new new F()")
	assertExpr(t, "Construct{new Construct{new F}}", "new new F")
	assertExpr(t, "Property{Construct{new Property{a.b}(x)}.c}", "new a.b(x).c")
	assertExpr(t, "Call{Construct{new F()}(1)}", "new F()(1)")
	assertExpr(t, "Construct{new Property{Construct{new F()}.g}()}", "new new F().g()")
	assertExpr(t, "Construct{new Element{a[0]}}", "new a[0]")
	assertExpr(t, "Construct{new Call{f()}()}", "new (f())()")
	assertExpr(t, "Binary{Construct{new F} + 1}", "new F + 1")
}

func TestErrors(t *testing.T) {
	perr := assertError(t, ExpectedCommaOrSemicolon, "var x")
	assert.Equal(t, scanner.End, perr.Token.Kind)

	assertError(t, ExpectedVariableName, "var 1;")
	assertError(t, ExpectedVariableName, "var if;")
	assertError(t, ExpectedCommaOrSemicolon, "var x y;")
	assertError(t, ExpectedExpression, "var x = ;")
	assertError(t, ExpectedCommaOrCloseParen, "f(a b);")
	assertError(t, ExpectedStatement, "if (a)")
	assertError(t, ExpectedStatement, "if (a) b; else")
	assertError(t, ExpectedExpression, "a + ;")
	assertError(t, ExpectedExpression, "if () a;")
	assertError(t, ExpectedExpression, "new ;")
	assertError(t, ExpectedExpression, "f(,);")

	perr = assertError(t, UnexpectedToken, "while (a) b;")
	assert.Equal(t, scanner.End, perr.Expected)
	assert.Equal(t, scanner.WhileKeyword, perr.Token.Kind)

	perr = assertError(t, UnexpectedToken, "a")
	assert.Equal(t, scanner.Semicolon, perr.Expected)

	perr = assertError(t, UnexpectedToken, "{ a;")
	assert.Equal(t, scanner.CloseBrace, perr.Expected)

	perr = assertError(t, UnexpectedToken, "a.1;")
	assert.Equal(t, scanner.Identifier, perr.Expected)

	assertError(t, UnexpectedToken, "(a;")
	assertError(t, UnexpectedToken, "a ? b;")
	assertError(t, UnexpectedToken, "a[0;")
	assertError(t, UnexpectedToken, "a++ ++;")
	assertError(t, UnexpectedToken, "a++.b;")

	// member accesses, calls and postfix operators never apply to a looser
	// left operand
	for _, src := range []string{
		"a + b++ .c;",
		"a = b++ [0];",
		"-a++.b;",
		"a + b++(1);",
		"a ? b : c++ .d;",
		"!a++(b);",
	} {
		perr := assertError(t, UnexpectedToken, src)
		assert.Equal(t, scanner.Semicolon, perr.Expected, src)
	}
}

func TestTokenizerErrors(t *testing.T) {
	perr := assertError(t, TokenizerError, "a = #;")
	require.NotNil(t, perr.TokenErr)
	assert.Equal(t, scanner.UnrecognizedChar, perr.TokenErr.Reason)
	assert.Equal(t, scanner.StreamPosition(4), perr.Position())

	perr = assertError(t, TokenizerError, "var x = 1e;")
	assert.Equal(t, scanner.BadNumber, perr.TokenErr.Reason)

	assertError(t, TokenizerError, "a; /* open")
}

func TestErrorMessages(t *testing.T) {
	_, err := Parse([]byte("var x"), DefaultOptions)
	require.Error(t, err)
	assert.Equal(t, "5: expected ',' or ';', got End", err.Error())

	_, err = Parse([]byte("{ a;"), DefaultOptions)
	require.Error(t, err)
	assert.Equal(t, "4: unexpected token: expected }, got End", err.Error())
}

func TestErrorReason(t *testing.T) {
	_, err := Parse([]byte("var 1;"), DefaultOptions)
	require.Error(t, err)
	assert.Equal(t, ExpectedVariableName, ErrorReason(err))
	assert.Equal(t, ExpectedVariableName, ErrorReason(errors.Wrapf(err, "parsing input")))
	assert.Equal(t, Unspecified, ErrorReason(errors.New("other")))
}

func TestMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 50) + "a" + strings.Repeat(")", 50) + ";"
	_, err := Parse([]byte(src), Options{MaxDepth: 20})
	require.Error(t, err)
	assert.Equal(t, MaxDepthExceeded, ErrorReason(err))

	_, err = Parse([]byte(src), DefaultOptions)
	assert.NoError(t, err)
}

func TestParseStatement_NoMatch(t *testing.T) {
	b := NewAstBuilder(scanner.NewBufferStream([]byte(" ) a")), DefaultOptions)
	s, err := b.ParseStatement()
	require.NoError(t, err)
	assert.Nil(t, s)

	tok, err := b.peek()
	require.NoError(t, err)
	assert.Equal(t, scanner.CloseParen, tok.Kind)
}

func TestPositions(t *testing.T) {
	src := "  var x = f(1);\nif (x) x++;"
	prog := assertParse(t, "Program{Var{x = Call{f(1)}}, If{x, ExprStmt{Postfix{x++}}}}", src)
	assert.Equal(t, scanner.StreamPosition(0), prog.Begin())
	assert.Equal(t, scanner.StreamPosition(len(src)), prog.End())

	v := prog.Body[0]
	assert.Equal(t, "var x = f(1);", src[v.Begin():v.End()])
	i := prog.Body[1]
	assert.Equal(t, "if (x) x++;", src[i.Begin():i.End()])
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse([]byte("a = 1;"), Options{Trace: true, TraceWriter: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Statement (")
	assert.Contains(t, buf.String(), "Expression (")
	assert.Contains(t, buf.String(), "\n -")
}

func TestParse_Slots(t *testing.T) {
	src := "var a = new F(b)(c).d; if (a) { a = -1; } else ;"
	prog := assertParse(t,
		"Program{Var{a = Property{Call{Construct{new F(b)}(c)}.d}}, If{a, Block{ExprStmt{Assign{a = Unary{-1}}}}, Empty}}",
		src)

	ast.Inspect(prog, func(n ast.Node) bool {
		if n == nil {
			return true
		}
		switch n := n.(type) {
		case *ast.ProgramNode:
		case ast.Stmt:
			assert.True(t, n.IsStatement())
			assert.False(t, n.IsExpression())
		case ast.Expr:
			assert.True(t, n.IsExpression())
			assert.False(t, n.IsStatement())
		}
		return true
	})
}
