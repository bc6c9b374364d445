package parser

import (
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/ast"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
)

// ParseProgram parses statements until the end of the stream.
func (b *AstBuilder) ParseProgram() (*ast.ProgramNode, error) {
	defer un(trace(b, "Program"))

	begin := b.tokenizer.MarkPosition()
	body, err := b.parseStatementList()
	if err != nil {
		return nil, err
	}
	end, err := b.mustMatch(scanner.End)
	if err != nil {
		return nil, err
	}
	return ast.NewProgram(body, scanner.Location{Start: begin, End: end.Location.End}), nil
}

func (b *AstBuilder) parseStatementList() ([]ast.Stmt, error) {
	var body []ast.Stmt
	for {
		s, err := b.ParseStatement()
		if err != nil {
			return nil, err
		}
		if s == nil {
			return body, nil
		}
		body = append(body, s)
	}
}

// ParseStatement parses one statement. It returns nil and no error when the
// next token cannot start a statement, leaving that token unconsumed.
func (b *AstBuilder) ParseStatement() (ast.Stmt, error) {
	defer un(trace(b, "Statement"))
	if err := b.checkDepth(); err != nil {
		return nil, err
	}

	mark := b.tokenizer.MarkPosition()
	tok, err := b.nextToken(true)
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case scanner.OpenBrace:
		return b.parseBlock(tok)
	case scanner.VarKeyword:
		return b.parseVar(tok)
	case scanner.Semicolon:
		return ast.NewEmptyStmt(tok), nil
	case scanner.IfKeyword:
		return b.parseIf(tok)
	}

	b.tokenizer.RewindPosition(mark)
	return b.parseExpressionStatement()
}

// parseSubStatement parses a statement that the grammar requires, such as the
// branch of an if.
func (b *AstBuilder) parseSubStatement() (ast.Stmt, error) {
	s, err := b.ParseStatement()
	if err != nil {
		return nil, err
	}
	if s == nil {
		tok, err := b.peek()
		if err != nil {
			return nil, err
		}
		return nil, b.fail(ExpectedStatement, tok)
	}
	return s, nil
}

func (b *AstBuilder) parseBlock(lbrace scanner.Token) (ast.Stmt, error) {
	defer un(trace(b, "Block"))

	body, err := b.parseStatementList()
	if err != nil {
		return nil, err
	}
	rbrace, err := b.mustMatch(scanner.CloseBrace)
	if err != nil {
		return nil, err
	}
	return ast.NewBlockStmt(lbrace, body, rbrace), nil
}

func (b *AstBuilder) parseVar(varTok scanner.Token) (ast.Stmt, error) {
	defer un(trace(b, "Var"))

	var decls []*ast.VarDecl
	for {
		name, err := b.nextToken(true)
		if err != nil {
			return nil, err
		}
		if name.Kind != scanner.Identifier {
			return nil, b.fail(ExpectedVariableName, name)
		}

		var init ast.Expr
		_, hasInit, err := b.maybeMatch(scanner.Assign)
		if err != nil {
			return nil, err
		}
		if hasInit {
			if init, err = b.parseExpression(scanner.AssignmentPrecedence); err != nil {
				return nil, err
			}
		}
		decls = append(decls, ast.NewVarDecl(name, init))

		tok, err := b.nextToken(true)
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case scanner.Comma:
		case scanner.Semicolon:
			return ast.NewVarStmt(varTok, decls, tok), nil
		default:
			return nil, b.fail(ExpectedCommaOrSemicolon, tok)
		}
	}
}

func (b *AstBuilder) parseIf(ifTok scanner.Token) (ast.Stmt, error) {
	defer un(trace(b, "If"))

	if _, err := b.mustMatch(scanner.OpenParen); err != nil {
		return nil, err
	}
	cond, err := b.parseExpression(scanner.Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := b.mustMatch(scanner.CloseParen); err != nil {
		return nil, err
	}

	then, err := b.parseSubStatement()
	if err != nil {
		return nil, err
	}

	_, hasElse, err := b.maybeMatch(scanner.ElseKeyword)
	if err != nil {
		return nil, err
	}
	var els ast.Stmt
	if hasElse {
		if els, err = b.parseSubStatement(); err != nil {
			return nil, err
		}
	}
	return ast.NewIfStmt(ifTok, cond, then, els), nil
}

func (b *AstBuilder) parseExpressionStatement() (ast.Stmt, error) {
	defer un(trace(b, "ExpressionStatement"))

	x, err := b.tryParseExpression(scanner.Lowest)
	if err != nil || x == nil {
		return nil, err
	}
	semi, err := b.mustMatch(scanner.Semicolon)
	if err != nil {
		return nil, err
	}
	return ast.NewExprStmt(x, semi), nil
}
