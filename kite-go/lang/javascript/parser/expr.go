package parser

import (
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/ast"
	"github.com/kiteco/oxyjs/kite-go/lang/javascript/scanner"
)

// ParseExpression parses an expression containing only operators that bind
// at least as tightly as min. Use scanner.Lowest for a full expression and
// scanner.AssignmentPrecedence to stop at a top-level comma.
func (b *AstBuilder) ParseExpression(min scanner.Precedence) (ast.Expr, error) {
	return b.parseExpression(min)
}

// parseExpression is tryParseExpression for positions where an operand is
// required.
func (b *AstBuilder) parseExpression(min scanner.Precedence) (ast.Expr, error) {
	x, err := b.tryParseExpression(min)
	if err != nil {
		return nil, err
	}
	if x == nil {
		tok, err := b.peek()
		if err != nil {
			return nil, err
		}
		return nil, b.fail(ExpectedExpression, tok)
	}
	return x, nil
}

// tryParseExpression returns nil and no error, consuming nothing, if the next
// token cannot start an expression.
func (b *AstBuilder) tryParseExpression(min scanner.Precedence) (ast.Expr, error) {
	defer un(trace(b, "Expression"))
	if err := b.checkDepth(); err != nil {
		return nil, err
	}

	x, level, err := b.parseOperand()
	if err != nil || x == nil {
		return nil, err
	}
	return b.parseOperators(x, level, min)
}

// parseOperand parses a primary expression, a prefix operation or a new
// expression, and reports the precedence level the operand was built at.
func (b *AstBuilder) parseOperand() (ast.Expr, scanner.Precedence, error) {
	mark := b.tokenizer.MarkPosition()
	tok, err := b.nextToken(true)
	if err != nil {
		return nil, 0, err
	}

	switch {
	case tok.Kind.IsAtomic():
		return ast.NewNameExpr(tok), scanner.PrimaryPrecedence, nil
	case tok.Kind == scanner.OpenParen:
		x, err := b.parseParenthesized()
		return x, scanner.PrimaryPrecedence, err
	case tok.Kind == scanner.NewKeyword:
		return b.parseNew(tok)
	case scanner.IsUnaryOperator(tok.Kind):
		defer un(trace(b, "Unary"))
		x, err := b.parseExpression(scanner.UnaryPrecedence)
		if err != nil {
			return nil, 0, err
		}
		return ast.NewUnaryExpr(tok, x), scanner.UnaryPrecedence, nil
	}

	b.tokenizer.RewindPosition(mark)
	return nil, 0, nil
}

func (b *AstBuilder) parseParenthesized() (ast.Expr, error) {
	x, err := b.parseExpression(scanner.Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := b.mustMatch(scanner.CloseParen); err != nil {
		return nil, err
	}
	return x, nil
}

// parseOperators extends x, built at precedence level, with every following
// operator that binds at least as tightly as min. Member accesses, calls and
// postfix operators only apply to left-hand-side expressions. Left
// associative operators parse their right operand one level tighter;
// assignment and the conditional parse it at their own level.
func (b *AstBuilder) parseOperators(x ast.Expr, level, min scanner.Precedence) (ast.Expr, error) {
	for {
		mark := b.tokenizer.MarkPosition()
		tok, err := b.nextToken(true)
		if err != nil {
			return nil, err
		}

		lhs := level >= scanner.LeftHandSidePrecedence

		switch kind := tok.Kind; {
		case kind == scanner.Dot && min <= scanner.MemberPrecedence && lhs:
			if x, err = b.parseProperty(x); err != nil {
				return nil, err
			}
			if level > scanner.MemberPrecedence {
				level = scanner.MemberPrecedence
			}
		case kind == scanner.OpenBracket && min <= scanner.MemberPrecedence && lhs:
			if x, err = b.parseElement(x); err != nil {
				return nil, err
			}
			if level > scanner.MemberPrecedence {
				level = scanner.MemberPrecedence
			}
		case kind == scanner.OpenParen && min <= scanner.CallOrNewPrecedence && lhs:
			args, rparen, err := b.parseArguments()
			if err != nil {
				return nil, err
			}
			x = ast.NewCallExpr(x, args, rparen)
			level = scanner.CallOrNewPrecedence
		case (kind == scanner.PlusPlus || kind == scanner.MinusMinus) &&
			min <= scanner.PostfixPrecedence && lhs && !b.skippedNewline:
			x = ast.NewPostfixExpr(tok, x)
			level = scanner.PostfixPrecedence
		case kind == scanner.Question && min <= scanner.ConditionalPrecedence:
			if x, err = b.parseConditional(x); err != nil {
				return nil, err
			}
			level = scanner.ConditionalPrecedence
		default:
			prec, isBinary := scanner.BinaryPrecedence(kind)
			if !isBinary || prec < min {
				b.tokenizer.RewindPosition(mark)
				return x, nil
			}

			next := prec + 1
			if scanner.IsRightAssociative(kind) {
				next = prec
			}
			y, err := b.parseExpression(next)
			if err != nil {
				return nil, err
			}

			switch {
			case kind.IsAssignment():
				x = ast.NewAssignExpr(tok, x, y)
			case kind == scanner.Comma:
				x = ast.NewCommaExpr(x, y)
			default:
				x = ast.NewBinaryExpr(tok, x, y)
			}
			level = prec
		}
	}
}

func (b *AstBuilder) parseProperty(x ast.Expr) (ast.Expr, error) {
	// reserved words are valid property names
	name, err := b.nextToken(false)
	if err != nil {
		return nil, err
	}
	if name.Kind != scanner.Identifier {
		return nil, b.unexpected(scanner.Identifier, name)
	}
	return ast.NewPropertyExpr(x, name), nil
}

func (b *AstBuilder) parseElement(x ast.Expr) (ast.Expr, error) {
	index, err := b.parseExpression(scanner.Lowest)
	if err != nil {
		return nil, err
	}
	rbrack, err := b.mustMatch(scanner.CloseBracket)
	if err != nil {
		return nil, err
	}
	return ast.NewElementExpr(x, index, rbrack), nil
}

func (b *AstBuilder) parseConditional(cond ast.Expr) (ast.Expr, error) {
	defer un(trace(b, "Conditional"))

	then, err := b.parseExpression(scanner.AssignmentPrecedence)
	if err != nil {
		return nil, err
	}
	if _, err := b.mustMatch(scanner.Colon); err != nil {
		return nil, err
	}
	els, err := b.parseExpression(scanner.AssignmentPrecedence)
	if err != nil {
		return nil, err
	}
	return ast.NewConditionalExpr(cond, then, els), nil
}

// parseArguments parses an argument list whose '(' has been consumed.
func (b *AstBuilder) parseArguments() ([]ast.Expr, scanner.Token, error) {
	defer un(trace(b, "Arguments"))

	if rparen, ok, err := b.maybeMatch(scanner.CloseParen); err != nil || ok {
		return nil, rparen, err
	}

	var args []ast.Expr
	for {
		arg, err := b.parseExpression(scanner.AssignmentPrecedence)
		if err != nil {
			return nil, scanner.Token{}, err
		}
		args = append(args, arg)

		tok, err := b.nextToken(true)
		if err != nil {
			return nil, scanner.Token{}, err
		}
		switch tok.Kind {
		case scanner.Comma:
		case scanner.CloseParen:
			return args, tok, nil
		default:
			return nil, scanner.Token{}, b.fail(ExpectedCommaOrCloseParen, tok)
		}
	}
}

// parseNew parses a run of new keywords, the member expression they apply
// to, and as many argument lists as there are keywords. The innermost new
// takes the first argument list; keywords left without one construct
// without arguments.
func (b *AstBuilder) parseNew(first scanner.Token) (ast.Expr, scanner.Precedence, error) {
	defer un(trace(b, "New"))

	news := []scanner.Token{first}
	for {
		tok, ok, err := b.maybeMatch(scanner.NewKeyword)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			break
		}
		news = append(news, tok)
	}

	callee, err := b.parseNewCallee()
	if err != nil {
		return nil, 0, err
	}

	i := len(news) - 1
	for ; i >= 0; i-- {
		_, hasArgs, err := b.maybeMatch(scanner.OpenParen)
		if err != nil {
			return nil, 0, err
		}
		if !hasArgs {
			break
		}
		args, rparen, err := b.parseArguments()
		if err != nil {
			return nil, 0, err
		}
		callee = ast.NewConstructExpr(news[i], callee, args, rparen)

		// new new F().g() constructs F().g with the outer new
		if i > 0 {
			callee, err = b.parseOperators(callee, scanner.MemberPrecedence, scanner.MemberPrecedence)
			if err != nil {
				return nil, 0, err
			}
		}
	}
	if i < 0 {
		return callee, scanner.MemberPrecedence, nil
	}
	for ; i >= 0; i-- {
		callee = ast.NewBareConstructExpr(news[i], callee)
	}
	return callee, scanner.LeftHandSidePrecedence, nil
}

// parseNewCallee parses the member expression following new: a name or a
// parenthesized expression, then any property and element accesses.
func (b *AstBuilder) parseNewCallee() (ast.Expr, error) {
	tok, err := b.nextToken(true)
	if err != nil {
		return nil, err
	}

	var x ast.Expr
	switch {
	case tok.Kind.IsAtomic():
		x = ast.NewNameExpr(tok)
	case tok.Kind == scanner.OpenParen:
		if x, err = b.parseParenthesized(); err != nil {
			return nil, err
		}
	default:
		return nil, b.fail(ExpectedExpression, tok)
	}
	return b.parseOperators(x, scanner.PrimaryPrecedence, scanner.MemberPrecedence)
}
