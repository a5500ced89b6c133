package parser

import (
	"fmt"
	"strconv"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/token"
)

// parseExpression folds infix rules onto the prefix result for as long as the
// next operator binds tighter than precedence. Any failed sub-rule yields nil.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	defer p.trace("parseExpression " + precedence.String())()

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("no prefix parse function for %s", p.curToken.Type)
		return nil
	}
	left := prefix()

	for left != nil && !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return ast.NewIdentifier(p.curToken.Literal)
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return ast.NewIntegerLiteral(value)
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return ast.NewBooleanLiteral(p.curTokenIs(token.TRUE))
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	defer p.trace("parsePrefixExpression")()

	operator := p.curToken.Literal
	p.nextToken()
	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}
	return ast.NewPrefixExpression(operator, right)
}

// parseInfixExpression parses the right operand at the operator's own
// precedence, which makes equal-precedence chains fold to the left.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	defer p.trace("parseInfixExpression")()

	operator := p.curToken.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return ast.NewInfixExpression(operator, left, right)
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	defer p.trace("parseGroupedExpression")()

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil || !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	defer p.trace("parseIfExpression")()

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(LOWEST)
	if condition == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) || !p.expectPeek(token.LBRACE) {
		return nil
	}
	consequence := p.parseBlockStatement()

	var alternative *ast.BlockStatement
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		alternative = p.parseBlockStatement()
	}
	return ast.NewIfExpression(condition, consequence, alternative)
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	defer p.trace("parseFunctionLiteral")()

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parseFunctionParameters()
	if !ok || !p.expectPeek(token.LBRACE) {
		return nil
	}
	return ast.NewFunctionLiteral(params, p.parseBlockStatement())
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(token.IDENT) {
		return nil, false
	}
	params = append(params, ast.NewIdentifier(p.curToken.Literal))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		params = append(params, ast.NewIdentifier(p.curToken.Literal))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	defer p.trace("parseCallExpression")()

	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	return ast.NewCallExpression(function, args)
}

func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		if arg = p.parseExpression(LOWEST); arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}
