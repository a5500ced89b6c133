package parser

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/token"
)

// parseStatement returns nil when the statement could not be parsed; the
// parser has then skipped ahead to the next statement boundary.
func (p *Parser) parseStatement() ast.Statement {
	defer p.trace("parseStatement")()

	switch p.curToken.Type {
	case token.LET:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case token.RETURN:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
	}
	p.synchronize()
	return nil
}

func (p *Parser) parseLetStatement() *ast.LetStatement {
	defer p.trace("parseLetStatement")()

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := ast.NewIdentifier(p.curToken.Literal)
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return ast.NewLetStatement(name, value)
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	defer p.trace("parseReturnStatement")()

	switch {
	case p.peekTokenIs(token.SEMICOLON):
		p.nextToken()
		return ast.NewReturnStatement(nil)
	case p.peekTokenIs(token.RBRACE), p.peekTokenIs(token.EOF):
		return ast.NewReturnStatement(nil)
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return ast.NewReturnStatement(value)
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	defer p.trace("parseExpressionStatement")()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return ast.NewExpressionStatement(expr)
}

// parseBlockStatement expects the current token to be '{' and stops on the
// matching '}' or at end of input.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	defer p.trace("parseBlockStatement")()

	statements := []ast.Statement{}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			statements = append(statements, stmt)
		}
		p.nextToken()
	}
	return ast.NewBlockStatement(statements)
}
