package parser

import (
	"monkey/interpreter-go/pkg/lexer"
	"monkey/interpreter-go/pkg/token"
)

// expectPeek advances when the next token has the wanted type and records a
// syntax error otherwise.
func (p *Parser) expectPeek(kind token.Type) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekError(want token.Type) {
	if p.peekTokenIs(token.EOF) {
		p.errorf("expected next token to be %s, but none exists", want)
		return
	}
	p.errorf("expected next token to be %s, got %s instead", want, p.peekToken.Type)
}

// synchronize skips the rest of an abandoned statement. It stops on a ';',
// or before a '}' so an enclosing block still sees its closer.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) &&
		!p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
	}
}

// trace logs entry into a parse rule and returns the matching exit hook:
//
//	defer p.trace("parseIfExpression")()
func (p *Parser) trace(rule string) func() {
	if p.tracer == nil {
		return func() {}
	}
	p.tracer.Debug("enter", "rule", rule, "depth", p.depth, "token", p.curToken.Type.String(), "literal", p.curToken.Literal)
	p.depth++
	return func() {
		p.depth--
		p.tracer.Debug("exit", "rule", rule, "depth", p.depth)
	}
}

// IsIncomplete reports whether source still has unclosed parentheses or
// braces, meaning an interactive reader should ask for another line.
func IsIncomplete(source string) bool {
	depth := 0
	for _, tok := range lexer.Tokenize(source) {
		switch tok.Type {
		case token.LPAREN, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACE:
			depth--
		}
	}
	return depth > 0
}
