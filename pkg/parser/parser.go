package parser

import (
	"log/slog"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/lexer"
	"monkey/interpreter-go/pkg/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser is a Pratt parser over a lexer's token stream. Syntax errors are
// accumulated rather than returned so one pass can report several of them.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	tracer *slog.Logger
	depth  int
}

// New constructs a parser and primes the current and peek tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:              l,
		prefixParseFns: make(map[token.Type]prefixParseFn),
		infixParseFns:  make(map[token.Type]infixParseFn),
	}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	for kind := range precedences {
		p.registerInfix(kind, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()
	return p
}

// ParseProgram parses source and returns the program with every syntax error
// encountered. The error slice is empty on success.
func ParseProgram(source string) (*ast.Program, []string) {
	p := New(lexer.New(source))
	program := p.ParseProgram()
	return program, p.Errors()
}

// SetTracer enables rule-level tracing at debug level; nil disables it.
func (p *Parser) SetTracer(logger *slog.Logger) {
	p.tracer = logger
}

// Errors returns the syntax errors collected so far.
func (p *Parser) Errors() []string {
	out := make([]string, len(p.errors))
	copy(out, p.errors)
	return out
}

// ParseProgram consumes the whole token stream.
func (p *Parser) ParseProgram() *ast.Program {
	defer p.trace("ParseProgram")()

	statements := []ast.Statement{}
	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			statements = append(statements, stmt)
		}
		p.nextToken()
	}
	return ast.NewProgram(statements)
}

func (p *Parser) registerPrefix(kind token.Type, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Type, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(kind token.Type) bool {
	return p.curToken.Type == kind
}

func (p *Parser) peekTokenIs(kind token.Type) bool {
	return p.peekToken.Type == kind
}

func (p *Parser) peekPrecedence() Precedence {
	return precedenceOf(p.peekToken.Type)
}

func (p *Parser) curPrecedence() Precedence {
	return precedenceOf(p.curToken.Type)
}
