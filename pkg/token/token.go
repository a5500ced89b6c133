package token

import "fmt"

// Type identifies the lexical category of a token.
type Type int

const (
	ILLEGAL Type = iota
	EOF

	IDENT
	INT

	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NOT_EQ

	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	LET
	FUNCTION
	IF
	ELSE
	RETURN
	TRUE
	FALSE
)

var typeNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	LET:       "LET",
	FUNCTION:  "FUNCTION",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("unknown_token_%d", int(t))
}

// Token is a single lexeme with its category.
type Token struct {
	Type    Type
	Literal string
}

func New(kind Type, literal string) Token {
	return Token{Type: kind, Literal: literal}
}

var keywords = map[string]Type{
	"let":    LET,
	"fn":     FUNCTION,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent maps a scanned word to its keyword type, or IDENT.
func LookupIdent(word string) Type {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return IDENT
}

// symbols maps the single-character operators and delimiters.
var symbols = map[rune]Type{
	'=': ASSIGN,
	'+': PLUS,
	'-': MINUS,
	'!': BANG,
	'*': ASTERISK,
	'/': SLASH,
	'<': LT,
	'>': GT,
	',': COMMA,
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
}

// LookupSymbol reports the token type of a single-character symbol.
func LookupSymbol(ch rune) (Type, bool) {
	kind, ok := symbols[ch]
	return kind, ok
}
