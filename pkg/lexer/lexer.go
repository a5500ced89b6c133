package lexer

import (
	"unicode"

	"monkey/interpreter-go/pkg/token"
)

const eof rune = -1

// Lexer turns Monkey source into tokens with a single rune of lookahead.
type Lexer struct {
	input        []rune
	position     int
	readPosition int
	ch           rune
}

// New returns a lexer positioned on the first rune of source.
func New(source string) *Lexer {
	l := &Lexer{input: []rune(source)}
	l.readChar()
	return l
}

// NextToken scans the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	switch {
	case l.ch == eof:
		return token.New(token.EOF, "")
	case l.ch == '=' && l.peekChar() == '=':
		l.readChar()
		l.readChar()
		return token.New(token.EQ, "==")
	case l.ch == '!' && l.peekChar() == '=':
		l.readChar()
		l.readChar()
		return token.New(token.NOT_EQ, "!=")
	}

	if kind, ok := token.LookupSymbol(l.ch); ok {
		tok := token.New(kind, string(l.ch))
		l.readChar()
		return tok
	}
	if isLetter(l.ch) {
		word := l.readWhile(isLetter)
		return token.New(token.LookupIdent(word), word)
	}
	if isDigit(l.ch) {
		return token.New(token.INT, l.readWhile(isDigit))
	}

	tok := token.New(token.ILLEGAL, string(l.ch))
	l.readChar()
	return tok
}

// Tokenize scans source to completion, including the trailing EOF token.
func Tokenize(source string) []token.Token {
	l := New(source)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = eof
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	if l.readPosition <= len(l.input) {
		l.readPosition++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return eof
	}
	return l.input[l.readPosition]
}

func (l *Lexer) readWhile(accept func(rune) bool) string {
	start := l.position
	for accept(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

func (l *Lexer) skipWhitespace() {
	for l.ch != eof && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
