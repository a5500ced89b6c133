package parser

import (
	"fmt"

	"monkey/interpreter-go/pkg/token"
)

// Precedence orders binding strength; a higher value binds tighter.
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x)
)

var precedenceNames = map[Precedence]string{
	LOWEST:      "LOWEST",
	EQUALS:      "EQUALS",
	LESSGREATER: "LESSGREATER",
	SUM:         "SUM",
	PRODUCT:     "PRODUCT",
	PREFIX:      "PREFIX",
	CALL:        "CALL",
}

func (p Precedence) String() string {
	if name, ok := precedenceNames[p]; ok {
		return name
	}
	return fmt.Sprintf("precedence_%d", int(p))
}

// precedences lists every binary operator token. The call operator is kept
// apart because it has its own infix rule.
var precedences = map[token.Type]Precedence{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

func precedenceOf(kind token.Type) Precedence {
	if kind == token.LPAREN {
		return CALL
	}
	if p, ok := precedences[kind]; ok {
		return p
	}
	return LOWEST
}
