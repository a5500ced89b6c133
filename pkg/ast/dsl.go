package ast

// Short constructors for building trees by hand, mostly in tests. Empty
// lists come back non-nil, matching what the parser produces.

func ID(name string) *Identifier { return NewIdentifier(name) }

func Int(value int64) *IntegerLiteral { return NewIntegerLiteral(value) }

func Bool(value bool) *BooleanLiteral { return NewBooleanLiteral(value) }

func Prefix(op string, right Expression) *PrefixExpression {
	return NewPrefixExpression(op, right)
}

func Bin(op string, left, right Expression) *InfixExpression {
	return NewInfixExpression(op, left, right)
}

func Let(name string, value Expression) *LetStatement {
	return NewLetStatement(NewIdentifier(name), value)
}

func Ret(value Expression) *ReturnStatement { return NewReturnStatement(value) }

func Expr(expr Expression) *ExpressionStatement { return NewExpressionStatement(expr) }

func Block(statements ...Statement) *BlockStatement {
	if statements == nil {
		statements = []Statement{}
	}
	return NewBlockStatement(statements)
}

func If(condition Expression, consequence, alternative *BlockStatement) *IfExpression {
	return NewIfExpression(condition, consequence, alternative)
}

func Fn(params []string, body *BlockStatement) *FunctionLiteral {
	ids := make([]*Identifier, 0, len(params))
	for _, p := range params {
		ids = append(ids, NewIdentifier(p))
	}
	return NewFunctionLiteral(ids, body)
}

func CallExpr(fn Expression, args ...Expression) *CallExpression {
	if args == nil {
		args = []Expression{}
	}
	return NewCallExpression(fn, args)
}

func Prog(statements ...Statement) *Program {
	if statements == nil {
		statements = []Statement{}
	}
	return NewProgram(statements)
}
