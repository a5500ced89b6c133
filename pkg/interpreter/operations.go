package interpreter

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/runtime"
)

// evaluatePrefix never fails: operands of the wrong kind produce null.
func evaluatePrefix(operator string, right runtime.Value) runtime.Value {
	switch operator {
	case "!":
		switch v := right.(type) {
		case runtime.BoolValue:
			return runtime.NativeBool(!v.Val)
		case runtime.NullValue:
			return runtime.True
		default:
			return runtime.False
		}
	case "-":
		if v, ok := right.(runtime.IntegerValue); ok {
			return runtime.IntegerValue{Val: -v.Val}
		}
		return runtime.Null
	default:
		return runtime.Null
	}
}

// evaluateInfix compares any two values for equality; the arithmetic and
// ordering operators need two integers and yield null otherwise.
func evaluateInfix(expr *ast.InfixExpression, left, right runtime.Value) (runtime.Value, error) {
	switch expr.Operator {
	case "==":
		return runtime.NativeBool(runtime.Equal(left, right)), nil
	case "!=":
		return runtime.NativeBool(!runtime.Equal(left, right)), nil
	}

	l, lok := left.(runtime.IntegerValue)
	r, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return runtime.Null, nil
	}
	switch expr.Operator {
	case "+":
		return runtime.IntegerValue{Val: l.Val + r.Val}, nil
	case "-":
		return runtime.IntegerValue{Val: l.Val - r.Val}, nil
	case "*":
		return runtime.IntegerValue{Val: l.Val * r.Val}, nil
	case "/":
		if r.Val == 0 {
			return nil, evalErrorf(expr.NodeType(), "division by zero")
		}
		return runtime.IntegerValue{Val: l.Val / r.Val}, nil
	case "<":
		return runtime.NativeBool(l.Val < r.Val), nil
	case ">":
		return runtime.NativeBool(l.Val > r.Val), nil
	default:
		return runtime.Null, nil
	}
}
