package interpreter

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	if node == nil {
		return nil, evalErrorf("", "unexpected nil expression")
	}
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.NativeBool(n.Value), nil
	case *ast.Identifier:
		return i.evaluateIdentifier(n, env)
	case *ast.PrefixExpression:
		right, err := i.evaluateExpression(n.Right, env)
		if err != nil || isReturn(right) {
			return right, err
		}
		return evaluatePrefix(n.Operator, right), nil
	case *ast.InfixExpression:
		return i.evaluateInfixExpression(n, env)
	case *ast.IfExpression:
		return i.evaluateIfExpression(n, env)
	case *ast.FunctionLiteral:
		return &runtime.FunctionValue{Parameters: n.Parameters, Body: n.Body, Env: env}, nil
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	default:
		return nil, evalErrorf(n.NodeType(), "unexpected node type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateIdentifier(id *ast.Identifier, env *runtime.Environment) (runtime.Value, error) {
	if val, err := env.Get(id.Value); err == nil {
		return val, nil
	}
	if builtin, ok := i.builtins[id.Value]; ok {
		return builtin, nil
	}
	return nil, evalErrorf(id.NodeType(), "identifier not found: %s", id.Value)
}

func (i *Interpreter) evaluateInfixExpression(expr *ast.InfixExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil || isReturn(left) {
		return left, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil || isReturn(right) {
		return right, err
	}
	return evaluateInfix(expr, left, right)
}

func (i *Interpreter) evaluateIfExpression(expr *ast.IfExpression, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpression(expr.Condition, env)
	if err != nil || isReturn(cond) {
		return cond, err
	}
	switch {
	case runtime.Truthy(cond):
		return i.evaluateBlock(expr.Consequence, env)
	case expr.Alternative != nil:
		return i.evaluateBlock(expr.Alternative, env)
	default:
		return runtime.Null, nil
	}
}

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(call.Function, env)
	if err != nil || isReturn(callee) {
		return callee, err
	}
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		arg, err := i.evaluateExpression(argExpr, env)
		if err != nil || isReturn(arg) {
			return arg, err
		}
		args = append(args, arg)
	}
	return i.callFunction(call, callee, args)
}

// callFunction applies a user or native function. Parameters are bound in a
// child of the closure's environment, never the caller's.
func (i *Interpreter) callFunction(call *ast.CallExpression, callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		if len(args) != len(fn.Parameters) {
			return nil, evalErrorf(call.NodeType(), "wrong number of arguments: want=%d, got=%d", len(fn.Parameters), len(args))
		}
		if i.callDepth >= i.maxCallDepth {
			return nil, evalErrorf(call.NodeType(), "maximum call depth exceeded")
		}
		i.callDepth++
		defer func() { i.callDepth-- }()

		scope := fn.Env.Extend()
		for idx, param := range fn.Parameters {
			scope.Define(param.Value, args[idx])
		}
		result, err := i.evaluateBlock(fn.Body, scope)
		if err != nil {
			return nil, err
		}
		if ret, ok := result.(*runtime.ReturnValue); ok {
			return ret.Value, nil
		}
		return result, nil
	case *runtime.NativeFunctionValue:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, evalErrorf(call.NodeType(), "wrong number of arguments: want=%d, got=%d", fn.Arity, len(args))
		}
		result, err := fn.Impl(args)
		if err != nil {
			return nil, evalErrorf(call.NodeType(), "%s: %v", fn.Name, err)
		}
		if result == nil {
			return runtime.Null, nil
		}
		return result, nil
	default:
		return nil, evalErrorf(call.NodeType(), "not a function: %s", callee.Kind())
	}
}
