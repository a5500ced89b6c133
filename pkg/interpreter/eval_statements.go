package interpreter

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/runtime"
)

// evaluateProgram stops at the first return and hands back the bare value.
func (i *Interpreter) evaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.Null
	for _, stmt := range program.Statements {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if ret, ok := val.(*runtime.ReturnValue); ok {
			return ret.Value, nil
		}
		result = val
	}
	return result, nil
}

// evaluateBlock stops at the first return but keeps the wrapper so enclosing
// blocks unwind too. Blocks share the environment they run in.
func (i *Interpreter) evaluateBlock(block *ast.BlockStatement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.Null
	if block == nil {
		return result, nil
	}
	for _, stmt := range block.Statements {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, ok := val.(*runtime.ReturnValue); ok {
			return val, nil
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	if node == nil {
		return nil, evalErrorf("", "unexpected nil statement")
	}
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpression(n.Expression, env)
	case *ast.LetStatement:
		return i.evaluateLetStatement(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case *ast.BlockStatement:
		return i.evaluateBlock(n, env)
	default:
		return nil, evalErrorf(n.NodeType(), "unexpected node type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateLetStatement(stmt *ast.LetStatement, env *runtime.Environment) (runtime.Value, error) {
	if stmt.Name == nil {
		return nil, evalErrorf(stmt.NodeType(), "let statement without a name")
	}
	val, err := i.evaluateExpression(stmt.Value, env)
	if err != nil {
		return nil, err
	}
	if isReturn(val) {
		return val, nil
	}
	env.Define(stmt.Name.Value, val)
	return runtime.Null, nil
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.Null
	if stmt.Value != nil {
		val, err := i.evaluateExpression(stmt.Value, env)
		if err != nil {
			return nil, err
		}
		if isReturn(val) {
			return val, nil
		}
		result = val
	}
	return &runtime.ReturnValue{Value: result}, nil
}

// isReturn reports whether an operand is already unwinding. Such a value is
// passed up unchanged instead of being used as an operand.
func isReturn(val runtime.Value) bool {
	_, ok := val.(*runtime.ReturnValue)
	return ok
}
