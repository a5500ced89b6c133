package runtime

import (
	"fmt"
	"strconv"

	"monkey/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBool
	KindNull
	KindReturnValue
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindReturnValue:
		return "return_value"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. String is the
// display form printed by the REPL.
type Value interface {
	Kind() Kind
	String() string
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind     { return KindInteger }
func (v IntegerValue) String() string { return strconv.FormatInt(v.Val, 10) }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind     { return KindBool }
func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }

type NullValue struct{}

func (NullValue) Kind() Kind     { return KindNull }
func (NullValue) String() string { return "null" }

var (
	True  = BoolValue{Val: true}
	False = BoolValue{Val: false}
	Null  = NullValue{}
)

// NativeBool maps a host boolean onto the shared singletons.
func NativeBool(b bool) BoolValue {
	if b {
		return True
	}
	return False
}

//-----------------------------------------------------------------------------
// Control flow
//-----------------------------------------------------------------------------

// ReturnValue wraps the operand of a return statement while it unwinds
// through enclosing blocks. It never escapes a program or function call.
type ReturnValue struct {
	Value Value
}

func (v *ReturnValue) Kind() Kind     { return KindReturnValue }
func (v *ReturnValue) String() string { return v.Value.String() }

//-----------------------------------------------------------------------------
// Functions
//-----------------------------------------------------------------------------

// FunctionValue is a closure over the environment it was created in.
type FunctionValue struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) String() string {
	return "fn(" + ast.JoinIdentifiers(v.Parameters) + ") { " + v.Body.String() + " }"
}

type NativeFunc func(args []Value) (Value, error)

// NativeFunctionValue is a host function; Arity < 0 accepts any count.
type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v *NativeFunctionValue) Kind() Kind     { return KindNativeFunction }
func (v *NativeFunctionValue) String() string { return "builtin " + v.Name }

//-----------------------------------------------------------------------------
// Semantics shared by the evaluator
//-----------------------------------------------------------------------------

// Equal compares integers and booleans by value and treats every null as
// equal. Functions are equal only to themselves; mixed kinds never are.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case IntegerValue:
		bv, ok := b.(IntegerValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case *ReturnValue:
		bv, ok := b.(*ReturnValue)
		return ok && Equal(av.Value, bv.Value)
	case *FunctionValue:
		bv, ok := b.(*FunctionValue)
		return ok && av == bv
	case *NativeFunctionValue:
		bv, ok := b.(*NativeFunctionValue)
		return ok && av == bv
	default:
		return false
	}
}

// Truthy reports how a value behaves as a condition: only false and null are
// falsy, so every integer (zero included) is truthy.
func Truthy(v Value) bool {
	switch tv := v.(type) {
	case BoolValue:
		return tv.Val
	case NullValue:
		return false
	case *ReturnValue:
		return Truthy(tv.Value)
	default:
		return true
	}
}
