package runtime

import (
	"testing"

	"monkey/interpreter-go/pkg/ast"
)

func TestValueDisplayStrings(t *testing.T) {
	fn := &FunctionValue{
		Parameters: []*ast.Identifier{ast.ID("x"), ast.ID("y")},
		Body:       ast.Block(ast.Expr(ast.Bin("+", ast.ID("x"), ast.ID("y")))),
		Env:        NewEnvironment(nil),
	}
	tests := []struct {
		value Value
		kind  Kind
		want  string
	}{
		{IntegerValue{Val: -42}, KindInteger, "-42"},
		{True, KindBool, "true"},
		{False, KindBool, "false"},
		{Null, KindNull, "null"},
		{&ReturnValue{Value: IntegerValue{Val: 7}}, KindReturnValue, "7"},
		{fn, KindFunction, "fn(x, y) { (x + y) }"},
		{&NativeFunctionValue{Name: "puts", Arity: -1}, KindNativeFunction, "builtin puts"},
	}
	for _, tc := range tests {
		if tc.value.Kind() != tc.kind {
			t.Fatalf("%#v: expected kind %s, got %s", tc.value, tc.kind, tc.value.Kind())
		}
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("%#v: expected %q, got %q", tc.value, tc.want, got)
		}
	}
}

func TestKindStringFallback(t *testing.T) {
	if got := Kind(99).String(); got != "unknown_kind_99" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestEqual(t *testing.T) {
	fn := &FunctionValue{Body: ast.Block()}
	other := &FunctionValue{Body: ast.Block()}
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same integers", IntegerValue{Val: 1}, IntegerValue{Val: 1}, true},
		{"different integers", IntegerValue{Val: 1}, IntegerValue{Val: 2}, false},
		{"same booleans", True, BoolValue{Val: true}, true},
		{"different booleans", True, False, false},
		{"nulls", Null, NullValue{}, true},
		{"integer vs boolean", IntegerValue{Val: 1}, True, false},
		{"null vs false", Null, False, false},
		{"same function", fn, fn, true},
		{"distinct functions", fn, other, false},
	}
	for _, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{True, true},
		{False, false},
		{Null, false},
		{IntegerValue{Val: 0}, true},
		{IntegerValue{Val: 5}, true},
		{&FunctionValue{Body: ast.Block()}, true},
	}
	for _, tc := range tests {
		if got := Truthy(tc.value); got != tc.want {
			t.Fatalf("Truthy(%s): expected %v, got %v", tc.value, tc.want, got)
		}
	}
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	if NativeBool(true) != True || NativeBool(false) != False {
		t.Fatalf("NativeBool did not map onto singletons")
	}
}
