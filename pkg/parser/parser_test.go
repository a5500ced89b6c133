package parser_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/lexer"
	"monkey/interpreter-go/pkg/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, errs := parser.ParseProgram(source)
	if len(errs) > 0 {
		t.Fatalf("parse %q: unexpected errors: %s", source, strings.Join(errs, "; "))
	}
	return program
}

func singleExpression(t *testing.T, source string) ast.Expression {
	t.Helper()
	program := mustParse(t, source)
	if len(program.Statements) != 1 {
		t.Fatalf("parse %q: expected 1 statement, got %d", source, len(program.Statements))
	}
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("parse %q: expected ExpressionStatement, got %T", source, program.Statements[0])
	}
	return stmt.Expression
}

func TestLetStatements(t *testing.T) {
	program := mustParse(t, "let x = 5; let y = 10; let foobar = 838383;")
	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}
	for i, name := range []string{"x", "y", "foobar"} {
		stmt, ok := program.Statements[i].(*ast.LetStatement)
		if !ok {
			t.Fatalf("statement %d: expected LetStatement, got %T", i, program.Statements[i])
		}
		if stmt.Name.Value != name {
			t.Fatalf("statement %d: expected name %q, got %q", i, name, stmt.Name.Value)
		}
	}
}

func TestLetStatementValues(t *testing.T) {
	program := mustParse(t, "let x = 5 * y; let ok = true")
	want := ast.Prog(
		ast.Let("x", ast.Bin("*", ast.Int(5), ast.ID("y"))),
		ast.Let("ok", ast.Bool(true)),
	)
	if !reflect.DeepEqual(program, want) {
		t.Fatalf("unexpected program %s", program)
	}
}

func TestReturnStatements(t *testing.T) {
	program := mustParse(t, "return 5; return 10; return 838383; return;")
	if len(program.Statements) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(program.Statements))
	}
	for i, stmt := range program.Statements {
		if _, ok := stmt.(*ast.ReturnStatement); !ok {
			t.Fatalf("statement %d: expected ReturnStatement, got %T", i, stmt)
		}
	}
	if bare := program.Statements[3].(*ast.ReturnStatement); bare.Value != nil {
		t.Fatalf("expected bare return to have no value, got %s", bare.Value)
	}
	if got := program.String(); got != "return 5;return 10;return 838383;return;" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestLiteralExpressions(t *testing.T) {
	cases := []struct {
		source string
		want   ast.Expression
	}{
		{"foobar;", ast.ID("foobar")},
		{"5;", ast.Int(5)},
		{"true;", ast.Bool(true)},
		{"false", ast.Bool(false)},
		{"9223372036854775807", ast.Int(9223372036854775807)},
	}
	for _, tc := range cases {
		got := singleExpression(t, tc.source)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parse %q: expected %#v, got %#v", tc.source, tc.want, got)
		}
	}
}

func TestPrefixExpressions(t *testing.T) {
	cases := []struct {
		source   string
		operator string
		right    ast.Expression
	}{
		{"!5;", "!", ast.Int(5)},
		{"-15;", "-", ast.Int(15)},
		{"!true;", "!", ast.Bool(true)},
		{"!false;", "!", ast.Bool(false)},
	}
	for _, tc := range cases {
		got := singleExpression(t, tc.source)
		want := ast.Prefix(tc.operator, tc.right)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("parse %q: expected %s, got %s", tc.source, want, got)
		}
	}
}

func TestInfixExpressions(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", ">", "<", "==", "!="} {
		source := "5 " + op + " 5;"
		got := singleExpression(t, source)
		want := ast.Bin(op, ast.Int(5), ast.Int(5))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("parse %q: expected %s, got %s", source, want, got)
		}
	}
	got := singleExpression(t, "true != false")
	if !reflect.DeepEqual(got, ast.Bin("!=", ast.Bool(true), ast.Bool(false))) {
		t.Fatalf("unexpected boolean infix %s", got)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}
	for _, tc := range cases {
		program := mustParse(t, tc.source)
		if got := program.String(); got != tc.want {
			t.Fatalf("parse %q: expected %q, got %q", tc.source, tc.want, got)
		}
	}
}

func TestIfExpression(t *testing.T) {
	got := singleExpression(t, "if (x < y) { x }")
	want := ast.If(ast.Bin("<", ast.ID("x"), ast.ID("y")), ast.Block(ast.Expr(ast.ID("x"))), nil)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestIfElseExpression(t *testing.T) {
	got := singleExpression(t, "if (x < y) { x } else { y; }")
	want := ast.If(
		ast.Bin("<", ast.ID("x"), ast.ID("y")),
		ast.Block(ast.Expr(ast.ID("x"))),
		ast.Block(ast.Expr(ast.ID("y"))),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if rendered := got.String(); rendered != "if (x < y) x else y" {
		t.Fatalf("unexpected rendering %q", rendered)
	}
}

func TestFunctionLiteral(t *testing.T) {
	got := singleExpression(t, "fn(x, y) { x + y; }")
	want := ast.Fn([]string{"x", "y"}, ast.Block(ast.Expr(ast.Bin("+", ast.ID("x"), ast.ID("y")))))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if rendered := got.String(); rendered != "fn (x, y) (x + y)" {
		t.Fatalf("unexpected rendering %q", rendered)
	}
}

func TestFunctionParameters(t *testing.T) {
	cases := []struct {
		source string
		params []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}
	for _, tc := range cases {
		fn, ok := singleExpression(t, tc.source).(*ast.FunctionLiteral)
		if !ok {
			t.Fatalf("parse %q: expected FunctionLiteral", tc.source)
		}
		if len(fn.Parameters) != len(tc.params) {
			t.Fatalf("parse %q: expected %d params, got %d", tc.source, len(tc.params), len(fn.Parameters))
		}
		for i, name := range tc.params {
			if fn.Parameters[i].Value != name {
				t.Fatalf("parse %q: param %d expected %q, got %q", tc.source, i, name, fn.Parameters[i].Value)
			}
		}
	}
}

func TestCallExpression(t *testing.T) {
	got := singleExpression(t, "add(1, 2 * 3, 4 + 5);")
	want := ast.CallExpr(ast.ID("add"),
		ast.Int(1),
		ast.Bin("*", ast.Int(2), ast.Int(3)),
		ast.Bin("+", ast.Int(4), ast.Int(5)),
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got = singleExpression(t, "fn(x) { x }(5)()")
	if rendered := got.String(); rendered != "fn (x) x(5)()" {
		t.Fatalf("unexpected rendering %q", rendered)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		source string
		want   []string
	}{
		{"let = 5;", []string{"expected next token to be IDENT, got ASSIGN instead"}},
		{"let x 5;", []string{"expected next token to be ASSIGN, got INT instead"}},
		{"let x", []string{"expected next token to be ASSIGN, but none exists"}},
		{"(1 + 2", []string{"expected next token to be RPAREN, but none exists"}},
		{"@", []string{"no prefix parse function for ILLEGAL"}},
		{"5 + ;", []string{"no prefix parse function for SEMICOLON"}},
		{"if x { 1 }", []string{"expected next token to be LPAREN, got IDENT instead"}},
		{"fn(1) {}", []string{"expected next token to be IDENT, got INT instead"}},
		{"add(1 2)", []string{"expected next token to be RPAREN, got INT instead"}},
		{"99999999999999999999", []string{`could not parse "99999999999999999999" as integer`}},
	}
	for _, tc := range cases {
		_, errs := parser.ParseProgram(tc.source)
		if len(errs) < len(tc.want) {
			t.Fatalf("parse %q: expected errors %v, got %v", tc.source, tc.want, errs)
		}
		for i, want := range tc.want {
			if errs[i] != want {
				t.Fatalf("parse %q: error %d expected %q, got %q", tc.source, i, want, errs[i])
			}
		}
	}
}

func TestParserAccumulatesErrorsAcrossStatements(t *testing.T) {
	program, errs := parser.ParseProgram("let = 5; let x 10; let y = 3;")
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 errors, got %v", errs)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected the valid statement to survive, got %d statements", len(program.Statements))
	}
	if got := program.String(); got != "let y = 3;" {
		t.Fatalf("unexpected program %q", got)
	}
}

func TestParserRecoversInsideBlocks(t *testing.T) {
	program, errs := parser.ParseProgram("if (true) { let = 1; 2 } 3")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if got := program.String(); got != "if true 23" {
		t.Fatalf("unexpected program %q", got)
	}
}

func TestUnterminatedBlock(t *testing.T) {
	program, errs := parser.ParseProgram("if (x) { 1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if got := program.String(); got != "if x 1" {
		t.Fatalf("unexpected program %q", got)
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	sources := []string{
		"-a * b",
		"a + b * c + d / e - f",
		"3 + 4 * 5 == 3 * 1 + 4 * 5",
		"1 + (2 + 3) + 4",
		"add(a + b + c * d / f + g)",
		"!(true == false) != !-x",
		"f(g(1), (2 < 3) == true)",
	}
	for _, source := range sources {
		first := mustParse(t, source).String()
		second := mustParse(t, first).String()
		if first != second {
			t.Fatalf("%q: rendering not stable: %q then %q", source, first, second)
		}
	}
}

func TestParserTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := parser.New(lexer.New("1 + 2"))
	p.SetTracer(logger)
	p.ParseProgram()

	out := buf.String()
	for _, fragment := range []string{"rule=parseInfixExpression", "rule=ParseProgram", "depth=0"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected trace to contain %q:\n%s", fragment, out)
		}
	}
}

func TestIsIncomplete(t *testing.T) {
	cases := map[string]bool{
		"let f = fn(x) {":  true,
		"add(1,":           true,
		"let f = fn(x) {}": false,
		"1 + 2":            false,
		"}":                false,
	}
	for source, want := range cases {
		if got := parser.IsIncomplete(source); got != want {
			t.Fatalf("IsIncomplete(%q) = %v, want %v", source, got, want)
		}
	}
}
