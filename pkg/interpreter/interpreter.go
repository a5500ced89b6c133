package interpreter

import (
	"log/slog"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/lexer"
	"monkey/interpreter-go/pkg/parser"
	"monkey/interpreter-go/pkg/runtime"
)

// DefaultMaxCallDepth bounds nested function calls before evaluation fails.
const DefaultMaxCallDepth = 10000

// Interpreter drives evaluation of Monkey AST nodes. The global environment
// persists across EvaluateProgram calls so a REPL session keeps its bindings.
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	global       *runtime.Environment
	builtins     map[string]*runtime.NativeFunctionValue
	maxCallDepth int
	callDepth    int
	parseTracer  *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithBuiltin registers a host function. Builtins are consulted after the
// environment chain, so a let binding shadows them.
func WithBuiltin(fn *runtime.NativeFunctionValue) Option {
	return func(i *Interpreter) {
		if fn != nil {
			i.builtins[fn.Name] = fn
		}
	}
}

// WithMaxCallDepth overrides DefaultMaxCallDepth; values <= 0 are ignored.
func WithMaxCallDepth(depth int) Option {
	return func(i *Interpreter) {
		if depth > 0 {
			i.maxCallDepth = depth
		}
	}
}

// WithParseTracer attaches a debug logger to every parser created by
// EvaluateSource.
func WithParseTracer(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.parseTracer = logger
	}
}

// New returns an interpreter with an empty global environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global:       runtime.NewEnvironment(nil),
		builtins:     make(map[string]*runtime.NativeFunctionValue),
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Evaluate parses and evaluates source with a fresh interpreter.
func Evaluate(source string) (runtime.Value, error) {
	return New().EvaluateSource(source)
}

// Parse turns source into a program, reporting every syntax error as a
// single *ParseError.
func (i *Interpreter) Parse(source string) (*ast.Program, error) {
	p := parser.New(lexer.New(source))
	p.SetTracer(i.parseTracer)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, &ParseError{Messages: errs}
	}
	return program, nil
}

// EvaluateSource parses source and evaluates it in the global environment.
// Nothing is evaluated when parsing fails.
func (i *Interpreter) EvaluateSource(source string) (runtime.Value, error) {
	program, err := i.Parse(source)
	if err != nil {
		return nil, err
	}
	return i.EvaluateProgram(program)
}

// EvaluateProgram evaluates a parsed program in the global environment and
// returns the value of its last statement, or of the first return reached.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	if program == nil {
		return runtime.Null, nil
	}
	i.callDepth = 0
	return i.evaluateProgram(program, i.global)
}
