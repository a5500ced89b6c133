package interpreter

import (
	"fmt"
	"strings"

	"monkey/interpreter-go/pkg/ast"
)

// ParseError carries every syntax error reported for a source text.
type ParseError struct {
	Messages []string
}

func (e *ParseError) Error() string {
	if len(e.Messages) == 1 {
		return "parse error: " + e.Messages[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d parse errors:", len(e.Messages))
	for _, msg := range e.Messages {
		b.WriteString("\n\t")
		b.WriteString(msg)
	}
	return b.String()
}

// EvalError reports a runtime failure. Node names the kind of node being
// evaluated and is empty when the failure has no node to point at.
type EvalError struct {
	Node    ast.NodeType
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

func evalErrorf(node ast.NodeType, format string, args ...any) error {
	return &EvalError{Node: node, Message: fmt.Sprintf(format, args...)}
}
