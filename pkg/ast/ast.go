package ast

import (
	"strconv"
	"strings"
)

type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeLetStatement        NodeType = "LetStatement"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeBlockStatement      NodeType = "BlockStatement"
	NodeIdentifier          NodeType = "Identifier"
	NodeIntegerLiteral      NodeType = "IntegerLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodePrefixExpression    NodeType = "PrefixExpression"
	NodeInfixExpression     NodeType = "InfixExpression"
	NodeIfExpression        NodeType = "IfExpression"
	NodeFunctionLiteral     NodeType = "FunctionLiteral"
	NodeCallExpression      NodeType = "CallExpression"
)

// Node is implemented by every syntax tree element. String renders the node
// as source-like text with every infix and prefix expression parenthesized.
type Node interface {
	NodeType() NodeType
	String() string
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program is the root of every parse.
type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

func (p *Program) String() string {
	return joinStatements(p.Statements)
}

// Statements

type LetStatement struct {
	nodeImpl
	statementMarker

	Name  *Identifier `json:"name"`
	Value Expression  `json:"value"`
}

func NewLetStatement(name *Identifier, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Name: name, Value: value}
}

func (s *LetStatement) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(s.Name.String())
	b.WriteString(" = ")
	if s.Value != nil {
		b.WriteString(s.Value.String())
	}
	b.WriteByte(';')
	return b.String()
}

// ReturnStatement carries a nil Value for a bare `return;`.
type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

func (s *ExpressionStatement) String() string {
	if s.Expression == nil {
		return ""
	}
	return s.Expression.String()
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

func (s *BlockStatement) String() string {
	return joinStatements(s.Statements)
}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewIdentifier(value string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Value: value}
}

func (i *Identifier) String() string { return i.Value }

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

func (l *IntegerLiteral) String() string { return strconv.FormatInt(l.Value, 10) }

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

func (l *BooleanLiteral) String() string { return strconv.FormatBool(l.Value) }

// Operators

type PrefixExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Right    Expression `json:"right"`
}

func NewPrefixExpression(operator string, right Expression) *PrefixExpression {
	return &PrefixExpression{nodeImpl: newNodeImpl(NodePrefixExpression), Operator: operator, Right: right}
}

func (e *PrefixExpression) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

type InfixExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewInfixExpression(operator string, left, right Expression) *InfixExpression {
	return &InfixExpression{nodeImpl: newNodeImpl(NodeInfixExpression), Operator: operator, Left: left, Right: right}
}

func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// Control flow and functions

// IfExpression has a nil Alternative when no else branch was written.
type IfExpression struct {
	nodeImpl
	expressionMarker

	Condition   Expression      `json:"condition"`
	Consequence *BlockStatement `json:"consequence"`
	Alternative *BlockStatement `json:"alternative,omitempty"`
}

func NewIfExpression(condition Expression, consequence, alternative *BlockStatement) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Condition: condition, Consequence: consequence, Alternative: alternative}
}

func (e *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(e.Condition.String())
	b.WriteByte(' ')
	b.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(e.Alternative.String())
	}
	return b.String()
}

type FunctionLiteral struct {
	nodeImpl
	expressionMarker

	Parameters []*Identifier   `json:"parameters"`
	Body       *BlockStatement `json:"body"`
}

func NewFunctionLiteral(parameters []*Identifier, body *BlockStatement) *FunctionLiteral {
	return &FunctionLiteral{nodeImpl: newNodeImpl(NodeFunctionLiteral), Parameters: parameters, Body: body}
}

func (f *FunctionLiteral) String() string {
	return "fn (" + JoinIdentifiers(f.Parameters) + ") " + f.Body.String()
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Function  Expression   `json:"function"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(function Expression, arguments []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Function: function, Arguments: arguments}
}

func (c *CallExpression) String() string {
	args := make([]string, 0, len(c.Arguments))
	for _, arg := range c.Arguments {
		args = append(args, arg.String())
	}
	return c.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

// JoinIdentifiers renders a parameter list as "a, b, c".
func JoinIdentifiers(ids []*Identifier) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.Value)
	}
	return strings.Join(names, ", ")
}

func joinStatements(statements []Statement) string {
	var b strings.Builder
	for _, stmt := range statements {
		b.WriteString(stmt.String())
	}
	return b.String()
}
