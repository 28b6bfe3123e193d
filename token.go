package rpn

import (
	"math"
	"strconv"
	"strings"
)

// TokenKind is the kind of a Token
type TokenKind int

const (
	KindNumber TokenKind = iota
	KindFunction
	KindOperator
	KindComma
	KindLeftParen
	KindRightParen
)

func (k TokenKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindFunction:
		return "Function"
	case KindOperator:
		return "Operator"
	case KindComma:
		return "Comma"
	case KindLeftParen:
		return "LeftParen"
	case KindRightParen:
		return "RightParen"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// OperatorKind is one of the binary operators
type OperatorKind int

const (
	Plus OperatorKind = iota
	Minus
	Multiply
	Divide
	Pow
)

// Precedence returns the binding strength of the operator.
// Higher values bind tighter.
func (o OperatorKind) Precedence() int {
	switch o {
	case Multiply, Divide:
		return 3
	case Pow:
		return 4
	default:
		return 2
	}
}

// LeftAssociative returns true if repeated application groups left to right.
// Pow is the only right associative operator.
func (o OperatorKind) LeftAssociative() bool {
	return o != Pow
}

// Apply computes left o right
func (o OperatorKind) Apply(left, right float64) float64 {
	switch o {
	case Plus:
		return left + right
	case Minus:
		return left - right
	case Multiply:
		return left * right
	case Divide:
		return left / right
	default:
		return math.Pow(left, right)
	}
}

func (o OperatorKind) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Pow:
		return "^"
	}
	return "?"
}

// Token is a tagged value. Only the payload belonging to its kind is set.
// Tokens are comparable and never modified after creation.
type Token struct {
	kind  TokenKind
	value float64
	name  string
	op    OperatorKind
}

var (
	Comma      = Token{kind: KindComma}
	LeftParen  = Token{kind: KindLeftParen}
	RightParen = Token{kind: KindRightParen}
)

// Num creates a number literal token
func Num(v float64) Token {
	return Token{kind: KindNumber, value: v}
}

// Func creates a function token
func Func(name string) Token {
	return Token{kind: KindFunction, name: name}
}

// Op creates an operator token
func Op(o OperatorKind) Token {
	return Token{kind: KindOperator, op: o}
}

func (t Token) Kind() TokenKind {
	return t.kind
}

// Value returns the number of a KindNumber token
func (t Token) Value() float64 {
	return t.value
}

// Name returns the function name of a KindFunction token
func (t Token) Name() string {
	return t.name
}

// Operator returns the operator of a KindOperator token
func (t Token) Operator() OperatorKind {
	return t.op
}

func (t Token) String() string {
	switch t.kind {
	case KindNumber:
		return strconv.FormatFloat(t.value, 'g', -1, 64)
	case KindFunction:
		return t.name
	case KindOperator:
		return t.op.String()
	case KindComma:
		return ","
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	}
	return t.kind.String()
}

// Tokens is an ordered token sequence
type Tokens []Token

// String returns the tokens separated by a blank
func (ts Tokens) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
	}
	return b.String()
}
