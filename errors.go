package rpn

import (
	"errors"
	"strconv"
)

// Line is a line in the source text. Zero means the line is unknown.
type Line int

func (l Line) GetLine() Line {
	return l
}

// withLine appends the line to the message if it is known
func (l Line) withLine(m string) string {
	if l > 0 {
		m += " in line " + strconv.Itoa(int(l))
	}
	return m
}

var (
	// ErrMismatchedParentheses is returned by ToPostfix if a parenthesis
	// is not closed or not opened, or a comma appears outside of parentheses.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	// ErrExpectedNumberOnStack is returned by Evaluate if an operator or
	// function is applied with too few operands.
	ErrExpectedNumberOnStack = errors.New("expected number on stack")
	// ErrBadExpression is returned by Evaluate if the expression does not
	// reduce to exactly one value.
	ErrBadExpression = errors.New("bad expression")
)

// UnexpectedCharError is returned by the scanner if a character
// does not start any token.
type UnexpectedCharError struct {
	Char rune
	Line
}

func (e *UnexpectedCharError) Error() string {
	return e.withLine("unexpected character: " + strconv.QuoteRune(e.Char))
}

// UnknownFunctionError is returned if an identifier is not one of
// the built-in functions.
type UnknownFunctionError struct {
	Name string
	Line
}

func (e *UnknownFunctionError) Error() string {
	return e.withLine("unknown function: " + e.Name)
}

// NumberParseError is returned if a number literal could not be
// converted to a float64.
type NumberParseError struct {
	Text string
	Line
	Err error
}

func (e *NumberParseError) Error() string {
	m := e.withLine("failed to parse number: " + e.Text)
	if e.Err != nil {
		m += ";\n cause: " + e.Err.Error()
	}
	return m
}

func (e *NumberParseError) Unwrap() error {
	return e.Err
}
