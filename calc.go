// Package rpn implements a calculator for infix expressions.
//
// An expression is evaluated in three steps: Scan converts the text to
// tokens, ToPostfix reorders the tokens to reverse polish notation using
// the shunting-yard algorithm and Evaluate computes the result on a stack.
// Supported are float numbers, the operators + - * / ^, parentheses and
// the functions sin, cos, min and max.
//
// All functions of this package are safe for concurrent use.
package rpn

// Calculation contains the intermediate token sequences and
// the result of a calculation
type Calculation struct {
	Infix   Tokens
	Postfix Tokens
	Value   float64
}

// Calculate scans, converts and evaluates the given expression.
// The first error aborts the calculation.
func Calculate(src string) (Calculation, error) {
	infix, err := Scan(src)
	if err != nil {
		return Calculation{}, err
	}
	postfix, err := ToPostfix(infix)
	if err != nil {
		return Calculation{}, err
	}
	v, err := Evaluate(postfix)
	if err != nil {
		return Calculation{}, err
	}
	return Calculation{Infix: infix, Postfix: postfix, Value: v}, nil
}

// Eval is a shortcut to calculate the value of an expression
func Eval(src string) (float64, error) {
	c, err := Calculate(src)
	return c.Value, err
}
