package rpn

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPrettyPrint(t *testing.T) {
	tests := []struct {
		name string
		exp  string
		want string
	}{
		{"number", "2.5", "2.5"},
		{"simple", "1+2", "1 + 2"},
		{"pri", "(1+2)*3", "(1 + 2) * 3"},
		{"pri2", "1+2*3", "1 + 2 * 3"},
		{"left", "8-3-2", "8 - 3 - 2"},
		{"left braced", "8-(3-2)", "8 - (3 - 2)"},
		{"redundant", "((8-3))-2", "8 - 3 - 2"},
		{"right", "2^3^2", "2 ^ 3 ^ 2"},
		{"right braced", "(2^3)^2", "(2 ^ 3) ^ 2"},
		{"chain", "3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3", "3 + 4 * 2 / (1 - 5) ^ 2 ^ 3"},
		{"func", "max(1+2,3)", "max(1 + 2, 3)"},
		{"nested func", "sin ( max ( 2, 3 ) / 3 * 3.14 )", "sin(max(2, 3 / 3 * 3.14))"},
		{"func without paren", "sin 2 + 1", "sin(2 + 1)"},
		{"func takes rest", "sin(0)+1", "sin(0 + 1)"},
		{"func operand", "(sin(0))+1", "(sin(0)) + 1"},
		{"func right operand", "2*(cos(0))-1", "2 * (cos(0)) - 1"},
		{"func args", "max(sin(0),(cos(0)))", "max(sin(0), cos(0))"},
		{"large", "1000000000000000000000 + 1", "1000000000000000000000 + 1"},
		{"small", "0.0000001 * 2", "0.0000001 * 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infix, err := Scan(tt.exp)
			require.NoError(t, err)
			postfix, err := ToPostfix(infix)
			require.NoError(t, err)
			got, err := PrettyPrint(postfix)
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, got)

			// printed text is understood the same way
			again, err := Calculate(got)
			require.NoError(t, err)
			assert.EqualValues(t, postfix, again.Postfix)
		})
	}
}

func TestPrettyPrintErrors(t *testing.T) {
	_, err := PrettyPrint(Tokens{Num(1), Op(Plus)})
	assert.ErrorIs(t, err, ErrExpectedNumberOnStack)
	_, err = PrettyPrint(Tokens{Num(1), Num(2)})
	assert.ErrorIs(t, err, ErrBadExpression)
	_, err = PrettyPrint(Tokens{Func("max")})
	assert.ErrorIs(t, err, ErrExpectedNumberOnStack)
	var uf *UnknownFunctionError
	_, err = PrettyPrint(Tokens{Num(1), Func("tan")})
	assert.ErrorAs(t, err, &uf)
}
