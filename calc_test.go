package rpn

import (
	"fmt"
	"math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		exp    string
		result float64
	}{
		{"3-4", -1},
		{"3+4*2", 11},
		{"3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3", 3.0001220703125},
		{"sin ( max ( 2, 3 ) / 3 * 3.14 )", 0.0015926529164868282},
		{"(3+4)*2", 14},
		{"8-3-2", 3},
		{"2^3^2", 512},
		{"sin(0)+1", math.Sin(1)},
		{"max(1,2)+1", 3},
		{"(sin(0))+1", 1},
		{"cos(0)*max(1,2)", 2},
		{"min(4, 2^3)", 4},
		{"10 / 4 // ten quarters", 2.5},
		{"1 +\n2", 3},
	}

	for _, tt := range tests {
		t.Run(tt.exp, func(t *testing.T) {
			c, err := Calculate(tt.exp)
			require.NoError(t, err)
			assert.InDelta(t, tt.result, c.Value, 1e-9)
			assert.NotEmpty(t, c.Infix)
			assert.NotEmpty(t, c.Postfix)
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	_, err := Calculate("foo(1)")
	var uf *UnknownFunctionError
	assert.ErrorAs(t, err, &uf)

	_, err = Calculate("(1+2")
	assert.ErrorIs(t, err, ErrMismatchedParentheses)

	_, err = Calculate("1+2)")
	assert.ErrorIs(t, err, ErrMismatchedParentheses)

	_, err = Calculate("3 +")
	assert.ErrorIs(t, err, ErrExpectedNumberOnStack)

	_, err = Calculate("3 4")
	assert.ErrorIs(t, err, ErrBadExpression)

	c, err := Calculate("1 # 2")
	var uc *UnexpectedCharError
	assert.ErrorAs(t, err, &uc)
	assert.EqualValues(t, Calculation{}, c)
}

func TestEval(t *testing.T) {
	v, err := Eval("max(3, 4) - min(3, 4)")
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	_, err = Eval("")
	assert.ErrorIs(t, err, ErrBadExpression)
}

func TestCalculateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]float64, 100)
	errs := make([]error, 100)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Eval(fmt.Sprintf("%d * (2 + 1) - max(%d, 0)", i, i))
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		assert.NoError(t, errs[i])
		assert.EqualValues(t, 2*i, r)
	}
}

func TestFunctionNames(t *testing.T) {
	assert.EqualValues(t, []string{"cos", "max", "min", "sin"}, FunctionNames())
	assert.True(t, IsFunction("sin"))
	assert.False(t, IsFunction("tan"))
}
