package rpn

import (
	"math"
	"sort"
)

// function is a built-in function working on the values
// popped from the evaluation stack
type function struct {
	// args is the number of operands popped
	args int
	// impl receives the operands in source order
	impl func(a []float64) float64
}

func simpleFunction(f func(float64) float64) function {
	return function{args: 1, impl: func(a []float64) float64 { return f(a[0]) }}
}

var functions = map[string]function{
	"min": {args: 2, impl: func(a []float64) float64 {
		if a[0] < a[1] {
			return a[0]
		}
		return a[1]
	}},
	"max": {args: 2, impl: func(a []float64) float64 {
		if a[0] > a[1] {
			return a[0]
		}
		return a[1]
	}},
	"sin": simpleFunction(math.Sin),
	"cos": simpleFunction(math.Cos),
}

// IsFunction returns true if name is a built-in function
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// FunctionNames returns the sorted names of the built-in functions
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
