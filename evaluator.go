package rpn

// Evaluate computes the value of a postfix token sequence.
// Operands are popped right to left: for "a b -" the value is a-b.
// Commas and parentheses carry no meaning in postfix order and are skipped.
func Evaluate(postfix []Token) (float64, error) {
	st := newStack[float64](len(postfix))
	for _, t := range postfix {
		switch t.kind {
		case KindNumber:
			st.push(t.value)
		case KindOperator:
			right, ok := st.pop()
			if !ok {
				return 0, ErrExpectedNumberOnStack
			}
			left, ok := st.pop()
			if !ok {
				return 0, ErrExpectedNumberOnStack
			}
			st.push(t.op.Apply(left, right))
		case KindFunction:
			f, ok := functions[t.name]
			if !ok {
				return 0, &UnknownFunctionError{Name: t.name}
			}
			args := make([]float64, f.args)
			for i := f.args - 1; i >= 0; i-- {
				if args[i], ok = st.pop(); !ok {
					return 0, ErrExpectedNumberOnStack
				}
			}
			st.push(f.impl(args))
		}
	}

	if st.size() != 1 {
		return 0, ErrBadExpression
	}
	v, _ := st.pop()
	return v, nil
}
