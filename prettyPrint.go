package rpn

import (
	"strconv"
	"strings"
)

// atomic is the priority of numbers, they never need parentheses.
const atomic = 5

// call is the priority of a function call. A function applies to
// everything up to the end of its group, so a call used as an operand
// is always put in parentheses.
const call = 0

type printed struct {
	text     string
	priority int
}

// PrettyPrint converts a postfix token sequence back to infix notation.
// Parentheses are only added where the grouping differs from the one
// implied by precedence and associativity, so the result shows how the
// expression was understood, e.g. "sin 2 + 1" is printed as "sin(2 + 1)".
// Numbers are printed without exponent so the scanner can read the
// result again. It fails with the same errors as Evaluate.
func PrettyPrint(postfix []Token) (string, error) {
	st := newStack[printed](len(postfix))
	for _, t := range postfix {
		switch t.kind {
		case KindNumber:
			st.push(printed{text: strconv.FormatFloat(t.value, 'f', -1, 64), priority: atomic})
		case KindOperator:
			b, okB := st.pop()
			a, okA := st.pop()
			if !(okA && okB) {
				return "", ErrExpectedNumberOnStack
			}
			o := t.op
			p := o.Precedence()
			var buf strings.Builder
			braced(&buf, a, a.priority < p || (a.priority == p && !o.LeftAssociative()))
			buf.WriteString(" " + o.String() + " ")
			braced(&buf, b, b.priority < p || (b.priority == p && o.LeftAssociative()))
			st.push(printed{text: buf.String(), priority: p})
		case KindFunction:
			f, ok := functions[t.name]
			if !ok {
				return "", &UnknownFunctionError{Name: t.name}
			}
			args := make([]string, f.args)
			for i := f.args - 1; i >= 0; i-- {
				a, ok := st.pop()
				if !ok {
					return "", ErrExpectedNumberOnStack
				}
				args[i] = a.text
			}
			st.push(printed{text: t.name + "(" + strings.Join(args, ", ") + ")", priority: call})
		}
	}

	if st.size() != 1 {
		return "", ErrBadExpression
	}
	p, _ := st.pop()
	return p.text, nil
}

func braced(buf *strings.Builder, p printed, brace bool) {
	if brace {
		buf.WriteString("(")
		buf.WriteString(p.text)
		buf.WriteString(")")
	} else {
		buf.WriteString(p.text)
	}
}
