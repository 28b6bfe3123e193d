package rpn

// ToPostfix rewrites infix tokens to postfix (reverse polish) order
// using the shunting-yard algorithm.
//
// Operators of higher precedence are emitted first. On equal precedence
// a left associative operator pops its predecessor, so 8-3-2 becomes
// 8 3 - 2 - while 2^3^2 becomes 2 3 2 ^ ^.
// A function stays on the stack until a comma, a closing parenthesis of
// an enclosing group or the end of input pops it, so sin(0)+1 becomes
// 0 1 + sin.
func ToPostfix(tokens []Token) (Tokens, error) {
	out := make(Tokens, 0, len(tokens))
	ops := newStack[Token](len(tokens))
	for _, t := range tokens {
		switch t.kind {
		case KindNumber:
			out = append(out, t)
		case KindFunction, KindLeftParen:
			ops.push(t)
		case KindOperator:
			o1 := t.op
			for {
				top, ok := ops.peek()
				if !ok || top.kind != KindOperator {
					break
				}
				o2 := top.op
				if o2.Precedence() > o1.Precedence() ||
					(o2.Precedence() == o1.Precedence() && o1.LeftAssociative()) {
					ops.pop()
					out = append(out, top)
				} else {
					break
				}
			}
			ops.push(t)
		case KindComma:
			var ok bool
			if out, ok = popToLeftParen(ops, out); !ok {
				return nil, ErrMismatchedParentheses
			}
		case KindRightParen:
			var ok bool
			if out, ok = popToLeftParen(ops, out); !ok {
				return nil, ErrMismatchedParentheses
			}
			ops.pop()
		}
	}

	for {
		t, ok := ops.pop()
		if !ok {
			return out, nil
		}
		if t.kind == KindLeftParen {
			return nil, ErrMismatchedParentheses
		}
		out = append(out, t)
	}
}

// popToLeftParen moves tokens from the stack to the output until a left
// parenthesis is on top. The parenthesis stays on the stack.
// Returns false if there is no left parenthesis.
func popToLeftParen(ops *stack[Token], out Tokens) (Tokens, bool) {
	for {
		top, ok := ops.peek()
		if !ok {
			return out, false
		}
		if top.kind == KindLeftParen {
			return out, true
		}
		ops.pop()
		out = append(out, top)
	}
}
