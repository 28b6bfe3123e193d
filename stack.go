package rpn

// stack is a slice backed LIFO owned by a single pipeline call
type stack[V any] struct {
	data []V
}

func newStack[V any](capacity int) *stack[V] {
	return &stack[V]{data: make([]V, 0, capacity)}
}

func (s *stack[V]) push(v V) {
	s.data = append(s.data, v)
}

// peek returns the top element without removing it
func (s *stack[V]) peek() (V, bool) {
	if len(s.data) == 0 {
		var zero V
		return zero, false
	}
	return s.data[len(s.data)-1], true
}

func (s *stack[V]) pop() (V, bool) {
	v, ok := s.peek()
	if ok {
		s.data = s.data[:len(s.data)-1]
	}
	return v, ok
}

func (s *stack[V]) size() int {
	return len(s.data)
}
