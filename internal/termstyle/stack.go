package termstyle

// Stack tracks the effective style while styles are pushed and popped.
type Stack struct {
	head Style
	tail []Style
}

// NewStack returns a stack whose effective style is head.
func NewStack(head Style) *Stack {
	return &Stack{head: head}
}

// Head returns the effective style.
func (s *Stack) Head() Style {
	return s.head
}

// Push makes style the effective style and saves the previous one. Callers
// that want layering pass style.OnTopOf(s.Head()).
func (s *Stack) Push(style Style) {
	s.tail = append(s.tail, s.head)
	s.head = style
}

// Pop restores the style saved by the matching Push. Popping an empty stack
// panics in mddebug builds and leaves the style unchanged otherwise.
func (s *Stack) Pop() {
	n := len(s.tail)
	if n == 0 {
		if strictPop {
			panic("termstyle: pop on empty style stack")
		}
		return
	}
	s.head = s.tail[n-1]
	s.tail = s.tail[:n-1]
}

// Depth returns the number of saved styles.
func (s *Stack) Depth() int {
	return len(s.tail)
}
