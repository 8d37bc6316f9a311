package interp

import "github.com/golf-lang/golf/internal/value"

// push appends v to the stack.
func (in *Interpreter) push(v value.Value) {
	in.stack = append(in.stack, v)
}

// pop returns and removes the top of stack, adjusting any array-bracket
// low-water mark that this pop crosses. Marks are pushed in non-decreasing
// order (a nested `[` always sees a stack at least as long as an outer
// one), so it's enough to walk down from the most recent mark, decrementing
// every trailing mark that is at or beyond the pre-pop stack length, and
// stop at the first one that isn't.
func (in *Interpreter) pop() (value.Value, error) {
	if len(in.stack) == 0 {
		return nil, newError(StackUnderflow, "pop from empty stack")
	}
	i := len(in.marks)
	for i > 0 && in.marks[i-1] >= len(in.stack) {
		i--
		if in.marks[i] > 0 {
			in.marks[i]--
		}
	}
	top := in.stack[len(in.stack)-1]
	in.stack = in.stack[:len(in.stack)-1]
	return top, nil
}

// popN pops n values and returns them in original stack order (oldest
// first), e.g. popN(2) for a binary op returns (a, b) such that the source
// read `a b OP`.
func (in *Interpreter) popN(n int) ([]value.Value, error) {
	out := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := in.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (in *Interpreter) top() (value.Value, error) {
	if len(in.stack) == 0 {
		return nil, newError(StackUnderflow, "stack is empty")
	}
	return in.stack[len(in.stack)-1], nil
}

// pushMark records the current stack length as a pending `[` mark.
func (in *Interpreter) pushMark() {
	in.marks = append(in.marks, len(in.stack))
}

// popMark pops the most recent mark (0 if none pending), drains every
// stack entry from that index onward into a new Arr, and pushes it.
func (in *Interpreter) popMark() {
	m := 0
	if len(in.marks) > 0 {
		m = in.marks[len(in.marks)-1]
		in.marks = in.marks[:len(in.marks)-1]
	}
	if m > len(in.stack) {
		m = len(in.stack)
	}
	items := append([]value.Value{}, in.stack[m:]...)
	in.stack = in.stack[:m]
	in.push(value.NewArr(items))
}
