package interp

import "github.com/golf-lang/golf/internal/value"

// pAnd implements `and`: pop b, a; go whichever of a, b short-circuits
// (a if a is falsey, otherwise b).
func (in *Interpreter) pAnd() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	if value.Falsey(a) {
		return in.goValue(a)
	}
	return in.goValue(b)
}

// pOr implements `or`: pop b, a; go a if it is truthy, otherwise b.
func (in *Interpreter) pOr() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	if value.Truthy(a) {
		return in.goValue(a)
	}
	return in.goValue(b)
}

// pXor implements `xor`: pop b, a; push whether exactly one is truthy.
func (in *Interpreter) pXor() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	in.push(value.Bool(value.Truthy(a) != value.Truthy(b)))
	return nil
}

// pDo implements `do`: pop the body and go it repeatedly, stopping once the
// result it leaves on top is falsey.
func (in *Interpreter) pDo() error {
	body, err := in.pop()
	if err != nil {
		return err
	}
	for {
		if err := in.goValue(body); err != nil {
			return err
		}
		r, err := in.pop()
		if err != nil {
			return err
		}
		if value.Falsey(r) {
			return nil
		}
	}
}

// pWhileUntil implements `while` (runWhileTruthy true) and `until`
// (runWhileTruthy false): pop body then cond; go cond, pop its result, stop
// when that result no longer matches runWhileTruthy, otherwise go body and
// repeat.
func (in *Interpreter) pWhileUntil(runWhileTruthy bool) error {
	body, err := in.pop()
	if err != nil {
		return err
	}
	cond, err := in.pop()
	if err != nil {
		return err
	}
	for {
		if err := in.goValue(cond); err != nil {
			return err
		}
		r, err := in.pop()
		if err != nil {
			return err
		}
		if value.Truthy(r) != runWhileTruthy {
			return nil
		}
		if err := in.goValue(body); err != nil {
			return err
		}
	}
}

// pIf implements `if`: pop c, b, a; go b if a is truthy, otherwise go c.
func (in *Interpreter) pIf() error {
	vs, err := in.popN(3)
	if err != nil {
		return err
	}
	a, b, c := vs[0], vs[1], vs[2]
	if value.Truthy(a) {
		return in.goValue(b)
	}
	return in.goValue(c)
}
