package interp

import (
	"math/big"

	"github.com/golf-lang/golf/internal/value"
)

// pStar implements `*`: uncoerced dispatch on the raw kinds of its two
// operands (multiply, repeat, run-n-times, join, or fold).
func (in *Interpreter) pStar() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		switch y := b.(type) {
		case *value.Int:
			in.push(value.NewBigInt(new(big.Int).Mul(x.V, y.V)))
			return nil
		case *value.Arr:
			in.push(value.NewArr(value.Repeat(y.Items, intToN(x))))
			return nil
		case *value.Str:
			in.push(value.NewStr(string(value.Repeat(y.Bytes, intToN(x)))))
			return nil
		case *value.Blk:
			return in.runNTimes(y.Bytes, intToN(x))
		}
	case *value.Arr:
		switch y := b.(type) {
		case *value.Int:
			in.push(value.NewArr(value.Repeat(x.Items, intToN(y))))
			return nil
		case *value.Arr:
			in.push(joinValues(x.Items, y))
			return nil
		case *value.Str:
			in.push(joinValues(x.Items, y))
			return nil
		case *value.Blk:
			return in.foldSeq(y.Bytes, x.Items)
		}
	case *value.Str:
		switch y := b.(type) {
		case *value.Int:
			in.push(value.NewStr(string(value.Repeat(x.Bytes, intToN(y)))))
			return nil
		case *value.Arr:
			in.push(joinValues(y.Items, x))
			return nil
		case *value.Str:
			in.push(joinValues(bytesToValues(x.Bytes), y))
			return nil
		case *value.Blk:
			return in.foldSeq(y.Bytes, bytesToValues(x.Bytes))
		}
	case *value.Blk:
		switch y := b.(type) {
		case *value.Int:
			return in.runNTimes(x.Bytes, intToN(y))
		case *value.Arr:
			return in.foldSeq(x.Bytes, y.Items)
		case *value.Str:
			return in.foldSeq(x.Bytes, bytesToValues(y.Bytes))
		case *value.Blk:
			return in.foldSeq(x.Bytes, bytesToValues(y.Bytes))
		}
	}
	return newError(TypeError, "* on %s and %s", a.Kind(), b.Kind())
}

// intToN narrows an arbitrary-precision Int used as a repeat/chunk count to
// a machine int, clamping rather than overflowing for values no real
// program would produce.
func intToN(v *value.Int) int {
	if v.V.IsInt64() {
		return int(v.V.Int64())
	}
	if v.V.Sign() < 0 {
		return -1 << 62
	}
	return 1<<62 - 1
}

func (in *Interpreter) runNTimes(code []byte, n int) error {
	for i := 0; i < n; i++ {
		if err := in.runBytes(code); err != nil {
			return err
		}
	}
	return nil
}

// joinValues joins items (already-coerced-free Values, e.g. Arr elements or
// bytes-as-Int) with sep inserted between each, combining via the same
// coerce-then-add rule as `+`. An empty items yields an empty Arr or Str
// matching sep's kind.
func joinValues(items []value.Value, sep value.Value) value.Value {
	if len(items) == 0 {
		if sep.Kind() == value.KindArr {
			return value.NewArr(nil)
		}
		return value.NewStr("")
	}
	r := items[0]
	for _, item := range items[1:] {
		r = plusCoerced(plusCoerced(r, sep), item)
	}
	return r
}

// foldSeq implements fold: push the first element; for each subsequent one,
// push it then run code. An empty seq is a no-op.
func (in *Interpreter) foldSeq(code []byte, items []value.Value) error {
	if len(items) == 0 {
		return nil
	}
	in.push(items[0])
	for _, item := range items[1:] {
		in.push(item)
		if err := in.runBytes(code); err != nil {
			return err
		}
	}
	return nil
}
