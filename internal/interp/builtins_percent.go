package interp

import (
	"github.com/golf-lang/golf/internal/value"
)

// pPercent implements `%`: floor modulo, clean split, map, or every-nth,
// depending on the raw kinds of its two operands.
func (in *Interpreter) pPercent() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		switch y := b.(type) {
		case *value.Int:
			if y.V.Sign() == 0 {
				return newError(ArithmeticError, "%% by zero")
			}
			_, r := floorDivMod(x.V, y.V)
			in.push(value.NewBigInt(r))
			return nil
		case *value.Arr:
			in.push(value.NewArr(value.EveryNth(y.Items, intToN(x))))
			return nil
		case *value.Str:
			in.push(value.NewStr(string(value.EveryNth(y.Bytes, intToN(x)))))
			return nil
		}
	case *value.Arr:
		switch y := b.(type) {
		case *value.Int:
			in.push(value.NewArr(value.EveryNth(x.Items, intToN(y))))
			return nil
		case *value.Arr:
			in.push(arrOfArr(value.SplitValues(x.Items, y.Items, true)))
			return nil
		case *value.Str:
			in.push(arrOfArr(value.SplitValues(x.Items, bytesToValues(y.Bytes), true)))
			return nil
		case *value.Blk:
			items, err := in.mapSeq(y.Bytes, x.Items)
			if err != nil {
				return err
			}
			in.push(value.NewArr(items))
			return nil
		}
	case *value.Str:
		switch y := b.(type) {
		case *value.Int:
			in.push(value.NewStr(string(value.EveryNth(x.Bytes, intToN(y)))))
			return nil
		case *value.Str:
			in.push(arrOfStr(value.SplitBytes(x.Bytes, y.Bytes, true)))
			return nil
		case *value.Arr:
			in.push(arrOfArr(value.SplitValues(bytesToValues(x.Bytes), y.Items, true)))
			return nil
		case *value.Blk:
			items, err := in.mapSeq(y.Bytes, bytesToValues(x.Bytes))
			if err != nil {
				return err
			}
			in.push(value.NewStr(string(value.Flatten(items))))
			return nil
		}
	case *value.Blk:
		switch y := b.(type) {
		case *value.Arr:
			items, err := in.mapSeq(x.Bytes, y.Items)
			if err != nil {
				return err
			}
			in.push(value.NewArr(items))
			return nil
		case *value.Str:
			items, err := in.mapSeq(x.Bytes, bytesToValues(y.Bytes))
			if err != nil {
				return err
			}
			in.push(value.NewStr(string(value.Flatten(items))))
			return nil
		}
	}
	return newError(TypeError, "%% on %s and %s", a.Kind(), b.Kind())
}

// mapSeq runs code once per element of items, collecting everything the
// block leaves on the stack relative to its per-iteration low-water mark
// (a block may push zero, one, or many values per element).
func (in *Interpreter) mapSeq(code []byte, items []value.Value) ([]value.Value, error) {
	var result []value.Value
	for _, item := range items {
		depth := len(in.marks)
		in.pushMark()
		in.push(item)
		if err := in.runBytes(code); err != nil {
			return nil, err
		}
		mark := len(in.stack)
		if len(in.marks) > depth {
			mark = in.marks[depth]
			in.marks = in.marks[:depth]
		}
		result = append(result, in.stack[mark:]...)
		in.stack = in.stack[:mark]
	}
	return result, nil
}
