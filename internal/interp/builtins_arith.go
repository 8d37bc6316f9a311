package interp

import (
	"math/big"

	"github.com/golf-lang/golf/internal/value"
)

// pPlus implements the `+` primitive: coerce, then add.
func (in *Interpreter) pPlus() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	in.push(plusCoerced(a, b))
	return nil
}

// plusCoerced coerces a and b to a common kind and combines them: Ints add,
// Arrs/Strs concatenate, Blks concatenate with a single space between.
func plusCoerced(a, b value.Value) value.Value {
	x, y := value.Coerce(a, b)
	switch p := x.(type) {
	case *value.Int:
		return value.NewBigInt(new(big.Int).Add(p.V, y.(*value.Int).V))
	case *value.Arr:
		q := y.(*value.Arr)
		return value.NewArr(append(append([]value.Value{}, p.Items...), q.Items...))
	case *value.Str:
		q := y.(*value.Str)
		return value.NewStr(string(append(append([]byte{}, p.Bytes...), q.Bytes...)))
	case *value.Blk:
		q := y.(*value.Blk)
		out := append([]byte{}, p.Bytes...)
		out = append(out, ' ')
		out = append(out, q.Bytes...)
		return value.NewBlk(out)
	}
	panic("interp: unreachable plus kind")
}

// pMinus implements the `-` primitive: coerce, then subtract Ints or
// set-subtract sequences.
func (in *Interpreter) pMinus() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	x, y := value.Coerce(a, b)
	switch p := x.(type) {
	case *value.Int:
		in.push(value.NewBigInt(new(big.Int).Sub(p.V, y.(*value.Int).V)))
	case *value.Arr:
		in.push(value.NewArr(value.SubtractValues(p.Items, y.(*value.Arr).Items)))
	case *value.Str:
		in.push(value.NewStr(string(value.SubtractBytes(p.Bytes, y.(*value.Str).Bytes))))
	case *value.Blk:
		in.push(value.NewBlk(value.SubtractBytes(p.Bytes, y.(*value.Blk).Bytes)))
	default:
		return newError(TypeError, "- on unknown kind")
	}
	return nil
}

// popPair pops b then a and returns them as (a, b) so callers read the same
// order as the source `a b OP`.
func (in *Interpreter) popPair() (value.Value, value.Value, error) {
	vs, err := in.popN(2)
	if err != nil {
		return nil, nil, err
	}
	return vs[0], vs[1], nil
}

type setOp int

const (
	setOpUnion setOp = iota
	setOpIntersect
	setOpXor
)

// pBitOp implements `|`, `&`, `^`: coerce, then bitwise on Ints or the
// matching set operation (preserving first-occurrence order) on sequences.
func (in *Interpreter) pBitOp(op setOp) error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	x, y := value.Coerce(a, b)
	if xi, ok := x.(*value.Int); ok {
		yi := y.(*value.Int)
		var r big.Int
		switch op {
		case setOpUnion:
			r.Or(xi.V, yi.V)
		case setOpIntersect:
			r.And(xi.V, yi.V)
		case setOpXor:
			r.Xor(xi.V, yi.V)
		}
		in.push(value.NewBigInt(&r))
		return nil
	}
	switch p := x.(type) {
	case *value.Arr:
		q := y.(*value.Arr)
		in.push(value.NewArr(setOpValues(op, p.Items, q.Items)))
	case *value.Str:
		q := y.(*value.Str)
		in.push(value.NewStr(string(setOpBytes(op, p.Bytes, q.Bytes))))
	case *value.Blk:
		q := y.(*value.Blk)
		in.push(value.NewBlk(setOpBytes(op, p.Bytes, q.Bytes)))
	default:
		return newError(TypeError, "set op on unknown kind")
	}
	return nil
}

func setOpValues(op setOp, a, b []value.Value) []value.Value {
	switch op {
	case setOpIntersect:
		return value.IntersectValues(a, b)
	case setOpXor:
		return value.XorValues(a, b)
	default:
		return value.UnionValues(a, b)
	}
}

func setOpBytes(op setOp, a, b []byte) []byte {
	switch op {
	case setOpIntersect:
		return value.IntersectBytes(a, b)
	case setOpXor:
		return value.XorBytes(a, b)
	default:
		return value.UnionBytes(a, b)
	}
}
