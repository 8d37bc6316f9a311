package interp

import (
	"math/big"

	"github.com/golf-lang/golf/internal/value"
)

// pComma implements `,`: Int n builds the range [0,n), Arr/Str report their
// length, and a Blk on top filters the seq beneath it by running the block
// once per element and keeping those that leave a truthy result.
func (in *Interpreter) pComma() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Int:
		n := intToN(x)
		if n <= 0 {
			in.push(value.NewArr(nil))
			return nil
		}
		items := make([]value.Value, n)
		for i := 0; i < n; i++ {
			items[i] = value.NewInt(int64(i))
		}
		in.push(value.NewArr(items))
		return nil
	case *value.Arr:
		in.push(value.NewInt(int64(len(x.Items))))
		return nil
	case *value.Str:
		in.push(value.NewInt(int64(len(x.Bytes))))
		return nil
	case *value.Blk:
		a, err := in.pop()
		if err != nil {
			return err
		}
		switch s := a.(type) {
		case *value.Arr:
			kept, err := in.selectSeq(x.Bytes, s.Items)
			if err != nil {
				return err
			}
			in.push(value.NewArr(kept))
		case *value.Str:
			kept, err := in.selectSeq(x.Bytes, bytesToValues(s.Bytes))
			if err != nil {
				return err
			}
			in.push(value.NewStr(string(valuesToBytes(kept))))
		case *value.Blk:
			kept, err := in.selectSeq(x.Bytes, bytesToValues(s.Bytes))
			if err != nil {
				return err
			}
			in.push(value.NewBlk(valuesToBytes(kept)))
		default:
			return newError(TypeError, ", on Blk and %s", a.Kind())
		}
		return nil
	}
	return newError(TypeError, ", on %s", v.Kind())
}

// selectSeq keeps the elements of items for which code, run with the element
// pushed, leaves a truthy result on top.
func (in *Interpreter) selectSeq(code []byte, items []value.Value) ([]value.Value, error) {
	var kept []value.Value
	for _, item := range items {
		in.push(item)
		if err := in.runBytes(code); err != nil {
			return nil, err
		}
		r, err := in.pop()
		if err != nil {
			return nil, err
		}
		if value.Truthy(r) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// pQuestion implements `?`: Int^Int power, Arr index-of (needle may be Int,
// Str, or Arr, in either order), Str index-of a byte or a substring, and
// Blk×seq find (the first element for which code leaves a truthy result).
func (in *Interpreter) pQuestion() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}

	if x, ok := a.(*value.Int); ok {
		if y, ok := b.(*value.Int); ok {
			in.push(value.NewBigInt(intPow(x.V, y.V)))
			return nil
		}
	}

	if h, n, ok := arrAndNeedle(a, b); ok {
		in.push(value.NewInt(int64(arrIndexOf(h.Items, n))))
		return nil
	}

	if h, n, ok := strAndInt(a, b); ok {
		var m big.Int
		m.Mod(n.V, big256)
		in.push(value.NewInt(int64(indexByteOf(h.Bytes, byte(m.Int64())))))
		return nil
	}

	if h, ok := a.(*value.Str); ok {
		if n, ok := b.(*value.Str); ok {
			in.push(value.NewInt(int64(value.StringIndex(h.Bytes, n.Bytes))))
			return nil
		}
	}

	if code, items, ok := blkAndSeq(a, b); ok {
		return in.findSeq(code, items)
	}

	return newError(TypeError, "? on %s and %s", a.Kind(), b.Kind())
}

// arrAndNeedle returns (haystack, needle, true) when one of a, b is an Arr
// and the other an Int, Str, or Arr; when both are Arrs, a is the haystack.
func arrAndNeedle(a, b value.Value) (*value.Arr, value.Value, bool) {
	isNeedle := func(v value.Value) bool {
		switch v.(type) {
		case *value.Int, *value.Str, *value.Arr:
			return true
		}
		return false
	}
	if h, ok := a.(*value.Arr); ok && isNeedle(b) {
		return h, b, true
	}
	if h, ok := b.(*value.Arr); ok && isNeedle(a) {
		return h, a, true
	}
	return nil, nil, false
}

func strAndInt(a, b value.Value) (*value.Str, *value.Int, bool) {
	if h, ok := a.(*value.Str); ok {
		if n, ok := b.(*value.Int); ok {
			return h, n, true
		}
	}
	if h, ok := b.(*value.Str); ok {
		if n, ok := a.(*value.Int); ok {
			return h, n, true
		}
	}
	return nil, nil, false
}

// blkAndSeq returns (code, items, true) when one of a, b is a Blk and the
// other an Arr, Str, or Blk (find's seq operand, as values); when both are
// Blks, a is the code.
func blkAndSeq(a, b value.Value) ([]byte, []value.Value, bool) {
	seq := func(v value.Value) ([]value.Value, bool) {
		switch x := v.(type) {
		case *value.Arr:
			return x.Items, true
		case *value.Str:
			return bytesToValues(x.Bytes), true
		case *value.Blk:
			return bytesToValues(x.Bytes), true
		}
		return nil, false
	}
	if code, ok := a.(*value.Blk); ok {
		if items, ok := seq(b); ok {
			return code.Bytes, items, true
		}
	}
	if code, ok := b.(*value.Blk); ok {
		if items, ok := seq(a); ok {
			return code.Bytes, items, true
		}
	}
	return nil, nil, false
}

var big256 = big.NewInt(256)

// intPow raises base to exp, treating a negative or huge exponent as 0 (no
// real golf program computes such a power).
func intPow(base, exp *big.Int) *big.Int {
	if exp.Sign() < 0 || !exp.IsInt64() {
		return big.NewInt(0)
	}
	return new(big.Int).Exp(base, exp, nil)
}

// arrIndexOf returns the position of the first element of items structurally
// equal to needle, or -1.
func arrIndexOf(items []value.Value, needle value.Value) int {
	for i, v := range items {
		if value.Equal(v, needle) {
			return i
		}
	}
	return -1
}

func indexByteOf(a []byte, b byte) int {
	for i, v := range a {
		if v == b {
			return i
		}
	}
	return -1
}

// findSeq runs code once per element of items, pushing the element first;
// the first element for which the result is truthy is pushed back and the
// search stops. Nothing is pushed if no element matches.
func (in *Interpreter) findSeq(code []byte, items []value.Value) error {
	for _, item := range items {
		in.push(item)
		if err := in.runBytes(code); err != nil {
			return err
		}
		r, err := in.pop()
		if err != nil {
			return err
		}
		if value.Truthy(r) {
			in.push(item)
			return nil
		}
	}
	return nil
}

// pOpenParen implements `(`: Int n decrements; a seq splits off its first
// element, pushing the remainder then the first (so the first ends up on
// top).
func (in *Interpreter) pOpenParen() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Int:
		in.push(value.NewBigInt(new(big.Int).Sub(x.V, big.NewInt(1))))
		return nil
	case *value.Arr:
		if len(x.Items) == 0 {
			return newError(StackUnderflow, "( on empty Arr")
		}
		in.push(value.NewArr(append([]value.Value{}, x.Items[1:]...)))
		in.push(x.Items[0])
		return nil
	case *value.Str:
		if len(x.Bytes) == 0 {
			return newError(StackUnderflow, "( on empty Str")
		}
		in.push(value.NewStr(string(x.Bytes[1:])))
		in.push(value.NewInt(int64(x.Bytes[0])))
		return nil
	case *value.Blk:
		if len(x.Bytes) == 0 {
			return newError(StackUnderflow, "( on empty Blk")
		}
		in.push(value.NewBlk(append([]byte{}, x.Bytes[1:]...)))
		in.push(value.NewInt(int64(x.Bytes[0])))
		return nil
	}
	return newError(TypeError, "( on %s", v.Kind())
}

// pCloseParen implements `)`: Int n increments; a seq splits off its last
// element, pushing the remainder then the last.
func (in *Interpreter) pCloseParen() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Int:
		in.push(value.NewBigInt(new(big.Int).Add(x.V, big.NewInt(1))))
		return nil
	case *value.Arr:
		if len(x.Items) == 0 {
			return newError(StackUnderflow, ") on empty Arr")
		}
		last := x.Items[len(x.Items)-1]
		in.push(value.NewArr(append([]value.Value{}, x.Items[:len(x.Items)-1]...)))
		in.push(last)
		return nil
	case *value.Str:
		if len(x.Bytes) == 0 {
			return newError(StackUnderflow, ") on empty Str")
		}
		last := x.Bytes[len(x.Bytes)-1]
		in.push(value.NewStr(string(x.Bytes[:len(x.Bytes)-1])))
		in.push(value.NewInt(int64(last)))
		return nil
	case *value.Blk:
		if len(x.Bytes) == 0 {
			return newError(StackUnderflow, ") on empty Blk")
		}
		last := x.Bytes[len(x.Bytes)-1]
		in.push(value.NewBlk(append([]byte{}, x.Bytes[:len(x.Bytes)-1]...)))
		in.push(value.NewInt(int64(last)))
		return nil
	}
	return newError(TypeError, ") on %s", v.Kind())
}

// pAbs implements `abs`: pop an Int, push its absolute value.
func (in *Interpreter) pAbs() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	n, ok := v.(*value.Int)
	if !ok {
		return newError(TypeError, "abs on %s", v.Kind())
	}
	in.push(value.NewBigInt(new(big.Int).Abs(n.V)))
	return nil
}

// pZip implements `zip`: pop an Arr of row-sequences and push their
// transpose. Each output column is a Str when the first row is a Str and an
// Arr otherwise; rows shorter than a given column simply don't contribute
// to it, so later columns may be shorter than earlier ones.
func (in *Interpreter) pZip() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	rows, ok := v.(*value.Arr)
	if !ok {
		return newError(TypeError, "zip on %s", v.Kind())
	}
	if len(rows.Items) == 0 {
		in.push(value.NewArr(nil))
		return nil
	}
	_, firstIsStr := rows.Items[0].(*value.Str)
	var cols [][]value.Value
	for _, row := range rows.Items {
		elems, err := seqElements(row)
		if err != nil {
			return err
		}
		for y, e := range elems {
			for len(cols) < y+1 {
				cols = append(cols, nil)
			}
			cols[y] = append(cols[y], e)
		}
	}
	out := make([]value.Value, len(cols))
	for i, c := range cols {
		if firstIsStr {
			out[i] = value.NewStr(string(valuesToBytes(c)))
		} else {
			out[i] = value.NewArr(c)
		}
	}
	in.push(value.NewArr(out))
	return nil
}

func seqElements(v value.Value) ([]value.Value, error) {
	switch x := v.(type) {
	case *value.Arr:
		return x.Items, nil
	case *value.Str:
		return bytesToValues(x.Bytes), nil
	case *value.Blk:
		return bytesToValues(x.Bytes), nil
	}
	return nil, newError(TypeError, "zip on row of kind %s", v.Kind())
}

// pBase implements `base`: pop the base b, then either decompose an Int into
// its base-b digits (most significant first) or reassemble a digit Arr into
// an Int via Horner's method.
func (in *Interpreter) pBase() error {
	bv, err := in.pop()
	if err != nil {
		return err
	}
	b, ok := bv.(*value.Int)
	if !ok {
		return newError(TypeError, "base with non-Int base %s", bv.Kind())
	}
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Int:
		if b.V.Sign() == 0 {
			return newError(ArithmeticError, "base 0")
		}
		digits := digitsOf(x.V, b.V)
		items := make([]value.Value, len(digits))
		for i, d := range digits {
			items[i] = value.NewBigInt(d)
		}
		in.push(value.NewArr(items))
		return nil
	case *value.Arr:
		total := new(big.Int)
		for _, item := range x.Items {
			d, ok := item.(*value.Int)
			if !ok {
				return newError(TypeError, "base on Arr with non-Int digit")
			}
			total.Mul(total, b.V)
			total.Add(total, d.V)
		}
		in.push(value.NewBigInt(total))
		return nil
	}
	return newError(TypeError, "base on %s", v.Kind())
}

func digitsOf(n, b *big.Int) []*big.Int {
	abs := new(big.Int).Abs(n)
	if abs.Sign() == 0 {
		return nil
	}
	var rev []*big.Int
	for abs.Sign() != 0 {
		q, r := floorDivMod(abs, b)
		rev = append(rev, r)
		abs = q
	}
	out := make([]*big.Int, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}
