package interp

import (
	"math/big"

	"github.com/golf-lang/golf/internal/value"
)

// floorDivMod computes floor division and its matching remainder (the
// remainder always carries the divisor's sign), unlike math/big's truncating
// QuoRem and Euclidean Div/Mod.
func floorDivMod(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

// pSlash implements `/`: floor division, split, each, chunk, or unfold,
// depending on the raw kinds of its two operands.
func (in *Interpreter) pSlash() error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}
	switch x := a.(type) {
	case *value.Int:
		switch y := b.(type) {
		case *value.Int:
			if y.V.Sign() == 0 {
				return newError(ArithmeticError, "/ by zero")
			}
			q, _ := floorDivMod(x.V, y.V)
			in.push(value.NewBigInt(q))
			return nil
		case *value.Arr:
			return in.pushChunk(y.Items, intToN(x), arrWrap)
		case *value.Str:
			return in.pushChunk(bytesToValues(y.Bytes), intToN(x), strWrap)
		}
	case *value.Arr:
		switch y := b.(type) {
		case *value.Int:
			return in.pushChunk(x.Items, intToN(y), arrWrap)
		case *value.Arr:
			in.push(arrOfArr(value.SplitValues(x.Items, y.Items, false)))
			return nil
		case *value.Str:
			in.push(arrOfArr(value.SplitValues(x.Items, bytesToValues(y.Bytes), false)))
			return nil
		case *value.Blk:
			return in.eachSeq(y.Bytes, x.Items)
		}
	case *value.Str:
		switch y := b.(type) {
		case *value.Int:
			return in.pushChunk(bytesToValues(x.Bytes), intToN(y), strWrap)
		case *value.Str:
			in.push(arrOfStr(value.SplitBytes(x.Bytes, y.Bytes, false)))
			return nil
		case *value.Arr:
			in.push(arrOfArr(value.SplitValues(bytesToValues(x.Bytes), y.Items, false)))
			return nil
		case *value.Blk:
			return in.eachSeq(y.Bytes, bytesToValues(x.Bytes))
		}
	case *value.Blk:
		switch y := b.(type) {
		case *value.Arr:
			return in.eachSeq(x.Bytes, y.Items)
		case *value.Str:
			return in.eachSeq(x.Bytes, bytesToValues(y.Bytes))
		case *value.Blk:
			return in.unfold(x.Bytes, y.Bytes)
		}
	}
	return newError(TypeError, "/ on %s and %s", a.Kind(), b.Kind())
}

func arrWrap(items []value.Value) value.Value { return value.NewArr(items) }
func strWrap(items []value.Value) value.Value { return value.NewStr(string(valuesToBytes(items))) }

func arrOfArr(pieces [][]value.Value) value.Value {
	out := make([]value.Value, len(pieces))
	for i, p := range pieces {
		out[i] = value.NewArr(p)
	}
	return value.NewArr(out)
}

func arrOfStr(pieces [][]byte) value.Value {
	out := make([]value.Value, len(pieces))
	for i, p := range pieces {
		out[i] = value.NewStr(string(p))
	}
	return value.NewArr(out)
}

func (in *Interpreter) pushChunk(items []value.Value, n int, wrap func([]value.Value) value.Value) error {
	chunks, err := value.Chunk(items, n)
	if err != nil {
		return newError(ArithmeticError, "%s", err)
	}
	out := make([]value.Value, len(chunks))
	for i, c := range chunks {
		out[i] = wrap(c)
	}
	in.push(value.NewArr(out))
	return nil
}

// eachSeq runs code once per element of items, pushing the element first.
func (in *Interpreter) eachSeq(code []byte, items []value.Value) error {
	for _, item := range items {
		in.push(item)
		if err := in.runBytes(code); err != nil {
			return err
		}
	}
	return nil
}

// unfold repeatedly peeks the seed, runs cond, stops when falsey, else
// records the seed and runs step to produce the next one.
func (in *Interpreter) unfold(cond, step []byte) error {
	var recorded []value.Value
	for {
		seed, err := in.top()
		if err != nil {
			return err
		}
		in.push(value.Copy(seed))
		if err := in.runBytes(cond); err != nil {
			return err
		}
		v, err := in.pop()
		if err != nil {
			return err
		}
		if value.Falsey(v) {
			break
		}
		seed, err = in.top()
		if err != nil {
			return err
		}
		recorded = append(recorded, value.Copy(seed))
		if err := in.runBytes(step); err != nil {
			return err
		}
	}
	if _, err := in.pop(); err != nil {
		return err
	}
	in.push(value.NewArr(recorded))
	return nil
}
