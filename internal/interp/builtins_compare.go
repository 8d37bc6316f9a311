package interp

import "github.com/golf-lang/golf/internal/value"

type ordering int

const (
	ordLess ordering = iota
	ordEqual
	ordGreater
)

func (in *Interpreter) pLess() error    { return in.lteqgt(ordLess) }
func (in *Interpreter) pEqual() error   { return in.lteqgt(ordEqual) }
func (in *Interpreter) pGreater() error { return in.lteqgt(ordGreater) }

// lteqgt implements `<`, `=`, `>`: Int×seq under `=` indexes; Int×seq under
// `<`/`>` slices before/from; anything else compares a against b and pushes
// a boolean for whether the ordering matches.
func (in *Interpreter) lteqgt(o ordering) error {
	a, b, err := in.popPair()
	if err != nil {
		return err
	}

	if n, seq := intAndSeq(a, b); seq != nil {
		if o == ordEqual {
			return in.pushIndexed(n, seq)
		}
		in.push(sliceSeq(o, seq, intToN(n)))
		return nil
	}

	in.push(value.Bool(ordFromCompare(value.Compare(a, b)) == o))
	return nil
}

func ordFromCompare(c int) ordering {
	switch {
	case c < 0:
		return ordLess
	case c > 0:
		return ordGreater
	default:
		return ordEqual
	}
}

// intAndSeq returns (n, seq) when exactly one of a, b is an Int and the
// other a sequence (Arr/Str/Blk); seq is nil otherwise.
func intAndSeq(a, b value.Value) (*value.Int, value.Value) {
	if n, ok := a.(*value.Int); ok {
		if isSeq(b) {
			return n, b
		}
	}
	if n, ok := b.(*value.Int); ok {
		if isSeq(a) {
			return n, a
		}
	}
	return nil, nil
}

func isSeq(v value.Value) bool {
	switch v.(type) {
	case *value.Arr, *value.Str, *value.Blk:
		return true
	}
	return false
}

func (in *Interpreter) pushIndexed(n *value.Int, seq value.Value) error {
	i := intToN(n)
	switch x := seq.(type) {
	case *value.Arr:
		if v, ok := value.IndexValues(x.Items, i); ok {
			in.push(v)
		}
	case *value.Str:
		if v, ok := value.IndexBytes(x.Bytes, i); ok {
			in.push(value.NewInt(int64(v)))
		}
	case *value.Blk:
		if v, ok := value.IndexBytes(x.Bytes, i); ok {
			in.push(value.NewStr(string([]byte{v})))
		}
	}
	return nil
}

func sliceSeq(o ordering, seq value.Value, i int) value.Value {
	switch x := seq.(type) {
	case *value.Arr:
		if o == ordLess {
			return value.NewArr(value.SliceBefore(x.Items, i))
		}
		return value.NewArr(value.SliceFrom(x.Items, i))
	case *value.Str:
		if o == ordLess {
			return value.NewStr(string(value.SliceBefore(x.Bytes, i)))
		}
		return value.NewStr(string(value.SliceFrom(x.Bytes, i)))
	case *value.Blk:
		if o == ordLess {
			return value.NewBlk(value.SliceBefore(x.Bytes, i))
		}
		return value.NewBlk(value.SliceFrom(x.Bytes, i))
	}
	panic("interp: unreachable slice kind")
}
