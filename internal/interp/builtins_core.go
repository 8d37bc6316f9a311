package interp

import (
	"math/big"
	"sort"

	"github.com/golf-lang/golf/internal/value"
)

func (in *Interpreter) pTilde() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Int:
		in.push(value.NewBigInt(new(big.Int).Not(x.V)))
		return nil
	case *value.Arr:
		for _, item := range x.Items {
			in.push(item)
		}
		return nil
	case *value.Str:
		return in.runBytes(x.Bytes)
	case *value.Blk:
		return in.runBytes(x.Bytes)
	}
	return newError(TypeError, "~ on unknown value")
}

func (in *Interpreter) pBacktick() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	in.push(value.NewStr(value.Inspect(v)))
	return nil
}

func (in *Interpreter) pBang() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	in.push(value.Bool(value.Falsey(v)))
	return nil
}

func (in *Interpreter) pAt() error {
	vs, err := in.popN(3)
	if err != nil {
		return err
	}
	a, b, c := vs[0], vs[1], vs[2]
	in.push(b)
	in.push(c)
	in.push(a)
	return nil
}

func (in *Interpreter) pSwap() error {
	vs, err := in.popN(2)
	if err != nil {
		return err
	}
	in.push(vs[1])
	in.push(vs[0])
	return nil
}

func (in *Interpreter) pPop() error {
	_, err := in.pop()
	return err
}

func (in *Interpreter) pDup() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	in.push(v)
	in.push(value.Copy(v))
	return nil
}

func (in *Interpreter) pDollar() error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Int:
		return in.dollarPick(x)
	case *value.Arr:
		items := append([]value.Value{}, x.Items...)
		sort.SliceStable(items, func(i, j int) bool { return value.Less(items[i], items[j]) })
		in.push(value.NewArr(items))
		return nil
	case *value.Str:
		bs := append([]byte{}, x.Bytes...)
		sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
		in.push(value.NewStr(string(bs)))
		return nil
	case *value.Blk:
		return in.dollarSortBy(x.Bytes)
	}
	return newError(TypeError, "$ on unknown value")
}

// dollarPick implements the Int n arm of $: pick the element n-from-top (n
// >= 0) or n-from-bottom via the -n-2 encoding (n < -1); out-of-range n is a
// no-op.
func (in *Interpreter) dollarPick(n *value.Int) error {
	length := big.NewInt(int64(len(in.stack)))
	if n.V.Cmp(big.NewInt(-1)) < 0 {
		idx := new(big.Int).Neg(n.V)
		idx.Sub(idx, big.NewInt(2))
		if idx.IsInt64() {
			i := int(idx.Int64())
			if i >= 0 && i < len(in.stack) {
				in.push(value.Copy(in.stack[i]))
			}
		}
		return nil
	}
	if n.V.Sign() >= 0 && n.V.Cmp(length) < 0 {
		idx := new(big.Int).Sub(length, big.NewInt(1))
		idx.Sub(idx, n.V)
		if idx.IsInt64() {
			i := int(idx.Int64())
			if i >= 0 && i < len(in.stack) {
				in.push(value.Copy(in.stack[i]))
			}
		}
	}
	return nil
}

// dollarSortBy implements the Blk arm of $: sort a popped sequence stably
// by the key each element yields when run through code.
func (in *Interpreter) dollarSortBy(code []byte) error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case *value.Arr:
		sorted, err := in.sortByKey(code, x.Items, func(items []value.Value) value.Value { return value.NewArr(items) })
		if err != nil {
			return err
		}
		in.push(sorted)
		return nil
	case *value.Str:
		items := bytesToValues(x.Bytes)
		sorted, err := in.sortByKey(code, items, func(items []value.Value) value.Value {
			return value.NewStr(string(valuesToBytes(items)))
		})
		if err != nil {
			return err
		}
		in.push(sorted)
		return nil
	case *value.Blk:
		items := bytesToValues(x.Bytes)
		sorted, err := in.sortByKey(code, items, func(items []value.Value) value.Value {
			return value.NewBlk(valuesToBytes(items))
		})
		if err != nil {
			return err
		}
		in.push(sorted)
		return nil
	}
	return newError(TypeError, "$ block arm needs a sequence")
}

type keyedItem struct {
	key  value.Value
	item value.Value
}

func (in *Interpreter) sortByKey(code []byte, items []value.Value, rebuild func([]value.Value) value.Value) (value.Value, error) {
	keyed := make([]keyedItem, len(items))
	for i, item := range items {
		in.push(item)
		if err := in.runBytes(code); err != nil {
			return nil, err
		}
		key, err := in.pop()
		if err != nil {
			return nil, err
		}
		keyed[i] = keyedItem{key: key, item: item}
	}
	sort.SliceStable(keyed, func(i, j int) bool { return value.Less(keyed[i].key, keyed[j].key) })
	out := make([]value.Value, len(keyed))
	for i, k := range keyed {
		out[i] = k.item
	}
	return rebuild(out), nil
}

func bytesToValues(bs []byte) []value.Value {
	out := make([]value.Value, len(bs))
	for i, b := range bs {
		out[i] = value.NewInt(int64(b))
	}
	return out
}

func valuesToBytes(vs []value.Value) []byte {
	out := make([]byte, 0, len(vs))
	for _, v := range vs {
		if iv, ok := v.(*value.Int); ok {
			var m big.Int
			m.Mod(iv.V, big.NewInt(256))
			out = append(out, byte(m.Int64()))
		}
	}
	return out
}
