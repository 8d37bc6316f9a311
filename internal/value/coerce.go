package value

// Coerce implements the 4x4 type-promotion table: given two values of any
// kinds, it returns a homogeneous pair of the same kind (Int/Arr/Str/Blk),
// applying wrap/decimal/flatten/show_words as needed. Coerce(a, b) and
// Coerce(b, a) always return the same resulting kind, swapped.
func Coerce(a, b Value) (Value, Value) {
	switch x := a.(type) {
	case *Int:
		switch y := b.(type) {
		case *Int:
			return x, y
		case *Arr:
			return NewArr([]Value{x}), y
		case *Str:
			return NewStr(x.String()), y
		case *Blk:
			return NewBlk([]byte(x.String())), y
		}
	case *Arr:
		switch y := b.(type) {
		case *Int:
			return x, NewArr([]Value{y})
		case *Arr:
			return x, y
		case *Str:
			return NewStr(string(Flatten(x.Items))), y
		case *Blk:
			return NewBlk(ShowWords(x.Items)), y
		}
	case *Str:
		switch y := b.(type) {
		case *Int:
			return x, NewStr(y.String())
		case *Arr:
			return x, NewStr(string(Flatten(y.Items)))
		case *Str:
			return x, y
		case *Blk:
			return NewBlk(x.Bytes), y
		}
	case *Blk:
		switch y := b.(type) {
		case *Int:
			return x, NewBlk([]byte(y.String()))
		case *Arr:
			return x, NewBlk(ShowWords(y.Items))
		case *Str:
			return x, NewBlk(y.Bytes)
		case *Blk:
			return x, y
		}
	}
	panic("value: unreachable coercion pair")
}

// Flatten concatenates a sequence's byte-producing view: Int contributes
// one byte (n mod 256), Arr recurses, Str/Blk append their bytes as-is.
func Flatten(items []Value) []byte {
	var out []byte
	flattenInto(&out, items)
	return out
}

func flattenInto(out *[]byte, items []Value) {
	for _, v := range items {
		switch x := v.(type) {
		case *Int:
			*out = append(*out, modByte(x.V))
		case *Arr:
			flattenInto(out, x.Items)
		case *Str:
			*out = append(*out, x.Bytes...)
		case *Blk:
			*out = append(*out, x.Bytes...)
		}
	}
}

// ShowWords renders a sequence element-wise via to_gs, joined by single
// spaces.
func ShowWords(items []Value) []byte {
	var out []byte
	for i, v := range items {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, []byte(v.String())...)
	}
	return out
}
