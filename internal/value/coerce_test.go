package value

import "testing"

func TestCoerceSymmetricKind(t *testing.T) {
	vals := []Value{NewInt(3), NewArr([]Value{NewInt(1)}), NewStr("hi"), NewBlk([]byte("1+"))}
	for _, a := range vals {
		for _, b := range vals {
			x, y := Coerce(a, b)
			y2, x2 := Coerce(b, a)
			if x.Kind() != x2.Kind() || y.Kind() != y2.Kind() {
				t.Errorf("Coerce(%v,%v) kind %v/%v != Coerce(%v,%v) kind %v/%v",
					a, b, x.Kind(), y.Kind(), b, a, x2.Kind(), y2.Kind())
			}
			if x.Kind() != y.Kind() {
				t.Errorf("Coerce(%v, %v) returned mismatched kinds %v/%v", a, b, x.Kind(), y.Kind())
			}
		}
	}
}

func TestCoerceIntStrDecimal(t *testing.T) {
	x, y := Coerce(NewInt(42), NewStr("x"))
	if x.(*Str).String() != "42" {
		t.Errorf("coerced Int->Str = %q, want %q", x.String(), "42")
	}
	if y.String() != "x" {
		t.Errorf("unexpected right side mutation: %q", y.String())
	}
}

func TestCoerceArrIntWraps(t *testing.T) {
	x, y := Coerce(NewArr([]Value{NewInt(1), NewInt(2)}), NewInt(9))
	arr := x.(*Arr)
	if len(arr.Items) != 2 {
		t.Fatalf("left side should be unchanged Arr, got %v", arr)
	}
	wrapped := y.(*Arr)
	if len(wrapped.Items) != 1 || wrapped.Items[0].(*Int).V.Int64() != 9 {
		t.Errorf("Int should be wrapped as single-element Arr, got %v", wrapped)
	}
}

func TestFlatten(t *testing.T) {
	items := []Value{NewInt(65), NewStr("BC"), NewArr([]Value{NewInt(68)})}
	got := string(Flatten(items))
	if got != "ABCD" {
		t.Errorf("Flatten = %q, want %q", got, "ABCD")
	}
}

func TestFlattenIntModulo256(t *testing.T) {
	got := Flatten([]Value{NewInt(256 + 65)}) // 321 mod 256 == 65 == 'A'
	if string(got) != "A" {
		t.Errorf("Flatten(321) = %q, want %q", got, "A")
	}
}

func TestShowWords(t *testing.T) {
	got := string(ShowWords([]Value{NewInt(1), NewStr("x"), NewInt(2)}))
	if got != "1 x 2" {
		t.Errorf("ShowWords = %q, want %q", got, "1 x 2")
	}
}
