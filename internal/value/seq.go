package value

import (
	"errors"
	"math/big"
)

// ErrDivideByZero is returned by Chunk when asked to chunk by zero.
var ErrDivideByZero = errors.New("value: chunk by zero")

var big256 = big.NewInt(256)

// modByte reduces an arbitrary-precision integer to a single byte via
// floor-mod 256, the rule Flatten uses for Int members of a sequence.
func modByte(n *big.Int) byte {
	var m big.Int
	m.Mod(n, big256)
	return byte(m.Int64())
}

// Repeat concatenates n copies of a (n<=0 yields an empty slice).
func Repeat[T any](a []T, n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, len(a)*n)
	for i := 0; i < n; i++ {
		out = append(out, a...)
	}
	return out
}

// Chunk splits a into pieces of size |n| (the last piece may be shorter).
// If n is negative, a is reversed first. n == 0 is a division-by-zero error.
func Chunk[T any](a []T, n int) ([][]T, error) {
	if n == 0 {
		return nil, ErrDivideByZero
	}
	if len(a) == 0 {
		return nil, nil
	}
	b := a
	size := n
	if n < 0 {
		size = -n
		b = make([]T, len(a))
		for i, v := range a {
			b[len(a)-1-i] = v
		}
	}
	var out [][]T
	for i := 0; i < len(b); i += size {
		end := i + size
		if end > len(b) {
			end = len(b)
		}
		out = append(out, b[i:end])
	}
	return out, nil
}

// EveryNth returns every |n|-th element of a (reversing first if n is
// negative).
func EveryNth[T any](a []T, n int) []T {
	m := n
	b := a
	if n < 0 {
		m = -n
		b = make([]T, len(a))
		for i, v := range a {
			b[len(a)-1-i] = v
		}
	}
	if m == 0 {
		m = 1
	}
	var out []T
	for i := 0; i < len(b); i += m {
		out = append(out, b[i])
	}
	return out
}

// SplitBytes splits a on every non-overlapping occurrence of sep (a literal
// subsequence match, left to right). If clean is true, empty pieces are
// dropped (the % primitive); otherwise they are retained (the / primitive).
func SplitBytes(a, sep []byte, clean bool) [][]byte {
	var out [][]byte
	var cur []byte
	j := 0
	for j < len(a) {
		if len(sep) > 0 && j+len(sep) <= len(a) && bytesEqual(a[j:j+len(sep)], sep) {
			if !clean || len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			j += len(sep)
		} else {
			cur = append(cur, a[j])
			j++
		}
	}
	if !clean || len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SplitValues splits a on every non-overlapping occurrence of the
// subsequence sep, compared structurally via Equal.
func SplitValues(a, sep []Value, clean bool) [][]Value {
	var out [][]Value
	var cur []Value
	j := 0
	for j < len(a) {
		if len(sep) > 0 && j+len(sep) <= len(a) && valuesEqual(a[j:j+len(sep)], sep) {
			if !clean || len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			j += len(sep)
		} else {
			cur = append(cur, a[j])
			j++
		}
	}
	if !clean || len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func valuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SubtractValues keeps a's order, dropping every element also present in b.
func SubtractValues(a, b []Value) []Value {
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[Key(v)] = true
	}
	var out []Value
	for _, v := range a {
		if !inB[Key(v)] {
			out = append(out, v)
		}
	}
	return out
}

// SubtractBytes is SubtractValues for raw byte sequences.
func SubtractBytes(a, b []byte) []byte {
	inB := make(map[byte]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	var out []byte
	for _, v := range a {
		if !inB[v] {
			out = append(out, v)
		}
	}
	return out
}

// UnionValues returns a followed by b with duplicates (by Equal) dropped,
// preserving first-occurrence order.
func UnionValues(a, b []Value) []Value {
	seen := make(map[string]bool, len(a)+len(b))
	var out []Value
	for _, v := range append(append([]Value{}, a...), b...) {
		k := Key(v)
		if !seen[k] {
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

// UnionBytes is UnionValues for raw byte sequences.
func UnionBytes(a, b []byte) []byte {
	seen := make(map[byte]bool, len(a)+len(b))
	var out []byte
	for _, v := range append(append([]byte{}, a...), b...) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// IntersectValues keeps elements present in both a and b, in a's order,
// deduplicated.
func IntersectValues(a, b []Value) []Value {
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[Key(v)] = true
	}
	seen := make(map[string]bool, len(a))
	var out []Value
	for _, v := range a {
		k := Key(v)
		if inB[k] && !seen[k] {
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

// IntersectBytes is IntersectValues for raw byte sequences.
func IntersectBytes(a, b []byte) []byte {
	inB := make(map[byte]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	seen := make(map[byte]bool, len(a))
	var out []byte
	for _, v := range a {
		if inB[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// XorValues keeps elements present in exactly one of a or b, deduplicated,
// in the order a-then-b.
func XorValues(a, b []Value) []Value {
	inA := make(map[string]bool, len(a))
	for _, v := range a {
		inA[Key(v)] = true
	}
	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[Key(v)] = true
	}
	seen := make(map[string]bool, len(a)+len(b))
	var out []Value
	for _, v := range append(append([]Value{}, a...), b...) {
		k := Key(v)
		if !seen[k] && (inA[k] != inB[k]) {
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

// XorBytes is XorValues for raw byte sequences.
func XorBytes(a, b []byte) []byte {
	inA := make(map[byte]bool, len(a))
	for _, v := range a {
		inA[v] = true
	}
	inB := make(map[byte]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}
	seen := make(map[byte]bool, len(a)+len(b))
	var out []byte
	for _, v := range append(append([]byte{}, a...), b...) {
		if !seen[v] && (inA[v] != inB[v]) {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// IndexValues returns a[i] with golf's wraparound rule: i in [0,len) indexes
// directly, negative i in [-len,0) wraps from the end; any other i is out
// of range.
func IndexValues(a []Value, i int) (Value, bool) {
	l := len(a)
	if i >= l {
		return nil, false
	}
	if i >= 0 {
		return a[i], true
	}
	if i >= -l {
		return a[i+l], true
	}
	return nil, false
}

// IndexBytes returns a[i] (as an int 0-255) with the same wraparound rule as
// IndexValues.
func IndexBytes(a []byte, i int) (byte, bool) {
	l := len(a)
	if i >= l {
		return 0, false
	}
	if i >= 0 {
		return a[i], true
	}
	if i >= -l {
		return a[i+l], true
	}
	return 0, false
}

// SliceBefore returns a[:ix] where ix is i clamped/wrapped per golf's
// indexing rule (used by the < primitive).
func SliceBefore[T any](a []T, i int) []T {
	return a[:clampIndex(len(a), i)]
}

// SliceFrom returns a[ix:] where ix is i clamped/wrapped per golf's indexing
// rule (used by the > primitive).
func SliceFrom[T any](a []T, i int) []T {
	return a[clampIndex(len(a), i):]
}

func clampIndex(l, i int) int {
	if i >= l {
		return l
	}
	if i >= 0 {
		return i
	}
	if i >= -l {
		return i + l
	}
	return 0
}

// StringIndex returns the index of the first occurrence of needle in
// haystack, or -1 if absent (including when needle is longer than
// haystack). An empty needle matches at index 0.
func StringIndex(haystack, needle []byte) int {
	hl, nl := len(haystack), len(needle)
	if nl > hl {
		return -1
	}
	for i := 0; i <= hl-nl; i++ {
		if bytesEqual(haystack[i:i+nl], needle) {
			return i
		}
	}
	return -1
}
