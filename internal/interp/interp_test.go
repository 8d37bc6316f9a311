package interp

import (
	"bytes"
	"testing"

	"github.com/golf-lang/golf/internal/value"
)

// testEval runs src against a fresh Interpreter with no initial value and
// returns the inspect rendering of each final stack entry, joined with a
// space, matching how a reader would eyeball a golf REPL.
func testEval(t *testing.T, src string) string {
	t.Helper()
	in := New(&bytes.Buffer{})
	stack, err := in.Run([]byte(src), nil)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	out := ""
	for i, v := range stack {
		if i > 0 {
			out += " "
		}
		out += value.Inspect(v)
	}
	return out
}

func testEvalWithOutput(t *testing.T, src string) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	in := New(&buf)
	stack, err := in.Run([]byte(src), nil)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	out := ""
	for i, v := range stack {
		if i > 0 {
			out += " "
		}
		out += value.ToGS(v)
	}
	return out, buf.String()
}

// TestConcreteScenarios exercises every end-to-end example golf programs
// are expected to run correctly, from the simplest arithmetic to the
// GCD-by-block idiom.
func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"add", "1 2 +", "3"},
		{"map-square", "[1 2 3]{.*}%", "[1 4 9]"},
		{"range", "5,", "[0 1 2 3 4]"},
		{"map-str-rot1", `"hello"{1+}%`, `"ifmmp"`},
		{"gcd-do-loop", "6 7 {.@\\%.} do ;", "1"},
		{"rotate-at", "1 2 3 4 @", "1 3 4 2"},
		{"split-slash", `"a,b,,c" "," /`, `["a" "b" "" "c"]`},
		{"split-percent", `"a,b,,c" "," %`, `["a" "b" "c"]`},
		{"sort-dollar", "[3 1 2]$", "[1 2 3]"},
		{"power", "5 3 ?", "125"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testEval(t, tt.src); got != tt.want {
				t.Errorf("%s => %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

// TestRepeatBlockNoErrors exercises `)`/`*` driving a block 256 times
// without error; the block just dups, so every entry on the resulting
// stack is still the original Int 0.
func TestRepeatBlockNoErrors(t *testing.T) {
	in := New(&bytes.Buffer{})
	stack, err := in.Run([]byte("255){.}* ;"), value.NewInt(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stack) != 256 {
		t.Fatalf("want 256 entries after 256 dups and one pop, got %d", len(stack))
	}
	for _, v := range stack {
		if value.ToGS(v) != "0" {
			t.Errorf("expected every entry to still read 0, got %s", value.ToGS(v))
		}
	}
}

func TestArrayBracketMark(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"[1 2 3]", "[1 2 3]"},
		{"1 [2 3]", "1 [2 3]"},
		{"[1 [2 3] 4]", "[1 [2 3] 4]"},
		{"1 2 [\\]", "[2 1]"},
	}
	for _, tt := range tests {
		if got := testEval(t, tt.src); got != tt.want {
			t.Errorf("%s => %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestDupSwapPop(t *testing.T) {
	if got := testEval(t, "5 ."); got != "5 5" {
		t.Errorf("dup: got %q", got)
	}
	if got := testEval(t, "1 2 \\"); got != "2 1" {
		t.Errorf("swap: got %q", got)
	}
	if got := testEval(t, "1 2 ;"); got != "1" {
		t.Errorf("pop: got %q", got)
	}
	if got := testEval(t, "1 2 \\ \\"); got != "1 2" {
		t.Errorf("double swap should be identity: got %q", got)
	}
}

func TestAtRotation(t *testing.T) {
	if got := testEval(t, "1 2 3 @ @ @"); got != "1 2 3" {
		t.Errorf("triple @ should be identity: got %q", got)
	}
}

func TestVariableBindAndGo(t *testing.T) {
	if got := testEval(t, "5:x; x x +"); got != "10" {
		t.Errorf("got %q", got)
	}
	if got := testEval(t, "{1+}:inc; 5 inc"); got != "6" {
		t.Errorf("a bound Blk variable runs on reference: got %q", got)
	}
}

func TestStackUnderflow(t *testing.T) {
	in := New(&bytes.Buffer{})
	_, err := in.Run([]byte("+"), nil)
	if err == nil {
		t.Fatal("expected a StackUnderflow error")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != StackUnderflow {
		t.Fatalf("got %v, want StackUnderflow", err)
	}
}

func TestDivideByZero(t *testing.T) {
	in := New(&bytes.Buffer{})
	_, err := in.Run([]byte("1 0 /"), nil)
	if err == nil {
		t.Fatal("expected an ArithmeticError")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != ArithmeticError {
		t.Fatalf("got %v, want ArithmeticError", err)
	}
}

func TestTypeError(t *testing.T) {
	in := New(&bytes.Buffer{})
	_, err := in.Run([]byte("{}1/"), nil)
	if err == nil {
		t.Fatal("expected a TypeError")
	}
	rerr, ok := err.(*RuntimeError)
	if !ok || rerr.Kind != TypeError {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestPrintPutsP(t *testing.T) {
	if _, out := testEvalWithOutput(t, `"hi" print`); out != "hi" {
		t.Errorf("print: got %q", out)
	}
	if _, out := testEvalWithOutput(t, `"hi" puts`); out != "hi\n" {
		t.Errorf("puts: got %q", out)
	}
	if _, out := testEvalWithOutput(t, `"hi" p`); out != "\"hi\"\n" {
		t.Errorf("p: got %q", out)
	}
}

func TestRandInRange(t *testing.T) {
	in := New(&bytes.Buffer{})
	stack, err := in.Run([]byte("100 rand 100 rand"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(stack) != 2 {
		t.Fatalf("want 2 values, got %d", len(stack))
	}
	for _, v := range stack {
		n, ok := v.(*value.Int)
		if !ok {
			t.Fatalf("rand pushed non-Int %v", v)
		}
		if n.V.Sign() < 0 || n.V.Int64() >= 100 {
			t.Errorf("rand result %v out of [0,100)", n.V)
		}
	}
}

func TestIfAndOrXor(t *testing.T) {
	if got := testEval(t, "1 {2}{3} if"); got != "2" {
		t.Errorf("if-true: got %q", got)
	}
	if got := testEval(t, "0 {2}{3} if"); got != "3" {
		t.Errorf("if-false: got %q", got)
	}
	if got := testEval(t, "0 5 and"); got != "0" {
		t.Errorf("and-falsey: got %q", got)
	}
	if got := testEval(t, "3 5 and"); got != "5" {
		t.Errorf("and-truthy: got %q", got)
	}
	if got := testEval(t, "0 5 or"); got != "5" {
		t.Errorf("or-falsey: got %q", got)
	}
	if got := testEval(t, "1 0 xor"); got != "1" {
		t.Errorf("xor: got %q", got)
	}
}

func TestBaseRoundTrip(t *testing.T) {
	if got := testEval(t, "100 16 base"); got != "[6 4]" {
		t.Errorf("base decompose: got %q", got)
	}
	if got := testEval(t, "[6 4] 16 base"); got != "100" {
		t.Errorf("base reassemble: got %q", got)
	}
}

func TestZip(t *testing.T) {
	if got := testEval(t, "[[1 2][3 4][5 6]] zip"); got != "[[1 3 5] [2 4 6]]" {
		t.Errorf("zip: got %q", got)
	}
}

func TestQuestionFind(t *testing.T) {
	if got := testEval(t, `[1 2 3] {2%0=} ?`); got != "2" {
		t.Errorf("find: got %q", got)
	}
	if got := testEval(t, `[1 2 3] 2 ?`); got != "1" {
		t.Errorf("index-of: got %q", got)
	}
}

func TestOpenCloseParen(t *testing.T) {
	if got := testEval(t, "[1 2 3]("); got != "[2 3] 1" {
		t.Errorf("(: got %q", got)
	}
	if got := testEval(t, "[1 2 3])"); got != "[1 2] 3" {
		t.Errorf("): got %q", got)
	}
	if got := testEval(t, "5("); got != "4" {
		t.Errorf("(  on Int: got %q", got)
	}
}
