package jsonout

import (
	"math/big"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/golf-lang/golf/internal/value"
)

func TestRenderMixedStack(t *testing.T) {
	arr := value.NewArr([]value.Value{value.NewInt(1), value.NewInt(2)})
	stack := []value.Value{value.NewInt(42), value.NewStr("hi"), arr}

	doc, err := Render(stack)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !gjson.Valid(doc) {
		t.Fatalf("Render produced invalid JSON:\n%s", doc)
	}
	result := gjson.Parse(doc)
	if !result.IsArray() || len(result.Array()) != 3 {
		t.Fatalf("expected a 3-element array, got %s", doc)
	}
	if got := result.Array()[0].Int(); got != 42 {
		t.Errorf("element 0 = %d, want 42", got)
	}
	if got := result.Array()[1].String(); got != "hi" {
		t.Errorf("element 1 = %q, want %q", got, "hi")
	}
}

func TestRenderBigIntAsString(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	doc, err := Render([]value.Value{value.NewBigInt(huge)})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	result := gjson.Parse(doc).Array()[0]
	if result.Type != gjson.String {
		t.Fatalf("expected a huge Int to render as a JSON string, got %s", doc)
	}
	if !strings.Contains(result.String(), huge.String()) {
		t.Errorf("rendered %q, want to contain %s", result.String(), huge.String())
	}
}
