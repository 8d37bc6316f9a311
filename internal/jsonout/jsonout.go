// Package jsonout renders a golf stack as JSON for --format json, the
// structured alternative to the default wrap-and-puts text output.
package jsonout

import (
	"errors"
	"math/big"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/golf-lang/golf/internal/value"
)

var errInvalidDoc = errors.New("jsonout: built an invalid JSON document")

// Render encodes stack (bottom first) as an indented JSON array.
func Render(stack []value.Value) (string, error) {
	doc := "[]"
	var err error
	for _, v := range stack {
		doc, err = sjson.Set(doc, "-1", jsonValue(v))
		if err != nil {
			return "", err
		}
	}
	if !gjson.Valid(doc) {
		return "", errInvalidDoc
	}
	return string(pretty.Pretty([]byte(doc))), nil
}

// jsonValue projects a golf Value into something sjson.Set can encode:
// Int fitting a float64 exactly becomes a JSON number; a too-large Int
// becomes its decimal string (Int is arbitrary precision, JSON numbers
// aren't); Str/Blk become the to_gs string; Arr recurses.
func jsonValue(v value.Value) any {
	switch x := v.(type) {
	case *value.Int:
		if fitsFloat64(x.V) {
			f, _ := new(big.Float).SetInt(x.V).Float64()
			return f
		}
		return x.V.String()
	case *value.Str:
		return value.ToGS(x)
	case *value.Blk:
		return value.ToGS(x)
	case *value.Arr:
		items := make([]any, len(x.Items))
		for i, item := range x.Items {
			items[i] = jsonValue(item)
		}
		return items
	default:
		return nil
	}
}

const maxSafeInt = 1 << 53

func fitsFloat64(n *big.Int) bool {
	if !n.IsInt64() {
		return false
	}
	v := n.Int64()
	return v > -maxSafeInt && v < maxSafeInt
}
