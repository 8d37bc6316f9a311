// Package config loads CLI-level setup that feeds the evaluator without
// being part of the language core: currently just the YAML prelude file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/golf-lang/golf/internal/value"
)

// Prelude is a parsed --prelude document: identifier names mapped to the
// literal values they should be bound to before a program runs.
type Prelude map[string]value.Value

// LoadPrelude reads and parses a YAML prelude file. Each document entry must
// be an int, a string, or a list (recursively) of the same, which become
// value.Int, value.Str, and value.Arr respectively.
func LoadPrelude(path string) (Prelude, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading prelude %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing prelude %s: %w", path, err)
	}
	out := make(Prelude, len(raw))
	for name, v := range raw {
		cv, err := toValue(v)
		if err != nil {
			return nil, fmt.Errorf("config: prelude entry %q: %w", name, err)
		}
		out[name] = cv
	}
	return out, nil
}

func toValue(v any) (value.Value, error) {
	switch x := v.(type) {
	case int:
		return value.NewInt(int64(x)), nil
	case int64:
		return value.NewInt(x), nil
	case uint64:
		return value.NewInt(int64(x)), nil
	case string:
		return value.NewStr(x), nil
	case []any:
		items := make([]value.Value, len(x))
		for i, elem := range x {
			cv, err := toValue(elem)
			if err != nil {
				return nil, err
			}
			items[i] = cv
		}
		return value.NewArr(items), nil
	default:
		return nil, fmt.Errorf("unsupported prelude value %v (%T)", v, v)
	}
}
