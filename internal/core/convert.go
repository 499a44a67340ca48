package core

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// ValueFromGo converts a Go value to a Value. Supported Go values are nil, booleans, integers, floats,
// strings, slices of supported values, maps with string keys, and Values. Map keys are sorted to
// keep the conversion deterministic.
func ValueFromGo(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Nil, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintToInt(v)
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return uintToInt(v)
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return Str(v), nil
	case []any:
		elements := make([]Value, len(v))
		for i, e := range v {
			elem, err := ValueFromGo(e)
			if err != nil {
				return nil, err
			}
			elements[i] = elem
		}
		return newListNoCopy(elements), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		dict := NewDict()
		for _, k := range keys {
			value, err := ValueFromGo(v[k])
			if err != nil {
				return nil, err
			}
			dict.Set(Str(k), value)
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("cannot convert a Go value of type %T", v)
	}
}

func uintToInt[U constraints.Unsigned](u U) (Value, error) {
	if uint64(u) > math.MaxInt64 {
		return nil, NewValueError("integer %d is too large", u)
	}
	return Int(u), nil
}

// A GoConversion customizes the conversion performed by ToGo.
type GoConversion struct {
	//if not nil Dict returns the Go value of a dictionary, keys and the already converted values
	//are in insertion order. Dictionaries are converted to map[string]any otherwise.
	Dict func(keys []Str, values []any) any

	//if not nil Float returns the Go value of a float or an error if the float is not supported.
	Float func(f float64) (any, error)
}

// ToGo converts v to a Go value: nil, bool, int64, float64, string, []any or map[string]any,
// unless conv provides another conversion for floats and dictionaries.
func ToGo(v Value, conv GoConversion) (any, error) {
	switch v := v.(type) {
	case NilT:
		return nil, nil
	case Bool:
		return bool(v), nil
	case Int:
		return int64(v), nil
	case Float:
		if conv.Float != nil {
			return conv.Float(float64(v))
		}
		return float64(v), nil
	case Str:
		return string(v), nil
	case *Tuple:
		return sliceToGo(v.elements, conv)
	case *List:
		return sliceToGo(v.elements, conv)
	case *Dict:
		values, err := sliceToGo(v.values, conv)
		if err != nil {
			return nil, err
		}
		if conv.Dict != nil {
			return conv.Dict(v.Keys(), values), nil
		}

		m := make(map[string]any, len(values))
		for i, key := range v.keys {
			m[string(key)] = values[i]
		}
		return m, nil
	}
	return nil, NewTypeError("cannot convert a value of type '%s' to a Go value", v.TypeName())
}

func sliceToGo(elements []Value, conv GoConversion) ([]any, error) {
	s := make([]any, len(elements))
	for i, e := range elements {
		goValue, err := ToGo(e, conv)
		if err != nil {
			return nil, err
		}
		s[i] = goValue
	}
	return s, nil
}
