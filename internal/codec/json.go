package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

type jsonParser struct {
}

func (jsonParser) Validate(s string) bool {
	return gjson.Valid(s)
}

// Parse parses a JSON document, objects become dicts (key order is preserved) and arrays become lists.
// Integer literals that fit in an int64 become ints, other numbers become floats.
func (p jsonParser) Parse(s string) (core.Value, error) {
	if !p.Validate(s) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrInvalidInput)
	}
	return ConvertGJSONResult(gjson.Parse(s)), nil
}

// ConvertGJSONResult converts a gjson result to a value, a result that does not exist becomes None.
func ConvertGJSONResult(r gjson.Result) core.Value {
	switch r.Type {
	case gjson.Null:
		return core.Nil
	case gjson.True:
		return core.True
	case gjson.False:
		return core.False
	case gjson.String:
		return core.Str(r.Str)
	case gjson.Number:
		raw := strings.TrimSpace(r.Raw)
		if isIntegerLiteral(raw) {
			if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return core.Int(i)
			}
		}
		return core.Float(r.Num)
	}

	//gjson.JSON
	if r.IsArray() {
		list := core.NewList()
		r.ForEach(func(_, value gjson.Result) bool {
			list.Append(ConvertGJSONResult(value))
			return true
		})
		return list
	}

	dict := core.NewDict()
	r.ForEach(func(key, value gjson.Result) bool {
		dict.Set(core.Str(key.Str), ConvertGJSONResult(value))
		return true
	})
	return dict
}

func isIntegerLiteral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

type jsonEncoder struct {
}

func (jsonEncoder) Encode(v core.Value) ([]byte, error) {
	return EncodeJSON(v)
}

// EncodeJSON returns the JSON encoding of v, tuples are encoded as arrays and dict keys keep their order.
// NaN and infinite floats cannot be encoded.
func EncodeJSON(v core.Value) ([]byte, error) {
	jsonValue, err := toJSONCompatible(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonValue)
}

func toJSONCompatible(v core.Value) (any, error) {
	return core.ToGo(v, core.GoConversion{
		Dict: func(keys []core.Str, values []any) any {
			entries := make(orderedObject, len(keys))
			for i, key := range keys {
				entries[i] = orderedEntry{key: string(key), value: values[i]}
			}
			return entries
		},
		Float: func(f float64) (any, error) {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, core.NewValueError("out of range float values are not JSON compliant: %s", core.Repr(core.Float(f)))
			}
			return f, nil
		},
	})
}

type orderedEntry struct {
	key   string
	value any
}

// orderedObject is marshaled as a JSON object whose keys are in the same order as the entries.
type orderedObject []orderedEntry

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')

	for i, entry := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(entry.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// KeyFromJSONPath returns a key function that evaluates a gjson path against the JSON encoding of a value,
// the key of a value without a match is None.
func KeyFromJSONPath(path string) core.KeyFunc {
	return func(v core.Value) (core.Value, error) {
		encoded, err := EncodeJSON(v)
		if err != nil {
			return nil, err
		}
		return ConvertGJSONResult(gjson.GetBytes(encoded, path)), nil
	}
}
