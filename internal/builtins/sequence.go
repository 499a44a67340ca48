package builtins

import (
	"strings"
	"unicode/utf8"

	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/Destroid1669/MyLibrary/internal/utils"
)

const (
	MAX_CODE_POINT = 0x10FFFF
)

type lengthy interface {
	Len() int
}

// Len returns the number of elements of a string (code points), tuple, list or dict.
func Len(v core.Value) (core.Int, error) {
	if l, ok := v.(lengthy); ok {
		return core.Int(l.Len()), nil
	}
	return 0, core.NewTypeError("object of type '%s' has no len()", v.TypeName())
}

// Reversed returns a new list containing the elements of a string, tuple, or list in reverse order.
// For a dict the keys are returned in reverse insertion order.
func Reversed(v core.Value) (*core.List, error) {
	var elements []core.Value

	switch v := v.(type) {
	case core.Indexable:
		elements = utils.Must(core.Collect(v))
		utils.Reverse(elements)
	case *core.Dict:
		keys := v.Keys()
		elements = make([]core.Value, len(keys))
		for i, key := range keys {
			elements[len(keys)-1-i] = key
		}
	default:
		return nil, core.NewTypeError("'%s' object is not reversible", v.TypeName())
	}

	return core.NewList(elements...), nil
}

// Contains implements the 'in' operator: substring search for strings, key membership for dicts and
// equality search for other iterables.
func Contains(v core.Value, container core.Value) (bool, error) {
	switch c := container.(type) {
	case core.Str:
		s, ok := v.(core.Str)
		if !ok {
			return false, core.NewTypeError("'in <string>' requires string as left operand, not %s", v.TypeName())
		}
		return strings.Contains(string(c), string(s)), nil
	case *core.Dict:
		key, ok := v.(core.Str)
		if !ok {
			return false, nil
		}
		_, found := c.Get(key)
		return found, nil
	case core.Iterable:
		it := c.Iterator()
		for it.Next() {
			if it.Value().Equal(v) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, core.NewTypeError("argument of type '%s' is not iterable", container.TypeName())
	}
}

// Chr returns the string containing the code point i.
func Chr(v core.Value) (core.Str, error) {
	i, err := core.AsInt64(v)
	if err != nil {
		return "", err
	}
	if i < 0 || i > MAX_CODE_POINT {
		return "", core.NewValueError("chr() arg not in range(0x110000)")
	}
	return core.Str(string(rune(i))), nil
}

// Ord returns the code point of a string of length 1.
func Ord(v core.Value) (core.Int, error) {
	s, ok := v.(core.Str)
	if !ok {
		return 0, core.NewTypeError("ord() expected string of length 1, but %s found", v.TypeName())
	}

	if count := utf8.RuneCountInString(string(s)); count != 1 {
		return 0, core.NewTypeError("ord() expected a character, but string of length %d found", count)
	}

	r, _ := utf8.DecodeRuneInString(string(s))
	return core.Int(r), nil
}
