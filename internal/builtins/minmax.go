package builtins

import (
	"github.com/Destroid1669/MyLibrary/internal/core"
)

type MinMaxOptions struct {
	//if not nil the values are compared by their keys.
	Key core.KeyFunc

	//returned when the iterable is empty, Default can only be used with a single iterable argument.
	Default core.Value
}

// Min returns the smallest value of a single iterable argument or the smallest of two or more arguments.
// If several values are minimal the first one is returned.
func Min(args []core.Value, opts MinMaxOptions) (core.Value, error) {
	return minOrMax("min", args, opts, func(candidate, current core.Value) (bool, error) {
		return core.Less(candidate, current)
	})
}

// Max returns the largest value of a single iterable argument or the largest of two or more arguments.
// If several values are maximal the first one is returned.
func Max(args []core.Value, opts MinMaxOptions) (core.Value, error) {
	return minOrMax("max", args, opts, func(candidate, current core.Value) (bool, error) {
		return core.Less(current, candidate)
	})
}

func minOrMax(name string, args []core.Value, opts MinMaxOptions, better func(candidate, current core.Value) (bool, error)) (core.Value, error) {
	var values []core.Value

	switch len(args) {
	case 0:
		return nil, core.NewTypeError("%s expected at least 1 argument, got 0", name)
	case 1:
		var err error
		values, err = core.Collect(args[0])
		if err != nil {
			return nil, err
		}
	default:
		if opts.Default != nil {
			return nil, core.NewTypeError("Cannot specify a default for %s() with multiple positional arguments", name)
		}
		values = args
	}

	if len(values) == 0 {
		if opts.Default != nil {
			return opts.Default, nil
		}
		return nil, core.NewValueError("%s() arg is an empty sequence", name)
	}

	key := opts.Key
	if key == nil {
		key = identity
	}

	result := values[0]
	resultKey, err := key(result)
	if err != nil {
		return nil, err
	}

	for _, v := range values[1:] {
		k, err := key(v)
		if err != nil {
			return nil, err
		}

		isBetter, err := better(k, resultKey)
		if err != nil {
			return nil, err
		}
		if isBetter {
			result, resultKey = v, k
		}
	}

	return result, nil
}

func identity(v core.Value) (core.Value, error) {
	return v, nil
}
