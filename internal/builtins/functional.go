package builtins

import (
	"strconv"

	"github.com/Destroid1669/MyLibrary/internal/core"
)

// A Function is a callable passed to Map, Filter and Reduce.
type Function func(args ...core.Value) (core.Value, error)

// Any reports whether at least one value produced by iterable is truthy, the iteration stops at the first truthy value.
func Any(iterable core.Value) (bool, error) {
	it, err := iterator(iterable)
	if err != nil {
		return false, err
	}
	for it.Next() {
		if it.Value().Truthy() {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether all values produced by iterable are truthy, All returns true for an empty iterable.
func All(iterable core.Value) (bool, error) {
	it, err := iterator(iterable)
	if err != nil {
		return false, err
	}
	for it.Next() {
		if !it.Value().Truthy() {
			return false, nil
		}
	}
	return true, nil
}

// Map calls fn with one element of each iterable at a time, it stops when the shortest iterable is exhausted.
func Map(fn Function, iterables ...core.Value) (*core.List, error) {
	if len(iterables) == 0 {
		return nil, core.NewTypeError("map() must have at least two arguments.")
	}

	iterators, err := iterators(iterables)
	if err != nil {
		return nil, err
	}

	result := core.NewList()
	args := make([]core.Value, len(iterators))
	for {
		for i, it := range iterators {
			if !it.Next() {
				return result, nil
			}
			args[i] = it.Value()
		}

		v, err := fn(args...)
		if err != nil {
			return nil, err
		}
		result.Append(v)
	}
}

// Filter returns the list of values for which fn returns a truthy value, if fn is nil the truthy values are kept.
func Filter(fn Function, iterable core.Value) (*core.List, error) {
	it, err := iterator(iterable)
	if err != nil {
		return nil, err
	}

	result := core.NewList()
	for it.Next() {
		v := it.Value()
		keep := v
		if fn != nil {
			keep, err = fn(v)
			if err != nil {
				return nil, err
			}
		}
		if keep.Truthy() {
			result.Append(v)
		}
	}
	return result, nil
}

// Reduce cumulatively applies fn to the values produced by iterable, from left to right.
// If initial is provided it is placed before the values.
func Reduce(fn Function, iterable core.Value, initial ...core.Value) (core.Value, error) {
	if len(initial) > 1 {
		return nil, core.NewTypeError("reduce expected at most 3 arguments, got %d", len(initial)+2)
	}

	it, err := iterator(iterable)
	if err != nil {
		return nil, core.NewTypeError("reduce() arg 2 must support iteration")
	}

	var accumulator core.Value
	if len(initial) == 1 {
		accumulator = initial[0]
	} else if it.Next() {
		accumulator = it.Value()
	} else {
		return nil, core.NewTypeError("reduce() of empty iterable with no initial value")
	}

	for it.Next() {
		accumulator, err = fn(accumulator, it.Value())
		if err != nil {
			return nil, err
		}
	}
	return accumulator, nil
}

// Enumerate returns the list of (index, value) tuples, the first index is start (0 if nil).
func Enumerate(iterable core.Value, start core.Value) (*core.List, error) {
	var index int64
	if start != nil {
		var err error
		index, err = core.AsInt64(start)
		if err != nil {
			return nil, err
		}
	}

	it, err := iterator(iterable)
	if err != nil {
		return nil, err
	}

	result := core.NewList()
	for it.Next() {
		result.Append(core.NewTuple(core.Int(index), it.Value()))
		index++
	}
	return result, nil
}

// Zip returns the list of tuples whose i-th tuple contains the i-th element of each iterable.
// By default the result is as long as the shortest iterable, if strict is true iterables of
// different lengths cause a *core.ValueError.
func Zip(strict bool, iterables ...core.Value) (*core.List, error) {
	iterators, err := iterators(iterables)
	if err != nil {
		return nil, err
	}

	result := core.NewList()
	if len(iterators) == 0 {
		return result, nil
	}

	for {
		elements := make([]core.Value, len(iterators))

		for i, it := range iterators {
			if it.Next() {
				elements[i] = it.Value()
				continue
			}

			if !strict {
				return result, nil
			}
			if i > 0 {
				return nil, core.NewValueError("zip() argument %d is shorter than %s", i+1, fmtPrecedingArguments(i))
			}

			//the first iterable is exhausted, the other ones should be too.
			for j, other := range iterators[1:] {
				if other.Next() {
					return nil, core.NewValueError("zip() argument %d is longer than %s", j+2, fmtPrecedingArguments(j+1))
				}
			}
			return result, nil
		}

		result.Append(core.NewTuple(elements...))
	}
}

func fmtPrecedingArguments(count int) string {
	if count == 1 {
		return "argument 1"
	}
	return "arguments 1-" + strconv.Itoa(count)
}

func iterator(v core.Value) (core.Iterator, error) {
	iterable, err := core.AsIterable(v)
	if err != nil {
		return nil, err
	}
	return iterable.Iterator(), nil
}

func iterators(values []core.Value) ([]core.Iterator, error) {
	iterators := make([]core.Iterator, len(values))
	for i, v := range values {
		it, err := iterator(v)
		if err != nil {
			return nil, err
		}
		iterators[i] = it
	}
	return iterators, nil
}
