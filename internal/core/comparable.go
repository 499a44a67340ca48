package core

import (
	"math"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

type Comparable interface {
	Value
	//Compare should return (0, false) if the values are not comparable. Otherwise it should return true and one of the following:
	// (-1) a < b
	// (0) a == b
	// (1) a > b
	// The Equal method of the implementations should be consistent with Compare.
	Compare(b Value) (result int, comparable bool)
}

func (b Bool) Compare(other Value) (result int, comparable bool) {
	return numberCompare(b, other)
}

func (i Int) Compare(other Value) (result int, comparable bool) {
	return numberCompare(i, other)
}

func (f Float) Compare(other Value) (result int, comparable bool) {
	return numberCompare(f, other)
}

func (s Str) Compare(other Value) (result int, comparable bool) {
	otherStr, ok := other.(Str)
	if !ok {
		//not comparable
		return
	}
	//byte order of UTF-8 strings is the code point order
	return strings.Compare(string(s), string(otherStr)), true
}

func (tuple *Tuple) Compare(other Value) (result int, comparable bool) {
	otherTuple, ok := other.(*Tuple)
	if !ok {
		return
	}
	result, err := sequenceCompare(tuple.elements, otherTuple.elements, Compare)
	return result, err == nil
}

func (list *List) Compare(other Value) (result int, comparable bool) {
	otherList, ok := other.(*List)
	if !ok {
		return
	}
	result, err := sequenceCompare(list.elements, otherList.elements, Compare)
	return result, err == nil
}

// Compare returns -1, 0 or 1 depending on whether a is less than, equal to or greater than b.
// The error is a *TypeError wrapping ErrNotComparable if the values cannot be ordered.
// Tuples and lists are compared element by element, the error then concerns the first
// pair of elements that cannot be ordered.
func Compare(a, b Value) (int, error) {
	return compare(a, b, Compare)
}

// Less reports whether a < b.
func Less(a, b Value) (bool, error) {
	result, err := Compare(a, b)
	return result < 0, err
}

// NaturalCompare is like Compare except that strings, including strings nested in tuples and lists,
// are compared in natural sort order: "item2" < "item10".
func NaturalCompare(a, b Value) (int, error) {
	aStr, ok1 := a.(Str)
	bStr, ok2 := b.(Str)
	if ok1 && ok2 {
		return stringCompareNaturalSortOrder(aStr, bStr), nil
	}
	return compare(a, b, NaturalCompare)
}

// NaturalLess reports whether a < b using NaturalCompare.
func NaturalLess(a, b Value) (bool, error) {
	result, err := NaturalCompare(a, b)
	return result < 0, err
}

func compare(a, b Value, nested func(a, b Value) (int, error)) (int, error) {
	switch a := a.(type) {
	case *Tuple:
		if b, ok := b.(*Tuple); ok {
			return sequenceCompare(a.elements, b.elements, nested)
		}
	case *List:
		if b, ok := b.(*List); ok {
			return sequenceCompare(a.elements, b.elements, nested)
		}
	case Comparable:
		if result, comparable := a.Compare(b); comparable {
			return result, nil
		}
	}
	return 0, fmtNotSupportedBetween("<", a, b)
}

func sequenceCompare(a, b []Value, compareElements func(a, b Value) (int, error)) (int, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Equal(b[i]) {
			continue
		}
		return compareElements(a[i], b[i])
	}
	return _intCompare(len(a), len(b)), nil
}

func numberCompare(a, b Value) (result int, comparable bool) {
	aInt, aIsInt := asInt(a)
	bInt, bIsInt := asInt(b)

	switch {
	case aIsInt && bIsInt:
		return _intCompare(aInt, bInt), true
	case aIsInt:
		if bFloat, ok := b.(Float); ok && !math.IsNaN(float64(bFloat)) {
			return intFloatCompare(aInt, float64(bFloat)), true
		}
		return
	case bIsInt:
		if aFloat, ok := a.(Float); ok && !math.IsNaN(float64(aFloat)) {
			return -intFloatCompare(bInt, float64(aFloat)), true
		}
		return
	}

	aFloat, ok1 := a.(Float)
	bFloat, ok2 := b.(Float)
	if !ok1 || !ok2 || math.IsNaN(float64(aFloat)) || math.IsNaN(float64(bFloat)) {
		//not comparable
		return
	}
	return _floatCompare(aFloat, bFloat), true
}

// intFloatCompare compares i and f (not NaN) without converting i to a float, which could round it.
func intFloatCompare(i int64, f float64) int {
	//the integral part of floats in [-2^63, 2^63) fits in an int64
	if f < -(1<<63) {
		return 1
	}
	if f >= 1<<63 {
		return -1
	}

	integral := math.Trunc(f)
	if result := _intCompare(i, int64(integral)); result != 0 {
		return result
	}
	//i is equal to the integral part, the fractional part decides
	return _floatCompare(integral, f)
}

func numberEqual(a, b Value) bool {
	result, comparable := numberCompare(a, b)
	return comparable && result == 0
}

func _intCompare[I constraints.Integer](i I, other I) int {
	if i < other {
		return -1
	}
	if i == other {
		return 0
	}
	return 1
}

func _floatCompare[F constraints.Float](f F, other F) int {
	if f < other {
		return -1
	}
	if f == other {
		return 0
	}
	return 1
}

// https://en.wikipedia.org/wiki/Natural_sort_order
func stringCompareNaturalSortOrder[S ~string](s S, other S) int {
	if s == other {
		return 0
	}
	if natural.Less(string(s), string(other)) {
		return -1
	}
	if natural.Less(string(other), string(s)) {
		return 1
	}
	//"01" and "1" are equivalent in natural order
	return strings.Compare(string(s), string(other))
}
