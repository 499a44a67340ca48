package core

// A Tuple is an immutable sequence of values.
type Tuple struct {
	elements []Value
}

// NewTuple creates a tuple containing a copy of elements.
func NewTuple(elements ...Value) *Tuple {
	return &Tuple{elements: append([]Value{}, elements...)}
}

func (*Tuple) TypeName() string {
	return "tuple"
}

func (tuple *Tuple) Equal(other Value) bool {
	otherTuple, ok := other.(*Tuple)
	return ok && sequenceEqual(tuple.elements, otherTuple.elements)
}

func (tuple *Tuple) Truthy() bool {
	return len(tuple.elements) != 0
}

func (tuple *Tuple) Len() int {
	return len(tuple.elements)
}

func (tuple *Tuple) At(i int) Value {
	return tuple.elements[i]
}

// Get is like At but supports negative indexes, an *IndexError is returned if i is out of range.
func (tuple *Tuple) Get(i int) (Value, error) {
	index, ok := normalizeIndex(i, len(tuple.elements))
	if !ok {
		return nil, NewIndexError("tuple index out of range")
	}
	return tuple.elements[index], nil
}

func (tuple *Tuple) Iterator() Iterator {
	return newIndexableIterator(tuple)
}

// Elements returns a copy of the elements.
func (tuple *Tuple) Elements() []Value {
	return append([]Value{}, tuple.elements...)
}

func (tuple *Tuple) Index(v Value) (int, error) {
	if i := indexOf(tuple.elements, v); i >= 0 {
		return i, nil
	}
	return -1, NewValueError("tuple.index(x): x not in tuple")
}

func (tuple *Tuple) Count(v Value) int {
	return countOf(tuple.elements, v)
}

func sequenceEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if !e.Equal(b[i]) {
			return false
		}
	}
	return true
}

func indexOf(elements []Value, v Value) int {
	for i, e := range elements {
		if e.Equal(v) {
			return i
		}
	}
	return -1
}

func countOf(elements []Value, v Value) int {
	count := 0
	for _, e := range elements {
		if e.Equal(v) {
			count++
		}
	}
	return count
}

// normalizeIndex turns a negative index into a positive one and reports whether the index is in range.
func normalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	return i, i >= 0 && i < length
}
