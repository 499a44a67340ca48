package core

import (
	"github.com/Destroid1669/MyLibrary/internal/hybridsort"
	"github.com/Destroid1669/MyLibrary/internal/utils"
)

// A List is a mutable sequence of values.
type List struct {
	elements []Value
}

// NewList creates a list containing a copy of elements.
func NewList(elements ...Value) *List {
	return &List{elements: append([]Value{}, elements...)}
}

// NewListFrom creates a list from the values produced by iterating over v.
func NewListFrom(v Value) (*List, error) {
	elements, err := Collect(v)
	if err != nil {
		return nil, err
	}
	return &List{elements: elements}, nil
}

func newListNoCopy(elements []Value) *List {
	return &List{elements: utils.EmptySliceIfNil(elements)}
}

func (*List) TypeName() string {
	return "list"
}

func (list *List) Equal(other Value) bool {
	otherList, ok := other.(*List)
	return ok && sequenceEqual(list.elements, otherList.elements)
}

func (list *List) Truthy() bool {
	return len(list.elements) != 0
}

func (list *List) Len() int {
	return len(list.elements)
}

func (list *List) At(i int) Value {
	return list.elements[i]
}

// Get is like At but supports negative indexes, an *IndexError is returned if i is out of range.
func (list *List) Get(i int) (Value, error) {
	index, ok := normalizeIndex(i, len(list.elements))
	if !ok {
		return nil, NewIndexError("list index out of range")
	}
	return list.elements[index], nil
}

func (list *List) Set(i int, v Value) error {
	index, ok := normalizeIndex(i, len(list.elements))
	if !ok {
		return NewIndexError("list assignment index out of range")
	}
	list.elements[index] = v
	return nil
}

func (list *List) Iterator() Iterator {
	return newIndexableIterator(list)
}

// Elements returns a copy of the elements.
func (list *List) Elements() []Value {
	return utils.CopySlice(list.elements)
}

func (list *List) Append(v Value) {
	list.elements = append(list.elements, v)
}

// Extend appends the values produced by iterating over v.
func (list *List) Extend(v Value) error {
	values, err := Collect(v)
	if err != nil {
		return err
	}
	list.elements = append(list.elements, values...)
	return nil
}

// Insert inserts v before index i, out of range indexes are clamped.
func (list *List) Insert(i int, v Value) {
	length := len(list.elements)
	if i < 0 {
		i = max(i+length, 0)
	}
	i = min(i, length)

	list.elements = append(list.elements, nil)
	copy(list.elements[i+1:], list.elements[i:])
	list.elements[i] = v
}

// Pop removes and returns the element at index i, the last element if no index is provided.
func (list *List) Pop(index ...int) (Value, error) {
	if len(list.elements) == 0 {
		return nil, NewIndexError("pop from empty list")
	}

	i := len(list.elements) - 1
	if len(index) > 0 {
		var ok bool
		i, ok = normalizeIndex(index[0], len(list.elements))
		if !ok {
			return nil, NewIndexError("pop index out of range")
		}
	}

	v := list.elements[i]
	list.elements = append(list.elements[:i], list.elements[i+1:]...)
	return v, nil
}

// Remove removes the first element equal to v.
func (list *List) Remove(v Value) error {
	i := indexOf(list.elements, v)
	if i < 0 {
		return NewValueError("list.remove(x): x not in list")
	}
	list.elements = append(list.elements[:i], list.elements[i+1:]...)
	return nil
}

func (list *List) Index(v Value) (int, error) {
	if i := indexOf(list.elements, v); i >= 0 {
		return i, nil
	}
	return -1, NewValueError("%s is not in list", Repr(v))
}

func (list *List) Count(v Value) int {
	return countOf(list.elements, v)
}

func (list *List) Clear() {
	list.elements = list.elements[:0]
}

func (list *List) Copy() *List {
	return NewList(list.elements...)
}

func (list *List) Reverse() {
	utils.Reverse(list.elements)
}

// Sort sorts the list in place with a stable sort, if key is not nil the elements are ordered by their keys.
// If an error occurs (values not comparable or key failing) the list is left unchanged.
func (list *List) Sort(key KeyFunc, reverse bool) error {
	return list.SortWithConfig(key, Less, hybridsort.Config{Reverse: reverse})
}

// SortWithConfig is like Sort but the ordering and the sort configuration are provided by the caller.
func (list *List) SortWithConfig(key KeyFunc, less hybridsort.LessFunc[Value], config hybridsort.Config) error {
	if key == nil {
		return hybridsort.SortInPlace(list.elements, less, config)
	}
	return hybridsort.SortInPlaceByKey(list.elements, hybridsort.KeyFunc[Value, Value](key), less, config)
}
