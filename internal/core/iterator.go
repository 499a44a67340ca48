package core

type Iterator interface {
	//Next advances the iterator, it returns false when there are no more values.
	Next() bool

	//Value returns the current value, it should only be called after Next returned true.
	Value() Value
}

type Iterable interface {
	Value
	Iterator() Iterator
}

// An Indexable is an Iterable with a known length and random access to its elements.
type Indexable interface {
	Iterable
	Len() int

	//At should panic if i is out of bounds.
	At(i int) Value
}

type indexableIterator struct {
	indexable Indexable
	i         int
}

func newIndexableIterator(indexable Indexable) *indexableIterator {
	return &indexableIterator{indexable: indexable, i: -1}
}

func (it *indexableIterator) Next() bool {
	if it.i+1 >= it.indexable.Len() {
		return false
	}
	it.i++
	return true
}

func (it *indexableIterator) Value() Value {
	return it.indexable.At(it.i)
}

// AsIterable returns v as an Iterable or a *TypeError if v is not iterable.
func AsIterable(v Value) (Iterable, error) {
	iterable, ok := v.(Iterable)
	if !ok {
		return nil, fmtNotIterable(v)
	}
	return iterable, nil
}

// Collect returns the values produced by v's iterator. A *TypeError is returned if v is not iterable.
func Collect(v Value) ([]Value, error) {
	iterable, err := AsIterable(v)
	if err != nil {
		return nil, err
	}

	var values []Value
	if indexable, ok := iterable.(Indexable); ok {
		values = make([]Value, 0, indexable.Len())
	}

	it := iterable.Iterator()
	for it.Next() {
		values = append(values, it.Value())
	}

	if values == nil {
		values = []Value{}
	}
	return values, nil
}
