package core

// A Dict maps string keys to values, iteration follows the insertion order of the keys.
// Dictionaries are not ordered: comparing two dictionaries with < fails.
type Dict struct {
	keys    []Str
	values  []Value
	indexes map[Str]int
}

func NewDict() *Dict {
	return &Dict{indexes: map[Str]int{}}
}

func (*Dict) TypeName() string {
	return "dict"
}

func (dict *Dict) Equal(other Value) bool {
	otherDict, ok := other.(*Dict)
	if !ok || dict.Len() != otherDict.Len() {
		return false
	}
	for i, key := range dict.keys {
		otherValue, ok := otherDict.Get(key)
		if !ok || !dict.values[i].Equal(otherValue) {
			return false
		}
	}
	return true
}

func (dict *Dict) Truthy() bool {
	return len(dict.keys) != 0
}

func (dict *Dict) Len() int {
	return len(dict.keys)
}

func (dict *Dict) Get(key Str) (Value, bool) {
	i, ok := dict.indexes[key]
	if !ok {
		return nil, false
	}
	return dict.values[i], true
}

// Set adds or updates the value associated with key, updating a key does not change its position.
func (dict *Dict) Set(key Str, v Value) {
	if i, ok := dict.indexes[key]; ok {
		dict.values[i] = v
		return
	}
	dict.indexes[key] = len(dict.keys)
	dict.keys = append(dict.keys, key)
	dict.values = append(dict.values, v)
}

// Keys returns the keys in insertion order.
func (dict *Dict) Keys() []Str {
	return append([]Str{}, dict.keys...)
}

// Items returns (key, value) tuples in insertion order.
func (dict *Dict) Items() []*Tuple {
	items := make([]*Tuple, len(dict.keys))
	for i, key := range dict.keys {
		items[i] = NewTuple(key, dict.values[i])
	}
	return items
}

// ForEach calls fn for each entry in insertion order.
func (dict *Dict) ForEach(fn func(key Str, v Value)) {
	for i, key := range dict.keys {
		fn(key, dict.values[i])
	}
}

// Iterator iterates over the keys.
func (dict *Dict) Iterator() Iterator {
	return newIndexableIterator(dictKeys{dict})
}

type dictKeys struct {
	*Dict
}

func (k dictKeys) At(i int) Value {
	return k.keys[i]
}
