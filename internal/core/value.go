package core

import (
	"unicode/utf8"

	"github.com/Destroid1669/MyLibrary/internal/prettyprint"
)

var (
	_ = []Value{Nil, Bool(true), Int(0), Float(0), Str(""), (*Tuple)(nil), (*List)(nil), (*Dict)(nil)}
	_ = []Comparable{Bool(true), Int(0), Float(0), Str(""), (*Tuple)(nil), (*List)(nil)}
)

// A Value is a value of the language: None, a boolean, a number, a string or a container.
type Value interface {
	//TypeName returns the name of the type as shown in error messages ('int', 'str', 'list', ...).
	TypeName() string

	//Equal should behave like the == operator.
	Equal(other Value) bool

	//Truthy reports whether the value is true in a boolean context.
	Truthy() bool

	PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig)
}

// KeyFunc maps a value to the value it is sorted or compared by.
type KeyFunc func(v Value) (Value, error)

// NilT is the type of None.
type NilT int

const Nil = NilT(0)

func (NilT) TypeName() string {
	return "NoneType"
}

func (NilT) Equal(other Value) bool {
	_, ok := other.(NilT)
	return ok
}

func (NilT) Truthy() bool {
	return false
}

type Bool bool

const (
	True  = Bool(true)
	False = Bool(false)
)

func (Bool) TypeName() string {
	return "bool"
}

func (b Bool) Equal(other Value) bool {
	return numberEqual(b, other)
}

func (b Bool) Truthy() bool {
	return bool(b)
}

// Int is a 64-bit integer.
type Int int64

func (Int) TypeName() string {
	return "int"
}

func (i Int) Equal(other Value) bool {
	return numberEqual(i, other)
}

func (i Int) Truthy() bool {
	return i != 0
}

type Float float64

func (Float) TypeName() string {
	return "float"
}

func (f Float) Equal(other Value) bool {
	return numberEqual(f, other)
}

func (f Float) Truthy() bool {
	return f != 0
}

// Str is an immutable sequence of Unicode code points, indexing and length are in code points.
type Str string

func (Str) TypeName() string {
	return "str"
}

func (s Str) Equal(other Value) bool {
	otherStr, ok := other.(Str)
	return ok && s == otherStr
}

func (s Str) Truthy() bool {
	return s != ""
}

func (s Str) Len() int {
	return utf8.RuneCountInString(string(s))
}

func (s Str) At(i int) Value {
	return Str([]rune(string(s))[i])
}

func (s Str) Iterator() Iterator {
	return &strIterator{runes: []rune(string(s)), i: -1}
}

type strIterator struct {
	runes []rune
	i     int
}

func (it *strIterator) Next() bool {
	if it.i+1 >= len(it.runes) {
		return false
	}
	it.i++
	return true
}

func (it *strIterator) Value() Value {
	return Str(it.runes[it.i])
}
