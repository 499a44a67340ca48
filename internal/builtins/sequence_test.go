package builtins

import (
	"testing"

	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLen(t *testing.T) {
	dict := core.NewDict()
	dict.Set("a", core.Nil)

	testCases := []struct {
		value    core.Value
		expected core.Int
	}{
		{core.Str(""), 0},
		{core.Str("héllo"), 5},
		{core.NewTuple(core.Nil), 1},
		{core.NewList(core.Int(1), core.Int(2)), 2},
		{dict, 1},
	}

	for _, testCase := range testCases {
		length, err := Len(testCase.value)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, length)
		}
	}

	_, err := Len(core.Int(1))
	assert.ErrorIs(t, err, core.ErrType)
	assert.EqualError(t, err, "object of type 'int' has no len()")
}

func TestReversed(t *testing.T) {
	list := core.NewList(core.Int(1), core.Int(2), core.Int(3))
	result, err := Reversed(list)
	require.NoError(t, err)
	assert.Equal(t, "[3, 2, 1]", core.Repr(result))
	assert.Equal(t, "[1, 2, 3]", core.Repr(list))

	result, err = Reversed(core.Str("abc"))
	require.NoError(t, err)
	assert.Equal(t, "['c', 'b', 'a']", core.Repr(result))

	dict := core.NewDict()
	dict.Set("x", core.Nil)
	dict.Set("y", core.Nil)
	result, err = Reversed(dict)
	require.NoError(t, err)
	assert.Equal(t, "['y', 'x']", core.Repr(result))

	_, err = Reversed(core.Float(1))
	assert.ErrorIs(t, err, core.ErrType)
	assert.EqualError(t, err, "'float' object is not reversible")
}

func TestContains(t *testing.T) {
	dict := core.NewDict()
	dict.Set("key", core.Int(1))

	testCases := []struct {
		value, container core.Value
		expected         bool
	}{
		{core.Str("ell"), core.Str("hello"), true},
		{core.Str(""), core.Str(""), true},
		{core.Str("x"), core.Str("hello"), false},
		{core.Float(2), core.NewList(core.Int(1), core.Int(2)), true},
		{core.Int(3), core.NewTuple(core.Int(1)), false},
		{core.Str("key"), dict, true},
		{core.Int(1), dict, false},
	}

	for _, testCase := range testCases {
		result, err := Contains(testCase.value, testCase.container)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, result, "%s in %s", core.Repr(testCase.value), core.Repr(testCase.container))
		}
	}

	_, err := Contains(core.Int(1), core.Str("1"))
	assert.ErrorIs(t, err, core.ErrType)
	assert.EqualError(t, err, "'in <string>' requires string as left operand, not int")

	_, err = Contains(core.Int(1), core.Int(1))
	assert.EqualError(t, err, "argument of type 'int' is not iterable")
}

func TestChrOrd(t *testing.T) {
	s, err := Chr(core.Int(97))
	require.NoError(t, err)
	assert.Equal(t, core.Str("a"), s)

	s, err = Chr(core.Int(0x1F600))
	require.NoError(t, err)
	assert.Equal(t, core.Str("😀"), s)

	_, err = Chr(core.Int(0x110000))
	assert.ErrorIs(t, err, core.ErrValue)
	assert.EqualError(t, err, "chr() arg not in range(0x110000)")

	_, err = Chr(core.Int(-1))
	assert.ErrorIs(t, err, core.ErrValue)

	i, err := Ord(core.Str("é"))
	require.NoError(t, err)
	assert.Equal(t, core.Int(233), i)

	_, err = Ord(core.Str("ab"))
	assert.ErrorIs(t, err, core.ErrType)
	assert.EqualError(t, err, "ord() expected a character, but string of length 2 found")

	_, err = Ord(core.Int(1))
	assert.EqualError(t, err, "ord() expected string of length 1, but int found")
}
