package builtins

import (
	"math"
	"strings"
	"testing"

	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	testCases := []struct {
		iterable core.Value
		start    core.Value
		expected core.Value
	}{
		{core.NewList(), nil, core.Int(0)},
		{core.NewList(core.Int(1), core.Int(2), core.Int(3)), nil, core.Int(6)},
		{core.NewList(core.Int(1), core.Float(2.5)), nil, core.Float(3.5)},
		{core.NewTuple(core.True, core.True), nil, core.Int(2)},
		{core.NewList(core.Int(1)), core.Float(0.5), core.Float(1.5)},
		{core.NewList(), core.Int(10), core.Int(10)},
	}

	for _, testCase := range testCases {
		result, err := Sum(testCase.iterable, testCase.start)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, result, core.Repr(testCase.iterable))
		}
	}

	t.Run("strings", func(t *testing.T) {
		_, err := Sum(core.NewList(core.Str("a")), core.Str(""))
		assert.ErrorIs(t, err, core.ErrType)
		assert.EqualError(t, err, "sum() can't sum strings [use ''.join(seq) instead]")
	})

	t.Run("non numeric element", func(t *testing.T) {
		_, err := Sum(core.NewList(core.Int(1), core.Str("a")), nil)
		assert.EqualError(t, err, "unsupported operand type(s) for +: 'int' and 'str'")
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Sum(core.NewList(core.Int(math.MaxInt64), core.Int(1)), nil)
		assert.ErrorIs(t, err, core.ErrValue)

		_, err = Sum(core.NewList(core.Int(math.MinInt64), core.Int(-1)), nil)
		assert.ErrorIs(t, err, core.ErrValue)
	})
}

func TestRange(t *testing.T) {
	testCases := []struct {
		args     []core.Value
		expected string
	}{
		{[]core.Value{core.Int(5)}, "[0, 1, 2, 3, 4]"},
		{[]core.Value{core.Int(-1)}, "[]"},
		{[]core.Value{core.Int(2), core.Int(5)}, "[2, 3, 4]"},
		{[]core.Value{core.Int(1), core.Int(10), core.Int(3)}, "[1, 4, 7]"},
		{[]core.Value{core.Int(5), core.Int(0), core.Int(-2)}, "[5, 3, 1]"},
		{[]core.Value{core.Int(0), core.Int(5), core.Int(-1)}, "[]"},
		{[]core.Value{core.True, core.Int(3)}, "[1, 2]"},
		{[]core.Value{core.Int(math.MaxInt64 - 2), core.Int(math.MaxInt64), core.Int(5)}, "[9223372036854775805]"},
		{[]core.Value{core.Int(math.MinInt64 + 1), core.Int(math.MinInt64), core.Int(-1)}, "[-9223372036854775807]"},
	}

	for _, testCase := range testCases {
		result, err := Range(testCase.args...)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, core.Repr(result))
		}
	}

	t.Run("errors", func(t *testing.T) {
		_, err := Range()
		assert.EqualError(t, err, "range expected at least 1 argument, got 0")

		_, err = Range(core.Int(1), core.Int(2), core.Int(3), core.Int(4))
		assert.EqualError(t, err, "range expected at most 3 arguments, got 4")

		_, err = Range(core.Int(1), core.Int(2), core.Int(0))
		assert.ErrorIs(t, err, core.ErrValue)
		assert.EqualError(t, err, "range() arg 3 must not be zero")

		_, err = Range(core.Float(1))
		assert.ErrorIs(t, err, core.ErrType)
		assert.EqualError(t, err, "'float' object cannot be interpreted as an integer")
	})

	t.Run("too many items", func(t *testing.T) {
		_, err := Range(core.Int(10_000_000_000))
		assert.ErrorIs(t, err, core.ErrValue)
		assert.EqualError(t, err, "range() result has too many items (10000000000), the maximum is 16777216")

		_, err = Range(core.Int(math.MinInt64), core.Int(math.MaxInt64))
		assert.ErrorIs(t, err, core.ErrValue)

		assert.EqualValues(t, MAX_RANGE_LENGTH, rangeLength(0, MAX_RANGE_LENGTH, 1))
		assert.EqualValues(t, 2, rangeLength(math.MaxInt64, math.MinInt64, math.MinInt64))
	})
}

func TestBin(t *testing.T) {
	testCases := []struct {
		value    core.Value
		expected core.Str
	}{
		{core.Int(0), "0b0"},
		{core.Int(5), "0b101"},
		{core.Int(-5), "-0b101"},
		{core.True, "0b1"},
		{core.Int(math.MinInt64), core.Str("-0b1" + strings.Repeat("0", 63))},
	}

	for _, testCase := range testCases {
		result, err := Bin(testCase.value)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, result)
		}
	}

	_, err := Bin(core.Str("1"))
	assert.ErrorIs(t, err, core.ErrType)
}

func TestDivmod(t *testing.T) {
	testCases := []struct {
		x, y     core.Value
		expected string
	}{
		{core.Int(7), core.Int(2), "(3, 1)"},
		{core.Int(-7), core.Int(2), "(-4, 1)"},
		{core.Int(7), core.Int(-2), "(-4, -1)"},
		{core.Int(-7), core.Int(-2), "(3, -1)"},
		{core.Int(6), core.Int(3), "(2, 0)"},
		{core.True, core.Int(2), "(0, 1)"},
		{core.Float(7.5), core.Int(2), "(3.0, 1.5)"},
		{core.Float(-7.5), core.Int(2), "(-4.0, 0.5)"},
		{core.Int(7), core.Float(-2), "(-4.0, -1.0)"},
		{core.Float(6), core.Float(3), "(2.0, 0.0)"},
	}

	for _, testCase := range testCases {
		result, err := Divmod(testCase.x, testCase.y)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, core.Repr(result), "divmod(%s, %s)", core.Repr(testCase.x), core.Repr(testCase.y))
		}
	}

	t.Run("division by zero", func(t *testing.T) {
		_, err := Divmod(core.Int(1), core.Int(0))
		assert.ErrorIs(t, err, core.ErrZeroDivision)
		assert.EqualError(t, err, "integer division or modulo by zero")

		_, err = Divmod(core.Float(1), core.False)
		assert.ErrorIs(t, err, core.ErrZeroDivision)
	})

	t.Run("non numeric operand", func(t *testing.T) {
		_, err := Divmod(core.Str("a"), core.Int(1))
		require.Error(t, err)
		assert.EqualError(t, err, "unsupported operand type(s) for divmod(): 'str' and 'int'")
	})
}

func TestAbs(t *testing.T) {
	testCases := []struct {
		value    core.Value
		expected core.Value
	}{
		{core.Int(-3), core.Int(3)},
		{core.Int(3), core.Int(3)},
		{core.True, core.Int(1)},
		{core.Float(-2.5), core.Float(2.5)},
		{core.Float(math.Inf(-1)), core.Float(math.Inf(1))},
	}

	for _, testCase := range testCases {
		result, err := Abs(testCase.value)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, result)
		}
	}

	_, err := Abs(core.Int(math.MinInt64))
	assert.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = Abs(core.Str("a"))
	assert.EqualError(t, err, "bad operand type for abs(): 'str'")
}

func TestPow(t *testing.T) {
	testCases := []struct {
		base, exp, mod core.Value
		expected       core.Value
	}{
		{core.Int(2), core.Int(10), nil, core.Int(1024)},
		{core.Int(-3), core.Int(3), nil, core.Int(-27)},
		{core.Int(5), core.Int(0), nil, core.Int(1)},
		{core.Int(2), core.Int(62), nil, core.Int(1 << 62)},
		{core.Int(-2), core.Int(63), nil, core.Int(math.MinInt64)},
		{core.Int(2), core.Int(-1), nil, core.Float(0.5)},
		{core.Float(2), core.Int(3), nil, core.Float(8)},
		{core.Int(4), core.Float(0.5), nil, core.Float(2)},
		{core.Float(-8), core.Int(3), nil, core.Float(-512)},
		{core.Int(3), core.Int(4), core.Int(5), core.Int(1)},
		{core.Int(-2), core.Int(3), core.Int(5), core.Int(2)},
		{core.Int(-2), core.Int(3), core.Int(-5), core.Int(-3)},
		{core.Int(2), core.Int(0), core.Int(1), core.Int(0)},
		{core.Int(math.MaxInt64), core.Int(2), core.Int(math.MaxInt64 - 1), core.Int(1)},
	}

	for _, testCase := range testCases {
		result, err := Pow(testCase.base, testCase.exp, testCase.mod)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, result, "%s ** %s", core.Repr(testCase.base), core.Repr(testCase.exp))
		}
	}

	t.Run("errors", func(t *testing.T) {
		_, err := Pow(core.Int(2), core.Int(63), nil)
		assert.ErrorIs(t, err, ErrIntegerOverflow)

		_, err = Pow(core.Int(0), core.Int(-1), nil)
		assert.ErrorIs(t, err, core.ErrZeroDivision)
		assert.EqualError(t, err, "0.0 cannot be raised to a negative power")

		_, err = Pow(core.Float(-8), core.Float(1.0/3), nil)
		assert.ErrorIs(t, err, core.ErrValue)

		_, err = Pow(core.Float(10), core.Int(400), nil)
		assert.EqualError(t, err, "pow() result out of range")

		_, err = Pow(core.Int(2), core.Int(3), core.Int(0))
		assert.EqualError(t, err, "pow() 3rd argument cannot be 0")

		_, err = Pow(core.Float(2), core.Int(3), core.Int(5))
		assert.ErrorIs(t, err, core.ErrType)

		_, err = Pow(core.Str("a"), core.Int(3), nil)
		assert.EqualError(t, err, "unsupported operand type(s) for ** or pow(): 'str' and 'int'")
	})
}

func TestRound(t *testing.T) {
	testCases := []struct {
		number, ndigits core.Value
		expected        core.Value
	}{
		{core.Float(2.5), nil, core.Int(2)},
		{core.Float(3.5), nil, core.Int(4)},
		{core.Float(-0.5), nil, core.Int(0)},
		{core.Float(1.6), nil, core.Int(2)},
		{core.Int(7), nil, core.Int(7)},
		{core.True, nil, core.Int(1)},
		{core.Float(2.675), core.Int(2), core.Float(2.67)},
		{core.Float(0.125), core.Int(2), core.Float(0.12)},
		{core.Float(1.5), core.Int(0), core.Float(2)},
		{core.Float(1234.5), core.Int(-2), core.Float(1200)},
		{core.Float(150), core.Int(-2), core.Float(200)},
		{core.Int(15), core.Int(-1), core.Int(20)},
		{core.Int(25), core.Int(-1), core.Int(20)},
		{core.Int(-15), core.Int(-1), core.Int(-20)},
		{core.Int(1234), core.Int(2), core.Int(1234)},
		{core.Int(math.MaxInt64), core.Int(-19), core.Int(0)},
	}

	for _, testCase := range testCases {
		result, err := Round(testCase.number, testCase.ndigits)
		if assert.NoError(t, err) {
			assert.Equal(t, testCase.expected, result, core.Repr(testCase.number))
		}
	}

	t.Run("negative zero", func(t *testing.T) {
		result, err := Round(core.Float(-0.4), core.Int(0))
		require.NoError(t, err)
		assert.True(t, math.Signbit(float64(result.(core.Float))))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Round(core.Float(math.NaN()), nil)
		assert.EqualError(t, err, "cannot convert float NaN to integer")

		_, err = Round(core.Float(1e300), nil)
		assert.ErrorIs(t, err, ErrIntegerOverflow)

		_, err = Round(core.Int(math.MaxInt64), core.Int(-1))
		assert.ErrorIs(t, err, ErrIntegerOverflow)

		_, err = Round(core.Float(1), core.Float(1))
		assert.ErrorIs(t, err, core.ErrType)

		_, err = Round(core.Str("1"), nil)
		assert.EqualError(t, err, "type str doesn't define __round__ method")
	})
}
