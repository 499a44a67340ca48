package builtins

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/Destroid1669/MyLibrary/internal/core"
)

var (
	ErrIntegerOverflow = core.NewValueError("integer overflow")
)

// Sum adds the numbers produced by iterable to start (0 if nil), Int + Int stays an Int and a Float operand makes the result a Float.
func Sum(iterable core.Value, start core.Value) (core.Value, error) {
	if start == nil {
		start = core.Int(0)
	}

	if _, ok := start.(core.Str); ok {
		return nil, core.NewTypeError("sum() can't sum strings [use ''.join(seq) instead]")
	}

	values, err := core.AsIterable(iterable)
	if err != nil {
		return nil, err
	}

	total := start
	it := values.Iterator()
	for it.Next() {
		total, err = add(total, it.Value())
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func add(a, b core.Value) (core.Value, error) {
	if !core.IsNumber(a) || !core.IsNumber(b) {
		return nil, core.NewTypeError("unsupported operand type(s) for +: '%s' and '%s'", a.TypeName(), b.TypeName())
	}

	if core.IsIntegral(a) && core.IsIntegral(b) {
		x, y := mustInt(a), mustInt(b)
		s := x + y
		if (s > x) != (y > 0) {
			return nil, ErrIntegerOverflow
		}
		return core.Int(s), nil
	}

	x, _ := core.AsFloat64(a)
	y, _ := core.AsFloat64(b)
	return core.Float(x + y), nil
}

func mustInt(v core.Value) int64 {
	i, err := core.AsInt64(v)
	if err != nil {
		panic(err)
	}
	return i
}

// MAX_RANGE_LENGTH is the maximum number of integers Range returns, ranges are materialized as lists.
const MAX_RANGE_LENGTH = 1 << 24

// Range returns the list of integers from start (inclusive) to stop (exclusive) separated by step.
// Like its Python counterpart it accepts 1 (stop), 2 (start, stop) or 3 (start, stop, step) arguments.
func Range(args ...core.Value) (*core.List, error) {
	if len(args) == 0 {
		return nil, core.NewTypeError("range expected at least 1 argument, got 0")
	}
	if len(args) > 3 {
		return nil, core.NewTypeError("range expected at most 3 arguments, got %d", len(args))
	}

	integers := make([]int64, len(args))
	for i, arg := range args {
		n, err := core.AsInt64(arg)
		if err != nil {
			return nil, err
		}
		integers[i] = n
	}

	var start, stop, step int64 = 0, 0, 1
	switch len(integers) {
	case 1:
		stop = integers[0]
	case 2:
		start, stop = integers[0], integers[1]
	case 3:
		start, stop, step = integers[0], integers[1], integers[2]
	}

	if step == 0 {
		return nil, core.NewValueError("range() arg 3 must not be zero")
	}

	length := rangeLength(start, stop, step)
	if length > MAX_RANGE_LENGTH {
		return nil, core.NewValueError("range() result has too many items (%d), the maximum is %d", length, MAX_RANGE_LENGTH)
	}

	elements := make([]core.Value, length)
	i := start
	for index := range elements {
		elements[index] = core.Int(i)
		i += step
	}
	return core.NewList(elements...), nil
}

// rangeLength returns the number of integers in the range, the unsigned arithmetic cannot overflow.
func rangeLength(start, stop, step int64) uint64 {
	switch {
	case step > 0 && start < stop:
		return (uint64(stop)-uint64(start)-1)/uint64(step) + 1
	case step < 0 && start > stop:
		return (uint64(start)-uint64(stop)-1)/(-uint64(step)) + 1
	}
	return 0
}

// Bin returns the binary representation of an integer prefixed with "0b".
func Bin(v core.Value) (core.Str, error) {
	n, err := core.AsInt64(v)
	if err != nil {
		return "", err
	}

	if n < 0 {
		return core.Str("-0b" + strconv.FormatUint(uint64(-n), 2)), nil
	}
	return core.Str("0b" + strconv.FormatInt(n, 2)), nil
}

// Divmod returns the tuple (x // y, x % y), the quotient is rounded towards negative infinity and
// the remainder has the sign of y.
func Divmod(x, y core.Value) (*core.Tuple, error) {
	if !core.IsNumber(x) || !core.IsNumber(y) {
		return nil, core.NewTypeError("unsupported operand type(s) for divmod(): '%s' and '%s'", x.TypeName(), y.TypeName())
	}

	if core.IsIntegral(x) && core.IsIntegral(y) {
		a, b := mustInt(x), mustInt(y)
		if b == 0 {
			return nil, core.NewZeroDivisionError("integer division or modulo by zero")
		}
		if a == math.MinInt64 && b == -1 {
			return nil, ErrIntegerOverflow
		}

		q, r := a/b, a%b
		if r != 0 && (r < 0) != (b < 0) {
			q--
			r += b
		}
		return core.NewTuple(core.Int(q), core.Int(r)), nil
	}

	a, _ := core.AsFloat64(x)
	b, _ := core.AsFloat64(y)
	if b == 0 {
		return nil, core.NewZeroDivisionError("float divmod()")
	}

	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 {
		if (b < 0) != (mod < 0) {
			mod += b
			div -= 1
		}
	} else {
		mod = math.Copysign(0, b)
	}

	var floorDiv float64
	if div != 0 {
		floorDiv = math.Floor(div)
		if div-floorDiv > 0.5 {
			floorDiv += 1
		}
	} else {
		floorDiv = math.Copysign(0, a/b)
	}

	return core.NewTuple(core.Float(floorDiv), core.Float(mod)), nil
}

// Abs returns the absolute value of a number, booleans are treated as integers.
func Abs(v core.Value) (core.Value, error) {
	switch v := v.(type) {
	case core.Float:
		return core.Float(math.Abs(float64(v))), nil
	case core.Int, core.Bool:
		n := mustInt(v)
		if n == math.MinInt64 {
			return nil, ErrIntegerOverflow
		}
		if n < 0 {
			n = -n
		}
		return core.Int(n), nil
	}
	return nil, core.NewTypeError("bad operand type for abs(): '%s'", v.TypeName())
}

// Pow returns base ** exp, or base ** exp % mod if mod is not nil. A negative integer exponent
// gives a Float. mod requires integer arguments, the result then has the sign of mod.
func Pow(base, exp, mod core.Value) (core.Value, error) {
	if !core.IsNumber(base) || !core.IsNumber(exp) {
		return nil, core.NewTypeError("unsupported operand type(s) for ** or pow(): '%s' and '%s'", base.TypeName(), exp.TypeName())
	}

	if mod != nil {
		if !core.IsIntegral(base) || !core.IsIntegral(exp) || !core.IsIntegral(mod) {
			return nil, core.NewTypeError("pow() 3rd argument not allowed unless all arguments are integers")
		}
		m := mustInt(mod)
		if m == 0 {
			return nil, core.NewValueError("pow() 3rd argument cannot be 0")
		}
		e := mustInt(exp)
		if e < 0 {
			return nil, core.NewValueError("pow() 2nd argument cannot be negative when 3rd argument specified")
		}
		return core.Int(powMod(mustInt(base), e, m)), nil
	}

	if core.IsIntegral(base) && core.IsIntegral(exp) && mustInt(exp) >= 0 {
		result, ok := powInt(mustInt(base), mustInt(exp))
		if !ok {
			return nil, ErrIntegerOverflow
		}
		return core.Int(result), nil
	}

	x, _ := core.AsFloat64(base)
	y, _ := core.AsFloat64(exp)

	switch {
	case x == 0 && y < 0:
		return nil, core.NewZeroDivisionError("0.0 cannot be raised to a negative power")
	case x < 0 && !math.IsInf(y, 0) && y != math.Trunc(y):
		return nil, core.NewValueError("negative number cannot be raised to a fractional power")
	}

	result := math.Pow(x, y)
	if math.IsInf(result, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return nil, core.NewValueError("pow() result out of range")
	}
	return core.Float(result), nil
}

// powInt computes base ** exp (exp >= 0) by squaring, ok is false if the result overflows.
func powInt(base, exp int64) (result int64, ok bool) {
	result = 1
	for exp > 0 {
		if exp&1 == 1 {
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

// powMod computes base ** exp % mod (exp >= 0, mod != 0), the result has the sign of mod.
func powMod(base, exp, mod int64) int64 {
	m := absUint(mod)

	b := absUint(base) % m
	if base < 0 && b != 0 {
		b = m - b
	}

	result := 1 % m
	for e := uint64(exp); e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
	}

	r := int64(result)
	if mod < 0 && r != 0 {
		r += mod
	}
	return r
}

func absUint(n int64) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// Round rounds a number to ndigits decimal digits, halves are rounded to even. If ndigits is nil
// the result is an Int, otherwise it has the type of the number. ndigits can be negative.
func Round(number, ndigits core.Value) (core.Value, error) {
	if !core.IsNumber(number) {
		return nil, core.NewTypeError("type %s doesn't define __round__ method", number.TypeName())
	}

	if ndigits == nil {
		if core.IsIntegral(number) {
			return core.Int(mustInt(number)), nil
		}
		return floatToInt(math.RoundToEven(float64(number.(core.Float))))
	}

	digits, err := core.AsInt64(ndigits)
	if err != nil {
		return nil, err
	}

	if core.IsIntegral(number) {
		return roundInt(mustInt(number), digits)
	}
	return core.Float(roundFloat(float64(number.(core.Float)), digits)), nil
}

func floatToInt(f float64) (core.Value, error) {
	switch {
	case math.IsNaN(f):
		return nil, core.NewValueError("cannot convert float NaN to integer")
	case math.IsInf(f, 0):
		return nil, core.NewValueError("cannot convert float infinity to integer")
	case f < -(1<<63) || f >= 1<<63:
		return nil, ErrIntegerOverflow
	}
	return core.Int(f), nil
}

func roundInt(n, digits int64) (core.Value, error) {
	if digits >= 0 {
		return core.Int(n), nil
	}
	//|n| < 10^19 / 2
	if digits < -18 {
		return core.Int(0), nil
	}

	p := int64(1)
	for i := int64(0); i < -digits; i++ {
		p *= 10
	}

	q, r := n/p, n%p
	if r < 0 {
		q--
		r += p
	}
	if 2*r > p || (2*r == p && q%2 != 0) {
		q++
	}

	result, ok := mulInt(q, p)
	if !ok {
		return nil, ErrIntegerOverflow
	}
	return core.Int(result), nil
}

func roundFloat(f float64, digits int64) float64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0) || f == 0:
		return f
	case digits > 323:
		return f
	case digits < -308:
		return math.Copysign(0, f)
	case digits >= 0:
		//the decimal formatting is correctly rounded
		rounded, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', int(digits), 64), 64)
		return math.Copysign(rounded, f)
	}

	p := math.Pow10(int(-digits))
	return math.Copysign(math.RoundToEven(f/p)*p, f)
}
