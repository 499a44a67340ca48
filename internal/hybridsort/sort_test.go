package hybridsort

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	s string
	n int
}

func TestSort(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		sorted, err := Sort([]int{}, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []int{}, sorted)

		sorted, err = Sort[int](nil, Ordered[int], Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []int{}, sorted)
	})

	t.Run("single element", func(t *testing.T) {
		sorted, err := Sort([]int{1}, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, sorted)
	})

	t.Run("duplicates", func(t *testing.T) {
		sorted, err := Sort([]int{5, 3, 5, 1, 4, 4}, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 4, 4, 5, 5}, sorted)
	})

	t.Run("reverse", func(t *testing.T) {
		sorted, err := Sort([]int{2, 1}, Ordered[int], Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, sorted)

		sorted, err = Sort([]int{1, 2, 3, 2}, Ordered[int], Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 2, 1}, sorted)
	})

	t.Run("reverse keeps the original order of equal elements", func(t *testing.T) {
		input := []tagged{{1, "a"}, {2, "b"}, {1, "c"}, {2, "d"}}

		sorted, err := Sort(input, lessTagged, Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []tagged{{2, "b"}, {2, "d"}, {1, "a"}, {1, "c"}}, sorted)
	})

	t.Run("already sorted input", func(t *testing.T) {
		sorted, err := Sort([]int{1, 2, 3, 4, 5}, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
	})

	t.Run("input is not modified", func(t *testing.T) {
		input := []int{3, 1, 2}
		_, err := Sort(input, Ordered[int], Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, input)
	})

	t.Run("strings", func(t *testing.T) {
		sorted, err := Sort([]string{"b", "c", "a", "ab"}, Ordered[string], Config{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "ab", "b", "c"}, sorted)
	})

	t.Run("comparison error", func(t *testing.T) {
		errCmp := errors.New("not comparable")
		input := []int{3, 1, 2}

		sorted, err := Sort(input, func(a, b int) (bool, error) {
			if a == 2 || b == 2 {
				return false, errCmp
			}
			return a < b, nil
		}, Config{})

		assert.ErrorIs(t, err, errCmp)
		assert.Nil(t, sorted)
		assert.Equal(t, []int{3, 1, 2}, input)
	})

	t.Run("debug logs", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		logger := zerolog.New(buf).Level(zerolog.DebugLevel)

		_, err := Sort([]int{3, 1, 2}, Ordered[int], Config{Logger: &logger})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"runs":2`)
		assert.Contains(t, buf.String(), `"length":3`)
	})
}

func TestSortByKey(t *testing.T) {
	second := func(p pair) (int, error) { return p.n, nil }
	first := func(p pair) (string, error) { return p.s, nil }

	t.Run("elements are returned, not keys", func(t *testing.T) {
		input := []pair{{"b", 2}, {"a", 1}, {"a", 2}}

		sorted, err := SortByKey(input, second, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []pair{{"a", 1}, {"b", 2}, {"a", 2}}, sorted)
	})

	t.Run("duplicate keys are neither lost nor duplicated", func(t *testing.T) {
		input := []pair{{"x", 1}, {"y", 1}, {"x", 1}, {"z", 0}, {"y", 1}}

		sorted, err := SortByKey(input, second, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []pair{{"z", 0}, {"x", 1}, {"y", 1}, {"x", 1}, {"y", 1}}, sorted)
	})

	t.Run("tagged duplicates", func(t *testing.T) {
		input := []pair{{"a", 5}, {"b", 3}, {"c", 5}}

		sorted, err := SortByKey(input, second, Ordered[int], Config{})
		require.NoError(t, err)
		assert.Equal(t, []pair{{"b", 3}, {"a", 5}, {"c", 5}}, sorted)
	})

	t.Run("reverse", func(t *testing.T) {
		input := []pair{{"b", 2}, {"a", 1}, {"a", 2}, {"c", 1}}

		sorted, err := SortByKey(input, second, Ordered[int], Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []pair{{"b", 2}, {"a", 2}, {"a", 1}, {"c", 1}}, sorted)

		sorted, err = SortByKey(input, first, Ordered[string], Config{Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []pair{{"c", 1}, {"b", 2}, {"a", 1}, {"a", 2}}, sorted)
	})

	t.Run("key is called once per element", func(t *testing.T) {
		calls := 0
		_, err := SortByKey([]int{4, 3, 2, 1, 0}, func(e int) (int, error) {
			calls++
			return -e, nil
		}, Ordered[int], Config{})

		require.NoError(t, err)
		assert.Equal(t, 5, calls)
	})

	t.Run("key error", func(t *testing.T) {
		errKey := errors.New("bad element")

		sorted, err := SortByKey([]int{1, 2, 3}, func(e int) (int, error) {
			if e == 2 {
				return 0, errKey
			}
			return e, nil
		}, Ordered[int], Config{})

		assert.ErrorIs(t, err, ErrKeyFunctionFailed)
		assert.ErrorIs(t, err, errKey)
		assert.Nil(t, sorted)
	})
}

func TestSortInPlace(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		seq := []int{3, 1, 2}
		require.NoError(t, SortInPlace(seq, Ordered[int], Config{}))
		assert.Equal(t, []int{1, 2, 3}, seq)
	})

	t.Run("by key", func(t *testing.T) {
		seq := []pair{{"b", 2}, {"a", 1}}
		require.NoError(t, SortInPlaceByKey(seq, func(p pair) (string, error) { return p.s, nil }, Ordered[string], Config{}))
		assert.Equal(t, []pair{{"a", 1}, {"b", 2}}, seq)
	})

	t.Run("the slice is unchanged on error", func(t *testing.T) {
		errCmp := errors.New("cmp")
		seq := []int{3, 1, 0, 2}

		calls := 0
		err := SortInPlace(seq, func(a, b int) (bool, error) {
			calls++
			if calls > 3 {
				return false, errCmp
			}
			return a < b, nil
		}, Config{})

		assert.ErrorIs(t, err, errCmp)
		assert.Equal(t, []int{3, 1, 0, 2}, seq)
	})
}

func TestSortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randomTagged := func() []tagged {
		n := rng.Intn(60)
		seq := make([]tagged, n)
		for i := range seq {
			seq[i] = tagged{n: rng.Intn(8), tag: string(rune('a' + i%26))}
		}
		return seq
	}

	for iteration := 0; iteration < 200; iteration++ {
		input := randomTagged()

		sorted, err := Sort(input, lessTagged, Config{})
		require.NoError(t, err)

		//permutation
		require.Len(t, sorted, len(input))
		require.ElementsMatch(t, input, sorted)

		//order
		ok, err := IsSorted(sorted, lessTagged)
		require.NoError(t, err)
		require.True(t, ok)

		//stability: the standard library's stable sort is the reference.
		expected := slices.Clone(input)
		slices.SortStableFunc(expected, func(a, b tagged) int { return a.n - b.n })
		require.Equal(t, expected, sorted)

		//idempotence
		again, err := Sort(sorted, lessTagged, Config{})
		require.NoError(t, err)
		require.Equal(t, sorted, again)

		//reverse: stable descending order
		reversed, err := Sort(input, lessTagged, Config{Reverse: true})
		require.NoError(t, err)

		expectedDesc := slices.Clone(input)
		slices.SortStableFunc(expectedDesc, func(a, b tagged) int { return b.n - a.n })
		require.Equal(t, expectedDesc, reversed)
	}

	t.Run("reverse of plain values equals the reversed ascending result", func(t *testing.T) {
		for iteration := 0; iteration < 50; iteration++ {
			input := make([]int, rng.Intn(40))
			for i := range input {
				input[i] = rng.Intn(10)
			}

			asc := SortOrdered(input, false)
			desc := SortOrdered(input, true)
			slices.Reverse(asc)
			require.Equal(t, asc, desc)
		}
	})
}
