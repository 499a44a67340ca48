package hybridsort

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/Destroid1669/MyLibrary/internal/utils"
	"github.com/rs/zerolog"
)

var (
	ErrKeyFunctionFailed = errors.New("key function failed")
)

// KeyFunc maps an element to the surrogate value it is sorted by.
type KeyFunc[T, K any] func(e T) (K, error)

// Config configures a single sort call.
type Config struct {
	// Reverse requests descending order, elements that compare equal
	// keep their original relative order.
	Reverse bool

	// Logger (optional) receives debug information about detected runs and merges.
	Logger *zerolog.Logger
}

// Ordered is the LessFunc of ordered Go types, it never fails.
func Ordered[T cmp.Ordered](a, b T) (bool, error) {
	return cmp.Less(a, b), nil
}

// Sort returns a new slice containing the elements of seq in ascending order (descending if config.Reverse is set).
// seq is not modified. The sort is stable.
func Sort[T any](seq []T, less LessFunc[T], config Config) ([]T, error) {
	if len(seq) == 0 {
		return []T{}, nil
	}

	elements := utils.CopySlice(seq)
	if config.Reverse {
		utils.Reverse(elements)
	}

	sorted, st, err := timsort(elements, less)
	if err != nil {
		return nil, err
	}

	if config.Reverse {
		utils.Reverse(sorted)
	}

	logStats(config.Logger, len(seq), false, st)
	return sorted, nil
}

type keyed[K any] struct {
	key   K
	index int
}

// SortByKey is like Sort but elements are ordered by the values key returns for them.
// key is called exactly once per element; if it fails the error is wrapped with
// ErrKeyFunctionFailed and returned.
func SortByKey[T, K any](seq []T, key KeyFunc[T, K], less LessFunc[K], config Config) ([]T, error) {
	if len(seq) == 0 {
		return []T{}, nil
	}

	pairs := make([]keyed[K], len(seq))
	for i, e := range seq {
		k, err := key(e)
		if err != nil {
			return nil, fmt.Errorf("%w: element at index %d: %w", ErrKeyFunctionFailed, i, err)
		}
		pairs[i] = keyed[K]{key: k, index: i}
	}

	if config.Reverse {
		utils.Reverse(pairs)
	}

	sortedPairs, st, err := timsort(pairs, func(a, b keyed[K]) (bool, error) {
		return less(a.key, b.key)
	})
	if err != nil {
		return nil, err
	}

	if config.Reverse {
		utils.Reverse(sortedPairs)
	}

	result := make([]T, len(seq))
	for i, pair := range sortedPairs {
		result[i] = seq[pair.index]
	}

	logStats(config.Logger, len(seq), true, st)
	return result, nil
}

// SortInPlace sorts seq in place. If an error occurs seq is left unchanged.
func SortInPlace[T any](seq []T, less LessFunc[T], config Config) error {
	sorted, err := Sort(seq, less, config)
	if err != nil {
		return err
	}
	copy(seq, sorted)
	return nil
}

// SortInPlaceByKey sorts seq in place by key. If an error occurs seq is left unchanged.
func SortInPlaceByKey[T, K any](seq []T, key KeyFunc[T, K], less LessFunc[K], config Config) error {
	sorted, err := SortByKey(seq, key, less, config)
	if err != nil {
		return err
	}
	copy(seq, sorted)
	return nil
}

// SortOrdered returns a sorted copy of a slice of ordered values.
func SortOrdered[T cmp.Ordered](seq []T, reverse bool) []T {
	return utils.Must(Sort(seq, Ordered[T], Config{Reverse: reverse}))
}

// IsSorted reports whether seq is in non-decreasing order.
func IsSorted[T any](seq []T, less LessFunc[T]) (bool, error) {
	for i := 1; i < len(seq); i++ {
		descent, err := less(seq[i], seq[i-1])
		if err != nil {
			return false, err
		}
		if descent {
			return false, nil
		}
	}
	return true, nil
}

func logStats(logger *zerolog.Logger, length int, withKey bool, st stats) {
	if logger == nil {
		return
	}
	logger.Debug().
		Int("length", length).
		Bool("key", withKey).
		Int("runs", st.runs).
		Int("merges", st.merges).
		Msg("sorted")
}
