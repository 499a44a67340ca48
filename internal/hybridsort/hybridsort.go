package hybridsort

// LessFunc reports whether a is strictly less than b. A non-nil error means
// that a and b are not mutually comparable, the sort aborts and returns it.
type LessFunc[T any] func(a, b T) (bool, error)

// stats holds counters collected during a single driver call.
type stats struct {
	runs   int
	merges int
}

// binarySearch returns the index at which value should be inserted in the sorted
// range buf[start:end+1] (end is inclusive). The returned index is the upper bound:
// value goes after every element equal to it. An empty range (start > end) yields start.
func binarySearch[T any](buf []T, value T, start, end int, less LessFunc[T]) (int, error) {
	lo, hi := start, end+1

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		isLess, err := less(value, buf[mid])
		if err != nil {
			return 0, err
		}

		if isLess {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo, nil
}

// insertionSort sorts run in place, each element is moved to the insertion point
// found by binarySearch in the already sorted prefix.
func insertionSort[T any](run []T, less LessFunc[T]) error {
	for i := 1; i < len(run); i++ {
		value := run[i]

		pos, err := binarySearch(run, value, 0, i-1, less)
		if err != nil {
			return err
		}

		if pos == i {
			continue
		}

		//shift run[pos:i] one slot to the right
		copy(run[pos+1:i+1], run[pos:i])
		run[pos] = value
	}

	return nil
}

// merge merges two sorted slices, when the heads are equal the head of left is emitted first.
// If one of the slices is empty the other one is returned as is.
func merge[T any](left, right []T, less LessFunc[T]) ([]T, error) {
	if len(left) == 0 {
		return right, nil
	}
	if len(right) == 0 {
		return left, nil
	}

	result := make([]T, 0, len(left)+len(right))
	l, r := 0, 0

	for l < len(left) && r < len(right) {
		rightFirst, err := less(right[r], left[l])
		if err != nil {
			return nil, err
		}

		if rightFirst {
			result = append(result, right[r])
			r++
		} else {
			result = append(result, left[l])
			l++
		}
	}

	result = append(result, left[l:]...)
	result = append(result, right[r:]...)
	return result, nil
}

// detectRuns partitions seq into maximal non-decreasing runs, from left to right.
// The returned runs share seq's backing array.
func detectRuns[T any](seq []T, less LessFunc[T]) ([][]T, error) {
	var runs [][]T
	runStart := 0

	for i := 1; i < len(seq); i++ {
		descent, err := less(seq[i], seq[i-1])
		if err != nil {
			return nil, err
		}
		if descent {
			runs = append(runs, seq[runStart:i:i])
			runStart = i
		}
	}

	//the last run is always closed
	runs = append(runs, seq[runStart:])
	return runs, nil
}

// timsort sorts seq (len(seq) >= 1) and returns the sorted elements. The elements of seq
// may be reordered: callers should pass a slice they own.
func timsort[T any](seq []T, less LessFunc[T]) ([]T, stats, error) {
	var st stats

	runs, err := detectRuns(seq, less)
	if err != nil {
		return nil, st, err
	}
	st.runs = len(runs)

	for _, run := range runs {
		if err := insertionSort(run, less); err != nil {
			return nil, st, err
		}
	}

	if len(runs) == 1 {
		return runs[0], st, nil
	}

	var merged []T
	for _, run := range runs {
		merged, err = merge(merged, run, less)
		if err != nil {
			return nil, st, err
		}
		st.merges++
	}

	return merged, st, nil
}
