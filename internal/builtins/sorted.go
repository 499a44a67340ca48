package builtins

import (
	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/Destroid1669/MyLibrary/internal/hybridsort"
)

// Sorted returns a new list containing the values of iterable in ascending order, the sort is stable.
// The iterable itself is never modified.
func Sorted(iterable core.Value, key core.KeyFunc, reverse bool) (*core.List, error) {
	return SortedWithConfig(iterable, key, core.Less, hybridsort.Config{Reverse: reverse})
}

// SortedWithConfig is like Sorted but the ordering and the sort configuration are provided by the caller.
func SortedWithConfig(iterable core.Value, key core.KeyFunc, less hybridsort.LessFunc[core.Value], config hybridsort.Config) (*core.List, error) {
	list, err := core.NewListFrom(iterable)
	if err != nil {
		return nil, err
	}

	if err := list.SortWithConfig(key, less, config); err != nil {
		return nil, err
	}
	return list, nil
}
