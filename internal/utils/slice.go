package utils

import (
	"unsafe"
)

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

func Reverse[T any](slice []T) {
	length := len(slice)

	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		slice[i], slice[j] = slice[j], slice[i]
	}
}

func MapSlice[T any, U any](s []T, mapper func(e T) U) []U {
	result := make([]U, len(s))

	for i, e := range s {
		result[i] = mapper(e)
	}

	return result
}

// MapSliceErr is like MapSlice but stops at the first error returned by mapper.
func MapSliceErr[T any, U any](s []T, mapper func(e T) (U, error)) ([]U, error) {
	result := make([]U, len(s))

	for i, e := range s {
		u, err := mapper(e)
		if err != nil {
			return nil, err
		}
		result[i] = u
	}

	return result, nil
}

func EmptySliceIfNil[T any](slice []T) []T {
	if slice == nil {
		return []T{}
	}
	return slice
}

func StringAsBytes[T ~string](s T) []byte {
	return unsafe.Slice(unsafe.StringData(string(s)), len(s))
}
