package utils

import (
	"io"
	"testing"
)

type TestWriter struct {
	T *testing.T
}

func (w *TestWriter) Write(p []byte) (n int, err error) {
	w.T.Log(string(p))
	return len(p), nil
}

func MustWriteMany(w io.Writer, slices ...[]byte) {
	for _, b := range slices {
		Must(w.Write(b))
	}
}
