package geometry

import "github.com/pkg/errors"

var (
	// ErrVertexIndex is returned when a vertex index is outside 0..2.
	ErrVertexIndex = errors.New("vertex index out of range")

	// ErrUndefined is returned when a construction has no defined result
	// for the current vertices, typically because a denominator is zero.
	ErrUndefined = errors.New("construction undefined")
)

func undefinedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUndefined, format, args...)
}
