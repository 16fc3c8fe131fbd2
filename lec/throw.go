package lec

import "github.com/pkg/errors"

// ErrDegenerateInput reports a point set with no two-dimensional structure:
// fewer than three points, duplicate coordinates, or all points collinear.
// Returned errors wrap it, so callers can test with errors.Is.
var ErrDegenerateInput = errors.New("degenerate input point set")

// Threading error returns through every geometric helper for conditions that
// can only arise from a corrupted diagram would add noise to all of the
// search code. Instead, invariant violations panic with a FindError, and the
// public API recovers to convert back to an error.

type FindError error

// Panic with a FindError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleFindPanicRecover converts the result of recover() into an error if it
// came from fatalf, and re-panics otherwise.
func HandleFindPanicRecover(r interface{}) error {
	if r != nil {
		if findError, ok := r.(FindError); ok {
			return findError
		}
		panic(r)
	}
	return nil
}
