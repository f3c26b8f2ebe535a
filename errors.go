package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is matched by every [IndexOutOfBoundsError].
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// IndexOutOfBoundsError is returned when an index doesn't point to a live element.
type IndexOutOfBoundsError struct {
	// Index is the index that was requested.
	Index int
	// Len is the length of the vector at the moment of the request.
	Len int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: the len is %d but the index is %d", ErrIndexOutOfBounds, e.Len, e.Index)
}

func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}
