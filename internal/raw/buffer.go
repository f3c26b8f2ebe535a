// Package raw contains the backing storage of a vector.
package raw

import "unsafe"

// Buffer is a fixed block of element slots that can be grown.
//
// Buffer doesn't know which slots are live; that's tracked by the owner. All slots are always
// addressable, but only the owner decides which of them hold meaningful values.
type Buffer[T any] struct {
	slots    []T
	elemSize int
}

// Alloc returns a buffer with n slots.
func Alloc[T any](n int) *Buffer[T] {
	if n < 0 {
		panic("slots can't be < 0")
	}
	var zero T
	b := Buffer[T]{
		elemSize: int(unsafe.Sizeof(zero)),
	}
	if n != 0 {
		b.slots = make([]T, n)
	}
	return &b
}

// Grow reallocates the buffer to n slots, keeping the contents of the existing ones. It never
// shrinks the buffer, so n <= Cap() is a no-op. Reports whether a reallocation happened.
func (b *Buffer[T]) Grow(n int) bool {
	if n <= len(b.slots) {
		return false
	}
	slots := make([]T, n)
	copy(slots, b.slots)
	b.slots = slots
	return true
}

// Release zeroes all slots and drops the backing array.
func (b *Buffer[T]) Release() {
	clear(b.slots)
	b.slots = nil
}

// Cap returns the number of slots.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// ElemSize returns the size of a single slot in bytes.
func (b *Buffer[T]) ElemSize() int {
	return b.elemSize
}

// ByteCap returns the size of the backing array in bytes.
func (b *Buffer[T]) ByteCap() int {
	return len(b.slots) * b.elemSize
}

// Slot returns a pointer to the i-th slot. It panics if i is outside of [0, Cap()).
func (b *Buffer[T]) Slot(i int) *T {
	return &b.slots[i]
}

// Window returns the first n slots. The result shares the backing array with the buffer.
func (b *Buffer[T]) Window(n int) []T {
	return b.slots[:n:n]
}

// Shift moves slots [i+1, n) one position to the front, overwriting slot i. Slot n-1 keeps
// its old value.
func (b *Buffer[T]) Shift(i, n int) {
	copy(b.slots[i:n], b.slots[i+1:n])
}

// Clear zeroes slots [i, j).
func (b *Buffer[T]) Clear(i, j int) {
	clear(b.slots[i:j])
}
