// Package vec provides Vector, a growable contiguous container which manages its backing storage
// by hand instead of relying on append.
package vec

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/teenjuna/vec/internal/raw"
)

// Vector is a growable sequence of elements stored contiguously in a single backing array.
//
// The backing array is allocated with the configured initial capacity and doubled every time a
// push doesn't fit. It never shrinks on its own; call [Vector.Release] to give it back.
//
// Vector is not thread-safe. It has exactly one owner at a time; passing it to another goroutine
// transfers ownership. The zero value is invalid, use [New] or [FromSlice].
type Vector[T any] struct {
	cfg *Config
	buf *raw.Buffer[T]
	len int
}

// New returns an empty vector. See [Config] for the defaults.
func New[T any](configFuncs ...func(c *Config)) *Vector[T] {
	cfg := newConfig(configFuncs...)
	v := Vector[T]{
		cfg: cfg,
		buf: raw.Alloc[T](cfg.initialCapacity),
	}
	cfg.metrics.allocated(v.buf.ByteCap(), v.buf.Cap())
	return &v
}

// FromSlice returns a vector holding a copy of items, in order.
func FromSlice[T any](items []T, configFuncs ...func(c *Config)) *Vector[T] {
	cfg := newConfig(configFuncs...)
	v := Vector[T]{
		cfg: cfg,
		buf: raw.Alloc[T](max(len(items), cfg.initialCapacity)),
		len: len(items),
	}
	copy(v.buf.Window(v.len), items)
	cfg.metrics.allocated(v.buf.ByteCap(), v.buf.Cap())
	return &v
}

// Push adds an item to the end of the vector, growing it if there is no free slot.
func (v *Vector[T]) Push(item T) {
	if v.len == v.buf.Cap() {
		v.grow(v.nextCap(v.len + 1))
	}
	*v.buf.Slot(v.len) = item
	v.len++
}

// Pop removes the last item and returns it. If the vector is empty, it returns the zero value
// and false.
func (v *Vector[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	v.len--
	slot := v.buf.Slot(v.len)
	item := *slot
	*slot = *new(T)
	return item, true
}

// Remove removes the item at index i and returns it. Items after it are moved one position to
// the front, so their order is preserved.
//
// If i doesn't point to a live item, the vector is left untouched and an
// [*IndexOutOfBoundsError] is returned.
func (v *Vector[T]) Remove(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	item := *v.buf.Slot(i)
	v.buf.Shift(i, v.len)
	v.len--
	v.buf.Clear(v.len, v.len+1)
	return item, nil
}

// Get returns a copy of the item at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return *v.buf.Slot(i), nil
}

// Ref returns a pointer to the item at index i. The pointer stays valid until the vector grows
// or is released; after that it points into the old backing array.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.check(i); err != nil {
		return nil, err
	}
	return v.buf.Slot(i), nil
}

// At is like [Vector.Get], but panics with an [*IndexOutOfBoundsError] instead of returning it.
func (v *Vector[T]) At(i int) T {
	item, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return item
}

// Set replaces the item at index i.
func (v *Vector[T]) Set(i int, item T) error {
	if err := v.check(i); err != nil {
		return err
	}
	*v.buf.Slot(i) = item
	return nil
}

// Len returns the number of items in the vector.
func (v *Vector[T]) Len() int {
	return v.len
}

// Cap returns the number of items the vector can hold without growing.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// Reserve makes sure that at least additional more items can be pushed without growing. Unlike
// the growth caused by [Vector.Push], the new capacity is exactly Len()+additional.
func (v *Vector[T]) Reserve(additional int) {
	if additional < 0 {
		panic("additional can't be < 0")
	}
	if additional > math.MaxInt-v.len {
		panic("additional is too large")
	}
	v.grow(v.len + additional)
}

// Append moves all items of other to the end of v, preserving their order. Afterwards other is
// empty but keeps its capacity.
func (v *Vector[T]) Append(other *Vector[T]) {
	if other == nil {
		return
	}
	if other == v {
		panic("can't append vector to itself")
	}
	if other.len == 0 {
		return
	}

	n := v.len + other.len
	if n > v.buf.Cap() {
		v.grow(v.nextCap(n))
	}
	copy(v.buf.Window(n)[v.len:], other.buf.Window(other.len))
	v.len = n

	other.buf.Clear(0, other.len)
	other.len = 0
}

// Iter returns an iterator over the items currently in the vector. See [Iter] for what it does
// and doesn't observe.
func (v *Vector[T]) Iter() *Iter[T] {
	return newIter(v.buf.Window(v.len))
}

// All returns a sequence of the items currently in the vector. Every call starts a new [Iter].
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.Iter().Seq()(yield)
	}
}

// Slice returns a copy of the items.
func (v *Vector[T]) Slice() []T {
	items := make([]T, v.len)
	copy(items, v.buf.Window(v.len))
	return items
}

// Clear removes all items, keeping the capacity.
func (v *Vector[T]) Clear() {
	v.buf.Clear(0, v.len)
	v.len = 0
}

// Release removes all items and gives the backing array back. The vector stays usable: the next
// push allocates again, starting from the initial capacity.
func (v *Vector[T]) Release() {
	if v.buf.Cap() == 0 {
		return
	}
	bytes := v.buf.ByteCap()
	v.buf.Release()
	v.len = 0
	v.cfg.metrics.released(bytes)
}

// String renders the items like "[1, 2, 3]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range v.buf.Window(v.len) {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}

// Stats returns the current size of the vector.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:      v.len,
		Cap:      v.buf.Cap(),
		ElemSize: v.buf.ElemSize(),
		Bytes:    v.buf.ByteCap(),
	}
}

// Stats describes the size of a vector.
type Stats struct {
	// Len is the number of items.
	Len int
	// Cap is the number of items the backing array can hold.
	Cap int
	// ElemSize is the size of a single item in bytes.
	ElemSize int
	// Bytes is the size of the backing array in bytes.
	Bytes int
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"len=%d cap=%d elem=%s bytes=%s",
		s.Len,
		s.Cap,
		humanize.IBytes(uint64(s.ElemSize)),
		humanize.IBytes(uint64(s.Bytes)),
	)
}

func (v *Vector[T]) check(i int) error {
	if i < 0 || i >= v.len {
		return &IndexOutOfBoundsError{Index: i, Len: v.len}
	}
	return nil
}

// nextCap returns the capacity the doubling policy picks to fit n items.
func (v *Vector[T]) nextCap(n int) int {
	c := v.buf.Cap()
	if c == 0 {
		c = v.cfg.initialCapacity
	}
	for c < n {
		if c > math.MaxInt/2 {
			return n
		}
		c *= 2
	}
	return c
}

func (v *Vector[T]) grow(n int) {
	var (
		oldCap   = v.buf.Cap()
		oldBytes = v.buf.ByteCap()
	)
	if !v.buf.Grow(n) {
		return
	}
	if oldCap == 0 {
		v.cfg.metrics.allocated(v.buf.ByteCap(), v.buf.Cap())
	} else {
		v.cfg.metrics.reallocated(oldBytes, v.buf.ByteCap(), v.buf.Cap())
	}
}
