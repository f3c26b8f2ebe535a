package vec

import "iter"

// Iter walks the items of a [Vector] from first to last, yielding each of them by value once.
//
// An Iter is a snapshot: it's bound to the backing array and the length the vector had when
// [Vector.Iter] was called. It doesn't see items pushed afterwards, and once the vector grows,
// the iterator keeps walking the old array. Writes to slots inside the snapshot that happen
// without a reallocation (Set, Pop, Remove, Clear) are visible to it. The garbage collector keeps
// the snapshot alive, so using an Iter after the vector was released is memory-safe, but the
// values it yields are meaningless.
//
// An Iter can't be restarted.
type Iter[T any] struct {
	items []T
	pos   int
}

func newIter[T any](items []T) *Iter[T] {
	return &Iter[T]{items: items}
}

// Next returns the next item. After the last item it returns the zero value and false, and
// keeps doing so.
func (it *Iter[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	item := it.items[it.pos]
	it.pos++
	return item, true
}

// Len returns the number of items left.
func (it *Iter[T]) Len() int {
	return len(it.items) - it.pos
}

// Seq returns a sequence of the items left. Ranging over it advances the iterator; items left
// behind by an early break stay available to Next.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
