package uniquelist

import "iter"

// View is a read-only window onto a List. It shares the list's storage, so
// it always reflects the list's current contents, but exposes no way to
// change them.
type View[T comparable] struct {
	list *List[T]
}

// Len returns the number of items.
func (v View[T]) Len() int { return v.list.Len() }

// IsEmpty reports whether there are no items.
func (v View[T]) IsEmpty() bool { return v.list.IsEmpty() }

// At returns the item at the zero-based index i.
func (v View[T]) At(i int) (T, error) { return v.list.At(i) }

// Contains reports whether an item equal to item is present.
func (v View[T]) Contains(item T) bool { return v.list.Contains(item) }

// All iterates over the items in order.
func (v View[T]) All() iter.Seq2[int, T] { return v.list.All() }

// Items returns a copy of the items in order.
func (v View[T]) Items() []T { return v.list.Items() }

// Clone returns a mutable copy detached from the viewed list.
func (v View[T]) Clone() *List[T] { return v.list.Clone() }

// Equal reports whether both views show equal items in the same order.
func (v View[T]) Equal(other View[T]) bool { return v.list.Equal(other.list) }

func (v View[T]) String() string { return v.list.String() }
