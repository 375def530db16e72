// Package uniquelist provides an ordered, duplicate-free collection used for
// the multi-valued fields of a contact (emails, links and tags).
package uniquelist

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrDuplicateItem is returned when an operation would leave two equal
	// items in the list.
	ErrDuplicateItem = errors.New("duplicate item")

	// ErrIndexOutOfRange is returned when an index does not address an
	// existing item.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// List is an ordered collection whose items are unique by value equality.
// Items keep the order in which they were added or set. A failed mutation
// leaves the list unchanged.
//
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	items []T
}

// New returns a list holding items in order. It fails if items contains
// duplicates.
func New[T comparable](items ...T) (*List[T], error) {
	l := &List[T]{}
	if err := l.SetItems(items); err != nil {
		return nil, err
	}
	return l, nil
}

// Add appends item to the end of the list.
func (l *List[T]) Add(item T) error {
	if l.Contains(item) {
		return fmt.Errorf("adding %v: %w", item, ErrDuplicateItem)
	}
	l.items = append(l.items, item)
	return nil
}

// SetItems replaces the whole contents of the list with items.
func (l *List[T]) SetItems(items []T) error {
	for i, item := range items {
		if slices.Contains(items[:i], item) {
			return fmt.Errorf("setting items: %v appears more than once: %w", item, ErrDuplicateItem)
		}
	}
	l.items = slices.Clone(items)
	return nil
}

// RemoveAt deletes the item at the zero-based index i. Later items shift
// down by one.
func (l *List[T]) RemoveAt(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// SetAt replaces the item at the zero-based index i. Replacing an item with
// an equal value is allowed; replacing it with a value held elsewhere in the
// list is not.
func (l *List[T]) SetAt(i int, item T) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	for j, existing := range l.items {
		if j != i && existing == item {
			return fmt.Errorf("setting %v: %w", item, ErrDuplicateItem)
		}
	}
	l.items[i] = item
	return nil
}

// checkIndex leaves i out of the message; callers report it in their own base.
func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("list has %d item(s): %w", l.Len(), ErrIndexOutOfRange)
	}
	return nil
}

// Contains reports whether an item equal to item is in the list.
func (l *List[T]) Contains(item T) bool {
	if l == nil {
		return false
	}
	return slices.Contains(l.items, item)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// IsEmpty reports whether the list has no items.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// At returns the item at the zero-based index i.
func (l *List[T]) At(i int) (T, error) {
	if err := l.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return l.items[i], nil
}

// All iterates over the items in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Items returns a copy of the items in order.
func (l *List[T]) Items() []T {
	if l == nil {
		return []T{}
	}
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Clone returns an independent copy of the list.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		return &List[T]{}
	}
	return &List[T]{items: slices.Clone(l.items)}
}

// Equal reports whether both lists hold equal items in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	return slices.Equal(l.Items(), other.Items())
}

// View returns a read-only view sharing this list's storage.
func (l *List[T]) View() View[T] {
	return View[T]{list: l}
}

func (l *List[T]) String() string {
	parts := make([]string, 0, l.Len())
	for _, item := range l.All() {
		parts = append(parts, fmt.Sprint(item))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
