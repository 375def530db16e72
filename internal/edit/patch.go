package edit

import "networkbook/internal/person"

type patchState int

const (
	untouched patchState = iota
	cleared
	assigned
)

// Patch is the pending change to a single-valued field. It is either
// untouched (keep the existing value), cleared (remove the existing value) or
// assigned a new value. Cleared only makes sense for optional fields.
//
// The zero value is untouched.
type Patch[T comparable] struct {
	state patchState
	value T
}

// Set assigns v.
func (p *Patch[T]) Set(v T) {
	p.state = assigned
	p.value = v
}

// Clear marks the field for removal.
func (p *Patch[T]) Clear() {
	var zero T
	p.state = cleared
	p.value = zero
}

// IsTouched reports whether the patch changes the field at all.
func (p Patch[T]) IsTouched() bool { return p.state != untouched }

// IsCleared reports whether the patch removes the field's value.
func (p Patch[T]) IsCleared() bool { return p.state == cleared }

// Get returns the assigned value, if any.
func (p Patch[T]) Get() (T, bool) {
	return p.value, p.state == assigned
}

// Resolve applies the patch to current.
func (p Patch[T]) Resolve(current person.Optional[T]) person.Optional[T] {
	switch p.state {
	case cleared:
		return person.None[T]()
	case assigned:
		return person.Some(p.value)
	default:
		return current
	}
}
