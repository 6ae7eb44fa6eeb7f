// Package box provides Box, an exclusive-ownership container that deep-copies
// its held value whenever the box itself is cloned. The copy capability is
// captured at the moment ownership is taken, so a box statically typed as an
// interface still duplicates the concrete value's full state.
package box

import "reflect"

// Cloner is implemented by values that can produce a deep copy of themselves.
// When T is an interface type, Clone must return the same concrete type it was
// called on, so that no state is lost copying through the interface.
type Cloner[T any] interface {
	Clone() T
}

// Box owns a single heap value of type T. The zero value is an empty box.
//
// Cloning a Box never aliases: the result owns a fresh copy made by the
// capability stored when the value was adopted. Plain Go assignment of a Box
// copies the struct and therefore aliases the held value; use Clone or
// CopyFrom when ownership must not be shared.
type Box[T any] struct {
	val   T
	clone func(T) T // non-nil iff the box holds a value
}

// Adopt takes exclusive ownership of v. The caller must not retain or mutate
// v afterwards. A nil v yields an empty box.
//
// The Clone method of v's concrete type becomes the box's copy capability, so
// adopting a derived value through a base interface keeps derived state
// reachable by later clones.
func Adopt[T Cloner[T]](v T) Box[T] {
	if isNil(v) {
		return Box[T]{}
	}
	return Box[T]{val: v, clone: func(x T) T { return x.Clone() }}
}

// AdoptRef takes exclusive ownership of p, a plain pointer whose pointee needs
// no custom copy logic; clones duplicate the pointee by value. nil yields an
// empty box.
func AdoptRef[T any](p *T) Box[*T] {
	if p == nil {
		return Box[*T]{}
	}
	return Box[*T]{val: p, clone: copyRef[T]}
}

// CloneFrom deep-copies the named value v and owns the copy. v stays with the
// caller, untouched. A nil v yields an empty box.
func CloneFrom[T Cloner[T]](v T) Box[T] {
	if isNil(v) {
		return Box[T]{}
	}
	return Box[T]{val: v.Clone(), clone: func(x T) T { return x.Clone() }}
}

// CopyRef copies the named value *p and owns the copy. nil yields an empty box.
func CopyRef[T any](p *T) Box[*T] {
	if p == nil {
		return Box[*T]{}
	}
	return Box[*T]{val: copyRef(p), clone: copyRef[T]}
}

// Clone returns a box owning a deep copy of the held value, made by the
// capability captured at adoption. An empty box clones to an empty box.
// Box itself satisfies Cloner, so boxes nest.
func (b Box[T]) Clone() Box[T] {
	if b.clone == nil {
		return Box[T]{}
	}
	return Box[T]{val: b.clone(b.val), clone: b.clone}
}

// Get returns the held value without transferring ownership, or the zero T if
// the box is empty.
func (b Box[T]) Get() T {
	return b.val
}

// Must returns the held value and panics if the box is empty. Dereferencing an
// empty box is a programming error, not a condition to handle.
func (b Box[T]) Must() T {
	if b.clone == nil {
		panic("box: dereference of empty box")
	}
	return b.val
}

// Ok reports whether the box holds a value.
func (b Box[T]) Ok() bool {
	return b.clone != nil
}

// Swap exchanges the held values and capabilities of b and other in place.
// No allocation, never fails.
func (b *Box[T]) Swap(other *Box[T]) {
	b.val, other.val = other.val, b.val
	b.clone, other.clone = other.clone, b.clone
}

// Reset releases the held value, leaving the box empty.
func (b *Box[T]) Reset() {
	*b = Box[T]{}
}

// Reset releases b's current value and adopts v in its place. Adopting the
// value b already holds is a no-op. The replacement box is built before the
// swap, so b keeps its value if construction panics.
func Reset[T Cloner[T]](b *Box[T], v T) {
	if b.clone != nil && !isNil(v) && any(b.val) == any(v) {
		return
	}
	n := Adopt(v)
	n.Swap(b)
}

// ResetRef releases b's current value and adopts the plain pointer p.
// Resetting to the currently held pointer is a no-op.
func ResetRef[T any](b *Box[*T], p *T) {
	if b.clone != nil && p != nil && b.val == p {
		return
	}
	n := AdoptRef(p)
	n.Swap(b)
}

// CopyFrom releases b's current value and replaces it with a deep copy of
// src's. Copying a box from itself is safe and leaves an equal value, though
// the held identity changes.
func (b *Box[T]) CopyFrom(src Box[T]) {
	*b = src.Clone()
}

// Same reports identity equality: both boxes hold the literal same object, or
// both are empty. Two independently cloned boxes are never Same. The held
// value's dynamic type must be comparable; pointer payloads always are.
func (b Box[T]) Same(other Box[T]) bool {
	if b.clone == nil || other.clone == nil {
		return b.clone == nil && other.clone == nil
	}
	return any(b.val) == any(other.val)
}

func copyRef[T any](p *T) *T {
	c := *p
	return &c
}

// isNil reports whether v is nil in any of the kinds where nil is meaningful,
// including a typed nil pointer inside a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
