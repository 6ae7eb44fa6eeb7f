// Package result provides Result, a two-variant return type holding either a
// success value of type S or a failure value of type F. Unlike an (S, error)
// pair, neither arm is fabricated when the other is meant: the tag says which
// one is live, and accessing the wrong arm is a contract violation.
package result

import "errors"

var (
	// ErrDereference is the panic value when the success arm is accessed on
	// a result that did not succeed.
	ErrDereference = errors.New("result: value access on a result that did not succeed")
	// ErrNoFailure is the panic value when the failure arm is accessed on a
	// result that did not fail.
	ErrNoFailure = errors.New("result: no failure value held")
)

type state uint8

const (
	empty state = iota
	succeeded
	failed
)

// Result holds nothing, an S, or an F. The zero value is the empty state,
// which is falsy and reachable only by construction; every assignment moves
// the result to succeeded or failed. At most one arm is ever populated, the
// vacated arm is zeroed on transition.
type Result[S, F any] struct {
	ok S
	fl F
	st state
}

// Ok returns a succeeded result holding v.
func Ok[S, F any](v S) Result[S, F] {
	return Result[S, F]{ok: v, st: succeeded}
}

// Err returns a failed result holding f.
func Err[S, F any](f F) Result[S, F] {
	return Result[S, F]{fl: f, st: failed}
}

// IsOk reports whether the result holds a success value. Callers are expected
// to check this (or use Value) before dereferencing.
func (r Result[S, F]) IsOk() bool {
	return r.st == succeeded
}

// IsErr reports whether the result holds a failure value.
func (r Result[S, F]) IsErr() bool {
	return r.st == failed
}

// MustValue returns the success value. It panics with ErrDereference if the
// result is failed or empty.
func (r Result[S, F]) MustValue() S {
	if r.st != succeeded {
		panic(ErrDereference)
	}
	return r.ok
}

// Ptr returns a pointer to the success value held in r, for member access and
// in-place mutation. It panics with ErrDereference if the result is failed or
// empty.
func (r *Result[S, F]) Ptr() *S {
	if r.st != succeeded {
		panic(ErrDereference)
	}
	return &r.ok
}

// MustErr returns the failure value. It panics with ErrNoFailure if the
// result is succeeded or empty.
func (r Result[S, F]) MustErr() F {
	if r.st != failed {
		panic(ErrNoFailure)
	}
	return r.fl
}

// ErrPtr returns a pointer to the failure value held in r. It panics with
// ErrNoFailure if the result is succeeded or empty.
func (r *Result[S, F]) ErrPtr() *F {
	if r.st != failed {
		panic(ErrNoFailure)
	}
	return &r.fl
}

// Value returns the success value and whether it is live.
func (r Result[S, F]) Value() (S, bool) {
	return r.ok, r.st == succeeded
}

// Failure returns the failure value and whether it is live.
func (r Result[S, F]) Failure() (F, bool) {
	return r.fl, r.st == failed
}

// SetOk replaces r's payload with the success value v, zeroing the failure arm.
func (r *Result[S, F]) SetOk(v S) {
	var zf F
	r.ok, r.fl, r.st = v, zf, succeeded
}

// SetErr replaces r's payload with the failure value f, zeroing the success arm.
func (r *Result[S, F]) SetErr(f F) {
	var zs S
	r.ok, r.fl, r.st = zs, f, failed
}

// Assign replaces r's tag and payload with src's. src arrives by value, so
// assigning a result to itself is safe.
func (r *Result[S, F]) Assign(src Result[S, F]) {
	*r = src
}
