// Package trace holds instrumented payload types for the package tests, so
// they can account for every construction and deep copy a container performs.
package trace

// Recorder tallies payload lifecycle events. The zero value is ready to use.
type Recorder struct {
	Constructs int
	Clones     int
}

// Val is a clonable payload wired to a shared Recorder.
type Val struct {
	rec *Recorder
	N   int
}

// New constructs a Val carrying n and bumps the construct count.
func New(rec *Recorder, n int) *Val {
	if rec != nil {
		rec.Constructs++
	}
	return &Val{rec: rec, N: n}
}

// Clone returns a fresh copy of v and bumps the clone count.
func (v *Val) Clone() *Val {
	if v.rec != nil {
		v.rec.Clones++
	}
	c := *v
	return &c
}
