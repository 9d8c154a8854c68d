// Package list provides index-based removal helpers that hand the removed
// element to a callback and return the source container for chaining.
package list

import (
	listerrors "github.com/wehubfusion/listops/pkg/errors"
)

// List is the capability set the removal helpers need: read by index,
// remove by index, and length.
//
// Get and RemoveAt must return an index out of range error for
// index < 0 || index >= Len(), and RemoveAt must leave the container
// untouched when it fails. A successful RemoveAt shifts every following
// element down by one position.
type List[T any] interface {
	Get(index int) (T, error)
	RemoveAt(index int) error
	Len() int
}

// Slice is a List backed by a plain Go slice
type Slice[T any] []T

// NewSlice creates a Slice holding vals in order
func NewSlice[T any](vals ...T) *Slice[T] {
	s := make(Slice[T], 0, len(vals))
	s = append(s, vals...)
	return &s
}

// Add appends vals to the end of the slice
func (s *Slice[T]) Add(vals ...T) {
	*s = append(*s, vals...)
}

// Get returns the element at index
func (s *Slice[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(*s) {
		var zero T
		return zero, listerrors.IndexOutOfRange(index, len(*s))
	}
	return (*s)[index], nil
}

// RemoveAt removes the element at index, preserving the order of the rest
func (s *Slice[T]) RemoveAt(index int) error {
	items := *s
	if index < 0 || index >= len(items) {
		return listerrors.IndexOutOfRange(index, len(items))
	}
	copy(items[index:], items[index+1:])
	// release the reference held by the vacated tail slot
	items[len(items)-1] = *new(T)
	*s = items[:len(items)-1]
	return nil
}

// Len returns the number of elements
func (s *Slice[T]) Len() int {
	return len(*s)
}
