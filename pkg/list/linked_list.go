package list

import (
	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"

	listerrors "github.com/wehubfusion/listops/pkg/errors"
)

// LinkedList is a List backed by a gods doubly linked list
type LinkedList[T comparable] struct {
	list *doublylinkedlist.List[T]
}

// NewLinkedList creates a LinkedList holding vals in order
func NewLinkedList[T comparable](vals ...T) *LinkedList[T] {
	return &LinkedList[T]{list: doublylinkedlist.New[T](vals...)}
}

// Add appends vals to the tail
func (l *LinkedList[T]) Add(vals ...T) {
	l.list.Add(vals...)
}

// Get returns the element at index
func (l *LinkedList[T]) Get(index int) (T, error) {
	val, ok := l.list.Get(index)
	if !ok {
		return val, listerrors.IndexOutOfRange(index, l.list.Size())
	}
	return val, nil
}

// RemoveAt unlinks the element at index
func (l *LinkedList[T]) RemoveAt(index int) error {
	// doublylinkedlist.Remove ignores bad indexes, so check first
	if index < 0 || index >= l.list.Size() {
		return listerrors.IndexOutOfRange(index, l.list.Size())
	}
	l.list.Remove(index)
	return nil
}

// Len returns the number of elements
func (l *LinkedList[T]) Len() int {
	return l.list.Size()
}

// ForEach visits elements head to tail until consumer returns false
func (l *LinkedList[T]) ForEach(consumer func(idx int, val T) bool) {
	it := l.list.Iterator()
	for it.Next() {
		if !consumer(it.Index(), it.Value()) {
			return
		}
	}
}

// Values copies the elements into a new slice
func (l *LinkedList[T]) Values() []T {
	return l.list.Values()
}
