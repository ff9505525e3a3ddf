package linkedlist

import (
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when index does not point to an element of the list.
var ErrIndexOutOfRange = errors.New("index out of range")

var _ Sequence[any] = &List[any]{}

type node[T any] struct {
	Value T
	Next  *node[T]
}

// List is a singly linked list. Zero value is an empty list ready to use.
// List is not safe for concurrent use.
type List[T any] struct {
	head *node[T]
	size int
}

// New returns new empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Append adds value at the end of the list.
func (l *List[T]) Append(value T) {
	n := &node[T]{Value: value}
	l.size++

	if l.head == nil {
		l.head = n
		return
	}

	// there is no tail pointer, last node is found by walking the chain
	last := l.head
	for last.Next != nil {
		last = last.Next
	}
	last.Next = n
}

// Get returns the element stored at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var v T
		return v, err
	}
	return l.nodeAt(index).Value, nil
}

// Remove removes the element stored at index. Elements after it are shifted one position towards the head.
func (l *List[T]) Remove(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}

	var removed *node[T]
	if index == 0 {
		removed = l.head
		l.head = removed.Next
	} else {
		prev := l.nodeAt(index - 1)
		removed = prev.Next
		prev.Next = removed.Next
	}
	removed.Next = nil
	l.size--

	return nil
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

// IsEmpty returns true if there are no elements in the list.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes all the elements.
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.size)
	}
	return nil
}

// nodeAt expects index to be already validated.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.Next
	}
	return n
}
