package check

import (
	"github.com/pkg/errors"

	"github.com/outofforest/linkedlist"
)

var _ linkedlist.Sequence[int] = &model[int]{}

// model is the slice-backed reference implementation results are compared against.
type model[T any] struct {
	items []T
}

func newModel[T any]() *model[T] {
	return &model[T]{}
}

func (m *model[T]) Append(value T) {
	m.items = append(m.items, value)
}

func (m *model[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(m.items) {
		var v T
		return v, errors.Wrapf(linkedlist.ErrIndexOutOfRange, "index %d, size %d", index, len(m.items))
	}
	return m.items[index], nil
}

func (m *model[T]) Remove(index int) error {
	if index < 0 || index >= len(m.items) {
		return errors.Wrapf(linkedlist.ErrIndexOutOfRange, "index %d, size %d", index, len(m.items))
	}

	copy(m.items[index:], m.items[index+1:])
	var v T
	m.items[len(m.items)-1] = v
	m.items = m.items[:len(m.items)-1]
	return nil
}

func (m *model[T]) Size() int {
	return len(m.items)
}

func (m *model[T]) IsEmpty() bool {
	return len(m.items) == 0
}

func (m *model[T]) Clear() {
	m.items = nil
}
