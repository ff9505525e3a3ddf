package linkedlist

// Sequence is the interface of ordered containers with positional access.
type Sequence[T any] interface {
	// Append adds value at the end.
	Append(value T)

	// Get returns the element at zero-based index or error wrapping ErrIndexOutOfRange.
	Get(index int) (T, error)

	// Remove deletes the element at zero-based index or returns error wrapping ErrIndexOutOfRange.
	Remove(index int) error

	Size() int
	IsEmpty() bool
	Clear()
}
