package check

const chunkSize = 32

type journalChunk[T any] struct {
	Slice []T
	Next  *journalChunk[T]
}

func newJournalChunk[T any]() *journalChunk[T] {
	return &journalChunk[T]{
		Slice: make([]T, 0, chunkSize),
	}
}

// journal is an append-only log stored in fixed-size chunks, so appending never copies recorded entries.
type journal[T any] struct {
	Head *journalChunk[T]
	Tail *journalChunk[T]
	Len  int
}

func newJournal[T any]() *journal[T] {
	chunk := newJournalChunk[T]()
	return &journal[T]{
		Head: chunk,
		Tail: chunk,
	}
}

func (j *journal[T]) Append(v T) {
	j.Tail.Slice = append(j.Tail.Slice, v)
	j.Len++
	if len(j.Tail.Slice) == chunkSize {
		next := newJournalChunk[T]()
		j.Tail.Next = next
		j.Tail = next
	}
}

// Last returns up to n most recent entries, oldest first.
func (j *journal[T]) Last(n int) []T {
	if n > j.Len {
		n = j.Len
	}
	if n <= 0 {
		return nil
	}

	result := make([]T, 0, n)
	skip := j.Len - n
	for chunk := j.Head; chunk != nil; chunk = chunk.Next {
		if skip >= len(chunk.Slice) {
			skip -= len(chunk.Slice)
			continue
		}
		result = append(result, chunk.Slice[skip:]...)
		skip = 0
	}
	return result
}
