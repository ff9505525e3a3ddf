package check

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"

	"github.com/outofforest/linkedlist"
)

func newContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	t.Cleanup(cancel)
	return ctx
}

func newList() linkedlist.Sequence[int] {
	return linkedlist.New[int]()
}

// lenientList misses the upper bound check in Get.
type lenientList struct {
	*linkedlist.List[int]
}

func (l lenientList) Get(index int) (int, error) {
	if index == l.Size() {
		return 0, nil
	}
	return l.List.Get(index)
}

// leakyList forgets to shrink when the last element is removed.
type leakyList struct {
	*linkedlist.List[int]
	extra int
}

func (l *leakyList) Remove(index int) error {
	if index == l.Size()-1 && index > 0 {
		l.extra++
	}
	return l.List.Remove(index)
}

func (l *leakyList) Size() int {
	return l.List.Size() + l.extra
}

// foreignErrList reports bound violations with its own error.
type foreignErrList struct {
	*linkedlist.List[int]
}

func (l foreignErrList) Remove(index int) error {
	if err := l.List.Remove(index); err != nil {
		return errors.New("no such element")
	}
	return nil
}

// panickyList panics once it grows above the limit.
type panickyList struct {
	*linkedlist.List[int]
}

func (l panickyList) Append(value int) {
	if l.Size() == 3 {
		panic("list is full")
	}
	l.List.Append(value)
}

func collect(ctx context.Context, config Config, factory Factory) (map[int64]error, error) {
	resultCh := make(chan Result)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, config, factory, resultCh)
	}()

	results := map[int64]error{}
	for result := range resultCh {
		results[result.Seed] = result.Err
	}
	return results, <-errCh
}
