package check

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/outofforest/linkedlist"
)

// trailLength is the number of steps, up to and including the diverging one, reported in MismatchError.
const trailLength = 16

// MismatchError is returned when sequence diverges from the reference model.
type MismatchError struct {
	// Step is the index of the script step after which divergence was detected.
	// It is equal to the script length if divergence was found by the final content comparison.
	Step int

	// Trail holds the most recent steps executed, TrailStart is the index of its first one.
	Trail      []Step
	TrailStart int

	Err error
}

func (e *MismatchError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "step %d diverged: %s; trail:", e.Step, e.Err)
	for i, s := range e.Trail {
		fmt.Fprintf(b, " [%d] %s", e.TrailStart+i, s)
	}
	return b.String()
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// Verify executes script on seq and on the reference model, comparing every result.
// seq must be empty.
func Verify(seq linkedlist.Sequence[int], script []Step) error {
	if size := seq.Size(); size != 0 || !seq.IsEmpty() {
		return &MismatchError{Err: errors.Errorf("sequence is not empty, size %d", size)}
	}

	m := newModel[int]()

	j := newJournal[Step]()
	for i, step := range script {
		j.Append(step)
		if err := apply(seq, m, step); err != nil {
			return newMismatchError(i, j, err)
		}
	}

	if err := compareContent(seq, m); err != nil {
		return newMismatchError(len(script), j, err)
	}
	return nil
}

func newMismatchError(step int, j *journal[Step], err error) *MismatchError {
	trail := j.Last(trailLength)
	return &MismatchError{
		Step:       step,
		Trail:      trail,
		TrailStart: j.Len - len(trail),
		Err:        err,
	}
}

func apply(seq linkedlist.Sequence[int], m *model[int], step Step) error {
	var err error
	switch step.Op {
	case OpAppend:
		seq.Append(step.Value)
		m.Append(step.Value)
	case OpGet:
		v, errSeq := seq.Get(step.Index)
		expected, errModel := m.Get(step.Index)
		err = compareErrors(step, errSeq, errModel)
		if err == nil && errModel == nil && v != expected {
			err = errors.Errorf("%s returned %d, expected %d", step, v, expected)
		}
	case OpRemove:
		err = compareErrors(step, seq.Remove(step.Index), m.Remove(step.Index))
	case OpSize:
		if size, expected := seq.Size(), m.Size(); size != expected {
			err = errors.Errorf("%s returned %d, expected %d", step, size, expected)
		}
	case OpIsEmpty:
		if empty, expected := seq.IsEmpty(), m.IsEmpty(); empty != expected {
			err = errors.Errorf("%s returned %t, expected %t", step, empty, expected)
		}
	case OpClear:
		seq.Clear()
		m.Clear()
	default:
		return errors.Errorf("unknown operation %s", step.Op)
	}

	return multierr.Append(err, compareState(seq, m))
}

func compareErrors(step Step, got, expected error) error {
	switch {
	case got == nil && expected == nil:
		return nil
	case expected == nil:
		return errors.Errorf("%s failed unexpectedly: %s", step, got)
	case got == nil:
		return errors.Errorf("%s succeeded, expected error: %s", step, expected)
	case !errors.Is(got, linkedlist.ErrIndexOutOfRange):
		return errors.Errorf("%s returned %q, expected %q", step, got, linkedlist.ErrIndexOutOfRange)
	default:
		return nil
	}
}

// compareState checks the size related invariants, it is cheap enough to be run after every step.
func compareState(seq linkedlist.Sequence[int], m *model[int]) error {
	var err error
	size := seq.Size()
	if expected := m.Size(); size != expected {
		err = multierr.Append(err, errors.Errorf("size is %d, expected %d", size, expected))
	}
	if empty := seq.IsEmpty(); empty != (size == 0) {
		err = multierr.Append(err, errors.Errorf("isEmpty returned %t for size %d", empty, size))
	}
	if _, errGet := seq.Get(size); !errors.Is(errGet, linkedlist.ErrIndexOutOfRange) {
		err = multierr.Append(err, errors.Errorf("get(%d) at size %d did not report index out of range", size, size))
	}
	return err
}

func compareContent(seq linkedlist.Sequence[int], m *model[int]) error {
	if err := compareState(seq, m); err != nil {
		return err
	}

	var err error
	for i := 0; i < m.Size(); i++ {
		v, errGet := seq.Get(i)
		expected, _ := m.Get(i)
		switch {
		case errGet != nil:
			err = multierr.Append(err, errors.Wrapf(errGet, "get(%d) failed", i))
		case v != expected:
			err = multierr.Append(err, errors.Errorf("element %d is %d, expected %d", i, v, expected))
		}
	}
	return err
}
