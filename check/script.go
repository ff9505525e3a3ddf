package check

import (
	"fmt"
	"math/rand"
)

// Op is the operation executed by a script step.
type Op int

// Operations.
const (
	OpAppend Op = iota
	OpGet
	OpRemove
	OpSize
	OpIsEmpty
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpAppend:
		return "append"
	case OpGet:
		return "get"
	case OpRemove:
		return "remove"
	case OpSize:
		return "size"
	case OpIsEmpty:
		return "isEmpty"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Step is a single operation of a script.
type Step struct {
	Op    Op
	Index int
	Value int
}

func (s Step) String() string {
	switch s.Op {
	case OpAppend:
		return fmt.Sprintf("%s(%d)", s.Op, s.Value)
	case OpGet, OpRemove:
		return fmt.Sprintf("%s(%d)", s.Op, s.Index)
	default:
		return s.Op.String() + "()"
	}
}

// indexMargin is how far outside of [0, size) generated indices may reach.
const indexMargin = 2

// Script generates pseudo-random sequence of steps. The same seed always produces the same script.
// Indices of get and remove steps are drawn from [-2, size+2) where size is the length the sequence has
// at that point, so both valid and out-of-range positions are exercised.
func Script(seed int64, steps int) []Step {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec
	script := make([]Step, 0, steps)

	var size int
	for i := 0; i < steps; i++ {
		var step Step
		switch p := r.Intn(100); {
		case p < 45:
			step = Step{Op: OpAppend, Value: r.Int()}
			size++
		case p < 70:
			step = Step{Op: OpGet, Index: r.Intn(size+2*indexMargin) - indexMargin}
		case p < 90:
			step = Step{Op: OpRemove, Index: r.Intn(size+2*indexMargin) - indexMargin}
			if step.Index >= 0 && step.Index < size {
				size--
			}
		case p < 94:
			step = Step{Op: OpSize}
		case p < 98:
			step = Step{Op: OpIsEmpty}
		default:
			step = Step{Op: OpClear}
			size = 0
		}
		script = append(script, step)
	}
	return script
}
