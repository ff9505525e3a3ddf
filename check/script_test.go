package check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptDeterministic(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(Script(42, 1000), Script(42, 1000))
	requireT.NotEqual(Script(42, 1000), Script(43, 1000))
}

func TestScriptLength(t *testing.T) {
	requireT := require.New(t)

	requireT.Len(Script(1, 0), 0)
	requireT.Len(Script(1, 777), 777)
}

func TestScriptIndices(t *testing.T) {
	requireT := require.New(t)

	ops := map[Op]int{}
	var outOfRange int
	for seed := int64(0); seed < 20; seed++ {
		m := newModel[int]()
		for _, step := range Script(seed, 500) {
			ops[step.Op]++
			switch step.Op {
			case OpAppend:
				m.Append(step.Value)
			case OpGet, OpRemove:
				requireT.GreaterOrEqual(step.Index, -indexMargin)
				requireT.Less(step.Index, m.Size()+indexMargin)
				if step.Index < 0 || step.Index >= m.Size() {
					outOfRange++
				}
				if step.Op == OpRemove {
					_ = m.Remove(step.Index)
				}
			case OpClear:
				m.Clear()
			}
		}
	}

	for _, op := range []Op{OpAppend, OpGet, OpRemove, OpSize, OpIsEmpty, OpClear} {
		requireT.Positive(ops[op], "operation %s never generated", op)
	}
	requireT.Positive(outOfRange)
}

func TestStepString(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("append(5)", Step{Op: OpAppend, Value: 5}.String())
	requireT.Equal("get(-1)", Step{Op: OpGet, Index: -1}.String())
	requireT.Equal("remove(3)", Step{Op: OpRemove, Index: 3}.String())
	requireT.Equal("size()", Step{Op: OpSize}.String())
	requireT.Equal("isEmpty()", Step{Op: OpIsEmpty}.String())
	requireT.Equal("clear()", Step{Op: OpClear}.String())
	requireT.Equal("op(17)()", Step{Op: 17}.String())
}
