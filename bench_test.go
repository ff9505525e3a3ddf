package linkedlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const benchSize = 1000

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := New[int]()
		for j := 0; j < benchSize; j++ {
			l.Append(j)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	requireT := require.New(b)

	l := New[int]()
	for j := 0; j < benchSize; j++ {
		l.Append(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index := i % benchSize
		v, err := l.Get(index)
		if err != nil || v != index {
			b.StopTimer()
			requireT.NoError(err)
			requireT.Equal(index, v)
		}
	}
}

func BenchmarkRemoveHead(b *testing.B) {
	l := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.IsEmpty() {
			b.StopTimer()
			for j := 0; j < benchSize; j++ {
				l.Append(j)
			}
			b.StartTimer()
		}
		_ = l.Remove(0)
	}
}
