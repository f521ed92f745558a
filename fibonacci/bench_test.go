package fibonacci_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/heapforest/fibonacci"
)

// BenchmarkInsertDeleteMin measures a full heapsort of 10k random ints.
func BenchmarkInsertDeleteMin(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]int, 10_000)
	for i := range vals {
		vals[i] = rng.Int()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := fibonacci.New[int]()
		for _, v := range vals {
			_ = h.Insert(v)
		}
		for !h.IsEmpty() {
			h.DeleteMin()
		}
	}
}

// BenchmarkDecreaseKey decreases every element of a consolidated heap once.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 10_000
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := fibonacci.New[int]()
		for v := 0; v <= n; v++ {
			_ = h.Insert(2*n + v)
		}
		h.DeleteMin() // force one consolidation
		b.StartTimer()
		for v := n; v >= 1; v-- {
			_ = h.DecreaseKey(2*n+v, v)
		}
	}
}
