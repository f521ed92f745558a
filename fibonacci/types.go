package fibonacci

import "errors"

// Sentinel errors returned by the Fibonacci heap.
var (
	// ErrNotFound indicates that no live element equals the value passed to DecreaseKey.
	ErrNotFound = errors.New("fibonacci: value not found")

	// ErrNotDecreasing indicates that DecreaseKey was asked to keep or raise a value.
	ErrNotDecreasing = errors.New("fibonacci: new value is not smaller than old value")

	// ErrDegreeOverflow indicates that the heap would outgrow its MaxDegree.
	// The heap is left unchanged.
	ErrDegreeOverflow = errors.New("fibonacci: maximum tree degree exceeded")

	// ErrNilHeap indicates that Merge was given a nil heap.
	ErrNilHeap = errors.New("fibonacci: heap is nil")

	// ErrSelfMerge indicates that a heap was merged into itself.
	ErrSelfMerge = errors.New("fibonacci: cannot merge a heap into itself")

	// ErrBadMaxDegree is raised (via panic) by WithMaxDegree for values outside [1, 62].
	ErrBadMaxDegree = errors.New("fibonacci: MaxDegree must be within [1, 62]")

	// ErrBadBuckets is raised (via panic) by WithBuckets for values below 1.
	ErrBadBuckets = errors.New("fibonacci: Buckets must be positive")
)

const (
	// DefaultMaxDegree bounds tree degrees; the heap then holds up to F(50)-1 elements.
	DefaultMaxDegree = 48

	// DefaultBuckets is the number of value-index buckets.
	DefaultBuckets = 1024

	// MaxMaxDegree is the largest value WithMaxDegree accepts.
	MaxMaxDegree = 62
)

// Options configures a Heap.
//
// MaxDegree – size of the consolidation table. A heap holds at most F(MaxDegree+2)-1
// elements, F being the Fibonacci sequence (F(1) = F(2) = 1).
// Buckets   – number of value-index buckets used by DecreaseKey lookups.
type Options struct {
	MaxDegree int
	Buckets   int
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// DefaultOptions returns Options{MaxDegree: DefaultMaxDegree, Buckets: DefaultBuckets}.
func DefaultOptions() Options {
	return Options{
		MaxDegree: DefaultMaxDegree,
		Buckets:   DefaultBuckets,
	}
}

// WithMaxDegree sets the maximum tree degree. Panics with ErrBadMaxDegree
// when d is outside [1, 62].
func WithMaxDegree(d int) Option {
	return func(o *Options) {
		if d < 1 || d > MaxMaxDegree {
			panic(ErrBadMaxDegree.Error())
		}
		o.MaxDegree = d
	}
}

// WithBuckets sets the value-index bucket count. Panics with ErrBadBuckets
// when n < 1.
func WithBuckets(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadBuckets.Error())
		}
		o.Buckets = n
	}
}

// capacity returns F(d+2)-1. A node of degree k roots at least F(k+2) nodes,
// so below that size no degree reaches d.
func capacity(d int) int {
	a, b := 1, 1 // F(1), F(2)
	for i := 2; i < d+2; i++ {
		a, b = b, a+b
	}

	return b - 1
}
