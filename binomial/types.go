package binomial

import "errors"

// Sentinel errors returned by the binomial heap.
var (
	// ErrNotFound indicates that no live element equals the value passed to DecreaseKey.
	ErrNotFound = errors.New("binomial: value not found")

	// ErrNotDecreasing indicates that DecreaseKey was asked to keep or raise a value.
	ErrNotDecreasing = errors.New("binomial: new value is not smaller than old value")

	// ErrDegreeOverflow indicates that the heap would outgrow its MaxDegree.
	// The heap is left unchanged.
	ErrDegreeOverflow = errors.New("binomial: maximum tree degree exceeded")

	// ErrNilHeap indicates that Merge was given a nil heap.
	ErrNilHeap = errors.New("binomial: heap is nil")

	// ErrSelfMerge indicates that a heap was merged into itself.
	ErrSelfMerge = errors.New("binomial: cannot merge a heap into itself")

	// ErrBadMaxDegree is raised (via panic) by WithMaxDegree for values outside [1, 62].
	ErrBadMaxDegree = errors.New("binomial: MaxDegree must be within [1, 62]")

	// ErrBadBuckets is raised (via panic) by WithBuckets for values below 1.
	ErrBadBuckets = errors.New("binomial: Buckets must be positive")
)

const (
	// DefaultMaxDegree bounds tree degrees, and with them the heap size: 2^48-1 elements.
	DefaultMaxDegree = 48

	// DefaultBuckets is the number of value-index buckets.
	DefaultBuckets = 1024

	// MaxMaxDegree is the largest value WithMaxDegree accepts.
	MaxMaxDegree = 62
)

// Options configures a Heap.
//
// MaxDegree – size of the consolidation table. A heap holds at most 2^MaxDegree-1 elements.
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

// capacity is the largest element count whose binomial trees all have degree < d.
func capacity(d int) int {
	return 1<<d - 1
}
