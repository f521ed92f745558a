package forest

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps an element to a deterministic 64-bit hash. Elements that
// compare equal must hash equal.
type Hasher[E any] func(E) uint64

// DefaultHasher hashes ordered elements with xxhash over a canonical
// encoding: 8 little-endian bytes for numbers, raw bytes for strings.
// Negative zero hashes like positive zero, and every NaN hashes alike,
// matching Compare.
func DefaultHasher[E constraints.Ordered]() Hasher[E] {
	return func(e E) uint64 { return hashOrdered(e) }
}

func hashOrdered(v any) uint64 {
	var b [8]byte
	switch x := v.(type) {
	case string:
		return xxhash.Sum64String(x)
	case int:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
	case int64:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
	case int32:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
	case uint:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(b[:], x)
	case float64:
		binary.LittleEndian.PutUint64(b[:], floatBits(x))
	default:
		// named and narrower types
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			binary.LittleEndian.PutUint64(b[:], uint64(rv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			binary.LittleEndian.PutUint64(b[:], rv.Uint())
		case reflect.Float32, reflect.Float64:
			binary.LittleEndian.PutUint64(b[:], floatBits(rv.Float()))
		case reflect.String:
			return xxhash.Sum64String(rv.String())
		}
	}

	return xxhash.Sum64(b[:])
}

func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		f = 0 // folds -0 into +0
	case math.IsNaN(f):
		f = math.NaN() // one payload for every NaN
	}
	return math.Float64bits(f)
}

// Index maps hash(element) mod buckets to the set of live nodes whose
// element falls into that bucket. It is derived state: every insertion,
// removal and element change in the forest updates it in the same call.
type Index[E any] struct {
	hash    Hasher[E]
	buckets uint64
	m       map[uint64]map[int32]struct{}
	n       int
}

// NewIndex builds an empty index with the given bucket count (at least 1).
func NewIndex[E any](hash Hasher[E], buckets int) *Index[E] {
	if buckets < 1 {
		buckets = 1
	}
	return &Index[E]{
		hash:    hash,
		buckets: uint64(buckets),
		m:       make(map[uint64]map[int32]struct{}),
	}
}

// Bucket returns the bucket e hashes into.
func (x *Index[E]) Bucket(e E) uint64 { return x.hash(e) % x.buckets }

// Add records node i as holding e.
func (x *Index[E]) Add(i int32, e E) {
	b := x.Bucket(e)
	set, ok := x.m[b]
	if !ok {
		set = make(map[int32]struct{})
		x.m[b] = set
	}
	if _, dup := set[i]; !dup {
		set[i] = struct{}{}
		x.n++
	}
}

// Remove forgets node i, which was holding e.
func (x *Index[E]) Remove(i int32, e E) {
	b := x.Bucket(e)
	set, ok := x.m[b]
	if !ok {
		return
	}
	if _, has := set[i]; has {
		delete(set, i)
		x.n--
	}
	if len(set) == 0 {
		delete(x.m, b)
	}
}

// Move re-files node i after its element changed from old to cur.
func (x *Index[E]) Move(i int32, old, cur E) {
	if x.Bucket(old) == x.Bucket(cur) {
		return
	}
	x.Remove(i, old)
	x.Add(i, cur)
}

// Candidates returns the nodes sharing e's bucket. The map is owned by the
// index and must not be modified.
func (x *Index[E]) Candidates(e E) map[int32]struct{} { return x.m[x.Bucket(e)] }

// Contains reports whether node i is filed under e's bucket.
func (x *Index[E]) Contains(i int32, e E) bool {
	_, ok := x.m[x.Bucket(e)][i]
	return ok
}

// Len returns the number of indexed nodes.
func (x *Index[E]) Len() int { return x.n }

// Buckets returns the non-empty buckets and their members.
func (x *Index[E]) Buckets() map[uint64]map[int32]struct{} { return x.m }

func (x *Index[E]) reset() {
	x.m = make(map[uint64]map[int32]struct{})
	x.n = 0
}
