package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/heapforest/binomial"
	"github.com/katalvlaran/heapforest/fibonacci"
)

// ErrInvariant wraps a Validate failure observed while running with check = true.
var ErrInvariant = errors.New("replay: heap invariant violated")

// Heap is the operation set shared by binomial.Heap and fibonacci.Heap.
type Heap[E any] interface {
	Insert(v E) error
	DeleteMin()
	PeekMin() (E, bool)
	DecreaseKey(old, cur E) error
	Len() int
	DebugDump(w io.Writer) error
	Validate() error
}

var (
	_ Heap[int64] = (*binomial.Heap[int64])(nil)
	_ Heap[int64] = (*fibonacci.Heap[int64])(nil)
)

// NewHeap builds an empty heap of the given kind. Out-of-range options
// yield ErrBadOp.
func NewHeap(kind string, o Options) (Heap[int64], error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	switch kind {
	case KindBinomial:
		var opts []binomial.Option
		if o.MaxDegree > 0 {
			opts = append(opts, binomial.WithMaxDegree(o.MaxDegree))
		}
		if o.Buckets > 0 {
			opts = append(opts, binomial.WithBuckets(o.Buckets))
		}
		return binomial.New[int64](opts...), nil
	case KindFibonacci:
		var opts []fibonacci.Option
		if o.MaxDegree > 0 {
			opts = append(opts, fibonacci.WithMaxDegree(o.MaxDegree))
		}
		if o.Buckets > 0 {
			opts = append(opts, fibonacci.WithBuckets(o.Buckets))
		}
		return fibonacci.New[int64](opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// StepError records a failed step. Step numbers start at 1.
type StepError struct {
	Step int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result summarizes a run.
type Result struct {
	Steps    int          // steps executed
	Len      int          // heap size after the run
	Failures []*StepError // non-fatal step errors
}

// Run executes s against h, writing peeks and dumps to w.
//
// Insert and decrease errors are collected in Result.Failures and the run
// continues, unless s.Strict is set, in which case the first one is returned.
// Invariant violations (s.Check) and write errors always stop the run.
func Run(h Heap[int64], s *Script, w io.Writer) (Result, error) {
	var res Result
	for i, op := range s.Ops {
		step := i + 1
		res.Steps = step

		var err error
		switch op.Do {
		case OpInsert:
			for _, v := range op.Values {
				if err = h.Insert(v); err != nil {
					break
				}
			}
		case OpDeleteMin:
			for k := 0; k < op.Count; k++ {
				h.DeleteMin()
			}
		case OpDecrease:
			err = h.DecreaseKey(*op.From, *op.To)
		case OpPeek:
			if v, ok := h.PeekMin(); ok {
				_, err = fmt.Fprintf(w, "peek: %d\n", v)
			} else {
				_, err = fmt.Fprintln(w, "peek: empty")
			}
			if err != nil {
				return res, err
			}
		case OpDump:
			if err = h.DebugDump(w); err != nil {
				return res, err
			}
		default:
			return res, &StepError{Step: step, Op: op.Do, Err: ErrUnknownOp}
		}

		if err != nil {
			se := &StepError{Step: step, Op: op.Do, Err: err}
			if s.Strict {
				res.Len = h.Len()
				return res, se
			}
			res.Failures = append(res.Failures, se)
		}

		if s.Check {
			if verr := h.Validate(); verr != nil {
				res.Len = h.Len()
				return res, &StepError{Step: step, Op: op.Do, Err: fmt.Errorf("%w: %v", ErrInvariant, verr)}
			}
		}
	}
	res.Len = h.Len()

	return res, nil
}
