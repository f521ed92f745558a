// Package replay loads heap operation scripts written in TOML and runs them
// against either heap kind. It backs the heapreplay command and doubles as a
// compact way to express long operation sequences in tests.
//
// A script looks like:
//
//	kind   = "fibonacci"   # or "binomial"
//	strict = false         # stop at the first failing step
//	check  = true          # run Validate after every step
//
//	[options]
//	max_degree = 48
//	buckets    = 1024
//
//	[[op]]
//	do     = "insert"
//	values = [5, 3, 8]
//
//	[[op]]
//	do   = "decrease"
//	from = 8
//	to   = 0
//
//	[[op]]
//	do    = "delete-min"
//	count = 2
//
//	[[op]]
//	do = "peek"
//
//	[[op]]
//	do = "dump"
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/heapforest/binomial"
)

// Heap kinds accepted in Script.Kind.
const (
	KindBinomial  = "binomial"
	KindFibonacci = "fibonacci"
)

// Operation names accepted in Op.Do.
const (
	OpInsert    = "insert"
	OpDeleteMin = "delete-min"
	OpDecrease  = "decrease"
	OpPeek      = "peek"
	OpDump      = "dump"
)

// Sentinel errors returned while loading or running a script.
var (
	ErrUnknownKind = errors.New("replay: unknown heap kind")
	ErrUnknownOp   = errors.New("replay: unknown operation")
	ErrBadOp       = errors.New("replay: malformed operation")
	ErrUnknownKey  = errors.New("replay: unknown key in script")
)

// Options mirrors the heap options. Zero values keep the heap defaults.
type Options struct {
	MaxDegree int `toml:"max_degree"`
	Buckets   int `toml:"buckets"`
}

// validate rejects values the heap option constructors would panic on.
// Both heap kinds share the same MaxDegree range.
func (o Options) validate() error {
	if o.MaxDegree < 0 || o.MaxDegree > binomial.MaxMaxDegree {
		return fmt.Errorf("%w: max_degree %d outside [1, %d]", ErrBadOp, o.MaxDegree, binomial.MaxMaxDegree)
	}
	if o.Buckets < 0 {
		return fmt.Errorf("%w: negative buckets %d", ErrBadOp, o.Buckets)
	}
	return nil
}

// Op is a single scripted step.
type Op struct {
	Do     string  `toml:"do"`
	Values []int64 `toml:"values"` // insert
	From   *int64  `toml:"from"`   // decrease
	To     *int64  `toml:"to"`     // decrease
	Count  int     `toml:"count"`  // delete-min, default 1
}

// Script is a decoded replay file.
type Script struct {
	Kind    string  `toml:"kind"`
	Strict  bool    `toml:"strict"`
	Check   bool    `toml:"check"`
	Options Options `toml:"options"`
	Ops     []Op    `toml:"op"`
}

// Load decodes and validates a script.
func Load(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.DecodeReader(r, &s)
	if err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

func (s *Script) validate() error {
	if s.Kind == "" {
		s.Kind = KindFibonacci
	}
	if s.Kind != KindBinomial && s.Kind != KindFibonacci {
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	if err := s.Options.validate(); err != nil {
		return err
	}
	for i := range s.Ops {
		op := &s.Ops[i]
		switch op.Do {
		case OpInsert:
			if len(op.Values) == 0 {
				return fmt.Errorf("%w: step %d: insert needs values", ErrBadOp, i+1)
			}
		case OpDeleteMin:
			if op.Count < 0 {
				return fmt.Errorf("%w: step %d: negative count", ErrBadOp, i+1)
			}
			if op.Count == 0 {
				op.Count = 1
			}
		case OpDecrease:
			if op.From == nil || op.To == nil {
				return fmt.Errorf("%w: step %d: decrease needs from and to", ErrBadOp, i+1)
			}
		case OpPeek, OpDump:
		default:
			return fmt.Errorf("%w: step %d: %q", ErrUnknownOp, i+1, op.Do)
		}
	}

	return nil
}
