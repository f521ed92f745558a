package replay_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapforest/binomial"
	"github.com/katalvlaran/heapforest/fibonacci"
	"github.com/katalvlaran/heapforest/internal/replay"
)

const scenario = `
check = true

[[op]]
do     = "insert"
values = [5, 3, 8, 1, 9, 2]

[[op]]
do = "peek"

[[op]]
do = "delete-min"

[[op]]
do   = "decrease"
from = 9
to   = 0

[[op]]
do = "peek"

[[op]]
do   = "decrease"
from = 42
to   = 1

[[op]]
do    = "delete-min"
count = 2

[[op]]
do = "peek"

[[op]]
do = "dump"
`

func load(t *testing.T, src string) *replay.Script {
	t.Helper()
	s, err := replay.Load(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func TestRun_BothKinds(t *testing.T) {
	for _, kind := range []string{replay.KindBinomial, replay.KindFibonacci} {
		t.Run(kind, func(t *testing.T) {
			s := load(t, scenario)
			h, err := replay.NewHeap(kind, s.Options)
			require.NoError(t, err)

			var out bytes.Buffer
			res, err := replay.Run(h, s, &out)
			require.NoError(t, err)

			assert.Equal(t, 9, res.Steps)
			assert.Equal(t, 3, res.Len)
			require.Len(t, res.Failures, 1)
			assert.Equal(t, 6, res.Failures[0].Step)
			assert.ErrorIs(t, res.Failures[0], binomialOrFibNotFound(kind))

			lines := strings.Split(out.String(), "\n")
			assert.Equal(t, []string{"peek: 1", "peek: 0", "peek: 3"}, lines[:3])
			assert.True(t, strings.HasPrefix(lines[3], "size=3 "), lines[3])
		})
	}
}

func binomialOrFibNotFound(kind string) error {
	if kind == replay.KindBinomial {
		return binomial.ErrNotFound
	}
	return fibonacci.ErrNotFound
}

func TestRun_Strict(t *testing.T) {
	s := load(t, `
strict = true
[[op]]
do = "insert"
values = [4]
[[op]]
do   = "decrease"
from = 4
to   = 4
[[op]]
do = "peek"
`)
	h, err := replay.NewHeap(replay.KindFibonacci, s.Options)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := replay.Run(h, s, &out)
	var se *replay.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Step)
	assert.Equal(t, replay.OpDecrease, se.Op)
	assert.ErrorIs(t, err, fibonacci.ErrNotDecreasing)
	assert.Equal(t, 1, res.Len)
	assert.Empty(t, out.String())
}

func TestRun_DegreeOverflowReported(t *testing.T) {
	s := load(t, `
kind = "binomial"
[options]
max_degree = 2
[[op]]
do = "insert"
values = [1, 2, 3, 4, 5]
[[op]]
do = "peek"
`)
	h, err := replay.NewHeap(s.Kind, s.Options)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := replay.Run(h, s, &out)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.ErrorIs(t, res.Failures[0], binomial.ErrDegreeOverflow)
	assert.Equal(t, 3, res.Len)
	assert.Equal(t, "peek: 1\n", out.String())
}

func TestRun_EmptyHeap(t *testing.T) {
	s := load(t, `
[[op]]
do = "delete-min"
[[op]]
do = "peek"
`)
	h, err := replay.NewHeap(s.Kind, s.Options)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = replay.Run(h, s, &out)
	require.NoError(t, err)
	assert.Equal(t, "peek: empty\n", out.String())
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"kind":       {`kind = "pairing"`, replay.ErrUnknownKind},
		"op":         {"[[op]]\ndo = \"pop\"", replay.ErrUnknownOp},
		"insert":     {"[[op]]\ndo = \"insert\"", replay.ErrBadOp},
		"decrease":   {"[[op]]\ndo = \"decrease\"\nfrom = 3", replay.ErrBadOp},
		"count":      {"[[op]]\ndo = \"delete-min\"\ncount = -1", replay.ErrBadOp},
		"unknownKey": {`colour = "red"`, replay.ErrUnknownKey},
		"maxDegree":  {"kind = \"binomial\"\n[options]\nmax_degree = 100", replay.ErrBadOp},
		"negDegree":  {"[options]\nmax_degree = -1", replay.ErrBadOp},
		"buckets":    {"[options]\nbuckets = -4", replay.ErrBadOp},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := replay.Load(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := replay.Load(strings.NewReader("kind = "))
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	s := load(t, "[[op]]\ndo = \"delete-min\"")
	assert.Equal(t, replay.KindFibonacci, s.Kind)
	assert.Equal(t, 1, s.Ops[0].Count)

	_, err := replay.NewHeap("pairing", replay.Options{})
	assert.ErrorIs(t, err, replay.ErrUnknownKind)
}

func TestNewHeap_BadOptions(t *testing.T) {
	for _, kind := range []string{replay.KindBinomial, replay.KindFibonacci} {
		t.Run(kind, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := replay.NewHeap(kind, replay.Options{MaxDegree: 100})
				assert.ErrorIs(t, err, replay.ErrBadOp)
			})

			h, err := replay.NewHeap(kind, replay.Options{MaxDegree: 62, Buckets: 1})
			require.NoError(t, err)
			assert.Equal(t, 0, h.Len())
		})
	}
}

func TestLoadFile(t *testing.T) {
	s, err := replay.LoadFile("testdata/scenario_b.toml")
	require.NoError(t, err)

	h, err := replay.NewHeap(s.Kind, s.Options)
	require.NoError(t, err)
	var out bytes.Buffer
	res, err := replay.Run(h, s, &out)
	require.NoError(t, err)
	assert.Empty(t, res.Failures)
	assert.Equal(t, "peek: 1\npeek: 0\n", out.String())

	_, err = replay.LoadFile("testdata/missing.toml")
	assert.Error(t, err)
}
