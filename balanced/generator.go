package balanced

import (
	"context"
	"math/rand"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cfg/entropy"
)

// randomness is the subset of *rand.Rand a Generator needs.
type randomness interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// processRandomness delegates to the top-level functions of math/rand,
// which are safe for concurrent use.
type processRandomness struct{}

func (processRandomness) Intn(n int) int                     { return rand.Intn(n) }
func (processRandomness) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Generator creates random strings of the balanced language.
//
// A Generator created with WithSource owns a private random source and must
// not be used by more than one goroutine at a time. Generators using the
// process-wide source or an entropy pool may be shared.
type Generator struct {
	rnd  randomness
	pool *entropy.Pool
}

// Option configures a Generator.
type Option func(gen *Generator)

// WithSource lets a Generator draw from a private random source. This makes
// the output of a Generator reproducible.
func WithSource(src rand.Source) Option {
	return func(gen *Generator) {
		if src != nil {
			gen.rnd = rand.New(src)
		}
	}
}

// WithEntropy lets a Generator borrow a private random source from an
// entropy pool for every call to Generate.
func WithEntropy(pool *entropy.Pool) Option {
	return func(gen *Generator) {
		gen.pool = pool
	}
}

// NewGenerator creates a Generator. Without options, it uses the
// process-wide random source of package math/rand.
func NewGenerator(opts ...Option) *Generator {
	gen := &Generator{rnd: processRandomness{}}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

var defaultGenerator = NewGenerator()

// Generate creates random strings of the balanced language, using the
// process-wide random source. See (*Generator).Generate.
func Generate(count, maxLen int) []string {
	return defaultGenerator.Generate(count, maxLen)
}

// Generate produces at most count random strings of { aⁿbⁿ | n ≥ 0 }, none
// of them longer than maxLen characters.
//
// Starting with the empty string, each step records the current string and
// flips a coin. On heads the string is wrapped into a…b, on tails it is
// left unchanged. Generation stops after count steps or as soon as the
// string grows longer than maxLen. Strings are recorded every step,
// therefore the result may contain duplicates. The result is shuffled
// before it is returned.
//
// Negative arguments are treated as 0.
func (gen *Generator) Generate(count, maxLen int) []string {
	if count < 0 {
		count = 0
	}
	if maxLen < 0 {
		maxLen = 0
	}
	rnd := gen.rnd
	if gen.pool != nil {
		ctx := context.Background()
		if r, err := gen.pool.Borrow(ctx); err != nil {
			T().Errorf("generator cannot borrow random source: %v", err)
		} else {
			defer func() { _ = gen.pool.Return(ctx, r) }()
			rnd = r
		}
	}
	snapshots := arraylist.New()
	unfold(rnd, "", count, maxLen, snapshots)
	rnd.Shuffle(snapshots.Size(), snapshots.Swap)
	result := make([]string, 0, snapshots.Size())
	for _, v := range snapshots.Values() {
		result = append(result, v.(string))
	}
	T().Debugf("generated %d string(s) with count=%d, max length=%d", len(result), count, maxLen)
	return result
}

// unfold performs a single random top-down expansion of S.
func unfold(rnd randomness, cur string, budget, maxLen int, snapshots *arraylist.List) {
	if budget <= 0 || len(cur) > maxLen {
		return
	}
	snapshots.Add(cur)
	if rnd.Intn(2) == 0 { // heads: apply S → aSb
		unfold(rnd, "a"+cur+"b", budget-1, maxLen, snapshots)
	} else {
		unfold(rnd, cur, budget-1, maxLen, snapshots)
	}
}
