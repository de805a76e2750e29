/*
Package entropy provides pools of private random sources.

A *rand.Rand is not safe for concurrent use. Generators running in parallel
either share the (locked) process-wide source of package math/rand, or each
of them uses a private source. Package entropy keeps private sources in an
object pool, so that concurrent callers may borrow one per run and put it
back afterwards.

Sources are seeded deterministically from a base seed, therefore a program
using a pool with a fixed seed and a single goroutine is reproducible.

Pools are owned by their clients; there is no package-level pool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package entropy

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Pool is a pool of private random sources.
type Pool struct {
	created int64 // number of sources created so far; first for 64-bit alignment of atomics
	seed    int64
	opool   *pool.ObjectPool
	maxIdle int
}

// Option configures a Pool.
type Option func(p *Pool)

// MaxIdle sets the maximum number of idle sources kept in the pool.
// Defaults to 8.
func MaxIdle(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.maxIdle = n
		}
	}
}

// NewPool creates a pool of random sources. The i-th source created by the
// pool is seeded with seed+i.
func NewPool(seed int64, opts ...Option) *Pool {
	p := &Pool{seed: seed, maxIdle: 8}
	for _, opt := range opts {
		opt(p)
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			n := atomic.AddInt64(&p.created, 1) - 1
			T().Debugf("entropy pool creates source #%d", n)
			return rand.New(rand.NewSource(p.seed + n)), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.LIFO = true
	config.MaxTotal = -1 // infinity
	config.MaxIdle = p.maxIdle
	config.BlockWhenExhausted = false
	p.opool = pool.NewObjectPool(context.Background(), factory, config)
	return p
}

// Borrow returns a random source for exclusive use by the caller. The
// source has to be handed back with Return.
func (p *Pool) Borrow(ctx context.Context) (*rand.Rand, error) {
	if p == nil || p.opool == nil {
		return nil, errors.New("entropy pool is not initialized")
	}
	o, err := p.opool.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	rnd, ok := o.(*rand.Rand)
	if !ok {
		return nil, errors.New("entropy pool holds an object which is not a random source")
	}
	return rnd, nil
}

// Return puts a random source back into the pool.
func (p *Pool) Return(ctx context.Context, rnd *rand.Rand) error {
	if p == nil || p.opool == nil || rnd == nil {
		return nil
	}
	return p.opool.ReturnObject(ctx, rnd)
}

// Created returns the number of sources the pool has created so far.
func (p *Pool) Created() int {
	return int(atomic.LoadInt64(&p.created))
}

// Close releases all idle sources. The pool must not be used afterwards.
func (p *Pool) Close(ctx context.Context) {
	if p != nil && p.opool != nil {
		p.opool.Close(ctx)
	}
}
