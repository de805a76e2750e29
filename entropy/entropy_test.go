package entropy

import (
	"context"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReproducibleSources(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx := context.Background()
	draw := func() int64 {
		p := NewPool(4711)
		defer p.Close(ctx)
		rnd, err := p.Borrow(ctx)
		if err != nil {
			t.Fatal(err)
		}
		defer p.Return(ctx, rnd)
		return rnd.Int63()
	}
	first, second := draw(), draw()
	if first != second {
		t.Errorf("expected pools with equal seeds to produce equal numbers, have %d and %d", first, second)
	}
	if expected := rand.New(rand.NewSource(4711)).Int63(); first != expected {
		t.Errorf("expected first source to be seeded with base seed, have %d instead of %d", first, expected)
	}
}

func TestPrivateSources(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ctx := context.Background()
	p := NewPool(1, MaxIdle(2))
	defer p.Close(ctx)
	r1, err := p.Borrow(ctx)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := p.Borrow(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if r1 == r2 {
		t.Errorf("expected two borrowed sources to be distinct")
	}
	if p.Created() != 2 {
		t.Errorf("expected pool to have created 2 sources, has %d", p.Created())
	}
	if err = p.Return(ctx, r1); err != nil {
		t.Error(err)
	}
	r3, err := p.Borrow(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if r3 != r1 {
		t.Errorf("expected returned source to be re-used")
	}
	if p.Created() != 2 {
		t.Errorf("expected pool to re-use sources, but has created %d", p.Created())
	}
}

func TestUninitializedPool(t *testing.T) {
	var p *Pool
	if _, err := p.Borrow(context.Background()); err == nil {
		t.Errorf("expected borrowing from nil pool to fail")
	}
	if err := p.Return(context.Background(), nil); err != nil {
		t.Errorf("expected returning to nil pool to be a no-op, have %v", err)
	}
}
