package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lucasccalmon/TrabalhoGrafos/bfs"
	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// chain builds 0→1→…→n-1 with unit weights.
func chain(n int) *digraph.Graph {
	g := digraph.New(n)
	for i := 0; i+1 < n; i++ {
		_ = g.AddArc(i, i+1, 1)
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := digraph.New(2)
	for _, start := range []int{-1, 2} {
		if _, err := bfs.BFS(g, start); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", start, err)
		}
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DirectedReachability checks that arcs are followed only forward.
func TestBFS_DirectedReachability(t *testing.T) {
	g := chain(4)
	res, err := bfs.BFS(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached(0) || res.Depth[1] != bfs.Unreached || res.Parent[1] != digraph.NoParent {
		t.Errorf("vertices behind the start must stay unreached: %+v", res)
	}
	if _, err := res.PathTo(0); err == nil {
		t.Errorf("PathTo(0): expected error")
	}
}

// TestBFS_FewestHops prefers the shorter hop count regardless of weights.
func TestBFS_FewestHops(t *testing.T) {
	g := digraph.New(4)
	_ = g.AddArc(0, 1, 1)
	_ = g.AddArc(1, 2, 1)
	_ = g.AddArc(2, 3, 1)
	_ = g.AddArc(0, 3, 100)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
}

// TestBFS_MaxDepthAndFilter covers the depth limit and arc filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(6)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 0, bfs.WithFilterArc(func(u int, a digraph.Arc) bool { return a.To != 3 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks checks hook ordering and abort on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	g := chain(3)
	var enq, deq []int
	res, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(enq, res.Order) || !reflect.DeepEqual(deq, res.Order) {
		t.Errorf("enqueue %v / dequeue %v must match order %v", enq, deq, res.Order)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want %v, got %v", stop, err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context stops the search.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chain(3), 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestReachable lists reachable vertices including the start.
func TestReachable(t *testing.T) {
	g := chain(3)
	_ = g.AddVertex()
	got, err := bfs.Reachable(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable = %v; want %v", got, want)
	}
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
