// ABOUTME: Tests for the worker pool
// ABOUTME: Verifies task completion, ordering of Map results and worker sizing

package pool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestSubmitAndWait(t *testing.T) {
	p := NewWorkerPool(4, 8)
	defer p.Close()

	var done atomic.Int64
	for range 100 {
		p.Submit(func() { done.Add(1) })
	}

	p.Wait()

	if done.Load() != 100 {
		t.Errorf("Expected 100 completed tasks, got %d", done.Load())
	}
}

func TestMapKeepsOrder(t *testing.T) {
	p := NewWorkerPool(3, 0)
	defer p.Close()

	got := Map(p, 50, func(i int) int { return i * i })

	for i, v := range got {
		if v != i*i {
			t.Fatalf("Map result %d = %d, want %d", i, v, i*i)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	p := NewWorkerPool(1, 0)
	defer p.Close()

	if got := Map(p, 0, func(i int) string { return "x" }); len(got) != 0 {
		t.Errorf("Expected empty result, got %v", got)
	}
}

func TestDefaultWorkers(t *testing.T) {
	p := NewWorkerPool(0, 1)
	defer p.Close()

	if p.Workers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), p.Workers())
	}
}
