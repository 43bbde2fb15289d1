package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	chesserrors "github.com/lgbarn/chessgeo-go/internal/errors"
	"github.com/lgbarn/chessgeo-go/internal/fen"
	"github.com/lgbarn/chessgeo-go/internal/processing"
	"github.com/lgbarn/chessgeo-go/internal/testutil"
)

// echo returns the item's fields unchanged.
func echo(item WorkItem) ProcessResult {
	return ProcessResult{FEN: item.FEN, Index: item.Index, Line: item.Line}
}

func analyse(item WorkItem) ProcessResult {
	a, err := processing.AnalyzePosition(item.FEN)
	return ProcessResult{FEN: item.FEN, Index: item.Index, Line: item.Line, Analysis: a, Error: err}
}

func makeItems(n int) []WorkItem {
	items := make([]WorkItem, n)
	for i := range items {
		items[i] = WorkItem{FEN: fen.InitialPosition, Index: i, Line: i + 1}
	}
	return items
}

func TestPoolProcessesEverySubmittedItem(t *testing.T) {
	tests := []struct {
		name       string
		workers    int
		bufferSize int
		items      int
	}{
		{"no items", 4, 4, 0},
		{"single worker", 1, 1, 25},
		{"more workers than items", 8, 2, 3},
		{"small buffer", 4, 1, 40},
		{"large buffer", 4, 64, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers, tt.bufferSize, echo)
			pool.Start()

			go func() {
				defer pool.Close()
				for _, item := range makeItems(tt.items) {
					pool.Submit(item)
				}
			}()

			seen := make(map[int]bool)
			for r := range pool.Results() {
				testutil.AssertFalse(t, seen[r.Index], "index %d delivered twice", r.Index)
				seen[r.Index] = true
				testutil.AssertEqual(t, r.Line, r.Index+1)
			}
			testutil.AssertEqual(t, len(seen), tt.items)
			testutil.AssertEqual(t, pool.Processed(), int64(tt.items))
		})
	}
}

func TestPoolStop(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	pool := NewPool(1, 1, func(item WorkItem) ProcessResult {
		once.Do(func() { close(started) })
		<-release
		return echo(item)
	})
	pool.Start()

	submitted := make(chan int)
	go func() {
		defer pool.Close()
		n := 0
		for _, item := range makeItems(100) {
			if !pool.Submit(item) {
				break
			}
			n++
		}
		submitted <- n
	}()

	<-started
	pool.Stop()
	close(release)

	count := 0
	for range pool.Results() {
		count++
	}

	testutil.AssertTrue(t, pool.Stopped(), "pool reports stopped")
	testutil.AssertTrue(t, count <= 1, "at most the item in hand is delivered, got %d", count)
	testutil.AssertEqual(t, pool.Processed(), int64(1))
	testutil.AssertTrue(t, <-submitted < 100, "submission cut short")
}

func TestPoolParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPoolContext(ctx, 2, 2, echo)
	pool.Start()
	testutil.AssertFalse(t, pool.Stopped(), "running")

	cancel()
	select {
	case _, ok := <-pool.Results():
		testutil.AssertFalse(t, ok, "no results after cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("results channel not closed after parent cancellation")
	}
	testutil.AssertTrue(t, pool.Stopped(), "stopped by parent")
	testutil.AssertFalse(t, pool.Submit(WorkItem{}), "submit after cancellation")
}

func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{6, 6},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, NewPool(tt.requested, 0, echo).NumWorkers(), tt.want)
	}
}

func TestPoolConcurrentSubmitters(t *testing.T) {
	pool := NewPool(4, 8, echo)
	pool.Start()

	const submitters, perSubmitter = 8, 50
	var wg sync.WaitGroup
	for s := 0; s < submitters; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for i := 0; i < perSubmitter; i++ {
				pool.Submit(WorkItem{FEN: fen.InitialPosition, Index: s*perSubmitter + i})
			}
		}(s)
	}
	go func() {
		wg.Wait()
		pool.Close()
	}()

	count := 0
	for range pool.Results() {
		count++
	}
	testutil.AssertEqual(t, count, submitters*perSubmitter)
}

func TestRunKeepsInputOrder(t *testing.T) {
	const n = 50
	// Later items finish first.
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(time.Duration(n-item.Index) * 20 * time.Microsecond)
		return echo(item)
	}

	for _, workers := range []int{1, 4} {
		results := Run(makeItems(n), workers, 2, slow)
		testutil.AssertEqual(t, len(results), n)
		for i, r := range results {
			testutil.AssertEqual(t, r.Index, i, "workers=%d", workers)
		}
	}
}

func TestRunAnalysesPositions(t *testing.T) {
	items := []WorkItem{
		{FEN: fen.InitialPosition, Index: 0, Line: 1},
		{FEN: "not a position", Index: 1, Line: 2},
		{FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Index: 2, Line: 3},
	}

	results := Run(items, 3, 3, analyse)

	testutil.AssertNoError(t, results[0].Error)
	testutil.AssertEqual(t, results[0].Analysis.MoveCount(), 20)

	testutil.AssertErrorIs(t, results[1].Error, chesserrors.ErrInvalidNotation)
	testutil.AssertNil(t, results[1].Analysis)

	testutil.AssertNoError(t, results[2].Error)
	testutil.AssertEqual(t, results[2].Analysis.Status.String(), "stalemate")
	testutil.AssertEqual(t, results[2].Line, 3)
}
