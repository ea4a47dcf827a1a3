package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/extract"
)

type stubChain struct {
	calls atomic.Int32
	fail  string // path that should fail
}

func (s *stubChain) Extract(_ context.Context, path string) (extract.Result, error) {
	s.calls.Add(1)
	if path == s.fail {
		return extract.Result{}, errors.New("chain exhausted")
	}
	return extract.Result{Text: "텍스트", Pages: 1, Method: constants.MethodNativeText}, nil
}

func TestExtractPoolDrainsAllJobs(t *testing.T) {
	chain := &stubChain{fail: "bad.pdf"}
	pool := NewExtractPool(chain, nil, WithWorkers(3), WithQueueSize(8))

	collected := make(chan map[string]Result, 1)
	go func() {
		got := map[string]Result{}
		for r := range pool.Results() {
			got[r.Job.Path] = r
		}
		collected <- got
	}()

	paths := []string{"a.pdf", "b.hwp", "bad.pdf", "c.xlsx", "d.png"}
	for _, p := range paths {
		if err := pool.Enqueue(context.Background(), Job{RecordID: "r", Path: p}); err != nil {
			t.Fatal(err)
		}
	}
	pool.Shutdown(context.Background())

	got := <-collected
	if len(got) != len(paths) {
		t.Fatalf("results = %d, want one per job", len(got))
	}
	if got["bad.pdf"].Err == nil {
		t.Error("failed job must surface its error")
	}
	if got["a.pdf"].Err != nil || got["a.pdf"].Res.Text == "" {
		t.Errorf("good job = %+v", got["a.pdf"])
	}
	if int(chain.calls.Load()) != len(paths) {
		t.Errorf("chain calls = %d", chain.calls.Load())
	}
}

func TestExtractPoolEnqueueAfterShutdown(t *testing.T) {
	pool := NewExtractPool(&stubChain{}, nil, WithWorkers(1))
	go func() {
		for range pool.Results() {
		}
	}()
	pool.Shutdown(context.Background())

	// must not panic on the closed channel
	if err := pool.Enqueue(context.Background(), Job{Path: "late.pdf"}); err != nil {
		t.Fatal(err)
	}
}

func TestExtractPoolShutdownIsIdempotent(t *testing.T) {
	pool := NewExtractPool(&stubChain{}, nil, WithJobTimeout(time.Second))
	go func() {
		for range pool.Results() {
		}
	}()
	pool.Shutdown(context.Background())
	pool.Shutdown(context.Background())
}
