package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/daehong-lab/gonggo-pipeline/internal/extract"
)

// Job is one attachment to run through the extraction chain.
type Job struct {
	RecordID    string
	ItemID      string
	Path        string
	SubmittedAt time.Time
}

// Result pairs a job with its chain outcome. Err carries the full-chain
// failure; the attachment is still registered, text-less.
type Result struct {
	Job Job
	Res extract.Result
	Err error
}

// TextExtractor is the chain surface the pool needs; stubbed in tests.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (extract.Result, error)
}

// ExtractPool fans attachment extraction over a fixed set of workers.
// Results stream on Results(); the channel closes once Shutdown drains
// the queue.
type ExtractPool struct {
	chain   TextExtractor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	out  chan Result
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ExtractPool)

func WithWorkers(n int) Option {
	return func(p *ExtractPool) {
		if n > 0 {
			p.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(p *ExtractPool) {
		if n > 0 {
			p.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(p *ExtractPool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewExtractPool(chain TextExtractor, logger *slog.Logger, opts ...Option) *ExtractPool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &ExtractPool{
		chain:   chain,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(p)
	}
	p.out = make(chan Result, cap(p.ch))
	p.start()
	return p
}

func (p *ExtractPool) Results() <-chan Result { return p.out }

func (p *ExtractPool) start() {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Debug("worker started", "worker_id", workerID)

				for job := range p.ch {
					ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
					res, err := p.chain.Extract(ctx, job.Path)
					cancel()

					if err != nil {
						p.logger.Warn("extraction failed", "worker_id", workerID, "path", job.Path, "error", err)
					}
					p.out <- Result{Job: job, Res: res, Err: err}
				}

				p.logger.Debug("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (p *ExtractPool) Enqueue(_ context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.logger.Warn("cannot enqueue: pool is shutting down", "path", job.Path)
		return nil
	}
	select {
	case p.ch <- job:
	default:
		p.logger.Warn("queue full, applying backpressure", "path", job.Path)
		p.ch <- job
	}
	return nil
}

// Shutdown stops intake, waits for in-flight jobs, then closes the
// results channel.
func (p *ExtractPool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.ch)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
		close(p.out)
	}()

	select {
	case <-ctx.Done():
		p.logger.Warn("shutdown interrupted by context")
	case <-done:
		p.logger.Debug("pool drained, shutdown complete")
	}
}
